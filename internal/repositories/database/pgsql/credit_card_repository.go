package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintracker/personal_finance_app/internal/apperrors"
	"github.com/fintracker/personal_finance_app/internal/core/domain"
	portsrepo "github.com/fintracker/personal_finance_app/internal/core/ports/repositories"
	"github.com/fintracker/personal_finance_app/internal/models"
	"github.com/fintracker/personal_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCreditCardRepository struct {
	pool *pgxpool.Pool
}

// newPgxCreditCardRepository creates a new repository for credit card data.
func newPgxCreditCardRepository(pool *pgxpool.Pool) portsrepo.CreditCardRepositoryFacade {
	return &PgxCreditCardRepository{pool: pool}
}

var _ portsrepo.CreditCardRepositoryFacade = (*PgxCreditCardRepository)(nil)

// SaveCreditCard inserts a new credit card.
func (r *PgxCreditCardRepository) SaveCreditCard(ctx context.Context, card domain.CreditCard) error {
	m := mapping.ToModelCreditCard(card)

	query := `
		INSERT INTO credit_cards (credit_card_id, name, total_limit, used_amount, due_amount, emi_blocked_amount, created_at, last_updated_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.CreditCardID,
		m.Name,
		m.TotalLimit,
		m.UsedAmount,
		m.DueAmount,
		m.EMIBlockedAmount,
		m.CreatedAt,
		m.LastUpdatedAt,
		m.Version,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: credit card with ID %s already exists", apperrors.ErrDuplicate, m.CreditCardID)
		}
		return fmt.Errorf("failed to save credit card %s: %w", m.CreditCardID, err)
	}
	return nil
}

// FindCreditCardByID retrieves a credit card by its ID.
func (r *PgxCreditCardRepository) FindCreditCardByID(ctx context.Context, creditCardID string) (*domain.CreditCard, error) {
	query := `
		SELECT credit_card_id, name, total_limit, used_amount, due_amount, emi_blocked_amount, created_at, last_updated_at, version
		FROM credit_cards
		WHERE credit_card_id = $1;
	`
	var m models.CreditCard
	err := r.pool.QueryRow(ctx, query, creditCardID).Scan(
		&m.CreditCardID,
		&m.Name,
		&m.TotalLimit,
		&m.UsedAmount,
		&m.DueAmount,
		&m.EMIBlockedAmount,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&m.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find credit card by ID %s: %w", creditCardID, err)
	}

	d := mapping.ToDomainCreditCard(m)
	return &d, nil
}

// ListCreditCards retrieves all credit cards, newest first.
func (r *PgxCreditCardRepository) ListCreditCards(ctx context.Context) ([]domain.CreditCard, error) {
	query := `
		SELECT credit_card_id, name, total_limit, used_amount, due_amount, emi_blocked_amount, created_at, last_updated_at, version
		FROM credit_cards
		ORDER BY created_at DESC, credit_card_id DESC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query credit cards: %w", err)
	}
	defer rows.Close()

	var ms []models.CreditCard
	for rows.Next() {
		var m models.CreditCard
		if err := rows.Scan(
			&m.CreditCardID,
			&m.Name,
			&m.TotalLimit,
			&m.UsedAmount,
			&m.DueAmount,
			&m.EMIBlockedAmount,
			&m.CreatedAt,
			&m.LastUpdatedAt,
			&m.Version,
		); err != nil {
			return nil, fmt.Errorf("failed to scan credit card row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating credit card rows: %w", err)
	}

	return mapping.ToDomainCreditCardSlice(ms), nil
}

// UpdateCreditCardBalancesInTx writes the card's balance buckets within an
// existing transaction. The update only lands if the stored version still
// matches the one the caller read; zero affected rows means a concurrent
// writer won and the whole unit must abort.
func (r *PgxCreditCardRepository) UpdateCreditCardBalancesInTx(ctx context.Context, tx pgx.Tx, card domain.CreditCard) error {
	query := `
		UPDATE credit_cards
		SET used_amount = $1, due_amount = $2, emi_blocked_amount = $3, last_updated_at = $4, version = version + 1
		WHERE credit_card_id = $5 AND version = $6;
	`
	tag, err := tx.Exec(ctx, query,
		card.UsedAmount,
		card.DueAmount,
		card.EMIBlockedAmount,
		card.LastUpdatedAt,
		card.CreditCardID,
		card.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update credit card %s: %w", card.CreditCardID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewConflictError(fmt.Sprintf("credit card %s was modified concurrently", card.CreditCardID))
	}
	return nil
}
