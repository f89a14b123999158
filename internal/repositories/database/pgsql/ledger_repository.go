package pgsql

import (
	"context"

	"github.com/fintracker/personal_finance_app/internal/core/domain"
	portsrepo "github.com/fintracker/personal_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLedgerRepository executes the atomic units of the ledger: a log append
// plus at most one conditional entity write, committed together. It composes
// the entity repositories' *InTx methods instead of duplicating their SQL.
type PgxLedgerRepository struct {
	BaseRepository
	txnRepo   portsrepo.TransactionWriter
	cardRepo  portsrepo.CreditCardTransactionSupport
	loanRepo  portsrepo.LoanTransactionSupport
	assetRepo portsrepo.AssetTransactionSupport
}

// newPgxLedgerRepository creates the ledger repository on top of the entity
// repositories' transaction support.
func newPgxLedgerRepository(
	pool *pgxpool.Pool,
	txnRepo portsrepo.TransactionWriter,
	cardRepo portsrepo.CreditCardTransactionSupport,
	loanRepo portsrepo.LoanTransactionSupport,
	assetRepo portsrepo.AssetTransactionSupport,
) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		txnRepo:        txnRepo,
		cardRepo:       cardRepo,
		loanRepo:       loanRepo,
		assetRepo:      assetRepo,
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// inUnit runs fn inside one database transaction. Any error aborts the whole
// unit; the deferred rollback is a no-op after a successful commit.
func (r *PgxLedgerRepository) inUnit(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// RecordTransaction appends a transaction with no entity side effect. Still
// runs through a unit so failure semantics match the other operations.
func (r *PgxLedgerRepository) RecordTransaction(ctx context.Context, txn domain.Transaction) error {
	return r.inUnit(ctx, func(tx pgx.Tx) error {
		return r.txnRepo.SaveTransactionInTx(ctx, tx, txn)
	})
}

// RecordWithCreditCard appends a transaction and writes the card's balance
// buckets in one unit.
func (r *PgxLedgerRepository) RecordWithCreditCard(ctx context.Context, txn domain.Transaction, card domain.CreditCard) error {
	return r.inUnit(ctx, func(tx pgx.Tx) error {
		if err := r.txnRepo.SaveTransactionInTx(ctx, tx, txn); err != nil {
			return err
		}
		return r.cardRepo.UpdateCreditCardBalancesInTx(ctx, tx, card)
	})
}

// RecordWithLoan appends a transaction and writes the loan's installment
// state in one unit.
func (r *PgxLedgerRepository) RecordWithLoan(ctx context.Context, txn domain.Transaction, loan domain.Loan) error {
	return r.inUnit(ctx, func(tx pgx.Tx) error {
		if err := r.txnRepo.SaveTransactionInTx(ctx, tx, txn); err != nil {
			return err
		}
		return r.loanRepo.UpdateLoanScheduleInTx(ctx, tx, loan)
	})
}

// RecordWithAsset appends a transaction and writes the asset's value fields
// in one unit.
func (r *PgxLedgerRepository) RecordWithAsset(ctx context.Context, txn domain.Transaction, asset domain.Asset) error {
	return r.inUnit(ctx, func(tx pgx.Tx) error {
		if err := r.txnRepo.SaveTransactionInTx(ctx, tx, txn); err != nil {
			return err
		}
		return r.assetRepo.UpdateAssetValueInTx(ctx, tx, asset)
	})
}

// RecordConversion appends the conversion transaction, creates the loan and
// debits the card in one unit. The card update runs last: if a concurrent
// writer bumped the card's version, the freshly inserted loan and transaction
// roll back with it, so no reader ever sees the loan without the card debit.
func (r *PgxLedgerRepository) RecordConversion(ctx context.Context, txn domain.Transaction, card domain.CreditCard, loan domain.Loan) error {
	return r.inUnit(ctx, func(tx pgx.Tx) error {
		if err := r.txnRepo.SaveTransactionInTx(ctx, tx, txn); err != nil {
			return err
		}
		if err := r.loanRepo.SaveLoanInTx(ctx, tx, loan); err != nil {
			return err
		}
		return r.cardRepo.UpdateCreditCardBalancesInTx(ctx, tx, card)
	})
}
