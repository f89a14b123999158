package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintracker/personal_finance_app/internal/apperrors"
	"github.com/fintracker/personal_finance_app/internal/core/domain"
	portsrepo "github.com/fintracker/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/fintracker/personal_finance_app/internal/core/ports/services"
	"github.com/fintracker/personal_finance_app/internal/core/services"
	"github.com/fintracker/personal_finance_app/internal/dto"
)

// --- Mock AssetRepository ---
type MockAssetRepository struct {
	mock.Mock
}

var _ portsrepo.AssetRepositoryFacade = (*MockAssetRepository)(nil)

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) UpdateAssetValue(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) UpdateAssetValueInTx(ctx context.Context, tx pgx.Tx, asset domain.Asset) error {
	args := m.Called(ctx, tx, asset)
	return args.Error(0)
}

// --- Suite ---
type AssetServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAssetRepository
	service  portssvc.AssetSvcFacade

	ctx   context.Context
	asset domain.Asset
}

func (suite *AssetServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAssetRepository)
	suite.service = services.NewAssetService(suite.mockRepo)
	suite.ctx = context.Background()
	suite.asset = domain.Asset{
		AssetID:        uuid.NewString(),
		Name:           "Index Fund",
		Type:           "Mutual Fund",
		InvestedAmount: decimal.NewFromInt(5000),
		CurrentValue:   decimal.NewFromInt(5000),
		Versioned:      domain.Versioned{Version: 2},
	}
}

func (suite *AssetServiceTestSuite) TestCreateAsset() {
	suite.mockRepo.On("SaveAsset", suite.ctx, mock.MatchedBy(func(asset domain.Asset) bool {
		return asset.Name == "Gold" &&
			asset.InvestedAmount.IsZero() &&
			asset.CurrentValue.IsZero() &&
			asset.Version == 1 &&
			asset.AssetID != ""
	})).Return(nil).Once()

	asset, err := suite.service.CreateAsset(suite.ctx, dto.CreateAssetRequest{
		Name: "Gold",
		Type: "Commodity",
	})

	suite.NoError(err)
	suite.NotNil(asset)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestCreateAssetRejectsNegativeAmounts() {
	_, err := suite.service.CreateAsset(suite.ctx, dto.CreateAssetRequest{
		Name:           "Gold",
		Type:           "Commodity",
		InvestedAmount: decimal.NewFromInt(-1),
	})

	suite.ErrorIs(err, services.ErrNegativeAmount)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAsset", mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestRevalueAssetUpdatesValueOnly() {
	stored := suite.asset
	suite.mockRepo.On("FindAssetByID", suite.ctx, suite.asset.AssetID).Return(&stored, nil).Once()
	suite.mockRepo.On("UpdateAssetValue", suite.ctx, mock.MatchedBy(func(asset domain.Asset) bool {
		return asset.CurrentValue.Equal(decimal.NewFromInt(6000)) &&
			asset.InvestedAmount.Equal(decimal.NewFromInt(5000)) &&
			asset.Version == 2
	})).Return(nil).Once()

	asset, err := suite.service.RevalueAsset(suite.ctx, suite.asset.AssetID, decimal.NewFromInt(6000))

	suite.NoError(err)
	suite.True(asset.CurrentValue.Equal(decimal.NewFromInt(6000)))
	suite.True(asset.InvestedAmount.Equal(decimal.NewFromInt(5000)))
	suite.Equal(int64(3), asset.Version)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestRevalueAssetRejectsNegativeValue() {
	_, err := suite.service.RevalueAsset(suite.ctx, suite.asset.AssetID, decimal.NewFromInt(-100))

	suite.ErrorIs(err, services.ErrNegativeValue)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAssetValue", mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestRevalueAssetSurfacesVersionConflict() {
	stored := suite.asset
	suite.mockRepo.On("FindAssetByID", suite.ctx, suite.asset.AssetID).Return(&stored, nil).Once()
	suite.mockRepo.On("UpdateAssetValue", suite.ctx, mock.Anything).
		Return(apperrors.NewConflictError("asset was modified concurrently")).Once()

	_, err := suite.service.RevalueAsset(suite.ctx, suite.asset.AssetID, decimal.NewFromInt(7000))

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *AssetServiceTestSuite) TestGetAssetByIDNotFound() {
	suite.mockRepo.On("FindAssetByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAssetByID(suite.ctx, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AssetServiceTestSuite) TestListAssetsNormalizesNil() {
	suite.mockRepo.On("ListAssets", suite.ctx).Return(nil, nil).Once()

	assets, err := suite.service.ListAssets(suite.ctx)

	suite.NoError(err)
	suite.NotNil(assets)
	suite.Empty(assets)
}

func TestAssetService(t *testing.T) {
	suite.Run(t, new(AssetServiceTestSuite))
}
