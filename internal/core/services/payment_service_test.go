package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/mgiraudo/club_payments_app/internal/apperrors"
	"github.com/mgiraudo/club_payments_app/internal/core/domain"
	portsrepo "github.com/mgiraudo/club_payments_app/internal/core/ports/repositories"
	portssvc "github.com/mgiraudo/club_payments_app/internal/core/ports/services"
	"github.com/mgiraudo/club_payments_app/internal/core/services"
	"github.com/mgiraudo/club_payments_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockClientRepository is a mock type for the ClientRepositoryFacade interface
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByName(ctx context.Context, name string) (*domain.Client, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClientNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockClientRepository) CreateClient(ctx context.Context, name string) (*domain.Client, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) SetLastPayment(ctx context.Context, clientID int64, paymentID *int64) error {
	args := m.Called(ctx, clientID, paymentID)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID int64) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

var _ portsrepo.ClientRepositoryFacade = (*MockClientRepository)(nil)

// MockPaymentRepository is a mock type for the PaymentRepositoryFacade interface
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentDetailByID(ctx context.Context, paymentID int64) (*domain.PaymentDetail, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentDetail), args.Error(1)
}

func (m *MockPaymentRepository) HasPaymentForPeriod(ctx context.Context, clientID int64, month, year int, excludeID int64) (bool, error) {
	args := m.Called(ctx, clientID, month, year, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) FindLatestPayment(ctx context.Context, clientID int64) (*domain.Payment, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) CreatePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) (int64, error) {
	args := m.Called(ctx, paymentID)
	return args.Get(0).(int64), args.Error(1)
}

var _ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)

// --- Test Suite Setup ---

var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockClientRepo  *MockClientRepository
	mockPaymentRepo *MockPaymentRepository
	service         portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.service = services.NewPaymentService(
		suite.mockClientRepo,
		suite.mockPaymentRepo,
		services.WithClock(func() time.Time { return fixedNow }),
	)
}

func ptrTo(id int64) *int64 {
	return &id
}

// pointerTo matches a *int64 argument pointing at the given value.
func pointerTo(id int64) interface{} {
	return mock.MatchedBy(func(p *int64) bool {
		return p != nil && *p == id
	})
}

// --- RegisterPayment ---

func (suite *PaymentServiceTestSuite) TestRegisterPayment_FirstPaymentCreatesClient() {
	ctx := context.Background()
	req := dto.RegisterPaymentRequest{
		Name:   "JUAN PEREZ",
		Amount: decimal.NewFromInt(20000),
		Month:  3,
		Year:   2024,
	}

	newClient := &domain.Client{ClientID: 7, Name: "JUAN PEREZ"}
	created := &domain.Payment{PaymentID: 41, ClientID: 7, Amount: req.Amount, Month: 3, Year: 2024, Date: fixedNow}

	suite.mockClientRepo.On("FindClientByName", ctx, "JUAN PEREZ").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClientRepo.On("CreateClient", ctx, "JUAN PEREZ").Return(newClient, nil).Once()
	suite.mockPaymentRepo.On("HasPaymentForPeriod", ctx, int64(7), 3, 2024, int64(0)).Return(false, nil).Once()
	suite.mockPaymentRepo.On("CreatePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.ClientID == 7 && p.Month == 3 && p.Year == 2024 && p.Date.Equal(fixedNow)
	})).Return(created, nil).Once()
	suite.mockClientRepo.On("SetLastPayment", ctx, int64(7), pointerTo(41)).Return(nil).Once()

	result, err := suite.service.RegisterPayment(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.False(result.NeedsConfirmation)
	suite.Require().NotNil(result.Payment)
	suite.Equal(int64(41), result.Payment.PaymentID)

	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRegisterPayment_NegativeAmountRejected() {
	ctx := context.Background()
	req := dto.RegisterPaymentRequest{
		Name:   "JUAN PEREZ",
		Amount: decimal.NewFromInt(-100),
		Month:  3,
		Year:   2024,
	}

	result, err := suite.service.RegisterPayment(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockClientRepo.AssertNotCalled(suite.T(), "FindClientByName", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_InvalidMonthRejected() {
	ctx := context.Background()
	req := dto.UpdatePaymentRequest{
		Amount: decimal.NewFromInt(20000),
		Month:  13,
		Year:   2024,
	}

	payment, err := suite.service.UpdatePayment(ctx, 5, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "FindPaymentByID", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRegisterPayment_DuplicatePeriodRejected() {
	ctx := context.Background()
	client := &domain.Client{ClientID: 7, Name: "JUAN PEREZ", LastPaymentID: ptrTo(10)}
	req := dto.RegisterPaymentRequest{
		Name:   "JUAN PEREZ",
		Amount: decimal.NewFromInt(25000),
		Month:  3,
		Year:   2024,
	}

	suite.mockClientRepo.On("FindClientByName", ctx, "JUAN PEREZ").Return(client, nil).Once()
	suite.mockPaymentRepo.On("HasPaymentForPeriod", ctx, int64(7), 3, 2024, int64(0)).Return(true, nil).Once()

	result, err := suite.service.RegisterPayment(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	// Duplicates short-circuit before cadence validation or any write.
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "FindPaymentByID", mock.Anything, mock.Anything)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "CreatePayment", mock.Anything, mock.Anything)
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRegisterPayment_CadenceGapNeedsConfirmation() {
	ctx := context.Background()
	client := &domain.Client{ClientID: 7, Name: "JUAN PEREZ", LastPaymentID: ptrTo(10)}
	lastPayment := &domain.Payment{PaymentID: 10, ClientID: 7, Month: 12, Year: 2023}
	req := dto.RegisterPaymentRequest{
		Name:   "JUAN PEREZ",
		Amount: decimal.NewFromInt(25000),
		Month:  2,
		Year:   2024,
	}

	suite.mockClientRepo.On("FindClientByName", ctx, "JUAN PEREZ").Return(client, nil).Once()
	suite.mockPaymentRepo.On("HasPaymentForPeriod", ctx, int64(7), 2, 2024, int64(0)).Return(false, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(10)).Return(lastPayment, nil).Once()

	result, err := suite.service.RegisterPayment(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.True(result.NeedsConfirmation)
	suite.Require().NotNil(result.Expected)
	// December 2023 rolls over: the expected period is January 2024.
	suite.Equal(domain.Period{Year: 2024, Month: 1}, *result.Expected)
	suite.Nil(result.Payment)

	// Nothing may be written while the registration is paused.
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "CreatePayment", mock.Anything, mock.Anything)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "SetLastPayment", mock.Anything, mock.Anything, mock.Anything)
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRegisterPayment_SkipValidationCreatesAndMovesPointer() {
	ctx := context.Background()
	client := &domain.Client{ClientID: 7, Name: "JUAN PEREZ", LastPaymentID: ptrTo(10)}
	lastPayment := &domain.Payment{PaymentID: 10, ClientID: 7, Month: 12, Year: 2023}
	created := &domain.Payment{PaymentID: 42, ClientID: 7, Month: 2, Year: 2024, Date: fixedNow}
	req := dto.RegisterPaymentRequest{
		Name:           "JUAN PEREZ",
		Amount:         decimal.NewFromInt(25000),
		Month:          2,
		Year:           2024,
		SkipValidation: true,
	}

	suite.mockClientRepo.On("FindClientByName", ctx, "JUAN PEREZ").Return(client, nil).Once()
	suite.mockPaymentRepo.On("HasPaymentForPeriod", ctx, int64(7), 2, 2024, int64(0)).Return(false, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(10)).Return(lastPayment, nil).Once()
	suite.mockPaymentRepo.On("CreatePayment", ctx, mock.AnythingOfType("domain.Payment")).Return(created, nil).Once()
	suite.mockClientRepo.On("SetLastPayment", ctx, int64(7), pointerTo(42)).Return(nil).Once()

	result, err := suite.service.RegisterPayment(ctx, req)

	suite.Require().NoError(err)
	suite.False(result.NeedsConfirmation)
	suite.Require().NotNil(result.Payment)
	suite.Equal(int64(42), result.Payment.PaymentID)

	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRegisterPayment_ExpectedNextMonthAcceptedDirectly() {
	ctx := context.Background()
	client := &domain.Client{ClientID: 7, Name: "JUAN PEREZ", LastPaymentID: ptrTo(10)}
	lastPayment := &domain.Payment{PaymentID: 10, ClientID: 7, Month: 1, Year: 2024}
	created := &domain.Payment{PaymentID: 43, ClientID: 7, Month: 2, Year: 2024, Date: fixedNow}
	req := dto.RegisterPaymentRequest{
		Name:   "JUAN PEREZ",
		Amount: decimal.NewFromInt(25000),
		Month:  2,
		Year:   2024,
	}

	suite.mockClientRepo.On("FindClientByName", ctx, "JUAN PEREZ").Return(client, nil).Once()
	suite.mockPaymentRepo.On("HasPaymentForPeriod", ctx, int64(7), 2, 2024, int64(0)).Return(false, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(10)).Return(lastPayment, nil).Once()
	suite.mockPaymentRepo.On("CreatePayment", ctx, mock.AnythingOfType("domain.Payment")).Return(created, nil).Once()
	suite.mockClientRepo.On("SetLastPayment", ctx, int64(7), pointerTo(43)).Return(nil).Once()

	result, err := suite.service.RegisterPayment(ctx, req)

	suite.Require().NoError(err)
	suite.False(result.NeedsConfirmation)

	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRegisterPayment_BackfillNeverMovesPointer() {
	ctx := context.Background()
	client := &domain.Client{ClientID: 7, Name: "JUAN PEREZ", LastPaymentID: ptrTo(10)}
	lastPayment := &domain.Payment{PaymentID: 10, ClientID: 7, Month: 6, Year: 2024}
	created := &domain.Payment{PaymentID: 44, ClientID: 7, Month: 1, Year: 2024, Date: fixedNow}
	req := dto.RegisterPaymentRequest{
		Name:           "JUAN PEREZ",
		Amount:         decimal.NewFromInt(25000),
		Month:          1,
		Year:           2024,
		SkipValidation: true,
	}

	suite.mockClientRepo.On("FindClientByName", ctx, "JUAN PEREZ").Return(client, nil).Once()
	suite.mockPaymentRepo.On("HasPaymentForPeriod", ctx, int64(7), 1, 2024, int64(0)).Return(false, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(10)).Return(lastPayment, nil).Once()
	suite.mockPaymentRepo.On("CreatePayment", ctx, mock.AnythingOfType("domain.Payment")).Return(created, nil).Once()

	result, err := suite.service.RegisterPayment(ctx, req)

	suite.Require().NoError(err)
	suite.False(result.NeedsConfirmation)
	suite.Require().NotNil(result.Payment)

	// The backfilled payment is historical; the pointer stays where it was.
	suite.mockClientRepo.AssertNotCalled(suite.T(), "SetLastPayment", mock.Anything, mock.Anything, mock.Anything)
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRegisterPayment_CreateFailureSurfaces() {
	ctx := context.Background()
	req := dto.RegisterPaymentRequest{
		Name:   "JUAN PEREZ",
		Amount: decimal.NewFromInt(20000),
		Month:  3,
		Year:   2024,
	}
	newClient := &domain.Client{ClientID: 7, Name: "JUAN PEREZ"}
	expectedErr := assert.AnError

	suite.mockClientRepo.On("FindClientByName", ctx, "JUAN PEREZ").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClientRepo.On("CreateClient", ctx, "JUAN PEREZ").Return(newClient, nil).Once()
	suite.mockPaymentRepo.On("HasPaymentForPeriod", ctx, int64(7), 3, 2024, int64(0)).Return(false, nil).Once()
	suite.mockPaymentRepo.On("CreatePayment", ctx, mock.AnythingOfType("domain.Payment")).Return(nil, expectedErr).Once()

	result, err := suite.service.RegisterPayment(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, expectedErr)

	suite.mockClientRepo.AssertNotCalled(suite.T(), "SetLastPayment", mock.Anything, mock.Anything, mock.Anything)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRegisterPayment_PointerUpdateFailureSurfaces() {
	ctx := context.Background()
	req := dto.RegisterPaymentRequest{
		Name:   "JUAN PEREZ",
		Amount: decimal.NewFromInt(20000),
		Month:  3,
		Year:   2024,
	}
	newClient := &domain.Client{ClientID: 7, Name: "JUAN PEREZ"}
	created := &domain.Payment{PaymentID: 45, ClientID: 7, Month: 3, Year: 2024, Date: fixedNow}
	expectedErr := assert.AnError

	suite.mockClientRepo.On("FindClientByName", ctx, "JUAN PEREZ").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClientRepo.On("CreateClient", ctx, "JUAN PEREZ").Return(newClient, nil).Once()
	suite.mockPaymentRepo.On("HasPaymentForPeriod", ctx, int64(7), 3, 2024, int64(0)).Return(false, nil).Once()
	suite.mockPaymentRepo.On("CreatePayment", ctx, mock.AnythingOfType("domain.Payment")).Return(created, nil).Once()
	suite.mockClientRepo.On("SetLastPayment", ctx, int64(7), pointerTo(45)).Return(expectedErr).Once()

	result, err := suite.service.RegisterPayment(ctx, req)

	// The payment row exists but the pointer is stale; the engine reports the
	// failure without compensating.
	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, expectedErr)

	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

// --- UpdatePayment ---

func (suite *PaymentServiceTestSuite) TestUpdatePayment_EditedPaymentBecomesLatest() {
	ctx := context.Background()
	existing := &domain.Payment{PaymentID: 5, ClientID: 7, Amount: decimal.NewFromInt(20000), Month: 3, Year: 2024}
	req := dto.UpdatePaymentRequest{
		Amount: decimal.NewFromInt(30000),
		Month:  4,
		Year:   2024,
	}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(5)).Return(existing, nil).Once()
	suite.mockPaymentRepo.On("HasPaymentForPeriod", ctx, int64(7), 4, 2024, int64(5)).Return(false, nil).Once()
	suite.mockPaymentRepo.On("UpdatePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.PaymentID == 5 && p.Month == 4 && p.Year == 2024 && p.Amount.Equal(decimal.NewFromInt(30000))
	})).Return(nil).Once()
	suite.mockPaymentRepo.On("FindLatestPayment", ctx, int64(7)).Return(&domain.Payment{PaymentID: 5, ClientID: 7, Month: 4, Year: 2024}, nil).Once()
	suite.mockClientRepo.On("SetLastPayment", ctx, int64(7), pointerTo(5)).Return(nil).Once()

	payment, err := suite.service.UpdatePayment(ctx, 5, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.Equal(4, payment.Month)
	suite.True(payment.Amount.Equal(decimal.NewFromInt(30000)))

	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_RepointsToOtherPaymentWhenEditedMovesBack() {
	ctx := context.Background()
	existing := &domain.Payment{PaymentID: 5, ClientID: 7, Amount: decimal.NewFromInt(20000), Month: 6, Year: 2024}
	req := dto.UpdatePaymentRequest{
		Amount: decimal.NewFromInt(20000),
		Month:  1,
		Year:   2024,
	}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(5)).Return(existing, nil).Once()
	suite.mockPaymentRepo.On("HasPaymentForPeriod", ctx, int64(7), 1, 2024, int64(5)).Return(false, nil).Once()
	suite.mockPaymentRepo.On("UpdatePayment", ctx, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	// The edited payment is no longer the latest; payment 9 is.
	suite.mockPaymentRepo.On("FindLatestPayment", ctx, int64(7)).Return(&domain.Payment{PaymentID: 9, ClientID: 7, Month: 5, Year: 2024}, nil).Once()
	suite.mockClientRepo.On("SetLastPayment", ctx, int64(7), pointerTo(9)).Return(nil).Once()

	_, err := suite.service.UpdatePayment(ctx, 5, req)

	suite.Require().NoError(err)
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_DuplicatePeriodRejected() {
	ctx := context.Background()
	existing := &domain.Payment{PaymentID: 5, ClientID: 7, Month: 3, Year: 2024}
	req := dto.UpdatePaymentRequest{
		Amount: decimal.NewFromInt(20000),
		Month:  4,
		Year:   2024,
	}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(5)).Return(existing, nil).Once()
	suite.mockPaymentRepo.On("HasPaymentForPeriod", ctx, int64(7), 4, 2024, int64(5)).Return(true, nil).Once()

	payment, err := suite.service.UpdatePayment(ctx, 5, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "UpdatePayment", mock.Anything, mock.Anything)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_NotFound() {
	ctx := context.Background()
	req := dto.UpdatePaymentRequest{
		Amount: decimal.NewFromInt(20000),
		Month:  4,
		Year:   2024,
	}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	payment, err := suite.service.UpdatePayment(ctx, 99, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- DeletePayment ---

func (suite *PaymentServiceTestSuite) TestDeletePayment_RepointsToLatestSurvivor() {
	ctx := context.Background()

	suite.mockPaymentRepo.On("DeletePayment", ctx, int64(5)).Return(int64(7), nil).Once()
	suite.mockPaymentRepo.On("FindLatestPayment", ctx, int64(7)).Return(&domain.Payment{PaymentID: 3, ClientID: 7, Month: 2, Year: 2024}, nil).Once()
	suite.mockClientRepo.On("SetLastPayment", ctx, int64(7), pointerTo(3)).Return(nil).Once()

	err := suite.service.DeletePayment(ctx, 5)

	suite.Require().NoError(err)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "DeleteClient", mock.Anything, mock.Anything)
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestDeletePayment_LastPaymentDeletesClient() {
	ctx := context.Background()

	suite.mockPaymentRepo.On("DeletePayment", ctx, int64(5)).Return(int64(7), nil).Once()
	suite.mockPaymentRepo.On("FindLatestPayment", ctx, int64(7)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClientRepo.On("DeleteClient", ctx, int64(7)).Return(nil).Once()

	err := suite.service.DeletePayment(ctx, 5)

	suite.Require().NoError(err)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "SetLastPayment", mock.Anything, mock.Anything, mock.Anything)
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestDeletePayment_NotFound() {
	ctx := context.Background()

	suite.mockPaymentRepo.On("DeletePayment", ctx, int64(99)).Return(int64(0), apperrors.ErrNotFound).Once()

	err := suite.service.DeletePayment(ctx, 99)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestDeletePayment_ClientDeleteFailureSurfaces() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockPaymentRepo.On("DeletePayment", ctx, int64(5)).Return(int64(7), nil).Once()
	suite.mockPaymentRepo.On("FindLatestPayment", ctx, int64(7)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClientRepo.On("DeleteClient", ctx, int64(7)).Return(expectedErr).Once()

	err := suite.service.DeletePayment(ctx, 5)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

// --- GetPaymentByID ---

func (suite *PaymentServiceTestSuite) TestGetPaymentByID_Success() {
	ctx := context.Background()
	detail := &domain.PaymentDetail{
		Payment:    domain.Payment{PaymentID: 5, ClientID: 7, Month: 3, Year: 2024},
		ClientName: "JUAN PEREZ",
	}

	suite.mockPaymentRepo.On("FindPaymentDetailByID", ctx, int64(5)).Return(detail, nil).Once()

	got, err := suite.service.GetPaymentByID(ctx, 5)

	suite.Require().NoError(err)
	suite.Equal("JUAN PEREZ", got.ClientName)
}

func (suite *PaymentServiceTestSuite) TestGetPaymentByID_NotFound() {
	ctx := context.Background()

	suite.mockPaymentRepo.On("FindPaymentDetailByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetPaymentByID(ctx, 99)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
