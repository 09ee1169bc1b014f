package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/expense_settlement_app/internal/apperrors"
	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_settlement_app/internal/core/ports/services"
	"github.com/SscSPs/expense_settlement_app/internal/core/services"
	"github.com/SscSPs/expense_settlement_app/internal/core/settlement"
	"github.com/SscSPs/expense_settlement_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	ownerID = "user-owner"
	eventID = "event-1"
)

var fixedNow = time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)

func activeEvent() *domain.Event {
	return &domain.Event{EventID: eventID, OwnerUserID: ownerID, Name: "Lisbon trip", DefaultCurrency: "GBP", IsActive: true}
}

func storedExpense(id string) domain.Expense {
	return domain.Expense{ExpenseID: id, EventID: eventID, CurrencyCode: "GBP", IsActive: true}
}

func rootParticipant(id, name string) domain.Participant {
	return domain.Participant{ParticipantID: id, DisplayName: name, ParentID: id, ParentName: name}
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// gbpRequest is the two-expense scenario: A pays 20 split evenly with B,
// then B pays 10 split evenly with A.
func gbpRequest() dto.CreateCalculationRequest {
	return dto.CreateCalculationRequest{
		BaseCurrency: "GBP",
		Purpose:      "end of trip",
		Options:      dto.CalculationOptionsRequest{ExpenseSelection: "ALL", SplitCost: "EQUAL", ExchangeRate: "SYSTEM"},
		ExpensesInvolved: []dto.ExpenseShareRequest{
			{ExpenseID: "e1", CurrencyCode: "GBP", Amount: amount("20"), PaidBy: "a", Splits: []dto.SplitLineRequest{
				{ParticipantID: "a", Amount: amount("10")}, {ParticipantID: "b", Amount: amount("10")},
			}},
			{ExpenseID: "e2", CurrencyCode: "GBP", Amount: amount("10"), PaidBy: "b", Splits: []dto.SplitLineRequest{
				{ParticipantID: "a", Amount: amount("5")}, {ParticipantID: "b", Amount: amount("5")},
			}},
		},
	}
}

type CalculationServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	tx              *fakeTx
	calcRepo        *MockCalculationRepository
	eventRepo       *MockEventRepository
	participantRepo *MockParticipantRepository
	expenseRepo     *MockExpenseRepository
	rateService     *MockRateTableService
	service         portssvc.CalculationSvcFacade
}

func (suite *CalculationServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.tx = &fakeTx{}
	suite.calcRepo = new(MockCalculationRepository)
	suite.eventRepo = new(MockEventRepository)
	suite.participantRepo = new(MockParticipantRepository)
	suite.expenseRepo = new(MockExpenseRepository)
	suite.rateService = new(MockRateTableService)

	clock := func() time.Time { return fixedNow }
	suite.service = services.NewCalculationService(
		suite.calcRepo,
		suite.eventRepo,
		suite.participantRepo,
		suite.expenseRepo,
		suite.rateService,
		settlement.NewShareTokenManager(settlement.DefaultShareTokenExpiry, clock),
		services.WithCalculationClock(clock),
		services.WithCalculationIDGenerator(func() string { return "calc-1" }),
	)
}

// expectLookups wires the reads that precede the engine run for gbpRequest.
func (suite *CalculationServiceTestSuite) expectLookups(rates domain.RateTable) {
	suite.eventRepo.On("FindEventByID", suite.ctx, eventID).Return(activeEvent(), nil).Once()
	suite.expenseRepo.On("FindExpensesByIDs", suite.ctx, []string{"e1", "e2"}).
		Return([]domain.Expense{storedExpense("e1"), storedExpense("e2")}, nil).Once()
	suite.rateService.On("GetRateTable", suite.ctx, "GBP").Return(rates, nil).Once()
	suite.participantRepo.On("FindParticipantsByIDs", suite.ctx, []string{"a", "b"}).
		Return(map[string]domain.Participant{"a": rootParticipant("a", "A"), "b": rootParticipant("b", "B")}, nil).Once()
}

func (suite *CalculationServiceTestSuite) TestCreateCalculation_Success() {
	suite.expectLookups(domain.RateTable{"USD": amount("1.27")})

	var saved domain.Calculation
	suite.calcRepo.On("Begin", suite.ctx).Return(suite.tx, nil).Once()
	suite.calcRepo.On("SaveCalculationInTx", suite.ctx, suite.tx, mock.AnythingOfType("domain.Calculation")).
		Run(func(args mock.Arguments) { saved = args.Get(2).(domain.Calculation) }).
		Return(nil).Once()
	suite.expenseRepo.On("MarkExpensesCalculatedInTx", suite.ctx, suite.tx, []string{"e1", "e2"}, ownerID, fixedNow).Return(nil).Once()
	suite.calcRepo.On("Commit", suite.ctx, suite.tx).Return(nil).Once()

	calc, err := suite.service.CreateCalculation(suite.ctx, eventID, gbpRequest(), ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(calc)
	suite.Equal("calc-1", calc.CalculationID)
	suite.Equal(eventID, calc.EventID)
	suite.Equal("GBP", calc.BaseCurrency)
	suite.Equal("end of trip", calc.Purpose)
	suite.Equal("EQUAL", calc.Options.SplitCost)
	suite.True(calc.IsActive)
	suite.Equal(2, calc.ParticipantCount)
	suite.Equal("30.00", calc.TotalAmount.StringFixed(2))
	suite.Equal([]string{"GBP"}, calc.InvolvedCurrencies)

	net, ok := calc.LedgerSimplified.Amount("A_a", "B_b")
	suite.Require().True(ok)
	suite.Equal("5.00", net.StringFixed(2))
	suite.Len(calc.LedgerSimplified, 1)

	suite.Len(calc.ShareToken, 40)
	suite.Require().NotNil(calc.ShareTokenExpiry)
	suite.Equal(fixedNow.Add(settlement.DefaultShareTokenExpiry), *calc.ShareTokenExpiry)

	// No override means the system table is used and recorded twice.
	suite.True(calc.SystemRates["USD"].Equal(amount("1.27")))
	suite.True(calc.CalculationRates["USD"].Equal(amount("1.27")))

	suite.Equal(calc.CalculationID, saved.CalculationID)
	suite.Equal(calc.ShareToken, saved.ShareToken)

	suite.calcRepo.AssertExpectations(suite.T())
	suite.expenseRepo.AssertExpectations(suite.T())
	suite.calcRepo.AssertNotCalled(suite.T(), "Rollback", mock.Anything, mock.Anything)
}

func (suite *CalculationServiceTestSuite) TestCreateCalculation_CallerRatesOverrideSystemTable() {
	req := dto.CreateCalculationRequest{
		BaseCurrency:  "GBP",
		ExchangeRates: map[string]decimal.Decimal{"USD": amount("1.2")},
		ExpensesInvolved: []dto.ExpenseShareRequest{
			{ExpenseID: "e1", CurrencyCode: "USD", Amount: amount("9"), PaidBy: "a", Splits: []dto.SplitLineRequest{
				{ParticipantID: "b", Amount: amount("9")},
			}},
		},
	}
	suite.eventRepo.On("FindEventByID", suite.ctx, eventID).Return(activeEvent(), nil).Once()
	suite.expenseRepo.On("FindExpensesByIDs", suite.ctx, []string{"e1"}).Return([]domain.Expense{storedExpense("e1")}, nil).Once()
	suite.rateService.On("GetRateTable", suite.ctx, "GBP").Return(domain.RateTable{"USD": amount("1.5")}, nil).Once()
	suite.participantRepo.On("FindParticipantsByIDs", suite.ctx, []string{"a", "b"}).
		Return(map[string]domain.Participant{"a": rootParticipant("a", "A"), "b": rootParticipant("b", "B")}, nil).Once()
	suite.calcRepo.On("Begin", suite.ctx).Return(suite.tx, nil).Once()
	suite.calcRepo.On("SaveCalculationInTx", suite.ctx, suite.tx, mock.AnythingOfType("domain.Calculation")).Return(nil).Once()
	suite.expenseRepo.On("MarkExpensesCalculatedInTx", suite.ctx, suite.tx, []string{"e1"}, ownerID, fixedNow).Return(nil).Once()
	suite.calcRepo.On("Commit", suite.ctx, suite.tx).Return(nil).Once()

	calc, err := suite.service.CreateCalculation(suite.ctx, eventID, req, ownerID)

	suite.Require().NoError(err)
	owed, ok := calc.LedgerDirect.Amount("A_a", "B_b")
	suite.Require().True(ok)
	suite.Equal("7.50", owed.StringFixed(2))
	suite.True(calc.SystemRates["USD"].Equal(amount("1.5")))
	suite.True(calc.CalculationRates["USD"].Equal(amount("1.2")))
	suite.Equal(1, calc.ParticipantCount)
}

func (suite *CalculationServiceTestSuite) TestCreateCalculation_RollsBackWhenMarkingFails() {
	suite.expectLookups(domain.RateTable{})
	dbErr := errors.New("connection reset")

	suite.calcRepo.On("Begin", suite.ctx).Return(suite.tx, nil).Once()
	suite.calcRepo.On("SaveCalculationInTx", suite.ctx, suite.tx, mock.AnythingOfType("domain.Calculation")).Return(nil).Once()
	suite.expenseRepo.On("MarkExpensesCalculatedInTx", suite.ctx, suite.tx, []string{"e1", "e2"}, ownerID, fixedNow).Return(dbErr).Once()
	suite.calcRepo.On("Rollback", suite.ctx, suite.tx).Return(nil).Once()

	calc, err := suite.service.CreateCalculation(suite.ctx, eventID, gbpRequest(), ownerID)

	suite.Require().Error(err)
	suite.Nil(calc)
	suite.ErrorIs(err, apperrors.ErrPersistence)
	suite.ErrorIs(err, dbErr)
	suite.calcRepo.AssertExpectations(suite.T())
	suite.calcRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *CalculationServiceTestSuite) TestCreateCalculation_RollsBackWhenSaveFails() {
	suite.expectLookups(domain.RateTable{})

	suite.calcRepo.On("Begin", suite.ctx).Return(suite.tx, nil).Once()
	suite.calcRepo.On("SaveCalculationInTx", suite.ctx, suite.tx, mock.AnythingOfType("domain.Calculation")).Return(errors.New("insert failed")).Once()
	suite.calcRepo.On("Rollback", suite.ctx, suite.tx).Return(nil).Once()

	_, err := suite.service.CreateCalculation(suite.ctx, eventID, gbpRequest(), ownerID)

	suite.ErrorIs(err, apperrors.ErrPersistence)
	suite.calcRepo.AssertExpectations(suite.T())
	suite.expenseRepo.AssertNotCalled(suite.T(), "MarkExpensesCalculatedInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CalculationServiceTestSuite) TestCreateCalculation_ConcurrentMarkingIsValidationError() {
	suite.expectLookups(domain.RateTable{})
	raced := apperrors.NewValidationError("expense already calculated: expected to mark 2 expenses, marked 1")

	suite.calcRepo.On("Begin", suite.ctx).Return(suite.tx, nil).Once()
	suite.calcRepo.On("SaveCalculationInTx", suite.ctx, suite.tx, mock.AnythingOfType("domain.Calculation")).Return(nil).Once()
	suite.expenseRepo.On("MarkExpensesCalculatedInTx", suite.ctx, suite.tx, []string{"e1", "e2"}, ownerID, fixedNow).Return(raced).Once()
	suite.calcRepo.On("Rollback", suite.ctx, suite.tx).Return(nil).Once()

	calc, err := suite.service.CreateCalculation(suite.ctx, eventID, gbpRequest(), ownerID)

	suite.Nil(calc)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, apperrors.ErrPersistence)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
	suite.calcRepo.AssertExpectations(suite.T())
	suite.calcRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *CalculationServiceTestSuite) TestCreateCalculation_LowercaseCurrencyCodes() {
	req := gbpRequest()
	req.BaseCurrency = "gbp"
	req.ExpensesInvolved[0].CurrencyCode = "gbp"
	req.ExpensesInvolved[1].CurrencyCode = "Gbp"
	suite.expectLookups(domain.RateTable{})

	var saved domain.Calculation
	suite.calcRepo.On("Begin", suite.ctx).Return(suite.tx, nil).Once()
	suite.calcRepo.On("SaveCalculationInTx", suite.ctx, suite.tx, mock.AnythingOfType("domain.Calculation")).
		Run(func(args mock.Arguments) { saved = args.Get(2).(domain.Calculation) }).
		Return(nil).Once()
	suite.expenseRepo.On("MarkExpensesCalculatedInTx", suite.ctx, suite.tx, []string{"e1", "e2"}, ownerID, fixedNow).Return(nil).Once()
	suite.calcRepo.On("Commit", suite.ctx, suite.tx).Return(nil).Once()

	calc, err := suite.service.CreateCalculation(suite.ctx, eventID, req, ownerID)

	suite.Require().NoError(err)
	suite.Equal("GBP", calc.BaseCurrency)
	suite.Equal([]string{"GBP"}, calc.InvolvedCurrencies)
	suite.Equal("30.00", calc.TotalAmount.StringFixed(2))
	for _, e := range saved.ExpensesInvolved {
		suite.Equal("GBP", e.CurrencyCode)
	}
	suite.rateService.AssertExpectations(suite.T())
}

func (suite *CalculationServiceTestSuite) TestCreateCalculation_RejectsAlreadyCalculatedExpense() {
	calculated := storedExpense("e2")
	calculated.IsCalculated = true
	suite.eventRepo.On("FindEventByID", suite.ctx, eventID).Return(activeEvent(), nil).Once()
	suite.expenseRepo.On("FindExpensesByIDs", suite.ctx, []string{"e1", "e2"}).
		Return([]domain.Expense{storedExpense("e1"), calculated}, nil).Once()

	_, err := suite.service.CreateCalculation(suite.ctx, eventID, gbpRequest(), ownerID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "already been calculated")
	suite.calcRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *CalculationServiceTestSuite) TestCreateCalculation_RejectsExpenseOfAnotherEvent() {
	foreign := storedExpense("e2")
	foreign.EventID = "event-2"
	suite.eventRepo.On("FindEventByID", suite.ctx, eventID).Return(activeEvent(), nil).Once()
	suite.expenseRepo.On("FindExpensesByIDs", suite.ctx, []string{"e1", "e2"}).
		Return([]domain.Expense{storedExpense("e1"), foreign}, nil).Once()

	_, err := suite.service.CreateCalculation(suite.ctx, eventID, gbpRequest(), ownerID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.calcRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *CalculationServiceTestSuite) TestCreateCalculation_RejectsDuplicateExpense() {
	req := gbpRequest()
	req.ExpensesInvolved[1].ExpenseID = "e1"
	suite.eventRepo.On("FindEventByID", suite.ctx, eventID).Return(activeEvent(), nil).Once()

	_, err := suite.service.CreateCalculation(suite.ctx, eventID, req, ownerID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.expenseRepo.AssertNotCalled(suite.T(), "FindExpensesByIDs", mock.Anything, mock.Anything)
}

func (suite *CalculationServiceTestSuite) TestCreateCalculation_NotOwner() {
	suite.eventRepo.On("FindEventByID", suite.ctx, eventID).Return(activeEvent(), nil).Once()

	_, err := suite.service.CreateCalculation(suite.ctx, eventID, gbpRequest(), "someone-else")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.expenseRepo.AssertNotCalled(suite.T(), "FindExpensesByIDs", mock.Anything, mock.Anything)
}

func (suite *CalculationServiceTestSuite) TestCreateCalculation_MissingRateAbortsBeforeWriting() {
	req := gbpRequest()
	req.ExpensesInvolved[0].CurrencyCode = "USD"
	suite.expectLookups(domain.RateTable{"EUR": amount("1.17")})

	_, err := suite.service.CreateCalculation(suite.ctx, eventID, req, ownerID)

	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
	suite.Contains(err.Error(), "USD")
	suite.calcRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *CalculationServiceTestSuite) TestCreateCalculation_UnknownParticipant() {
	suite.eventRepo.On("FindEventByID", suite.ctx, eventID).Return(activeEvent(), nil).Once()
	suite.expenseRepo.On("FindExpensesByIDs", suite.ctx, []string{"e1", "e2"}).
		Return([]domain.Expense{storedExpense("e1"), storedExpense("e2")}, nil).Once()
	suite.rateService.On("GetRateTable", suite.ctx, "GBP").Return(domain.RateTable{}, nil).Once()
	suite.participantRepo.On("FindParticipantsByIDs", suite.ctx, []string{"a", "b"}).
		Return(nil, apperrors.NewNotFoundError("participant 'b' not found")).Once()

	_, err := suite.service.CreateCalculation(suite.ctx, eventID, gbpRequest(), ownerID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.calcRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *CalculationServiceTestSuite) TestCreateCalculation_InvalidRequest() {
	tests := []struct {
		name string
		req  dto.CreateCalculationRequest
	}{
		{name: "bad base currency", req: dto.CreateCalculationRequest{BaseCurrency: "POUND", ExpensesInvolved: gbpRequest().ExpensesInvolved}},
		{name: "no expenses", req: dto.CreateCalculationRequest{BaseCurrency: "GBP"}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateCalculation(suite.ctx, eventID, tt.req, ownerID)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.eventRepo.AssertNotCalled(suite.T(), "FindEventByID", mock.Anything, mock.Anything)
}

func (suite *CalculationServiceTestSuite) TestGetCalculation_OtherEventIsNotFound() {
	suite.eventRepo.On("FindEventByID", suite.ctx, eventID).Return(activeEvent(), nil).Once()
	suite.calcRepo.On("FindCalculationByID", suite.ctx, "calc-9").
		Return(&domain.Calculation{CalculationID: "calc-9", EventID: "event-2", IsActive: true}, nil).Once()

	calc, err := suite.service.GetCalculation(suite.ctx, eventID, "calc-9", ownerID)

	suite.Nil(calc)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CalculationServiceTestSuite) TestListCalculations_InactiveEvent() {
	inactive := activeEvent()
	inactive.IsActive = false
	suite.eventRepo.On("FindEventByID", suite.ctx, eventID).Return(inactive, nil).Once()

	_, err := suite.service.ListCalculations(suite.ctx, eventID, ownerID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.calcRepo.AssertNotCalled(suite.T(), "ListCalculationsByEvent", mock.Anything, mock.Anything)
}

func (suite *CalculationServiceTestSuite) TestDeactivateCalculation_Success() {
	suite.eventRepo.On("FindEventByID", suite.ctx, eventID).Return(activeEvent(), nil).Once()
	suite.calcRepo.On("FindCalculationByID", suite.ctx, "calc-1").
		Return(&domain.Calculation{CalculationID: "calc-1", EventID: eventID, IsActive: true}, nil).Once()
	suite.calcRepo.On("DeactivateCalculation", suite.ctx, "calc-1", ownerID, fixedNow).Return(nil).Once()

	err := suite.service.DeactivateCalculation(suite.ctx, eventID, "calc-1", ownerID)

	suite.NoError(err)
	suite.calcRepo.AssertExpectations(suite.T())
}

func TestCalculationService(t *testing.T) {
	suite.Run(t, new(CalculationServiceTestSuite))
}
