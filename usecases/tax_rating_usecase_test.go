package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nuam-exchange/taxrating-backend/mocks"
	"github.com/nuam-exchange/taxrating-backend/models"
)

type TaxRatingUsecaseTestSuite struct {
	suite.Suite
	enforceSecurity    *mocks.EnforceSecurity
	executorFactory    *mocks.ExecutorFactory
	transactionFactory *mocks.TransactionFactory
	executorMock       *mocks.Executor
	transactionMock    *mocks.Transaction
	repository         *mocks.TaxRatingRepository
	auditRepository    *mocks.AuditRepository

	ratingId      string
	userId        models.UserId
	taxRating     models.TaxRating
	securityError error
}

func (suite *TaxRatingUsecaseTestSuite) SetupTest() {
	suite.enforceSecurity = new(mocks.EnforceSecurity)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executorMock = new(mocks.Executor)
	suite.transactionMock = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transactionMock}
	suite.repository = new(mocks.TaxRatingRepository)
	suite.auditRepository = new(mocks.AuditRepository)

	suite.ratingId = "7e1d84be-41d8-47e3-b0ae-9bd6d11f85c1"
	suite.userId = models.UserId("5a3c974c-5024-4b24-9a5a-6ed0cb3a9c62")
	suite.taxRating = models.TaxRating{
		Id:           suite.ratingId,
		IssuerId:     "0c5a0a79-9bd0-4ba2-8a3f-6cf2ab1b6501",
		InstrumentId: "d4f2de16-8a3f-43c5-93de-0ef1f9f6f002",
		Rating:       models.RatingAA,
		ValidFrom:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:       models.RatingVigente,
		CreatedBy:    suite.userId,
	}
	suite.securityError = errors.New("some security error")
}

func (suite *TaxRatingUsecaseTestSuite) makeUsecase() *TaxRatingUsecase {
	return &TaxRatingUsecase{
		enforceSecurity:    suite.enforceSecurity,
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		repository:         suite.repository,
		auditRepository:    suite.auditRepository,
		credentials: models.Credentials{
			ActorIdentity: models.Identity{UserId: suite.userId, FirstName: "Ana", LastName: "Rojas"},
			Role:          models.ANALISTA,
		},
	}
}

func (suite *TaxRatingUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.enforceSecurity.AssertExpectations(t)
	suite.repository.AssertExpectations(t)
	suite.auditRepository.AssertExpectations(t)
}

func (suite *TaxRatingUsecaseTestSuite) TestCreateTaxRatingNominal() {
	input := models.CreateTaxRatingInput{
		IssuerId:     suite.taxRating.IssuerId,
		InstrumentId: suite.taxRating.InstrumentId,
		Rating:       models.RatingAA,
		ValidFrom:    suite.taxRating.ValidFrom,
		Status:       models.RatingVigente,
	}

	suite.enforceSecurity.On("CreateTaxRating").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executorMock)
	suite.repository.On("GetIssuerById", mock.Anything, suite.executorMock, input.IssuerId).
		Return(models.Issuer{Id: input.IssuerId}, nil)
	suite.repository.On("GetInstrumentById", mock.Anything, suite.executorMock, input.InstrumentId).
		Return(models.Instrument{Id: input.InstrumentId}, nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.repository.On("CreateTaxRating", mock.Anything, suite.transactionMock, input,
		mock.AnythingOfType("string"), suite.userId).
		Return(nil)
	suite.auditRepository.On("CreateAuditEvent", mock.Anything, suite.transactionMock,
		mock.MatchedBy(func(event models.CreateAuditEventInput) bool {
			return event.Operation == models.AuditOperationCreate &&
				event.Table == "tax_ratings" &&
				event.Actor.Name == "Ana Rojas"
		})).
		Return(nil)
	suite.repository.On("GetTaxRatingById", mock.Anything, suite.transactionMock,
		mock.AnythingOfType("string")).
		Return(suite.taxRating, nil)

	taxRating, err := suite.makeUsecase().CreateTaxRating(context.Background(), input)

	suite.NoError(err)
	suite.Equal(suite.taxRating, taxRating)
	suite.AssertExpectations()
}

func (suite *TaxRatingUsecaseTestSuite) TestCreateTaxRatingInvalidDateRange() {
	input := models.CreateTaxRatingInput{
		IssuerId:     suite.taxRating.IssuerId,
		InstrumentId: suite.taxRating.InstrumentId,
		Rating:       models.RatingAA,
		ValidFrom:    time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:      null.TimeFrom(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		Status:       models.RatingVigente,
	}

	suite.enforceSecurity.On("CreateTaxRating").Return(nil)

	_, err := suite.makeUsecase().CreateTaxRating(context.Background(), input)

	suite.ErrorIs(err, models.BadParameterError)
	suite.repository.AssertNotCalled(suite.T(), "CreateTaxRating")
	suite.AssertExpectations()
}

func (suite *TaxRatingUsecaseTestSuite) TestCreateTaxRatingUnknownIssuer() {
	input := models.CreateTaxRatingInput{
		IssuerId:     suite.taxRating.IssuerId,
		InstrumentId: suite.taxRating.InstrumentId,
		Rating:       models.RatingAA,
		ValidFrom:    suite.taxRating.ValidFrom,
		Status:       models.RatingVigente,
	}

	suite.enforceSecurity.On("CreateTaxRating").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executorMock)
	suite.repository.On("GetIssuerById", mock.Anything, suite.executorMock, input.IssuerId).
		Return(models.Issuer{}, errors.Wrap(models.NotFoundError, "issuer"))

	_, err := suite.makeUsecase().CreateTaxRating(context.Background(), input)

	suite.ErrorIs(err, models.NotFoundError)
	suite.repository.AssertNotCalled(suite.T(), "CreateTaxRating")
	suite.AssertExpectations()
}

func (suite *TaxRatingUsecaseTestSuite) TestCreateTaxRatingSecurityError() {
	suite.enforceSecurity.On("CreateTaxRating").Return(suite.securityError)

	_, err := suite.makeUsecase().CreateTaxRating(context.Background(), models.CreateTaxRatingInput{})

	suite.ErrorIs(err, suite.securityError)
	suite.AssertExpectations()
}

func (suite *TaxRatingUsecaseTestSuite) TestUpdateTaxRatingNominal() {
	newRating := models.RatingBBB
	input := models.UpdateTaxRatingInput{
		Id:     suite.ratingId,
		Rating: &newRating,
	}
	updated := suite.taxRating
	updated.Rating = newRating

	suite.executorFactory.On("NewExecutor").Return(suite.executorMock)
	suite.repository.On("GetTaxRatingById", mock.Anything, suite.executorMock, suite.ratingId).
		Return(suite.taxRating, nil)
	suite.enforceSecurity.On("UpdateTaxRating", suite.taxRating).Return(nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.repository.On("UpdateTaxRating", mock.Anything, suite.transactionMock, input).
		Return(nil)
	suite.auditRepository.On("CreateAuditEvent", mock.Anything, suite.transactionMock,
		mock.MatchedBy(func(event models.CreateAuditEventInput) bool {
			return event.Operation == models.AuditOperationUpdate && event.EntityId == suite.ratingId
		})).
		Return(nil)
	suite.repository.On("GetTaxRatingById", mock.Anything, suite.transactionMock, suite.ratingId).
		Return(updated, nil)

	taxRating, err := suite.makeUsecase().UpdateTaxRating(context.Background(), input)

	suite.NoError(err)
	suite.Equal(updated, taxRating)
	suite.AssertExpectations()
}

func (suite *TaxRatingUsecaseTestSuite) TestUpdateTaxRatingInvalidDateRange() {
	input := models.UpdateTaxRatingInput{
		Id:      suite.ratingId,
		ValidTo: null.TimeFrom(suite.taxRating.ValidFrom.AddDate(0, 0, -1)),
	}

	suite.executorFactory.On("NewExecutor").Return(suite.executorMock)
	suite.repository.On("GetTaxRatingById", mock.Anything, suite.executorMock, suite.ratingId).
		Return(suite.taxRating, nil)
	suite.enforceSecurity.On("UpdateTaxRating", suite.taxRating).Return(nil)

	_, err := suite.makeUsecase().UpdateTaxRating(context.Background(), input)

	suite.ErrorIs(err, models.BadParameterError)
	suite.repository.AssertNotCalled(suite.T(), "UpdateTaxRating")
	suite.AssertExpectations()
}

func (suite *TaxRatingUsecaseTestSuite) TestDeleteTaxRatingNominal() {
	suite.executorFactory.On("NewExecutor").Return(suite.executorMock)
	suite.repository.On("GetTaxRatingById", mock.Anything, suite.executorMock, suite.ratingId).
		Return(suite.taxRating, nil)
	suite.enforceSecurity.On("DeleteTaxRating", suite.taxRating).Return(nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.repository.On("DeleteTaxRating", mock.Anything, suite.transactionMock, suite.ratingId).
		Return(nil)
	suite.auditRepository.On("CreateAuditEvent", mock.Anything, suite.transactionMock,
		mock.MatchedBy(func(event models.CreateAuditEventInput) bool {
			return event.Operation == models.AuditOperationDelete && event.EntityId == suite.ratingId
		})).
		Return(nil)

	err := suite.makeUsecase().DeleteTaxRating(context.Background(), suite.ratingId)

	suite.NoError(err)
	suite.AssertExpectations()
}

func (suite *TaxRatingUsecaseTestSuite) TestDeleteTaxRatingSecurityError() {
	suite.executorFactory.On("NewExecutor").Return(suite.executorMock)
	suite.repository.On("GetTaxRatingById", mock.Anything, suite.executorMock, suite.ratingId).
		Return(suite.taxRating, nil)
	suite.enforceSecurity.On("DeleteTaxRating", suite.taxRating).Return(suite.securityError)

	err := suite.makeUsecase().DeleteTaxRating(context.Background(), suite.ratingId)

	suite.ErrorIs(err, suite.securityError)
	suite.repository.AssertNotCalled(suite.T(), "DeleteTaxRating")
	suite.AssertExpectations()
}

func (suite *TaxRatingUsecaseTestSuite) TestListTaxRatings() {
	filters := models.TaxRatingFilters{Rating: "AA"}
	page := models.Paged[models.TaxRating]{
		Items: []models.TaxRating{suite.taxRating},
		Total: 1,
	}

	suite.enforceSecurity.On("ReadTaxRating").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executorMock)
	suite.repository.On("ListTaxRatings", mock.Anything, suite.executorMock, filters,
		models.Pagination{}.WithDefaults()).
		Return(page, nil)

	result, err := suite.makeUsecase().ListTaxRatings(context.Background(), filters, models.Pagination{})

	suite.NoError(err)
	suite.Equal(page, result)
	suite.AssertExpectations()
}

func (suite *TaxRatingUsecaseTestSuite) TestLatestTaxRatings() {
	suite.enforceSecurity.On("ReadTaxRating").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executorMock)
	suite.repository.On("LatestTaxRatings", mock.Anything, suite.executorMock).
		Return([]models.TaxRating{suite.taxRating}, nil)

	taxRatings, err := suite.makeUsecase().LatestTaxRatings(context.Background())

	suite.NoError(err)
	suite.Len(taxRatings, 1)
	suite.AssertExpectations()
}

func TestTaxRatingUsecase(t *testing.T) {
	suite.Run(t, new(TaxRatingUsecaseTestSuite))
}
