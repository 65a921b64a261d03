package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nuam-exchange/taxrating-backend/mocks"
	"github.com/nuam-exchange/taxrating-backend/models"
)

type ReferenceDataUsecaseTestSuite struct {
	suite.Suite
	enforceSecurity    *mocks.EnforceSecurity
	executorFactory    *mocks.ExecutorFactory
	transactionFactory *mocks.TransactionFactory
	executorMock       *mocks.Executor
	transactionMock    *mocks.Transaction
	repository         *mocks.ReferenceDataRepository
	auditRepository    *mocks.AuditRepository

	issuerId      string
	issuer        models.Issuer
	securityError error
}

func (suite *ReferenceDataUsecaseTestSuite) SetupTest() {
	suite.enforceSecurity = new(mocks.EnforceSecurity)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executorMock = new(mocks.Executor)
	suite.transactionMock = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transactionMock}
	suite.repository = new(mocks.ReferenceDataRepository)
	suite.auditRepository = new(mocks.AuditRepository)

	suite.issuerId = "0c5a0a79-9bd0-4ba2-8a3f-6cf2ab1b6501"
	suite.issuer = models.Issuer{
		Id:     suite.issuerId,
		Codigo: "EMI001",
		Nombre: "Banco Andino",
		Activo: true,
	}
	suite.securityError = errors.New("some security error")
}

func (suite *ReferenceDataUsecaseTestSuite) makeUsecase() *ReferenceDataUsecase {
	return &ReferenceDataUsecase{
		enforceSecurity:    suite.enforceSecurity,
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		repository:         suite.repository,
		auditRepository:    suite.auditRepository,
		credentials: models.Credentials{
			ActorIdentity: models.Identity{
				UserId:    models.UserId("5a3c974c-5024-4b24-9a5a-6ed0cb3a9c62"),
				FirstName: "Ana",
				LastName:  "Rojas",
			},
			Role: models.ADMIN,
		},
	}
}

func (suite *ReferenceDataUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.enforceSecurity.AssertExpectations(t)
	suite.repository.AssertExpectations(t)
	suite.auditRepository.AssertExpectations(t)
}

func (suite *ReferenceDataUsecaseTestSuite) TestCreateIssuerNominal() {
	input := models.CreateIssuerInput{Codigo: "EMI001", Nombre: "Banco Andino"}

	suite.enforceSecurity.On("EditReferenceData").Return(nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.repository.On("CreateIssuer", mock.Anything, suite.transactionMock, input,
		mock.AnythingOfType("string")).
		Return(nil)
	suite.auditRepository.On("CreateAuditEvent", mock.Anything, suite.transactionMock,
		mock.MatchedBy(func(event models.CreateAuditEventInput) bool {
			return event.Operation == models.AuditOperationCreate && event.Table == "issuers"
		})).
		Return(nil)
	suite.repository.On("GetIssuerById", mock.Anything, suite.transactionMock,
		mock.AnythingOfType("string")).
		Return(suite.issuer, nil)

	issuer, err := suite.makeUsecase().CreateIssuer(context.Background(), input)

	suite.NoError(err)
	suite.Equal(suite.issuer, issuer)
	suite.AssertExpectations()
}

func (suite *ReferenceDataUsecaseTestSuite) TestCreateIssuerDuplicateCodigo() {
	input := models.CreateIssuerInput{Codigo: "EMI001", Nombre: "Banco Andino"}

	suite.enforceSecurity.On("EditReferenceData").Return(nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.repository.On("CreateIssuer", mock.Anything, suite.transactionMock, input,
		mock.AnythingOfType("string")).
		Return(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := suite.makeUsecase().CreateIssuer(context.Background(), input)

	suite.ErrorIs(err, models.ConflictError)
	suite.auditRepository.AssertNotCalled(suite.T(), "CreateAuditEvent")
	suite.AssertExpectations()
}

func (suite *ReferenceDataUsecaseTestSuite) TestCreateIssuerMissingCodigo() {
	suite.enforceSecurity.On("EditReferenceData").Return(nil)

	_, err := suite.makeUsecase().CreateIssuer(context.Background(), models.CreateIssuerInput{
		Nombre: "Banco Andino",
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.repository.AssertNotCalled(suite.T(), "CreateIssuer")
	suite.AssertExpectations()
}

func (suite *ReferenceDataUsecaseTestSuite) TestCreateIssuerSecurityError() {
	suite.enforceSecurity.On("EditReferenceData").Return(suite.securityError)

	_, err := suite.makeUsecase().CreateIssuer(context.Background(), models.CreateIssuerInput{
		Codigo: "EMI001",
	})

	suite.ErrorIs(err, suite.securityError)
	suite.AssertExpectations()
}

func (suite *ReferenceDataUsecaseTestSuite) TestDeleteIssuerDeactivates() {
	suite.enforceSecurity.On("EditReferenceData").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executorMock)
	suite.repository.On("GetIssuerById", mock.Anything, suite.executorMock, suite.issuerId).
		Return(suite.issuer, nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.repository.On("UpdateIssuer", mock.Anything, suite.transactionMock,
		mock.MatchedBy(func(input models.UpdateIssuerInput) bool {
			return input.Id == suite.issuerId && input.Activo != nil && !*input.Activo
		})).
		Return(nil)
	suite.auditRepository.On("CreateAuditEvent", mock.Anything, suite.transactionMock,
		mock.MatchedBy(func(event models.CreateAuditEventInput) bool {
			return event.Operation == models.AuditOperationDelete && event.EntityId == suite.issuerId
		})).
		Return(nil)

	err := suite.makeUsecase().DeleteIssuer(context.Background(), suite.issuerId)

	suite.NoError(err)
	suite.AssertExpectations()
}

func (suite *ReferenceDataUsecaseTestSuite) TestDeleteIssuerNotFound() {
	suite.enforceSecurity.On("EditReferenceData").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executorMock)
	suite.repository.On("GetIssuerById", mock.Anything, suite.executorMock, suite.issuerId).
		Return(models.Issuer{}, errors.Wrap(models.NotFoundError, "issuer"))

	err := suite.makeUsecase().DeleteIssuer(context.Background(), suite.issuerId)

	suite.ErrorIs(err, models.NotFoundError)
	suite.repository.AssertNotCalled(suite.T(), "UpdateIssuer")
	suite.AssertExpectations()
}

func (suite *ReferenceDataUsecaseTestSuite) TestListIssuersActivoOnly() {
	suite.enforceSecurity.On("ReadReferenceData").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executorMock)
	suite.repository.On("ListIssuers", mock.Anything, suite.executorMock, true).
		Return([]models.Issuer{suite.issuer}, nil)

	issuers, err := suite.makeUsecase().ListIssuers(context.Background(), true)

	suite.NoError(err)
	suite.Len(issuers, 1)
	suite.AssertExpectations()
}

func (suite *ReferenceDataUsecaseTestSuite) TestUpdateInstrumentNominal() {
	instrumentId := "d4f2de16-8a3f-43c5-93de-0ef1f9f6f002"
	nombre := "Bono Serie B"
	input := models.UpdateInstrumentInput{Id: instrumentId, Nombre: &nombre}
	instrument := models.Instrument{Id: instrumentId, Codigo: "INS001", Nombre: nombre, Activo: true}

	suite.enforceSecurity.On("EditReferenceData").Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executorMock)
	suite.repository.On("GetInstrumentById", mock.Anything, suite.executorMock, instrumentId).
		Return(instrument, nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.repository.On("UpdateInstrument", mock.Anything, suite.transactionMock, input).
		Return(nil)
	suite.auditRepository.On("CreateAuditEvent", mock.Anything, suite.transactionMock,
		mock.MatchedBy(func(event models.CreateAuditEventInput) bool {
			return event.Operation == models.AuditOperationUpdate && event.Table == "instruments"
		})).
		Return(nil)
	suite.repository.On("GetInstrumentById", mock.Anything, suite.transactionMock, instrumentId).
		Return(instrument, nil)

	result, err := suite.makeUsecase().UpdateInstrument(context.Background(), input)

	suite.NoError(err)
	suite.Equal(instrument, result)
	suite.AssertExpectations()
}

func TestReferenceDataUsecase(t *testing.T) {
	suite.Run(t, new(ReferenceDataUsecaseTestSuite))
}
