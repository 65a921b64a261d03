package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nuam-exchange/taxrating-backend/mocks"
	"github.com/nuam-exchange/taxrating-backend/models"
)

type BulkUploadUsecaseTestSuite struct {
	suite.Suite
	enforceSecurity    *mocks.EnforceSecurity
	executorFactory    *mocks.ExecutorFactory
	transactionFactory *mocks.TransactionFactory
	executorMock       *mocks.Executor
	transactionMock    *mocks.Transaction
	uploadRepository   *mocks.UploadRepository
	auditRepository    *mocks.AuditRepository
	blobRepository     *mocks.BlobRepository

	uploadId      string
	userId        models.UserId
	bucketUrl     string
	pendingUpload models.Upload
	securityError error
}

func (suite *BulkUploadUsecaseTestSuite) SetupTest() {
	suite.enforceSecurity = new(mocks.EnforceSecurity)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executorMock = new(mocks.Executor)
	suite.transactionMock = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transactionMock}
	suite.uploadRepository = new(mocks.UploadRepository)
	suite.auditRepository = new(mocks.AuditRepository)
	suite.blobRepository = new(mocks.BlobRepository)

	suite.uploadId = "b1bfba6a-9b39-4f8e-bd27-4332d694b024"
	suite.userId = models.UserId("5a3c974c-5024-4b24-9a5a-6ed0cb3a9c62")
	suite.bucketUrl = "file:///tmp/test-bucket"
	suite.pendingUpload = models.Upload{
		Id:        suite.uploadId,
		FileName:  "ratings.txt",
		Status:    models.UploadPending,
		CreatedBy: suite.userId,
	}
	suite.securityError = errors.New("some security error")
}

func (suite *BulkUploadUsecaseTestSuite) makeUsecase() *BulkUploadUsecase {
	return &BulkUploadUsecase{
		enforceSecurity:    suite.enforceSecurity,
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		uploadRepository:   suite.uploadRepository,
		auditRepository:    suite.auditRepository,
		blobRepository:     suite.blobRepository,
		bucketUrl:          suite.bucketUrl,
		credentials: models.Credentials{
			ActorIdentity: models.Identity{UserId: suite.userId, FirstName: "Ana", LastName: "Rojas"},
			Role:          models.ANALISTA,
		},
	}
}

func (suite *BulkUploadUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.enforceSecurity.AssertExpectations(t)
	suite.uploadRepository.AssertExpectations(t)
	suite.auditRepository.AssertExpectations(t)
	suite.blobRepository.AssertExpectations(t)
}

func (suite *BulkUploadUsecaseTestSuite) TestCreateUploadNominal() {
	content := "issuer_codigo|instrument_codigo|rating|valid_from\nEMI001|INS001|AAA|2026-01-01\n"
	input := models.CreateUploadInput{
		FileName:    "ratings.txt",
		ContentType: "text/plain; charset=utf-8",
		FileSize:    int64(len(content)),
	}
	writer := &mocks.NopWriteCloser{}

	suite.enforceSecurity.On("CreateUpload").Return(nil)
	suite.blobRepository.On("OpenStream", mock.Anything, suite.bucketUrl,
		mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "uploads/") && strings.HasSuffix(key, "/ratings.txt")
		})).Return(writer, nil)
	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.uploadRepository.On("CreateUpload", mock.Anything, suite.transactionMock, input,
		mock.Anything, mock.Anything, suite.userId).Return(nil)
	suite.auditRepository.On("CreateAuditEvent", mock.Anything, suite.transactionMock,
		mock.MatchedBy(func(event models.CreateAuditEventInput) bool {
			return event.Operation == models.AuditOperationUpload &&
				event.Actor.Name == "Ana Rojas"
		})).Return(nil)
	suite.uploadRepository.On("GetUploadById", mock.Anything, suite.transactionMock, mock.Anything).
		Return(suite.pendingUpload, nil)

	upload, err := suite.makeUsecase().CreateUpload(context.Background(), input,
		strings.NewReader(content))

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, models.UploadPending, upload.Status)
	assert.Equal(t, content, writer.String())
	suite.AssertExpectations()
}

func (suite *BulkUploadUsecaseTestSuite) TestCreateUploadFileTooLarge() {
	suite.enforceSecurity.On("CreateUpload").Return(nil)

	_, err := suite.makeUsecase().CreateUpload(context.Background(), models.CreateUploadInput{
		FileName:    "ratings.txt",
		ContentType: "text/plain",
		FileSize:    12 * 1024 * 1024,
	}, strings.NewReader(""))

	t := suite.T()
	assert.ErrorIs(t, err, models.ErrFileTooLarge)
	suite.blobRepository.AssertNotCalled(t, "OpenStream", mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *BulkUploadUsecaseTestSuite) TestCreateUploadUnsupportedExtension() {
	suite.enforceSecurity.On("CreateUpload").Return(nil)

	_, err := suite.makeUsecase().CreateUpload(context.Background(), models.CreateUploadInput{
		FileName:    "ratings.csv",
		ContentType: "text/plain",
		FileSize:    100,
	}, strings.NewReader(""))

	assert.ErrorIs(suite.T(), err, models.ErrUnsupportedFileType)
	suite.AssertExpectations()
}

func (suite *BulkUploadUsecaseTestSuite) TestCreateUploadUnsupportedContentType() {
	suite.enforceSecurity.On("CreateUpload").Return(nil)

	_, err := suite.makeUsecase().CreateUpload(context.Background(), models.CreateUploadInput{
		FileName:    "ratings.txt",
		ContentType: "application/pdf",
		FileSize:    100,
	}, strings.NewReader(""))

	assert.ErrorIs(suite.T(), err, models.ErrUnsupportedFileType)
	suite.AssertExpectations()
}

func (suite *BulkUploadUsecaseTestSuite) TestCreateUploadSecurityError() {
	suite.enforceSecurity.On("CreateUpload").Return(suite.securityError)

	_, err := suite.makeUsecase().CreateUpload(context.Background(), models.CreateUploadInput{
		FileName: "ratings.txt",
		FileSize: 100,
	}, strings.NewReader(""))

	assert.ErrorIs(suite.T(), err, suite.securityError)
	suite.AssertExpectations()
}

func (suite *BulkUploadUsecaseTestSuite) TestRejectUploadNominal() {
	suite.executorFactory.On("NewExecutor").Return(suite.executorMock)
	suite.uploadRepository.On("GetUploadById", mock.Anything, suite.executorMock, suite.uploadId).
		Return(suite.pendingUpload, nil)
	suite.enforceSecurity.On("ProcessUpload", suite.pendingUpload).Return(nil)

	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.uploadRepository.On("UpdateUploadStatus", mock.Anything, suite.transactionMock,
		mock.MatchedBy(func(input models.UpdateUploadStatusInput) bool {
			return input.Status == models.UploadRejected &&
				input.CurrentStatusCondition == models.UploadPending
		})).Return(true, nil)
	suite.auditRepository.On("CreateAuditEvent", mock.Anything, suite.transactionMock,
		mock.MatchedBy(func(event models.CreateAuditEventInput) bool {
			return event.Operation == models.AuditOperationReject
		})).Return(nil)

	rejected := suite.pendingUpload
	rejected.Status = models.UploadRejected
	suite.uploadRepository.On("GetUploadById", mock.Anything, suite.transactionMock, suite.uploadId).
		Return(rejected, nil)

	upload, err := suite.makeUsecase().RejectUpload(context.Background(), suite.uploadId)

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, models.UploadRejected, upload.Status)
	suite.AssertExpectations()
}

func (suite *BulkUploadUsecaseTestSuite) TestRejectUploadNotPending() {
	processed := suite.pendingUpload
	processed.Status = models.UploadCompleted

	suite.executorFactory.On("NewExecutor").Return(suite.executorMock)
	suite.uploadRepository.On("GetUploadById", mock.Anything, suite.executorMock, suite.uploadId).
		Return(processed, nil)
	suite.enforceSecurity.On("ProcessUpload", processed).Return(nil)

	suite.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.uploadRepository.On("UpdateUploadStatus", mock.Anything, suite.transactionMock, mock.Anything).
		Return(false, nil)

	_, err := suite.makeUsecase().RejectUpload(context.Background(), suite.uploadId)

	t := suite.T()
	assert.ErrorIs(t, err, models.ErrUploadNotPending)
	suite.auditRepository.AssertNotCalled(t, "CreateAuditEvent",
		mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *BulkUploadUsecaseTestSuite) TestGetSummaryScopedToActor() {
	summary := models.UploadSummary{Total: 6, Pendientes: 1, Procesados: 4, ConErrores: 1}

	suite.enforceSecurity.On("Permission", models.BULK_UPLOAD_READ).Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executorMock)
	suite.uploadRepository.On("GetUploadSummary", mock.Anything, suite.executorMock, suite.userId).
		Return(summary, nil)

	result, err := suite.makeUsecase().GetSummary(context.Background())

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, summary, result)
	suite.AssertExpectations()
}

func TestBulkUploadUsecase(t *testing.T) {
	suite.Run(t, new(BulkUploadUsecaseTestSuite))
}
