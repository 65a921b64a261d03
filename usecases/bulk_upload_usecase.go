package usecases

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/repositories"
	"github.com/nuam-exchange/taxrating-backend/usecases/executor_factory"
	"github.com/nuam-exchange/taxrating-backend/usecases/security"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type uploadRegistryRepository interface {
	CreateUpload(ctx context.Context, exec repositories.Executor, input models.CreateUploadInput,
		newUploadId string, fileKey string, createdBy models.UserId) error
	GetUploadById(ctx context.Context, exec repositories.Executor, id string) (models.Upload, error)
	ListUploads(ctx context.Context, exec repositories.Executor, status *models.UploadStatus,
		pagination models.Pagination) (models.Paged[models.Upload], error)
	ListUploadItems(ctx context.Context, exec repositories.Executor, uploadId string,
		status *models.UploadItemStatus, pagination models.Pagination) (models.Paged[models.UploadItem], error)
	GetUploadSummary(ctx context.Context, exec repositories.Executor, createdBy models.UserId) (models.UploadSummary, error)
	UpdateUploadStatus(ctx context.Context, exec repositories.Executor, input models.UpdateUploadStatusInput) (bool, error)
}

type auditEventWriter interface {
	CreateAuditEvent(ctx context.Context, exec repositories.Executor, input models.CreateAuditEventInput) error
}

type BulkUploadUsecase struct {
	enforceSecurity    security.EnforceSecurityBulkUpload
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	uploadRepository   uploadRegistryRepository
	auditRepository    auditEventWriter
	blobRepository     repositories.BlobRepository
	bucketUrl          string
	credentials        models.Credentials
}

// CreateUpload validates the file before anything is persisted, stores the
// raw bytes in blob storage, and registers the upload in PENDING with zero
// counters.
func (usecase *BulkUploadUsecase) CreateUpload(
	ctx context.Context,
	input models.CreateUploadInput,
	fileReader io.Reader,
) (models.Upload, error) {
	if err := usecase.enforceSecurity.CreateUpload(); err != nil {
		return models.Upload{}, err
	}

	if err := validateUploadFile(input); err != nil {
		return models.Upload{}, err
	}

	newUploadId := uuid.NewString()
	fileKey := fmt.Sprintf("uploads/%s/%s", newUploadId, input.FileName)

	writer, err := usecase.blobRepository.OpenStream(ctx, usecase.bucketUrl, fileKey)
	if err != nil {
		return models.Upload{}, err
	}
	if _, err := io.Copy(writer, fileReader); err != nil {
		writer.Close()
		return models.Upload{}, errors.Wrap(err, "failed to store upload file")
	}
	if err := writer.Close(); err != nil {
		return models.Upload{}, errors.Wrap(err, "failed to store upload file")
	}

	createdBy := usecase.credentials.ActorIdentity.UserId
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Upload, error) {
			if err := usecase.uploadRepository.CreateUpload(ctx, tx, input, newUploadId, fileKey, createdBy); err != nil {
				return models.Upload{}, err
			}

			err := usecase.auditRepository.CreateAuditEvent(ctx, tx, models.CreateAuditEventInput{
				Actor:     usecase.auditActor(),
				Operation: models.AuditOperationUpload,
				Table:     "uploads",
				EntityId:  newUploadId,
				NewData:   map[string]any{"file_name": input.FileName, "status": models.UploadPending},
			})
			if err != nil {
				return models.Upload{}, err
			}

			return usecase.uploadRepository.GetUploadById(ctx, tx, newUploadId)
		})
}

func validateUploadFile(input models.CreateUploadInput) error {
	if input.FileSize > models.MaxUploadFileSize {
		return errors.Wrapf(models.ErrFileTooLarge,
			"file is %d bytes, maximum is %d", input.FileSize, models.MaxUploadFileSize)
	}

	extension := strings.ToLower(filepath.Ext(input.FileName))
	if !slices.Contains(models.UploadAcceptedExtensions, extension) {
		return errors.Wrapf(models.ErrUnsupportedFileType,
			"file extension %q is not accepted", extension)
	}

	contentType := strings.TrimSpace(strings.Split(input.ContentType, ";")[0])
	if contentType != "" && !slices.Contains(models.UploadAcceptedContentTypes, contentType) {
		return errors.Wrapf(models.ErrUnsupportedFileType,
			"content type %q is not accepted", contentType)
	}
	return nil
}

func (usecase *BulkUploadUsecase) GetUpload(ctx context.Context, uploadId string) (models.Upload, error) {
	exec := usecase.executorFactory.NewExecutor()
	upload, err := usecase.uploadRepository.GetUploadById(ctx, exec, uploadId)
	if err != nil {
		return models.Upload{}, err
	}
	if err := usecase.enforceSecurity.ReadUpload(upload); err != nil {
		return models.Upload{}, err
	}
	return upload, nil
}

func (usecase *BulkUploadUsecase) ListUploads(
	ctx context.Context,
	status *models.UploadStatus,
	pagination models.Pagination,
) (models.Paged[models.Upload], error) {
	if err := usecase.enforceSecurity.Permission(models.BULK_UPLOAD_READ); err != nil {
		return models.Paged[models.Upload]{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	return usecase.uploadRepository.ListUploads(ctx, exec, status, pagination.WithDefaults())
}

// ListUploadItems returns the recorded row outcomes. A missing upload is
// NotFoundError; an unprocessed upload simply has no items yet.
func (usecase *BulkUploadUsecase) ListUploadItems(
	ctx context.Context,
	uploadId string,
	status *models.UploadItemStatus,
	pagination models.Pagination,
) (models.Paged[models.UploadItem], error) {
	exec := usecase.executorFactory.NewExecutor()

	upload, err := usecase.uploadRepository.GetUploadById(ctx, exec, uploadId)
	if err != nil {
		return models.Paged[models.UploadItem]{}, err
	}
	if err := usecase.enforceSecurity.ReadUpload(upload); err != nil {
		return models.Paged[models.UploadItem]{}, err
	}

	pagination = pagination.WithDefaults()
	pagination.Order = models.SortingOrderAsc
	return usecase.uploadRepository.ListUploadItems(ctx, exec, uploadId, status, pagination)
}

func (usecase *BulkUploadUsecase) GetSummary(ctx context.Context) (models.UploadSummary, error) {
	if err := usecase.enforceSecurity.Permission(models.BULK_UPLOAD_READ); err != nil {
		return models.UploadSummary{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	return usecase.uploadRepository.GetUploadSummary(ctx, exec, usecase.credentials.ActorIdentity.UserId)
}

// RejectUpload discards a PENDING upload without processing it. Any other
// current status fails with ErrUploadNotPending and changes nothing.
func (usecase *BulkUploadUsecase) RejectUpload(ctx context.Context, uploadId string) (models.Upload, error) {
	exec := usecase.executorFactory.NewExecutor()
	upload, err := usecase.uploadRepository.GetUploadById(ctx, exec, uploadId)
	if err != nil {
		return models.Upload{}, err
	}
	if err := usecase.enforceSecurity.ProcessUpload(upload); err != nil {
		return models.Upload{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Upload, error) {
			updated, err := usecase.uploadRepository.UpdateUploadStatus(ctx, tx, models.UpdateUploadStatusInput{
				Id:                     uploadId,
				Status:                 models.UploadRejected,
				CurrentStatusCondition: models.UploadPending,
			})
			if err != nil {
				return models.Upload{}, err
			}
			if !updated {
				return models.Upload{}, errors.Wrapf(models.ErrUploadNotPending,
					"cannot reject upload %s in status %s", uploadId, upload.Status)
			}

			err = usecase.auditRepository.CreateAuditEvent(ctx, tx, models.CreateAuditEventInput{
				Actor:     usecase.auditActor(),
				Operation: models.AuditOperationReject,
				Table:     "uploads",
				EntityId:  uploadId,
				NewData:   map[string]any{"status": models.UploadRejected},
			})
			if err != nil {
				return models.Upload{}, err
			}

			return usecase.uploadRepository.GetUploadById(ctx, tx, uploadId)
		})
}

func (usecase *BulkUploadUsecase) auditActor() models.AuditEventActor {
	return auditActorFromCredentials(usecase.credentials)
}
