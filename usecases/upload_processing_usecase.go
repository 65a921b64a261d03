package usecases

import (
	"context"
	"io"
	"time"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/repositories"
	"github.com/nuam-exchange/taxrating-backend/usecases/executor_factory"
	"github.com/nuam-exchange/taxrating-backend/usecases/security"
	"github.com/nuam-exchange/taxrating-backend/usecases/uploadparser"
	"github.com/nuam-exchange/taxrating-backend/utils"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type uploadProcessingRepository interface {
	GetUploadById(ctx context.Context, exec repositories.Executor, id string) (models.Upload, error)
	AllUploadsByStatus(ctx context.Context, exec repositories.Executor, status models.UploadStatus) ([]models.Upload, error)
	UpdateUploadStatus(ctx context.Context, exec repositories.Executor, input models.UpdateUploadStatusInput) (bool, error)
	BatchCreateUploadItems(ctx context.Context, exec repositories.Executor, inputs []models.CreateUploadItemInput) error
}

type taxRatingWriter interface {
	CreateTaxRating(ctx context.Context, exec repositories.Executor, input models.CreateTaxRatingInput,
		newTaxRatingId string, createdBy models.UserId) error
}

type UploadProcessingUsecase struct {
	enforceSecurity    security.EnforceSecurityBulkUpload
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	uploadRepository   uploadProcessingRepository
	taxRatingWriter    taxRatingWriter
	auditRepository    auditEventWriter
	blobRepository     repositories.BlobRepository
	rowValidator       uploadRowValidator
	bucketUrl          string
	credentials        models.Credentials
}

// ProcessUpload drives one full parse-validate-persist pass over an upload.
// The PENDING to PROCESSING transition is a conditional update: when zero
// rows match, another caller got there first (or the upload is terminal) and
// the call fails with ErrUploadNotPending, so the row pass runs at most once
// per upload. Row failures never abort the pass; a file that cannot be
// parsed at all sends the upload to ERROR with zero items. A backend
// failure after the claim also settles the upload in ERROR, but that one
// is surfaced to the caller.
func (usecase *UploadProcessingUsecase) ProcessUpload(ctx context.Context, uploadId string) (models.Upload, error) {
	exec := usecase.executorFactory.NewExecutor()

	upload, err := usecase.uploadRepository.GetUploadById(ctx, exec, uploadId)
	if err != nil {
		return models.Upload{}, err
	}
	if err := usecase.enforceSecurity.ProcessUpload(upload); err != nil {
		return models.Upload{}, err
	}

	started := time.Now()
	updated, err := usecase.uploadRepository.UpdateUploadStatus(ctx, exec, models.UpdateUploadStatusInput{
		Id:                     uploadId,
		Status:                 models.UploadProcessing,
		CurrentStatusCondition: models.UploadPending,
		ProcessingStarted:      &started,
	})
	if err != nil {
		return models.Upload{}, err
	}
	if !updated {
		return models.Upload{}, errors.Wrapf(models.ErrUploadNotPending,
			"cannot process upload %s in status %s", uploadId, upload.Status)
	}

	parsed, err := usecase.readAndParseFile(ctx, upload)
	if err != nil {
		if errors.Is(err, models.ErrUnparsableUploadFile) {
			return usecase.markUploadError(ctx, upload, err)
		}
		return usecase.settleUploadFailure(ctx, upload, err)
	}

	items := make([]models.CreateUploadItemInput, 0, len(parsed.Rows))
	ratings := make([]models.CreateTaxRatingInput, 0, len(parsed.Rows))
	rowsOk, rowsError := 0, 0

	for _, row := range parsed.Rows {
		ratingInput, rowError, err := usecase.rowValidator.validateRow(ctx, exec, row)

		item := models.CreateUploadItemInput{
			UploadId:  uploadId,
			RowNumber: row.Number,
			RawData:   row.Fields,
		}
		switch {
		case err != nil:
			return usecase.settleUploadFailure(ctx, upload, err)
		case rowError != "":
			rowsError++
			item.Status = models.UploadItemError
			item.ErrorMessage = rowError
		default:
			rowsOk++
			item.Status = models.UploadItemSuccess
			ratings = append(ratings, ratingInput)
		}
		items = append(items, item)
	}

	totalRows := len(parsed.Rows)
	ended := time.Now()

	result, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Upload, error) {
			for _, rating := range ratings {
				err := usecase.taxRatingWriter.CreateTaxRating(ctx, tx, rating, uuid.NewString(), upload.CreatedBy)
				if err != nil {
					return models.Upload{}, err
				}
			}

			if err := usecase.uploadRepository.BatchCreateUploadItems(ctx, tx, items); err != nil {
				return models.Upload{}, err
			}

			completed, err := usecase.uploadRepository.UpdateUploadStatus(ctx, tx, models.UpdateUploadStatusInput{
				Id:                     uploadId,
				Status:                 models.UploadCompleted,
				CurrentStatusCondition: models.UploadProcessing,
				TotalRows:              &totalRows,
				RowsOk:                 &rowsOk,
				RowsError:              &rowsError,
				ProcessingEnded:        &ended,
			})
			if err != nil {
				return models.Upload{}, err
			}
			if !completed {
				return models.Upload{}, errors.Wrapf(models.InvalidStateError,
					"upload %s left PROCESSING during the row pass", uploadId)
			}

			err = usecase.auditRepository.CreateAuditEvent(ctx, tx, models.CreateAuditEventInput{
				Actor:     usecase.auditActor(upload),
				Operation: models.AuditOperationProcess,
				Table:     "uploads",
				EntityId:  uploadId,
				NewData: map[string]any{
					"status":     models.UploadCompleted,
					"total_rows": totalRows,
					"rows_ok":    rowsOk,
					"rows_error": rowsError,
				},
			})
			if err != nil {
				return models.Upload{}, err
			}

			return usecase.uploadRepository.GetUploadById(ctx, tx, uploadId)
		})
	if err != nil {
		return usecase.settleUploadFailure(ctx, upload, err)
	}
	return result, nil
}

// settleUploadFailure moves the upload to ERROR after a backend failure
// during the row pass, so it does not stay claimed in PROCESSING where
// neither processing nor rejection can reach it again. The failure itself
// is surfaced to the caller.
func (usecase *UploadProcessingUsecase) settleUploadFailure(
	ctx context.Context,
	upload models.Upload,
	cause error,
) (models.Upload, error) {
	if _, markErr := usecase.markUploadError(ctx, upload, cause); markErr != nil {
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "failed to settle upload in error status",
			"upload_id", upload.Id, "error", markErr.Error())
	}
	return models.Upload{}, cause
}

func (usecase *UploadProcessingUsecase) readAndParseFile(
	ctx context.Context,
	upload models.Upload,
) (uploadparser.ParsedFile, error) {
	blob, err := usecase.blobRepository.GetBlob(ctx, usecase.bucketUrl, upload.FileKey)
	if err != nil {
		return uploadparser.ParsedFile{}, errors.Wrapf(models.ErrUnparsableUploadFile,
			"cannot read stored file for upload %s: %v", upload.Id, err)
	}
	defer blob.ReadCloser.Close()

	content, err := io.ReadAll(blob.ReadCloser)
	if err != nil {
		return uploadparser.ParsedFile{}, errors.Wrapf(models.ErrUnparsableUploadFile,
			"cannot read stored file for upload %s: %v", upload.Id, err)
	}

	return uploadparser.Parse(string(content))
}

// markUploadError settles the upload in ERROR with zero items, recording
// the audit trail. The cause is not returned as an error: the caller
// receives the upload in its terminal state.
func (usecase *UploadProcessingUsecase) markUploadError(
	ctx context.Context,
	upload models.Upload,
	cause error,
) (models.Upload, error) {
	utils.LoggerFromContext(ctx).WarnContext(ctx, "bulk upload processing failed",
		"upload_id", upload.Id, "error", cause.Error())

	zero := 0
	ended := time.Now()
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Upload, error) {
			_, err := usecase.uploadRepository.UpdateUploadStatus(ctx, tx, models.UpdateUploadStatusInput{
				Id:                     upload.Id,
				Status:                 models.UploadError,
				CurrentStatusCondition: models.UploadProcessing,
				TotalRows:              &zero,
				RowsOk:                 &zero,
				RowsError:              &zero,
				ProcessingEnded:        &ended,
			})
			if err != nil {
				return models.Upload{}, err
			}

			err = usecase.auditRepository.CreateAuditEvent(ctx, tx, models.CreateAuditEventInput{
				Actor:     usecase.auditActor(upload),
				Operation: models.AuditOperationProcess,
				Table:     "uploads",
				EntityId:  upload.Id,
				NewData:   map[string]any{"status": models.UploadError, "error": cause.Error()},
			})
			if err != nil {
				return models.Upload{}, err
			}

			return usecase.uploadRepository.GetUploadById(ctx, tx, upload.Id)
		})
}

// ProcessPendingUploads processes every PENDING upload in turn. Used by the
// batch command; one failing upload does not stop the others.
func (usecase *UploadProcessingUsecase) ProcessPendingUploads(ctx context.Context) error {
	logger := utils.LoggerFromContext(ctx)
	exec := usecase.executorFactory.NewExecutor()

	uploads, err := usecase.uploadRepository.AllUploadsByStatus(ctx, exec, models.UploadPending)
	if err != nil {
		return err
	}

	for _, upload := range uploads {
		if _, err := usecase.ProcessUpload(ctx, upload.Id); err != nil {
			logger.ErrorContext(ctx, "failed to process upload",
				"upload_id", upload.Id, "error", err.Error())
		}
	}
	return nil
}

func (usecase *UploadProcessingUsecase) auditActor(upload models.Upload) models.AuditEventActor {
	if usecase.credentials.ActorIdentity.UserId == "" {
		// batch processing acts on behalf of the uploader
		return models.AuditEventActor{UserId: upload.CreatedBy}
	}
	return auditActorFromCredentials(usecase.credentials)
}
