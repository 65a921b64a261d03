package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/repositories"
)

type UploadRepository struct {
	mock.Mock
}

func (r *UploadRepository) CreateUpload(ctx context.Context, exec repositories.Executor,
	input models.CreateUploadInput, newUploadId string, fileKey string, createdBy models.UserId,
) error {
	args := r.Called(ctx, exec, input, newUploadId, fileKey, createdBy)
	return args.Error(0)
}

func (r *UploadRepository) GetUploadById(ctx context.Context, exec repositories.Executor,
	id string,
) (models.Upload, error) {
	args := r.Called(ctx, exec, id)
	return args.Get(0).(models.Upload), args.Error(1)
}

func (r *UploadRepository) ListUploads(ctx context.Context, exec repositories.Executor,
	status *models.UploadStatus, pagination models.Pagination,
) (models.Paged[models.Upload], error) {
	args := r.Called(ctx, exec, status, pagination)
	return args.Get(0).(models.Paged[models.Upload]), args.Error(1)
}

func (r *UploadRepository) AllUploadsByStatus(ctx context.Context, exec repositories.Executor,
	status models.UploadStatus,
) ([]models.Upload, error) {
	args := r.Called(ctx, exec, status)
	return args.Get(0).([]models.Upload), args.Error(1)
}

func (r *UploadRepository) ListUploadItems(ctx context.Context, exec repositories.Executor,
	uploadId string, status *models.UploadItemStatus, pagination models.Pagination,
) (models.Paged[models.UploadItem], error) {
	args := r.Called(ctx, exec, uploadId, status, pagination)
	return args.Get(0).(models.Paged[models.UploadItem]), args.Error(1)
}

func (r *UploadRepository) GetUploadSummary(ctx context.Context, exec repositories.Executor,
	createdBy models.UserId,
) (models.UploadSummary, error) {
	args := r.Called(ctx, exec, createdBy)
	return args.Get(0).(models.UploadSummary), args.Error(1)
}

func (r *UploadRepository) UpdateUploadStatus(ctx context.Context, exec repositories.Executor,
	input models.UpdateUploadStatusInput,
) (bool, error) {
	args := r.Called(ctx, exec, input)
	return args.Bool(0), args.Error(1)
}

func (r *UploadRepository) BatchCreateUploadItems(ctx context.Context, exec repositories.Executor,
	inputs []models.CreateUploadItemInput,
) error {
	args := r.Called(ctx, exec, inputs)
	return args.Error(0)
}
