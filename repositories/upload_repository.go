package repositories

import (
	"context"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
)

func (repo *TaxRatingDbRepository) CreateUpload(
	ctx context.Context,
	exec Executor,
	input models.CreateUploadInput,
	newUploadId string,
	fileKey string,
	createdBy models.UserId,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_UPLOADS).
			Columns(
				"id",
				"file_name",
				"file_key",
				"content_type",
				"status",
				"created_by",
			).
			Values(
				newUploadId,
				input.FileName,
				fileKey,
				input.ContentType,
				models.UploadPending,
				createdBy,
			),
	)
	return err
}

func (repo *TaxRatingDbRepository) GetUploadById(ctx context.Context, exec Executor, id string) (models.Upload, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.Upload{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUploadColumn...).
			From(dbmodels.TABLE_UPLOADS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptUpload,
	)
}

func (repo *TaxRatingDbRepository) ListUploads(
	ctx context.Context,
	exec Executor,
	status *models.UploadStatus,
	pagination models.Pagination,
) (models.Paged[models.Upload], error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.Paged[models.Upload]{}, err
	}

	query := NewQueryBuilder().
		Select(dbmodels.SelectUploadColumn...).
		From(dbmodels.TABLE_UPLOADS).
		OrderBy("created_at " + string(pagination.Order)).
		Limit(uint64(pagination.PageSize)).
		Offset(uint64(pagination.Offset()))

	countQuery := NewQueryBuilder().
		Select("COUNT(*)").
		From(dbmodels.TABLE_UPLOADS)

	if status != nil {
		query = query.Where(squirrel.Eq{"status": *status})
		countQuery = countQuery.Where(squirrel.Eq{"status": *status})
	}

	uploads, err := SqlToListOfModels(ctx, exec, query, dbmodels.AdaptUpload)
	if err != nil {
		return models.Paged[models.Upload]{}, err
	}

	total, err := SqlToRowCount(ctx, exec, countQuery)
	if err != nil {
		return models.Paged[models.Upload]{}, err
	}

	return models.Paged[models.Upload]{Items: uploads, Total: total}, nil
}

func (repo *TaxRatingDbRepository) AllUploadsByStatus(
	ctx context.Context,
	exec Executor,
	status models.UploadStatus,
) ([]models.Upload, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUploadColumn...).
			From(dbmodels.TABLE_UPLOADS).
			Where(squirrel.Eq{"status": status}).
			OrderBy("created_at"),
		dbmodels.AdaptUpload,
	)
}

// UpdateUploadStatus applies the requested status change and counters. When
// input.CurrentStatusCondition is set the update only matches an upload still
// in that status, and the returned boolean reports whether a row was updated.
// This is the gate that makes process and reject mutually exclusive.
func (repo *TaxRatingDbRepository) UpdateUploadStatus(
	ctx context.Context,
	exec Executor,
	input models.UpdateUploadStatusInput,
) (bool, error) {
	if err := validateDbExecutor(exec); err != nil {
		return false, err
	}

	updateRequest := NewQueryBuilder().
		Update(dbmodels.TABLE_UPLOADS).
		Set("status", input.Status)

	if input.TotalRows != nil {
		updateRequest = updateRequest.Set("total_rows", *input.TotalRows)
	}
	if input.RowsOk != nil {
		updateRequest = updateRequest.Set("rows_ok", *input.RowsOk)
	}
	if input.RowsError != nil {
		updateRequest = updateRequest.Set("rows_error", *input.RowsError)
	}
	if input.ProcessingStarted != nil {
		updateRequest = updateRequest.Set("processing_started", *input.ProcessingStarted)
	}
	if input.ProcessingEnded != nil {
		updateRequest = updateRequest.Set("processing_ended", *input.ProcessingEnded)
	}

	updateRequest = updateRequest.Where(squirrel.Eq{"id": input.Id})
	if input.CurrentStatusCondition != "" {
		updateRequest = updateRequest.Where(squirrel.Eq{"status": input.CurrentStatusCondition})
	}

	tag, err := ExecBuilder(ctx, exec, updateRequest)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// GetUploadSummary aggregates the uploads created by one actor. Every status
// lands in exactly one bucket so the three buckets always sum to total.
func (repo *TaxRatingDbRepository) GetUploadSummary(
	ctx context.Context,
	exec Executor,
	createdBy models.UserId,
) (models.UploadSummary, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.UploadSummary{}, err
	}

	query := NewQueryBuilder().
		Select(
			"COUNT(*) AS total",
			"COUNT(*) FILTER (WHERE status IN ('PENDING', 'PROCESSING')) AS pendientes",
			"COUNT(*) FILTER (WHERE status = 'COMPLETED') AS procesados",
			"COUNT(*) FILTER (WHERE status IN ('ERROR', 'REJECTED')) AS con_errores",
		).
		From(dbmodels.TABLE_UPLOADS).
		Where(squirrel.Eq{"created_by": createdBy})

	sql, args, err := query.ToSql()
	if err != nil {
		return models.UploadSummary{}, err
	}

	var summary models.UploadSummary
	err = exec.QueryRow(ctx, sql, args...).Scan(
		&summary.Total,
		&summary.Pendientes,
		&summary.Procesados,
		&summary.ConErrores,
	)
	if err != nil {
		return models.UploadSummary{}, err
	}
	return summary, nil
}
