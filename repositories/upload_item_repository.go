package repositories

import (
	"context"
	"encoding/json"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

func (repo *TaxRatingDbRepository) BatchCreateUploadItems(
	ctx context.Context,
	exec Executor,
	inputs []models.CreateUploadItemInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}
	if len(inputs) == 0 {
		return nil
	}

	query := NewQueryBuilder().Insert(dbmodels.TABLE_UPLOAD_ITEMS).
		Columns(
			"id",
			"upload_id",
			"row_number",
			"status",
			"error_message",
			"raw_data",
		)

	for _, input := range inputs {
		rawData, err := json.Marshal(input.RawData)
		if err != nil {
			return errors.Wrap(err, "can't marshal upload item raw data")
		}
		query = query.Values(
			uuid.NewString(),
			input.UploadId,
			input.RowNumber,
			input.Status,
			input.ErrorMessage,
			rawData,
		)
	}

	_, err := ExecBuilder(ctx, exec, query)
	return err
}

func (repo *TaxRatingDbRepository) ListUploadItems(
	ctx context.Context,
	exec Executor,
	uploadId string,
	status *models.UploadItemStatus,
	pagination models.Pagination,
) (models.Paged[models.UploadItem], error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.Paged[models.UploadItem]{}, err
	}

	query := NewQueryBuilder().
		Select(dbmodels.SelectUploadItemColumn...).
		From(dbmodels.TABLE_UPLOAD_ITEMS).
		Where(squirrel.Eq{"upload_id": uploadId}).
		OrderBy("row_number").
		Limit(uint64(pagination.PageSize)).
		Offset(uint64(pagination.Offset()))

	countQuery := NewQueryBuilder().
		Select("COUNT(*)").
		From(dbmodels.TABLE_UPLOAD_ITEMS).
		Where(squirrel.Eq{"upload_id": uploadId})

	if status != nil {
		query = query.Where(squirrel.Eq{"status": *status})
		countQuery = countQuery.Where(squirrel.Eq{"status": *status})
	}

	items, err := SqlToListOfModels(ctx, exec, query, dbmodels.AdaptUploadItem)
	if err != nil {
		return models.Paged[models.UploadItem]{}, err
	}

	total, err := SqlToRowCount(ctx, exec, countQuery)
	if err != nil {
		return models.Paged[models.UploadItem]{}, err
	}

	return models.Paged[models.UploadItem]{Items: items, Total: total}, nil
}
