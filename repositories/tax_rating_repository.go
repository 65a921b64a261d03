package repositories

import (
	"context"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
)

func (repo *TaxRatingDbRepository) CreateTaxRating(
	ctx context.Context,
	exec Executor,
	input models.CreateTaxRatingInput,
	newTaxRatingId string,
	createdBy models.UserId,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_TAX_RATINGS).
			Columns(
				"id",
				"issuer_id",
				"instrument_id",
				"rating",
				"valid_from",
				"valid_to",
				"status",
				"risk_level",
				"comments",
				"created_by",
			).
			Values(
				newTaxRatingId,
				input.IssuerId,
				input.InstrumentId,
				input.Rating,
				input.ValidFrom,
				input.ValidTo,
				input.Status,
				input.RiskLevel,
				input.Comments,
				createdBy,
			),
	)
	return err
}

func (repo *TaxRatingDbRepository) GetTaxRatingById(ctx context.Context, exec Executor, id string) (models.TaxRating, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.TaxRating{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectTaxRatingColumn...).
			From(dbmodels.TABLE_TAX_RATINGS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptTaxRating,
	)
}

func (repo *TaxRatingDbRepository) ListTaxRatings(
	ctx context.Context,
	exec Executor,
	filters models.TaxRatingFilters,
	pagination models.Pagination,
) (models.Paged[models.TaxRating], error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.Paged[models.TaxRating]{}, err
	}

	applyFilters := func(query squirrel.SelectBuilder) squirrel.SelectBuilder {
		if filters.IssuerId != "" {
			query = query.Where(squirrel.Eq{"issuer_id": filters.IssuerId})
		}
		if filters.InstrumentId != "" {
			query = query.Where(squirrel.Eq{"instrument_id": filters.InstrumentId})
		}
		if filters.Rating != "" {
			query = query.Where(squirrel.Eq{"rating": filters.Rating})
		}
		if filters.Status != "" {
			query = query.Where(squirrel.Eq{"status": filters.Status})
		}
		return query
	}

	query := applyFilters(
		NewQueryBuilder().
			Select(dbmodels.SelectTaxRatingColumn...).
			From(dbmodels.TABLE_TAX_RATINGS).
			OrderBy("valid_from "+string(pagination.Order), "created_at "+string(pagination.Order)).
			Limit(uint64(pagination.PageSize)).
			Offset(uint64(pagination.Offset())),
	)

	countQuery := applyFilters(
		NewQueryBuilder().
			Select("COUNT(*)").
			From(dbmodels.TABLE_TAX_RATINGS),
	)

	ratings, err := SqlToListOfModels(ctx, exec, query, dbmodels.AdaptTaxRating)
	if err != nil {
		return models.Paged[models.TaxRating]{}, err
	}

	total, err := SqlToRowCount(ctx, exec, countQuery)
	if err != nil {
		return models.Paged[models.TaxRating]{}, err
	}

	return models.Paged[models.TaxRating]{Items: ratings, Total: total}, nil
}

// LatestTaxRatings returns, for every (issuer, instrument) pair, the rating
// with the most recent valid_from.
func (repo *TaxRatingDbRepository) LatestTaxRatings(ctx context.Context, exec Executor) ([]models.TaxRating, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectTaxRatingColumn...).
			Options("DISTINCT ON (issuer_id, instrument_id)").
			From(dbmodels.TABLE_TAX_RATINGS).
			OrderBy("issuer_id", "instrument_id", "valid_from DESC", "created_at DESC"),
		dbmodels.AdaptTaxRating,
	)
}

func (repo *TaxRatingDbRepository) UpdateTaxRating(
	ctx context.Context,
	exec Executor,
	input models.UpdateTaxRatingInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	updateRequest := NewQueryBuilder().
		Update(dbmodels.TABLE_TAX_RATINGS).
		Set("updated_at", squirrel.Expr("NOW()"))

	if input.Rating != nil {
		updateRequest = updateRequest.Set("rating", *input.Rating)
	}
	if input.ValidFrom != nil {
		updateRequest = updateRequest.Set("valid_from", *input.ValidFrom)
	}
	if input.ValidTo.Valid {
		updateRequest = updateRequest.Set("valid_to", input.ValidTo)
	}
	if input.Status != nil {
		updateRequest = updateRequest.Set("status", *input.Status)
	}
	if input.RiskLevel.Valid {
		updateRequest = updateRequest.Set("risk_level", input.RiskLevel)
	}
	if input.Comments != nil {
		updateRequest = updateRequest.Set("comments", *input.Comments)
	}

	_, err := ExecBuilder(ctx, exec, updateRequest.Where(squirrel.Eq{"id": input.Id}))
	return err
}

func (repo *TaxRatingDbRepository) DeleteTaxRating(ctx context.Context, exec Executor, id string) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Delete(dbmodels.TABLE_TAX_RATINGS).Where(squirrel.Eq{"id": id}),
	)
	return err
}
