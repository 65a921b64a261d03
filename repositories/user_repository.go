package repositories

import (
	"context"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
)

func (repo *TaxRatingDbRepository) UserById(ctx context.Context, exec Executor, userId string) (models.User, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.User{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumn...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"id": userId}).
			Where("deleted_at IS NULL"),
		dbmodels.AdaptUser,
	)
}

func (repo *TaxRatingDbRepository) UserByEmail(ctx context.Context, exec Executor, email string) (models.User, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.User{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumn...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"email": email}).
			Where("deleted_at IS NULL"),
		dbmodels.AdaptUser,
	)
}

func (repo *TaxRatingDbRepository) GetApiKeyByHash(ctx context.Context, exec Executor, hash []byte) (models.ApiKey, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.ApiKey{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectApiKeyColumn...).
			From(dbmodels.TABLE_API_KEYS).
			Where(squirrel.Eq{"hash": hash}).
			Where("deleted_at IS NULL"),
		dbmodels.AdaptApiKey,
	)
}
