package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/repositories"
)

type TaxRatingRepository struct {
	mock.Mock
}

func (r *TaxRatingRepository) CreateTaxRating(ctx context.Context, exec repositories.Executor,
	input models.CreateTaxRatingInput, newTaxRatingId string, createdBy models.UserId,
) error {
	args := r.Called(ctx, exec, input, newTaxRatingId, createdBy)
	return args.Error(0)
}

func (r *TaxRatingRepository) GetTaxRatingById(ctx context.Context, exec repositories.Executor,
	id string,
) (models.TaxRating, error) {
	args := r.Called(ctx, exec, id)
	return args.Get(0).(models.TaxRating), args.Error(1)
}

func (r *TaxRatingRepository) ListTaxRatings(ctx context.Context, exec repositories.Executor,
	filters models.TaxRatingFilters, pagination models.Pagination,
) (models.Paged[models.TaxRating], error) {
	args := r.Called(ctx, exec, filters, pagination)
	return args.Get(0).(models.Paged[models.TaxRating]), args.Error(1)
}

func (r *TaxRatingRepository) LatestTaxRatings(ctx context.Context, exec repositories.Executor) ([]models.TaxRating, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).([]models.TaxRating), args.Error(1)
}

func (r *TaxRatingRepository) UpdateTaxRating(ctx context.Context, exec repositories.Executor,
	input models.UpdateTaxRatingInput,
) error {
	args := r.Called(ctx, exec, input)
	return args.Error(0)
}

func (r *TaxRatingRepository) DeleteTaxRating(ctx context.Context, exec repositories.Executor, id string) error {
	args := r.Called(ctx, exec, id)
	return args.Error(0)
}

func (r *TaxRatingRepository) GetIssuerById(ctx context.Context, exec repositories.Executor,
	id string,
) (models.Issuer, error) {
	args := r.Called(ctx, exec, id)
	return args.Get(0).(models.Issuer), args.Error(1)
}

func (r *TaxRatingRepository) GetInstrumentById(ctx context.Context, exec repositories.Executor,
	id string,
) (models.Instrument, error) {
	args := r.Called(ctx, exec, id)
	return args.Get(0).(models.Instrument), args.Error(1)
}
