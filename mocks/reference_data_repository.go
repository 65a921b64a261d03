package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/repositories"
)

type ReferenceDataRepository struct {
	mock.Mock
}

func (r *ReferenceDataRepository) GetActiveIssuerByCodigo(ctx context.Context, exec repositories.Executor,
	codigo string,
) (*models.Issuer, error) {
	args := r.Called(ctx, exec, codigo)
	return args.Get(0).(*models.Issuer), args.Error(1)
}

func (r *ReferenceDataRepository) GetActiveInstrumentByCodigo(ctx context.Context, exec repositories.Executor,
	codigo string,
) (*models.Instrument, error) {
	args := r.Called(ctx, exec, codigo)
	return args.Get(0).(*models.Instrument), args.Error(1)
}

func (r *ReferenceDataRepository) CreateIssuer(ctx context.Context, exec repositories.Executor,
	input models.CreateIssuerInput, newIssuerId string,
) error {
	args := r.Called(ctx, exec, input, newIssuerId)
	return args.Error(0)
}

func (r *ReferenceDataRepository) GetIssuerById(ctx context.Context, exec repositories.Executor,
	id string,
) (models.Issuer, error) {
	args := r.Called(ctx, exec, id)
	return args.Get(0).(models.Issuer), args.Error(1)
}

func (r *ReferenceDataRepository) ListIssuers(ctx context.Context, exec repositories.Executor,
	activoOnly bool,
) ([]models.Issuer, error) {
	args := r.Called(ctx, exec, activoOnly)
	return args.Get(0).([]models.Issuer), args.Error(1)
}

func (r *ReferenceDataRepository) UpdateIssuer(ctx context.Context, exec repositories.Executor,
	input models.UpdateIssuerInput,
) error {
	args := r.Called(ctx, exec, input)
	return args.Error(0)
}

func (r *ReferenceDataRepository) CreateInstrument(ctx context.Context, exec repositories.Executor,
	input models.CreateInstrumentInput, newInstrumentId string,
) error {
	args := r.Called(ctx, exec, input, newInstrumentId)
	return args.Error(0)
}

func (r *ReferenceDataRepository) GetInstrumentById(ctx context.Context, exec repositories.Executor,
	id string,
) (models.Instrument, error) {
	args := r.Called(ctx, exec, id)
	return args.Get(0).(models.Instrument), args.Error(1)
}

func (r *ReferenceDataRepository) ListInstruments(ctx context.Context, exec repositories.Executor,
	activoOnly bool,
) ([]models.Instrument, error) {
	args := r.Called(ctx, exec, activoOnly)
	return args.Get(0).([]models.Instrument), args.Error(1)
}

func (r *ReferenceDataRepository) UpdateInstrument(ctx context.Context, exec repositories.Executor,
	input models.UpdateInstrumentInput,
) error {
	args := r.Called(ctx, exec, input)
	return args.Error(0)
}
