package usecases

import (
	"context"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/repositories"
	"github.com/nuam-exchange/taxrating-backend/usecases/executor_factory"
	"github.com/nuam-exchange/taxrating-backend/usecases/security"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type taxRatingRepository interface {
	CreateTaxRating(ctx context.Context, exec repositories.Executor, input models.CreateTaxRatingInput,
		newTaxRatingId string, createdBy models.UserId) error
	GetTaxRatingById(ctx context.Context, exec repositories.Executor, id string) (models.TaxRating, error)
	ListTaxRatings(ctx context.Context, exec repositories.Executor, filters models.TaxRatingFilters,
		pagination models.Pagination) (models.Paged[models.TaxRating], error)
	LatestTaxRatings(ctx context.Context, exec repositories.Executor) ([]models.TaxRating, error)
	UpdateTaxRating(ctx context.Context, exec repositories.Executor, input models.UpdateTaxRatingInput) error
	DeleteTaxRating(ctx context.Context, exec repositories.Executor, id string) error
	GetIssuerById(ctx context.Context, exec repositories.Executor, id string) (models.Issuer, error)
	GetInstrumentById(ctx context.Context, exec repositories.Executor, id string) (models.Instrument, error)
}

type TaxRatingUsecase struct {
	enforceSecurity    security.EnforceSecurityTaxRating
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         taxRatingRepository
	auditRepository    auditEventWriter
	credentials        models.Credentials
}

func (usecase *TaxRatingUsecase) CreateTaxRating(
	ctx context.Context,
	input models.CreateTaxRatingInput,
) (models.TaxRating, error) {
	if err := usecase.enforceSecurity.CreateTaxRating(); err != nil {
		return models.TaxRating{}, err
	}
	if input.ValidTo.Valid && input.ValidTo.Time.Before(input.ValidFrom) {
		return models.TaxRating{}, errors.Wrap(models.BadParameterError,
			"valid_to cannot be before valid_from")
	}

	exec := usecase.executorFactory.NewExecutor()
	if _, err := usecase.repository.GetIssuerById(ctx, exec, input.IssuerId); err != nil {
		return models.TaxRating{}, err
	}
	if _, err := usecase.repository.GetInstrumentById(ctx, exec, input.InstrumentId); err != nil {
		return models.TaxRating{}, err
	}

	createdBy := usecase.credentials.ActorIdentity.UserId
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.TaxRating, error) {
			newTaxRatingId := uuid.NewString()
			if err := usecase.repository.CreateTaxRating(ctx, tx, input, newTaxRatingId, createdBy); err != nil {
				return models.TaxRating{}, err
			}

			err := usecase.auditRepository.CreateAuditEvent(ctx, tx, models.CreateAuditEventInput{
				Actor:     auditActorFromCredentials(usecase.credentials),
				Operation: models.AuditOperationCreate,
				Table:     "tax_ratings",
				EntityId:  newTaxRatingId,
				NewData:   input,
			})
			if err != nil {
				return models.TaxRating{}, err
			}

			return usecase.repository.GetTaxRatingById(ctx, tx, newTaxRatingId)
		})
}

func (usecase *TaxRatingUsecase) GetTaxRating(ctx context.Context, id string) (models.TaxRating, error) {
	if err := usecase.enforceSecurity.ReadTaxRating(); err != nil {
		return models.TaxRating{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	return usecase.repository.GetTaxRatingById(ctx, exec, id)
}

func (usecase *TaxRatingUsecase) ListTaxRatings(
	ctx context.Context,
	filters models.TaxRatingFilters,
	pagination models.Pagination,
) (models.Paged[models.TaxRating], error) {
	if err := usecase.enforceSecurity.ReadTaxRating(); err != nil {
		return models.Paged[models.TaxRating]{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	return usecase.repository.ListTaxRatings(ctx, exec, filters, pagination.WithDefaults())
}

// LatestTaxRatings lists the most recent rating per issuer and instrument
// pair.
func (usecase *TaxRatingUsecase) LatestTaxRatings(ctx context.Context) ([]models.TaxRating, error) {
	if err := usecase.enforceSecurity.ReadTaxRating(); err != nil {
		return nil, err
	}

	exec := usecase.executorFactory.NewExecutor()
	return usecase.repository.LatestTaxRatings(ctx, exec)
}

func (usecase *TaxRatingUsecase) UpdateTaxRating(
	ctx context.Context,
	input models.UpdateTaxRatingInput,
) (models.TaxRating, error) {
	exec := usecase.executorFactory.NewExecutor()
	taxRating, err := usecase.repository.GetTaxRatingById(ctx, exec, input.Id)
	if err != nil {
		return models.TaxRating{}, err
	}
	if err := usecase.enforceSecurity.UpdateTaxRating(taxRating); err != nil {
		return models.TaxRating{}, err
	}

	validFrom := taxRating.ValidFrom
	if input.ValidFrom != nil {
		validFrom = *input.ValidFrom
	}
	validTo := taxRating.ValidTo
	if input.ValidTo.Valid {
		validTo = input.ValidTo
	}
	if validTo.Valid && validTo.Time.Before(validFrom) {
		return models.TaxRating{}, errors.Wrap(models.BadParameterError,
			"valid_to cannot be before valid_from")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.TaxRating, error) {
			if err := usecase.repository.UpdateTaxRating(ctx, tx, input); err != nil {
				return models.TaxRating{}, err
			}

			err := usecase.auditRepository.CreateAuditEvent(ctx, tx, models.CreateAuditEventInput{
				Actor:     auditActorFromCredentials(usecase.credentials),
				Operation: models.AuditOperationUpdate,
				Table:     "tax_ratings",
				EntityId:  input.Id,
				NewData:   input,
			})
			if err != nil {
				return models.TaxRating{}, err
			}

			return usecase.repository.GetTaxRatingById(ctx, tx, input.Id)
		})
}

func (usecase *TaxRatingUsecase) DeleteTaxRating(ctx context.Context, id string) error {
	exec := usecase.executorFactory.NewExecutor()
	taxRating, err := usecase.repository.GetTaxRatingById(ctx, exec, id)
	if err != nil {
		return err
	}
	if err := usecase.enforceSecurity.DeleteTaxRating(taxRating); err != nil {
		return err
	}

	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		if err := usecase.repository.DeleteTaxRating(ctx, tx, id); err != nil {
			return err
		}

		return usecase.auditRepository.CreateAuditEvent(ctx, tx, models.CreateAuditEventInput{
			Actor:     auditActorFromCredentials(usecase.credentials),
			Operation: models.AuditOperationDelete,
			Table:     "tax_ratings",
			EntityId:  id,
			NewData:   taxRating,
		})
	})
}
