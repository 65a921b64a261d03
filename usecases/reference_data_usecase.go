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

type referenceDataRepository interface {
	CreateIssuer(ctx context.Context, exec repositories.Executor, input models.CreateIssuerInput, newIssuerId string) error
	GetIssuerById(ctx context.Context, exec repositories.Executor, id string) (models.Issuer, error)
	ListIssuers(ctx context.Context, exec repositories.Executor, activoOnly bool) ([]models.Issuer, error)
	UpdateIssuer(ctx context.Context, exec repositories.Executor, input models.UpdateIssuerInput) error
	CreateInstrument(ctx context.Context, exec repositories.Executor, input models.CreateInstrumentInput, newInstrumentId string) error
	GetInstrumentById(ctx context.Context, exec repositories.Executor, id string) (models.Instrument, error)
	ListInstruments(ctx context.Context, exec repositories.Executor, activoOnly bool) ([]models.Instrument, error)
	UpdateInstrument(ctx context.Context, exec repositories.Executor, input models.UpdateInstrumentInput) error
}

type ReferenceDataUsecase struct {
	enforceSecurity    security.EnforceSecurityReferenceData
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         referenceDataRepository
	auditRepository    auditEventWriter
	credentials        models.Credentials
}

func (usecase *ReferenceDataUsecase) CreateIssuer(ctx context.Context, input models.CreateIssuerInput) (models.Issuer, error) {
	if err := usecase.enforceSecurity.EditReferenceData(); err != nil {
		return models.Issuer{}, err
	}
	if input.Codigo == "" {
		return models.Issuer{}, errors.Wrap(models.BadParameterError, "codigo is required")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Issuer, error) {
			newIssuerId := uuid.NewString()
			if err := usecase.repository.CreateIssuer(ctx, tx, input, newIssuerId); err != nil {
				if repositories.IsUniqueViolationError(err) {
					return models.Issuer{}, errors.Wrapf(models.ConflictError,
						"an issuer with codigo %s already exists", input.Codigo)
				}
				return models.Issuer{}, err
			}

			err := usecase.auditRepository.CreateAuditEvent(ctx, tx, models.CreateAuditEventInput{
				Actor:     auditActorFromCredentials(usecase.credentials),
				Operation: models.AuditOperationCreate,
				Table:     "issuers",
				EntityId:  newIssuerId,
				NewData:   input,
			})
			if err != nil {
				return models.Issuer{}, err
			}

			return usecase.repository.GetIssuerById(ctx, tx, newIssuerId)
		})
}

func (usecase *ReferenceDataUsecase) GetIssuer(ctx context.Context, id string) (models.Issuer, error) {
	if err := usecase.enforceSecurity.ReadReferenceData(); err != nil {
		return models.Issuer{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	return usecase.repository.GetIssuerById(ctx, exec, id)
}

func (usecase *ReferenceDataUsecase) ListIssuers(ctx context.Context, activoOnly bool) ([]models.Issuer, error) {
	if err := usecase.enforceSecurity.ReadReferenceData(); err != nil {
		return nil, err
	}

	exec := usecase.executorFactory.NewExecutor()
	return usecase.repository.ListIssuers(ctx, exec, activoOnly)
}

func (usecase *ReferenceDataUsecase) UpdateIssuer(ctx context.Context, input models.UpdateIssuerInput) (models.Issuer, error) {
	if err := usecase.enforceSecurity.EditReferenceData(); err != nil {
		return models.Issuer{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	if _, err := usecase.repository.GetIssuerById(ctx, exec, input.Id); err != nil {
		return models.Issuer{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Issuer, error) {
			if err := usecase.repository.UpdateIssuer(ctx, tx, input); err != nil {
				return models.Issuer{}, err
			}

			err := usecase.auditRepository.CreateAuditEvent(ctx, tx, models.CreateAuditEventInput{
				Actor:     auditActorFromCredentials(usecase.credentials),
				Operation: models.AuditOperationUpdate,
				Table:     "issuers",
				EntityId:  input.Id,
				NewData:   input,
			})
			if err != nil {
				return models.Issuer{}, err
			}

			return usecase.repository.GetIssuerById(ctx, tx, input.Id)
		})
}

// DeleteIssuer deactivates the issuer. Reference records are never removed,
// existing ratings keep pointing at them.
func (usecase *ReferenceDataUsecase) DeleteIssuer(ctx context.Context, id string) error {
	if err := usecase.enforceSecurity.EditReferenceData(); err != nil {
		return err
	}

	exec := usecase.executorFactory.NewExecutor()
	if _, err := usecase.repository.GetIssuerById(ctx, exec, id); err != nil {
		return err
	}

	inactive := false
	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		err := usecase.repository.UpdateIssuer(ctx, tx, models.UpdateIssuerInput{Id: id, Activo: &inactive})
		if err != nil {
			return err
		}

		return usecase.auditRepository.CreateAuditEvent(ctx, tx, models.CreateAuditEventInput{
			Actor:     auditActorFromCredentials(usecase.credentials),
			Operation: models.AuditOperationDelete,
			Table:     "issuers",
			EntityId:  id,
			NewData:   map[string]any{"activo": false},
		})
	})
}

func (usecase *ReferenceDataUsecase) CreateInstrument(ctx context.Context, input models.CreateInstrumentInput) (models.Instrument, error) {
	if err := usecase.enforceSecurity.EditReferenceData(); err != nil {
		return models.Instrument{}, err
	}
	if input.Codigo == "" {
		return models.Instrument{}, errors.Wrap(models.BadParameterError, "codigo is required")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Instrument, error) {
			newInstrumentId := uuid.NewString()
			if err := usecase.repository.CreateInstrument(ctx, tx, input, newInstrumentId); err != nil {
				if repositories.IsUniqueViolationError(err) {
					return models.Instrument{}, errors.Wrapf(models.ConflictError,
						"an instrument with codigo %s already exists", input.Codigo)
				}
				return models.Instrument{}, err
			}

			err := usecase.auditRepository.CreateAuditEvent(ctx, tx, models.CreateAuditEventInput{
				Actor:     auditActorFromCredentials(usecase.credentials),
				Operation: models.AuditOperationCreate,
				Table:     "instruments",
				EntityId:  newInstrumentId,
				NewData:   input,
			})
			if err != nil {
				return models.Instrument{}, err
			}

			return usecase.repository.GetInstrumentById(ctx, tx, newInstrumentId)
		})
}

func (usecase *ReferenceDataUsecase) GetInstrument(ctx context.Context, id string) (models.Instrument, error) {
	if err := usecase.enforceSecurity.ReadReferenceData(); err != nil {
		return models.Instrument{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	return usecase.repository.GetInstrumentById(ctx, exec, id)
}

func (usecase *ReferenceDataUsecase) ListInstruments(ctx context.Context, activoOnly bool) ([]models.Instrument, error) {
	if err := usecase.enforceSecurity.ReadReferenceData(); err != nil {
		return nil, err
	}

	exec := usecase.executorFactory.NewExecutor()
	return usecase.repository.ListInstruments(ctx, exec, activoOnly)
}

func (usecase *ReferenceDataUsecase) UpdateInstrument(ctx context.Context, input models.UpdateInstrumentInput) (models.Instrument, error) {
	if err := usecase.enforceSecurity.EditReferenceData(); err != nil {
		return models.Instrument{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	if _, err := usecase.repository.GetInstrumentById(ctx, exec, input.Id); err != nil {
		return models.Instrument{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Instrument, error) {
			if err := usecase.repository.UpdateInstrument(ctx, tx, input); err != nil {
				return models.Instrument{}, err
			}

			err := usecase.auditRepository.CreateAuditEvent(ctx, tx, models.CreateAuditEventInput{
				Actor:     auditActorFromCredentials(usecase.credentials),
				Operation: models.AuditOperationUpdate,
				Table:     "instruments",
				EntityId:  input.Id,
				NewData:   input,
			})
			if err != nil {
				return models.Instrument{}, err
			}

			return usecase.repository.GetInstrumentById(ctx, tx, input.Id)
		})
}

func (usecase *ReferenceDataUsecase) DeleteInstrument(ctx context.Context, id string) error {
	if err := usecase.enforceSecurity.EditReferenceData(); err != nil {
		return err
	}

	exec := usecase.executorFactory.NewExecutor()
	if _, err := usecase.repository.GetInstrumentById(ctx, exec, id); err != nil {
		return err
	}

	inactive := false
	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		err := usecase.repository.UpdateInstrument(ctx, tx, models.UpdateInstrumentInput{Id: id, Activo: &inactive})
		if err != nil {
			return err
		}

		return usecase.auditRepository.CreateAuditEvent(ctx, tx, models.CreateAuditEventInput{
			Actor:     auditActorFromCredentials(usecase.credentials),
			Operation: models.AuditOperationDelete,
			Table:     "instruments",
			EntityId:  id,
			NewData:   map[string]any{"activo": false},
		})
	})
}
