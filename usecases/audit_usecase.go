package usecases

import (
	"context"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/repositories"
	"github.com/nuam-exchange/taxrating-backend/usecases/executor_factory"
	"github.com/nuam-exchange/taxrating-backend/usecases/security"
)

type auditEventReader interface {
	ListAuditEvents(ctx context.Context, exec repositories.Executor, filters models.AuditEventFilters,
		pagination models.Pagination) (models.Paged[models.AuditEvent], error)
}

type AuditUsecase struct {
	enforceSecurity security.EnforceSecurityAudit
	executorFactory executor_factory.ExecutorFactory
	repository      auditEventReader
}

func (usecase *AuditUsecase) ListAuditEvents(
	ctx context.Context,
	filters models.AuditEventFilters,
	pagination models.Pagination,
) (models.Paged[models.AuditEvent], error) {
	if err := usecase.enforceSecurity.ReadAuditEvents(); err != nil {
		return models.Paged[models.AuditEvent]{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	return usecase.repository.ListAuditEvents(ctx, exec, filters, pagination.WithDefaults())
}
