package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/repositories"
)

type AuditRepository struct {
	mock.Mock
}

func (r *AuditRepository) CreateAuditEvent(ctx context.Context, exec repositories.Executor,
	input models.CreateAuditEventInput,
) error {
	args := r.Called(ctx, exec, input)
	return args.Error(0)
}

func (r *AuditRepository) ListAuditEvents(ctx context.Context, exec repositories.Executor,
	filters models.AuditEventFilters, pagination models.Pagination,
) (models.Paged[models.AuditEvent], error) {
	args := r.Called(ctx, exec, filters, pagination)
	return args.Get(0).(models.Paged[models.AuditEvent]), args.Error(1)
}
