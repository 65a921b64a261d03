package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nuam-exchange/taxrating-backend/mocks"
	"github.com/nuam-exchange/taxrating-backend/models"
)

func TestAuditUsecaseListAuditEvents(t *testing.T) {
	filters := models.AuditEventFilters{Table: "tax_ratings"}
	page := models.Paged[models.AuditEvent]{
		Items: []models.AuditEvent{{Id: "event_id", Table: "tax_ratings"}},
		Total: 1,
	}

	t.Run("nominal", func(t *testing.T) {
		exec := new(mocks.Executor)
		executorFactory := new(mocks.ExecutorFactory)
		executorFactory.On("NewExecutor").Return(exec)

		enforceSecurity := new(mocks.EnforceSecurity)
		enforceSecurity.On("ReadAuditEvents").Return(nil)

		repository := new(mocks.AuditRepository)
		repository.On("ListAuditEvents", mock.Anything, exec, filters,
			models.Pagination{}.WithDefaults()).
			Return(page, nil)

		usecase := AuditUsecase{
			enforceSecurity: enforceSecurity,
			executorFactory: executorFactory,
			repository:      repository,
		}

		result, err := usecase.ListAuditEvents(context.Background(), filters, models.Pagination{})
		assert.NoError(t, err)
		assert.Equal(t, page, result)
		repository.AssertExpectations(t)
	})

	t.Run("security error", func(t *testing.T) {
		securityError := errors.New("some security error")
		enforceSecurity := new(mocks.EnforceSecurity)
		enforceSecurity.On("ReadAuditEvents").Return(securityError)

		usecase := AuditUsecase{enforceSecurity: enforceSecurity}

		_, err := usecase.ListAuditEvents(context.Background(), filters, models.Pagination{})
		assert.ErrorIs(t, err, securityError)
	})
}
