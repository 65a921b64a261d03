package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/nuam-exchange/taxrating-backend/dto"
	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/usecases"
)

type listAuditEventsParams struct {
	dto.Pagination
	dto.AuditEventFilters
}

func handleListAuditEvents(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var params listAuditEventsParams
		if err := c.ShouldBindQuery(&params); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		auditUsecase := usecasesWithCreds(ctx, uc).NewAuditUsecase()
		events, err := auditUsecase.ListAuditEvents(ctx,
			dto.AdaptAuditEventFilters(params.AuditEventFilters),
			dto.AdaptPagination(params.Pagination))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptPaginatedDto(events, dto.AdaptAuditEventDto))
	}
}
