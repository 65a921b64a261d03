package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/nuam-exchange/taxrating-backend/dto"
	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/pure_utils"
	"github.com/nuam-exchange/taxrating-backend/usecases"
)

type InstrumentInput struct {
	Id string `uri:"instrument_id" binding:"required,uuid"`
}

func handlePostInstrument(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateInstrumentBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewReferenceDataUsecase()
		instrument, err := usecase.CreateInstrument(ctx, dto.AdaptCreateInstrumentInput(body))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"instrument": dto.AdaptInstrumentDto(instrument)})
	}
}

func handleListInstruments(uc usecases.Usecases, activoOnly bool) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewReferenceDataUsecase()
		instruments, err := usecase.ListInstruments(ctx, activoOnly)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"instruments": pure_utils.Map(instruments, dto.AdaptInstrumentDto),
		})
	}
}

func handleGetInstrument(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var instrumentInput InstrumentInput
		if err := c.ShouldBindUri(&instrumentInput); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewReferenceDataUsecase()
		instrument, err := usecase.GetInstrument(ctx, instrumentInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"instrument": dto.AdaptInstrumentDto(instrument)})
	}
}

func handlePatchInstrument(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var instrumentInput InstrumentInput
		if err := c.ShouldBindUri(&instrumentInput); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		var body dto.UpdateInstrumentBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewReferenceDataUsecase()
		instrument, err := usecase.UpdateInstrument(ctx,
			dto.AdaptUpdateInstrumentInput(instrumentInput.Id, body))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"instrument": dto.AdaptInstrumentDto(instrument)})
	}
}

func handleDeleteInstrument(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var instrumentInput InstrumentInput
		if err := c.ShouldBindUri(&instrumentInput); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewReferenceDataUsecase()
		err := usecase.DeleteInstrument(ctx, instrumentInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
