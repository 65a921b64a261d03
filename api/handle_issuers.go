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

type IssuerInput struct {
	Id string `uri:"issuer_id" binding:"required,uuid"`
}

func handlePostIssuer(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateIssuerBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewReferenceDataUsecase()
		issuer, err := usecase.CreateIssuer(ctx, dto.AdaptCreateIssuerInput(body))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"issuer": dto.AdaptIssuerDto(issuer)})
	}
}

func handleListIssuers(uc usecases.Usecases, activoOnly bool) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewReferenceDataUsecase()
		issuers, err := usecase.ListIssuers(ctx, activoOnly)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"issuers": pure_utils.Map(issuers, dto.AdaptIssuerDto),
		})
	}
}

func handleGetIssuer(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var issuerInput IssuerInput
		if err := c.ShouldBindUri(&issuerInput); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewReferenceDataUsecase()
		issuer, err := usecase.GetIssuer(ctx, issuerInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"issuer": dto.AdaptIssuerDto(issuer)})
	}
}

func handlePatchIssuer(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var issuerInput IssuerInput
		if err := c.ShouldBindUri(&issuerInput); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		var body dto.UpdateIssuerBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewReferenceDataUsecase()
		issuer, err := usecase.UpdateIssuer(ctx, dto.AdaptUpdateIssuerInput(issuerInput.Id, body))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"issuer": dto.AdaptIssuerDto(issuer)})
	}
}

func handleDeleteIssuer(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var issuerInput IssuerInput
		if err := c.ShouldBindUri(&issuerInput); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewReferenceDataUsecase()
		err := usecase.DeleteIssuer(ctx, issuerInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
