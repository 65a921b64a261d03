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

type TaxRatingInput struct {
	Id string `uri:"rating_id" binding:"required,uuid"`
}

func handlePostTaxRating(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateTaxRatingBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}
		input, err := dto.AdaptCreateTaxRatingInput(body)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTaxRatingUsecase()
		rating, err := usecase.CreateTaxRating(ctx, input)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"tax_rating": dto.AdaptTaxRatingDto(rating)})
	}
}

type listTaxRatingsParams struct {
	dto.Pagination
	IssuerId     string `form:"issuer_id" binding:"omitempty,uuid"`
	InstrumentId string `form:"instrument_id" binding:"omitempty,uuid"`
	Rating       string `form:"rating"`
	Status       string `form:"status"`
}

func handleListTaxRatings(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var params listTaxRatingsParams
		if err := c.ShouldBindQuery(&params); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTaxRatingUsecase()
		ratings, err := usecase.ListTaxRatings(ctx, models.TaxRatingFilters{
			IssuerId:     params.IssuerId,
			InstrumentId: params.InstrumentId,
			Rating:       params.Rating,
			Status:       params.Status,
		}, dto.AdaptPagination(params.Pagination))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptPaginatedDto(ratings, dto.AdaptTaxRatingDto))
	}
}

func handleLatestTaxRatings(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewTaxRatingUsecase()
		ratings, err := usecase.LatestTaxRatings(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"tax_ratings": pure_utils.Map(ratings, dto.AdaptTaxRatingDto),
		})
	}
}

func handleGetTaxRating(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var ratingInput TaxRatingInput
		if err := c.ShouldBindUri(&ratingInput); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTaxRatingUsecase()
		rating, err := usecase.GetTaxRating(ctx, ratingInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"tax_rating": dto.AdaptTaxRatingDto(rating)})
	}
}

func handlePatchTaxRating(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var ratingInput TaxRatingInput
		if err := c.ShouldBindUri(&ratingInput); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		var body dto.UpdateTaxRatingBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}
		input, err := dto.AdaptUpdateTaxRatingInput(ratingInput.Id, body)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTaxRatingUsecase()
		rating, err := usecase.UpdateTaxRating(ctx, input)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"tax_rating": dto.AdaptTaxRatingDto(rating)})
	}
}

func handleDeleteTaxRating(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var ratingInput TaxRatingInput
		if err := c.ShouldBindUri(&ratingInput); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTaxRatingUsecase()
		err := usecase.DeleteTaxRating(ctx, ratingInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
