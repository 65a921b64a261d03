package api

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/nuam-exchange/taxrating-backend/dto"
	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/usecases"
)

type UploadInput struct {
	Id string `uri:"upload_id" binding:"required,uuid"`
}

type UploadFileForm struct {
	File *multipart.FileHeader `form:"archivo" binding:"required"`
}

func handlePostBulkUpload(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var form UploadFileForm
		if err := c.ShouldBind(&form); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		file, err := form.File.Open()
		if presentError(ctx, c, err) {
			return
		}
		defer file.Close()

		usecase := usecasesWithCreds(ctx, uc).NewBulkUploadUsecase()
		upload, err := usecase.CreateUpload(ctx, models.CreateUploadInput{
			FileName:    form.File.Filename,
			ContentType: form.File.Header.Get("Content-Type"),
			FileSize:    form.File.Size,
		}, file)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"upload": dto.AdaptUploadDto(upload)})
	}
}

type listUploadsParams struct {
	dto.Pagination
	Estado string `form:"estado"`
}

func parseUploadStatusFilter(estado string) (*models.UploadStatus, error) {
	if estado == "" {
		return nil, nil
	}
	status := models.UploadStatus(strings.ToUpper(estado))
	switch status {
	case models.UploadPending, models.UploadProcessing, models.UploadCompleted,
		models.UploadError, models.UploadRejected:
		return &status, nil
	}
	return nil, errors.Wrapf(models.BadParameterError, "invalid value for estado: %s", estado)
}

func handleListBulkUploads(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var params listUploadsParams
		if err := c.ShouldBindQuery(&params); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}
		status, err := parseUploadStatusFilter(params.Estado)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewBulkUploadUsecase()
		uploads, err := usecase.ListUploads(ctx, status, dto.AdaptPagination(params.Pagination))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptPaginatedDto(uploads, dto.AdaptUploadDto))
	}
}

func handleGetBulkUpload(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uploadInput UploadInput
		if err := c.ShouldBindUri(&uploadInput); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewBulkUploadUsecase()
		upload, err := usecase.GetUpload(ctx, uploadInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"upload": dto.AdaptUploadDto(upload)})
	}
}

func handleGetBulkUploadSummary(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewBulkUploadUsecase()
		summary, err := usecase.GetSummary(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"resumen": dto.AdaptUploadSummaryDto(summary)})
	}
}

type listUploadItemsParams struct {
	dto.Pagination
	Estado string `form:"estado"`
}

func handleListBulkUploadItems(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uploadInput UploadInput
		if err := c.ShouldBindUri(&uploadInput); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		var params listUploadItemsParams
		if err := c.ShouldBindQuery(&params); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		var status *models.UploadItemStatus
		if params.Estado != "" {
			itemStatus, ok := models.UploadItemStatusFrom(strings.ToUpper(params.Estado))
			if !ok {
				presentError(ctx, c, errors.Wrapf(models.BadParameterError,
					"invalid value for estado: %s", params.Estado))
				return
			}
			status = &itemStatus
		}

		usecase := usecasesWithCreds(ctx, uc).NewBulkUploadUsecase()
		items, err := usecase.ListUploadItems(ctx, uploadInput.Id, status,
			dto.AdaptPagination(params.Pagination))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptPaginatedDto(items, dto.AdaptUploadItemDto))
	}
}

func handleProcessBulkUpload(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uploadInput UploadInput
		if err := c.ShouldBindUri(&uploadInput); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewUploadProcessingUsecase()
		upload, err := usecase.ProcessUpload(ctx, uploadInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"upload": dto.AdaptUploadDto(upload)})
	}
}

func handleRejectBulkUpload(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uploadInput UploadInput
		if err := c.ShouldBindUri(&uploadInput); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewBulkUploadUsecase()
		upload, err := usecase.RejectUpload(ctx, uploadInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"upload": dto.AdaptUploadDto(upload)})
	}
}
