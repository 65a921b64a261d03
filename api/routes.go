package api

import (
	"net/http"
	"time"

	limits "github.com/gin-contrib/size"
	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/usecases"
	"github.com/nuam-exchange/taxrating-backend/utils"
)

// Request bodies on the upload intake route may exceed the file size limit by
// the multipart framing, hence the extra megabyte. Oversized files within
// this envelope are still rejected with a 400 by the usecase.
const maxUploadRequestSize = models.MaxUploadFileSize + 1024*1024

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(duration),
		timeout.WithHandler(func(c *gin.Context) {
			c.Next()
		}),
		timeout.WithResponse(func(c *gin.Context) {
			c.String(http.StatusRequestTimeout, "timeout")
		}),
	)
}

func addRoutes(r *gin.Engine, conf Configuration, auth utils.Authentication,
	tokenHandler *TokenHandler, uc usecases.Usecases,
) {
	r.GET("/liveness", handleLivenessProbe(uc))
	r.POST("/token", tokenHandler.GenerateToken)

	router := r.Use(auth.Middleware)

	router.GET("/credentials", handleGetCredentials())

	router.POST("/bulk-uploads", limits.RequestSizeLimiter(maxUploadRequestSize), handlePostBulkUpload(uc))
	router.GET("/bulk-uploads", handleListBulkUploads(uc))
	router.GET("/bulk-uploads/resumen", handleGetBulkUploadSummary(uc))
	router.GET("/bulk-uploads/:upload_id", handleGetBulkUpload(uc))
	router.GET("/bulk-uploads/:upload_id/items", handleListBulkUploadItems(uc))
	router.POST("/bulk-uploads/:upload_id/procesar",
		timeoutMiddleware(conf.ProcessTimeout), handleProcessBulkUpload(uc))
	router.POST("/bulk-uploads/:upload_id/rechazar", handleRejectBulkUpload(uc))

	router.GET("/issuers", handleListIssuers(uc, false))
	router.GET("/issuers/activos", handleListIssuers(uc, true))
	router.POST("/issuers", handlePostIssuer(uc))
	router.GET("/issuers/:issuer_id", handleGetIssuer(uc))
	router.PATCH("/issuers/:issuer_id", handlePatchIssuer(uc))
	router.DELETE("/issuers/:issuer_id", handleDeleteIssuer(uc))

	router.GET("/instruments", handleListInstruments(uc, false))
	router.GET("/instruments/activos", handleListInstruments(uc, true))
	router.POST("/instruments", handlePostInstrument(uc))
	router.GET("/instruments/:instrument_id", handleGetInstrument(uc))
	router.PATCH("/instruments/:instrument_id", handlePatchInstrument(uc))
	router.DELETE("/instruments/:instrument_id", handleDeleteInstrument(uc))

	router.GET("/tax-ratings", handleListTaxRatings(uc))
	router.GET("/tax-ratings/ultimas", handleLatestTaxRatings(uc))
	router.POST("/tax-ratings", handlePostTaxRating(uc))
	router.GET("/tax-ratings/:rating_id", handleGetTaxRating(uc))
	router.PATCH("/tax-ratings/:rating_id", handlePatchTaxRating(uc))
	router.DELETE("/tax-ratings/:rating_id", handleDeleteTaxRating(uc))

	router.GET("/audit-events", handleListAuditEvents(uc))
}
