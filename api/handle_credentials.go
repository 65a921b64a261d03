package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nuam-exchange/taxrating-backend/dto"
	"github.com/nuam-exchange/taxrating-backend/utils"
)

func handleGetCredentials() gin.HandlerFunc {
	return func(c *gin.Context) {
		creds, found := utils.CredentialsFromCtx(c.Request.Context())
		if !found {
			c.Status(http.StatusUnauthorized)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"credentials": dto.AdaptCredentialDto(creds),
		})
	}
}
