package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nuam-exchange/taxrating-backend/utils"
)

type tokenGenerator interface {
	GenerateToken(ctx context.Context, apiKey string) (string, time.Time, error)
}

type TokenHandler struct {
	generator tokenGenerator
}

type token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (t *TokenHandler) GenerateToken(c *gin.Context) {
	key := utils.ParseApiKeyHeader(c.Request.Header)
	if key == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "missing X-API-Key header"})
		return
	}

	accessToken, expirationTime, err := t.generator.GenerateToken(c.Request.Context(), key)
	if err != nil {
		_ = c.Error(fmt.Errorf("generator.GenerateToken error: %w", err))
		c.Status(http.StatusUnauthorized)
		return
	}

	c.JSON(http.StatusOK, token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expirationTime,
	})
}

func NewTokenHandler(generator tokenGenerator) *TokenHandler {
	return &TokenHandler{
		generator: generator,
	}
}
