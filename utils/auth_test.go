package utils

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nuam-exchange/taxrating-backend/models"
)

func TestParseAuthorizationBearerHeaderNominal(t *testing.T) {
	header := http.Header{}
	header.Add("Authorization", "Bearer TOKEN")

	authorization, err := ParseAuthorizationBearerHeader(header)
	assert.NoError(t, err)
	assert.Equal(t, "TOKEN", authorization)
}

func TestParseAuthorizationBearerHeaderEmpty(t *testing.T) {
	authorization, err := ParseAuthorizationBearerHeader(http.Header{})
	assert.NoError(t, err)
	assert.Empty(t, authorization)
}

func TestParseAuthorizationBearerHeaderMalformed(t *testing.T) {
	header := http.Header{}
	header.Add("Authorization", "MalformedBearer")

	_, err := ParseAuthorizationBearerHeader(header)
	assert.ErrorIs(t, err, models.UnAuthorizedError)
}

func TestParseApiKeyHeader(t *testing.T) {
	header := http.Header{}
	header.Add("X-API-Key", "  api_key ")

	assert.Equal(t, "api_key", ParseApiKeyHeader(header))
	assert.Empty(t, ParseApiKeyHeader(http.Header{}))
}
