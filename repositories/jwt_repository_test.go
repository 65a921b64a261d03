package repositories

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuam-exchange/taxrating-backend/models"
)

func TestJwtRepositoryRoundTrip(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	repo := NewJwtRepository(key)

	creds := models.Credentials{
		ActorIdentity: models.Identity{
			UserId:    "user_id",
			Email:     "ana.rojas@example.com",
			FirstName: "Ana",
			LastName:  "Rojas",
		},
		Role: models.ANALISTA,
	}

	token, err := repo.EncodeToken(time.Now().Add(time.Hour), creds)
	require.NoError(t, err)

	decoded, err := repo.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, creds, decoded)
}

func TestJwtRepositoryExpiredToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	repo := NewJwtRepository(key)

	token, err := repo.EncodeToken(time.Now().Add(-time.Minute), models.Credentials{
		Role: models.AUDITOR,
	})
	require.NoError(t, err)

	_, err = repo.ValidateToken(token)
	assert.ErrorIs(t, err, models.UnAuthorizedError)
}

func TestJwtRepositoryWrongKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	token, err := NewJwtRepository(key).EncodeToken(time.Now().Add(time.Hour), models.Credentials{
		Role: models.ADMIN,
	})
	require.NoError(t, err)

	_, err = NewJwtRepository(otherKey).ValidateToken(token)
	assert.ErrorIs(t, err, models.UnAuthorizedError)
}
