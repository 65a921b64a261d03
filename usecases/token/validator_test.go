package token

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nuam-exchange/taxrating-backend/mocks"
	"github.com/nuam-exchange/taxrating-backend/models"
)

func TestValidatorValidate(t *testing.T) {
	creds := models.Credentials{
		ActorIdentity: models.Identity{
			UserId: "user_id",
			Email:  "ana.rojas@example.com",
		},
		Role: models.ANALISTA,
	}

	t.Run("nominal", func(t *testing.T) {
		mockValidator := new(mocks.JwtEncoderValidator)
		mockValidator.On("ValidateToken", "token").
			Return(creds, nil)

		v := NewValidator(mockValidator)

		credentials, err := v.Validate(context.Background(), "token")
		assert.NoError(t, err)
		assert.Equal(t, creds, credentials)
		mockValidator.AssertExpectations(t)
	})

	t.Run("invalid token", func(t *testing.T) {
		mockValidator := new(mocks.JwtEncoderValidator)
		mockValidator.On("ValidateToken", "token").
			Return(models.Credentials{}, models.UnAuthorizedError)

		v := NewValidator(mockValidator)

		_, err := v.Validate(context.Background(), "token")
		assert.ErrorIs(t, err, models.UnAuthorizedError)
	})
}
