package token

import (
	"context"
	"crypto/sha256"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nuam-exchange/taxrating-backend/mocks"
	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/repositories/clock"
)

func TestGeneratorGenerateToken(t *testing.T) {
	key := "api_key"
	keyHash := sha256.Sum256([]byte(key))

	apiKey := models.ApiKey{
		Id:          "api_key_id",
		UserId:      "user_id",
		Description: "integration key",
		Role:        models.API_CLIENT,
	}

	user := models.User{
		UserId:    "user_id",
		Email:     "ana.rojas@example.com",
		FirstName: "Ana",
		LastName:  "Rojas",
		Role:      models.ANALISTA,
	}

	token := "token"
	now := time.Now()

	ctx := context.Background()

	newExecutorFactory := func(exec *mocks.Executor) *mocks.ExecutorFactory {
		factory := new(mocks.ExecutorFactory)
		factory.On("NewExecutor").Return(exec)
		return factory
	}

	t.Run("nominal", func(t *testing.T) {
		exec := new(mocks.Executor)
		mockRepository := new(mocks.TokenRepository)
		mockRepository.On("GetApiKeyByHash", ctx, exec, keyHash[:]).
			Return(apiKey, nil)
		mockRepository.On("UserById", ctx, exec, "user_id").
			Return(user, nil)

		mockEncoder := new(mocks.JwtEncoderValidator)
		mockEncoder.On("EncodeToken", now.Add(time.Hour), models.Credentials{
			ActorIdentity: models.Identity{
				UserId:     "user_id",
				Email:      "ana.rojas@example.com",
				FirstName:  "Ana",
				LastName:   "Rojas",
				ApiKeyId:   "api_key_id",
				ApiKeyName: "integration key",
			},
			Role: models.API_CLIENT,
		}).
			Return(token, nil)

		generator := NewGenerator(mockRepository, newExecutorFactory(exec),
			mockEncoder, clock.NewMock(now), time.Hour)

		receivedToken, expirationTime, err := generator.GenerateToken(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, token, receivedToken)
		assert.Equal(t, now.Add(time.Hour), expirationTime)

		mockRepository.AssertExpectations(t)
		mockEncoder.AssertExpectations(t)
	})

	t.Run("unknown api key", func(t *testing.T) {
		exec := new(mocks.Executor)
		mockRepository := new(mocks.TokenRepository)
		mockRepository.On("GetApiKeyByHash", ctx, exec, keyHash[:]).
			Return(models.ApiKey{}, models.NotFoundError)

		generator := NewGenerator(mockRepository, newExecutorFactory(exec),
			nil, clock.NewMock(now), time.Hour)

		_, _, err := generator.GenerateToken(ctx, key)
		assert.ErrorIs(t, err, models.UnAuthorizedError)

		mockRepository.AssertExpectations(t)
	})

	t.Run("key owner deleted", func(t *testing.T) {
		exec := new(mocks.Executor)
		mockRepository := new(mocks.TokenRepository)
		mockRepository.On("GetApiKeyByHash", ctx, exec, keyHash[:]).
			Return(apiKey, nil)
		mockRepository.On("UserById", ctx, exec, "user_id").
			Return(models.User{}, models.NotFoundError)

		mockEncoder := new(mocks.JwtEncoderValidator)
		mockEncoder.On("EncodeToken", now.Add(time.Hour), apiKey.IntoCredentials()).
			Return(token, nil)

		generator := NewGenerator(mockRepository, newExecutorFactory(exec),
			mockEncoder, clock.NewMock(now), time.Hour)

		receivedToken, _, err := generator.GenerateToken(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, token, receivedToken)

		mockEncoder.AssertExpectations(t)
	})

	t.Run("GetApiKeyByHash error", func(t *testing.T) {
		exec := new(mocks.Executor)
		mockRepository := new(mocks.TokenRepository)
		mockRepository.On("GetApiKeyByHash", ctx, exec, keyHash[:]).
			Return(models.ApiKey{}, assert.AnError)

		generator := NewGenerator(mockRepository, newExecutorFactory(exec),
			nil, clock.NewMock(now), time.Hour)

		_, _, err := generator.GenerateToken(ctx, key)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("EncodeToken error", func(t *testing.T) {
		exec := new(mocks.Executor)
		mockRepository := new(mocks.TokenRepository)
		mockRepository.On("GetApiKeyByHash", ctx, exec, keyHash[:]).
			Return(apiKey, nil)
		mockRepository.On("UserById", ctx, exec, "user_id").
			Return(user, nil)

		mockEncoder := new(mocks.JwtEncoderValidator)
		mockEncoder.On("EncodeToken", mock.Anything, mock.Anything).
			Return("", assert.AnError)

		generator := NewGenerator(mockRepository, newExecutorFactory(exec),
			mockEncoder, clock.NewMock(now), time.Hour)

		_, _, err := generator.GenerateToken(ctx, key)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
