package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/repositories"
)

type JwtEncoderValidator struct {
	mock.Mock
}

func (j *JwtEncoderValidator) EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error) {
	args := j.Called(expirationTime, creds)
	return args.String(0), args.Error(1)
}

func (j *JwtEncoderValidator) ValidateToken(token string) (models.Credentials, error) {
	args := j.Called(token)
	return args.Get(0).(models.Credentials), args.Error(1)
}

type TokenRepository struct {
	mock.Mock
}

func (r *TokenRepository) GetApiKeyByHash(ctx context.Context, exec repositories.Executor,
	hash []byte,
) (models.ApiKey, error) {
	args := r.Called(ctx, exec, hash)
	return args.Get(0).(models.ApiKey), args.Error(1)
}

func (r *TokenRepository) UserById(ctx context.Context, exec repositories.Executor,
	userId string,
) (models.User, error) {
	args := r.Called(ctx, exec, userId)
	return args.Get(0).(models.User), args.Error(1)
}
