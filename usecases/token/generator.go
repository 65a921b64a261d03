package token

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/repositories"
	"github.com/nuam-exchange/taxrating-backend/repositories/clock"
	"github.com/nuam-exchange/taxrating-backend/usecases/executor_factory"

	"github.com/cockroachdb/errors"
)

type databaseRepository interface {
	GetApiKeyByHash(ctx context.Context, exec repositories.Executor, hash []byte) (models.ApiKey, error)
	UserById(ctx context.Context, exec repositories.Executor, userId string) (models.User, error)
}

type encoder interface {
	EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error)
}

type Generator struct {
	repository      databaseRepository
	executorFactory executor_factory.ExecutorFactory
	encoder         encoder
	clock           clock.Clock
	tokenLifetime   time.Duration
}

func NewGenerator(
	repository databaseRepository,
	executorFactory executor_factory.ExecutorFactory,
	encoder encoder,
	c clock.Clock,
	tokenLifetime time.Duration,
) *Generator {
	return &Generator{
		repository:      repository,
		executorFactory: executorFactory,
		encoder:         encoder,
		clock:           c,
		tokenLifetime:   tokenLifetime,
	}
}

// GenerateToken exchanges an API key for a short-lived signed token carrying
// the key owner's identity and role.
func (g *Generator) GenerateToken(ctx context.Context, apiKey string) (string, time.Time, error) {
	credentials, err := g.credentialsFromAPIKey(ctx, apiKey)
	if err != nil {
		return "", time.Time{}, err
	}

	expirationTime := g.clock.Now().Add(g.tokenLifetime)
	token, err := g.encoder.EncodeToken(expirationTime, credentials)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("encoder.EncodeToken error: %w", err)
	}
	return token, expirationTime, nil
}

func (g *Generator) credentialsFromAPIKey(ctx context.Context, apiKey string) (models.Credentials, error) {
	hashArr := sha256.Sum256([]byte(apiKey))
	exec := g.executorFactory.NewExecutor()

	key, err := g.repository.GetApiKeyByHash(ctx, exec, hashArr[:])
	if err != nil {
		if errors.Is(err, models.NotFoundError) {
			return models.Credentials{}, errors.Wrap(models.UnAuthorizedError, "unknown api key")
		}
		return models.Credentials{}, fmt.Errorf("GetApiKeyByHash error: %w", err)
	}

	credentials := key.IntoCredentials()

	// the key's owner gives the audit trail a readable actor name
	user, err := g.repository.UserById(ctx, exec, string(key.UserId))
	if err == nil {
		credentials.ActorIdentity.Email = user.Email
		credentials.ActorIdentity.FirstName = user.FirstName
		credentials.ActorIdentity.LastName = user.LastName
	} else if !errors.Is(err, models.NotFoundError) {
		return models.Credentials{}, fmt.Errorf("UserById error: %w", err)
	}

	return credentials, nil
}
