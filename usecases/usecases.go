package usecases

import (
	"time"

	"github.com/nuam-exchange/taxrating-backend/repositories"
	"github.com/nuam-exchange/taxrating-backend/repositories/clock"
	"github.com/nuam-exchange/taxrating-backend/usecases/executor_factory"
	"github.com/nuam-exchange/taxrating-backend/usecases/token"
)

type Usecases struct {
	Repositories    repositories.Repositories
	uploadBucketUrl string
	tokenLifetime   time.Duration
	clock           clock.Clock
}

type Option func(*options)

type options struct {
	uploadBucketUrl string
	tokenLifetime   time.Duration
	clock           clock.Clock
}

func WithUploadBucketUrl(bucketUrl string) Option {
	return func(o *options) {
		o.uploadBucketUrl = bucketUrl
	}
}

func WithTokenLifetime(lifetime time.Duration) Option {
	return func(o *options) {
		o.tokenLifetime = lifetime
	}
}

func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	o := &options{
		tokenLifetime: time.Hour,
		clock:         clock.New(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return Usecases{
		Repositories:    repositories,
		uploadBucketUrl: o.uploadBucketUrl,
		tokenLifetime:   o.tokenLifetime,
		clock:           o.clock,
	}
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		livenessRepository: usecases.Repositories.TaxRatingDbRepository,
	}
}

func (usecases *Usecases) NewTokenGenerator() *token.Generator {
	return token.NewGenerator(
		usecases.Repositories.TaxRatingDbRepository,
		usecases.NewExecutorFactory(),
		usecases.Repositories.JwtRepository,
		usecases.clock,
		usecases.tokenLifetime,
	)
}

func (usecases *Usecases) NewTokenValidator() *token.Validator {
	return token.NewValidator(usecases.Repositories.JwtRepository)
}
