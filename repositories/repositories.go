package repositories

import (
	"crypto/rsa"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	ExecutorGetter        ExecutorGetter
	JwtRepository         *JwtRepository
	TaxRatingDbRepository *TaxRatingDbRepository
	BlobRepository        BlobRepository
}

type Option func(*options)

type options struct {
	blobRepository BlobRepository
}

// WithBlobRepository overrides the default blob repository, used in tests.
func WithBlobRepository(blobRepository BlobRepository) Option {
	return func(o *options) {
		o.blobRepository = blobRepository
	}
}

func NewRepositories(
	pool *pgxpool.Pool,
	jwtSigningKey *rsa.PrivateKey,
	opts ...Option,
) Repositories {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.blobRepository == nil {
		o.blobRepository = NewBlobRepository()
	}

	return Repositories{
		ExecutorGetter:        NewExecutorGetter(pool),
		JwtRepository:         NewJwtRepository(jwtSigningKey),
		TaxRatingDbRepository: NewTaxRatingDbRepository(),
		BlobRepository:        o.blobRepository,
	}
}
