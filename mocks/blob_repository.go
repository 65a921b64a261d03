package mocks

import (
	"bytes"
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/nuam-exchange/taxrating-backend/models"
)

type BlobRepository struct {
	mock.Mock
}

func (r *BlobRepository) GetBlob(ctx context.Context, bucketUrl, fileName string) (models.Blob, error) {
	args := r.Called(ctx, bucketUrl, fileName)
	return args.Get(0).(models.Blob), args.Error(1)
}

func (r *BlobRepository) OpenStream(ctx context.Context, bucketUrl, fileName string) (io.WriteCloser, error) {
	args := r.Called(ctx, bucketUrl, fileName)
	return args.Get(0).(io.WriteCloser), args.Error(1)
}

func (r *BlobRepository) DeleteFile(ctx context.Context, bucketUrl, fileName string) error {
	args := r.Called(ctx, bucketUrl, fileName)
	return args.Error(0)
}

// NopWriteCloser buffers whatever the code under test writes to the blob.
type NopWriteCloser struct {
	bytes.Buffer
}

func (w *NopWriteCloser) Close() error {
	return nil
}
