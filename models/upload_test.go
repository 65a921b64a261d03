package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadSuccessPercentage(t *testing.T) {
	tests := []struct {
		name     string
		upload   Upload
		expected float64
	}{
		{name: "no rows", upload: Upload{TotalRows: 0, RowsOk: 0}, expected: 0},
		{name: "all ok", upload: Upload{TotalRows: 4, RowsOk: 4}, expected: 100},
		{name: "half ok", upload: Upload{TotalRows: 4, RowsOk: 2}, expected: 50},
		{name: "one third rounds to one decimal", upload: Upload{TotalRows: 3, RowsOk: 1}, expected: 33.3},
		{name: "two thirds rounds up", upload: Upload{TotalRows: 3, RowsOk: 2}, expected: 66.7},
		{name: "all failed", upload: Upload{TotalRows: 5, RowsOk: 0}, expected: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.InDelta(t, test.expected, test.upload.SuccessPercentage(), 0.001)
		})
	}
}

func TestUploadStatusFrom(t *testing.T) {
	assert.Equal(t, UploadProcessing, UploadStatusFrom("PROCESSING"))
	assert.Equal(t, UploadRejected, UploadStatusFrom("REJECTED"))
	assert.Equal(t, UploadPending, UploadStatusFrom("anything else"))
}
