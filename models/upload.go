package models

import (
	"math"
	"time"
)

const MaxUploadFileSize = 10 * 1024 * 1024 // 10MiB

// Accepted content types for bulk upload files. The canonical contract is
// UTF-8 text, pipe or tab delimited, with a header line.
var UploadAcceptedContentTypes = []string{
	"text/plain",
	"text/tab-separated-values",
}

var UploadAcceptedExtensions = []string{".txt", ".tsv"}

type Upload struct {
	Id                string
	FileName          string
	FileKey           string // key of the raw file in blob storage
	ContentType       string
	Status            UploadStatus
	TotalRows         int
	RowsOk            int
	RowsError         int
	CreatedBy         UserId
	CreatedAt         time.Time
	ProcessingStarted *time.Time
	ProcessingEnded   *time.Time
}

// SuccessPercentage is rows_ok over total_rows, rounded to 1 decimal.
// A completed upload with no data rows has a percentage of 0.
func (u Upload) SuccessPercentage() float64 {
	if u.TotalRows == 0 {
		return 0
	}
	return math.Round(float64(u.RowsOk)/float64(u.TotalRows)*1000) / 10
}

type UploadStatus string

const (
	UploadPending    UploadStatus = "PENDING"
	UploadProcessing UploadStatus = "PROCESSING"
	UploadCompleted  UploadStatus = "COMPLETED"
	UploadError      UploadStatus = "ERROR"
	UploadRejected   UploadStatus = "REJECTED"
)

func UploadStatusFrom(s string) UploadStatus {
	switch s {
	case "PROCESSING":
		return UploadProcessing
	case "COMPLETED":
		return UploadCompleted
	case "ERROR":
		return UploadError
	case "REJECTED":
		return UploadRejected
	}
	return UploadPending
}

type CreateUploadInput struct {
	FileName    string
	ContentType string
	FileSize    int64
}

type UpdateUploadStatusInput struct {
	Id     string
	Status UploadStatus
	// CurrentStatusCondition makes the update conditional: only an upload
	// currently in this status is updated. Used as the mutual exclusion
	// gate for process and reject.
	CurrentStatusCondition UploadStatus
	TotalRows              *int
	RowsOk                 *int
	RowsError              *int
	ProcessingStarted      *time.Time
	ProcessingEnded        *time.Time
}

type UploadSummary struct {
	Total      int
	Pendientes int
	Procesados int
	ConErrores int
}
