package models

import "time"

type UploadItem struct {
	Id           string
	UploadId     string
	RowNumber    int // 1-based over data rows, header excluded
	Status       UploadItemStatus
	ErrorMessage string // set iff status is ERROR
	RawData      map[string]string
	CreatedAt    time.Time
}

type UploadItemStatus string

const (
	UploadItemSuccess UploadItemStatus = "SUCCESS"
	UploadItemError   UploadItemStatus = "ERROR"
)

func UploadItemStatusFrom(s string) (UploadItemStatus, bool) {
	switch s {
	case "SUCCESS":
		return UploadItemSuccess, true
	case "ERROR":
		return UploadItemError, true
	}
	return "", false
}

type CreateUploadItemInput struct {
	UploadId     string
	RowNumber    int
	Status       UploadItemStatus
	ErrorMessage string
	RawData      map[string]string
}
