package dto

import (
	"time"

	"github.com/nuam-exchange/taxrating-backend/models"
)

type APIUpload struct {
	Id                string     `json:"id"`
	FileName          string     `json:"file_name"`
	ContentType       string     `json:"content_type"`
	Status            string     `json:"status"`
	TotalRows         int        `json:"total_rows"`
	RowsOk            int        `json:"rows_ok"`
	RowsError         int        `json:"rows_error"`
	SuccessPercentage float64    `json:"success_percentage"`
	CreatedBy         string     `json:"created_by"`
	CreatedAt         time.Time  `json:"created_at"`
	ProcessingStarted *time.Time `json:"processing_started,omitempty"`
	ProcessingEnded   *time.Time `json:"processing_ended,omitempty"`
}

func AdaptUploadDto(upload models.Upload) APIUpload {
	return APIUpload{
		Id:                upload.Id,
		FileName:          upload.FileName,
		ContentType:       upload.ContentType,
		Status:            string(upload.Status),
		TotalRows:         upload.TotalRows,
		RowsOk:            upload.RowsOk,
		RowsError:         upload.RowsError,
		SuccessPercentage: upload.SuccessPercentage(),
		CreatedBy:         string(upload.CreatedBy),
		CreatedAt:         upload.CreatedAt,
		ProcessingStarted: upload.ProcessingStarted,
		ProcessingEnded:   upload.ProcessingEnded,
	}
}

type APIUploadItem struct {
	Id           string            `json:"id"`
	UploadId     string            `json:"upload_id"`
	RowNumber    int               `json:"row_number"`
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
	RawData      map[string]string `json:"raw_data"`
	CreatedAt    time.Time         `json:"created_at"`
}

func AdaptUploadItemDto(item models.UploadItem) APIUploadItem {
	return APIUploadItem{
		Id:           item.Id,
		UploadId:     item.UploadId,
		RowNumber:    item.RowNumber,
		Status:       string(item.Status),
		ErrorMessage: item.ErrorMessage,
		RawData:      item.RawData,
		CreatedAt:    item.CreatedAt,
	}
}

type APIUploadSummary struct {
	Total      int `json:"total"`
	Pendientes int `json:"pendientes"`
	Procesados int `json:"procesados"`
	ConErrores int `json:"con_errores"`
}

func AdaptUploadSummaryDto(summary models.UploadSummary) APIUploadSummary {
	return APIUploadSummary{
		Total:      summary.Total,
		Pendientes: summary.Pendientes,
		Procesados: summary.Procesados,
		ConErrores: summary.ConErrores,
	}
}
