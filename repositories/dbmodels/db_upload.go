package dbmodels

import (
	"time"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/utils"
)

type DBUpload struct {
	Id                string     `db:"id"`
	FileName          string     `db:"file_name"`
	FileKey           string     `db:"file_key"`
	ContentType       string     `db:"content_type"`
	Status            string     `db:"status"`
	TotalRows         int        `db:"total_rows"`
	RowsOk            int        `db:"rows_ok"`
	RowsError         int        `db:"rows_error"`
	CreatedBy         string     `db:"created_by"`
	CreatedAt         time.Time  `db:"created_at"`
	ProcessingStarted *time.Time `db:"processing_started"`
	ProcessingEnded   *time.Time `db:"processing_ended"`
}

const TABLE_UPLOADS = "uploads"

var SelectUploadColumn = utils.ColumnList[DBUpload]()

func AdaptUpload(db DBUpload) (models.Upload, error) {
	return models.Upload{
		Id:                db.Id,
		FileName:          db.FileName,
		FileKey:           db.FileKey,
		ContentType:       db.ContentType,
		Status:            models.UploadStatusFrom(db.Status),
		TotalRows:         db.TotalRows,
		RowsOk:            db.RowsOk,
		RowsError:         db.RowsError,
		CreatedBy:         models.UserId(db.CreatedBy),
		CreatedAt:         db.CreatedAt,
		ProcessingStarted: db.ProcessingStarted,
		ProcessingEnded:   db.ProcessingEnded,
	}, nil
}
