package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/utils"

	"github.com/cockroachdb/errors"
)

type DBUploadItem struct {
	Id           string          `db:"id"`
	UploadId     string          `db:"upload_id"`
	RowNumber    int             `db:"row_number"`
	Status       string          `db:"status"`
	ErrorMessage string          `db:"error_message"`
	RawData      json.RawMessage `db:"raw_data"`
	CreatedAt    time.Time       `db:"created_at"`
}

const TABLE_UPLOAD_ITEMS = "upload_items"

var SelectUploadItemColumn = utils.ColumnList[DBUploadItem]()

func AdaptUploadItem(db DBUploadItem) (models.UploadItem, error) {
	status, ok := models.UploadItemStatusFrom(db.Status)
	if !ok {
		return models.UploadItem{}, errors.Newf("unknown upload item status %q", db.Status)
	}

	var rawData map[string]string
	if len(db.RawData) > 0 {
		if err := json.Unmarshal(db.RawData, &rawData); err != nil {
			return models.UploadItem{}, errors.Wrap(err, "can't unmarshal upload item raw data")
		}
	}

	return models.UploadItem{
		Id:           db.Id,
		UploadId:     db.UploadId,
		RowNumber:    db.RowNumber,
		Status:       status,
		ErrorMessage: db.ErrorMessage,
		RawData:      rawData,
		CreatedAt:    db.CreatedAt,
	}, nil
}
