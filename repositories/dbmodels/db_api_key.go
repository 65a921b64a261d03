package dbmodels

import (
	"time"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/utils"
)

type DBApiKey struct {
	Id          string     `db:"id"`
	UserId      string     `db:"user_id"`
	Description string     `db:"description"`
	Hash        []byte     `db:"hash"`
	Prefix      string     `db:"prefix"`
	Role        int        `db:"role"`
	CreatedAt   time.Time  `db:"created_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

const TABLE_API_KEYS = "api_keys"

var SelectApiKeyColumn = utils.ColumnList[DBApiKey]()

func AdaptApiKey(db DBApiKey) (models.ApiKey, error) {
	return models.ApiKey{
		Id:          db.Id,
		UserId:      models.UserId(db.UserId),
		Description: db.Description,
		Hash:        db.Hash,
		Prefix:      db.Prefix,
		Role:        models.Role(db.Role),
		CreatedAt:   db.CreatedAt,
	}, nil
}
