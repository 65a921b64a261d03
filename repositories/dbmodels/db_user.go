package dbmodels

import (
	"time"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/utils"

	"github.com/jackc/pgx/v5/pgtype"
)

type DBUser struct {
	Id           string      `db:"id"`
	Email        string      `db:"email"`
	FirstName    pgtype.Text `db:"first_name"`
	LastName     pgtype.Text `db:"last_name"`
	Role         int         `db:"role"`
	CreatedAt    time.Time   `db:"created_at"`
	DeletedAt    *time.Time  `db:"deleted_at"`
}

const TABLE_USERS = "users"

var SelectUserColumn = utils.ColumnList[DBUser]()

func AdaptUser(db DBUser) (models.User, error) {
	var firstName, lastName string
	if db.FirstName.Valid {
		firstName = db.FirstName.String
	}
	if db.LastName.Valid {
		lastName = db.LastName.String
	}
	return models.User{
		UserId:    models.UserId(db.Id),
		Email:     db.Email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      models.Role(db.Role),
		CreatedAt: db.CreatedAt,
	}, nil
}
