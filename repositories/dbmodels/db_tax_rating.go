package dbmodels

import (
	"time"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/utils"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
)

type DBTaxRating struct {
	Id           string      `db:"id"`
	IssuerId     string      `db:"issuer_id"`
	InstrumentId string      `db:"instrument_id"`
	Rating       string      `db:"rating"`
	ValidFrom    time.Time   `db:"valid_from"`
	ValidTo      null.Time   `db:"valid_to"`
	Status       string      `db:"status"`
	RiskLevel    null.String `db:"risk_level"`
	Comments     string      `db:"comments"`
	CreatedBy    string      `db:"created_by"`
	CreatedAt    time.Time   `db:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at"`
}

const TABLE_TAX_RATINGS = "tax_ratings"

var SelectTaxRatingColumn = utils.ColumnList[DBTaxRating]()

func AdaptTaxRating(db DBTaxRating) (models.TaxRating, error) {
	rating, ok := models.RatingGradeFrom(db.Rating)
	if !ok {
		return models.TaxRating{}, errors.Newf("unknown rating grade %q", db.Rating)
	}
	status, ok := models.RatingStatusFrom(db.Status)
	if !ok {
		return models.TaxRating{}, errors.Newf("unknown rating status %q", db.Status)
	}

	return models.TaxRating{
		Id:           db.Id,
		IssuerId:     db.IssuerId,
		InstrumentId: db.InstrumentId,
		Rating:       rating,
		ValidFrom:    db.ValidFrom,
		ValidTo:      db.ValidTo,
		Status:       status,
		RiskLevel:    db.RiskLevel,
		Comments:     db.Comments,
		CreatedBy:    models.UserId(db.CreatedBy),
		CreatedAt:    db.CreatedAt,
		UpdatedAt:    db.UpdatedAt,
	}, nil
}
