package dto

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"

	"github.com/nuam-exchange/taxrating-backend/models"
)

const dateLayout = "2006-01-02"

type TaxRating struct {
	Id           string      `json:"id"`
	IssuerId     string      `json:"issuer_id"`
	InstrumentId string      `json:"instrument_id"`
	Rating       string      `json:"rating"`
	ValidFrom    time.Time   `json:"valid_from"`
	ValidTo      null.Time   `json:"valid_to"`
	Status       string      `json:"status"`
	RiskLevel    null.String `json:"risk_level"`
	Comments     string      `json:"comments,omitempty"`
	CreatedBy    string      `json:"created_by"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func AdaptTaxRatingDto(rating models.TaxRating) TaxRating {
	return TaxRating{
		Id:           rating.Id,
		IssuerId:     rating.IssuerId,
		InstrumentId: rating.InstrumentId,
		Rating:       string(rating.Rating),
		ValidFrom:    rating.ValidFrom,
		ValidTo:      rating.ValidTo,
		Status:       string(rating.Status),
		RiskLevel:    rating.RiskLevel,
		Comments:     rating.Comments,
		CreatedBy:    string(rating.CreatedBy),
		CreatedAt:    rating.CreatedAt,
		UpdatedAt:    rating.UpdatedAt,
	}
}

type CreateTaxRatingBody struct {
	IssuerId     string `json:"issuer_id" binding:"required,uuid"`
	InstrumentId string `json:"instrument_id" binding:"required,uuid"`
	Rating       string `json:"rating" binding:"required"`
	ValidFrom    string `json:"valid_from" binding:"required,datetime=2006-01-02"`
	ValidTo      string `json:"valid_to" binding:"omitempty,datetime=2006-01-02"`
	Status       string `json:"status"`
	RiskLevel    string `json:"risk_level"`
	Comments     string `json:"comments"`
}

func AdaptCreateTaxRatingInput(body CreateTaxRatingBody) (models.CreateTaxRatingInput, error) {
	rating, ok := models.RatingGradeFrom(body.Rating)
	if !ok {
		return models.CreateTaxRatingInput{},
			errors.Wrapf(models.BadParameterError, "invalid value for rating: %s", body.Rating)
	}

	status := models.RatingVigente
	if body.Status != "" {
		status, ok = models.RatingStatusFrom(body.Status)
		if !ok {
			return models.CreateTaxRatingInput{},
				errors.Wrapf(models.BadParameterError, "invalid value for status: %s", body.Status)
		}
	}

	riskLevel := null.String{}
	if body.RiskLevel != "" {
		level, ok := models.RiskLevelFrom(body.RiskLevel)
		if !ok {
			return models.CreateTaxRatingInput{},
				errors.Wrapf(models.BadParameterError, "invalid value for risk_level: %s", body.RiskLevel)
		}
		riskLevel = null.StringFrom(string(level))
	}

	validFrom, err := time.Parse(dateLayout, body.ValidFrom)
	if err != nil {
		return models.CreateTaxRatingInput{},
			errors.Wrap(models.BadParameterError, "invalid date format for valid_from")
	}
	validTo := null.Time{}
	if body.ValidTo != "" {
		t, err := time.Parse(dateLayout, body.ValidTo)
		if err != nil {
			return models.CreateTaxRatingInput{},
				errors.Wrap(models.BadParameterError, "invalid date format for valid_to")
		}
		validTo = null.TimeFrom(t)
	}

	return models.CreateTaxRatingInput{
		IssuerId:     body.IssuerId,
		InstrumentId: body.InstrumentId,
		Rating:       rating,
		ValidFrom:    validFrom,
		ValidTo:      validTo,
		Status:       status,
		RiskLevel:    riskLevel,
		Comments:     body.Comments,
	}, nil
}

type UpdateTaxRatingBody struct {
	Rating    *string `json:"rating"`
	ValidFrom *string `json:"valid_from" binding:"omitempty,datetime=2006-01-02"`
	ValidTo   *string `json:"valid_to" binding:"omitempty,datetime=2006-01-02"`
	Status    *string `json:"status"`
	RiskLevel *string `json:"risk_level"`
	Comments  *string `json:"comments"`
}

func AdaptUpdateTaxRatingInput(id string, body UpdateTaxRatingBody) (models.UpdateTaxRatingInput, error) {
	input := models.UpdateTaxRatingInput{
		Id:       id,
		Comments: body.Comments,
	}

	if body.Rating != nil {
		rating, ok := models.RatingGradeFrom(*body.Rating)
		if !ok {
			return models.UpdateTaxRatingInput{},
				errors.Wrapf(models.BadParameterError, "invalid value for rating: %s", *body.Rating)
		}
		input.Rating = &rating
	}
	if body.Status != nil {
		status, ok := models.RatingStatusFrom(*body.Status)
		if !ok {
			return models.UpdateTaxRatingInput{},
				errors.Wrapf(models.BadParameterError, "invalid value for status: %s", *body.Status)
		}
		input.Status = &status
	}
	if body.RiskLevel != nil {
		level, ok := models.RiskLevelFrom(*body.RiskLevel)
		if !ok {
			return models.UpdateTaxRatingInput{},
				errors.Wrapf(models.BadParameterError, "invalid value for risk_level: %s", *body.RiskLevel)
		}
		input.RiskLevel = null.StringFrom(string(level))
	}
	if body.ValidFrom != nil {
		validFrom, err := time.Parse(dateLayout, *body.ValidFrom)
		if err != nil {
			return models.UpdateTaxRatingInput{},
				errors.Wrap(models.BadParameterError, "invalid date format for valid_from")
		}
		input.ValidFrom = &validFrom
	}
	if body.ValidTo != nil {
		validTo, err := time.Parse(dateLayout, *body.ValidTo)
		if err != nil {
			return models.UpdateTaxRatingInput{},
				errors.Wrap(models.BadParameterError, "invalid date format for valid_to")
		}
		input.ValidTo = null.TimeFrom(validTo)
	}

	return input, nil
}
