package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/repositories"
	"github.com/nuam-exchange/taxrating-backend/usecases/uploadparser"

	"github.com/guregu/null/v5"
)

const uploadDateLayout = "2006-01-02"

var uploadRequiredFields = []string{
	"issuer_codigo",
	"instrument_codigo",
	"rating",
	"valid_from",
}

type uploadRowReferenceReader interface {
	GetActiveIssuerByCodigo(ctx context.Context, exec repositories.Executor, codigo string) (*models.Issuer, error)
	GetActiveInstrumentByCodigo(ctx context.Context, exec repositories.Executor, codigo string) (*models.Instrument, error)
}

type uploadRowValidator struct {
	referenceReader uploadRowReferenceReader
}

// validateRow checks one parsed row and either returns the normalized
// rating-creation input, or a row error message. The first failing check
// wins; a row error never becomes a Go error, only reference lookups can
// fail that way.
func (v uploadRowValidator) validateRow(
	ctx context.Context,
	exec repositories.Executor,
	row uploadparser.Row,
) (models.CreateTaxRatingInput, string, error) {
	if row.ColumnCountMismatch {
		return models.CreateTaxRatingInput{}, "column count mismatch", nil
	}

	for _, name := range uploadRequiredFields {
		if row.Fields[name] == "" {
			return models.CreateTaxRatingInput{}, fmt.Sprintf("missing field: %s", name), nil
		}
	}

	rating, ok := models.RatingGradeFrom(row.Fields["rating"])
	if !ok {
		return models.CreateTaxRatingInput{},
			fmt.Sprintf("invalid value for rating: %s", row.Fields["rating"]), nil
	}

	status := models.RatingVigente
	if raw := row.Fields["status"]; raw != "" {
		status, ok = models.RatingStatusFrom(raw)
		if !ok {
			return models.CreateTaxRatingInput{},
				fmt.Sprintf("invalid value for status: %s", raw), nil
		}
	}

	riskLevel := null.String{}
	if raw := row.Fields["risk_level"]; raw != "" {
		level, ok := models.RiskLevelFrom(raw)
		if !ok {
			return models.CreateTaxRatingInput{},
				fmt.Sprintf("invalid value for risk_level: %s", raw), nil
		}
		riskLevel = null.StringFrom(string(level))
	}

	issuer, err := v.referenceReader.GetActiveIssuerByCodigo(ctx, exec, row.Fields["issuer_codigo"])
	if err != nil {
		return models.CreateTaxRatingInput{}, "", err
	}
	if issuer == nil {
		return models.CreateTaxRatingInput{},
			fmt.Sprintf("unknown issuer code: %s", row.Fields["issuer_codigo"]), nil
	}

	instrument, err := v.referenceReader.GetActiveInstrumentByCodigo(ctx, exec, row.Fields["instrument_codigo"])
	if err != nil {
		return models.CreateTaxRatingInput{}, "", err
	}
	if instrument == nil {
		return models.CreateTaxRatingInput{},
			fmt.Sprintf("unknown instrument code: %s", row.Fields["instrument_codigo"]), nil
	}

	validFrom, err := time.Parse(uploadDateLayout, row.Fields["valid_from"])
	if err != nil {
		return models.CreateTaxRatingInput{}, "invalid date format", nil
	}

	validTo := null.Time{}
	if raw := row.Fields["valid_to"]; raw != "" {
		parsed, err := time.Parse(uploadDateLayout, raw)
		if err != nil {
			return models.CreateTaxRatingInput{}, "invalid date format", nil
		}
		if parsed.Before(validFrom) {
			return models.CreateTaxRatingInput{}, "invalid date range", nil
		}
		validTo = null.TimeFrom(parsed)
	}

	return models.CreateTaxRatingInput{
		IssuerId:     issuer.Id,
		InstrumentId: instrument.Id,
		Rating:       rating,
		ValidFrom:    validFrom,
		ValidTo:      validTo,
		Status:       status,
		RiskLevel:    riskLevel,
		Comments:     row.Fields["comments"],
	}, "", nil
}
