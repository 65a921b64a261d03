package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nuam-exchange/taxrating-backend/mocks"
	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/usecases/uploadparser"
)

func TestValidateRow(t *testing.T) {
	issuer := models.Issuer{Id: "issuer-id", Codigo: "EMI001", Activo: true}
	instrument := models.Instrument{Id: "instrument-id", Codigo: "INS001", Activo: true}

	baseFields := func() map[string]string {
		return map[string]string{
			"issuer_codigo":     "EMI001",
			"instrument_codigo": "INS001",
			"rating":            "AAA",
			"valid_from":        "2026-01-01",
		}
	}

	tests := []struct {
		name     string
		mutate   func(fields map[string]string)
		mismatch bool
		rowError string
	}{
		{
			name:   "valid row",
			mutate: func(fields map[string]string) {},
		},
		{
			name:     "column count mismatch",
			mutate:   func(fields map[string]string) {},
			mismatch: true,
			rowError: "column count mismatch",
		},
		{
			name:     "missing rating",
			mutate:   func(fields map[string]string) { fields["rating"] = "" },
			rowError: "missing field: rating",
		},
		{
			name:     "missing issuer code",
			mutate:   func(fields map[string]string) { delete(fields, "issuer_codigo") },
			rowError: "missing field: issuer_codigo",
		},
		{
			name:     "invalid rating",
			mutate:   func(fields map[string]string) { fields["rating"] = "SUPER" },
			rowError: "invalid value for rating: SUPER",
		},
		{
			name:     "invalid status",
			mutate:   func(fields map[string]string) { fields["status"] = "ACTIVO" },
			rowError: "invalid value for status: ACTIVO",
		},
		{
			name:     "invalid risk level",
			mutate:   func(fields map[string]string) { fields["risk_level"] = "EXTREMO" },
			rowError: "invalid value for risk_level: EXTREMO",
		},
		{
			name:     "unknown issuer",
			mutate:   func(fields map[string]string) { fields["issuer_codigo"] = "EMI999" },
			rowError: "unknown issuer code: EMI999",
		},
		{
			name:     "unknown instrument",
			mutate:   func(fields map[string]string) { fields["instrument_codigo"] = "INS999" },
			rowError: "unknown instrument code: INS999",
		},
		{
			name:     "bad date format",
			mutate:   func(fields map[string]string) { fields["valid_from"] = "01/02/2026" },
			rowError: "invalid date format",
		},
		{
			name:     "valid_to before valid_from",
			mutate:   func(fields map[string]string) { fields["valid_to"] = "2025-12-31" },
			rowError: "invalid date range",
		},
		{
			name:   "valid_to equal to valid_from",
			mutate: func(fields map[string]string) { fields["valid_to"] = "2026-01-01" },
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			referenceReader := new(mocks.ReferenceDataRepository)
			referenceReader.On("GetActiveIssuerByCodigo", mock.Anything, mock.Anything, "EMI001").
				Return(&issuer, nil).Maybe()
			referenceReader.On("GetActiveIssuerByCodigo", mock.Anything, mock.Anything, "EMI999").
				Return((*models.Issuer)(nil), nil).Maybe()
			referenceReader.On("GetActiveInstrumentByCodigo", mock.Anything, mock.Anything, "INS001").
				Return(&instrument, nil).Maybe()
			referenceReader.On("GetActiveInstrumentByCodigo", mock.Anything, mock.Anything, "INS999").
				Return((*models.Instrument)(nil), nil).Maybe()
			validator := uploadRowValidator{referenceReader: referenceReader}

			fields := baseFields()
			test.mutate(fields)
			row := uploadparser.Row{Number: 1, Fields: fields, ColumnCountMismatch: test.mismatch}

			input, rowError, err := validator.validateRow(context.Background(), nil, row)

			assert.NoError(t, err)
			assert.Equal(t, test.rowError, rowError)
			if test.rowError == "" {
				assert.Equal(t, issuer.Id, input.IssuerId)
				assert.Equal(t, instrument.Id, input.InstrumentId)
				assert.Equal(t, models.RatingAAA, input.Rating)
				assert.Equal(t, models.RatingVigente, input.Status)
				assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), input.ValidFrom)
			}
		})
	}
}

func TestValidateRowNormalizesOptionalFields(t *testing.T) {
	issuer := models.Issuer{Id: "issuer-id", Codigo: "EMI001", Activo: true}
	instrument := models.Instrument{Id: "instrument-id", Codigo: "INS001", Activo: true}

	referenceReader := new(mocks.ReferenceDataRepository)
	referenceReader.On("GetActiveIssuerByCodigo", mock.Anything, mock.Anything, "EMI001").
		Return(&issuer, nil)
	referenceReader.On("GetActiveInstrumentByCodigo", mock.Anything, mock.Anything, "INS001").
		Return(&instrument, nil)
	validator := uploadRowValidator{referenceReader: referenceReader}

	row := uploadparser.Row{Number: 1, Fields: map[string]string{
		"issuer_codigo":     "EMI001",
		"instrument_codigo": "INS001",
		"rating":            "BB",
		"valid_from":        "2026-01-01",
		"valid_to":          "2026-06-30",
		"status":            "SUSPENDIDO",
		"risk_level":        "ALTO",
		"comments":          "under review",
	}}

	input, rowError, err := validator.validateRow(context.Background(), nil, row)

	assert.NoError(t, err)
	assert.Empty(t, rowError)
	assert.Equal(t, models.RatingBB, input.Rating)
	assert.Equal(t, models.RatingSuspendido, input.Status)
	assert.Equal(t, "ALTO", input.RiskLevel.String)
	assert.True(t, input.ValidTo.Valid)
	assert.Equal(t, "under review", input.Comments)
}
