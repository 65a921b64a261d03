package security

import (
	"github.com/nuam-exchange/taxrating-backend/models"
)

type EnforceSecurityTaxRating interface {
	EnforceSecurity
	ReadTaxRating() error
	CreateTaxRating() error
	UpdateTaxRating(taxRating models.TaxRating) error
	DeleteTaxRating(taxRating models.TaxRating) error
}

type EnforceSecurityTaxRatingImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityTaxRatingImpl) ReadTaxRating() error {
	return e.Permission(models.TAX_RATING_READ)
}

func (e *EnforceSecurityTaxRatingImpl) CreateTaxRating() error {
	return e.Permission(models.TAX_RATING_CREATE)
}

func (e *EnforceSecurityTaxRatingImpl) UpdateTaxRating(taxRating models.TaxRating) error {
	return e.Permission(models.TAX_RATING_UPDATE)
}

func (e *EnforceSecurityTaxRatingImpl) DeleteTaxRating(taxRating models.TaxRating) error {
	return e.Permission(models.TAX_RATING_DELETE)
}
