package security

import (
	"github.com/nuam-exchange/taxrating-backend/models"
)

type EnforceSecurityReferenceData interface {
	EnforceSecurity
	ReadReferenceData() error
	EditReferenceData() error
}

type EnforceSecurityReferenceDataImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityReferenceDataImpl) ReadReferenceData() error {
	return e.Permission(models.REFERENCE_DATA_READ)
}

func (e *EnforceSecurityReferenceDataImpl) EditReferenceData() error {
	return e.Permission(models.REFERENCE_DATA_EDIT)
}
