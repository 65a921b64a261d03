package security

import (
	"github.com/nuam-exchange/taxrating-backend/models"
)

type EnforceSecurityBulkUpload interface {
	EnforceSecurity
	ReadUpload(upload models.Upload) error
	CreateUpload() error
	ProcessUpload(upload models.Upload) error
}

type EnforceSecurityBulkUploadImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityBulkUploadImpl) ReadUpload(upload models.Upload) error {
	return e.Permission(models.BULK_UPLOAD_READ)
}

func (e *EnforceSecurityBulkUploadImpl) CreateUpload() error {
	return e.Permission(models.BULK_UPLOAD_CREATE)
}

func (e *EnforceSecurityBulkUploadImpl) ProcessUpload(upload models.Upload) error {
	return e.Permission(models.BULK_UPLOAD_PROCESS)
}
