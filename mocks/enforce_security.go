package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/nuam-exchange/taxrating-backend/models"
)

type EnforceSecurity struct {
	mock.Mock
}

func (e *EnforceSecurity) Permission(permission models.Permission) error {
	args := e.Called(permission)
	return args.Error(0)
}

func (e *EnforceSecurity) ReadUpload(upload models.Upload) error {
	args := e.Called(upload)
	return args.Error(0)
}

func (e *EnforceSecurity) CreateUpload() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ProcessUpload(upload models.Upload) error {
	args := e.Called(upload)
	return args.Error(0)
}

func (e *EnforceSecurity) ReadTaxRating() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) CreateTaxRating() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) UpdateTaxRating(taxRating models.TaxRating) error {
	args := e.Called(taxRating)
	return args.Error(0)
}

func (e *EnforceSecurity) DeleteTaxRating(taxRating models.TaxRating) error {
	args := e.Called(taxRating)
	return args.Error(0)
}

func (e *EnforceSecurity) ReadReferenceData() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) EditReferenceData() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadAuditEvents() error {
	args := e.Called()
	return args.Error(0)
}
