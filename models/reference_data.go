package models

import "time"

// Issuer and Instrument are the reference entities bulk upload rows are
// resolved against. Rows reference them by codigo, not by internal id.

type Issuer struct {
	Id          string
	Codigo      string
	Nombre      string
	RazonSocial string
	Rut         string
	Activo      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Instrument struct {
	Id          string
	Codigo      string
	Nombre      string
	Tipo        string
	Descripcion string
	Activo      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateIssuerInput struct {
	Codigo      string
	Nombre      string
	RazonSocial string
	Rut         string
}

type UpdateIssuerInput struct {
	Id          string
	Nombre      *string
	RazonSocial *string
	Rut         *string
	Activo      *bool
}

type CreateInstrumentInput struct {
	Codigo      string
	Nombre      string
	Tipo        string
	Descripcion string
}

type UpdateInstrumentInput struct {
	Id          string
	Nombre      *string
	Tipo        *string
	Descripcion *string
	Activo      *bool
}
