package dto

import (
	"time"

	"github.com/nuam-exchange/taxrating-backend/models"
)

type Issuer struct {
	Id          string    `json:"id"`
	Codigo      string    `json:"codigo"`
	Nombre      string    `json:"nombre"`
	RazonSocial string    `json:"razon_social,omitempty"`
	Rut         string    `json:"rut,omitempty"`
	Activo      bool      `json:"activo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func AdaptIssuerDto(issuer models.Issuer) Issuer {
	return Issuer{
		Id:          issuer.Id,
		Codigo:      issuer.Codigo,
		Nombre:      issuer.Nombre,
		RazonSocial: issuer.RazonSocial,
		Rut:         issuer.Rut,
		Activo:      issuer.Activo,
		CreatedAt:   issuer.CreatedAt,
		UpdatedAt:   issuer.UpdatedAt,
	}
}

type CreateIssuerBody struct {
	Codigo      string `json:"codigo" binding:"required"`
	Nombre      string `json:"nombre" binding:"required"`
	RazonSocial string `json:"razon_social"`
	Rut         string `json:"rut"`
}

func AdaptCreateIssuerInput(body CreateIssuerBody) models.CreateIssuerInput {
	return models.CreateIssuerInput{
		Codigo:      body.Codigo,
		Nombre:      body.Nombre,
		RazonSocial: body.RazonSocial,
		Rut:         body.Rut,
	}
}

type UpdateIssuerBody struct {
	Nombre      *string `json:"nombre"`
	RazonSocial *string `json:"razon_social"`
	Rut         *string `json:"rut"`
	Activo      *bool   `json:"activo"`
}

func AdaptUpdateIssuerInput(id string, body UpdateIssuerBody) models.UpdateIssuerInput {
	return models.UpdateIssuerInput{
		Id:          id,
		Nombre:      body.Nombre,
		RazonSocial: body.RazonSocial,
		Rut:         body.Rut,
		Activo:      body.Activo,
	}
}

type Instrument struct {
	Id          string    `json:"id"`
	Codigo      string    `json:"codigo"`
	Nombre      string    `json:"nombre"`
	Tipo        string    `json:"tipo,omitempty"`
	Descripcion string    `json:"descripcion,omitempty"`
	Activo      bool      `json:"activo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func AdaptInstrumentDto(instrument models.Instrument) Instrument {
	return Instrument{
		Id:          instrument.Id,
		Codigo:      instrument.Codigo,
		Nombre:      instrument.Nombre,
		Tipo:        instrument.Tipo,
		Descripcion: instrument.Descripcion,
		Activo:      instrument.Activo,
		CreatedAt:   instrument.CreatedAt,
		UpdatedAt:   instrument.UpdatedAt,
	}
}

type CreateInstrumentBody struct {
	Codigo      string `json:"codigo" binding:"required"`
	Nombre      string `json:"nombre" binding:"required"`
	Tipo        string `json:"tipo"`
	Descripcion string `json:"descripcion"`
}

func AdaptCreateInstrumentInput(body CreateInstrumentBody) models.CreateInstrumentInput {
	return models.CreateInstrumentInput{
		Codigo:      body.Codigo,
		Nombre:      body.Nombre,
		Tipo:        body.Tipo,
		Descripcion: body.Descripcion,
	}
}

type UpdateInstrumentBody struct {
	Nombre      *string `json:"nombre"`
	Tipo        *string `json:"tipo"`
	Descripcion *string `json:"descripcion"`
	Activo      *bool   `json:"activo"`
}

func AdaptUpdateInstrumentInput(id string, body UpdateInstrumentBody) models.UpdateInstrumentInput {
	return models.UpdateInstrumentInput{
		Id:          id,
		Nombre:      body.Nombre,
		Tipo:        body.Tipo,
		Descripcion: body.Descripcion,
		Activo:      body.Activo,
	}
}
