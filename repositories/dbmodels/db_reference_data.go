package dbmodels

import (
	"time"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/utils"
)

type DBIssuer struct {
	Id          string    `db:"id"`
	Codigo      string    `db:"codigo"`
	Nombre      string    `db:"nombre"`
	RazonSocial string    `db:"razon_social"`
	Rut         string    `db:"rut"`
	Activo      bool      `db:"activo"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

const TABLE_ISSUERS = "issuers"

var SelectIssuerColumn = utils.ColumnList[DBIssuer]()

func AdaptIssuer(db DBIssuer) (models.Issuer, error) {
	return models.Issuer{
		Id:          db.Id,
		Codigo:      db.Codigo,
		Nombre:      db.Nombre,
		RazonSocial: db.RazonSocial,
		Rut:         db.Rut,
		Activo:      db.Activo,
		CreatedAt:   db.CreatedAt,
		UpdatedAt:   db.UpdatedAt,
	}, nil
}

type DBInstrument struct {
	Id          string    `db:"id"`
	Codigo      string    `db:"codigo"`
	Nombre      string    `db:"nombre"`
	Tipo        string    `db:"tipo"`
	Descripcion string    `db:"descripcion"`
	Activo      bool      `db:"activo"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

const TABLE_INSTRUMENTS = "instruments"

var SelectInstrumentColumn = utils.ColumnList[DBInstrument]()

func AdaptInstrument(db DBInstrument) (models.Instrument, error) {
	return models.Instrument{
		Id:          db.Id,
		Codigo:      db.Codigo,
		Nombre:      db.Nombre,
		Tipo:        db.Tipo,
		Descripcion: db.Descripcion,
		Activo:      db.Activo,
		CreatedAt:   db.CreatedAt,
		UpdatedAt:   db.UpdatedAt,
	}, nil
}
