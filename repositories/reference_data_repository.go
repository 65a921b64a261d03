package repositories

import (
	"context"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
)

func (repo *TaxRatingDbRepository) CreateIssuer(
	ctx context.Context,
	exec Executor,
	input models.CreateIssuerInput,
	newIssuerId string,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_ISSUERS).
			Columns("id", "codigo", "nombre", "razon_social", "rut", "activo").
			Values(newIssuerId, input.Codigo, input.Nombre, input.RazonSocial, input.Rut, true),
	)
	return err
}

func (repo *TaxRatingDbRepository) GetIssuerById(ctx context.Context, exec Executor, id string) (models.Issuer, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.Issuer{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectIssuerColumn...).
			From(dbmodels.TABLE_ISSUERS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptIssuer,
	)
}

// GetActiveIssuerByCodigo returns the active issuer carrying the given codigo,
// or nil when no such issuer exists. Row validation resolves codes with it.
func (repo *TaxRatingDbRepository) GetActiveIssuerByCodigo(
	ctx context.Context,
	exec Executor,
	codigo string,
) (*models.Issuer, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectIssuerColumn...).
			From(dbmodels.TABLE_ISSUERS).
			Where(squirrel.Eq{"codigo": codigo, "activo": true}),
		dbmodels.AdaptIssuer,
	)
}

func (repo *TaxRatingDbRepository) ListIssuers(
	ctx context.Context,
	exec Executor,
	activoOnly bool,
) ([]models.Issuer, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	query := NewQueryBuilder().
		Select(dbmodels.SelectIssuerColumn...).
		From(dbmodels.TABLE_ISSUERS).
		OrderBy("codigo")

	if activoOnly {
		query = query.Where(squirrel.Eq{"activo": true})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptIssuer)
}

func (repo *TaxRatingDbRepository) UpdateIssuer(ctx context.Context, exec Executor, input models.UpdateIssuerInput) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	updateRequest := NewQueryBuilder().
		Update(dbmodels.TABLE_ISSUERS).
		Set("updated_at", squirrel.Expr("NOW()"))

	if input.Nombre != nil {
		updateRequest = updateRequest.Set("nombre", *input.Nombre)
	}
	if input.RazonSocial != nil {
		updateRequest = updateRequest.Set("razon_social", *input.RazonSocial)
	}
	if input.Rut != nil {
		updateRequest = updateRequest.Set("rut", *input.Rut)
	}
	if input.Activo != nil {
		updateRequest = updateRequest.Set("activo", *input.Activo)
	}

	_, err := ExecBuilder(ctx, exec, updateRequest.Where(squirrel.Eq{"id": input.Id}))
	return err
}

func (repo *TaxRatingDbRepository) CreateInstrument(
	ctx context.Context,
	exec Executor,
	input models.CreateInstrumentInput,
	newInstrumentId string,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_INSTRUMENTS).
			Columns("id", "codigo", "nombre", "tipo", "descripcion", "activo").
			Values(newInstrumentId, input.Codigo, input.Nombre, input.Tipo, input.Descripcion, true),
	)
	return err
}

func (repo *TaxRatingDbRepository) GetInstrumentById(ctx context.Context, exec Executor, id string) (models.Instrument, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.Instrument{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectInstrumentColumn...).
			From(dbmodels.TABLE_INSTRUMENTS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptInstrument,
	)
}

func (repo *TaxRatingDbRepository) GetActiveInstrumentByCodigo(
	ctx context.Context,
	exec Executor,
	codigo string,
) (*models.Instrument, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectInstrumentColumn...).
			From(dbmodels.TABLE_INSTRUMENTS).
			Where(squirrel.Eq{"codigo": codigo, "activo": true}),
		dbmodels.AdaptInstrument,
	)
}

func (repo *TaxRatingDbRepository) ListInstruments(
	ctx context.Context,
	exec Executor,
	activoOnly bool,
) ([]models.Instrument, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	query := NewQueryBuilder().
		Select(dbmodels.SelectInstrumentColumn...).
		From(dbmodels.TABLE_INSTRUMENTS).
		OrderBy("codigo")

	if activoOnly {
		query = query.Where(squirrel.Eq{"activo": true})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptInstrument)
}

func (repo *TaxRatingDbRepository) UpdateInstrument(ctx context.Context, exec Executor, input models.UpdateInstrumentInput) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	updateRequest := NewQueryBuilder().
		Update(dbmodels.TABLE_INSTRUMENTS).
		Set("updated_at", squirrel.Expr("NOW()"))

	if input.Nombre != nil {
		updateRequest = updateRequest.Set("nombre", *input.Nombre)
	}
	if input.Tipo != nil {
		updateRequest = updateRequest.Set("tipo", *input.Tipo)
	}
	if input.Descripcion != nil {
		updateRequest = updateRequest.Set("descripcion", *input.Descripcion)
	}
	if input.Activo != nil {
		updateRequest = updateRequest.Set("activo", *input.Activo)
	}

	_, err := ExecBuilder(ctx, exec, updateRequest.Where(squirrel.Eq{"id": input.Id}))
	return err
}
