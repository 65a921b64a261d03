package repositories

import (
	"context"
	"encoding/json"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

func (repo *TaxRatingDbRepository) CreateAuditEvent(
	ctx context.Context,
	exec Executor,
	input models.CreateAuditEventInput,
) error {
	if err := validateDbExecutor(exec); err != nil {
		return err
	}

	newData, err := json.Marshal(input.NewData)
	if err != nil {
		return errors.Wrap(err, "can't marshal audit event data")
	}

	_, err = ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_AUDIT_EVENTS).
			Columns("id", "user_id", "operation", "table_name", "entity_id", "new_data").
			Values(
				uuid.NewString(),
				input.Actor.UserId,
				input.Operation,
				input.Table,
				input.EntityId,
				newData,
			),
	)
	return err
}

func (repo *TaxRatingDbRepository) ListAuditEvents(
	ctx context.Context,
	exec Executor,
	filters models.AuditEventFilters,
	pagination models.Pagination,
) (models.Paged[models.AuditEvent], error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.Paged[models.AuditEvent]{}, err
	}

	applyFilters := func(query squirrel.SelectBuilder) squirrel.SelectBuilder {
		if filters.From != nil {
			query = query.Where(squirrel.GtOrEq{"e.created_at": *filters.From})
		}
		if filters.To != nil {
			query = query.Where(squirrel.LtOrEq{"e.created_at": *filters.To})
		}
		if filters.UserId != "" {
			query = query.Where(squirrel.Eq{"e.user_id": filters.UserId})
		}
		if filters.Table != "" {
			query = query.Where(squirrel.Eq{"e.table_name": filters.Table})
		}
		if filters.Operation != "" {
			query = query.Where(squirrel.Eq{"e.operation": filters.Operation})
		}
		if filters.EntityId != "" {
			query = query.Where(squirrel.Eq{"e.entity_id": filters.EntityId})
		}
		return query
	}

	columns := make([]string, 0, len(dbmodels.SelectAuditEventColumn)+2)
	for _, col := range dbmodels.SelectAuditEventColumn {
		columns = append(columns, "e."+col)
	}
	columns = append(columns, "u.first_name AS user_first_name", "u.last_name AS user_last_name")

	query := applyFilters(
		NewQueryBuilder().
			Select(columns...).
			From(dbmodels.TABLE_AUDIT_EVENTS+" AS e").
			LeftJoin(dbmodels.TABLE_USERS+" AS u ON u.id = e.user_id").
			OrderBy("e.created_at "+string(pagination.Order)).
			Limit(uint64(pagination.PageSize)).
			Offset(uint64(pagination.Offset())),
	)

	countQuery := applyFilters(
		NewQueryBuilder().
			Select("COUNT(*)").
			From(dbmodels.TABLE_AUDIT_EVENTS + " AS e"),
	)

	events, err := SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAuditEventWithActor)
	if err != nil {
		return models.Paged[models.AuditEvent]{}, err
	}

	total, err := SqlToRowCount(ctx, exec, countQuery)
	if err != nil {
		return models.Paged[models.AuditEvent]{}, err
	}

	return models.Paged[models.AuditEvent]{Items: events, Total: total}, nil
}
