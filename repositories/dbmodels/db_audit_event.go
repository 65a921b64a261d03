package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/nuam-exchange/taxrating-backend/models"
	"github.com/nuam-exchange/taxrating-backend/pure_utils"
	"github.com/nuam-exchange/taxrating-backend/utils"
)

type DBAuditEvent struct {
	Id        string          `db:"id"`
	UserId    string          `db:"user_id"`
	Operation string          `db:"operation"`
	TableName string          `db:"table_name"`
	EntityId  string          `db:"entity_id"`
	NewData   json.RawMessage `db:"new_data"`
	CreatedAt time.Time       `db:"created_at"`
}

type DBAuditEventWithActor struct {
	DBAuditEvent

	UserFirstName *string `db:"user_first_name"`
	UserLastName  *string `db:"user_last_name"`
}

const TABLE_AUDIT_EVENTS = "audit_events"

var SelectAuditEventColumn = utils.ColumnList[DBAuditEvent]()

func AdaptAuditEvent(db DBAuditEvent) (models.AuditEvent, error) {
	return models.AuditEvent{
		Id: db.Id,
		Actor: models.AuditEventActor{
			UserId: models.UserId(db.UserId),
		},
		Operation: db.Operation,
		Table:     db.TableName,
		EntityId:  db.EntityId,
		NewData:   db.NewData,
		CreatedAt: db.CreatedAt,
	}, nil
}

func AdaptAuditEventWithActor(db DBAuditEventWithActor) (models.AuditEvent, error) {
	event, _ := AdaptAuditEvent(db.DBAuditEvent)

	firstName := pure_utils.PtrValueOrDefault(db.UserFirstName, "")
	lastName := pure_utils.PtrValueOrDefault(db.UserLastName, "")
	switch {
	case firstName != "" && lastName != "":
		event.Actor.Name = firstName + " " + lastName
	case firstName != "":
		event.Actor.Name = firstName
	default:
		event.Actor.Name = lastName
	}

	return event, nil
}
