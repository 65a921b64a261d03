package dto

import (
	"encoding/json"
	"time"

	"github.com/nuam-exchange/taxrating-backend/models"
)

type AuditEventFilters struct {
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        *time.Time `form:"to" time_format:"2006-01-02"`
	UserId    string     `form:"user_id" binding:"omitempty,uuid"`
	Table     string     `form:"table"`
	Operation string     `form:"operation"`
	EntityId  string     `form:"entity_id"`
}

func AdaptAuditEventFilters(filters AuditEventFilters) models.AuditEventFilters {
	return models.AuditEventFilters{
		From:      filters.From,
		To:        filters.To,
		UserId:    filters.UserId,
		Table:     filters.Table,
		Operation: filters.Operation,
		EntityId:  filters.EntityId,
	}
}

type AuditEvent struct {
	Id    string          `json:"id"`
	Actor AuditEventActor `json:"actor"`

	Operation string          `json:"operation"`
	Table     string          `json:"table"`
	EntityId  string          `json:"entity_id"`
	NewData   json.RawMessage `json:"new_data"`

	CreatedAt time.Time `json:"created_at"`
}

type AuditEventActor struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

func AdaptAuditEventDto(event models.AuditEvent) AuditEvent {
	return AuditEvent{
		Id: event.Id,
		Actor: AuditEventActor{
			Id:   string(event.Actor.UserId),
			Name: event.Actor.Name,
		},
		Operation: event.Operation,
		Table:     event.Table,
		EntityId:  event.EntityId,
		NewData:   event.NewData,
		CreatedAt: event.CreatedAt,
	}
}
