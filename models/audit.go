package models

import (
	"encoding/json"
	"time"
)

type AuditEvent struct {
	Id    string
	Actor AuditEventActor

	Operation string
	Table     string
	EntityId  string
	NewData   json.RawMessage

	CreatedAt time.Time
}

type AuditEventActor struct {
	UserId UserId
	Name   string
}

const (
	AuditOperationCreate  = "CREATE"
	AuditOperationUpdate  = "UPDATE"
	AuditOperationDelete  = "DELETE"
	AuditOperationUpload  = "UPLOAD"
	AuditOperationProcess = "PROCESS"
	AuditOperationReject  = "REJECT"
)

type CreateAuditEventInput struct {
	Actor     AuditEventActor
	Operation string
	Table     string
	EntityId  string
	NewData   any
}

type AuditEventFilters struct {
	From      *time.Time
	To        *time.Time
	UserId    string
	Table     string
	Operation string
	EntityId  string
}
