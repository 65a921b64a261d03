package usecases

import (
	"strings"

	"github.com/nuam-exchange/taxrating-backend/models"
)

func auditActorFromCredentials(creds models.Credentials) models.AuditEventActor {
	identity := creds.ActorIdentity
	name := strings.TrimSpace(identity.FirstName + " " + identity.LastName)
	if name == "" {
		name = identity.ApiKeyName
	}
	return models.AuditEventActor{
		UserId: identity.UserId,
		Name:   name,
	}
}
