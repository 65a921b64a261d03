package security

import (
	"github.com/nuam-exchange/taxrating-backend/models"
)

type EnforceSecurityAudit interface {
	EnforceSecurity

	ReadAuditEvents() error
}

type EnforceSecurityAuditImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityAuditImpl) ReadAuditEvents() error {
	return e.Permission(models.AUDIT_READ)
}
