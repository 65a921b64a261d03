package models

import "slices"

type Role int

const (
	NO_ROLE Role = iota
	AUDITOR
	ANALISTA
	ADMIN
	API_CLIENT
)

func (r Role) String() string {
	switch r {
	case NO_ROLE:
		return "NO_ROLE"
	case AUDITOR:
		return "AUDITOR"
	case ANALISTA:
		return "ANALISTA"
	case ADMIN:
		return "ADMIN"
	case API_CLIENT:
		return "API_CLIENT"
	default:
		return "UNKNOWN_ROLE"
	}
}

func RoleFromString(s string) Role {
	switch s {
	case "AUDITOR":
		return AUDITOR
	case "ANALISTA":
		return ANALISTA
	case "ADMIN":
		return ADMIN
	case "API_CLIENT":
		return API_CLIENT
	}
	return NO_ROLE
}

func (r Role) Permissions() []Permission {
	permissions := ROLES_PERMISSIONS[r]
	if permissions == nil {
		return []Permission{}
	}
	return permissions
}

func (r Role) HasPermission(permission Permission) bool {
	return slices.Contains(r.Permissions(), permission)
}
