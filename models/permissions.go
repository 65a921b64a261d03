package models

type Permission int

const (
	TAX_RATING_READ Permission = iota
	TAX_RATING_CREATE
	TAX_RATING_UPDATE
	TAX_RATING_DELETE
	REFERENCE_DATA_READ
	REFERENCE_DATA_EDIT
	BULK_UPLOAD_READ
	BULK_UPLOAD_CREATE
	BULK_UPLOAD_PROCESS
	AUDIT_READ
)

var readOnlyPermissions = []Permission{
	TAX_RATING_READ,
	REFERENCE_DATA_READ,
	BULK_UPLOAD_READ,
	AUDIT_READ,
}

var analystPermissions = append([]Permission{
	TAX_RATING_CREATE,
	TAX_RATING_UPDATE,
	TAX_RATING_DELETE,
	BULK_UPLOAD_CREATE,
	BULK_UPLOAD_PROCESS,
}, readOnlyPermissions...)

var adminPermissions = append([]Permission{
	REFERENCE_DATA_EDIT,
}, analystPermissions...)

var ROLES_PERMISSIONS = map[Role][]Permission{
	AUDITOR:    readOnlyPermissions,
	ANALISTA:   analystPermissions,
	ADMIN:      adminPermissions,
	API_CLIENT: analystPermissions,
}
