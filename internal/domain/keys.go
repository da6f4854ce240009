package domain

type CtxKey string

const (
	KeyOrganizationID CtxKey = "OrganizationID"
	KeyRequestID      CtxKey = "RequestID"
)
