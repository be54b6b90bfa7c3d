package constants

type (
	APIStatus string
	Entity    string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	EntityUser   Entity = "user"
	EntityDriver Entity = "driver"
	EntityRoute  Entity = "route"
	EntityReport Entity = "report"
)
