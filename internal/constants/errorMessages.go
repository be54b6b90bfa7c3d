package constants

const (
	MsgInternalError      = "Internal server error"
	MsgUserNotFound       = "User with id %d not found"
	MsgDriverNotFound     = "Driver with id %d not found"
	MsgRouteNotFound      = "Route with id %d not found"
	MsgDriverNotAvailable = "Driver with id %d is not available"
	MsgDriverHasRoutes    = "Cannot delete driver with id %d because they have associated routes"
	MsgRouteNotDeletable  = "Cannot delete route with status '%s'. Only pending and cancelled routes can be deleted."
	MsgReportDateRange    = "start_date must not be after end_date"
)

const (
	MsgUserCreated     = "User created"
	MsgUsersFetched    = "Users fetched"
	MsgUserFetched     = "User fetched"
	MsgUserUpdated     = "User updated"
	MsgUserDeleted     = "User deleted"
	MsgDriverCreated   = "Driver created"
	MsgDriversFetched  = "Drivers fetched"
	MsgDriverFetched   = "Driver fetched"
	MsgDriverUpdated   = "Driver updated"
	MsgDriverDeleted   = "Driver deleted"
	MsgRouteCreated    = "Route created"
	MsgRoutesFetched   = "Routes fetched"
	MsgRouteFetched    = "Route fetched"
	MsgRouteUpdated    = "Route updated"
	MsgRouteDeleted    = "Route deleted"
	MsgReportGenerated = "Route report generated"
)
