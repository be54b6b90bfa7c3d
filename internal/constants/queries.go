package constants

const (
	// SelectRoutesWithDriver is completed by the route predicate (WHERE) and
	// OrderRoutesByID.
	SelectRoutesWithDriver = `
	SELECT
		r.id, r.driver_id, r.origin, r.destination, r.distance, r.estimated_duration,
		r.start_datetime, r.end_datetime, r.route_status, r.created_at,
		d.name AS driver_name, d.email AS driver_email, d.phone AS driver_phone,
		d.license_number AS driver_license_number, d.vehicle_make AS driver_vehicle_make,
		d.vehicle_model AS driver_vehicle_model,
		d.vehicle_license_plate AS driver_vehicle_license_plate,
		d.availability_status AS driver_availability_status,
		d.created_at AS driver_created_at
	FROM routes r
	INNER JOIN drivers d ON d.id = r.driver_id
	`

	OrderRoutesByID = ` ORDER BY r.id ASC`

	RouteTableAlias = "r"
)
