package repositories

import (
	"strings"

	"fleet-management/fleetboard/internal/models/entities"

	"gorm.io/gorm"
)

type predicateClause struct {
	column string
	op     string
	arg    interface{}
}

// RoutePredicate is a conjunction of comparisons on route columns. The same
// predicate drives the sqlx joined reads and GORM queries.
type RoutePredicate struct {
	clauses []predicateClause
}

// ComposeRouteFilter emits one clause per provided filter field, in the
// order driver, start date, end date, status. Dates bound the route's
// start_datetime on both sides.
func ComposeRouteFilter(f entities.RouteReportFilter) RoutePredicate {
	var p RoutePredicate
	if f.DriverID != nil {
		p = p.and("driver_id", "=", idArg(*f.DriverID))
	}
	if f.StartDate != nil {
		p = p.and("start_datetime", ">=", f.StartDate.UTC())
	}
	if f.EndDate != nil {
		p = p.and("start_datetime", "<=", f.EndDate.UTC())
	}
	if f.RouteStatus != nil {
		p = p.and("route_status", "=", *f.RouteStatus)
	}
	return p
}

// RouteByID selects a single route.
func RouteByID(id uint) RoutePredicate {
	return RoutePredicate{}.and("id", "=", idArg(id))
}

func (p RoutePredicate) and(column, op string, arg interface{}) RoutePredicate {
	clauses := make([]predicateClause, len(p.clauses), len(p.clauses)+1)
	copy(clauses, p.clauses)
	return RoutePredicate{clauses: append(clauses, predicateClause{column: column, op: op, arg: arg})}
}

func (p RoutePredicate) IsEmpty() bool { return len(p.clauses) == 0 }

func (p RoutePredicate) Len() int { return len(p.clauses) }

// SQL renders the conjunction with '?' placeholders. Columns are prefixed
// with qualifier when it is not empty. An empty predicate renders "".
func (p RoutePredicate) SQL(qualifier string) (string, []interface{}) {
	if p.IsEmpty() {
		return "", nil
	}

	parts := make([]string, 0, len(p.clauses))
	args := make([]interface{}, 0, len(p.clauses))
	for _, c := range p.clauses {
		parts = append(parts, qualify(qualifier, c.column)+" "+c.op+" ?")
		args = append(args, c.arg)
	}
	return strings.Join(parts, " AND "), args
}

// Apply adds the clauses to a GORM query.
func (p RoutePredicate) Apply(tx *gorm.DB, qualifier string) *gorm.DB {
	for _, c := range p.clauses {
		tx = tx.Where(qualify(qualifier, c.column)+" "+c.op+" ?", c.arg)
	}
	return tx
}

func qualify(qualifier, column string) string {
	if qualifier == "" {
		return column
	}
	return qualifier + "." + column
}
