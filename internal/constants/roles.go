package constants

// AccessRole is carried in bearer tokens when API auth is enabled.
type AccessRole string

const (
	RoleViewer     AccessRole = "viewer"
	RoleDispatcher AccessRole = "dispatcher"
)

// Stringer ­– convenient for fmt / logs
func (r AccessRole) String() string { return string(r) }

func (r AccessRole) IsValid() bool {
	return r == RoleViewer || r == RoleDispatcher
}

// CanWrite reports whether the role may call mutating endpoints.
func (r AccessRole) CanWrite() bool {
	return r == RoleDispatcher
}
