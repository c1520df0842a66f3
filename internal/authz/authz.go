package authz

import "context"

// DefaultRole is assumed for authenticated users with no assignments.
const DefaultRole = "customer"

const (
	RoleEmployee = "employee"
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
	RoleSubAdmin = "sub_admin"
)

const (
	PermissionManageBookings  = "manage_bookings"
	PermissionManageTurfs     = "manage_turfs"
	PermissionManageLocations = "manage_locations"
	PermissionViewReports     = "view_reports"
)

// Identity is the resolved authorization state of one request. It is
// built once by the middleware and carried on the request context so
// handlers never hit the role tables twice.
type Identity struct {
	UserID      int64
	Roles       []string
	Permissions []string
	LocationIDs []int64
}

// HasRole reports whether the identity carries the named role.
func (id *Identity) HasRole(name string) bool {
	for _, r := range id.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// HasPermission reports whether any of the identity's roles grants the
// named permission.
func (id *Identity) HasPermission(name string) bool {
	for _, p := range id.Permissions {
		if p == name {
			return true
		}
	}
	return false
}

// IsAdminOrSubAdmin reports whether the user holds any elevated role.
// Elevation is defined by exclusion: any role other than employee or
// customer counts, so newly seeded admin-tier roles work without code
// changes.
func (id *Identity) IsAdminOrSubAdmin() bool {
	for _, r := range id.Roles {
		if r != RoleEmployee && r != RoleCustomer {
			return true
		}
	}
	return false
}

// IsStaff reports whether the user can act on bookings at their
// assigned locations.
func (id *Identity) IsStaff() bool {
	return id.HasPermission(PermissionManageBookings)
}

// CanAccessLocation reports whether a staff member may act on the given
// location. Admin-tier users may act everywhere.
func (id *Identity) CanAccessLocation(locationID int64) bool {
	if id.IsAdminOrSubAdmin() {
		return true
	}
	for _, lid := range id.LocationIDs {
		if lid == locationID {
			return true
		}
	}
	return false
}

type ctxKey struct{}

// NewContext returns a context carrying the resolved identity.
func NewContext(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext extracts the identity resolved by the auth middleware.
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(*Identity)
	return id, ok
}
