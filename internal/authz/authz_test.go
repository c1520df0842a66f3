package authz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdminOrSubAdmin(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  bool
	}{
		{"admin", []string{"admin"}, true},
		{"sub admin", []string{"sub_admin"}, true},
		{"custom elevated role", []string{"regional_manager"}, true},
		{"employee only", []string{"employee"}, false},
		{"customer only", []string{"customer"}, false},
		{"employee and customer", []string{"employee", "customer"}, false},
		{"employee plus admin", []string{"employee", "admin"}, true},
		{"no roles", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := &Identity{Roles: tt.roles}
			assert.Equal(t, tt.want, id.IsAdminOrSubAdmin())
		})
	}
}

func TestIsStaff(t *testing.T) {
	staff := &Identity{Permissions: []string{PermissionManageBookings}}
	assert.True(t, staff.IsStaff())

	customer := &Identity{Permissions: []string{"view_own_bookings"}}
	assert.False(t, customer.IsStaff())
}

func TestCanAccessLocation(t *testing.T) {
	staff := &Identity{
		Roles:       []string{RoleEmployee},
		LocationIDs: []int64{3, 7},
	}
	assert.True(t, staff.CanAccessLocation(7))
	assert.False(t, staff.CanAccessLocation(9))

	admin := &Identity{Roles: []string{RoleAdmin}}
	assert.True(t, admin.CanAccessLocation(9))
}

func TestContextRoundTrip(t *testing.T) {
	id := &Identity{UserID: 42, Roles: []string{RoleCustomer}}

	ctx := NewContext(context.Background(), id)
	got, ok := FromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, int64(42), got.UserID)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}
