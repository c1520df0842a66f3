package service

import (
	"context"

	"turfbook/internal/authz"
	"turfbook/internal/repository"
)

// AuthzService resolves a user's roles and permissions. The result is
// computed once per request by the middleware and cached on the request
// context only; there is no cross-request role cache, so assignment
// changes take effect on the next request.
type AuthzService struct {
	repos *repository.Repositories
}

func NewAuthzService(repos *repository.Repositories) *AuthzService {
	return &AuthzService{repos: repos}
}

func (s *AuthzService) ResolveIdentity(ctx context.Context, userID int64) (*authz.Identity, error) {
	roles, err := s.repos.Roles.GetRoleNamesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		roles = []string{authz.DefaultRole}
	}

	permissions, err := s.repos.Roles.GetPermissionNamesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	locationIDs, err := s.repos.Roles.GetLocationIDsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &authz.Identity{
		UserID:      userID,
		Roles:       roles,
		Permissions: permissions,
		LocationIDs: locationIDs,
	}, nil
}
