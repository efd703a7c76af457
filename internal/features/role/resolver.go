package role

import (
	"go-reporthub/internal/features/user"
)

// Permission resolution walks an ordered chain of strategies and the
// first one that has an opinion wins:
//
//	1. the user's explicit page_permissions override
//	2. the role table entry for the user's role
//	3. the built-in default table for well-known role names
//	4. dashboard-only for anything else
//
// Each strategy is a pure function of the user and a role snapshot, so
// precedence is explicit and each layer is testable on its own.
type ResolutionStrategy func(u *user.User, roles map[string]Role) []PageToken

var defaultPermissionTable = map[string][]PageToken{
	RoleAdmin:        {TokenDashboard, TokenUsers, TokenRoles, TokenLocations, TokenTemplates, TokenReports, TokenSubmit, TokenStatistics},
	RoleManager:      {TokenDashboard, TokenSubmit, TokenReports},
	RoleDataEntry:    {TokenDashboard, TokenSubmit},
	RoleStatistician: {TokenDashboard, TokenStatistics, TokenReports},
}

func overridePermissions(u *user.User, _ map[string]Role) []PageToken {
	if len(u.PagePermissions) == 0 {
		return nil
	}
	tokens := make([]PageToken, len(u.PagePermissions))
	copy(tokens, u.PagePermissions)
	return tokens
}

func rolePermissions(u *user.User, roles map[string]Role) []PageToken {
	r, ok := roles[u.Role]
	if !ok {
		return nil
	}
	tokens := make([]PageToken, len(r.Permissions))
	copy(tokens, r.Permissions)
	return tokens
}

func defaultPermissions(u *user.User, _ map[string]Role) []PageToken {
	if perms, ok := defaultPermissionTable[u.Role]; ok {
		tokens := make([]PageToken, len(perms))
		copy(tokens, perms)
		return tokens
	}
	return nil
}

var resolutionChain = []ResolutionStrategy{
	overridePermissions,
	rolePermissions,
	defaultPermissions,
}

// Resolve returns the effective permission set for a user given a role
// snapshot keyed by role name. Never returns an empty result: unknown
// roles fall through to dashboard-only.
func Resolve(u *user.User, roles map[string]Role) []PageToken {
	for _, strategy := range resolutionChain {
		if tokens := strategy(u, roles); tokens != nil {
			return tokens
		}
	}
	return []PageToken{TokenDashboard}
}

// CanAccess reports whether the resolved permission set contains token.
func CanAccess(u *user.User, roles map[string]Role, token PageToken) bool {
	for _, t := range Resolve(u, roles) {
		if t == token {
			return true
		}
	}
	return false
}

// ScopeLocation returns the effective location for a query. Location-bound
// users always operate on their own location regardless of what the caller
// requested; admins are not location-bound and the requested value is
// honored as-is.
func ScopeLocation(u *user.User, requested string) string {
	if u.Role != RoleAdmin && u.AssignedLocation != "" {
		return u.AssignedLocation
	}
	return requested
}
