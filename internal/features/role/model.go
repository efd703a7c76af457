package role

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PageToken is one capability string gating access to a functional area.
// This vocabulary is the contract surface between the resolver and every
// route guard; the client mirrors it.
type PageToken = string

const (
	TokenDashboard  PageToken = "dashboard"
	TokenUsers      PageToken = "users"
	TokenRoles      PageToken = "roles"
	TokenLocations  PageToken = "locations"
	TokenTemplates  PageToken = "templates"
	TokenReports    PageToken = "reports"
	TokenSubmit     PageToken = "submit"
	TokenStatistics PageToken = "statistics"
)

// AllTokens lists every page token, in display order.
var AllTokens = []PageToken{
	TokenDashboard,
	TokenUsers,
	TokenRoles,
	TokenLocations,
	TokenTemplates,
	TokenReports,
	TokenSubmit,
	TokenStatistics,
}

// Built-in role names.
const (
	RoleAdmin        = "admin"
	RoleManager      = "manager"
	RoleDataEntry    = "data_entry"
	RoleStatistician = "statistician"
)

// Role is a named bundle of page tokens. System roles cannot be renamed
// or deleted, but their permission set stays mutable.
type Role struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	DisplayName  string             `bson:"display_name" json:"display_name"`
	Description  string             `bson:"description" json:"description"`
	Permissions  []PageToken        `bson:"permissions" json:"permissions"`
	IsSystemRole bool               `bson:"is_system_role" json:"is_system_role"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// SystemRoles returns the four built-in roles with their default permission sets.
func SystemRoles() []Role {
	return []Role{
		{Name: RoleAdmin, DisplayName: "Administrator", Description: "Full platform access", Permissions: defaultPermissionTable[RoleAdmin], IsSystemRole: true},
		{Name: RoleManager, DisplayName: "Manager", Description: "Submits and reviews reports for a location", Permissions: defaultPermissionTable[RoleManager], IsSystemRole: true},
		{Name: RoleDataEntry, DisplayName: "Data Entry", Description: "Submits monthly data for a location", Permissions: defaultPermissionTable[RoleDataEntry], IsSystemRole: true},
		{Name: RoleStatistician, DisplayName: "Statistician", Description: "Runs statistics and reports", Permissions: defaultPermissionTable[RoleStatistician], IsSystemRole: true},
	}
}
