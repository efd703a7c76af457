package user

import (
	"time"

	common_models "go-reporthub/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account status. Self-registered users start pending and must be
// approved by an admin before they can log in.
const (
	StatusPending = "pending"
	StatusActive  = "active"
)

type User struct {
	ID               primitive.ObjectID           `bson:"_id,omitempty" json:"id"`
	Username         string                       `bson:"username" json:"username"`
	Password         string                       `bson:"password" json:"-"`
	Role             string                       `bson:"role" json:"role"`                                             // Role name, resolved against the role table
	AssignedLocation string                       `bson:"assigned_location,omitempty" json:"assigned_location,omitempty"` // Scopes submissions/queries to one location
	PagePermissions  []string                     `bson:"page_permissions,omitempty" json:"page_permissions,omitempty"`   // Explicit override of the role's permission set
	Status           string                       `bson:"status" json:"status"`
	State            common_models.LifecycleState `bson:"state" json:"state"`
	CreatedAt        time.Time                    `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time                    `bson:"updated_at" json:"updated_at"`
}

type CreateUserRequest struct {
	Username         string   `json:"username"`
	Password         string   `json:"password"`
	Role             string   `json:"role"`
	AssignedLocation string   `json:"assigned_location,omitempty"`
	PagePermissions  []string `json:"page_permissions,omitempty"`
}

type UpdateUserRequest struct {
	Password         *string   `json:"password,omitempty"`
	Role             *string   `json:"role,omitempty"`
	AssignedLocation *string   `json:"assigned_location,omitempty"`
	PagePermissions  *[]string `json:"page_permissions,omitempty"`
}
