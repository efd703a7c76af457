package location

import (
	"time"

	common_models "go-reporthub/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Location is an organizational site eligible to submit against
// assigned templates. Soft-deletable and restorable.
type Location struct {
	ID          primitive.ObjectID           `bson:"_id,omitempty" json:"id"`
	Name        string                       `bson:"name" json:"name"`
	Description string                       `bson:"description,omitempty" json:"description,omitempty"`
	State       common_models.LifecycleState `bson:"state" json:"state"`
	CreatedAt   time.Time                    `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time                    `bson:"updated_at" json:"updated_at"`
}
