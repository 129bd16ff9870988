package domain

import (
	"time"

	"resume-builder/internal/model"

	"github.com/google/uuid"
)

// Resume is the single persisted record a user owns. Content fields are
// flattened into the JSON object.
type Resume struct {
	ID     uuid.UUID `json:"id"`
	UserID string    `json:"userId"`
	model.Content
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
