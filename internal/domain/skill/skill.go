package skill

import (
	"context"
	"time"
)

// Skill is append-only: no update or delete is exposed, and duplicate
// names are allowed.
type Skill struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

type Repository interface {
	// Save inserts the skill and fills ID and CreatedAt from the store.
	Save(ctx context.Context, s *Skill) error
	// List returns all skills in insertion order.
	List(ctx context.Context) ([]*Skill, error)
}
