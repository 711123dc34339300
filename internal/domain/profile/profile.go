package profile

import (
	"context"
	"time"

	"github.com/muftipurwa/portfolio-api/pkg/optional"
)

// Profile is the single owner identity of the portfolio. At most one row
// exists in the store; every read and write targets "the" profile.
type Profile struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Greeting         string    `json:"greeting"`
	Email            string    `json:"email"`
	LinkedinURL      *string   `json:"linkedin_url"`
	WhatsappNumber   *string   `json:"whatsapp_number"`
	AboutDescription string    `json:"about_description"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Changes is a partial update. Each field is tri-state: absent fields keep
// their stored value, explicit null clears a nullable column, and a set
// value overwrites. Null on a non-nullable column is rejected at the
// boundary before any of this is reached.
type Changes struct {
	Name             optional.Field[string]
	Greeting         optional.Field[string]
	Email            optional.Field[string]
	LinkedinURL      optional.Field[string]
	WhatsappNumber   optional.Field[string]
	AboutDescription optional.Field[string]
}

// IsEmpty reports whether no field was provided at all. An empty update on
// an empty store still bootstraps a full default profile.
func (c Changes) IsEmpty() bool {
	return !c.Name.IsSet() && !c.Greeting.IsSet() && !c.Email.IsSet() &&
		!c.LinkedinURL.IsSet() && !c.WhatsappNumber.IsSet() && !c.AboutDescription.IsSet()
}

type Repository interface {
	// Get returns the profile, or nil when none has been created yet.
	Get(ctx context.Context) (*Profile, error)
	// Upsert applies changes to the existing profile, or inserts bootstrap
	// when the store is empty. The store serializes concurrent calls so the
	// singleton invariant holds even when two bootstraps race.
	Upsert(ctx context.Context, changes Changes, bootstrap *Profile) (*Profile, error)
}
