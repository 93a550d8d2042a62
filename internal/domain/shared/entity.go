package shared

import "time"

// Timestamps holds the audit fields every persisted entity carries.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Touch updates the UpdatedAt field to the current time
func (t *Timestamps) Touch() {
	t.UpdatedAt = time.Now()
}
