package contact

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Audience string

const (
	AudiencePatient      Audience = "patient"
	AudiencePractitioner Audience = "practitioner"
)

// ErrValidation wraps every field-level rejection.
var ErrValidation = errors.New("invalid contact submission")

// Submission is one "Get Started" form entry.
type Submission struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone,omitempty" db:"phone"`
	Audience  Audience  `json:"type" db:"audience"`
	Message   string    `json:"message" db:"message"`
	Notified  bool      `json:"notified" db:"notified"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
