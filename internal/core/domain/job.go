package domain

import (
	"errors"
	"time"
)

// Category is the closed set of job categories.
type Category string

const (
	CategoryDesign      Category = "design"
	CategoryContent     Category = "content"
	CategoryDevelopment Category = "development"
	CategoryMarketing   Category = "marketing"
)

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryDesign, CategoryContent, CategoryDevelopment, CategoryMarketing:
		return true
	}
	return false
}

// StatusOpen is the initial status assigned to every new job. Status is a
// free-form string with no transition rules enforced.
const StatusOpen = "open"

var (
	ErrInvalidCategory = errors.New("invalid job category")
	ErrJobNotFound     = errors.New("job not found")
)

// Budget is the advertised pay range for a job. No ordering between Min and
// Max is enforced.
type Budget struct {
	Min float64 `json:"min" bson:"min"`
	Max float64 `json:"max" bson:"max"`
}

// ClientRef is the poster of a job as embedded in listing responses: the
// user reference expanded to its public fields.
type ClientRef struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// Job is a posted work offer. ClientID references the posting user but is
// advisory only; referential integrity is not enforced at write time.
type Job struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Budget      Budget     `json:"budget"`
	ClientID    string     `json:"-"`
	Client      *ClientRef `json:"client,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}
