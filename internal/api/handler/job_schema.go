package handler

import "time"

// --- Request types ---

type budgetRequest struct {
	Min float64 `json:"min" validate:"gte=0"`
	Max float64 `json:"max" validate:"gte=0"`
}

type createJobRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    string        `json:"category" validate:"required,oneof=design content development marketing"`
	Budget      budgetRequest `json:"budget"`
}

// --- Response types ---

type budgetResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// clientResponse is the poster reference expanded to its public fields.
type clientResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type jobResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Budget      budgetResponse  `json:"budget"`
	Client      *clientResponse `json:"client,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type createJobResponse struct {
	Success bool        `json:"success"`
	Job     jobResponse `json:"job"`
}

type listJobsResponse struct {
	Success bool          `json:"success"`
	Jobs    []jobResponse `json:"jobs"`
}
