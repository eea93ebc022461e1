package dto

import (
	"time"

	"github.com/promptforge/promptforge/internal/domain"
)

// SubmitJobResponse represents the acknowledgement of an async refinement
type SubmitJobResponse struct {
	JobID  string `json:"jobId"`
	Status string `json:"status"`
}

// JobStatusResponse represents the state of a queued refinement job.
// RecordID is set once the job completed and the result was persisted.
type JobStatusResponse struct {
	JobID       string     `json:"jobId"`
	Status      string     `json:"status"`
	RecordID    string     `json:"recordId,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// NewJobStatusResponse converts a domain refine job to its response DTO
func NewJobStatusResponse(j domain.RefineJob) JobStatusResponse {
	resp := JobStatusResponse{
		JobID:       j.ID,
		Status:      string(j.Status),
		Error:       j.Error,
		CreatedAt:   j.CreatedAt,
		CompletedAt: j.CompletedAt,
	}
	if j.RecordID != nil {
		resp.RecordID = j.RecordID.String()
	}
	return resp
}
