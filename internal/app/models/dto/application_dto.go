package dto

import (
	"time"

	"github.com/yigit/placementhub/internal/app/models"
)

// CreateApplicationRequest represents a student applying to an internship
type CreateApplicationRequest struct {
	InternshipID int64 `json:"internshipId" binding:"required,min=1"`
}

// MentorActionRequest represents a mentor approving or rejecting an application
type MentorActionRequest struct {
	Action   string `json:"action" binding:"required,oneof=approve reject"`
	Comments string `json:"comments,omitempty"`
}

// UpdateStatusRequest represents a placement-cell/employer status change.
// InterviewDate and InterviewLink are required when status is
// interview_scheduled.
type UpdateStatusRequest struct {
	Status        models.ApplicationStatus `json:"status" binding:"required"`
	InterviewDate *time.Time               `json:"interviewDate,omitempty"`
	InterviewMode models.InterviewMode     `json:"interviewMode,omitempty" binding:"omitempty,oneof=online offline"`
	InterviewLink string                   `json:"interviewLink,omitempty"`
	Comment       string                   `json:"comment,omitempty"`
}

// ApplicationListFilter captures the supported list query parameters.
// Department narrows the results to students of one department.
type ApplicationListFilter struct {
	Status       models.ApplicationStatus
	InternshipID int64
	Department   string
}
