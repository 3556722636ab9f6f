package dto

import (
	"time"

	"github.com/yigit/placementhub/internal/app/models"
)

// CreateInternshipRequest represents a new internship posting
type CreateInternshipRequest struct {
	Title                          string                `json:"title" binding:"required"`
	Company                        string                `json:"company" binding:"required"`
	Description                    string                `json:"description" binding:"required"`
	RequiredSkills                 []string              `json:"requiredSkills"`
	EligibleDepartments            []string              `json:"eligibleDepartments"`
	DurationMonths                 int                   `json:"durationMonths" binding:"required,min=1"`
	StipendMin                     int                   `json:"stipendMin"`
	StipendMax                     int                   `json:"stipendMax"`
	Location                       string                `json:"location" binding:"required"`
	Mode                           models.InternshipMode `json:"mode" binding:"required,oneof=online offline hybrid"`
	PlacementConversionProbability int                   `json:"placementConversionProbability" binding:"min=0,max=100"`
	TotalSeats                     int                   `json:"totalSeats" binding:"required,min=1"`
	StartDate                      *time.Time            `json:"startDate,omitempty"`
	ApplicationDeadline            *time.Time            `json:"applicationDeadline,omitempty"`
}

// UpdateInternshipRequest represents an internship update. Only the provided
// fields are applied; seat counters are adjusted through the workflow, never
// directly.
type UpdateInternshipRequest struct {
	Title                          *string                `json:"title,omitempty"`
	Company                        *string                `json:"company,omitempty"`
	Description                    *string                `json:"description,omitempty"`
	RequiredSkills                 []string               `json:"requiredSkills,omitempty"`
	EligibleDepartments            []string               `json:"eligibleDepartments,omitempty"`
	DurationMonths                 *int                   `json:"durationMonths,omitempty" binding:"omitempty,min=1"`
	StipendMin                     *int                   `json:"stipendMin,omitempty"`
	StipendMax                     *int                   `json:"stipendMax,omitempty"`
	Location                       *string                `json:"location,omitempty"`
	Mode                           *models.InternshipMode `json:"mode,omitempty" binding:"omitempty,oneof=online offline hybrid"`
	PlacementConversionProbability *int                   `json:"placementConversionProbability,omitempty" binding:"omitempty,min=0,max=100"`
	StartDate                      *time.Time             `json:"startDate,omitempty"`
	ApplicationDeadline            *time.Time             `json:"applicationDeadline,omitempty"`
	IsVerified                     *bool                  `json:"isVerified,omitempty"`
}

// InternshipListFilter captures the supported list query parameters
type InternshipListFilter struct {
	Department string
	Mode       string
	Search     string
}

// RecommendedInternship is an internship enriched with its match score for
// the requesting student
type RecommendedInternship struct {
	models.Internship
	MatchScore int `json:"matchScore" example:"62"`
}
