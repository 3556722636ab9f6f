package models

import "time"

// Internship defines the internship model based on the 'internships' table
type Internship struct {
	ID                             int64          `json:"id" db:"id" example:"1"`
	Title                          string         `json:"title" db:"title" example:"Backend Developer Intern"`
	Company                        string         `json:"company" db:"company" example:"Acme Corp"`
	Description                    string         `json:"description" db:"description"`
	RequiredSkills                 []string       `json:"requiredSkills" db:"required_skills"`
	EligibleDepartments            []string       `json:"eligibleDepartments" db:"eligible_departments"`
	DurationMonths                 int            `json:"durationMonths" db:"duration_months" example:"3"` // > 0
	StipendMin                     int            `json:"stipendMin" db:"stipend_min"`
	StipendMax                     int            `json:"stipendMax" db:"stipend_max"`
	Location                       string         `json:"location" db:"location" example:"Bangalore"`
	Mode                           InternshipMode `json:"mode" db:"mode" example:"hybrid"`
	PlacementConversionProbability int            `json:"placementConversionProbability" db:"placement_conversion_probability" example:"60"` // 0-100
	TotalSeats                     int            `json:"totalSeats" db:"total_seats" example:"5"`
	SeatsRemaining                 int            `json:"seatsRemaining" db:"seats_remaining" example:"3"` // invariant: 0 <= seatsRemaining <= totalSeats
	StartDate                      *time.Time     `json:"startDate,omitempty" db:"start_date"`
	ApplicationDeadline            *time.Time     `json:"applicationDeadline,omitempty" db:"application_deadline"`
	PostedBy                       int64          `json:"postedBy" db:"posted_by"`
	IsVerified                     bool           `json:"isVerified" db:"is_verified"`
	IsActive                       bool           `json:"isActive" db:"is_active"` // soft-delete flag
	CreatedAt                      time.Time      `json:"createdAt" db:"created_at"`
}

// HasSeats reports whether the internship can still accept applications.
func (i *Internship) HasSeats() bool {
	return i.SeatsRemaining > 0
}
