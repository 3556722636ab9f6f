package dto

import "github.com/yigit/placementhub/internal/app/models"

// StatusCount is a per-status application tally
type StatusCount struct {
	Status models.ApplicationStatus `json:"status"`
	Count  int64                    `json:"count"`
}

// DepartmentCount is a per-department tally of selected students
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

// SkillCount is a demand tally for one required skill across active internships
type SkillCount struct {
	Skill string `json:"skill"`
	Count int64  `json:"count"`
}

// SeatTotals aggregates capacity across active internships
type SeatTotals struct {
	TotalSeats     int64 `json:"totalSeats"`
	SeatsRemaining int64 `json:"seatsRemaining"`
}

// DashboardOverview holds the headline numbers
type DashboardOverview struct {
	TotalStudents     int64   `json:"totalStudents"`
	TotalInternships  int64   `json:"totalInternships"`
	TotalApplications int64   `json:"totalApplications"`
	StudentsPlaced    int64   `json:"studentsPlaced"`
	PlacementRate     float64 `json:"placementRate"` // percentage, 2 decimal places
}

// DashboardResponse is the placement analytics dashboard payload
type DashboardResponse struct {
	Overview             DashboardOverview     `json:"overview"`
	ApplicationsByStatus []StatusCount         `json:"applicationsByStatus"`
	Unfilled             SeatTotals            `json:"unfilled"`
	DepartmentStats      []DepartmentCount     `json:"departmentStats"`
	RecentApplications   []models.Application  `json:"recentApplications"`
	TopSkills            []SkillCount          `json:"topSkills"`
}
