package models

import "time"

// Feedback is a supervisor's evaluation of a student's internship performance.
// Ratings are on a 1-10 scale, attendance is a percentage.
type Feedback struct {
	ID                    int64     `json:"id" db:"id"`
	ApplicationID         int64     `json:"applicationId" db:"application_id"`
	StudentID             int64     `json:"studentId" db:"student_id"`
	InternshipID          int64     `json:"internshipId" db:"internship_id"`
	SupervisorID          int64     `json:"supervisorId" db:"supervisor_id"`
	Attendance            int       `json:"attendance" db:"attendance"` // 0-100
	TechnicalSkills       int       `json:"technicalSkills" db:"technical_skills"`
	Communication         int       `json:"communication" db:"communication"`
	Teamwork              int       `json:"teamwork" db:"teamwork"`
	ProblemSolving        int       `json:"problemSolving" db:"problem_solving"`
	OverallRating         int       `json:"overallRating" db:"overall_rating"`
	Comments              string    `json:"comments,omitempty" db:"comments"`
	SkillsAcquired        []string  `json:"skillsAcquired" db:"skills_acquired"`
	RecommendForPlacement bool      `json:"recommendForPlacement" db:"recommend_for_placement"`
	SubmittedAt           time.Time `json:"submittedAt" db:"submitted_at"`
}
