package models

import "time"

// ApplicationStatus is the lifecycle state of an application
type ApplicationStatus string

const (
	StatusApplied            ApplicationStatus = "applied"
	StatusMentorPending      ApplicationStatus = "mentor_pending"
	StatusMentorApproved     ApplicationStatus = "mentor_approved"
	StatusMentorRejected     ApplicationStatus = "mentor_rejected"
	StatusShortlisted        ApplicationStatus = "shortlisted"
	StatusInterviewScheduled ApplicationStatus = "interview_scheduled"
	StatusSelected           ApplicationStatus = "selected"
	StatusRejected           ApplicationStatus = "rejected"
	StatusCompleted          ApplicationStatus = "completed"
)

// ValidApplicationStatus reports whether the given value is a known status.
func ValidApplicationStatus(status ApplicationStatus) bool {
	switch status {
	case StatusApplied, StatusMentorPending, StatusMentorApproved, StatusMentorRejected,
		StatusShortlisted, StatusInterviewScheduled, StatusSelected, StatusRejected,
		StatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are expected from the status.
func (s ApplicationStatus) IsTerminal() bool {
	switch s {
	case StatusMentorRejected, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// InterviewMode is how an interview is conducted
type InterviewMode string

const (
	InterviewOnline  InterviewMode = "online"
	InterviewOffline InterviewMode = "offline"
)

// Application defines the application model based on the 'applications' table.
// At most one application may exist per (studentId, internshipId) pair.
type Application struct {
	ID               int64             `json:"id" db:"id" example:"1"`
	StudentID        int64             `json:"studentId" db:"student_id"`
	InternshipID     int64             `json:"internshipId" db:"internship_id"`
	Status           ApplicationStatus `json:"status" db:"status" example:"mentor_pending"`
	MentorComments   string            `json:"mentorComments,omitempty" db:"mentor_comments"`
	MentorActionDate *time.Time        `json:"mentorActionDate,omitempty" db:"mentor_action_date"`
	InterviewDate    *time.Time        `json:"interviewDate,omitempty" db:"interview_date"`
	InterviewMode    InterviewMode     `json:"interviewMode,omitempty" db:"interview_mode"`
	InterviewLink    string            `json:"interviewLink,omitempty" db:"interview_link"`
	AppliedAt        time.Time         `json:"appliedAt" db:"applied_at"`

	// StatusHistory is the append-only audit trail: every status change appends
	// exactly one entry; entries are never edited or removed.
	StatusHistory []StatusHistoryEntry `json:"statusHistory"`

	// Relations (populated when needed)
	Student    *Student    `json:"student,omitempty"`
	Internship *Internship `json:"internship,omitempty"`
}

// StatusHistoryEntry is one record in an application's audit trail
type StatusHistoryEntry struct {
	ID            int64             `json:"id" db:"id"`
	ApplicationID int64             `json:"applicationId" db:"application_id"`
	Status        ApplicationStatus `json:"status" db:"status"`
	Timestamp     time.Time         `json:"timestamp" db:"recorded_at"`
	UpdatedBy     *int64            `json:"updatedBy,omitempty" db:"updated_by"` // nil for the system-seeded entry
	Comment       string            `json:"comment,omitempty" db:"comment"`
}
