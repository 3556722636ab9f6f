package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID                 int64           `json:"id" db:"id" example:"1"`                           // Unique identifier for the student record
	UserID             int64           `json:"userId" db:"user_id" example:"5"`                  // ID of the owning user account (one-to-one, immutable)
	StudentNumber      string          `json:"studentNumber" db:"student_number" example:"21CS042"` // Student's unique roll number
	FullName           string          `json:"fullName" db:"full_name" example:"Priya Sharma"`
	Department         string          `json:"department" db:"department" example:"Computer Science"`
	Semester           int             `json:"semester" db:"semester" example:"6"`  // 1-8
	CGPA               float64         `json:"cgpa" db:"cgpa" example:"8.2"`        // 0.0-10.0
	Phone              string          `json:"phone,omitempty" db:"phone"`
	CoverLetter        string          `json:"coverLetter,omitempty" db:"cover_letter"`
	Skills             []string        `json:"skills" db:"skills"`
	Certifications     []Certification `json:"certifications" db:"certifications"`
	Preferences        Preferences     `json:"preferences" db:"preferences"`
	ResumeURL          *string         `json:"resumeUrl,omitempty" db:"resume_url"`
	EmployabilityScore int             `json:"employabilityScore" db:"employability_score" example:"74"` // Derived, 0-100
	ProfileCompleted   bool            `json:"profileCompleted" db:"profile_completed"`
	LastUpdated        time.Time       `json:"lastUpdated" db:"last_updated"`

	// Relation (populated when needed)
	User *User `json:"user,omitempty"`
}

// Certification is a credential attached to a student profile
type Certification struct {
	Name         string     `json:"name" example:"AWS Cloud Practitioner"`
	Issuer       string     `json:"issuer,omitempty" example:"Amazon"`
	DateObtained *time.Time `json:"dateObtained,omitempty"`
	URL          string     `json:"url,omitempty"`
}

// StipendRange bounds a student's acceptable stipend
type StipendRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Preferences captures what a student is looking for in an internship
type Preferences struct {
	Domains        []string       `json:"domains,omitempty"`
	Locations      []string       `json:"locations,omitempty"`
	StipendRange   *StipendRange  `json:"stipendRange,omitempty"`
	InternshipType InternshipMode `json:"internshipType,omitempty"`
}

// IsProfileComplete reports whether the mandatory profile fields are filled in.
// A complete profile needs name, semester, CGPA, an uploaded resume and at
// least three skills.
func (s *Student) IsProfileComplete() bool {
	return s.FullName != "" &&
		s.Semester > 0 &&
		s.CGPA > 0 &&
		s.ResumeURL != nil && *s.ResumeURL != "" &&
		len(s.Skills) >= 3
}
