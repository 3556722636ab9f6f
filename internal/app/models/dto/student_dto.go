package dto

import "github.com/yigit/placementhub/internal/app/models"

// UpdateProfileRequest represents a student profile update. All fields are
// optional; only the provided ones are applied.
type UpdateProfileRequest struct {
	FullName       *string                `json:"fullName,omitempty"`
	Phone          *string                `json:"phone,omitempty"`
	Semester       *int                   `json:"semester,omitempty" binding:"omitempty,min=1,max=8"`
	CGPA           *float64               `json:"cgpa,omitempty" binding:"omitempty,min=0,max=10"`
	CoverLetter    *string                `json:"coverLetter,omitempty"`
	Skills         []string               `json:"skills,omitempty"`
	Certifications []models.Certification `json:"certifications,omitempty"`
	Preferences    *models.Preferences    `json:"preferences,omitempty"`
}

// ResumeUploadResponse is returned after a successful resume upload
type ResumeUploadResponse struct {
	ResumeURL          string `json:"resumeUrl"`
	EmployabilityScore int    `json:"employabilityScore"`
	ProfileCompleted   bool   `json:"profileCompleted"`
}
