package models

import "time"

// Certificate is issued to a student once an application reaches 'completed'
type Certificate struct {
	ID                int64     `json:"id" db:"id"`
	StudentID         int64     `json:"studentId" db:"student_id"`
	InternshipID      int64     `json:"internshipId" db:"internship_id"`
	ApplicationID     int64     `json:"applicationId" db:"application_id"`
	CertificateNumber string    `json:"certificateNumber" db:"certificate_number"`
	CertificateURL    string    `json:"certificateUrl,omitempty" db:"certificate_url"`
	VerificationCode  string    `json:"verificationCode" db:"verification_code"`
	IssuedDate        time.Time `json:"issuedDate" db:"issued_date"`
}
