package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsProfileComplete(t *testing.T) {
	resume := "/uploads/resumes/21CS042.pdf"
	complete := Student{
		FullName:  "Priya Sharma",
		Semester:  6,
		CGPA:      8.2,
		ResumeURL: &resume,
		Skills:    []string{"go", "sql", "docker"},
	}
	assert.True(t, complete.IsProfileComplete())

	noResume := complete
	noResume.ResumeURL = nil
	assert.False(t, noResume.IsProfileComplete())

	emptyResume := complete
	empty := ""
	emptyResume.ResumeURL = &empty
	assert.False(t, emptyResume.IsProfileComplete())

	tooFewSkills := complete
	tooFewSkills.Skills = []string{"go", "sql"}
	assert.False(t, tooFewSkills.IsProfileComplete())

	noCGPA := complete
	noCGPA.CGPA = 0
	assert.False(t, noCGPA.IsProfileComplete())
}

func TestHasSeats(t *testing.T) {
	assert.True(t, (&Internship{SeatsRemaining: 1}).HasSeats())
	assert.False(t, (&Internship{SeatsRemaining: 0}).HasSeats())
}
