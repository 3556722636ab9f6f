// Package scoring implements the employability and internship match scoring
// rules. All functions here are pure: they take fully loaded records and
// return a number, with no I/O and no clock access.
package scoring

import (
	"strings"

	"github.com/yigit/placementhub/internal/app/models"
)

// Match score weights. The four components sum to 100.
const (
	skillWeight         = 40.0
	departmentWeight    = 30.0
	domainBonus         = 10.0
	locationBonus       = 5.0
	modeBonus           = 5.0
	employabilityWeight = 10.0
)

// EmployabilityScore computes the 0-100 profile strength metric for a student.
// The score is recomputed whenever a profile-affecting field changes.
//
// Breakdown: resume uploaded +20; cover letter longer than 50 characters +10;
// skills +15 at five or more, otherwise 3 per skill; certifications +15 at two
// or more, otherwise 7 each; CGPA banded up to +40.
func EmployabilityScore(student *models.Student) int {
	score := 0

	if student.ResumeURL != nil && *student.ResumeURL != "" {
		score += 20
	}

	if len(student.CoverLetter) > 50 {
		score += 10
	}

	if len(student.Skills) >= 5 {
		score += 15
	} else {
		score += len(student.Skills) * 3
	}

	if len(student.Certifications) >= 2 {
		score += 15
	} else {
		score += len(student.Certifications) * 7
	}

	score += cgpaBand(student.CGPA)

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// cgpaBand maps a 0-10 CGPA onto its score contribution.
func cgpaBand(cgpa float64) int {
	switch {
	case cgpa >= 9.0:
		return 40
	case cgpa >= 8.0:
		return 35
	case cgpa >= 7.5:
		return 30
	case cgpa >= 7.0:
		return 25
	case cgpa >= 6.5:
		return 20
	case cgpa > 0:
		return 10
	default:
		return 0
	}
}

// MatchScore computes the 0-100 relevance metric between one student and one
// internship. Weights: skill overlap 40, department eligibility 30, stated
// preferences 20 (domain 10, location 5, mode 5), employability bonus 10.
func MatchScore(student *models.Student, internship *models.Internship) float64 {
	score := skillOverlapScore(student.Skills, internship.RequiredSkills)

	if contains(internship.EligibleDepartments, student.Department) {
		score += departmentWeight
	}

	score += preferenceScore(student.Preferences, internship)

	score += employabilityWeight * float64(student.EmployabilityScore) / 100

	if score > 100 {
		score = 100
	}
	return score
}

// skillOverlapScore computes the weighted fraction of required skills the
// student covers. Matching is a loose bidirectional substring check on the
// lower-cased values, so "react" matches "React.js" and vice versa. An
// internship with no required skills contributes nothing.
func skillOverlapScore(studentSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 0
	}

	matching := 0
	for _, skill := range studentSkills {
		skill = strings.ToLower(skill)
		for _, req := range requiredSkills {
			req = strings.ToLower(req)
			if strings.Contains(req, skill) || strings.Contains(skill, req) {
				matching++
				break
			}
		}
	}

	return skillWeight * float64(matching) / float64(len(requiredSkills))
}

// preferenceScore awards up to 20 points for how well the internship lines up
// with the student's stated preferences.
func preferenceScore(prefs models.Preferences, internship *models.Internship) float64 {
	score := 0.0

	title := strings.ToLower(internship.Title)
	description := strings.ToLower(internship.Description)
	for _, domain := range prefs.Domains {
		domain = strings.ToLower(domain)
		if domain == "" {
			continue
		}
		if strings.Contains(title, domain) || strings.Contains(description, domain) {
			score += domainBonus
			break
		}
	}

	if contains(prefs.Locations, internship.Location) {
		score += locationBonus
	}

	if prefs.InternshipType != "" && prefs.InternshipType == internship.Mode {
		score += modeBonus
	}

	return score
}

// contains reports whether list contains value. Department and location
// matching is exact, unlike the looser skill comparison.
func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
