package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/placementhub/internal/app/models"
)

func TestRankFiltersBelowCutoff(t *testing.T) {
	student := &models.Student{
		FullName:           "Priya Sharma",
		Department:         "Computer Science",
		Skills:             []string{"go", "sql"},
		EmployabilityScore: 50,
	}

	strong := &models.Internship{
		ID:                  1,
		Title:               "Backend Intern",
		RequiredSkills:      []string{"go", "sql"},
		EligibleDepartments: []string{"Computer Science"},
	}
	weak := &models.Internship{
		ID:                  2,
		Title:               "Mechanical Design Intern",
		RequiredSkills:      []string{"solidworks", "ansys"},
		EligibleDepartments: []string{"Mechanical"},
	}

	ranked := Rank(student, []*models.Internship{weak, strong})

	require.Len(t, ranked, 1)
	assert.Equal(t, int64(1), ranked[0].ID)
	// 40 skills + 30 department + 5 employability
	assert.Equal(t, 75, ranked[0].MatchScore)
}

func TestRankOrdersBestFirstWithStableTies(t *testing.T) {
	student := &models.Student{
		Department: "Computer Science",
		Skills:     []string{"python"},
	}

	// same score: department match only
	tieA := &models.Internship{ID: 1, Title: "Data Intern A", RequiredSkills: []string{"scala"}, EligibleDepartments: []string{"Computer Science"}}
	tieB := &models.Internship{ID: 2, Title: "Data Intern B", RequiredSkills: []string{"scala"}, EligibleDepartments: []string{"Computer Science"}}
	better := &models.Internship{ID: 3, Title: "Python Intern", RequiredSkills: []string{"python"}, EligibleDepartments: []string{"Computer Science"}}

	ranked := Rank(student, []*models.Internship{tieA, tieB, better})

	// the ties score 30 (department only) and fall under the cutoff
	require.Len(t, ranked, 1)
	assert.Equal(t, int64(3), ranked[0].ID)

	// with a scala student both ties score 70 and keep their input order
	student.Skills = []string{"scala"}
	ranked = Rank(student, []*models.Internship{tieA, tieB, better})
	require.Len(t, ranked, 2)
	assert.Equal(t, int64(1), ranked[0].ID)
	assert.Equal(t, int64(2), ranked[1].ID)
}

func TestRankRoundsScores(t *testing.T) {
	student := &models.Student{
		Department:         "Computer Science",
		Skills:             []string{"go", "docker", "kubernetes"},
		EmployabilityScore: 74,
	}
	internship := &models.Internship{
		ID:                  1,
		Title:               "Platform Intern",
		RequiredSkills:      []string{"go", "terraform", "docker"},
		EligibleDepartments: []string{"Computer Science"},
	}

	ranked := Rank(student, []*models.Internship{internship})

	require.Len(t, ranked, 1)
	// 40*(2/3) + 30 + 10*0.74 = 64.066..., rounds to 64
	assert.Equal(t, 64, ranked[0].MatchScore)
}

func TestRecommendForUserScopesToDepartment(t *testing.T) {
	students := &fakeStudentStore{students: map[int64]*models.Student{
		1: {ID: 1, UserID: 100, Department: "Computer Science", Skills: []string{"go"}},
	}}
	internships := &fakeInternshipStore{internships: map[int64]*models.Internship{
		1: {ID: 1, Title: "Go Intern", RequiredSkills: []string{"go"}, EligibleDepartments: []string{"Computer Science"}, IsActive: true},
		2: {ID: 2, Title: "Go Intern Elsewhere", RequiredSkills: []string{"go"}, EligibleDepartments: []string{"Electronics"}, IsActive: true},
		3: {ID: 3, Title: "Open Go Intern", RequiredSkills: []string{"go"}, IsActive: true},
		4: {ID: 4, Title: "Inactive Go Intern", RequiredSkills: []string{"go"}, EligibleDepartments: []string{"Computer Science"}, IsActive: false},
	}}

	service := NewRecommendationService(students, internships)
	ranked, err := service.RecommendForUser(context.Background(), 100)
	require.NoError(t, err)

	ids := make([]int64, len(ranked))
	for i, r := range ranked {
		ids[i] = r.ID
	}
	assert.ElementsMatch(t, []int64{1, 3}, ids)
}
