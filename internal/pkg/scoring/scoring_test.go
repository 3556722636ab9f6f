package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/placementhub/internal/app/models"
)

func strPtr(s string) *string { return &s }

func TestEmployabilityScore(t *testing.T) {
	tests := []struct {
		name    string
		student models.Student
		want    int
	}{
		{
			name:    "empty profile",
			student: models.Student{},
			want:    0,
		},
		{
			name: "resume and three skills with mid cgpa",
			student: models.Student{
				ResumeURL:   strPtr("https://cdn.example.com/resume.pdf"),
				CoverLetter: strings.Repeat("x", 60),
				Skills:      []string{"react", "node", "python"},
				CGPA:        8.2,
			},
			want: 20 + 10 + 9 + 35, // 74
		},
		{
			name: "five skills hit the flat skill bonus",
			student: models.Student{
				Skills: []string{"go", "sql", "docker", "k8s", "aws"},
			},
			want: 15,
		},
		{
			name: "four skills score per skill",
			student: models.Student{
				Skills: []string{"go", "sql", "docker", "k8s"},
			},
			want: 12,
		},
		{
			name: "short cover letter earns nothing",
			student: models.Student{
				CoverLetter: "I am very motivated.",
			},
			want: 0,
		},
		{
			name: "one certification",
			student: models.Student{
				Certifications: []models.Certification{{Name: "AWS CP"}},
			},
			want: 7,
		},
		{
			name: "two certifications hit the flat bonus",
			student: models.Student{
				Certifications: []models.Certification{{Name: "a"}, {Name: "b"}},
			},
			want: 15,
		},
		{
			name: "top cgpa band",
			student: models.Student{
				CGPA: 9.4,
			},
			want: 40,
		},
		{
			name: "low nonzero cgpa band",
			student: models.Student{
				CGPA: 5.1,
			},
			want: 10,
		},
		{
			name: "full profile clamps at 100",
			student: models.Student{
				ResumeURL:   strPtr("https://cdn.example.com/resume.pdf"),
				CoverLetter: strings.Repeat("x", 200),
				Skills:      []string{"a", "b", "c", "d", "e", "f"},
				Certifications: []models.Certification{
					{Name: "a"}, {Name: "b"}, {Name: "c"},
				},
				CGPA: 9.8,
			},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EmployabilityScore(&tt.student)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestMatchScore(t *testing.T) {
	t.Run("partial skill overlap with department match", func(t *testing.T) {
		student := models.Student{
			Department:         "Computer Science",
			Skills:             []string{"react", "node"},
			EmployabilityScore: 50,
		}
		internship := models.Internship{
			Title:               "Frontend Intern",
			RequiredSkills:      []string{"React", "Node", "AWS"},
			EligibleDepartments: []string{"Computer Science"},
			Location:            "Pune",
			Mode:                models.ModeOffline,
		}

		// 40*(2/3) + 30 + 0 + 10*0.5
		assert.InDelta(t, 61.67, MatchScore(&student, &internship), 0.01)
	})

	t.Run("substring matching is bidirectional", func(t *testing.T) {
		student := models.Student{Skills: []string{"javascript"}}
		internship := models.Internship{RequiredSkills: []string{"Java"}}

		// "java" is a substring of "javascript"
		assert.InDelta(t, 40.0, MatchScore(&student, &internship), 0.01)
	})

	t.Run("empty required skills contribute nothing", func(t *testing.T) {
		student := models.Student{
			Department: "Mechanical",
			Skills:     []string{"autocad"},
		}
		internship := models.Internship{
			EligibleDepartments: []string{"Mechanical"},
		}

		assert.InDelta(t, 30.0, MatchScore(&student, &internship), 0.01)
	})

	t.Run("preference bonuses", func(t *testing.T) {
		student := models.Student{
			Preferences: models.Preferences{
				Domains:        []string{"Machine Learning"},
				Locations:      []string{"Bangalore"},
				InternshipType: models.ModeHybrid,
			},
		}
		internship := models.Internship{
			Title:       "Machine Learning Intern",
			Description: "Work on ML pipelines",
			Location:    "Bangalore",
			Mode:        models.ModeHybrid,
		}

		// 10 domain + 5 location + 5 mode
		assert.InDelta(t, 20.0, MatchScore(&student, &internship), 0.01)
	})

	t.Run("domain bonus awarded once for multiple matching domains", func(t *testing.T) {
		student := models.Student{
			Preferences: models.Preferences{
				Domains: []string{"backend", "developer"},
			},
		}
		internship := models.Internship{
			Title: "Backend Developer Intern",
		}

		assert.InDelta(t, 10.0, MatchScore(&student, &internship), 0.01)
	})

	t.Run("score never exceeds 100", func(t *testing.T) {
		student := models.Student{
			Department:         "CSE",
			Skills:             []string{"go"},
			EmployabilityScore: 100,
			Preferences: models.Preferences{
				Domains:        []string{"go"},
				Locations:      []string{"Remote"},
				InternshipType: models.ModeOnline,
			},
		}
		internship := models.Internship{
			Title:               "Go Intern",
			RequiredSkills:      []string{"Go"},
			EligibleDepartments: []string{"CSE"},
			Location:            "Remote",
			Mode:                models.ModeOnline,
		}

		got := MatchScore(&student, &internship)
		assert.LessOrEqual(t, got, 100.0)
		assert.InDelta(t, 100.0, got, 0.01)
	})
}
