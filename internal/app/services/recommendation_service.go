package services

import (
	"context"
	"math"
	"sort"

	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/pkg/scoring"
)

// minMatchScore is the cutoff below which an internship is not worth
// recommending
const minMatchScore = 40.0

// RecommendationService ranks internships for a student by match score
type RecommendationService struct {
	students    StudentStore
	internships InternshipStore
}

// NewRecommendationService creates a new recommendation service instance
func NewRecommendationService(students StudentStore, internships InternshipStore) *RecommendationService {
	return &RecommendationService{
		students:    students,
		internships: internships,
	}
}

// RecommendForUser scores the active internships open to the student's
// department, keeps those scoring at least 40 and returns them best first.
// Ties keep the candidate ordering, so equal-scored postings stay in
// newest-first order.
func (s *RecommendationService) RecommendForUser(ctx context.Context, userID int64) ([]dto.RecommendedInternship, error) {
	student, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.internships.GetActiveForDepartment(ctx, student.Department)
	if err != nil {
		return nil, err
	}

	return Rank(student, candidates), nil
}

// Rank scores and orders candidates for a student. Exposed separately so the
// scoring pipeline can run on any candidate set.
func Rank(student *models.Student, candidates []*models.Internship) []dto.RecommendedInternship {
	type scored struct {
		internship *models.Internship
		score      float64
	}

	matches := make([]scored, 0, len(candidates))
	for _, internship := range candidates {
		score := scoring.MatchScore(student, internship)
		if score < minMatchScore {
			continue
		}
		matches = append(matches, scored{internship: internship, score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	recommended := make([]dto.RecommendedInternship, len(matches))
	for i, m := range matches {
		recommended[i] = dto.RecommendedInternship{
			Internship: *m.internship,
			MatchScore: int(math.Round(m.score)),
		}
	}

	return recommended
}
