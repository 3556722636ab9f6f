package dto

// SubmitFeedbackRequest represents supervisor feedback for a completed or
// ongoing internship application
type SubmitFeedbackRequest struct {
	ApplicationID         int64    `json:"applicationId" binding:"required,min=1"`
	Attendance            int      `json:"attendance" binding:"min=0,max=100"`
	TechnicalSkills       int      `json:"technicalSkills" binding:"required,min=1,max=10"`
	Communication         int      `json:"communication" binding:"required,min=1,max=10"`
	Teamwork              int      `json:"teamwork" binding:"required,min=1,max=10"`
	ProblemSolving        int      `json:"problemSolving" binding:"required,min=1,max=10"`
	OverallRating         int      `json:"overallRating" binding:"required,min=1,max=10"`
	Comments              string   `json:"comments,omitempty"`
	SkillsAcquired        []string `json:"skillsAcquired,omitempty"`
	RecommendForPlacement bool     `json:"recommendForPlacement"`
}
