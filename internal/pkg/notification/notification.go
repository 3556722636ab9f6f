// Package notification delivers application lifecycle emails. The workflow
// layer produces Intent values; delivery is fire-and-forget and a failed send
// is logged, never surfaced to the caller.
package notification

// Kind identifies a notification template
type Kind string

const (
	KindApplicationSubmitted    Kind = "application_submitted"
	KindApplicationStatusUpdate Kind = "application_status_update"
	KindInterviewScheduled      Kind = "interview_scheduled"
)

// Intent is a request to notify a recipient. TemplateData carries the
// template-specific fields (student name, internship title, status, interview
// date and link).
type Intent struct {
	Kind           Kind
	RecipientEmail string
	TemplateData   map[string]string
}

// Gateway accepts notification intents for delivery
type Gateway interface {
	Dispatch(intent Intent)
}
