package notification

import "fmt"

// render produces the subject and HTML body for an intent.
func render(intent Intent) (subject, body string, err error) {
	data := intent.TemplateData
	switch intent.Kind {
	case KindApplicationSubmitted:
		return "Application Submitted Successfully",
			applicationSubmittedBody(data["studentName"], data["internshipTitle"]), nil
	case KindApplicationStatusUpdate:
		return "Application Status Update",
			statusUpdateBody(data["studentName"], data["internshipTitle"], data["status"]), nil
	case KindInterviewScheduled:
		return "Interview Scheduled",
			interviewScheduledBody(data["studentName"], data["internshipTitle"], data["interviewDate"], data["interviewLink"]), nil
	default:
		return "", "", fmt.Errorf("unknown notification kind %q", intent.Kind)
	}
}

func applicationSubmittedBody(studentName, internshipTitle string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px;">
			<h2>Application Submitted Successfully</h2>
			<p>Dear %s,</p>
			<p>Your application for <strong>%s</strong> has been submitted successfully.</p>
			<p>You will receive updates on your application status via email.</p>
			<br>
			<p>Best regards,</p>
			<p>Placement Cell</p>
		</div>
	`, studentName, internshipTitle)
}

func statusUpdateBody(studentName, internshipTitle, status string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px;">
			<h2>Application Status Update</h2>
			<p>Dear %s,</p>
			<p>Your application for <strong>%s</strong> has been updated.</p>
			<p><strong>New Status:</strong> %s</p>
			<br>
			<p>Best regards,</p>
			<p>Placement Cell</p>
		</div>
	`, studentName, internshipTitle, status)
}

func interviewScheduledBody(studentName, internshipTitle, interviewDate, interviewLink string) string {
	link := ""
	if interviewLink != "" {
		link = fmt.Sprintf(`<p><strong>Interview Link:</strong> <a href="%s">%s</a></p>`, interviewLink, interviewLink)
	}
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px;">
			<h2>Interview Scheduled</h2>
			<p>Dear %s,</p>
			<p>Your interview for <strong>%s</strong> has been scheduled.</p>
			<p><strong>Date &amp; Time:</strong> %s</p>
			%s
			<p>Please be prepared and join on time.</p>
			<br>
			<p>Best regards,</p>
			<p>Placement Cell</p>
		</div>
	`, studentName, internshipTitle, interviewDate, link)
}
