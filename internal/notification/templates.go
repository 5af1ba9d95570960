// Package notification composes and dispatches status-specific candidate
// emails.
package notification

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-portal/internal/types"
)

// template is a rendered (subject, body) pair for one status.
type template struct {
	subject string
	body    string
}

// renderTemplate selects the message for a status transition. Selection is
// keyed on the new status only, case-insensitively; unrecognized statuses
// (including "reviewed") get the generic status-check template.
func renderTemplate(app *types.Application, job *types.Job, newStatus types.Status) template {
	var tmpl template
	switch types.Status(strings.ToLower(string(newStatus))) {
	case types.StatusPending:
		tmpl.subject = fmt.Sprintf("Application Received for %s", job.Title)
		tmpl.body = fmt.Sprintf(`Dear %s,

Thank you for applying to the %s position at %s. We have received your application and it is currently under review.

We will update you on the status within the next few business days.

Best regards,
%s Hiring Team`, app.CandidateName, job.Title, job.Company, job.Company)

	case types.StatusShortlisted:
		tmpl.subject = fmt.Sprintf("You've Been Shortlisted for %s", job.Title)
		tmpl.body = fmt.Sprintf(`Dear %s,

Congratulations! You have been shortlisted for the %s position at %s.

We were impressed with your application. Our team is finalizing the next steps and will contact you shortly with further details.

Best regards,
%s Hiring Team`, app.CandidateName, job.Title, job.Company, job.Company)

	case types.StatusRejected:
		tmpl.subject = fmt.Sprintf("Update on Your %s Application", job.Title)
		tmpl.body = fmt.Sprintf(`Dear %s,

Thank you for your interest in the %s position at %s and for taking the time to apply.

After careful consideration, we have decided to move forward with other candidates whose experience more closely matches our current requirements. We encourage you to apply for future positions that match your skills.

We wish you the best of luck in your job search.

Best regards,
%s Hiring Team`, app.CandidateName, job.Title, job.Company, job.Company)

	case types.StatusHired:
		tmpl.subject = fmt.Sprintf("Offer for %s - Welcome to the Team!", job.Title)
		tmpl.body = fmt.Sprintf(`Dear %s,

Congratulations! We are pleased to offer you the %s position at %s.

Our HR team will contact you within 1 business day with the detailed offer letter and next steps. We look forward to welcoming you to the team!

Best regards,
%s Hiring Team`, app.CandidateName, job.Title, job.Company, job.Company)

	default:
		tmpl.subject = fmt.Sprintf("Update Regarding Your %s Application", job.Title)
		tmpl.body = fmt.Sprintf(`Dear %s,

There is an update regarding your application for the %s position at %s. Please check your application status for details.

Best regards,
%s Hiring Team`, app.CandidateName, job.Title, job.Company, job.Company)
	}
	return tmpl
}
