package finding

import (
	"net/url"
	"strings"

	id "comply/pkg/domain"
)

// BuildURL returns the in-app link for a finding's target:
//
//	task:       {base}/{org}/tasks/{taskId}
//	submission: {base}/{org}/documents/{formType}/submissions/{submissionId}
//	form type:  {base}/{org}/documents/{formType}
//
// The form type segment is always the external identifier. Every segment is
// path-escaped. A nil target has no link and yields "".
func BuildURL(baseURL string, orgID id.OrganizationID, target Target) string {
	base := strings.TrimRight(baseURL, "/")
	org := url.PathEscape(orgID.String())

	switch t := target.(type) {
	case TaskTarget:
		return base + "/" + org + "/tasks/" + url.PathEscape(t.TaskID.String())
	case SubmissionTarget:
		return base + "/" + org + "/documents/" + url.PathEscape(t.FormType.String()) +
			"/submissions/" + url.PathEscape(t.SubmissionID.String())
	case FormTypeTarget:
		return base + "/" + org + "/documents/" + url.PathEscape(t.FormType.String())
	default:
		return ""
	}
}
