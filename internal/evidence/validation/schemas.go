// Package validation checks evidence submission payloads against the schema
// of their form type. Validation is pure: it never touches storage and always
// reports every violation it finds.
package validation

import (
	"fmt"
	"strings"

	"comply/internal/evidence/forms"
	dErrors "comply/pkg/domain-errors"
)

var meetingSchema = object(
	required("submissionDate", "Submission date"),
	required("attendees", "Attendees"),
	required("date", "Meeting date"),
	required("meetingMinutes", "Meeting minutes"),
	required("meetingMinutesApprovedBy", "Approved by"),
	required("approvedDate", "Approved date"),
)

var schemas = map[forms.FormType]schema{
	forms.FormTypeMeeting:              meetingSchema,
	forms.FormTypeBoardMeeting:         meetingSchema,
	forms.FormTypeITLeadershipMeeting:  meetingSchema,
	forms.FormTypeRiskCommitteeMeeting: meetingSchema,

	forms.FormTypeAccessRequest: object(
		required("submissionDate", "Submission date"),
		required("userName", "User name"),
		required("accountsNeeded", "Accounts needed"),
		enum("permissionsNeeded", optionValues(forms.PermissionLevels), "Please select a permissions level"),
		required("reasonForRequest", "Reason for request"),
		required("accessGrantedBy", "Access granted by"),
		required("dateAccessGranted", "Date access granted"),
	),

	forms.FormTypeWhistleblowerReport: object(
		required("submissionDate", "Submission date"),
		required("incidentDate", "Incident date"),
		required("complaintDetails", "Complaint details"),
		required("individualsInvolved", "Individuals involved"),
		required("evidence", "Evidence"),
		optionalFile("evidenceFile", "Evidence file"),
	),

	forms.FormTypePenetrationTest: object(
		required("submissionDate", "Submission date"),
		required("testDate", "Test date"),
		required("vendorName", "Vendor name"),
		required("summary", "Summary of findings"),
		requiredFile("pentestReport", "Pentest report"),
	),

	forms.FormTypeRBACMatrix: object(
		required("submissionDate", "Submission date"),
		matrix("matrixRows", "RBAC entries", "At least one RBAC entry is required",
			column("system", "System"),
			column("roleName", "Role name"),
			column("permissionsScope", "Permissions / Scope"),
			column("approvedBy", "Approved by"),
			column("lastReviewed", "Last reviewed"),
		),
	),

	forms.FormTypeInfrastructureInventory: object(
		required("submissionDate", "Submission date"),
		matrix("inventoryRows", "Infrastructure assets", "At least one infrastructure asset is required",
			column("assetId", "Asset ID"),
			column("systemType", "System type"),
			column("environment", "Environment"),
			optionalColumn("location", "Location"),
			column("assignedOwner", "Assigned owner"),
			column("lastReviewed", "Last reviewed"),
		),
	),

	forms.FormTypeEmployeePerformanceEvaluation: object(
		required("submissionDate", "Submission date"),
		requiredTrimmed("employeeName", "Employee name"),
		requiredTrimmed("manager", "Manager"),
		required("reviewPeriodTo", "Review period end date"),
		enum("overallRating", optionValues(forms.OverallRatings), "Please select an overall rating"),
		requiredTrimmed("managerComments", "Manager comments"),
		requiredTrimmed("managerSignature", "Manager signature"),
		required("managerSignatureDate", "Manager signature date"),
	),

	forms.FormTypeNetworkDiagram: object(
		required("submissionDate", "Submission date"),
		optionalTrimmed("diagramUrl", "Diagram link"),
		optionalFile("diagramFile", "Diagram file"),
	).refine(linkOrFile("diagramUrl", "diagramFile", "Provide either a link to the diagram or upload a file")),

	forms.FormTypeTabletopExercise: object(
		required("submissionDate", "Submission date"),
		required("exerciseDate", "Exercise date"),
		requiredTrimmed("facilitator", "Facilitator"),
		enum("scenarioType", optionValues(forms.ScenarioTypes), "Please select a scenario type"),
		required("scenarioDescription", "Scenario description"),
		matrix("attendees", "Attendees", "At least one attendee is required",
			column("name", "Name"),
			column("roleTitle", "Role / Title"),
			column("department", "Department"),
		),
		required("sessionNotes", "Session notes"),
		matrix("actionItems", "After-action findings", "At least one after-action finding is required",
			column("finding", "Finding"),
			column("improvementAction", "Improvement action"),
			column("assignedOwner", "Assigned owner"),
			column("dueDate", "Due date"),
		),
		optionalFile("evidenceFile", "Evidence file"),
	),
}

func init() {
	for _, ft := range forms.All() {
		if _, ok := schemas[ft]; !ok {
			panic(fmt.Sprintf("validation: form type %q has no schema", ft))
		}
	}
	if len(schemas) != len(forms.All()) {
		panic("validation: schema registered for a form type outside the catalog")
	}
}

// linkOrFile requires a non-empty link or an uploaded file. The error is
// reported on the file field, where the UI shows the upload control.
func linkOrFile(linkKey, fileKey, message string) refinement {
	return func(out Payload, c *collector) {
		link, _ := out[linkKey].(string)
		_, hasFile := out[fileKey]
		if strings.TrimSpace(link) != "" || hasFile {
			return
		}
		if c.has(fileKey) {
			return
		}
		c.field(fileKey, message)
	}
}

func optionValues(opts []forms.Option) []string {
	values := make([]string, 0, len(opts))
	for _, o := range opts {
		values = append(values, o.Value)
	}
	return values
}

// Validate checks data against the schema of formType. It returns the
// normalised payload, or an *Errors listing every violation. An unknown form
// type is reported as CodeNotFound.
func Validate(formType forms.FormType, data map[string]any) (Payload, error) {
	s, ok := schemas[formType]
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "unknown form type")
	}
	if data == nil {
		data = map[string]any{}
	}
	payload, errs := s.validate(data)
	if len(errs) > 0 {
		return nil, &Errors{FormType: formType, Fields: errs}
	}
	return payload, nil
}

// Keys returns the payload keys the schema of formType accepts, in order.
func Keys(formType forms.FormType) []string {
	s, ok := schemas[formType]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(s.rules))
	for _, r := range s.rules {
		keys = append(keys, r.key())
	}
	return keys
}
