package forms

func required(kind FieldKind, key, label string) Field {
	return Field{Key: key, Label: label, Kind: kind, Required: true}
}

func optional(kind FieldKind, key, label string) Field {
	return Field{Key: key, Label: label, Kind: kind}
}

func submissionDate() Field {
	return required(FieldDate, "submissionDate", "Submission date")
}

func col(key, label string, req bool) Column {
	return Column{Key: key, Label: label, Kind: FieldText, Required: req}
}

var meetingFields = []Field{
	submissionDate(),
	required(FieldText, "attendees", "Attendees"),
	required(FieldDate, "date", "Meeting date"),
	{
		Key:         "meetingMinutes",
		Label:       "Meeting minutes",
		Kind:        FieldTextarea,
		Required:    true,
		Description: "Paste or summarise the minutes, including decisions and owners.",
	},
	required(FieldText, "meetingMinutesApprovedBy", "Approved by"),
	required(FieldDate, "approvedDate", "Approved date"),
}

// PermissionLevels are the values accepted for access-request permissions.
var PermissionLevels = []Option{
	{Value: "read", Label: "Read"},
	{Value: "write", Label: "Write"},
	{Value: "admin", Label: "Admin"},
}

// OverallRatings are the values accepted for a performance evaluation.
var OverallRatings = []Option{
	{Value: "needs-improvement", Label: "Needs improvement"},
	{Value: "meets-expectations", Label: "Meets expectations"},
	{Value: "exceeds-expectations", Label: "Exceeds expectations"},
}

// ScenarioTypes are the values accepted for a tabletop exercise scenario.
var ScenarioTypes = []Option{
	{Value: "data-breach", Label: "Data breach"},
	{Value: "ransomware", Label: "Ransomware"},
	{Value: "insider-threat", Label: "Insider threat"},
	{Value: "phishing", Label: "Phishing"},
	{Value: "ddos", Label: "DDoS"},
	{Value: "third-party-breach", Label: "Third-party breach"},
	{Value: "natural-disaster", Label: "Natural disaster"},
	{Value: "custom", Label: "Custom"},
}

func meetingDefinition(t FormType, title string, hidden bool) Definition {
	return Definition{
		Type:               t,
		Title:              title,
		Description:        "Minutes of recurring governance meetings, approved by a named owner.",
		Category:           "governance",
		SubmissionDateMode: SubmissionDateAuto,
		Hidden:             hidden,
		Fields:             meetingFields,
	}
}

var definitions = []Definition{
	meetingDefinition(FormTypeMeeting, "Meeting Minutes", false),
	meetingDefinition(FormTypeBoardMeeting, "Board Meeting", true),
	meetingDefinition(FormTypeITLeadershipMeeting, "IT Leadership Meeting", true),
	meetingDefinition(FormTypeRiskCommitteeMeeting, "Risk Committee Meeting", true),
	{
		Type:               FormTypeAccessRequest,
		Title:              "Access Request",
		Description:        "Record of a user being granted access to a system.",
		Category:           "access-control",
		SubmissionDateMode: SubmissionDateAuto,
		Fields: []Field{
			submissionDate(),
			required(FieldText, "userName", "User name"),
			required(FieldText, "accountsNeeded", "Accounts needed"),
			{Key: "permissionsNeeded", Label: "Permissions needed", Kind: FieldSelect, Required: true, Options: PermissionLevels},
			required(FieldTextarea, "reasonForRequest", "Reason for request"),
			required(FieldText, "accessGrantedBy", "Access granted by"),
			required(FieldDate, "dateAccessGranted", "Date access granted"),
		},
	},
	{
		Type:               FormTypeWhistleblowerReport,
		Title:              "Whistleblower Report",
		Description:        "Report of a complaint raised through the whistleblower channel.",
		Category:           "incident-response",
		SubmissionDateMode: SubmissionDateAuto,
		Optional:           true,
		Fields: []Field{
			submissionDate(),
			required(FieldDate, "incidentDate", "Incident date"),
			required(FieldTextarea, "complaintDetails", "Complaint details"),
			required(FieldText, "individualsInvolved", "Individuals involved"),
			required(FieldTextarea, "evidence", "Evidence"),
			optional(FieldFile, "evidenceFile", "Evidence file"),
		},
	},
	{
		Type:               FormTypePenetrationTest,
		Title:              "Penetration Test",
		Description:        "Summary and report of the latest third-party penetration test.",
		Category:           "security-testing",
		SubmissionDateMode: SubmissionDateCustom,
		Fields: []Field{
			submissionDate(),
			required(FieldDate, "testDate", "Test date"),
			required(FieldText, "vendorName", "Vendor name"),
			required(FieldTextarea, "summary", "Summary of findings"),
			{Key: "pentestReport", Label: "Pentest report", Kind: FieldFile, Required: true, Accept: ".pdf,.doc,.docx"},
		},
	},
	{
		Type:               FormTypeRBACMatrix,
		Title:              "RBAC Matrix",
		Description:        "Role-based access control matrix across production systems.",
		Category:           "access-control",
		SubmissionDateMode: SubmissionDateAuto,
		Fields: []Field{
			submissionDate(),
			{
				Key:      "matrixRows",
				Label:    "RBAC entries",
				Kind:     FieldMatrix,
				Required: true,
				MinRows:  1,
				Columns: []Column{
					col("system", "System", true),
					col("roleName", "Role name", true),
					col("permissionsScope", "Permissions / Scope", true),
					col("approvedBy", "Approved by", true),
					{Key: "lastReviewed", Label: "Last reviewed", Kind: FieldDate, Required: true},
				},
			},
		},
	},
	{
		Type:               FormTypeInfrastructureInventory,
		Title:              "Infrastructure Inventory",
		Description:        "Inventory of infrastructure assets and their owners.",
		Category:           "asset-management",
		SubmissionDateMode: SubmissionDateAuto,
		Fields: []Field{
			submissionDate(),
			{
				Key:      "inventoryRows",
				Label:    "Infrastructure assets",
				Kind:     FieldMatrix,
				Required: true,
				MinRows:  1,
				Columns: []Column{
					col("assetId", "Asset ID", true),
					col("systemType", "System type", true),
					col("environment", "Environment", true),
					col("location", "Location", false),
					col("assignedOwner", "Assigned owner", true),
					{Key: "lastReviewed", Label: "Last reviewed", Kind: FieldDate, Required: true},
				},
			},
		},
	},
	{
		Type:               FormTypeEmployeePerformanceEvaluation,
		Title:              "Employee Performance Evaluation",
		Description:        "Signed performance evaluation for an employee review period.",
		Category:           "hr",
		SubmissionDateMode: SubmissionDateAuto,
		Fields: []Field{
			submissionDate(),
			required(FieldText, "employeeName", "Employee name"),
			required(FieldText, "manager", "Manager"),
			required(FieldDate, "reviewPeriodTo", "Review period end date"),
			{Key: "overallRating", Label: "Overall rating", Kind: FieldSelect, Required: true, Options: OverallRatings},
			required(FieldTextarea, "managerComments", "Manager comments"),
			required(FieldText, "managerSignature", "Manager signature"),
			required(FieldDate, "managerSignatureDate", "Manager signature date"),
		},
	},
	{
		Type:               FormTypeNetworkDiagram,
		Title:              "Network Diagram",
		Description:        "Current network diagram, linked or uploaded.",
		Category:           "architecture",
		SubmissionDateMode: SubmissionDateCustom,
		Fields: []Field{
			submissionDate(),
			{Key: "diagramUrl", Label: "Diagram link", Kind: FieldText, Placeholder: "https://"},
			{Key: "diagramFile", Label: "Diagram file", Kind: FieldFile, Accept: ".png,.jpg,.pdf,.svg"},
		},
	},
	{
		Type:               FormTypeTabletopExercise,
		Title:              "Tabletop Exercise",
		Description:        "Incident response tabletop exercise with attendees and after-action findings.",
		Category:           "incident-response",
		SubmissionDateMode: SubmissionDateAuto,
		Fields: []Field{
			submissionDate(),
			required(FieldDate, "exerciseDate", "Exercise date"),
			required(FieldText, "facilitator", "Facilitator"),
			{Key: "scenarioType", Label: "Scenario type", Kind: FieldSelect, Required: true, Options: ScenarioTypes},
			required(FieldTextarea, "scenarioDescription", "Scenario description"),
			{
				Key:      "attendees",
				Label:    "Attendees",
				Kind:     FieldMatrix,
				Required: true,
				MinRows:  1,
				Columns: []Column{
					col("name", "Name", true),
					col("roleTitle", "Role / Title", true),
					col("department", "Department", true),
				},
			},
			required(FieldTextarea, "sessionNotes", "Session notes"),
			{
				Key:      "actionItems",
				Label:    "After-action findings",
				Kind:     FieldMatrix,
				Required: true,
				MinRows:  1,
				Columns: []Column{
					col("finding", "Finding", true),
					col("improvementAction", "Improvement action", true),
					col("assignedOwner", "Assigned owner", true),
					{Key: "dueDate", Label: "Due date", Kind: FieldDate, Required: true},
				},
			},
			optional(FieldFile, "evidenceFile", "Evidence file"),
		},
	},
}
