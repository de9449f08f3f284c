package email

// PreviewData holds sample values for rendering each template locally.
var PreviewData = map[Template]map[string]string{
	TemplateFinalApproval: {
		"ApplicationID":   "100245",
		"HistoryID":       "3",
		"ProcessTypeName": "Underwriting Review",
		"PartyRoleID":     "11",
	},
}
