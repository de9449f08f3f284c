package email

type Template string

const (
	TemplateFinalApproval Template = "final_approval"
)
