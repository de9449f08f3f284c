package email

import (
	"fmt"
	"strconv"

	"github.com/deppfellow/loan-backoffice/internal/model"
)

// SendFinalApprovalNotice tells underwriting that a final approval step
// was recorded.
func (c *Client) SendFinalApprovalNotice(to string, notice model.FinalApprovalNotice) error {
	return c.SendEmail(
		to,
		fmt.Sprintf("Final approval updated for application %d", notice.ApplicationContainerID),
		TemplateFinalApproval,
		finalApprovalData(notice),
	)
}

func finalApprovalData(notice model.FinalApprovalNotice) map[string]string {
	return map[string]string{
		"ApplicationID":   strconv.FormatInt(notice.ApplicationContainerID, 10),
		"HistoryID":       strconv.FormatInt(notice.HistoryID, 10),
		"ProcessTypeName": notice.ProcessTypeName,
		"PartyRoleID":     strconv.FormatInt(notice.PartyRoleID, 10),
	}
}
