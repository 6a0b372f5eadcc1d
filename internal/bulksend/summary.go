package bulksend

import (
	"fmt"

	"eventfront/internal/model"
)

// Notice is one operator-facing notification.
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Summarize interprets a result into notices. A partial failure is not an
// error: a success notice fires when anything was sent and a failure notice
// fires when anything failed, and both can fire together.
func Summarize(res *model.BulkSendResult, channel Channel) []Notice {
	if res == nil {
		return nil
	}
	var notices []Notice
	if res.Sent > 0 {
		notices = append(notices, Notice{
			Level:   "success",
			Message: fmt.Sprintf("Successfully sent %d %s!", res.Sent, channel.unit()),
		})
	}
	if res.Failed > 0 {
		notices = append(notices, Notice{
			Level:   "error",
			Message: fmt.Sprintf("Failed to send %d %s", res.Failed, channel.unit()),
		})
	}
	return notices
}

// FailedRecipients filters the per-recipient outcomes down to the failures,
// preserving order, for individual inspection.
func FailedRecipients(res *model.BulkSendResult) []model.RecipientResult {
	if res == nil {
		return nil
	}
	var failed []model.RecipientResult
	for _, r := range res.Results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	return failed
}
