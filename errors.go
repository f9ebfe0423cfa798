package richpresence

import (
	"fmt"

	"github.com/WelcomerTeam/RichPresence/richjson"
)

// RemoteRejection is returned by a Transport when the remote peer refuses
// a submitted payload, such as an over-long button label or more than two
// buttons. The raw diagnostic body is kept alongside the decoded envelope
// for rejections the envelope does not cover.
type RemoteRejection struct {
	Message      *RejectionMessage
	ResponseBody []byte
}

// RejectionMessage represents the basic error envelope returned by the peer.
type RejectionMessage struct {
	Message string `json:"message"`
	Code    int32  `json:"code"`
}

func NewRemoteRejection(body []byte) *RemoteRejection {
	var message RejectionMessage

	_ = richjson.Unmarshal(body, &message)

	return &RemoteRejection{
		Message:      &message,
		ResponseBody: body,
	}
}

func (r *RemoteRejection) Error() string {
	return fmt.Sprintf("activity rejected by remote peer: %s", r.Message.Message)
}
