package richpresence

import "context"

// Transport delivers fully built activities to the remote peer.
// Establishing the channel, framing, reconnecting and transmission are
// entirely the transport's concern; this module only guarantees the shape
// of the value it hands over.
type Transport interface {
	// SetActivity renders and submits one activity. A peer side refusal
	// surfaces as a *RemoteRejection.
	SetActivity(ctx context.Context, activity Activity) error

	// ClearActivity removes the presence previously submitted, if any.
	ClearActivity(ctx context.Context) error

	Close() error
}
