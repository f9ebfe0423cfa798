package main

import (
	"context"
	"log/slog"
	"time"

	richpresence "github.com/WelcomerTeam/RichPresence"
	"github.com/WelcomerTeam/RichPresence/richjson"
	gotils_strconv "github.com/savsgio/gotils/strconv"
)

// Replace this with whatever transport/implementation you want to use.

type NullTransport struct{}

func NewNullTransport() *NullTransport {
	return &NullTransport{}
}

func (t *NullTransport) SetActivity(_ context.Context, activity richpresence.Activity) error {
	payload, err := richjson.Marshal(activity)
	if err != nil {
		return err
	}

	slog.Info("SetActivity", "payload", gotils_strconv.B2S(payload))

	return nil
}

func (t *NullTransport) ClearActivity(_ context.Context) error {
	slog.Info("ClearActivity")

	return nil
}

func (t *NullTransport) Close() error {
	return nil
}

func main() {
	var transport richpresence.Transport = NewNullTransport()
	defer transport.Close()

	base := richpresence.NewActivity().
		WithDetails("Ranked match").
		WithActivityType(richpresence.ActivityTypeCompeting).
		WithTimestamps(richpresence.NewTimestamps().WithStart(time.Now().Unix())).
		WithAssets(richpresence.NewAssets().
			WithLargeImage("arena").
			WithLargeText("The Grand Arena")).
		WithButtons([]richpresence.Button{
			richpresence.NewButton("Watch live", "https://example.com/spectate"),
		})

	// Deriving from base leaves base untouched, so per-state variants can
	// be built up front and submitted as the session progresses.
	inLobby := base.WithState("In the lobby").
		WithParty(richpresence.NewParty().WithID("party:1234").WithSize(1, 5))

	inMatch := base.WithState("In a match").
		WithParty(richpresence.NewParty().WithID("party:1234").WithSize(5, 5)).
		WithSecrets(richpresence.NewSecrets().
			WithJoin("join:1234").
			WithSpectate("spectate:1234"))

	ctx := context.Background()

	for _, activity := range []richpresence.Activity{inLobby, inMatch} {
		if err := transport.SetActivity(ctx, activity); err != nil {
			slog.Error("Failed to set activity", "error", err)
		}
	}

	if err := transport.ClearActivity(ctx); err != nil {
		slog.Error("Failed to clear activity", "error", err)
	}
}
