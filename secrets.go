package richpresence

// Secrets represents an activity's secrets for joining and spectating.
// Each secret is an opaque token interpreted by the remote peer.
type Secrets struct {
	Join     *string `json:"join,omitempty"`
	Spectate *string `json:"spectate,omitempty"`
	Match    *string `json:"match,omitempty"`
}

// NewSecrets creates a new Secrets with every field unset.
func NewSecrets() Secrets {
	return Secrets{}
}

// WithJoin sets the secret for joining a party.
func (s Secrets) WithJoin(join string) Secrets {
	s.Join = &join

	return s
}

// WithSpectate sets the secret for spectating a game.
func (s Secrets) WithSpectate(spectate string) Secrets {
	s.Spectate = &spectate

	return s
}

// WithMatch sets the secret for a specific instanced match.
func (s Secrets) WithMatch(match string) Secrets {
	s.Match = &match

	return s
}
