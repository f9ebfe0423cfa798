package richpresence

// Timestamps represents the starting and ending unix timestamps of an
// activity. The remote peer uses them to display elapsed or remaining time.
type Timestamps struct {
	Start *int64 `json:"start,omitempty"`
	End   *int64 `json:"end,omitempty"`
}

// NewTimestamps creates a new Timestamps with both fields unset.
func NewTimestamps() Timestamps {
	return Timestamps{}
}

// WithStart sets the start of the activity, in unix seconds.
func (t Timestamps) WithStart(start int64) Timestamps {
	t.Start = &start

	return t
}

// WithEnd sets the end of the activity, in unix seconds.
func (t Timestamps) WithEnd(end int64) Timestamps {
	t.End = &end

	return t
}
