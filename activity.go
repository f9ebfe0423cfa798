package richpresence

// ActivityType represents an activity's type.
type ActivityType int

// Activity types. The remote protocol reserves codes 1 and 4 for
// variants that cannot be set over this channel, so no constant
// exists for them.
const (
	ActivityTypePlaying   ActivityType = 0
	ActivityTypeListening ActivityType = 2
	ActivityTypeWatching  ActivityType = 3
	ActivityTypeCompeting ActivityType = 5
)

// Activity represents a rich presence activity. Every field is optional
// and is omitted from the rendered payload while unset.
//
// Activities are plain values: each With method returns an updated copy,
// so partially built variants can be derived from a shared base without
// affecting each other.
type Activity struct {
	State      *string       `json:"state,omitempty"`
	Details    *string       `json:"details,omitempty"`
	Timestamps *Timestamps   `json:"timestamps,omitempty"`
	Party      *Party        `json:"party,omitempty"`
	Assets     *Assets       `json:"assets,omitempty"`
	Secrets    *Secrets      `json:"secrets,omitempty"`
	Buttons    []Button      `json:"buttons,omitempty"`
	Type       *ActivityType `json:"type,omitempty"`
}

// NewActivity creates a new Activity with every field unset.
func NewActivity() Activity {
	return Activity{}
}

// WithState sets the party status, or the text of a custom status.
func (a Activity) WithState(state string) Activity {
	a.State = &state

	return a
}

// WithDetails sets what the player is currently doing.
func (a Activity) WithDetails(details string) Activity {
	a.Details = &details

	return a
}

// WithTimestamps sets the start and end timestamps of the activity.
func (a Activity) WithTimestamps(timestamps Timestamps) Activity {
	a.Timestamps = &timestamps

	return a
}

// WithParty sets the party information of the activity.
func (a Activity) WithParty(party Party) Activity {
	a.Party = &party

	return a
}

// WithAssets sets the images of the activity and their hover texts.
func (a Activity) WithAssets(assets Assets) Activity {
	a.Assets = &assets

	return a
}

// WithSecrets sets the join, spectate and match secrets of the activity.
func (a Activity) WithSecrets(secrets Secrets) Activity {
	a.Secrets = &secrets

	return a
}

// WithButtons sets the buttons of the activity, in the order they are
// displayed. The remote peer accepts at most 2 buttons and rejects an
// explicitly empty list, so an empty slice resets the field to unset
// instead of being stored.
func (a Activity) WithButtons(buttons []Button) Activity {
	if len(buttons) == 0 {
		a.Buttons = nil

		return a
	}

	a.Buttons = buttons

	return a
}

// WithActivityType sets the type of the activity.
func (a Activity) WithActivityType(activityType ActivityType) Activity {
	a.Type = &activityType

	return a
}
