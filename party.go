package richpresence

import (
	"fmt"
	"strconv"

	"github.com/WelcomerTeam/RichPresence/richjson"
)

// Party represents an activity's current party information.
type Party struct {
	ID   *string    `json:"id,omitempty"`
	Size *PartySize `json:"size,omitempty"`
}

// NewParty creates a new Party with both fields unset.
func NewParty() Party {
	return Party{}
}

// WithID sets the ID of the party.
func (p Party) WithID(id string) Party {
	p.ID = &id

	return p
}

// WithSize sets the current and maximum size of the party.
func (p Party) WithSize(currentSize, maxSize int32) Party {
	p.Size = &PartySize{
		CurrentSize: currentSize,
		MaxSize:     maxSize,
	}

	return p
}

// PartySize holds the size of a party. On the wire it is a two element
// array with the current size first, never an object.
type PartySize struct {
	CurrentSize int32
	MaxSize     int32
}

func (p PartySize) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 24)

	buf = append(buf, '[')
	buf = strconv.AppendInt(buf, int64(p.CurrentSize), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(p.MaxSize), 10)
	buf = append(buf, ']')

	return buf, nil
}

func (p *PartySize) UnmarshalJSON(b []byte) error {
	var size []int32

	if err := richjson.Unmarshal(b, &size); err != nil {
		return fmt.Errorf("failed to unmarshal json: %v", err)
	}

	if len(size) != 2 {
		return fmt.Errorf("party size has %d elements, expected 2", len(size))
	}

	p.CurrentSize = size[0]
	p.MaxSize = size[1]

	return nil
}
