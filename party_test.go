package richpresence_test

import (
	"testing"

	richpresence "github.com/WelcomerTeam/RichPresence"
	"github.com/WelcomerTeam/RichPresence/richjson"
	"github.com/stretchr/testify/assert"
)

func TestPartySizeRendersAsPair(t *testing.T) {
	t.Parallel()

	activity := richpresence.NewActivity().
		WithParty(richpresence.NewParty().WithSize(3, 10))

	assert.JSONEq(t, `{"party":{"size":[3,10]}}`, render(t, activity))
}

func TestPartySizeRoundTrip(t *testing.T) {
	t.Parallel()

	size := richpresence.PartySize{CurrentSize: 3, MaxSize: 10}

	payload, err := richjson.Marshal(size)
	assert.NoError(t, err)
	assert.Equal(t, "[3,10]", string(payload))

	var decoded richpresence.PartySize
	assert.NoError(t, richjson.Unmarshal(payload, &decoded))
	assert.Equal(t, size, decoded)
}

func TestPartySizeRejectsWrongArity(t *testing.T) {
	t.Parallel()

	var size richpresence.PartySize

	assert.Error(t, size.UnmarshalJSON([]byte("[3]")))
	assert.Error(t, size.UnmarshalJSON([]byte("[3,10,30]")))
	assert.Error(t, size.UnmarshalJSON([]byte(`"3,10"`)))
}
