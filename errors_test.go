package richpresence_test

import (
	"errors"
	"fmt"
	"testing"

	richpresence "github.com/WelcomerTeam/RichPresence"
	"github.com/stretchr/testify/assert"
)

func TestRemoteRejectionDecodesEnvelope(t *testing.T) {
	t.Parallel()

	body := []byte(`{"code":4000,"message":"buttons: must contain at most 2 items"}`)
	rejection := richpresence.NewRemoteRejection(body)

	assert.Equal(t, int32(4000), rejection.Message.Code)
	assert.Equal(t, "activity rejected by remote peer: buttons: must contain at most 2 items", rejection.Error())
	assert.Equal(t, body, rejection.ResponseBody)
}

func TestRemoteRejectionKeepsUnknownBody(t *testing.T) {
	t.Parallel()

	body := []byte("not json")
	rejection := richpresence.NewRemoteRejection(body)

	assert.Equal(t, body, rejection.ResponseBody)
	assert.Empty(t, rejection.Message.Message)
}

func TestRemoteRejectionMatchesErrorsAs(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("submitting activity: %w",
		richpresence.NewRemoteRejection([]byte(`{"code":4006,"message":"invalid payload"}`)))

	var rejection *richpresence.RemoteRejection
	assert.True(t, errors.As(err, &rejection))
	assert.Equal(t, int32(4006), rejection.Message.Code)
}
