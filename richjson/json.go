// Package richjson is the JSON codec used for every payload this module
// renders. sonic only assembles on linux/amd64; every other target falls
// back to json-iterator. Both codecs honour encoding/json struct tags, so
// the rendered shape is identical either way.
package richjson

import (
	"io"
	"runtime"

	"github.com/bytedance/sonic"
	jsoniter "github.com/json-iterator/go"
	gotils_strconv "github.com/savsgio/gotils/strconv"
)

const UseSonic = runtime.GOARCH == "amd64" && runtime.GOOS == "linux"

func Marshal(v any) ([]byte, error) {
	if UseSonic {
		return sonic.Marshal(v)
	}

	return jsoniter.Marshal(v)
}

// MarshalToString renders v and lifts the result into a string without
// copying. The string shares the marshal buffer and must be treated as
// read-only.
func MarshalToString(v any) (string, error) {
	data, err := Marshal(v)
	if err != nil {
		return "", err
	}

	return gotils_strconv.B2S(data), nil
}

func Unmarshal(data []byte, v any) error {
	if UseSonic {
		return sonic.Unmarshal(data, v)
	}

	return jsoniter.Unmarshal(data, v)
}

// UnmarshalReader decodes a single value from reader, for callers that
// stream payloads off a connection rather than holding them in memory.
func UnmarshalReader(reader io.Reader, v any) error {
	if UseSonic {
		return sonic.ConfigDefault.NewDecoder(reader).Decode(v)
	}

	return jsoniter.NewDecoder(reader).Decode(v)
}
