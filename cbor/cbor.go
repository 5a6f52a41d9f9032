// Package cbor provides CBOR-backed data marshallers for the event library,
// interchangeable with the JSON ones through the same contracts.
package cbor

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/unkn0wn-root/eventcodec"
	"github.com/unkn0wn-root/eventcodec/encoding"
)

// Name is the content type the default codec registers under.
const Name = "application/cbor"

const format = "cbor"

func init() {
	encoding.RegisterCodec(Must(false))
}

// Codec pairs frozen CBOR encode/decode modes. The zero value is NOT ready
// to use; construct with New or Must.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core
// Deterministic) when byte-for-byte stable outputs matter. Timestamps are
// encoded as RFC3339Nano text so the zone offset survives the round trip,
// matching the JSON temporal rule.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// New constructs a Codec. Deterministic selects CoreDetEncOptions,
// otherwise PreferredUnsortedEncOptions (smaller/faster defaults).
func New(deterministic bool) (*Codec, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	eo.Time = cbor.TimeRFC3339Nano

	em, err := eo.EncMode()
	if err != nil {
		return nil, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return nil, err
	}
	return &Codec{enc: em, dec: dm}, nil
}

// Must is like New but panics on error. Handy for package-level variables;
// the option set used here cannot actually fail to freeze.
func Must(deterministic bool) *Codec {
	c, err := New(deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Codec) Name() string { return Name }

func (c *Codec) Marshal(v any) ([]byte, error) {
	b, err := c.enc.Marshal(v)
	if err != nil {
		return nil, &eventcodec.EncodeError{Format: format, Cause: err}
	}
	return b, nil
}

func (c *Codec) Unmarshal(data []byte, v any) error {
	if err := c.dec.Unmarshal(data, v); err != nil {
		return &eventcodec.DecodeError{Format: format, Cause: err}
	}
	return nil
}

// Unmarshaller binds T to c behind the event library's capability contract.
// Attributes are ignored. There is no absent-payload shortcut: an empty
// byte slice is not valid CBOR and decodes to an error.
func Unmarshaller[T any](c *Codec) eventcodec.DataUnmarshaller[[]byte, T] {
	return eventcodec.UnmarshallerFunc[[]byte, T](func(payload []byte, _ eventcodec.Attributes) (T, error) {
		var v T
		if err := c.Unmarshal(payload, &v); err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	})
}

// Marshaller binds T to c's encode path. Headers are ignored.
func Marshaller[T any](c *Codec) eventcodec.DataMarshaller[[]byte, T] {
	return eventcodec.MarshallerFunc[[]byte, T](func(data T, _ map[string]any) ([]byte, error) {
		return c.Marshal(data)
	})
}
