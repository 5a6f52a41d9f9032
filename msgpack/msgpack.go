// Package msgpack provides Msgpack-backed data marshallers for the event
// library. Compact and fast; be mindful of struct tag differences vs JSON —
// use `msgpack:"fieldName"` tags for explicit control.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/unkn0wn-root/eventcodec"
	"github.com/unkn0wn-root/eventcodec/encoding"
)

// Name is the content type the codec registers under.
const Name = "application/msgpack"

const format = "msgpack"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec serializes values with vmihailenco/msgpack/v5. The zero value is
// ready to use.
type Codec struct{}

func (Codec) Name() string { return Name }

func (Codec) Marshal(v any) ([]byte, error) {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return nil, &eventcodec.EncodeError{Format: format, Cause: err}
	}
	return b, nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	if err := msgpack.Unmarshal(data, v); err != nil {
		return &eventcodec.DecodeError{Format: format, Cause: err}
	}
	return nil
}

// Unmarshaller binds T to the msgpack decode path. Attributes are ignored;
// an empty payload is a decode error, not an absence marker.
func Unmarshaller[T any]() eventcodec.DataUnmarshaller[[]byte, T] {
	return eventcodec.UnmarshallerFunc[[]byte, T](func(payload []byte, _ eventcodec.Attributes) (T, error) {
		var v T
		if err := (Codec{}).Unmarshal(payload, &v); err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	})
}

// Marshaller binds T to the msgpack encode path. Headers are ignored.
func Marshaller[T any]() eventcodec.DataMarshaller[[]byte, T] {
	return eventcodec.MarshallerFunc[[]byte, T](func(data T, _ map[string]any) ([]byte, error) {
		return (Codec{}).Marshal(data)
	})
}
