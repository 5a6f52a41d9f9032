// Package protobuf provides Protobuf-backed data marshallers for the event
// library. Unlike the reflection-driven formats, decoding needs a message
// constructor for the concrete type.
package protobuf

import (
	"fmt"

	"google.golang.org/protobuf/proto"

	"github.com/unkn0wn-root/eventcodec"
	"github.com/unkn0wn-root/eventcodec/encoding"
)

// Name is the content type the codec registers under.
const Name = "application/protobuf"

const format = "protobuf"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Unmarshaller binds a concrete message type to the proto decode path.
// ctor builds an empty message to decode into
// (e.g. func() *mypb.User { return &mypb.User{} }). Attributes are ignored.
func Unmarshaller[T proto.Message](ctor func() T) eventcodec.DataUnmarshaller[[]byte, T] {
	return eventcodec.UnmarshallerFunc[[]byte, T](func(payload []byte, _ eventcodec.Attributes) (T, error) {
		m := ctor()
		if err := proto.Unmarshal(payload, m); err != nil {
			var zero T
			return zero, &eventcodec.DecodeError{Format: format, Cause: err}
		}
		return m, nil
	})
}

// Marshaller binds a message type to the proto encode path. Headers are
// ignored.
func Marshaller[T proto.Message]() eventcodec.DataMarshaller[[]byte, T] {
	return eventcodec.MarshallerFunc[[]byte, T](func(data T, _ map[string]any) ([]byte, error) {
		b, err := proto.Marshal(data)
		if err != nil {
			return nil, &eventcodec.EncodeError{Format: format, Cause: err}
		}
		return b, nil
	})
}

// Codec is the registry-facing codec. Values must implement proto.Message;
// anything else is an encode/decode error, since proto has no reflection
// path for arbitrary Go values.
type Codec struct{}

func (Codec) Name() string { return Name }

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return nil, &eventcodec.EncodeError{Format: format, Cause: fmt.Errorf("%T does not implement proto.Message", v)}
	}
	b, err := proto.Marshal(m)
	if err != nil {
		return nil, &eventcodec.EncodeError{Format: format, Cause: err}
	}
	return b, nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(proto.Message)
	if !ok {
		return &eventcodec.DecodeError{Format: format, Cause: fmt.Errorf("%T does not implement proto.Message", v)}
	}
	if err := proto.Unmarshal(data, m); err != nil {
		return &eventcodec.DecodeError{Format: format, Cause: err}
	}
	return nil
}
