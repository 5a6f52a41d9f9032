package json

import (
	"github.com/unkn0wn-root/eventcodec/encoding"
)

// Name is the content type the codec registers under.
const Name = "application/json"

func init() {
	encoding.RegisterCodec(codec{})
}

// codec exposes the Default mapper through the content-type registry.
type codec struct{}

func (codec) Name() string { return Name }

func (codec) Marshal(v any) ([]byte, error) {
	return Default.EncodeBytes(v)
}

func (codec) Unmarshal(data []byte, v any) error {
	return Default.DecodeInto(string(data), v)
}
