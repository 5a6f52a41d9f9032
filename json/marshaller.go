package json

import (
	"github.com/unkn0wn-root/eventcodec"
)

// Unmarshaller binds T to m's decode path behind the event library's
// capability contract. The event attributes are accepted for contract
// compatibility and deliberately ignored: JSON decoding needs nothing from
// them, though other format adapters may consult them.
func Unmarshaller[T any](m *Mapper) eventcodec.DataUnmarshaller[string, T] {
	return eventcodec.UnmarshallerFunc[string, T](func(payload string, _ eventcodec.Attributes) (T, error) {
		return Decode[T](m, payload)
	})
}

// Marshaller binds T to m's encode path. The header map is ignored for the
// same reason attributes are in Unmarshaller.
func Marshaller[T any](m *Mapper) eventcodec.DataMarshaller[string, T] {
	return eventcodec.MarshallerFunc[string, T](func(data T, _ map[string]any) (string, error) {
		return m.Encode(data)
	})
}
