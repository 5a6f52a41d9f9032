package eventcodec

// DataUnmarshaller turns a serialized payload plus the event's attributes
// into a typed data value. P is the payload form (string for text formats,
// []byte for binary ones); T is the decoded data type.
//
// Implementations must be stateless: one unmarshaller may serve many events
// from many goroutines concurrently.
type DataUnmarshaller[P, T any] interface {
	Unmarshal(payload P, attrs Attributes) (T, error)
}

// DataMarshaller turns a typed data value into a serialized payload.
// headers carry transport metadata a format may want to stamp; most
// implementations ignore them.
type DataMarshaller[P, T any] interface {
	Marshal(data T, headers map[string]any) (P, error)
}

// UnmarshallerFunc adapts a plain function to DataUnmarshaller, so factories
// can return closures instead of a named type per call site.
type UnmarshallerFunc[P, T any] func(payload P, attrs Attributes) (T, error)

func (f UnmarshallerFunc[P, T]) Unmarshal(payload P, attrs Attributes) (T, error) {
	return f(payload, attrs)
}

// MarshallerFunc adapts a plain function to DataMarshaller.
type MarshallerFunc[P, T any] func(data T, headers map[string]any) (P, error)

func (f MarshallerFunc[P, T]) Marshal(data T, headers map[string]any) (P, error) {
	return f(data, headers)
}
