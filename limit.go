package eventcodec

import "fmt"

// LimitUnmarshaller wraps inner to reject payloads longer than maxLen bytes
// before any decoding work happens. If maxLen <= 0, limiting is disabled.
//
// Typical use: events arriving from a shared broker or untrusted source.
func LimitUnmarshaller[P ~string | ~[]byte, T any](inner DataUnmarshaller[P, T], maxLen int) DataUnmarshaller[P, T] {
	return UnmarshallerFunc[P, T](func(payload P, attrs Attributes) (T, error) {
		if maxLen > 0 && len(payload) > maxLen {
			var zero T
			return zero, &DecodeError{Cause: fmt.Errorf("payload too large: %d > %d", len(payload), maxLen)}
		}
		return inner.Unmarshal(payload, attrs)
	})
}
