package eventcodec

import (
	"fmt"
)

// EncodeError reports that a value could not be serialized. It always wraps
// the underlying cause; Format names the codec that failed ("json", "cbor").
type EncodeError struct {
	Format string
	Cause  error
}

func (e *EncodeError) Error() string {
	if e.Format != "" {
		return fmt.Sprintf("eventcodec: %s encode failed: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("eventcodec: encode failed: %v", e.Cause)
}

func (e *EncodeError) Unwrap() error { return e.Cause }

// DecodeError reports that a payload could not be parsed, or parsed but did
// not structurally match the requested type. Timestamp strings failing the
// offset requirement surface here too.
type DecodeError struct {
	Format string
	Cause  error
}

func (e *DecodeError) Error() string {
	if e.Format != "" {
		return fmt.Sprintf("eventcodec: %s decode failed: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("eventcodec: decode failed: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }
