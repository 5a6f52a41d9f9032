package eventcodec

// Attributes is the event's context metadata as seen by data codecs.
// The event library owns the concrete model; this module only ever reads
// the declared content type (and most codecs ignore even that).
type Attributes interface {
	// DataContentType reports the media type declared for the event data,
	// e.g. "application/json". ok is false when none was set.
	DataContentType() (contentType string, ok bool)
}
