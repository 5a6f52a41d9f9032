// Package encoding keeps a process-wide registry of data codecs keyed by
// content type, so the event library can pick a format at runtime from the
// event's declared datacontenttype instead of hard-coding one.
//
// Format packages register themselves in init():
//
//	import _ "github.com/unkn0wn-root/eventcodec/json"
package encoding

import (
	"strings"
	"sync"

	"github.com/unkn0wn-root/eventcodec"
)

// Codec serializes arbitrary values to bytes and back for one content type.
type Codec interface {
	// Name returns the content type this codec is registered under,
	// e.g. "application/json".
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Codec)
	log      eventcodec.Logger = eventcodec.NopLogger{}
)

// SetLogger installs a logger for registration events. Call before
// RegisterCodec if you want registrations traced; nil restores NopLogger.
func SetLogger(l eventcodec.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = eventcodec.Coalesce[eventcodec.Logger](l, eventcodec.NopLogger{})
}

// RegisterCodec makes c available to GetCodec under c.Name(). Registration
// normally happens at package init; a later registration under the same
// name wins. Panics on a nil codec or an empty name since that is a
// programmer error no caller can recover from.
func RegisterCodec(c Codec) {
	if c == nil {
		panic("encoding: cannot register a nil codec")
	}
	name := canonical(c.Name())
	if name == "" {
		panic("encoding: cannot register a codec with an empty name")
	}
	mu.Lock()
	defer mu.Unlock()
	registry[name] = c
	log.Debug("codec registered", eventcodec.Fields{"content_type": name})
}

// GetCodec returns the codec registered for the given content type, or nil.
// Lookup is case-insensitive and ignores media type parameters, so
// "application/json; charset=utf-8" finds the JSON codec.
func GetCodec(contentType string) Codec {
	mu.RLock()
	defer mu.RUnlock()
	return registry[canonical(contentType)]
}

// ForAttributes selects a codec from the event's declared content type,
// falling back to the codec registered under fallback when the event
// declares none or an unknown one. Returns nil only if the fallback itself
// is unregistered.
func ForAttributes(attrs eventcodec.Attributes, fallback string) Codec {
	if attrs != nil {
		if ct, ok := attrs.DataContentType(); ok {
			if c := GetCodec(ct); c != nil {
				return c
			}
		}
	}
	return GetCodec(fallback)
}

// canonical strips media type parameters and lowercases: the registry key
// for "Application/JSON; charset=utf-8" is "application/json".
func canonical(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
