// Package json is the primary data codec: one centrally configured mapper
// shared by every JSON touchpoint in the event library, so field handling
// and the timestamp wire format never drift between call sites.
package json

import (
	"errors"
	"io"
	"reflect"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/unkn0wn-root/eventcodec"
)

const format = "json"

// Default is the process-wide mapper. It is built once at package init with
// the canonical configuration and never reassigned; concurrent use needs no
// locking.
var Default = NewMapper(Options{})

// Options tune a Mapper. The zero value is the canonical configuration.
type Options struct {
	// Logger traces mapper construction and the absent-payload shortcut at
	// Debug. nil => NopLogger.
	Logger eventcodec.Logger
	// AllowUnknownFields accepts payload fields the target type does not
	// declare. Off by default: a payload that does not match its type is a
	// decode failure, not data to drop.
	AllowUnknownFields bool
}

// Mapper is an immutable JSON configuration. Build with NewMapper; all
// methods are safe for concurrent use.
type Mapper struct {
	api jsoniter.API
	log eventcodec.Logger
}

// NewMapper freezes a configuration and registers the timestamp rule.
// Independent mappers share nothing, so tests can configure their own
// without touching Default.
func NewMapper(opts Options) *Mapper {
	api := jsoniter.Config{
		EscapeHTML:             false,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
		CaseSensitive:          true,
		DisallowUnknownFields:  !opts.AllowUnknownFields,
	}.Froze()
	api.RegisterExtension(&timestampExtension{})

	m := &Mapper{
		api: api,
		log: eventcodec.Coalesce[eventcodec.Logger](opts.Logger, eventcodec.NopLogger{}),
	}
	m.log.Debug("json mapper configured", eventcodec.Fields{
		"allow_unknown_fields": opts.AllowUnknownFields,
	})
	return m
}

// Encode serializes v (including nil, which yields "null") to JSON text.
// Failures surface as *eventcodec.EncodeError; nothing partial is returned.
func (m *Mapper) Encode(v any) (string, error) {
	s, err := m.api.MarshalToString(v)
	if err != nil {
		return "", &eventcodec.EncodeError{Format: format, Cause: err}
	}
	return s, nil
}

// EncodeBytes is Encode with a []byte result.
func (m *Mapper) EncodeBytes(v any) ([]byte, error) {
	b, err := m.api.Marshal(v)
	if err != nil {
		return nil, &eventcodec.EncodeError{Format: format, Cause: err}
	}
	return b, nil
}

// DecodeInto parses text into v, which must be a non-nil pointer. Empty or
// blank text leaves v untouched and returns nil: an absent payload decodes
// to the zero value by design, it is not an error. On failure v's contents
// are unspecified; prefer the typed entry points, which guarantee a zero
// result.
func (m *Mapper) DecodeInto(text string, v any) error {
	text = strings.TrimSpace(text)
	if text == "" {
		m.log.Debug("absent payload, keeping zero value", nil)
		return nil
	}
	if err := m.api.UnmarshalFromString(text, v); err != nil {
		return &eventcodec.DecodeError{Format: format, Cause: err}
	}
	return nil
}

// Decode parses text into a T. Empty/blank text returns the zero T with no
// error (see DecodeInto); malformed JSON or a structural mismatch with T
// returns the zero T and a *eventcodec.DecodeError wrapping the parser
// diagnostic.
func Decode[T any](m *Mapper, text string) (T, error) {
	var v T
	if err := m.DecodeInto(text, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// DecodeAs parses text into a value of the given runtime type descriptor.
// It exists for call sites where the target shape is only known dynamically
// (a list or map of some element type picked at runtime); when the type is
// known at compile time use Decode. Same shortcut and error policy as
// Decode; the result is the descriptor's zero value for absent input.
func (m *Mapper) DecodeAs(text string, typ reflect.Type) (any, error) {
	if typ == nil {
		return nil, &eventcodec.DecodeError{Format: format, Cause: errors.New("nil target type")}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		m.log.Debug("absent payload, keeping zero value", nil)
		return reflect.Zero(typ).Interface(), nil
	}
	target := reflect.New(typ)
	if err := m.api.UnmarshalFromString(text, target.Interface()); err != nil {
		return nil, &eventcodec.DecodeError{Format: format, Cause: err}
	}
	return target.Elem().Interface(), nil
}

// DecodeStream parses one JSON value from r into a T. Unlike Decode there
// is no absent-input shortcut: the caller controls the stream, so an empty
// or exhausted stream is a decode failure — an intentionally absent value
// is expressed by not calling this at all. No timeout is imposed beyond
// r's own behavior.
func DecodeStream[T any](m *Mapper, r io.Reader) (T, error) {
	var v T
	if err := m.api.NewDecoder(r).Decode(&v); err != nil {
		var zero T
		return zero, &eventcodec.DecodeError{Format: format, Cause: err}
	}
	return v, nil
}
