package json

import (
	"fmt"
	"reflect"
	"time"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

// Timestamps travel as RFC 3339 text with fractional seconds and a
// mandatory zone offset ("Z" counts). The value's own offset is kept on
// both sides of the trip, never normalized to UTC or local.
const timeLayout = time.RFC3339Nano

var timeGoType = reflect.TypeOf(time.Time{})

// FormatTimestamp renders t in the wire layout, e.g.
// "2018-04-26T14:48:09.769-04:00".
func FormatTimestamp(t time.Time) string {
	return t.Format(timeLayout)
}

// ParseTimestamp parses a wire timestamp. A string without an explicit
// offset, or any other calendar representation, is an error — never
// silently defaulted.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %v", s, err)
	}
	return t, nil
}

// timestampExtension swaps the engine's default time.Time handling for the
// wire layout above. Registered once per Mapper at construction.
type timestampExtension struct {
	jsoniter.DummyExtension
}

func (*timestampExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if typ.Type1() == timeGoType {
		return timestampCodec{}
	}
	return nil
}

func (*timestampExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if typ.Type1() == timeGoType {
		return timestampCodec{}
	}
	return nil
}

type timestampCodec struct{}

func (timestampCodec) IsEmpty(ptr unsafe.Pointer) bool {
	return (*time.Time)(ptr).IsZero()
}

func (timestampCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	t := *(*time.Time)(ptr)
	stream.WriteString(t.Format(timeLayout))
}

func (timestampCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	if iter.WhatIsNext() == jsoniter.NilValue {
		iter.ReadNil()
		*(*time.Time)(ptr) = time.Time{}
		return
	}
	t, err := ParseTimestamp(iter.ReadString())
	if err != nil {
		iter.ReportError("timestamp", err.Error())
		return
	}
	*(*time.Time)(ptr) = t
}
