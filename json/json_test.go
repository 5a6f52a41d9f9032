package json

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/unkn0wn-root/eventcodec"
)

type record struct {
	ID string `json:"id"`
}

type user struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Tags []string `json:"tags,omitempty"`
}

func mustEncode(t *testing.T, m *Mapper, v any) string {
	t.Helper()
	s, err := m.Encode(v)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	return s
}

func wantDecodeError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected decode error, got nil")
	}
	var de *eventcodec.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *eventcodec.DecodeError, got %T: %v", err, err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := user{ID: "u-1", Name: "ada", Tags: []string{"a", "b"}}
	text := mustEncode(t, Default, in)

	out, err := Decode[user](Default, text)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip mismatch: got %+v want %+v", out, in)
	}
}

func TestEncodeConcreteRecord(t *testing.T) {
	text := mustEncode(t, Default, record{ID: "123"})
	if text != `{"id":"123"}` {
		t.Fatalf("got %q want %q", text, `{"id":"123"}`)
	}
	back, err := Decode[record](Default, text)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if back != (record{ID: "123"}) {
		t.Fatalf("got %+v", back)
	}
}

func TestEncodeNil(t *testing.T) {
	if got := mustEncode(t, Default, nil); got != "null" {
		t.Fatalf("got %q want null", got)
	}
}

func TestDecodeAbsentInputShortcut(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t ", " \r\n"} {
		v, err := Decode[user](Default, text)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", text, err)
		}
		if !reflect.DeepEqual(v, user{}) {
			t.Fatalf("Decode(%q) = %+v, want zero value", text, v)
		}

		p, err := Decode[*user](Default, text)
		if err != nil {
			t.Fatalf("Decode[*user](%q) error: %v", text, err)
		}
		if p != nil {
			t.Fatalf("Decode[*user](%q) = %v, want nil", text, p)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode[user](Default, "{invalid json")
	wantDecodeError(t, err)

	// diagnostic from the parser must survive the wrapping
	if !strings.Contains(err.Error(), "decode failed") {
		t.Fatalf("unexpected error text: %v", err)
	}
}

func TestDecodeShapeMismatch(t *testing.T) {
	cases := []string{
		`[1,2,3]`,         // array into struct
		`{"id": 7}`,       // number into string field
		`"just a string"`, // scalar into struct
	}
	for _, text := range cases {
		_, err := Decode[record](Default, text)
		if err == nil {
			t.Fatalf("Decode(%q): expected error", text)
		}
		wantDecodeError(t, err)
	}
}

func TestDecodeUnknownFields(t *testing.T) {
	const text = `{"id":"1","extra":true}`

	if _, err := Decode[record](Default, text); err == nil {
		t.Fatalf("default mapper should reject unknown fields")
	}

	lenient := NewMapper(Options{AllowUnknownFields: true})
	got, err := Decode[record](lenient, text)
	if err != nil {
		t.Fatalf("lenient Decode error: %v", err)
	}
	if got.ID != "1" {
		t.Fatalf("got %+v", got)
	}
}

func TestDecodeAsList(t *testing.T) {
	got, err := Default.DecodeAs(`[{"id":"a"},{"id":"b"}]`, reflect.TypeOf([]record(nil)))
	if err != nil {
		t.Fatalf("DecodeAs error: %v", err)
	}
	list, ok := got.([]record)
	if !ok {
		t.Fatalf("got %T, want []record", got)
	}
	if len(list) != 2 || list[0].ID != "a" || list[1].ID != "b" {
		t.Fatalf("got %+v", list)
	}
}

func TestDecodeAsTypedMap(t *testing.T) {
	got, err := Default.DecodeAs(`{"x":{"id":"1"}}`, reflect.TypeOf(map[string]record(nil)))
	if err != nil {
		t.Fatalf("DecodeAs error: %v", err)
	}
	m, ok := got.(map[string]record)
	if !ok {
		t.Fatalf("got %T, want map[string]record", got)
	}
	if m["x"].ID != "1" {
		t.Fatalf("got %+v", m)
	}
}

func TestDecodeAsAbsentInput(t *testing.T) {
	got, err := Default.DecodeAs("  ", reflect.TypeOf([]record(nil)))
	if err != nil {
		t.Fatalf("DecodeAs error: %v", err)
	}
	list, ok := got.([]record)
	if !ok || list != nil {
		t.Fatalf("got %T %v, want nil []record", got, got)
	}
}

func TestDecodeAsNilType(t *testing.T) {
	_, err := Default.DecodeAs(`{}`, nil)
	wantDecodeError(t, err)
}

func TestDecodeAsMalformed(t *testing.T) {
	_, err := Default.DecodeAs(`{nope`, reflect.TypeOf(record{}))
	wantDecodeError(t, err)
}

func TestDecodeStream(t *testing.T) {
	got, err := DecodeStream[user](Default, strings.NewReader(`{"id":"u-2","name":"lin"}`))
	if err != nil {
		t.Fatalf("DecodeStream error: %v", err)
	}
	if got.ID != "u-2" || got.Name != "lin" {
		t.Fatalf("got %+v", got)
	}
}

func TestDecodeStreamEmptyIsError(t *testing.T) {
	// no absent-input shortcut on the stream path
	for _, src := range []string{"", "   \n"} {
		_, err := DecodeStream[user](Default, strings.NewReader(src))
		wantDecodeError(t, err)
	}
}

func TestDecodeStreamMalformed(t *testing.T) {
	_, err := DecodeStream[user](Default, strings.NewReader("{broken"))
	wantDecodeError(t, err)
}

func TestSharedMapperConcurrentUse(t *testing.T) {
	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				in := user{ID: fmt.Sprintf("u-%d-%d", n, j), Name: "w"}
				text, err := Default.Encode(in)
				if err != nil {
					t.Errorf("Encode: %v", err)
					return
				}
				out, err := Decode[user](Default, text)
				if err != nil {
					t.Errorf("Decode: %v", err)
					return
				}
				if out.ID != in.ID {
					t.Errorf("got %q want %q", out.ID, in.ID)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
