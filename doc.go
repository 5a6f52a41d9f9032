// Package eventcodec converts event-envelope data payloads between their
// wire form and typed in-memory values. JSON is the primary format; sibling
// packages provide CBOR, Msgpack and Protobuf behind the same contracts so
// the event library never hard-codes a format.
//
// Components:
//   - DataMarshaller / DataUnmarshaller: format-agnostic capability
//     contracts the event library holds. Stateless; safe to share.
//   - json.Mapper: the shared JSON configuration (field handling, timestamp
//     format). One process-wide Default, or independent instances via
//     json.NewMapper.
//   - encoding: content-type keyed registry for runtime format selection.
//
// Timestamps travel as RFC 3339 strings with an explicit zone offset, and
// the offset is preserved on decode rather than normalized to UTC:
//
//	2018-04-26T14:48:09.769-04:00
//
// All failures surface synchronously as *EncodeError or *DecodeError
// wrapping the underlying cause. The only non-error "miss" is the JSON
// string-decode shortcut: absent input (empty or blank text) decodes to the
// zero value by design, so callers can pass a missing payload through
// without guarding.
package eventcodec
