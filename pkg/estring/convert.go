package estring

// convert.go adds the encoding.TextMarshaler / encoding.TextUnmarshaler pair
// called for in SPEC_FULL.md §C, the Go analogue of the estr crate's
// `impl From<&str> for Estr` / `impl From<Estr> for String` conversions
// (original_source/src/lib.rs). Implementing these interfaces lets a Handle
// be used directly as a struct field with encoding/json, encoding/xml, or
// any other package built on the encoding.Text* contract, without every
// caller writing their own wrapper type.
//
// © 2025 estring authors. MIT License.

import "fmt"

// MarshalText implements encoding.TextMarshaler. It never errors: it returns
// the stored bytes unchanged. Intern does not validate UTF-8, so these are
// exactly the bytes of the string that was interned, whatever they contain.
func (h Handle) MarshalText() ([]byte, error) {
	return h.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by interning text. A
// zero Handle receiving UnmarshalText is the expected case (e.g. a struct
// field being populated by json.Unmarshal for the first time); calling
// UnmarshalText on an already-non-zero Handle simply interns the new text
// and overwrites the receiver, the same way a plain string field would be
// overwritten.
func (h *Handle) UnmarshalText(text []byte) error {
	if h == nil {
		return fmt.Errorf("estring: UnmarshalText called on nil *Handle")
	}
	*h = Intern(string(text))
	return nil
}
