package record

import (
	"bytes"
	"fmt"
	"unicode"

	json "github.com/goccy/go-json"
)

// documentIndent matches the pretty-printing of the enrichment pipeline's
// documents: four-space indentation, one field per line.
const documentIndent = "    "

// EncodeDocument serializes a document to pretty-printed JSON. Non-ASCII
// text is emitted literally so values survive a full round-trip
// byte-identically; HTML characters are not escaped either.
func EncodeDocument(doc Document) ([]byte, error) {
	if doc == nil {
		// A document with no records is still an array, not null.
		doc = Document{}
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", documentIndent)

	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	return buf.Bytes(), nil
}

// DecodeDocument parses a document: a JSON array of flat objects. Any
// other top-level shape, nested values, or trailing content is an error.
func DecodeDocument(data []byte) (Document, error) {
	trimmed := bytes.TrimLeftFunc(data, unicode.IsSpace)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("document must be a JSON array of records")
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	return doc, nil
}

// MarshalJSON implements json.Marshaler, writing fields in insertion
// order with minimal string escaping (quotes, backslashes, control
// characters). Non-ASCII runes pass through untouched.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		writeJSONString(&buf, k)
		buf.WriteByte(':')
		writeJSONString(&buf, r.vals[k])
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler via a token walk so key order
// survives decoding. Values must be scalars: numbers and booleans are
// kept by their literal, null becomes the empty string. Nested objects
// or arrays are rejected.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("record must be a JSON object, got %v", tok)
	}

	*r = Record{}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to decode record key: %w", err)
		}

		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("record key must be a string, got %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to decode record field %q: %w", key, err)
		}

		switch v := valTok.(type) {
		case string:
			r.Set(key, v)
		case json.Number:
			r.Set(key, v.String())
		case bool:
			if v {
				r.Set(key, "true")
			} else {
				r.Set(key, "false")
			}
		case nil:
			r.Set(key, "")
		default:
			return fmt.Errorf("record field %q: nested values are not supported", key)
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}

	return nil
}

const hexDigits = "0123456789abcdef"

// writeJSONString quotes s with the minimal escaping JSON requires.
func writeJSONString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')

	for _, c := range []byte(s) {
		switch {
		case c == '"':
			buf.WriteString(`\"`)
		case c == '\\':
			buf.WriteString(`\\`)
		case c == '\n':
			buf.WriteString(`\n`)
		case c == '\r':
			buf.WriteString(`\r`)
		case c == '\t':
			buf.WriteString(`\t`)
		case c < 0x20:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexDigits[c>>4])
			buf.WriteByte(hexDigits[c&0xf])
		default:
			buf.WriteByte(c)
		}
	}

	buf.WriteByte('"')
}
