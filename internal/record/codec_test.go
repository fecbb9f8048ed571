package record

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Document {
	var a, b Record
	a.Set("companyName", "Acme")
	a.Set("emailAddress", "a@x.com")
	a.Set("enrichmentStatus", "Success")
	b.Set("companyName", "Müller & Söhne")
	b.Set("errorMessage", "")

	return Document{a, b}
}

func TestEncodeDocument(t *testing.T) {
	out, err := EncodeDocument(sample())
	require.NoError(t, err)

	want := `[
    {
        "companyName": "Acme",
        "emailAddress": "a@x.com",
        "enrichmentStatus": "Success"
    },
    {
        "companyName": "Müller & Söhne",
        "errorMessage": ""
    }
]
`
	assert.Equal(t, want, string(out))
}

func TestEncodeEmptyDocument(t *testing.T) {
	out, err := EncodeDocument(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(out))

	doc, err := DecodeDocument(out)
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestDecodeDocumentPreservesOrder(t *testing.T) {
	doc, err := DecodeDocument([]byte(`[
	    {"b": "2", "a": "1", "c": "3"},
	    {"c": "only"}
	]`))
	require.NoError(t, err)
	require.Len(t, doc, 2)

	assert.Equal(t, []string{"b", "a", "c"}, doc[0].Keys())
	assert.Equal(t, []string{"c"}, doc[1].Keys())

	v, ok := doc[0].Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = doc[1].Get("a")
	assert.False(t, ok, "absent fields must be absent keys:\n%s", spew.Sdump(doc))
}

func TestRoundTripBytesIdentical(t *testing.T) {
	out, err := EncodeDocument(sample())
	require.NoError(t, err)

	doc, err := DecodeDocument(out)
	require.NoError(t, err)

	again, err := EncodeDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, string(out), string(again))
}

func TestDecodeScalarCoercion(t *testing.T) {
	doc, err := DecodeDocument([]byte(`[{"n": 42, "f": 1.5, "b": true, "x": null}]`))
	require.NoError(t, err)
	require.Len(t, doc, 1)

	for key, want := range map[string]string{"n": "42", "f": "1.5", "b": "true", "x": ""} {
		v, ok := doc[0].Get(key)
		require.True(t, ok, key)
		assert.Equal(t, want, v, key)
	}
}

func TestDecodeDocumentRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"object top level", `{"a": "1"}`},
		{"null top level", `null`},
		{"truncated", `[{"a": "1"`},
		{"nested value", `[{"a": {"b": "1"}}]`},
		{"array value", `[{"a": ["1"]}]`},
		{"non-object element", `["a"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDocument([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestSetOverwriteKeepsPosition(t *testing.T) {
	var r Record
	r.Set("a", "1")
	r.Set("b", "2")
	r.Set("a", "override")

	assert.Equal(t, []string{"a", "b"}, r.Keys())

	v, _ := r.Get("a")
	assert.Equal(t, "override", v)
	assert.Equal(t, 2, r.Len())
}

func TestStringEscaping(t *testing.T) {
	var r Record
	r.Set(`quote"back\slash`, "line\nbreak\ttab\x01")

	out, err := EncodeDocument(Document{r})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"quote\"back\\slash": "line\nbreak\ttab\u0001"`)

	doc, err := DecodeDocument(out)
	require.NoError(t, err)

	v, ok := doc[0].Get(`quote"back\slash`)
	require.True(t, ok)
	assert.Equal(t, "line\nbreak\ttab\x01", v)
}
