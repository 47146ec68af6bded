package instance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }
func intptr(n int) *int       { return &n }

func TestParseMetaDocument(t *testing.T) {
	body := []byte(`{
		"softwareName": "misskey",
		"name": "Example",
		"version": "2024.10",
		"maintainerEmail": "admin@example.social",
		"maxNoteTextLength": 3000,
		"serverRules": ["Be nice", "No spam"],
		"unknownField": {"nested": true}
	}`)

	doc, err := ParseMetaDocument(body)
	require.NoError(t, err)
	require.NotNil(t, doc.SoftwareName)
	assert.Equal(t, "misskey", *doc.SoftwareName)
	require.NotNil(t, doc.MaxNoteTextLength)
	assert.Equal(t, 3000, *doc.MaxNoteTextLength)
	assert.Equal(t, []string{"Be nice", "No spam"}, doc.ServerRules)
	assert.Nil(t, doc.Description)
}

func TestParseMetaDocumentNotJSON(t *testing.T) {
	_, err := ParseMetaDocument([]byte("<!doctype html>"))
	assert.Error(t, err)
}

func TestMapMetadata(t *testing.T) {
	mapper := NewMapper()

	doc := &MetaDocument{
		Name:              strptr("Example"),
		Version:           strptr("1.0"),
		RepositoryURL:     strptr("https://example.com/repo"),
		MaxNoteTextLength: intptr(500),
		ServerRules:       []string{"one", "two"},
	}

	meta := mapper.MapMetadata(doc)
	assert.Equal(t, "Example", meta.Name)
	assert.Equal(t, "", meta.SoftwareName)
	assert.Equal(t, "1.0", meta.Version)
	assert.Equal(t, 500, meta.MaxNoteTextLength)
	assert.Equal(t, []string{"one", "two"}, meta.ServerRules)

	// Rules are copied, not aliased.
	doc.ServerRules[0] = "mutated"
	assert.Equal(t, "one", meta.ServerRules[0])
}

func TestMapMetadataNil(t *testing.T) {
	meta := NewMapper().MapMetadata(nil)
	require.NotNil(t, meta)
	assert.False(t, meta.HasRules())
}

func TestMapMetadataNegativeNoteLengthIgnored(t *testing.T) {
	meta := NewMapper().MapMetadata(&MetaDocument{MaxNoteTextLength: intptr(-1)})
	assert.Equal(t, 0, meta.MaxNoteTextLength)
}
