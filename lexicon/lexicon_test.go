package lexicon

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkSmall(t *testing.T, l *Lexicon) {
	t.Helper()
	require.Equal(t, 3, l.Len())

	got := l.Lookup("ганку")
	require.Len(t, got, 2)
	assert.Equal(t, Entry{Flags: "noun:inanim:m:v_rod", Lemma: "ганок", LemmaFlags: "noun:inanim:m:v_naz"}, got[0])
	assert.Equal(t, "noun:inanim:m:v_dav", got[1].Flags)

	assert.Len(t, l.Lookup("робити"), 1)
	assert.Empty(t, l.Lookup("Робити"), "lookup is case-sensitive")
	assert.Empty(t, l.Lookup("київ"))

	assert.True(t, l.HasAnyCase("київ"))
	assert.True(t, l.HasAnyCase("РОБЛЮ"))
	assert.False(t, l.HasAnyCase("зробити"))

	lexemes := l.LookupLexemesByLemma("робити")
	require.Len(t, lexemes, 1)
	assert.Len(t, lexemes[0], 3)
	assert.Equal(t, "робити", lexemes[0].Lemma().Form)
	assert.Nil(t, l.LookupLexemesByLemma("нема"))
}

func TestLoadFile(t *testing.T) {
	l, err := LoadFile(filepath.Join("testdata", "small.txt"))
	require.NoError(t, err)
	checkSmall(t, l)
}

func TestLoadYAMLFile(t *testing.T) {
	l, err := LoadYAMLFile(filepath.Join("testdata", "small.yaml"))
	require.NoError(t, err)
	checkSmall(t, l)
}

func TestOpenDispatch(t *testing.T) {
	ctx := context.Background()

	l, err := Open(ctx, filepath.Join("testdata", "small.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())

	_, err = Open(ctx, "lexicon.bin")
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	_, err = Open(ctx, filepath.Join("testdata", "missing.txt"))
	assert.Error(t, err)
}

func TestLoadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	l, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too many fields", "робити verb:imperf:inf зайве\n"},
		{"bare word", "робити\n"},
		{"orphan form", "  роблю verb:imperf:pres:s:1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			assert.True(t, errors.Is(err, ErrMalformedLine), "got %v", err)
		})
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	l, err := LoadFile(filepath.Join("testdata", "small.txt"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, l))

	again, err := Read(&buf)
	require.NoError(t, err)
	checkSmall(t, again)
}

func TestAddSkipsDuplicateReadings(t *testing.T) {
	l := New()
	l.Add(Lexeme{{"кіт", "noun:anim:m:v_naz"}, {"кіт", "noun:anim:m:v_naz"}})
	l.Add(nil)
	assert.Len(t, l.Lookup("кіт"), 1)
	assert.Equal(t, 1, l.Len())
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	src, err := LoadFile(filepath.Join("testdata", "small.txt"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "lexicon.db")
	require.NoError(t, SaveSQLite(ctx, src, path))
	// Saving twice replaces the previous content.
	require.NoError(t, SaveSQLite(ctx, src, path))

	l, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	checkSmall(t, l)

	viaOpen, err := Open(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, viaOpen.Len())
}
