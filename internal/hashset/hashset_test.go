package hashset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type word struct {
	text string
	note string
}

func wordKey(w word) string { return strings.ToLower(w.text) }

func TestAddDeduplicatesByKey(t *testing.T) {
	s := New(wordKey)

	assert.True(t, s.Add(word{"Кіт", "first"}))
	assert.False(t, s.Add(word{"кіт", "second"}))
	assert.True(t, s.Add(word{"пес", ""}))

	require.Equal(t, 2, s.Len())
	assert.Equal(t, "first", s.Values()[0].note, "the first inserted element wins")
}

func TestNewWithItems(t *testing.T) {
	s := New(wordKey, word{text: "a"}, word{text: "A"}, word{text: "b"})
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(word{text: "B"}))
	assert.False(t, s.Has(word{text: "c"}))
}

func TestAddAllCountsNew(t *testing.T) {
	s := New(wordKey, word{text: "a"})
	n := s.AddAll([]word{{text: "a"}, {text: "b"}, {text: "c"}, {text: "C"}})
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, s.Len())
}

func TestInsertionOrder(t *testing.T) {
	s := New(wordKey)
	for _, w := range []string{"в", "а", "б", "а"} {
		s.Add(word{text: w})
	}

	var got []string
	for w := range s.All {
		got = append(got, w.text)
	}
	assert.Equal(t, []string{"в", "а", "б"}, got)
}

func TestAllStopsEarly(t *testing.T) {
	s := New(wordKey, word{text: "a"}, word{text: "b"}, word{text: "c"})
	n := 0
	for range s.All {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestReplace(t *testing.T) {
	s := New(wordKey, word{text: "a"}, word{text: "b"})

	t.Run("same key", func(t *testing.T) {
		require.True(t, s.Replace(word{text: "a"}, word{text: "A", note: "upd"}))
		assert.Equal(t, "upd", s.Values()[0].note)
	})

	t.Run("new key keeps position", func(t *testing.T) {
		require.True(t, s.Replace(word{text: "a"}, word{text: "z"}))
		assert.Equal(t, "z", s.Values()[0].text)
		assert.False(t, s.Has(word{text: "a"}))
		assert.True(t, s.Has(word{text: "z"}))
	})

	t.Run("collision refused", func(t *testing.T) {
		assert.False(t, s.Replace(word{text: "z"}, word{text: "b"}))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("missing", func(t *testing.T) {
		assert.False(t, s.Replace(word{text: "q"}, word{text: "r"}))
	})
}

func TestValuesIsCopy(t *testing.T) {
	s := New(wordKey, word{text: "a"})
	vs := s.Values()
	vs[0].text = "changed"
	assert.Equal(t, "a", s.Values()[0].text)
}
