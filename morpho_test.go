package morpho

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mova-institute/morpho/lexicon"
)

func loadLexicon(t *testing.T) *lexicon.Lexicon {
	t.Helper()
	lex, err := lexicon.LoadYAMLFile(filepath.Join("testdata", "lexicon.yaml"))
	require.NoError(t, err)
	return lex
}

func newAnalyzer(t *testing.T, opts ...Option) (*Analyzer, *lexicon.Lexicon) {
	t.Helper()
	lex := loadLexicon(t)
	a, err := New(lex, opts...)
	require.NoError(t, err)
	return a, lex
}

func strs(tags []Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.Lemma() + " " + t.String()
	}
	return out
}

func find(tags []Tag, pred func(Tag) bool) (Tag, bool) {
	for _, t := range tags {
		if pred(t) {
			return t, true
		}
	}
	return Tag{}, false
}

func TestNew(t *testing.T) {
	_, err := New(nil)
	assert.True(t, errors.Is(err, ErrNoDictionary))

	_, err = New(lexicon.New(), WithCacheSize(0))
	assert.Error(t, err)

	a, _ := newAnalyzer(t)
	assert.Len(t, a.numerals, 7, "forms of перший, п’ятий and десятий")
}

func TestTagDictionary(t *testing.T) {
	a, _ := newAnalyzer(t)

	tests := []struct {
		token string
		want  []string
	}{
		{"робить", []string{"робити verb:imperf:pres:s:3"}},
		{"Робить", []string{"робити verb:imperf:pres:s:3"}},
		{"РОБИТЬ", []string{"робити verb:imperf:pres:s:3"}},
		{"ро\u0301бить", []string{"робити verb:imperf:pres:s:3"}},
		{"Київ", []string{"Київ noun:inanim:m:v_naz:prop:geo"}},
		{"п'ята", []string{"п’ятий adj:f:v_naz:&numr"}},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, strs(a.Tag(tt.token, "")))
		})
	}

	assert.Empty(t, a.Tag("", ""))
	assert.Empty(t, a.Tag("\u0301", ""))
	assert.Empty(t, a.Tag("кіт", ""))
}

func TestTagClosedClass(t *testing.T) {
	a, _ := newAnalyzer(t)
	got := a.Tag("https://example.com", "")
	assert.Equal(t, []string{"https://example.com sym:auto"}, strs(got))
	assert.Equal(t, []string{"XIV numr:roman:auto"}, strs(a.Tag("XIV", "")))
}

func TestTagFallbacks(t *testing.T) {
	a, _ := newAnalyzer(t)

	tests := []struct {
		name  string
		token string
		want  []string
	}{
		{"dialect prefix", "одробив", []string{"одробити verb:perf:past:m:auto:odd"}},
		{"verbal prefix", "зробити", []string{"зробити verb:perf:inf:auto"}},
		{"verbal prefix future", "зробить", []string{"зробити verb:perf:futr:s:3:auto"}},
		{"glued prefix", "автозавод", []string{"автозавод noun:inanim:m:v_naz:auto"}},
		{"compound adjective", "темносиній", []string{"темносиній adj:m:v_naz:auto"}},
		{"plosive", "ґанку", []string{"ґанок noun:inanim:m:v_rod:auto"}},
		{"title case", "київ", []string{"Київ noun:inanim:m:v_naz:prop:geo:auto"}},
		{"anniversary", "сторіччя", []string{"сторіччя noun:inanim:n:v_naz:auto"}},
		{"elative adjective", "якнайсиньому", []string{"якнайсиній adj:m:v_dav:abs:auto"}},
		{"по-X-ськи", "по-батьківськи", []string{"по-батьківськи adv:auto"}},
		{"по- with dative", "по-синьому", []string{"по-синьому adv:auto"}},
		{"upper case", "дз", []string{"ДЗ noun:inanim:n:v_naz:nv:abbr:auto"}},
		{"reflexive converb", "ховаючися", []string{"ховатися advp:imperf:rev:auto"}},
		{"elative adverb", "якнайстаранніш", []string{"якнайстаранніше adv:super:auto"}},
		{"reverse reflexive", "вчитися", []string{"вчитися verb:imperf:inf:rev:auto"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strs(a.Tag(tt.token, "")))
		})
	}
}

func TestTagFirstFallbackWins(t *testing.T) {
	a, _ := newAnalyzer(t)

	// нато is both Нато in title case and НАТО in upper case; the title case
	// retry comes first, so the upper case one never runs.
	assert.Equal(t, []string{"Нато noun:inanim:n:v_naz:nv:prop:auto"}, strs(a.Tag("нато", "")))
	assert.Len(t, a.Tag("НАТО", ""), 2)
}

func TestTagAlwaysAppliedStages(t *testing.T) {
	a, _ := newAnalyzer(t)
	assert.Equal(t, []string{
		"в prep",
		"В. noun:anim:abbr:prop:auto",
		"В. noun:inanim:prop:auto",
		"в. x:abbr:auto",
	}, strs(a.Tag("В", ".")))
}

func TestTagPlosiveLemma(t *testing.T) {
	a, _ := newAnalyzer(t)
	_, ok := find(a.Tag("ґанок", ""), func(t Tag) bool { return t.Lemma() == "ґанок" })
	assert.True(t, ok)
}

func TestTagPrefixPerfective(t *testing.T) {
	a, _ := newAnalyzer(t)
	tag, ok := find(a.Tag("зробити", ""), func(t Tag) bool { return t.Lemma() == "зробити" })
	require.True(t, ok)
	assert.True(t, tag.IsVerb())
	assert.True(t, tag.IsPerfect())
	assert.True(t, tag.IsAuto())
}

func TestTagDigitCompound(t *testing.T) {
	a, _ := newAnalyzer(t)

	got := a.Tag("21-й", "")
	require.Len(t, got, 1)
	assert.True(t, got[0].IsOrdinalNumeral())
	assert.True(t, strings.HasSuffix(got[0].Lemma(), "1-й"))
	assert.Equal(t, "21-й adj:m:v_naz:&numr:auto", strs(got)[0])

	assert.Equal(t, []string{"20-й adj:p:v_rod:&numr:auto"}, strs(a.Tag("20-х", "")))
	assert.Equal(t, []string{"1905-й adj:f:v_naz:&numr:auto"}, strs(a.Tag("1905–а", "")))
	assert.Empty(t, a.Tag("33-й", ""))

	b, _ := newAnalyzer(t, WithExpandAdjectivesAsNouns(true))
	assert.Equal(t, []string{
		"21-й adj:m:v_naz:&numr:auto",
		"21-й adj:inanim:m:v_naz:&numr:&noun:auto",
	}, strs(b.Tag("21-й", "")))
}

func TestTagInitials(t *testing.T) {
	a, _ := newAnalyzer(t)
	assert.Equal(t, []string{
		"Т. noun:anim:abbr:prop:auto",
		"Т. noun:inanim:prop:auto",
		"т. x:abbr:auto",
	}, strs(a.Tag("Т", ".")))
	assert.Equal(t, []string{"б. noun:inanim:prop:auto"}, strs(a.Tag("б", "")))
	assert.Empty(t, a.Tag("я", "."))
}

func TestTagExpand(t *testing.T) {
	a, _ := newAnalyzer(t)

	assert.Equal(t, []string{
		"мільйон noun:inanim:m:v_naz:auto",
		"мільйон numr:p:v_naz:auto",
	}, strs(a.Tag("мільйон", "")))

	assert.Equal(t, []string{
		"студент noun:anim:p:v_naz",
		"студент noun:anim:ginanim:p:v_zna:auto",
	}, strs(a.Tag("студенти", "")))
}

func TestTagFilter(t *testing.T) {
	a, _ := newAnalyzer(t)
	assert.Empty(t, a.Tag("темно", ""))
	assert.Equal(t, []string{"темно adj:beforeadj"}, strs(a.Tag("темно", "-")))

	assert.Equal(t, []string{"черговий adj:m:v_naz"}, strs(a.Tag("черговий", "")))
	b, _ := newAnalyzer(t, WithKeepN2Adj(true))
	assert.Len(t, b.Tag("черговий", ""), 2)
}

func TestTagParadigmOmonyms(t *testing.T) {
	a, _ := newAnalyzer(t)
	got := a.Tag("замок", "")
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].ParadigmOmonym())

	b, _ := newAnalyzer(t, WithKeepParadigmOmonyms(true))
	assert.Equal(t, []string{
		"замок noun:inanim:m:v_naz:xp1",
		"замок noun:inanim:m:v_naz:xp2",
	}, strs(b.Tag("замок", "")))
	assert.Equal(t, []string{
		"автозамок noun:inanim:m:v_naz:xp1:auto",
		"автозамок noun:inanim:m:v_naz:xp2:auto",
	}, strs(b.Tag("автозамок", "")))
}

func TestTagExpandAdjectivesAsNouns(t *testing.T) {
	a, _ := newAnalyzer(t, WithExpandAdjectivesAsNouns(true))
	assert.Equal(t, []string{
		"синій adj:m:v_naz",
		"синій adj:anim:m:v_naz:&noun:auto",
		"синій adj:inanim:m:v_naz:&noun:auto",
	}, strs(a.Tag("синій", "")))
	assert.Len(t, a.Tag("сині", ""), 9)
	assert.Equal(t, []string{"темно adj:beforeadj"}, strs(a.Tag("темно", "-")))
}

func TestTagOrX(t *testing.T) {
	a, _ := newAnalyzer(t)
	assert.Equal(t, []string{"кіт x:auto"}, strs(a.TagOrX("кіт", "")))
	assert.Equal(t, []string{"робити verb:imperf:inf"}, strs(a.TagOrX("робити", "")))
}

func TestCanBeToken(t *testing.T) {
	a, _ := newAnalyzer(t)
	tests := []struct {
		token string
		want  bool
	}{
		{"робити", true},
		{"зробити", true},
		{"кіт", false},
		{"ім.", false},
		{"кіт.", false},
		{"темно-синій", false},
		{"по-батьківськи", true},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, a.CanBeToken(tt.token))
		})
	}
}

func TestHasAnyCase(t *testing.T) {
	a, _ := newAnalyzer(t)
	assert.True(t, a.HasAnyCase("КИЇВ"))
	assert.False(t, a.HasAnyCase("кіт"))
}

func TestTagTokens(t *testing.T) {
	a, _ := newAnalyzer(t)
	got := a.TagTokens([]string{"Т", ".", "темно", "-", "синій"})
	require.Len(t, got, 5)
	assert.Len(t, got[0].Tags, 3)
	assert.Equal(t, []string{". punct:auto"}, strs(got[1].Tags))
	assert.Len(t, got[2].Tags, 1)
	assert.Equal(t, "синій", got[4].Token)
}

func TestForms(t *testing.T) {
	a, _ := newAnalyzer(t)
	paradigms := a.Forms("робити")
	require.Len(t, paradigms, 1)
	require.Len(t, paradigms[0], 3)
	assert.Equal(t, "роблю", paradigms[0][1].Form)
	assert.Equal(t, "робити", paradigms[0][1].Tag.Lemma())
	assert.Len(t, a.Forms("замок"), 2)
	assert.Nil(t, a.Forms("кіт"))
}

var propertyTokens = []string{
	"робить", "РОБИТЬ", "зробити", "зробить", "одробив", "автозавод", "темносиній",
	"ґанок", "ґанку", "київ", "Київ", "сторіччя", "якнайсиньому", "по-батьківськи",
	"дз", "нато", "В", "ховаючися", "якнайстаранніш", "вчитися", "21-й", "20-х", "мільйон",
	"студенти", "темно", "черговий", "замок", "синій", "сині", "кіт", "Т", "ім.",
	"https://example.com", "hello", "…", "",
}

func TestTagProperties(t *testing.T) {
	for _, opts := range [][]Option{nil, {WithExpandAdjectivesAsNouns(true), WithKeepN2Adj(true)}} {
		a, lex := newAnalyzer(t, opts...)
		for _, tok := range propertyTokens {
			for _, next := range []string{"", ".", "-"} {
				got := a.Tag(tok, next)

				seen := make(map[Key]bool)
				for _, tag := range got {
					assert.False(t, seen[tag.Key()], "duplicate %s for %q", tag, tok)
					seen[tag.Key()] = true

					if !tag.IsAuto() {
						assert.True(t, inLexicon(lex, tok, next, tag), "%s for %q must be auto", tag, tok)
					}
				}

				assert.Equal(t, strs(got), strs(a.Tag(tok, next)), "idempotence of %q", tok)
				assert.NotEmpty(t, a.TagOrX(tok, next))
			}
		}
	}
}

// inLexicon reports whether tag is verbatim a lexicon reading of a spelling
// of token.
func inLexicon(lex *lexicon.Lexicon, token, next string, tag Tag) bool {
	lookupees := varyLetterCases(NormalizeApostrophes(Unstress(token)))
	if next == "." {
		for _, l := range lookupees {
			lookupees = append(lookupees, l+".")
		}
	}
	for _, l := range lookupees {
		for _, e := range lex.Lookup(l) {
			raw := ParseTag(e.Flags, e.Lemma, e.LemmaFlags).WithParadigmOmonym(0)
			if raw == tag.WithParadigmOmonym(0) {
				return true
			}
		}
	}
	return false
}

func TestCacheBounded(t *testing.T) {
	a, _ := newAnalyzer(t, WithCacheSize(4))
	for _, tok := range propertyTokens {
		a.Tag(tok, "")
		assert.LessOrEqual(t, a.cache.Len(), 4)
	}
}

func TestConcurrentTag(t *testing.T) {
	a, _ := newAnalyzer(t, WithCacheSize(8))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, tok := range propertyTokens {
				a.Tag(tok, "")
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, []string{"зробити verb:perf:inf:auto"}, strs(a.Tag("зробити", "")))
}
