// Package morpho provides morphological analysis of Ukrainian tokens:
// every plausible lemma and grammatical tag of a word, taken from a
// lexicon and, for words the lexicon lacks, from a cascade of word
// formation heuristics.
package morpho

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mova-institute/morpho/internal/cachemap"
	"github.com/mova-institute/morpho/internal/hashset"
	"github.com/mova-institute/morpho/lexicon"
)

// DefaultCacheSize is the number of distinct lookups an Analyzer remembers.
const DefaultCacheSize = 10000

// ErrNoDictionary is returned by New when no dictionary is supplied.
var ErrNoDictionary = errors.New("morpho: no dictionary")

// Dictionary is the lexicon an Analyzer consults. Lookups must be pure
// functions of their input; the analyzer caches them.
type Dictionary interface {
	// Lookup returns the readings of token, matched case-sensitively.
	Lookup(token string) []lexicon.Entry
	// LookupLexemesByLemma returns the paradigms headed by lemma.
	LookupLexemesByLemma(lemma string) []lexicon.Lexeme
	// HasAnyCase reports whether token exists in any letter case.
	HasAnyCase(token string) bool
}

// Analyzer tags tokens. It is safe for concurrent use.
type Analyzer struct {
	dict     Dictionary
	cache    *cachemap.Cache[string, []Tag]
	numerals []numeral

	cacheSize               int
	expandAdjectivesAsNouns bool
	keepN2Adj               bool
	keepParadigmOmonyms     bool
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithCacheSize sets how many distinct lookups are cached.
func WithCacheSize(n int) Option {
	return func(a *Analyzer) { a.cacheSize = n }
}

// WithExpandAdjectivesAsNouns makes every adjective reading also yield
// substantivized noun readings.
func WithExpandAdjectivesAsNouns(on bool) Option {
	return func(a *Analyzer) { a.expandAdjectivesAsNouns = on }
}

// WithKeepN2Adj keeps n2adj readings that are not proper names.
func WithKeepN2Adj(on bool) Option {
	return func(a *Analyzer) { a.keepN2Adj = on }
}

// WithKeepParadigmOmonyms keeps the xpN discriminators of the lexicon.
func WithKeepParadigmOmonyms(on bool) Option {
	return func(a *Analyzer) { a.keepParadigmOmonyms = on }
}

// New returns an Analyzer over dict.
func New(dict Dictionary, opts ...Option) (*Analyzer, error) {
	if dict == nil {
		return nil, ErrNoDictionary
	}
	a := &Analyzer{dict: dict, cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(a)
	}
	cache, err := cachemap.New(a.cacheSize, a.lookupRaw)
	if err != nil {
		return nil, fmt.Errorf("lookup cache: %w", err)
	}
	a.cache = cache
	a.numerals = a.buildNumerals()
	return a, nil
}

// tagSet accumulates interpretations without duplicates.
type tagSet = *hashset.Set[Tag, Key]

func newTagSet(tags ...Tag) tagSet {
	return hashset.New(Tag.Key, tags...)
}

// HasAnyCase reports whether the dictionary knows token in any letter case.
func (a *Analyzer) HasAnyCase(token string) bool {
	return a.dict.HasAnyCase(token)
}

// Tag returns the interpretations of token. next is the token that follows
// it in the text, or "" when there is none. The result holds no two equal
// interpretations; an empty result means the token is unknown.
func (a *Analyzer) Tag(token, next string) []Tag {
	token = Unstress(token)
	if token == "" {
		return nil
	}
	if tags, ok := classify(token); ok {
		return tags
	}
	token = NormalizeApostrophes(token)

	lookupees := varyLetterCases(token)
	lowercase := lookupees[0]
	if next == "." {
		for _, l := range lookupees {
			lookupees = append(lookupees, l+".")
		}
	}

	res := newTagSet()
	for _, l := range lookupees {
		res.AddAll(a.lookup(l))
	}

	q := &query{lowercase: lowercase, lookupees: lookupees, found: res}
	if res.Len() == 0 {
		for _, f := range fallbacks {
			if res.AddAll(f.run(a, q)) > 0 {
				break
			}
		}
	}

	res.AddAll(initials(token, lowercase, next))
	res.AddAll(a.digitCompounds(lowercase))
	if res.Len() == 0 {
		res.AddAll(a.reverseReflexive(lowercase))
	}

	expand(res)
	return a.filter(res, next)
}

// TagOrX is Tag, except that an unknown token gets a single x reading.
func (a *Analyzer) TagOrX(token, next string) []Tag {
	if ret := a.Tag(token, next); len(ret) > 0 {
		return ret
	}
	return []Tag{ParseTag("x", Unstress(token), "").WithAuto()}
}

// CanBeToken reports whether token can stand as a word on its own. Hyphenated
// compound adjectives cannot, and neither can a token ending in a full stop
// that is nothing but an abbreviation.
func (a *Analyzer) CanBeToken(token string) bool {
	if a.isCompoundAdjective(token) {
		return false
	}
	tags := a.Tag(token, "")
	if strings.HasSuffix(token, ".") {
		for _, t := range tags {
			if !t.IsAbbreviation() {
				return true
			}
		}
		return false
	}
	return len(tags) > 0
}

// TaggedToken is a token with its interpretations.
type TaggedToken struct {
	Token string
	Tags  []Tag
}

// TagTokens tags a run of tokens, each one aware of its successor.
func (a *Analyzer) TagTokens(tokens []string) []TaggedToken {
	ret := make([]TaggedToken, len(tokens))
	for i, tok := range tokens {
		next := ""
		if i+1 < len(tokens) {
			next = tokens[i+1]
		}
		ret[i] = TaggedToken{Token: tok, Tags: a.Tag(tok, next)}
	}
	return ret
}

// WordForm is one member of a paradigm.
type WordForm struct {
	Form string
	Tag  Tag
}

// Forms returns the paradigms headed by lemma, one slice per lexeme.
func (a *Analyzer) Forms(lemma string) [][]WordForm {
	lexemes := a.dict.LookupLexemesByLemma(lemma)
	if len(lexemes) == 0 {
		return nil
	}
	ret := make([][]WordForm, 0, len(lexemes))
	for _, x := range lexemes {
		head := x.Lemma()
		forms := make([]WordForm, 0, len(x))
		for _, f := range x {
			t := ParseTag(f.Flags, head.Form, head.Flags)
			if !a.keepParadigmOmonyms {
				t = t.WithParadigmOmonym(0)
			}
			forms = append(forms, WordForm{Form: f.Form, Tag: t})
		}
		ret = append(ret, forms)
	}
	return ret
}

// lookupRaw parses the dictionary readings of token. It backs the cache.
func (a *Analyzer) lookupRaw(token string) []Tag {
	entries := a.dict.Lookup(token)
	if len(entries) == 0 {
		return nil
	}
	ret := make([]Tag, 0, len(entries))
	for _, e := range entries {
		t := ParseTag(e.Flags, e.Lemma, e.LemmaFlags)
		ret = append(ret, t)
		if a.expandAdjectivesAsNouns {
			ret = append(ret, adjectiveAsNouns(t)...)
		}
	}
	return ret
}

// lookup returns the cached dictionary readings of token as a fresh slice.
func (a *Analyzer) lookup(token string) []Tag {
	if token == "" {
		return nil
	}
	cached := a.cache.Get(token)
	if len(cached) == 0 {
		return nil
	}
	ret := make([]Tag, len(cached))
	for i, t := range cached {
		if !a.keepParadigmOmonyms {
			t = t.WithParadigmOmonym(0)
		}
		ret[i] = t
	}
	return ret
}

func (a *Analyzer) isCompoundAdjective(token string) bool {
	token = NormalizeApostrophes(Unstress(token))
	if !strings.Contains(token, "-") {
		return false
	}
	parts := strings.Split(varyLetterCases(token)[0], "-")
	last, prevs := parts[len(parts)-1], parts[:len(parts)-1]
	if !anyTag(a.lookup(last), Tag.IsAdjective) {
		return false
	}
	for _, p := range prevs {
		if !anyTag(a.lookup(p), Tag.IsBeforeAdj) {
			return false
		}
	}
	return true
}

// filter drops stems that only live in compounds, unless a hyphen follows,
// and n2adj readings unless kept or proper.
func (a *Analyzer) filter(res tagSet, next string) []Tag {
	ret := make([]Tag, 0, res.Len())
	for t := range res.All {
		if next != "-" && t.IsBeforeAdj() {
			continue
		}
		if !a.keepN2Adj && t.IsN2Adj() && !t.IsProper() {
			continue
		}
		ret = append(ret, t)
	}
	return ret
}

// ignoredSubstantives are pronominal adjectives that never yield noun
// readings, except the plural of весь.
var ignoredSubstantives = map[string]bool{
	"ввесь": true, "його": true, "її": true, "весь": true, "увесь": true, "який": true,
}

// adjectiveAsNouns returns the substantivized readings of an adjective.
func adjectiveAsNouns(t Tag) []Tag {
	if !t.IsAdjective() || t.IsBeforeAdj() {
		return nil
	}
	noun := t.WithMark(MarkAdjectiveAsNoun, true).WithAuto()
	if ignoredSubstantives[t.Lemma()] {
		if (t.Lemma() == "весь" || t.Lemma() == "увесь") && t.IsPlural() {
			return []Tag{noun.WithAnimacy(AnimacyAnimate).WithMark(MarkPluraleTantum, true)}
		}
		return nil
	}
	if !t.IsPlural() {
		return []Tag{noun.WithAnimacy(AnimacyAnimate), noun.WithAnimacy(AnimacyInanimate)}
	}
	ret := make([]Tag, 0, 8)
	for _, an := range []Animacy{AnimacyAnimate, AnimacyInanimate} {
		for _, g := range []Gender{GenderMasculine, GenderFeminine, GenderNeuter} {
			ret = append(ret, noun.WithAnimacy(an).WithGender(g))
		}
		ret = append(ret, noun.WithAnimacy(an).WithMark(MarkPluraleTantum, true))
	}
	return ret
}

func anyTag(tags []Tag, pred func(Tag) bool) bool {
	for _, t := range tags {
		if pred(t) {
			return true
		}
	}
	return false
}
