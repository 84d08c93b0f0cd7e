package morpho

import (
	"strings"
)

// query is the state of one Tag call shared by the fallbacks.
type query struct {
	lowercase string
	lookupees []string
	found     tagSet
}

// fallback guesses interpretations of a word the lexicon lacks.
type fallback struct {
	name string
	run  func(a *Analyzer, q *query) []Tag
}

// fallbacks run in order until one of them contributes.
var fallbacks = []fallback{
	{"dialect prefix", (*Analyzer).fromDialectPrefix},
	{"prefixes", (*Analyzer).fromProductivePrefixes},
	{"compound adjective", (*Analyzer).fromCompoundAdjective},
	{"plosive ґ", (*Analyzer).fromPlosive},
	{"title case", (*Analyzer).fromTitlecase},
	{"anniversary", (*Analyzer).fromAnniversary},
	{"elative adjective", (*Analyzer).fromElativeAdjective},
	{"по-X-ськи adverb", (*Analyzer).fromPoAdverb},
	{"upper case", (*Analyzer).fromUppercase},
	{"reflexive converb", (*Analyzer).fromReflexiveConverb},
	{"elative adverb", (*Analyzer).fromElativeAdverb},
}

// одробити is read as відробити.
func (a *Analyzer) fromDialectPrefix(q *query) []Tag {
	if !strings.HasPrefix(q.lowercase, "од") || runeLen(q.lowercase) <= 4 {
		return nil
	}
	var ret []Tag
	for _, t := range a.lookup("від" + dropRunes(q.lowercase, 2)) {
		if !t.IsVerb() || !strings.HasPrefix(t.Lemma(), "від") {
			continue
		}
		ret = append(ret, t.WithLemma("од"+dropRunes(t.Lemma(), 3)).WithOdd().WithAuto())
	}
	return ret
}

func (a *Analyzer) fromProductivePrefixes(q *query) []Tag {
	return a.fromPrefixes(q.lowercase, q.found)
}

// невідомосиній is невідомо- plus синій.
func (a *Analyzer) fromCompoundAdjective(q *query) []Tag {
	runes := []rune(q.lowercase)
	o := -1
	for i, r := range runes {
		if r == 'о' {
			o = i
			break
		}
	}
	if o <= 2 {
		return nil
	}
	left := string(runes[:o+1])
	if !anyTag(a.lookup(left), Tag.IsBeforeAdj) {
		return nil
	}
	var ret []Tag
	for _, t := range a.lookup(string(runes[o+1:])) {
		if t.IsAdjective() {
			ret = append(ret, t.WithLemma(left+t.Lemma()).WithAuto())
		}
	}
	return ret
}

func (a *Analyzer) fromPlosive(q *query) []Tag {
	return a.fromGH(q.lookupees)
}

// fromGH looks words with ґ up under г. A reading is kept only when its
// lemma has г at every replaced position; those get ґ back.
func (a *Analyzer) fromGH(lookupees []string) []Tag {
	var ret []Tag
	for _, l := range lookupees {
		fricative, diffs := fricativize(l)
		if len(diffs) == 0 {
			continue
		}
		for _, t := range a.lookup(fricative) {
			lemma, ok := restorePlosive(t.Lemma(), diffs)
			if !ok {
				continue
			}
			ret = append(ret, t.WithLemma(lemma).WithAuto())
		}
	}
	return ret
}

// ірод is found as Ірод.
func (a *Analyzer) fromTitlecase(q *query) []Tag {
	tc := titlecase(q.lowercase)
	ret := autoAll(a.lookup(tc))
	if len(ret) == 0 {
		ret = a.fromGH([]string{tc})
	}
	return ret
}

// Any *річчя declines like дворіччя.
func (a *Analyzer) fromAnniversary(q *query) []Tag {
	if !strings.HasSuffix(q.lowercase, "річчя") {
		return nil
	}
	ret := a.lookup("дворіччя")
	for i, t := range ret {
		ret[i] = t.WithLemma(q.lowercase).WithAuto()
	}
	return ret
}

// найкепський, щонайкепський and якнайкепський are absolute degrees of
// кепський.
func (a *Analyzer) fromElativeAdjective(q *query) []Tag {
	prefix := reElative.FindString(q.lowercase)
	if prefix == "" {
		return nil
	}
	var ret []Tag
	for _, t := range a.lookup(q.lowercase[len(prefix):]) {
		if t.IsAdjective() {
			ret = append(ret, t.WithLemma(prefix+t.Lemma()).WithDegree(DegreeAbsolute).WithAuto())
		}
	}
	return ret
}

// по-батьківськи, по-нашому.
func (a *Analyzer) fromPoAdverb(q *query) []Tag {
	const po = "по-"
	if !strings.HasPrefix(q.lowercase, po) {
		return nil
	}
	ok := strings.HasSuffix(q.lowercase, "ськи") || strings.HasSuffix(q.lowercase, "цьки") ||
		anyTag(a.lookup(q.lowercase[len(po):]), func(t Tag) bool {
			return t.IsAdjective() && t.IsMasculine() && t.IsDative()
		})
	if !ok {
		return nil
	}
	return []Tag{ParseTag("adv", q.lowercase, "").WithAuto()}
}

// дз is found as ДЗ.
func (a *Analyzer) fromUppercase(q *query) []Tag {
	return autoAll(a.lookup(strings.ToUpper(q.lowercase)))
}

// ховаючися is found as ховаючись.
func (a *Analyzer) fromReflexiveConverb(q *query) []Tag {
	if !strings.HasSuffix(q.lowercase, "ся") {
		return nil
	}
	var ret []Tag
	for _, t := range a.lookup(dropRunes(q.lowercase, -1) + "ь") {
		if t.IsTransgressive() {
			ret = append(ret, t.WithAuto())
		}
	}
	return ret
}

// якнайстаранніш is found as якнайстаранніше.
func (a *Analyzer) fromElativeAdverb(q *query) []Tag {
	if !(strings.HasPrefix(q.lowercase, "най") || strings.HasPrefix(q.lowercase, "якнай")) ||
		!strings.HasSuffix(q.lowercase, "іш") {
		return nil
	}
	var ret []Tag
	for _, t := range a.lookup(q.lowercase + "е") {
		if t.IsAdverb() {
			ret = append(ret, t.WithAuto())
		}
	}
	return ret
}

// initials reads single letters: an initial before a full stop, a letter
// name, and a one-letter abbreviation.
func initials(token, lowercase, next string) []Tag {
	var ret []Tag
	if next == "." && reInitial.MatchString(token) {
		ret = append(ret, ParseTag("noun:anim:abbr:prop", token+".", "").WithAuto())
	}
	if token != "я" && reInitial.MatchString(strings.ToUpper(token)) {
		ret = append(ret, ParseTag("noun:inanim:prop", token+".", "").WithAuto())
	}
	if next == "." && lowercase != "я" && reLowerLetter.MatchString(lowercase) {
		ret = append(ret, ParseTag("x:abbr", lowercase+".", "").WithAuto())
	}
	return ret
}

// digitCompounds reads 20-х, 5-та, 1920-му as ordinal numerals by the
// endings of the ordinal of their last digit.
func (a *Analyzer) digitCompounds(lowercase string) []Tag {
	m := reDigitCompound.FindStringSubmatch(lowercase)
	if m == nil {
		return nil
	}
	digits, ending := m[1], m[2]
	last := int(digits[len(digits)-1] - '0')
	n := runeLen(ending)

	var ret []Tag
	for _, x := range a.numerals {
		if x.digit != last || !strings.HasSuffix(x.form, ending) {
			continue
		}
		t := x.tag.WithLemma(digits + "-" + lastRunes(x.lemma, n))
		ret = append(ret, t)
		if a.expandAdjectivesAsNouns {
			ret = append(ret, t.WithMark(MarkAdjectiveAsNoun, true).WithAnimacy(AnimacyInanimate))
		}
	}
	return ret
}

// reverseReflexive reads a reflexive form through its non-reflexive base.
func (a *Analyzer) reverseReflexive(lowercase string) []Tag {
	if runeLen(lowercase) <= 4 {
		return nil
	}
	if e := lastRunes(lowercase, 2); e != "ся" && e != "сь" {
		return nil
	}
	ret := a.lookup(dropRunes(lowercase, -2))
	for i, t := range ret {
		ret[i] = t.WithReflexive().WithLemma(t.Lemma() + "ся").WithAuto()
	}
	return ret
}

// expand adds readings the lexicon implies but does not list: a cardinal
// numeral for nouns like мільйон, which themselves lose &numr, and the
// inanimate-style accusative of animate plural nouns (піти в солдати).
func expand(res tagSet) {
	for _, t := range res.Values() {
		switch {
		case t.IsNoun() && t.CanBeOrdinalNumeral():
			res.Replace(t, t.WithMark(MarkOrdinalNumeral, false).WithAuto())
			numeral := Tag{lemma: t.Lemma(), pos: PosCardinalNumeral}.
				WithCase(t.Case()).
				WithNumber(NumberPlural).
				WithAuto()
			res.Add(numeral)
		case t.IsNoun() && t.IsNominative() && t.IsPlural() && t.IsAnimate():
			acc := t.WithCase(CaseAccusative).WithAuto()
			inanimish := acc.WithGrammaticalAnimacy(AnimacyInanimate)
			if !res.Has(acc) && !res.Has(inanimish) {
				res.Add(inanimish)
			}
		}
	}
}

func autoAll(tags []Tag) []Tag {
	for i, t := range tags {
		tags[i] = t.WithAuto()
	}
	return tags
}
