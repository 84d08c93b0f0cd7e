package morpho

import (
	"strconv"
	"strings"
)

// Tag is one morphological interpretation of a token: a lemma, a part of
// speech, a feature bundle and derivation flags.
//
// Tag is a value type. Every With* method returns a modified copy, so an
// interpretation handed out by the analyzer can never be changed behind the
// back of another holder.
type Tag struct {
	lemma string
	pos   Pos
	feats [numSlots]uint8
	marks Mark
	// extra keeps unrecognised tokens verbatim, colon-joined.
	extra string

	auto           bool
	odd            bool
	reflexive      bool
	paradigmOmonym uint8
}

// Key identifies a Tag for deduplication: lemma, part of speech, the full
// feature bundle and the paradigm omonym. Derivation flags are left out, so a
// heuristic duplicate of a dictionary reading collapses into it.
type Key struct {
	lemma          string
	pos            Pos
	feats          [numSlots]uint8
	marks          Mark
	extra          string
	paradigmOmonym uint8
}

// Key returns the deduplication key of t.
func (t Tag) Key() Key {
	return Key{
		lemma:          t.lemma,
		pos:            t.pos,
		feats:          t.feats,
		marks:          t.marks,
		extra:          t.extra,
		paradigmOmonym: t.paradigmOmonym,
	}
}

// Equal reports whether t and o are the same interpretation.
func (t Tag) Equal(o Tag) bool { return t.Key() == o.Key() }

// ParseTag builds a Tag from a colon-separated tag string such as
// "noun:anim:m:v_naz:prop". When flags carry no paradigm omonym
// discriminator it is taken from lemmaFlags.
func ParseTag(flags, lemma, lemmaFlags string) Tag {
	t := Tag{lemma: lemma}
	var extra []string
	for i, tok := range strings.Split(flags, ":") {
		if tok == "" {
			continue
		}
		if i == 0 {
			if tok == converbPos {
				t.pos = PosVerb
				t.feats[slotVerbForm] = uint8(VerbFormConverb)
				continue
			}
			if p, ok := posTable[tok]; ok {
				t.pos = p
				continue
			}
		}
		if !t.apply(tok) {
			extra = append(extra, tok)
		}
	}
	t.extra = strings.Join(extra, ":")

	if t.paradigmOmonym == 0 && lemmaFlags != "" {
		for _, tok := range strings.Split(lemmaFlags, ":") {
			if n, ok := parseParadigmOmonym(tok); ok {
				t.paradigmOmonym = n
				break
			}
		}
	}
	return t
}

// apply sets the feature a single token spells. Reports false for unknown
// tokens.
func (t *Tag) apply(tok string) bool {
	if def, ok := tokenTable[tok]; ok {
		switch def.kind {
		case tokenSlot:
			t.feats[def.slot] = def.value
		case tokenMark:
			t.marks |= def.mark
		}
		return true
	}
	switch tok {
	case flagAuto:
		t.auto = true
	case flagOdd:
		t.odd = true
	case flagReflexive:
		t.reflexive = true
	default:
		n, ok := parseParadigmOmonym(tok)
		if !ok {
			return false
		}
		t.paradigmOmonym = n
	}
	return true
}

func parseParadigmOmonym(tok string) (uint8, bool) {
	if !strings.HasPrefix(tok, flagParadigmOmonym) {
		return 0, false
	}
	n, err := strconv.ParseUint(tok[len(flagParadigmOmonym):], 10, 8)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint8(n), true
}

// String renders t as a canonical tag string. Parsing the result yields an
// equal Tag with the same derivation flags.
func (t Tag) String() string {
	parts := make([]string, 0, 8)
	switch {
	case t.pos == PosVerb && t.VerbForm() == VerbFormConverb:
		parts = append(parts, converbPos)
	case t.pos != PosNone:
		parts = append(parts, t.pos.String())
	}
	for s := slot(0); s < slotPronoun; s++ {
		if v := t.feats[s]; v != 0 && slotValues[s][v] != "" {
			parts = append(parts, slotValues[s][v])
		}
	}
	for _, m := range markNames {
		if t.marks&m.mark == 0 {
			continue
		}
		parts = append(parts, m.name)
		if m.mark == MarkPronominal {
			if v := t.feats[slotPronoun]; v != 0 {
				parts = append(parts, slotValues[slotPronoun][v])
			}
		}
		if m.mark == MarkProper {
			if v := t.feats[slotName]; v != 0 {
				parts = append(parts, slotValues[slotName][v])
			}
		}
	}
	if t.marks&MarkPronominal == 0 && t.feats[slotPronoun] != 0 {
		parts = append(parts, slotValues[slotPronoun][t.feats[slotPronoun]])
	}
	if t.marks&MarkProper == 0 && t.feats[slotName] != 0 {
		parts = append(parts, slotValues[slotName][t.feats[slotName]])
	}
	if t.reflexive {
		parts = append(parts, flagReflexive)
	}
	if t.paradigmOmonym != 0 {
		parts = append(parts, flagParadigmOmonym+strconv.Itoa(int(t.paradigmOmonym)))
	}
	if t.extra != "" {
		parts = append(parts, t.extra)
	}
	if t.auto {
		parts = append(parts, flagAuto)
	}
	if t.odd {
		parts = append(parts, flagOdd)
	}
	return strings.Join(parts, ":")
}

// ── Accessors ────────────────────────────────────────────────────────────────

func (t Tag) Lemma() string               { return t.lemma }
func (t Tag) Pos() Pos                    { return t.pos }
func (t Tag) Marks() Mark                 { return t.marks }
func (t Tag) Case() Case                  { return Case(t.feats[slotCase]) }
func (t Tag) Gender() Gender              { return Gender(t.feats[slotGender]) }
func (t Tag) Number() Number              { return Number(t.feats[slotNumber]) }
func (t Tag) Animacy() Animacy            { return Animacy(t.feats[slotAnimacy]) }
func (t Tag) GrammaticalAnimacy() Animacy { return Animacy(t.feats[slotGrammaticalAnimacy]) }
func (t Tag) Aspect() Aspect              { return Aspect(t.feats[slotAspect]) }
func (t Tag) Tense() Tense                { return Tense(t.feats[slotTense]) }
func (t Tag) VerbForm() VerbForm          { return VerbForm(t.feats[slotVerbForm]) }
func (t Tag) Person() Person              { return Person(t.feats[slotPerson]) }
func (t Tag) Degree() Degree              { return Degree(t.feats[slotDegree]) }
func (t Tag) Voice() Voice                { return Voice(t.feats[slotVoice]) }
func (t Tag) PronounType() PronounType    { return PronounType(t.feats[slotPronoun]) }
func (t Tag) NameType() NameType          { return NameType(t.feats[slotName]) }
func (t Tag) ParadigmOmonym() int         { return int(t.paradigmOmonym) }
func (t Tag) Has(m Mark) bool             { return t.marks&m == m }

// ── Predicates ───────────────────────────────────────────────────────────────

func (t Tag) IsNoun() bool              { return t.pos == PosNoun }
func (t Tag) IsAdjective() bool         { return t.pos == PosAdjective }
func (t Tag) IsVerb() bool              { return t.pos == PosVerb }
func (t Tag) IsAdverb() bool            { return t.pos == PosAdverb }
func (t Tag) IsCardinalNumeral() bool   { return t.pos == PosCardinalNumeral }
func (t Tag) IsX() bool                 { return t.pos == PosX }
func (t Tag) IsTransgressive() bool     { return t.IsVerb() && t.VerbForm() == VerbFormConverb }
func (t Tag) IsInfinitive() bool        { return t.IsVerb() && t.VerbForm() == VerbFormInfinitive }
func (t Tag) IsImperfect() bool         { return t.Aspect() == AspectImperfective }
func (t Tag) IsPerfect() bool           { return t.Aspect() == AspectPerfective }
func (t Tag) IsPresent() bool           { return t.Tense() == TensePresent }
func (t Tag) IsFuture() bool            { return t.Tense() == TenseFuture }
func (t Tag) IsComparable() bool        { return t.Degree() != 0 }
func (t Tag) IsMasculine() bool         { return t.Gender() == GenderMasculine }
func (t Tag) IsNominative() bool        { return t.Case() == CaseNominative }
func (t Tag) IsDative() bool            { return t.Case() == CaseDative }
func (t Tag) IsPlural() bool            { return t.Number() == NumberPlural }
func (t Tag) IsAnimate() bool           { return t.Animacy() == AnimacyAnimate }
func (t Tag) IsPronoun() bool           { return t.Has(MarkPronominal) }
func (t Tag) IsBeforeAdj() bool         { return t.Has(MarkBeforeAdj) }
func (t Tag) IsN2Adj() bool             { return t.Has(MarkN2Adj) }
func (t Tag) IsAbbreviation() bool      { return t.Has(MarkAbbreviation) }
func (t Tag) IsProper() bool            { return t.Has(MarkProper) }
func (t Tag) IsForeign() bool           { return t.Has(MarkForeign) }
func (t Tag) IsAdjectiveAsNoun() bool   { return t.Has(MarkAdjectiveAsNoun) }
func (t Tag) CanBeOrdinalNumeral() bool { return t.Has(MarkOrdinalNumeral) }

// IsOrdinalNumeral reports whether t is an adjective-declined ordinal.
func (t Tag) IsOrdinalNumeral() bool { return t.IsAdjective() && t.CanBeOrdinalNumeral() }

// IsNumeral reports whether t is a cardinal or an ordinal numeral.
func (t Tag) IsNumeral() bool { return t.IsCardinalNumeral() || t.IsOrdinalNumeral() }

// IsSingular reports singular number, spelled explicitly or implied by a
// gender.
func (t Tag) IsSingular() bool {
	return t.Number() == NumberSingular || (t.Number() == 0 && t.Gender() != 0)
}

func (t Tag) IsAuto() bool      { return t.auto }
func (t Tag) IsOdd() bool       { return t.odd }
func (t Tag) IsReflexive() bool { return t.reflexive }

// ── Builders ─────────────────────────────────────────────────────────────────

func (t Tag) WithLemma(lemma string) Tag { t.lemma = lemma; return t }
func (t Tag) WithPos(p Pos) Tag          { t.pos = p; return t }
func (t Tag) WithAuto() Tag              { t.auto = true; return t }
func (t Tag) WithOdd() Tag               { t.odd = true; return t }
func (t Tag) WithReflexive() Tag         { t.reflexive = true; return t }

func (t Tag) WithCase(c Case) Tag          { t.feats[slotCase] = uint8(c); return t }
func (t Tag) WithGender(g Gender) Tag      { t.feats[slotGender] = uint8(g); return t }
func (t Tag) WithNumber(n Number) Tag      { t.feats[slotNumber] = uint8(n); return t }
func (t Tag) WithAnimacy(a Animacy) Tag    { t.feats[slotAnimacy] = uint8(a); return t }
func (t Tag) WithAspect(a Aspect) Tag      { t.feats[slotAspect] = uint8(a); return t }
func (t Tag) WithTense(x Tense) Tag        { t.feats[slotTense] = uint8(x); return t }
func (t Tag) WithDegree(d Degree) Tag      { t.feats[slotDegree] = uint8(d); return t }
func (t Tag) WithParadigmOmonym(n int) Tag { t.paradigmOmonym = uint8(n); return t }

// WithGrammaticalAnimacy sets the animacy the word behaves with in
// agreement, independent of its lexical animacy.
func (t Tag) WithGrammaticalAnimacy(a Animacy) Tag {
	t.feats[slotGrammaticalAnimacy] = uint8(a)
	return t
}

// WithMark adds or removes the markers m.
func (t Tag) WithMark(m Mark, on bool) Tag {
	if on {
		t.marks |= m
	} else {
		t.marks &^= m
	}
	return t
}
