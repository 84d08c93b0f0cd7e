package morpho

// Pos is a part of speech.
type Pos uint8

const (
	PosNone Pos = iota
	PosNoun
	PosAdjective
	PosVerb
	PosAdverb
	PosCardinalNumeral
	PosPreposition
	PosConjunction
	PosParticle
	PosInterjection
	PosOnomatopoeia
	PosPredicative
	PosInsert
	PosNoninflected
	PosPunctuation
	PosSymbol
	PosX
)

var posNames = [...]string{
	PosNone:            "",
	PosNoun:            "noun",
	PosAdjective:       "adj",
	PosVerb:            "verb",
	PosAdverb:          "adv",
	PosCardinalNumeral: "numr",
	PosPreposition:     "prep",
	PosConjunction:     "conj",
	PosParticle:        "part",
	PosInterjection:    "intj",
	PosOnomatopoeia:    "onomat",
	PosPredicative:     "predic",
	PosInsert:          "insert",
	PosNoninflected:    "noninfl",
	PosPunctuation:     "punct",
	PosSymbol:          "sym",
	PosX:               "x",
}

// String returns the tag-string spelling of p.
func (p Pos) String() string {
	if int(p) < len(posNames) {
		return posNames[p]
	}
	return ""
}

// converbPos is the tag-string spelling of a verb in converb form.
const converbPos = "advp"

// Enumerated features. The zero value of each type means "not set".
type (
	Case        uint8
	Gender      uint8
	Number      uint8
	Animacy     uint8
	Aspect      uint8
	Tense       uint8
	VerbForm    uint8
	Person      uint8
	Degree      uint8
	Voice       uint8
	PronounType uint8
	NameType    uint8
)

const (
	CaseNominative Case = iota + 1
	CaseGenitive
	CaseDative
	CaseAccusative
	CaseInstrumental
	CaseLocative
	CaseVocative
)

const (
	GenderMasculine Gender = iota + 1
	GenderFeminine
	GenderNeuter
)

const (
	NumberSingular Number = iota + 1
	NumberPlural
)

const (
	AnimacyAnimate Animacy = iota + 1
	AnimacyInanimate
	AnimacyUnanimate
)

const (
	AspectImperfective Aspect = iota + 1
	AspectPerfective
)

const (
	TensePast Tense = iota + 1
	TensePresent
	TenseFuture
)

const (
	VerbFormInfinitive VerbForm = iota + 1
	VerbFormImpersonal
	VerbFormImperative
	VerbFormConverb
)

const (
	PersonFirst Person = iota + 1
	PersonSecond
	PersonThird
)

const (
	DegreePositive Degree = iota + 1
	DegreeComparative
	DegreeSuperlative
	DegreeAbsolute
)

const (
	VoiceActive Voice = iota + 1
	VoicePassive
)

const (
	PronounPersonal PronounType = iota + 1
	PronounDemonstrative
	PronounInterrogative
	PronounRelative
	PronounNegative
	PronounIndefinite
	PronounGeneral
	PronounPossessive
	PronounReflexive
	PronounDefinitive
	PronounEmphatic
)

const (
	NameFirst NameType = iota + 1
	NameLast
	NamePatronymic
)

// slot indexes the enumerated feature array. The order is the rendering
// order of Tag.String.
type slot uint8

const (
	slotAnimacy slot = iota
	slotGrammaticalAnimacy
	slotAspect
	slotVerbForm
	slotTense
	slotGender
	slotNumber
	slotCase
	slotPerson
	slotDegree
	slotVoice
	slotPronoun
	slotName
	numSlots
)

// slotValues spells the values of every slot; index 0 is "not set".
var slotValues = [numSlots][]string{
	slotAnimacy:            {"", "anim", "inanim", "unanim"},
	slotGrammaticalAnimacy: {"", "ganim", "ginanim"},
	slotGender:             {"", "m", "f", "n"},
	slotNumber:             {"", "s", "p"},
	slotCase:               {"", "v_naz", "v_rod", "v_dav", "v_zna", "v_oru", "v_mis", "v_kly"},
	slotAspect:             {"", "imperf", "perf"},
	slotVerbForm:           {"", "inf", "impers", "impr", ""},
	slotTense:              {"", "past", "pres", "futr"},
	slotPerson:             {"", "1", "2", "3"},
	slotDegree:             {"", "compb", "compr", "super", "abs"},
	slotVoice:              {"", "actv", "pass"},
	slotPronoun:            {"", "pers", "dem", "int", "rel", "neg", "ind", "gen", "pos", "refl", "def", "emph"},
	slotName:               {"", "fname", "lname", "patr"},
}

// Mark is a set of boolean grammatical markers.
type Mark uint32

const (
	MarkPluraleTantum Mark = 1 << iota
	MarkNoninflected
	MarkParticiple
	MarkPronominal
	MarkOrdinalNumeral
	MarkAdjectiveAsNoun
	MarkAbbreviation
	MarkProper
	MarkForeign
	MarkRoman
	MarkBeforeAdj
	MarkN2Adj
	MarkBad
	MarkSlang
	MarkRare
	MarkColloquial
	MarkArchaic
	MarkAlternative
)

// markNames lists markers in rendering order. The pronoun type slot is
// rendered right after &pron.
var markNames = []struct {
	mark Mark
	name string
}{
	{MarkPluraleTantum, "ns"},
	{MarkParticiple, "&adjp"},
	{MarkPronominal, "&pron"},
	{MarkOrdinalNumeral, "&numr"},
	{MarkAdjectiveAsNoun, "&noun"},
	{MarkNoninflected, "nv"},
	{MarkAbbreviation, "abbr"},
	{MarkProper, "prop"},
	{MarkForeign, "foreign"},
	{MarkRoman, "roman"},
	{MarkBeforeAdj, "beforeadj"},
	{MarkN2Adj, "n2adj"},
	{MarkBad, "bad"},
	{MarkSlang, "slang"},
	{MarkRare, "rare"},
	{MarkColloquial, "coll"},
	{MarkArchaic, "arch"},
	{MarkAlternative, "alt"},
}

// Derivation flags. They describe how an interpretation was obtained and
// never take part in equality.
const (
	flagAuto      = "auto"
	flagOdd       = "odd"
	flagReflexive = "rev"
	// paradigm omonym discriminators are spelled xp1..xp9
	flagParadigmOmonym = "xp"
)

type tokenKind uint8

const (
	tokenSlot tokenKind = iota + 1
	tokenMark
)

type tokenDef struct {
	kind  tokenKind
	slot  slot
	value uint8
	mark  Mark
}

// tokenTable maps every known non-POS token to what it sets.
var tokenTable = buildTokenTable()

func buildTokenTable() map[string]tokenDef {
	t := make(map[string]tokenDef)
	for s, values := range slotValues {
		for v, name := range values {
			if name == "" {
				continue
			}
			t[name] = tokenDef{kind: tokenSlot, slot: slot(s), value: uint8(v)}
		}
	}
	for _, m := range markNames {
		t[m.name] = tokenDef{kind: tokenMark, mark: m.mark}
	}
	return t
}

// posTable maps POS spellings to parts of speech.
var posTable = func() map[string]Pos {
	t := make(map[string]Pos, len(posNames))
	for p, name := range posNames {
		if name != "" {
			t[name] = Pos(p)
		}
	}
	return t
}()
