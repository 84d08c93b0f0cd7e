package morpho

// numeral is one form of the ordinal numeral of a digit.
type numeral struct {
	digit int
	form  string
	tag   Tag
	lemma string
}

// ordinalSeeds are the ordinals of the last digit of a number.
var ordinalSeeds = [...]struct {
	digit int
	lemma string
}{
	{1, "перший"},
	{2, "другий"},
	{3, "третій"},
	{4, "четвертий"},
	{5, "п’ятий"},
	{6, "шостий"},
	{7, "сьомий"},
	{8, "восьмий"},
	{9, "дев’ятий"},
	{0, "десятий"},
}

// buildNumerals collects every non-pronominal form of the seed ordinals.
// Degree is dropped and the readings are marked as ordinal numerals.
func (a *Analyzer) buildNumerals() []numeral {
	var ret []numeral
	for _, s := range ordinalSeeds {
		for _, x := range a.dict.LookupLexemesByLemma(s.lemma) {
			for _, f := range x {
				t := ParseTag(f.Flags, "", "")
				if t.IsPronoun() {
					continue
				}
				t = t.WithDegree(0).WithMark(MarkOrdinalNumeral, true).WithAuto()
				if !a.keepParadigmOmonyms {
					t = t.WithParadigmOmonym(0)
				}
				ret = append(ret, numeral{digit: s.digit, form: f.Form, tag: t, lemma: s.lemma})
			}
		}
	}
	return ret
}
