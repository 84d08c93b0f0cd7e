package morpho

import (
	"regexp"
	"strings"
)

// prefixRule derives interpretations of a prefixed word from those of its
// residual. Either pattern or prefixes is set.
type prefixRule struct {
	// pattern matches the whole run of prefixes at once.
	pattern  *regexp.Regexp
	prefixes []string
	// minRunes, when set, is the rune length a word must exceed.
	minRunes int
	test     func(Tag) bool
	post     func(Tag) Tag
}

// gluedPrefixes are combining forms written solidly with the stem.
var gluedPrefixes = []string{
	"авіа", "авто", "агро", "аеро", "анти", "архі", "аудіо", "бензо",
	"бібліо", "біо", "вело", "вібро", "віце-", "водо", "газо", "геліо",
	"гео", "гідро", "гіпер", "давньо", "динаміко", "екзо", "екс-",
	"електро", "етно", "зоо", "ізо", "інтер", "квазі", "контр", "космо",
	"культ", "лакто", "лже", "макро", "максі", "мед", "мега", "мета",
	"метео", "мікро", "міні", "моно", "мото", "мульти", "нео", "пост",
	"псевдо", "радіо", "стерео", "супер", "теле", "телерадіо", "транс",
	"турбо", "ультра", "фіз", "фото",
}

var prefixRules = []prefixRule{
	{
		pattern: regexp.MustCompile(`^(?:` + strings.Join(gluedPrefixes, "|") + `)+`),
		test:    func(t Tag) bool { return t.IsNoun() || t.IsAdjective() || t.IsAdverb() },
	},
	{
		prefixes: []string{"пре"},
		test:     func(t Tag) bool { return t.IsAdjective() && t.IsComparable() },
	},
	{
		prefixes: []string{"пів"},
		test:     Tag.IsNoun,
	},
	{
		prefixes: []string{"за", "не"},
		test:     Tag.IsAdverb,
	},
	{
		prefixes: []string{"не", "між", "недо", "поза", "по", "пів", "напів"},
		test:     Tag.IsAdjective,
	},
	{
		prefixes: []string{"обі", "від", "об", "по", "роз", "за", "з", "у", "пере", "ви", "на", "пови", "про"},
		minRunes: 4,
		test:     func(t Tag) bool { return t.IsVerb() && t.IsImperfect() },
		post:     perfectivize,
	},
	{
		prefixes: []string{"за", "пере"},
		minRunes: 4,
		test:     Tag.IsVerb,
		post:     perfectivize,
	},
}

// perfectivize makes a prefixed verb perfective; its present becomes a
// future.
func perfectivize(t Tag) Tag {
	t = t.WithAspect(AspectPerfective)
	if t.IsPresent() {
		t = t.WithTense(TenseFuture)
	}
	return t
}

// matches returns the prefixes of lowercase the rule applies to.
func (r *prefixRule) matches(lowercase string) []string {
	if r.minRunes > 0 && runeLen(lowercase) <= r.minRunes {
		return nil
	}
	if r.pattern != nil {
		if m := r.pattern.FindString(lowercase); m != "" {
			return []string{m}
		}
		return nil
	}
	var ret []string
	for _, p := range r.prefixes {
		if strings.HasPrefix(lowercase, p) {
			ret = append(ret, p)
		}
	}
	return ret
}

// fromPrefixes strips every applicable prefix from lowercase and rebuilds
// the interpretations of the residual with the prefix put back on the
// lemma. Residuals are looked up in the lexicon only. Interpretations
// already in known are skipped.
func (a *Analyzer) fromPrefixes(lowercase string, known tagSet) []Tag {
	var ret []Tag
	for i := range prefixRules {
		r := &prefixRules[i]
		for _, prefix := range r.matches(lowercase) {
			for _, t := range a.lookup(lowercase[len(prefix):]) {
				if r.test != nil && !r.test(t) {
					continue
				}
				t = t.WithLemma(prefix + t.Lemma())
				if r.post != nil {
					t = r.post(t)
				}
				if known.Has(t) {
					continue
				}
				ret = append(ret, t.WithAuto())
			}
		}
	}
	return ret
}
