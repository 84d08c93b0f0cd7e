package morpho

import "regexp"

// closedClass is a token class recognised by its shape alone. Tokens of
// such a class never reach the lexicon.
type closedClass struct {
	name     string
	patterns []*regexp.Regexp
	tags     []Tag
}

// reRoman takes any upper case word spelled only with Roman numeral letters
// for a numeral: MIX and LIV are numr:roman, never Latin words.
var (
	reURL          = regexp.MustCompile(`^(?:(?:https?|ftp)://|www\.)[^\s/$.?#][^\s]*$`)
	reEmail        = regexp.MustCompile(`^[\w.%+\-]+@[\w\-]+(?:\.[\w\-]+)+$`)
	reSymbol       = regexp.MustCompile(`^[\p{Sm}\p{Sc}#%&*@§№°_/\\|~^]+$`)
	reLiteralSmile = regexp.MustCompile(`^(?:[:;=8][\-o^’']?[()\[\]DPpOo3*|/\\]+|\){2,}|\({2,}|\^_*\^|[xX]D+)$`)
	reArabic       = regexp.MustCompile(`^\d+(?:[.,]\d+)*$`)
	reRoman        = regexp.MustCompile(`^M{0,4}(?:CM|CD|D?C{0,3})(?:XC|XL|L?X{0,3})(?:IX|IV|V?I{0,3})$`)
	rePunct        = regexp.MustCompile(`^[\p{P}\-–—]+$`)
	reEmoji        = regexp.MustCompile(`^[\p{So}\x{FE0F}\x{200D}\x{1F3FB}-\x{1F3FF}]+$`)
	reSmile        = regexp.MustCompile(`^[:;][\-]?[()DPp]$`)
	reForeign      = regexp.MustCompile(`^\p{Latin}[\p{Latin}\d’'\-]*$`)
)

// closedClasses are tried in order; the first match wins.
var closedClasses = []closedClass{
	{"url", []*regexp.Regexp{reURL}, tagsOf("sym")},
	{"email", []*regexp.Regexp{reEmail}, tagsOf("sym")},
	{"symbol", []*regexp.Regexp{reSymbol}, tagsOf("sym")},
	{"literal smile", []*regexp.Regexp{reLiteralSmile}, tagsOf("sym")},
	{"arabic numeral", []*regexp.Regexp{reArabic}, tagsOf("numr")},
	{"roman numeral", []*regexp.Regexp{reRoman}, tagsOf("numr:roman")},
	{"punctuation", []*regexp.Regexp{rePunct}, tagsOf("punct")},
	{"emoji", []*regexp.Regexp{reEmoji, reSmile}, tagsOf("sym")},
	{"foreign", []*regexp.Regexp{reForeign}, tagsOf(
		"noun:foreign",
		"noun:prop:foreign",
		"adj:foreign",
		"verb:foreign",
		"x:foreign",
	)},
}

func tagsOf(flags ...string) []Tag {
	ret := make([]Tag, len(flags))
	for i, f := range flags {
		ret[i] = ParseTag(f, "", "").WithAuto()
	}
	return ret
}

// classify returns the fixed interpretations of a closed-class token, each
// lemmatized as the token itself. ok is false when token belongs to no
// closed class.
func classify(token string) (tags []Tag, ok bool) {
	if token == "" {
		return nil, false
	}
	for _, c := range closedClasses {
		for _, re := range c.patterns {
			if !re.MatchString(token) {
				continue
			}
			tags = make([]Tag, len(c.tags))
			for i, t := range c.tags {
				tags[i] = t.WithLemma(token)
			}
			return tags, true
		}
	}
	return nil, false
}
