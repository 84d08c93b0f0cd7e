package morpho

import (
	"regexp"
	"strings"
	"unicode"
)

// stressReplacer removes the combining stress marks a text may carry.
var stressReplacer = strings.NewReplacer(
	"\u0301", "", // acute
	"\u0300", "", // grave
)

// Unstress strips stress diacritics from s.
func Unstress(s string) string {
	return stressReplacer.Replace(s)
}

// Apostrophe is the canonical apostrophe of the lexicon.
const Apostrophe = "’"

// apostropheReplacer folds the apostrophe look-alikes found in real texts
// into Apostrophe.
var apostropheReplacer = strings.NewReplacer(
	"'", Apostrophe,
	"ʼ", Apostrophe, // U+02BC modifier letter apostrophe
	"‘", Apostrophe,
	"`", Apostrophe,
	"´", Apostrophe,
	"ʹ", Apostrophe, // U+02B9
	"′", Apostrophe, // U+2032 prime
)

// NormalizeApostrophes replaces every apostrophe variant in s with
// Apostrophe.
func NormalizeApostrophes(s string) string {
	return apostropheReplacer.Replace(s)
}

const (
	letterUkUpper = `А-ЩЬЮЯЄІЇҐ`
	letterUkLower = `а-щьюяєіїґ`
)

var (
	reInitial       = regexp.MustCompile(`^[` + letterUkUpper + `]$`)
	reLowerLetter   = regexp.MustCompile(`^[` + letterUkLower + `]$`)
	reAllUkUpper    = regexp.MustCompile(`^[` + letterUkUpper + `’\-]+$`)
	reDigitCompound = regexp.MustCompile(`^(\d+)[-–—]?(\D+)$`)
	reElative       = regexp.MustCompile(`^(що|як)?най`)
)

// varyLetterCases returns the spellings a token is looked up under:
// its lowercase, the token itself when it differs, and the capitalized
// form of an all-uppercase word.
func varyLetterCases(s string) []string {
	lower := strings.ToLower(s)
	ret := []string{lower}
	if lower != s {
		ret = append(ret, s)
		if runeLen(s) > 1 && reAllUkUpper.MatchString(s) {
			ret = append(ret, capitalizeFirst(lower))
		}
	}
	return ret
}

func capitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// titlecase lowercases s and capitalizes every hyphen-separated part.
func titlecase(s string) string {
	parts := strings.Split(strings.ToLower(s), "-")
	for i, p := range parts {
		parts[i] = capitalizeFirst(p)
	}
	return strings.Join(parts, "-")
}

// fricativize replaces ґ with г and returns the rune indexes it changed.
func fricativize(s string) (string, []int) {
	runes := []rune(s)
	var diffs []int
	for i, r := range runes {
		switch r {
		case 'ґ':
			runes[i] = 'г'
		case 'Ґ':
			runes[i] = 'Г'
		default:
			continue
		}
		diffs = append(diffs, i)
	}
	if diffs == nil {
		return s, nil
	}
	return string(runes), diffs
}

// restorePlosive turns the fricative г at every index of diffs back into ґ,
// keeping the letter case. It reports false when some index does not hold
// a г.
func restorePlosive(s string, diffs []int) (string, bool) {
	runes := []rune(s)
	for _, i := range diffs {
		if i >= len(runes) {
			return "", false
		}
		switch runes[i] {
		case 'г':
			runes[i] = 'ґ'
		case 'Г':
			runes[i] = 'Ґ'
		default:
			return "", false
		}
	}
	return string(runes), true
}

func runeLen(s string) int { return len([]rune(s)) }

// dropRunes removes n runes from the start (n > 0) or the end (n < 0) of s.
func dropRunes(s string, n int) string {
	runes := []rune(s)
	if n > 0 {
		if n > len(runes) {
			return ""
		}
		return string(runes[n:])
	}
	if -n > len(runes) {
		return ""
	}
	return string(runes[:len(runes)+n])
}

// lastRunes returns the last n runes of s.
func lastRunes(s string, n int) string {
	runes := []rune(s)
	if n > len(runes) {
		return s
	}
	return string(runes[len(runes)-n:])
}
