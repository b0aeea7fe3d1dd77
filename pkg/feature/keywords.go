package feature

import (
	"slices"
	"strings"
	"unicode"
)

// inflections are the endings a keyword's last word may carry and still match.
var inflections = []string{"", "s", "es", "d", "ed", "ing", "er", "ers"}

// Text is lower-cased input split into words. Letters, digits and hyphens
// form words; everything else separates them.
type Text struct {
	words []string
}

func ParseText(s string) Text {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
	return Text{words: words}
}

// HasPhrase reports whether phrase occurs as a run of whole words, with no
// inflection allowed.
func (t Text) HasPhrase(phrase string) bool {
	return t.match(ParseText(phrase).words, false)
}

// HasAny reports whether any keyword occurs on word boundaries. The last
// word of a keyword also matches its regular inflections, so "task" matches
// "tasks" but "idea" never matches "ideal". A trailing "*" makes the last
// word a stem: "categor*" matches "categorize" and "categories".
func (t Text) HasAny(keywords ...string) bool {
	for _, kw := range keywords {
		if t.match(strings.Fields(strings.ToLower(kw)), true) {
			return true
		}
	}
	return false
}

func (t Text) match(pattern []string, inflect bool) bool {
	if len(pattern) == 0 {
		return false
	}
	last := len(pattern) - 1
	for i := 0; i+len(pattern) <= len(t.words); i++ {
		ok := true
		for j, p := range pattern {
			w := t.words[i+j]
			if j == last && inflect {
				ok = wordMatches(w, p)
			} else {
				ok = w == p
			}
			if !ok {
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func wordMatches(word, kw string) bool {
	if stem, ok := strings.CutSuffix(kw, "*"); ok {
		return stem != "" && strings.HasPrefix(word, stem)
	}
	if rest, ok := strings.CutPrefix(word, kw); ok {
		return slices.Contains(inflections, rest)
	}
	// "decide" -> "deciding"
	if base, ok := strings.CutSuffix(kw, "e"); ok {
		rest, ok := strings.CutPrefix(word, base)
		return ok && rest == "ing"
	}
	return false
}
