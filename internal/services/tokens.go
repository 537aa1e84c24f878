package services

import (
	"sort"
	"strings"
)

// Tokenization shared by the preference extractor and the syllabus matcher.
// Lower-case, punctuation stripped, stopwords and single characters dropped.

var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "an": {}, "and": {}, "any": {}, "are": {}, "as": {},
	"at": {}, "be": {}, "but": {}, "by": {}, "can": {}, "class": {},
	"classes": {}, "course": {}, "courses": {}, "do": {}, "find": {},
	"for": {}, "from": {}, "get": {}, "give": {}, "have": {}, "how": {},
	"i": {}, "in": {}, "is": {}, "it": {}, "like": {}, "looking": {},
	"me": {}, "my": {}, "need": {}, "next": {}, "of": {}, "on": {},
	"or": {}, "practice": {}, "professor": {}, "recommend": {}, "semester": {},
	"show": {}, "some": {}, "take": {}, "that": {}, "the": {}, "this": {},
	"to": {}, "want": {}, "what": {}, "which": {}, "with": {}, "would": {},
}

func tokenize(text string) []string {
	lower := strings.ToLower(text)
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, ok := stopwords[f]; ok {
			continue
		}
		out = append(out, f)
	}
	return out
}

func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range tokenize(text) {
		set[t] = struct{}{}
	}
	return set
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = struct{}{}
		}
	}
	return set
}

// sortedKeys keeps every derived sequence deterministic: identical input
// must yield identical output, including ordering.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func intersect(a, b map[string]struct{}) []string {
	if len(b) < len(a) {
		a, b = b, a
	}
	var out []string
	for k := range a {
		if _, ok := b[k]; ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
