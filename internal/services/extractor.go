package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/coursematch/coursematch-backend/internal/types"
)

// CreditRange bounds the number of credits a student asked for.
type CreditRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// PreferenceSet is the structured signal extracted from one chat message.
// It lives for a single turn and is never persisted.
type PreferenceSet struct {
	Keywords            []string
	CareerTerms         []string
	MinInstructorRating *float64
	MaxDifficulty       *int
	ScheduleHints       []string
	CreditBounds        *CreditRange
}

// deptAliases maps phrases students actually type to registrar department
// codes. Multi-word keys are matched against the whole message.
var deptAliases = map[string]string{
	"art": "ARTS", "arts": "ARTS", "artistic": "ARTS",
	"comm": "COMM", "communication": "COMM", "communications": "COMM",
	"cs": "CS", "computer science": "CS", "comp sci": "CS",
	"econ": "ECON", "economics": "ECON",
	"math": "MATH", "mathematics": "MATH",
	"english": "ENGL",
	"hist": "HIST", "history": "HIST",
	"bio": "BIOL", "biology": "BIOL",
	"chem": "CHEM", "chemistry": "CHEM",
	"phys": "PHYS", "physics": "PHYS",
	"psych": "PSYC", "psychology": "PSYC",
	"phil": "PHIL", "philosophy": "PHIL",
	"soc": "SOCI", "sociology": "SOCI",
	"anth": "ANTH", "anthropology": "ANTH",
	"spanish": "SPAN", "french": "FREN", "german": "GERM",
	"music": "MUSC", "theater": "THEA", "theatre": "THEA",
	"dance": "DANC", "film": "FSTD",
	"govt": "GOVT", "government": "GOVT", "politics": "GOVT",
	"religion": "RELG", "architecture": "ARCH",
}

// careerSynonyms maps colloquial career language to the canonical terms the
// catalog's careerRelevance lists use.
var careerSynonyms = map[string][]string{
	"banking":      {"finance", "investment-banking"},
	"investment":   {"finance", "investment-banking"},
	"consulting":   {"consulting"},
	"finance":      {"finance"},
	"tech":         {"tech", "software"},
	"coding":       {"coding", "software"},
	"programming":  {"coding", "software"},
	"data science": {"data-science"},
	"grad school":  {"research", "grad-school"},
	"research":     {"research"},
	"entrepreneur": {"entrepreneurship"},
	"startup":      {"entrepreneurship"},
	"medicine":     {"medicine", "healthcare"},
	"law":          {"law"},
}

var difficultyWords = map[string]int{
	"easy":        2,
	"easier":      2,
	"light":       2,
	"moderate":    3,
	"challenging": 4,
	"hard":        4,
	"rigorous":    4,
}

var scheduleWords = []string{
	"morning", "afternoon", "evening",
	"monday", "tuesday", "wednesday", "thursday", "friday",
}

var (
	ratingPlusRe  = regexp.MustCompile(`(\d(?:\.\d+)?)\s*\+\s*rated`)
	ratingAboveRe = regexp.MustCompile(`rat(?:ing|ed)\s+(?:above|over|at least)\s+(\d(?:\.\d+)?)`)
	clockTimeRe   = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	creditRangeRe = regexp.MustCompile(`(\d)\s*(?:-|to)\s*(\d)\s*credits?`)
	creditRe      = regexp.MustCompile(`(\d)\s*credits?`)
)

// ExtractorService turns free text into a PreferenceSet. It never fails:
// text it cannot interpret degrades to a plain keyword bag.
type ExtractorService interface {
	Extract(message string, profile *types.StudentProfile) PreferenceSet
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

func (s *extractorService) Extract(message string, profile *types.StudentProfile) PreferenceSet {
	lower := strings.ToLower(message)

	keywords := tokenSet(message)
	careers := make(map[string]struct{})

	for alias, code := range deptAliases {
		if containsPhrase(lower, alias) {
			keywords[strings.ToLower(code)] = struct{}{}
		}
	}
	for phrase, canonical := range careerSynonyms {
		if containsPhrase(lower, phrase) {
			for _, term := range canonical {
				careers[term] = struct{}{}
				keywords[term] = struct{}{}
			}
		}
	}

	prefs := PreferenceSet{
		MinInstructorRating: extractMinRating(lower),
		MaxDifficulty:       extractMaxDifficulty(lower),
		CreditBounds:        extractCreditBounds(lower),
	}

	hints := make(map[string]struct{})
	for _, w := range scheduleWords {
		if containsPhrase(lower, w) {
			hints[w] = struct{}{}
		}
	}
	for _, m := range clockTimeRe.FindAllString(lower, -1) {
		hints[strings.Join(strings.Fields(m), "")] = struct{}{}
	}
	// "fits my schedule" with nothing explicit falls back to the student's
	// own stored time preferences.
	if len(hints) == 0 && profile != nil &&
		(strings.Contains(lower, "fits my schedule") || strings.Contains(lower, "sis schedule") || strings.Contains(lower, "my schedule")) {
		for _, t := range profile.TimePreferences {
			t = strings.ToLower(strings.TrimSpace(t))
			if t != "" {
				hints[t] = struct{}{}
			}
		}
	}

	prefs.Keywords = sortedKeys(keywords)
	prefs.CareerTerms = sortedKeys(careers)
	prefs.ScheduleHints = sortedKeys(hints)
	return prefs
}

// containsPhrase matches whole words only, so "cs" does not fire inside
// "physics" and "art" does not fire inside "smart".
func containsPhrase(text, phrase string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], phrase)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(phrase)
		beforeOK := start == 0 || !isWordChar(text[start-1])
		afterOK := end == len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

func extractMinRating(lower string) *float64 {
	for _, re := range []*regexp.Regexp{ratingPlusRe, ratingAboveRe} {
		if m := re.FindStringSubmatch(lower); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil && v >= 0 && v <= 5 {
				return &v
			}
		}
	}
	if strings.Contains(lower, "highly rated") {
		v := 4.5
		return &v
	}
	return nil
}

func extractMaxDifficulty(lower string) *int {
	best := 0
	found := false
	for word, level := range difficultyWords {
		if containsPhrase(lower, word) {
			if !found || level < best {
				best = level
			}
			found = true
		}
	}
	if !found {
		return nil
	}
	return &best
}

func extractCreditBounds(lower string) *CreditRange {
	if m := creditRangeRe.FindStringSubmatch(lower); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if lo > hi {
			lo, hi = hi, lo
		}
		return &CreditRange{Min: lo, Max: hi}
	}
	if m := creditRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return &CreditRange{Min: n, Max: n}
	}
	return nil
}
