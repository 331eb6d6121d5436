package service

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// turkishLower folds text with Turkish casing rules. strings.ToLower maps
// 'İ' to 'i' plus a combining dot, which would break both the locative
// regex and the city scan below. A cases.Caser carries mutable transform
// state, so a fresh one is built per call rather than shared across the
// request goroutines.
func turkishLower(s string) string {
	return cases.Lower(language.Turkish).String(s)
}

// weatherKeywords and questionKeywords must BOTH hit for the message to
// count as a weather question.
var (
	weatherKeywords  = []string{"hava", "sıcaklık", "derece"}
	questionKeywords = []string{"kaç", "nasıl", "nedir"}
)

// locativeCity matches a word carrying a Turkish locative suffix, e.g.
// "Çorum'da" or "İstanbul'da".
var locativeCity = regexp.MustCompile(`([a-zA-ZçğıöşüÇĞİÖŞÜ]+)'(da|de|ta|te)`)

// commonCities is scanned when no locative suffix is present, catching
// bare forms like "istanbul hava".
var commonCities = []string{
	"istanbul", "ankara", "izmir", "bursa", "antalya", "adana",
	"konya", "gaziantep", "çorum", "corum", "samsun", "trabzon",
}

// DetectWeatherIntent reports whether the message asks about the weather
// and, if so, which city it names. A weather question with no resolvable
// city returns ok=true with an empty city; callers should then fall through
// to standard generation (the persona prompt tells the model to ask which
// city the visitor means).
func DetectWeatherIntent(message string) (city string, ok bool) {
	q := turkishLower(message)

	if !containsAny(q, weatherKeywords) || !containsAny(q, questionKeywords) {
		return "", false
	}

	if m := locativeCity.FindStringSubmatch(q); m != nil {
		return m[1], true
	}
	for _, c := range commonCities {
		if strings.Contains(q, c) {
			return c, true
		}
	}
	return "", true
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
