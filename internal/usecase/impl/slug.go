package impl

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugSpaces  = regexp.MustCompile(`[\s\p{Zs}]+`)
	slugNonWord = regexp.MustCompile(`[^\w-]+`)
)

// Slugify lowercases name, strips diacritics, turns whitespace runs into "-" and drops everything else that is not [A-Za-z0-9_-].
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	s, _, err := transform.String(t, strings.ToLower(name))
	if err != nil {
		s = strings.ToLower(name)
	}

	s = slugSpaces.ReplaceAllString(s, "-")

	return slugNonWord.ReplaceAllString(s, "")
}

// GenerateSlug appends the numeric suffix that keeps slugs of equally named stores apart.
func GenerateSlug(name string, suffix int) string {
	return Slugify(name) + "-" + strconv.Itoa(suffix)
}
