package listing

import (
	"sort"
	"strings"
)

type Filter struct {
	// Term matches title, description or any tag, case-insensitively.
	Term     string
	Language string
	Seller   string
}

func (f Filter) Matches(l Listing) bool {
	if f.Language != "" && l.Language != f.Language {
		return false
	}
	if f.Seller != "" && !l.SoldBy(f.Seller) {
		return false
	}
	if f.Term == "" {
		return true
	}

	term := strings.ToLower(f.Term)
	if strings.Contains(strings.ToLower(l.Title), term) ||
		strings.Contains(strings.ToLower(l.Description), term) {
		return true
	}
	for _, tag := range l.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func Search(listings []Listing, filter Filter) []Listing {
	results := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if filter.Matches(l) {
			results = append(results, l)
		}
	}
	return results
}

// Languages returns the distinct languages used by listings, sorted.
func Languages(listings []Listing) []string {
	seen := make(map[string]struct{})
	for _, l := range listings {
		seen[l.Language] = struct{}{}
	}

	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
