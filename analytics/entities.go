package analytics

import (
	"regexp"
	"sort"
	"strings"

	"contentiq/types"
)

var capitalizedRunRe = regexp.MustCompile(`\b[A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+){0,3}\b`)

var orgSuffixes = []string{
	"Inc", "Corp", "Corporation", "Ltd", "LLC", "Co", "Company", "Group",
	"Labs", "Technologies", "Systems", "Software", "University", "Institute",
	"Foundation", "Association", "Agency", "Committee", "Ministry", "Bank",
}

// Model-line suffixes that mark a multi-word name as a product.
var productSuffixes = map[string]struct{}{
	"Pro": {}, "Max": {}, "Plus": {}, "Ultra": {}, "Mini": {}, "Lite": {},
	"Edition": {}, "Series": {},
}

var eventWords = map[string]struct{}{
	"Conference": {}, "Summit": {}, "Festival": {}, "Expo": {},
	"Olympics": {}, "Championship": {}, "Convention": {}, "Symposium": {},
	"Hackathon": {},
}

var placeNames = map[string]struct{}{
	"America": {}, "Europe": {}, "Asia": {}, "Africa": {}, "Australia": {},
	"London": {}, "Paris": {}, "Berlin": {}, "Tokyo": {}, "Beijing": {},
	"Washington": {}, "California": {}, "Texas": {}, "China": {}, "India": {},
	"Japan": {}, "Germany": {}, "France": {}, "Russia": {}, "Canada": {},
	"Brazil": {}, "Singapore": {}, "Seattle": {}, "Boston": {}, "Chicago": {},
}

// Words that start sentences often enough to be useless as entities.
var entityNoise = map[string]struct{}{
	"The": {}, "This": {}, "That": {}, "These": {}, "Those": {}, "There": {},
	"Then": {}, "They": {}, "When": {}, "While": {}, "Where": {}, "What": {},
	"After": {}, "Before": {}, "However": {}, "Although": {}, "Because": {},
	"Monday": {}, "Tuesday": {}, "Wednesday": {}, "Thursday": {}, "Friday": {},
	"Saturday": {}, "Sunday": {}, "January": {}, "February": {}, "March": {},
	"April": {}, "June": {}, "July": {}, "August": {}, "September": {},
	"October": {}, "November": {}, "December": {}, "But": {}, "And": {},
	"With": {}, "From": {}, "For": {}, "Not": {}, "One": {}, "Our": {},
	"You": {}, "Your": {}, "His": {}, "Her": {}, "Its": {}, "New": {},
	"Here": {}, "Many": {}, "Most": {}, "Some": {}, "Such": {}, "First": {},
}

// ExtractEntities finds named entities with a capitalized-run heuristic and
// tags each with a coarse category. Deterministic: entities are ranked by
// occurrence count, then first appearance.
func ExtractEntities(text string, max int) []types.Entity {
	type hit struct {
		name  string
		count int
		first int
	}
	hits := make(map[string]*hit)

	for _, loc := range capitalizedRunRe.FindAllStringIndex(text, -1) {
		run := text[loc[0]:loc[1]]
		run = trimNoise(run)
		if run == "" {
			continue
		}
		if h, ok := hits[run]; ok {
			h.count++
			continue
		}
		hits[run] = &hit{name: run, count: 1, first: loc[0]}
	}

	ranked := make([]*hit, 0, len(hits))
	for _, h := range hits {
		// Single generic words appearing once are usually sentence starts.
		if h.count < 2 && !strings.Contains(h.name, " ") {
			if _, place := placeNames[h.name]; !place {
				continue
			}
		}
		ranked = append(ranked, h)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].first < ranked[j].first
	})

	if max > len(ranked) {
		max = len(ranked)
	}
	out := make([]types.Entity, 0, max)
	for _, h := range ranked[:max] {
		out = append(out, types.Entity{Name: h.name, Type: classifyEntity(h.name)})
	}
	return out
}

// trimNoise drops leading sentence-start words from a capitalized run.
func trimNoise(run string) string {
	words := strings.Fields(run)
	for len(words) > 0 {
		if _, noisy := entityNoise[words[0]]; !noisy {
			break
		}
		words = words[1:]
	}
	return strings.Join(words, " ")
}

func classifyEntity(name string) string {
	words := strings.Fields(name)
	last := words[len(words)-1]

	for _, suffix := range orgSuffixes {
		if last == suffix {
			return "ORG"
		}
	}
	if _, ok := eventWords[last]; ok {
		return "EVENT"
	}
	if len(words) > 1 {
		if _, ok := productSuffixes[last]; ok {
			return "PRODUCT"
		}
	}
	if _, ok := placeNames[name]; ok {
		return "PLACE"
	}
	if len(words) == 1 {
		if _, ok := placeNames[words[0]]; ok {
			return "PLACE"
		}
		return "OTHER"
	}
	if len(words) == 2 || len(words) == 3 {
		return "PERSON"
	}
	return "OTHER"
}
