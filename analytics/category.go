package analytics

import (
	"sort"
	"strings"
)

// categoryOrder fixes the tie-break order for classification.
var categoryOrder = []string{
	"technology", "business", "health", "science", "politics",
	"entertainment", "sports", "education", "lifestyle",
}

// categoryLexicon maps each category to signal words. Classification is a
// simple vote: the category whose signals appear most often wins.
var categoryLexicon = map[string][]string{
	"technology": {
		"software", "hardware", "computer", "app", "data", "cloud", "ai",
		"algorithm", "internet", "digital", "code", "programming", "startup",
		"cybersecurity", "robot", "device", "platform", "developer", "tech",
		"machine", "network", "server", "database", "encryption", "browser",
	},
	"business": {
		"market", "revenue", "profit", "investment", "investor", "stock",
		"economy", "economic", "company", "startup", "finance", "financial",
		"trade", "sales", "customer", "brand", "acquisition", "merger",
		"earnings", "quarterly", "shareholder", "entrepreneur", "industry",
	},
	"health": {
		"health", "medical", "medicine", "doctor", "patient", "disease",
		"treatment", "therapy", "symptom", "diagnosis", "vaccine", "drug",
		"hospital", "clinical", "wellness", "nutrition", "diet", "exercise",
		"mental", "cancer", "virus", "immune",
	},
	"science": {
		"research", "study", "scientist", "experiment", "discovery", "theory",
		"physics", "chemistry", "biology", "climate", "species", "evolution",
		"quantum", "genome", "laboratory", "hypothesis", "astronomy", "planet",
		"particle", "molecule",
	},
	"politics": {
		"government", "election", "policy", "president", "senator", "congress",
		"parliament", "vote", "campaign", "legislation", "democracy", "party",
		"minister", "diplomatic", "sanction", "treaty", "political", "senate",
		"governor", "candidate",
	},
	"entertainment": {
		"movie", "film", "music", "album", "artist", "actor", "actress",
		"celebrity", "concert", "festival", "television", "streaming", "show",
		"theater", "director", "song", "band", "award", "drama", "comedy",
	},
	"sports": {
		"game", "team", "player", "season", "league", "championship", "coach",
		"score", "tournament", "football", "basketball", "baseball", "soccer",
		"tennis", "olympic", "athlete", "match", "playoff", "stadium", "racing",
	},
	"education": {
		"school", "student", "teacher", "university", "college", "education",
		"learning", "classroom", "curriculum", "degree", "academic", "tuition",
		"scholarship", "campus", "professor", "graduate", "literacy", "exam",
	},
	"lifestyle": {
		"travel", "food", "recipe", "fashion", "style", "home", "garden",
		"family", "relationship", "wedding", "vacation", "restaurant",
		"cooking", "beauty", "hobby", "culture", "design", "interior",
	},
}

// classify votes each category's lexicon against the text's word
// frequencies and returns the winning category plus the topics list (every
// category with a meaningful signal, strongest first, capped at four).
// Returns ("other", empty) when nothing matches.
func classify(text string) (string, []string) {
	freq := make(map[string]int)
	for _, w := range Words(strings.ToLower(text)) {
		freq[w]++
	}

	scores := make(map[string]int, len(categoryOrder))
	for cat, signals := range categoryLexicon {
		for _, sig := range signals {
			scores[cat] += freq[sig]
		}
	}

	best := "other"
	bestScore := 0
	topics := []string{}
	for _, cat := range categoryOrder {
		if scores[cat] > bestScore {
			best = cat
			bestScore = scores[cat]
		}
	}
	if bestScore == 0 {
		return "other", topics
	}

	// Topics: categories scoring at least a third of the winner.
	type ranked struct {
		cat   string
		score int
	}
	var all []ranked
	for _, cat := range categoryOrder {
		if scores[cat] > 0 && scores[cat]*3 >= bestScore {
			all = append(all, ranked{cat, scores[cat]})
		}
	}
	// Stable sort keeps the fixed category order for equal scores.
	sort.SliceStable(all, func(i, j int) bool { return all[i].score > all[j].score })
	for _, r := range all {
		topics = append(topics, r.cat)
		if len(topics) == 4 {
			break
		}
	}

	return best, topics
}
