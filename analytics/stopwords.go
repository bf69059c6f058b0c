package analytics

import "strings"

// stopwords are excluded from keyword candidates and term vectors.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "being": {}, "have": {}, "has": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "may": {}, "might": {}, "shall": {}, "can": {}, "to": {},
	"of": {}, "in": {}, "for": {}, "on": {}, "with": {}, "at": {}, "by": {},
	"from": {}, "as": {}, "into": {}, "through": {}, "during": {},
	"before": {}, "after": {}, "above": {}, "below": {}, "between": {},
	"out": {}, "off": {}, "over": {}, "under": {}, "again": {},
	"further": {}, "then": {}, "once": {}, "that": {}, "this": {},
	"these": {}, "those": {}, "it": {}, "its": {}, "he": {}, "she": {},
	"they": {}, "them": {}, "his": {}, "her": {}, "their": {}, "my": {},
	"your": {}, "our": {}, "who": {}, "whom": {}, "which": {}, "what": {},
	"where": {}, "when": {}, "why": {}, "how": {}, "all": {}, "each": {},
	"every": {}, "both": {}, "few": {}, "more": {}, "most": {}, "other": {},
	"some": {}, "such": {}, "no": {}, "nor": {}, "not": {}, "only": {},
	"than": {}, "too": {}, "very": {}, "just": {}, "but": {}, "and": {},
	"or": {}, "if": {}, "so": {}, "about": {}, "up": {}, "also": {},
	"well": {}, "there": {}, "here": {}, "because": {}, "while": {},
	"you": {}, "we": {}, "i": {}, "me": {}, "him": {}, "us": {},
	"any": {}, "own": {}, "same": {}, "new": {}, "now": {}, "one": {},
	"two": {}, "first": {}, "said": {}, "like": {}, "many": {}, "much": {},
	"get": {}, "got": {}, "make": {}, "made": {}, "even": {}, "still": {},
	"way": {}, "however": {}, "since": {}, "without": {}, "within": {},
}

// IsStopword reports whether a word is a common stopword.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}
