package urlcheck

import (
	"net/url"
	"strings"
)

// Canonicalize normalizes a URL for cache fingerprinting so that
// syntactically different URLs resolving to the same resource share a key.
// Steps: lowercase scheme and host, strip default ports, drop the fragment,
// remove common tracking query parameters, sort the remaining query, and
// trim the trailing slash.
func Canonicalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return strings.ToLower(raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)

	if (u.Scheme == "http" && strings.HasSuffix(u.Host, ":80")) ||
		(u.Scheme == "https" && strings.HasSuffix(u.Host, ":443")) {
		u.Host = u.Hostname()
	}

	u.Fragment = ""

	q := u.Query()
	for k := range q {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, "utm_") || lk == "fbclid" || lk == "gclid" || lk == "ref" {
			q.Del(k)
		}
	}
	// Encode sorts keys, which makes parameter order insignificant.
	u.RawQuery = q.Encode()

	out := u.String()
	return strings.TrimRight(out, "/")
}
