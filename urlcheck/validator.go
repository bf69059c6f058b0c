// Package urlcheck validates and canonicalizes target URLs before any
// outbound fetch. Validation resolves hostnames and classifies every
// resulting address, so a hostname pointing at an internal network is
// rejected even when the URL string looks harmless.
package urlcheck

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"regexp"
	"strings"

	"contentiq/types"
)

// Hosts that are never fetchable regardless of what they resolve to
// (cloud metadata endpoints).
var blockedHosts = map[string]struct{}{
	"metadata.google.internal": {},
	"169.254.169.254":          {},
	"metadata.azure.internal":  {},
}

// Resolver is the DNS lookup dependency, injectable for tests.
type Resolver interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// Validator rejects URLs that are structurally invalid or could be used
// for network-internal access.
type Validator struct {
	resolver     Resolver
	maxURLLength int
	blocked      []*regexp.Regexp
}

// New builds a Validator. Invalid blocked patterns are skipped.
func New(maxURLLength int, blockedPatterns []string) *Validator {
	v := &Validator{
		resolver:     net.DefaultResolver,
		maxURLLength: maxURLLength,
	}
	for _, p := range blockedPatterns {
		if re, err := regexp.Compile("(?i)" + p); err == nil {
			v.blocked = append(v.blocked, re)
		}
	}
	return v
}

// WithResolver swaps the DNS resolver. Used by tests.
func (v *Validator) WithResolver(r Resolver) *Validator {
	v.resolver = r
	return v
}

// Validate parses, checks and resolves a candidate URL. It returns the
// parsed URL on success and a KindInvalidTarget error otherwise. It is also
// re-applied to every redirect target during a fetch.
func (v *Validator) Validate(ctx context.Context, raw string) (*url.URL, error) {
	if v.maxURLLength > 0 && len(raw) > v.maxURLLength {
		return nil, types.NewError(types.KindInvalidTarget, "URL exceeds maximum length")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, types.WrapError(types.KindInvalidTarget, "URL could not be parsed", err)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return nil, types.NewError(types.KindInvalidTarget,
			fmt.Sprintf("invalid URL scheme %q, only http and https are allowed", u.Scheme))
	}

	if u.User != nil {
		return nil, types.NewError(types.KindInvalidTarget, "URLs with embedded credentials are not permitted")
	}

	host := u.Hostname()
	if host == "" {
		return nil, types.NewError(types.KindInvalidTarget, "URL must include a hostname")
	}

	if _, ok := blockedHosts[strings.ToLower(host)]; ok {
		return nil, types.NewError(types.KindInvalidTarget, "access to this host is not permitted")
	}

	for _, re := range v.blocked {
		if re.MatchString(raw) {
			return nil, types.NewError(types.KindInvalidTarget, "this URL matches a blocked pattern")
		}
	}

	// Resolve and classify every address the host maps to. A literal IP
	// skips the DNS round trip but gets the same classification.
	if addr, err := netip.ParseAddr(strings.Trim(host, "[]")); err == nil {
		if reason := classify(addr); reason != "" {
			return nil, types.NewError(types.KindInvalidTarget, reason)
		}
		return u, nil
	}

	ipAddrs, err := v.resolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, types.WrapError(types.KindInvalidTarget,
			fmt.Sprintf("could not resolve hostname %q", host), err)
	}
	for _, ia := range ipAddrs {
		addr, ok := netip.AddrFromSlice(ia.IP)
		if !ok {
			continue
		}
		if reason := classify(addr.Unmap()); reason != "" {
			return nil, types.NewError(types.KindInvalidTarget, reason)
		}
	}

	return u, nil
}

// classify returns a rejection reason for addresses that must never be
// fetched, or "" for publicly routable ones.
func classify(addr netip.Addr) string {
	switch {
	case addr.IsLoopback():
		return "access to loopback addresses is not permitted"
	case addr.IsPrivate():
		return "access to private network addresses is not permitted"
	case addr.IsLinkLocalUnicast(), addr.IsLinkLocalMulticast():
		return "access to link-local addresses is not permitted"
	case addr.IsMulticast():
		return "access to multicast addresses is not permitted"
	case addr.IsUnspecified():
		return "access to unspecified addresses is not permitted"
	case addr.Is4() && addr.As4()[0] == 0:
		return "access to reserved addresses is not permitted"
	}
	return ""
}
