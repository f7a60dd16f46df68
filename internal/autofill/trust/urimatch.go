// internal/autofill/trust/urimatch.go

// Package trust decides whether the page receiving a fill is
// same-origin-equivalent to the tab the user sees. It hosts the URI match
// service (saved vault URI vs page URL under a configured match mode) and
// the iframe trust evaluator built on top of it.
package trust

import (
	"net/url"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"

	"github.com/xkilldash9x/vaultfill-cli/api/schemas"
)

// EquivalentDomains supplies the domain groupings a page URL belongs to.
// Base-domain matching treats every member of a group as the same site.
type EquivalentDomains interface {
	Groups(pageURL string) [][]string
}

// defaultEquivalentGroups are well-known multi-domain properties. Config can
// extend the set; it cannot shrink it.
var defaultEquivalentGroups = [][]string{
	{"google.com", "youtube.com", "gmail.com"},
	{"apple.com", "icloud.com"},
	{"amazon.com", "amazon.co.uk", "amazon.de", "amazon.fr", "amazon.es", "amazon.it", "amazon.ca", "amazon.com.au", "amazon.co.jp"},
	{"ebay.com", "ebay.co.uk", "ebay.de", "ebay.fr", "ebay.es", "ebay.it", "ebay.ca", "ebay.com.au"},
	{"wellsfargo.com", "wf.com"},
	{"bankofamerica.com", "bofa.com", "mbna.com"},
	{"sony.com", "playstation.com", "sonyentertainmentnetwork.com"},
	{"zonealarm.com", "zonelabs.com"},
	{"live.com", "hotmail.com", "outlook.com", "microsoft.com", "microsoftonline.com", "office.com", "office365.com", "xbox.com", "azure.com"},
	{"overture.com", "yahoo.com", "flickr.com"},
	{"steampowered.com", "steamcommunity.com", "steamgames.com"},
	{"ubi.com", "ubisoft.com"},
	{"logmein.com", "lastpass.com"},
	{"dropbox.com", "getdropbox.com"},
	{"wordpress.com", "wp.com"},
	{"stackexchange.com", "stackoverflow.com", "serverfault.com", "superuser.com", "askubuntu.com"},
	{"rakuten.com", "buy.com"},
	{"united.com", "continental.com"},
	{"disneymoviesanywhere.com", "go.com", "disney.com", "dadt.com", "disneyplus.com"},
}

// StaticEquivalents is the in-process EquivalentDomains source: the built-in
// table plus any config-supplied groups.
type StaticEquivalents struct {
	groups [][]string
}

// NewStaticEquivalents builds the lookup from the default table and extra
// config groups.
func NewStaticEquivalents(extra [][]string) *StaticEquivalents {
	groups := make([][]string, 0, len(defaultEquivalentGroups)+len(extra))
	groups = append(groups, defaultEquivalentGroups...)
	groups = append(groups, extra...)
	return &StaticEquivalents{groups: groups}
}

// Groups returns every group containing the page URL's base domain.
func (s *StaticEquivalents) Groups(pageURL string) [][]string {
	base := BaseDomain(pageURL)
	if base == "" {
		return nil
	}
	var out [][]string
	for _, g := range s.groups {
		for _, d := range g {
			if d == base {
				out = append(out, g)
				break
			}
		}
	}
	return out
}

// BaseDomain extracts the eTLD+1 of a URL using the Public Suffix List, so
// "accounts.example.co.uk" yields "example.co.uk". Empty on unparseable
// input; never an error, a URI that cannot be parsed just never matches.
func BaseDomain(rawURL string) string {
	host := Host(rawURL)
	if host = stripPort(host); host == "" {
		return ""
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// Bare hosts (localhost, intranet names) have no registrable
		// domain; fall back to the host itself so they still compare.
		return host
	}
	return domain
}

// Host returns the host[:port] of a URL, tolerating scheme-less vault URIs
// like "example.com/login".
func Host(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

func stripPort(host string) string {
	if i := strings.LastIndex(host, ":"); i > -1 && !strings.Contains(host, "]") {
		return host[:i]
	}
	return host
}

// URIMatches reports whether one saved login URI matches the page URL under
// its match mode (or the default mode when the URI carries none).
// equivalents are the page URL's domain groups, consulted by base-domain
// matching only.
func URIMatches(pageURL string, saved schemas.LoginURI, defaultMode schemas.URIMatchMode, equivalents [][]string, logger *zap.Logger) bool {
	if strings.TrimSpace(saved.URI) == "" {
		return false
	}
	mode := defaultMode
	if saved.Match != nil {
		mode = *saved.Match
	}

	switch mode {
	case schemas.URIMatchNever:
		return false

	case schemas.URIMatchExact:
		return pageURL == saved.URI

	case schemas.URIMatchStartsWith:
		return strings.HasPrefix(pageURL, saved.URI)

	case schemas.URIMatchHost:
		pageHost := Host(pageURL)
		return pageHost != "" && pageHost == Host(saved.URI)

	case schemas.URIMatchRegex:
		re, err := regexp.Compile("(?i)" + saved.URI)
		if err != nil {
			logger.Warn("Invalid regex in saved URI match, treating as no match",
				zap.String("uri", saved.URI), zap.Error(err))
			return false
		}
		return re.MatchString(pageURL)

	case schemas.URIMatchBaseDomain:
		pageBase := BaseDomain(pageURL)
		savedBase := BaseDomain(saved.URI)
		if pageBase == "" || savedBase == "" {
			return false
		}
		if pageBase == savedBase {
			return true
		}
		for _, group := range equivalents {
			if containsDomain(group, pageBase) && containsDomain(group, savedBase) {
				return true
			}
		}
		return false
	}
	return false
}

func containsDomain(group []string, domain string) bool {
	for _, d := range group {
		if d == domain {
			return true
		}
	}
	return false
}
