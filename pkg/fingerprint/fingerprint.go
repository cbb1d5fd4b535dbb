// Package fingerprint derives the stable content hash used for deduplication.
// The hash is the dedup key stored with every content item, so any change to
// the normalization rules is a breaking migration for existing data.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

// Hash returns a deterministic hex digest over the normalized URL and text.
// Same inputs always produce the same hash; it is a pure function.
func Hash(rawURL, text string) string {
	h := sha256.New()
	h.Write([]byte(NormalizeURL(rawURL)))
	h.Write([]byte{0}) // separator, keeps (a+b, c) distinct from (a, b+c)
	h.Write([]byte(normalizeText(text)))
	return hex.EncodeToString(h.Sum(nil))
}

// NormalizeURL canonicalizes a URL for hashing: lowercased scheme and host,
// stripped fragment, stripped tracking query parameters, no trailing slash.
// Unparseable input is used as-is after trimming.
func NormalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return strings.TrimRight(rawURL, "/")
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	// drop tracking noise so shared links dedup against direct ones
	q := u.Query()
	for key := range q {
		if strings.HasPrefix(key, "utm_") || key == "fbclid" || key == "gclid" || key == "ref" {
			q.Del(key)
		}
	}
	u.RawQuery = q.Encode()

	u.Path = strings.TrimRight(u.Path, "/")
	return u.String()
}

// normalizeText collapses all whitespace runs to single spaces and lowercases,
// so formatting-only differences do not defeat deduplication
func normalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
