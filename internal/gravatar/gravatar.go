// Package gravatar derives avatar URLs from email addresses.
//
// Gravatar is a free service that maps an email address to a profile picture.
// The mapping is a pure function — no API call, no key, no error path. The
// URL embeds an MD5 hash of the email, and Gravatar's CDN serves whatever
// image the owner of that address has uploaded (or a generated placeholder).
//
// MD5 here is NOT a security decision: it is the hash Gravatar's protocol
// mandates for address lookup. Nothing secret is being protected — the email
// is only being turned into a stable cache key.
package gravatar

import (
	"crypto/md5"
	"fmt"
	"net/url"
	"strings"
)

// Options controls the presentation parameters appended to the URL.
// The zero value of any field omits that parameter, letting Gravatar apply
// its own defaults.
type Options struct {
	Size    int    // pixel size (square), e.g. 200
	Rating  string // allowed content rating: "g", "pg", "r", "x"
	Default string // fallback image when no avatar exists, e.g. "mm" (mystery man)
}

// DefaultOptions are the presentation settings used for new registrations:
// 200px, PG-rated content only, "mystery man" silhouette as the fallback.
func DefaultOptions() Options {
	return Options{Size: 200, Rating: "pg", Default: "mm"}
}

// URL returns the Gravatar URL for the given email address.
//
// The protocol requires the email to be trimmed and lowercased before
// hashing, so "Alice@X.com " and "alice@x.com" resolve to the same avatar.
func URL(email string, opts Options) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))

	q := url.Values{}
	if opts.Size > 0 {
		q.Set("s", fmt.Sprintf("%d", opts.Size))
	}
	if opts.Rating != "" {
		q.Set("r", opts.Rating)
	}
	if opts.Default != "" {
		q.Set("d", opts.Default)
	}

	u := fmt.Sprintf("https://www.gravatar.com/avatar/%x", hash)
	if encoded := q.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}
