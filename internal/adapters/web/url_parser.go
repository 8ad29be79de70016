package web

import (
	"regexp"

	"birdfeed/internal/domain"
)

// statusURLRegex matches Twitter/X status URLs and extracts the handle and
// post ID. Accepts twitter.com, x.com, and mobile.twitter.com; query
// parameters are ignored.
var statusURLRegex = regexp.MustCompile(
	`^https?://(twitter\.com|x\.com|mobile\.twitter\.com)/(\w+)/status/(\d+)`,
)

// ParseStatusURL extracts the screen name and post ID from a status URL.
// Returns domain.ErrInvalidURL when the format does not match.
func ParseStatusURL(url string) (screenName string, id string, err error) {
	matches := statusURLRegex.FindStringSubmatch(url)
	if matches == nil || len(matches) < 4 {
		return "", "", domain.ErrInvalidURL
	}
	return matches[2], matches[3], nil
}
