package render

import (
	"fmt"
	"html"
	"net/url"

	"birdfeed/internal/domain"
)

// Links holds the site URL templates used for entity anchors and intent
// links.
type Links struct {
	// SiteBase is the social site root, without trailing slash.
	SiteBase string
	// HashtagSearch is the search URL prefix a hashtag query is appended to.
	HashtagSearch string
}

// DefaultLinks returns the twitter.com templates.
func DefaultLinks() Links {
	return Links{
		SiteBase:      "https://twitter.com",
		HashtagSearch: "https://twitter.com/search?src=hash&q=",
	}
}

// ProfileURL returns the profile link for a handle.
func (l Links) ProfileURL(screenName string) string {
	return l.SiteBase + "/" + url.PathEscape(screenName)
}

// hashtagURL returns the search link for a hashtag (text without '#').
func (l Links) hashtagURL(text string) string {
	return l.HashtagSearch + url.QueryEscape("#"+text)
}

// injectAnchor wraps an entity span in an anchor. href and title are
// attribute-escaped here; the visible text inside the span is left alone, it
// was already escaped at tokenization.
func injectAnchor(tokens []Token, indices domain.Indices, href, title string) error {
	open := fmt.Sprintf("<a href='%s' title='%s' target='_blank'>",
		html.EscapeString(href), html.EscapeString(title))
	return Inject(tokens, Span{Start: indices.Start(), End: indices.End()}, open, "</a>")
}

// InjectEntities applies all three annotation categories against the same
// original token sequence. Category order is fixed but irrelevant: spans from
// different categories do not overlap (upstream guarantee) and Inject is
// commutative for non-overlapping spans.
func InjectEntities(tokens []Token, ents domain.Entities, links Links) error {
	for _, u := range ents.URLs {
		if err := injectAnchor(tokens, u.Indices, u.URL, u.ExpandedURL); err != nil {
			return fmt.Errorf("url entity %q: %w", u.URL, err)
		}
	}
	for _, h := range ents.Hashtags {
		if err := injectAnchor(tokens, h.Indices, links.hashtagURL(h.Text), "#"+h.Text); err != nil {
			return fmt.Errorf("hashtag entity %q: %w", h.Text, err)
		}
	}
	for _, m := range ents.UserMentions {
		if err := injectAnchor(tokens, m.Indices, links.ProfileURL(m.ScreenName), m.Name); err != nil {
			return fmt.Errorf("mention entity %q: %w", m.ScreenName, err)
		}
	}
	return nil
}
