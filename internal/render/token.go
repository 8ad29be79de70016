// Package render turns a post record into rendering-ready HTML by injecting
// anchor markup at entity positions of the original text.
package render

import (
	"html"
	"strings"
)

// Token is one visible character of the post text (a single Unicode code
// point) plus the markup accumulated around it. Entity indices supplied by
// the upstream API count code points, so tokens must too: splitting on bytes
// would mis-place every entity in non-ASCII text.
type Token struct {
	payload string
}

// Tokenize splits text into one token per code point. Each token's payload
// starts as the HTML-escaped character, so raw text can never leak markup
// while fragments injected later pass through untouched. Empty text yields an
// empty sequence.
func Tokenize(text string) []Token {
	runes := []rune(text)
	tokens := make([]Token, len(runes))
	for i, r := range runes {
		tokens[i] = Token{payload: html.EscapeString(string(r))}
	}
	return tokens
}

// Render concatenates all token payloads in order.
func Render(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.payload)
	}
	return sb.String()
}
