package render

import (
	"fmt"

	"birdfeed/internal/domain"
)

// Span is a half-open [Start, End) range of token indices of the original,
// unmodified text.
type Span struct {
	Start int
	End   int
}

// Inject wraps the span with markup: open is prepended to the first token of
// the span and close appended to the last. Only those two boundary tokens are
// touched; no token is ever shifted or renumbered, so injecting any number of
// non-overlapping spans produces the same output in any order. Callers must
// keep using indices of the original text, never re-derive them from a
// mutated sequence.
//
// Indices outside [0, len(tokens)) report domain.ErrSpanOutOfRange: the
// upstream entity indices did not match the tokenized text.
func Inject(tokens []Token, span Span, open, close string) error {
	if span.Start < 0 || span.End <= span.Start || span.End > len(tokens) {
		return fmt.Errorf("span [%d,%d) against %d tokens: %w",
			span.Start, span.End, len(tokens), domain.ErrSpanOutOfRange)
	}
	tokens[span.Start].payload = open + tokens[span.Start].payload
	tokens[span.End-1].payload = tokens[span.End-1].payload + close
	return nil
}
