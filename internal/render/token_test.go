package render

import "testing"

func TestTokenize_ASCIIText_OneTokenPerCharacter(t *testing.T) {
	// Arrange
	text := "Hello world"

	// Act
	tokens := Tokenize(text)

	// Assert
	if len(tokens) != len(text) {
		t.Errorf("token count: got %d, want %d", len(tokens), len(text))
	}
	if got := Render(tokens); got != text {
		t.Errorf("round trip: got %q, want %q", got, text)
	}
}

func TestTokenize_EmptyText_EmptySequence(t *testing.T) {
	// Act
	tokens := Tokenize("")

	// Assert
	if len(tokens) != 0 {
		t.Errorf("token count: got %d, want 0", len(tokens))
	}
	if Render(tokens) != "" {
		t.Errorf("render: got %q, want empty", Render(tokens))
	}
}

func TestTokenize_MultibyteText_NeverSplitsACharacter(t *testing.T) {
	// Arrange: emoji is 4 bytes, é is 2; both must be single tokens.
	text := "🎉é!"

	// Act
	tokens := Tokenize(text)

	// Assert
	if len(tokens) != 3 {
		t.Fatalf("token count: got %d, want 3", len(tokens))
	}
	if tokens[0].payload != "🎉" {
		t.Errorf("token 0: got %q, want 🎉", tokens[0].payload)
	}
	if tokens[1].payload != "é" {
		t.Errorf("token 1: got %q, want é", tokens[1].payload)
	}
}

func TestTokenize_MarkupCharacters_EscapedPerToken(t *testing.T) {
	// Arrange
	text := "a<b & c>d"

	// Act
	rendered := Render(Tokenize(text))

	// Assert
	want := "a&lt;b &amp; c&gt;d"
	if rendered != want {
		t.Errorf("got %q, want %q", rendered, want)
	}
}
