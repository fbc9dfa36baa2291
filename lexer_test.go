package main

import "testing"

func tokenKinds(tokens []Token) []TokenKind {
	kinds := make([]TokenKind, len(tokens))
	for i, t := range tokens {
		kinds[i] = t.Kind
	}
	return kinds
}

func TestLexerBasicInstruction(t *testing.T) {
	tokens, err := NewLexer("t.asm", "mov eax, 1\n").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []TokenKind{TokIdent, TokIdent, TokComma, TokNumber, TokNewline, TokEOF}
	got := tokenKinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("token kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if tokens[3].Number != 1 {
		t.Errorf("number token = %d, want 1", tokens[3].Number)
	}
}

func TestLexerHexNumber(t *testing.T) {
	tokens, err := NewLexer("t.asm", "int 0x80\n").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if tokens[1].Kind != TokNumber || tokens[1].Number != 0x80 {
		t.Errorf("hex literal parsed as %+v", tokens[1])
	}
}

func TestLexerStringEscapes(t *testing.T) {
	tokens, err := NewLexer("t.asm", `db "hi\n\x41"`+"\n").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if tokens[1].Kind != TokString {
		t.Fatalf("expected a string token, got %+v", tokens[1])
	}
	want := "hi\nA"
	if tokens[1].Text != want {
		t.Errorf("string literal = %q, want %q", tokens[1].Text, want)
	}
}

func TestLexerComment(t *testing.T) {
	tokens, err := NewLexer("t.asm", "ret ; done\n").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if tokens[0].Kind != TokIdent || tokens[0].Text != "ret" {
		t.Fatalf("first token = %+v", tokens[0])
	}
	if tokens[1].Kind != TokNewline {
		t.Errorf("comment was not skipped cleanly: %+v", tokens[1])
	}
}

func TestLexerUnterminatedStringErrors(t *testing.T) {
	_, err := NewLexer("t.asm", `db "oops`).Tokenize()
	if err == nil {
		t.Errorf("expected an error for an unterminated string literal")
	}
}

func TestPreprocessIncludesSplicesFile(t *testing.T) {
	files := map[string]string{
		"consts.inc": "FLAG equ 1\n",
	}
	readFile := func(path string) (string, error) { return files[path], nil }

	out, err := preprocessIncludes("main.asm", "include \"consts.inc\"\nmov eax, FLAG\n", readFile, 0)
	if err != nil {
		t.Fatalf("preprocessIncludes: %v", err)
	}
	want := "FLAG equ 1\n\nmov eax, FLAG\n"
	if out != want {
		t.Errorf("spliced source = %q, want %q", out, want)
	}
}

func TestPreprocessIncludesDetectsCycle(t *testing.T) {
	files := map[string]string{
		"a.inc": "include \"a.inc\"\n",
	}
	readFile := func(path string) (string, error) { return files[path], nil }

	_, err := preprocessIncludes("main.asm", "include \"a.inc\"\n", readFile, 0)
	if err == nil {
		t.Errorf("expected an error for a self-including cycle")
	}
}
