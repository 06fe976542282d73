package kaka

import (
	"testing"
)

func FuzzCompileDoesNotPanic(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("1 + 1"))
	f.Add([]byte(pointClass))
	f.Add([]byte("class Point: Object\n    x = 0\n  y"))
	f.Add([]byte("xs do: @{|e| e print"))
	f.Add([]byte("m = {\"a\" = [1, 2,\n    3], \"b\" = @{|x| x}}"))
	f.Add([]byte("a = - 3\n\t\tb\n  c"))
	f.Add([]byte("\"unterminated\n1..2"))

	f.Fuzz(func(t *testing.T, raw []byte) {
		engine := MustNewEngine(Config{MaxNesting: 64})
		_, _ = engine.Compile(string(raw))
	})
}

func FuzzNormalizeBalancesLevels(f *testing.F) {
	f.Add("a\n  b\n    c\nd")
	f.Add("a\n\tb\n\n\t# note\nc")
	f.Add("x = [\n    1\n]")

	f.Fuzz(func(t *testing.T, source string) {
		tokens, err := Scan(source)
		if err != nil {
			return
		}
		out, err := Normalize(tokens)
		if err != nil {
			return
		}
		if countKinds(out, TokenIndent) != countKinds(out, TokenDedent) {
			t.Fatalf("unbalanced INDENT/DEDENT for %q", source)
		}
		if out[len(out)-1].Kind != TokenEOF {
			t.Fatalf("stream for %q does not end with EOF", source)
		}
	})
}
