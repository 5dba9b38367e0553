package lexer

import (
	"github.com/inkmarrow/bloggc/core/position"
)

// Lexer is a stateful, forward-only producer of Tokens. It is
// restartable only by constructing a fresh Lexer over the input --
// there is no Reset/Rewind.
type Lexer struct {
	input   []rune
	runeIdx int
	pos     position.Position
	specs   []Spec
	failed  bool
}

// New constructs a Lexer over input using the given spec table. Pass
// Specs for the DSL's built-in table; tests may pass a narrower table.
func New(input string, specs []Spec) *Lexer {
	return &Lexer{input: []rune(input), pos: position.Start(), specs: specs}
}

// Next produces the next emitted token. ok is false with a nil error at
// end of input; a non-nil error means the sequence has terminated with
// a failure (UnrecognizedInput or UnterminatedRawText).
func (l *Lexer) Next() (tok Token, ok bool, err error) {
	for {
		if l.failed || l.atEnd() {
			return Token{}, false, nil
		}
		r := l.peek()
		if r == '`' {
			t, err := l.lexRawText()
			if err != nil {
				l.failed = true
				return Token{}, false, err
			}
			return t, true, nil
		}
		t, discard, err := l.lexNormal()
		if err != nil {
			l.failed = true
			return Token{}, false, err
		}
		if discard {
			continue
		}
		return t, true, nil
	}
}

// All drains the lexer into a slice, stopping at the first error.
func (l *Lexer) All() ([]Token, error) {
	var out []Token
	for {
		t, ok, err := l.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, t)
	}
}

func (l *Lexer) atEnd() bool { return l.runeIdx >= len(l.input) }

func (l *Lexer) peek() rune {
	return l.input[l.runeIdx]
}

func (l *Lexer) advance() rune {
	r := l.input[l.runeIdx]
	l.runeIdx++
	l.pos = l.pos.Advance(r)
	return r
}

// lexNormal grows a candidate buffer and applies the longest-match,
// priority-tie-break rule against the token spec table. discard is true
// when the winning spec is the internal whitespace kind.
func (l *Lexer) lexNormal() (Token, bool, error) {
	start := l.pos
	startIdx := l.runeIdx
	var candidate []rune
	type lastMatch struct {
		kind Kind
		n    int
	}
	var last *lastMatch

	for l.runeIdx+len(candidate) < len(l.input) {
		next := l.input[l.runeIdx+len(candidate)]
		candidate = append(candidate, next)
		s := string(candidate)
		matched := false
		for _, spec := range l.specs {
			if spec.Matcher.Matches(s) {
				last = &lastMatch{kind: spec.Kind, n: len(candidate)}
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}

	if last == nil {
		r := l.advance()
		return Token{}, false, &UnrecognizedInputError{Pos: start, Ch: r}
	}

	lexemeRunes := l.input[startIdx : startIdx+last.n]
	for i := 0; i < last.n; i++ {
		l.advance()
	}
	lexeme := string(lexemeRunes)
	tracer().Debugf("lexer: matched %s %q at %v", last.kind, lexeme, start)
	if last.kind == kindWhitespace {
		return Token{}, true, nil
	}
	return Token{Kind: last.kind, Lexeme: lexeme, Pos: start}, false, nil
}

// lexRawText consumes the opening backtick, everything up to the next
// backtick, and that closing backtick, emitting the interior text as a
// RawText token. There is no escape sequence: the first backtick after
// the opening one always closes the block.
func (l *Lexer) lexRawText() (Token, error) {
	start := l.pos
	l.advance() // opening backtick
	var text []rune
	for {
		if l.atEnd() {
			return Token{}, &UnterminatedRawTextError{Pos: start}
		}
		r := l.advance()
		if r == '`' {
			tracer().Debugf("lexer: raw text %q at %v", string(text), start)
			return Token{Kind: KindRawText, Lexeme: string(text), Pos: start}, nil
		}
		text = append(text, r)
	}
}
