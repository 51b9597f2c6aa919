package lexer

import (
	"io"
	"iter"
	"log"
)

// Options controls how a whole source is tokenized.
type Options struct {
	// KeepWhitespace retains whitespace tokens, which are dropped by default.
	KeepWhitespace bool
	// KeepComments retains comment tokens, which are dropped by default.
	KeepComments bool
	// Trace, when set, receives one line per matched token.
	Trace *log.Logger
}

// Lexer represents a lexical analyzer over an in-memory source
type Lexer struct {
	source   string
	position int

	trace *log.Logger
}

// New initializes a Lexer object
func New(src string) *Lexer {
	return &Lexer{source: src}
}

// SetTrace sets a logger that is going to receive every matched token.
func (lx *Lexer) SetTrace(l *log.Logger) {
	lx.trace = l
}

// Position returns the byte offset of the cursor.
func (lx *Lexer) Position() int {
	return lx.position
}

// NextToken returns the next token in the stream, whitespace and comments
// included. It returns io.EOF once the whole source has been consumed and an
// *InvalidTokenError if nothing matches at the cursor; the cursor does not
// move in that case.
func (lx *Lexer) NextToken() (Token, error) {
	if lx.position >= len(lx.source) {
		return Token{}, io.EOF
	}

	rest := lx.source[lx.position:]
	for _, p := range patterns {
		loc := p.re.FindStringIndex(rest)
		if loc == nil || loc[1] == 0 {
			continue
		}

		start, end := lx.position, lx.position+loc[1]
		tok := NewToken(p.tt, lx.source[start:end], NewSpan(start, end))
		if lx.trace != nil {
			lx.trace.Printf("%d (%d, %d) => %v", lx.position, start, end, tok)
		}

		lx.position = end
		return tok, nil
	}

	return Token{}, &InvalidTokenError{Offset: lx.position}
}

// Tokens returns an iterator over the remaining tokens. Iteration ends at the
// end of input or right after the first error is yielded.
func (lx *Lexer) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := lx.NextToken()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(Token{}, err)
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

// Tokenize returns all the tokens within src that the parser cares about:
// whitespace and comments are stripped.
func Tokenize(src string) ([]Token, error) {
	return TokenizeWithOptions(src, Options{})
}

// TokenizeBytes is like Tokenize but takes an array of bytes.
func TokenizeBytes(in []byte) ([]Token, error) {
	return Tokenize(string(in))
}

// TokenizeWithOptions returns all the tokens within src, or an error if a
// token can't be identified.
func TokenizeWithOptions(src string, opts Options) ([]Token, error) {
	lx := New(src)
	lx.SetTrace(opts.Trace)

	tokens := []Token{}
	for tok, err := range lx.Tokens() {
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case TokenWhitespace:
			if !opts.KeepWhitespace {
				continue
			}
		case TokenComment:
			if !opts.KeepComments {
				continue
			}
		}
		tokens = append(tokens, tok)
	}

	return tokens, nil
}
