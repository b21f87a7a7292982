// Package autotype parses KeePass-style autotype sequences and plays them
// through a Typer.
//
// A sequence mixes literal text with brace tokens:
//
//	{USERNAME}{TAB}{PASSWORD}{ENTER}
//	{TITLE} {DELAY 500}{TAB 2}{{}literal braces{}}
//
// Field placeholders (TITLE, USERNAME, PASSWORD, URL, NOTES) are replaced by
// the entry's values; key tokens press a named key, optionally repeated;
// DELAY pauses for the given number of milliseconds.
package autotype

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultSequence is used for entries without their own sequence.
const DefaultSequence = "{USERNAME}{TAB}{PASSWORD}{ENTER}"

var (
	ErrUnterminated = errors.New("unterminated token")
	ErrUnknownToken = errors.New("unknown token")
	ErrBadArgument  = errors.New("bad token argument")
)

// Kind classifies a parsed token.
type Kind int

const (
	KindText Kind = iota
	KindField
	KindKey
	KindDelay
)

// Token is one element of a parsed sequence.
type Token struct {
	Kind Kind
	// Value is the literal text, the field name or the key name.
	Value string
	// Repeat is the key press count for KindKey.
	Repeat int
	// Delay is set for KindDelay.
	Delay time.Duration
}

var fields = map[string]struct{}{
	"TITLE": {}, "USERNAME": {}, "PASSWORD": {}, "URL": {}, "NOTES": {},
}

// keys maps sequence key names to X keysyms.
var keys = map[string]string{
	"TAB":       "Tab",
	"ENTER":     "Return",
	"SPACE":     "space",
	"BACKSPACE": "BackSpace",
	"BS":        "BackSpace",
	"BKSP":      "BackSpace",
	"ESC":       "Escape",
	"UP":        "Up",
	"DOWN":      "Down",
	"LEFT":      "Left",
	"RIGHT":     "Right",
	"HOME":      "Home",
	"END":       "End",
	"DEL":       "Delete",
	"DELETE":    "Delete",
}

// Parse splits seq into tokens. Adjacent literal characters are merged into
// one text token.
func Parse(seq string) ([]Token, error) {
	var (
		out  []Token
		text strings.Builder
	)
	flush := func() {
		if text.Len() > 0 {
			out = append(out, Token{Kind: KindText, Value: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(seq); {
		c := seq[i]
		if c != '{' {
			text.WriteByte(c)
			i++
			continue
		}

		// "{{}" and "{}}" are escaped braces.
		if strings.HasPrefix(seq[i:], "{{}") || strings.HasPrefix(seq[i:], "{}}") {
			text.WriteByte(seq[i+1])
			i += 3
			continue
		}

		end := strings.IndexByte(seq[i:], '}')
		if end < 0 {
			return nil, fmt.Errorf("%w at offset %d", ErrUnterminated, i)
		}
		body := seq[i+1 : i+end]
		i += end + 1

		tok, err := parseToken(body)
		if err != nil {
			return nil, err
		}
		flush()
		out = append(out, tok)
	}
	flush()
	return out, nil
}

func parseToken(body string) (Token, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(body), " ")
	name = strings.ToUpper(name)
	arg = strings.TrimSpace(arg)

	if name == "DELAY" {
		ms, err := strconv.Atoi(arg)
		if !hasArg || err != nil || ms < 0 {
			return Token{}, fmt.Errorf("%w: {%s}", ErrBadArgument, body)
		}
		return Token{Kind: KindDelay, Delay: time.Duration(ms) * time.Millisecond}, nil
	}

	if _, ok := fields[name]; ok {
		if hasArg {
			return Token{}, fmt.Errorf("%w: {%s}", ErrBadArgument, body)
		}
		return Token{Kind: KindField, Value: name}, nil
	}

	if _, ok := keys[name]; ok {
		repeat := 1
		if hasArg {
			n, err := strconv.Atoi(arg)
			if err != nil || n < 1 {
				return Token{}, fmt.Errorf("%w: {%s}", ErrBadArgument, body)
			}
			repeat = n
		}
		return Token{Kind: KindKey, Value: name, Repeat: repeat}, nil
	}

	return Token{}, fmt.Errorf("%w: {%s}", ErrUnknownToken, body)
}
