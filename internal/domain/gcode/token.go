// Package gcode locates, parses and replaces the numeric tokens of G-code lines.
//
// Every function works on the raw line text and reports byte spans so that a
// replacement only touches the numeral it was asked to change.
package gcode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	m "github.com/mouse-blink/flownorm/internal/model"
)

const (
	// Feed is the feed-rate marker letter.
	Feed byte = 'F'
	// Extrusion is the extrusion marker letter.
	Extrusion byte = 'E'

	commentMarker = ';'
)

const unsignedNumber = `(?:\d+(?:\.\d*)?|\.\d+)`

var (
	reMotion      = regexp.MustCompile(`^[ \t]*G0*[0-3](?:[^0-9.]|$)`)
	reSetPosition = regexp.MustCompile(`^[ \t]*G0*92(?:[^0-9.]|$)`)
	reFeed        = regexp.MustCompile(`F(` + unsignedNumber + `)`)
	reExtrusion   = regexp.MustCompile(`E([-+]?` + unsignedNumber + `)`)
	reMode        = regexp.MustCompile(`(G9[01]|M8[23])(?:[^0-9.]|$)`)
	reAxis        = regexp.MustCompile(`[XYZE]`)
)

// Token is a parameter found on a line. Start and End delimit the numeral
// (the marker letter excluded) as byte offsets into the line.
type Token struct {
	Letter byte
	Start  int
	End    int
	Value  float64
}

// ParseError reports a numeral that matched a token pattern but did not parse.
type ParseError struct {
	Line   int
	Letter byte
	Text   string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: malformed %c value %q: %v", e.Line, e.Letter, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsMotion reports whether line is a G0, G1, G2 or G3 move.
// Leading zeros are accepted (G01); G10, G28 and friends are not moves.
func IsMotion(line string) bool {
	return reMotion.MatchString(line)
}

// IsSetPosition reports whether line is a G92 position reset.
func IsSetPosition(line string) bool {
	return reSetPosition.MatchString(line)
}

// HasAxis reports whether the code part of line names any X, Y, Z or E word.
// A G92 without one resets every axis to zero.
func HasAxis(line string) bool {
	return reAxis.MatchString(Code(line))
}

// Code returns the part of line before any comment.
func Code(line string) string {
	if i := strings.IndexByte(line, commentMarker); i >= 0 {
		return line[:i]
	}

	return line
}

// FindFeed returns the first feed-rate token of line.
func FindFeed(number int, line string) (Token, bool, error) {
	return find(reFeed, Feed, number, line)
}

// FindExtrusion returns the first extrusion token of line.
func FindExtrusion(number int, line string) (Token, bool, error) {
	return find(reExtrusion, Extrusion, number, line)
}

func find(re *regexp.Regexp, letter byte, number int, line string) (Token, bool, error) {
	loc := re.FindStringSubmatchIndex(Code(line))
	if loc == nil {
		return Token{}, false, nil
	}

	start, end := loc[2], loc[3]
	text := line[start:end]

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, false, &ParseError{Line: number, Letter: letter, Text: text, Err: err}
	}

	return Token{Letter: letter, Start: start, End: end, Value: value}, true, nil
}

// DetectMode returns the coordinate mode selected by line, if any.
// The markers are honoured anywhere on the line; the last one wins.
func DetectMode(line string) (m.CoordinateMode, bool) {
	matches := reMode.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return m.ModeAbsolute, false
	}

	switch matches[len(matches)-1][1] {
	case "G91", "M83":
		return m.ModeRelative, true
	default:
		return m.ModeAbsolute, true
	}
}

// Replace substitutes the numeral of tok with numeral.
func Replace(line string, tok Token, numeral string) string {
	return line[:tok.Start] + numeral + line[tok.End:]
}

// Insert appends a " <letter><numeral>" token to the code part of line,
// ahead of trailing blanks, any comment and the line terminator.
func Insert(line string, letter byte, numeral string) string {
	code := Code(line)
	at := len(strings.TrimRight(code, " \t\r\n"))

	return line[:at] + " " + string(letter) + numeral + line[at:]
}
