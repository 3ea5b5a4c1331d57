package gcode

import (
	"errors"
	"strconv"
	"testing"

	m "github.com/mouse-blink/flownorm/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMotion(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"G0 X10 F9000\n", true},
		{"G1 X10 E1.2 F1200", true},
		{"G2 X1 Y1 I1 J0", true},
		{"G3", true},
		{"G01 X1", true},
		{"  G1 X1", true},
		{"G1X10F1200", true},
		{"G10 ; firmware retract", false},
		{"G28 X0 Y0", false},
		{"G17", false},
		{"G92 E0", false},
		{"M104 S200", false},
		{"; G1 F1200", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMotion(tt.line))
		})
	}
}

func TestFindFeed(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantOK    bool
		wantValue float64
		wantText  string
	}{
		{name: "integer", line: "G1 X10 F1200\n", wantOK: true, wantValue: 1200, wantText: "1200"},
		{name: "fraction", line: "G1 F1500.75 X1", wantOK: true, wantValue: 1500.75, wantText: "1500.75"},
		{name: "leading dot", line: "G1 F.5", wantOK: true, wantValue: 0.5, wantText: ".5"},
		{name: "no spaces", line: "G1X10F600Y2", wantOK: true, wantValue: 600, wantText: "600"},
		{name: "first of two", line: "G1 F100 F200", wantOK: true, wantValue: 100, wantText: "100"},
		{name: "absent", line: "G1 X10 E2", wantOK: false},
		{name: "in comment only", line: "G1 X10 ; F1200", wantOK: false},
		{name: "negative is not a feed", line: "G1 F-100", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, ok, err := FindFeed(1, tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)

			if !tt.wantOK {
				return
			}

			assert.Equal(t, Feed, tok.Letter)
			assert.InDelta(t, tt.wantValue, tok.Value, 1e-12)
			assert.Equal(t, tt.wantText, tt.line[tok.Start:tok.End])
		})
	}
}

func TestFindExtrusion(t *testing.T) {
	tests := []struct {
		line      string
		wantValue float64
	}{
		{"G1 X1 E2.5 F600", 2.5},
		{"G1 E-0.8 F2400", -0.8},
		{"G1 X1 E.04876", 0.04876},
		{"G1 E+3", 3},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			tok, ok, err := FindExtrusion(7, tt.line)
			require.NoError(t, err)
			require.True(t, ok)
			assert.InDelta(t, tt.wantValue, tok.Value, 1e-12)
		})
	}
}

func TestFindFeed_OverflowIsParseError(t *testing.T) {
	huge := "1"
	for i := 0; i < 400; i++ {
		huge += "0"
	}

	line := "G1 F" + huge

	_, _, err := FindFeed(12, line)
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 12, perr.Line)
	assert.Equal(t, Feed, perr.Letter)
	assert.ErrorIs(t, err, strconv.ErrRange)
	assert.Contains(t, err.Error(), "line 12")
}

func TestDetectMode(t *testing.T) {
	tests := []struct {
		line     string
		wantMode m.CoordinateMode
		wantOK   bool
	}{
		{"G90", m.ModeAbsolute, true},
		{"G91 ; relative", m.ModeRelative, true},
		{"M83", m.ModeRelative, true},
		{"M82\n", m.ModeAbsolute, true},
		{"; switching to G91", m.ModeRelative, true},
		{"G91 M82", m.ModeAbsolute, true},
		{"G90.1", m.ModeAbsolute, false},
		{"G1 X10", m.ModeAbsolute, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			mode, ok := DetectMode(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMode, mode)
		})
	}
}

func TestIsSetPosition(t *testing.T) {
	assert.True(t, IsSetPosition("G92 E0\n"))
	assert.True(t, IsSetPosition("G92"))
	assert.False(t, IsSetPosition("G921"))
	assert.False(t, IsSetPosition("G1 E0"))
}

func TestHasAxis(t *testing.T) {
	assert.False(t, HasAxis("G92\n"))
	assert.False(t, HasAxis("G92 ; reset X and E\n"))
	assert.True(t, HasAxis("G92 X0\n"))
	assert.True(t, HasAxis("G92 E5"))
}

func TestReplace_OnlyTouchesFeedNumeral(t *testing.T) {
	line := "G1 X1200 Y3.5 E1200 F1200 ; F1200 stays\r\n"

	tok, ok, err := FindFeed(1, line)
	require.NoError(t, err)
	require.True(t, ok)

	got := Replace(line, tok, "900")
	assert.Equal(t, "G1 X1200 Y3.5 E1200 F900 ; F1200 stays\r\n", got)
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"plain", "G1 X1 E2", "G1 X1 E2 F900"},
		{"newline", "G1 X1 E2\n", "G1 X1 E2 F900\n"},
		{"crlf", "G1 X1 E2\r\n", "G1 X1 E2 F900\r\n"},
		{"comment", "G1 X1 E2 ; infill\n", "G1 X1 E2 F900 ; infill\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Insert(tt.line, Feed, "900"))
		})
	}
}

func TestFormatter(t *testing.T) {
	tests := []struct {
		name      string
		decimals  int
		value     float64
		want      string
		wantFloor string
	}{
		{"shortest", -1, 1234.5, "1234.5", "1234.5"},
		{"integral", 3, 600, "600", "600"},
		{"rounding noise", 3, 599.9999999999999, "600", "599.999"},
		{"three places", 3, 1234.56789, "1234.568", "1234.567"},
		{"no places", 0, 849.6, "850", "849"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Formatter{Decimals: tt.decimals}
			assert.Equal(t, tt.want, f.Format(tt.value))
			assert.Equal(t, tt.wantFloor, f.FormatFloor(tt.value))
		})
	}
}
