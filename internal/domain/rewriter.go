package domain

import (
	"strconv"

	"github.com/mouse-blink/flownorm/internal/domain/gcode"
	m "github.com/mouse-blink/flownorm/internal/model"
)

// RewriteCrossSection is the cross-section model's second pass. Every move
// carrying its own feed token gets the feed rate whose flow is the original
// flow times factor. Moves without a feed token are emitted unchanged.
func RewriteCrossSection(commands []m.Command, area, factor float64, format gcode.Formatter) ([]m.Command, []m.Rewrite, error) {
	out := make([]m.Command, len(commands))

	var rewrites []m.Rewrite

	for i, cmd := range commands {
		out[i] = cmd

		if !gcode.IsMotion(cmd.Text) {
			continue
		}

		tok, ok, err := gcode.FindFeed(cmd.Number, cmd.Text)
		if err != nil {
			return nil, nil, err
		}

		if !ok {
			continue
		}

		flow := CrossSectionFlow(area, tok.Value)
		feed := CrossSectionFeed(area, flow*factor)

		numeral, newFeed, err := positiveNumeral(cmd.Number, feed, format.Format(feed))
		if err != nil {
			return nil, nil, err
		}

		out[i].Text = gcode.Replace(cmd.Text, tok, numeral)
		rewrites = append(rewrites, m.Rewrite{
			Line:    cmd.Number,
			OldFeed: tok.Value,
			NewFeed: newFeed,
			Flow:    flow,
			NewFlow: CrossSectionFlow(area, newFeed),
		})
	}

	return out, rewrites, nil
}

// limit lowers the feed rate of a move whose flow exceeds the cap. A move
// with its own feed token has the numeral replaced; a move running on a
// carried feed rate gets a feed token appended, unless the rate already in
// effect is the limited one.
func (p ExtrusionPass) limit(state *ExtrusionState, cmd m.Command, feedTok gcode.Token, hasFeed bool, delta, flow, factor float64) (m.Command, *m.Rewrite, error) {
	feed := state.Feed * factor

	numeral, newFeed, err := positiveNumeral(cmd.Number, feed, p.Format.FormatFloor(feed))
	if err != nil {
		return cmd, nil, err
	}

	rewrite := &m.Rewrite{
		Line:    cmd.Number,
		OldFeed: state.Feed,
		NewFeed: newFeed,
		Flow:    flow,
		NewFlow: ExtrusionFlow(p.Area, delta, newFeed),
	}

	switch {
	case hasFeed:
		cmd.Text = gcode.Replace(cmd.Text, feedTok, numeral)
	case state.EmittedFeed != newFeed:
		cmd.Text = gcode.Insert(cmd.Text, gcode.Feed, numeral)
		rewrite.Inserted = true
	default:
		return cmd, nil, nil
	}

	state.EmittedFeed = newFeed

	return cmd, rewrite, nil
}

// positiveNumeral parses the rounded numeral of feed. When the precision is
// too coarse for feed and the numeral reads as zero, the unrounded value is
// used instead so no move is emitted with F0.
func positiveNumeral(line int, feed float64, numeral string) (string, float64, error) {
	v, err := strconv.ParseFloat(numeral, 64)
	if err != nil {
		return "", 0, &gcode.ParseError{Line: line, Letter: gcode.Feed, Text: numeral, Err: err}
	}

	if v > 0 {
		return numeral, v, nil
	}

	return gcode.Formatter{Decimals: -1}.Format(feed), feed, nil
}
