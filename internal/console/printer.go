package console

import (
	"fmt"
	"indigo/pkg/deck"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// Printer writes game text line by line
// With color enabled, lines and cards are styled with pterm
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a new printer writing to w
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{
		w:     w,
		color: color,
	}
}

// Println writes a plain line
func (p *Printer) Println(a ...interface{}) {
	_, _ = fmt.Fprintln(p.w, a...)
}

// Printf writes a formatted line
func (p *Printer) Printf(format string, a ...interface{}) {
	p.Println(fmt.Sprintf(format, a...))
}

// Success writes a line that reports a gain (green)
func (p *Printer) Success(format string, a ...interface{}) {
	p.styled(pterm.FgGreen, format, a...)
}

// Warning writes a line that reports rejected input (yellow)
func (p *Printer) Warning(format string, a ...interface{}) {
	p.styled(pterm.FgYellow, format, a...)
}

// Headline writes an emphasized line (bold)
func (p *Printer) Headline(format string, a ...interface{}) {
	p.styled(pterm.Bold, format, a...)
}

func (p *Printer) styled(color pterm.Color, format string, a ...interface{}) {
	line := fmt.Sprintf(format, a...)
	if p.color {
		line = color.Sprint(line)
	}

	p.Println(line)
}

// Card returns the display form of the card, red for diamonds and hearts
func (p *Printer) Card(card deck.Card) string {
	if !p.color {
		return card.String()
	}

	switch card.Suit {
	case deck.Diamonds, deck.Hearts:
		return pterm.FgLightRed.Sprint(card.String())
	default:
		return pterm.FgLightWhite.Sprint(card.String())
	}
}

// Cards returns the display form of the cards separated by a space
func (p *Printer) Cards(cards []deck.Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = p.Card(card)
	}

	return strings.Join(c, " ")
}
