package console

import (
	"bytes"
	"indigo/pkg/deck"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestPrinter_plain(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinter(buf, false)

	p.Println("Indigo Card Game")
	p.Printf("%d cards", 4)
	p.Success("%s wins cards", "Player")
	p.Warning("Wrong action.")
	p.Headline("Game Over")

	assert.Equal(t, "Indigo Card Game\n4 cards\nPlayer wins cards\nWrong action.\nGame Over\n", buf.String())
	assert.Equal(t, "A♦ 10♣", p.Cards(deck.CardsFromString("14d,10c")))
}

func TestPrinter_color(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinter(buf, true)

	p.Success("%s wins cards", "Computer")
	assert.Equal(t, "Computer wins cards\n", pterm.RemoveColorFromString(buf.String()))

	card := p.Card(deck.CardFromString("10h"))
	assert.Equal(t, "10♥", pterm.RemoveColorFromString(card))
}
