package indigo

import (
	"fmt"
	"indigo/internal/console"
	"indigo/pkg/deck"
	"strconv"
	"strings"
)

// Human asks the user which card to play
type Human struct {
	in  console.Input
	out *console.Printer
}

// NewHuman returns a new human strategy
func NewHuman(in console.Input, out *console.Printer) *Human {
	return &Human{
		in:  in,
		out: out,
	}
}

// Announces returns false, the user already knows what they played
func (h *Human) Announces() bool {
	return false
}

// Play plays the card the user picks
func (h *Human) Play(hand *deck.Hand, _ *Table) (deck.Card, error) {
	i, err := h.choose(*hand)
	if err != nil {
		return deck.Card{}, err
	}

	return hand.PlayAt(i)
}

// choose shows the hand and prompts until a valid card number is entered
// Typing "exit" returns ErrExit
func (h *Human) choose(hand deck.Hand) (int, error) {
	cards := make([]string, len(hand))
	for i, card := range hand {
		cards[i] = fmt.Sprintf("%d)%s", i+1, h.out.Card(card))
	}

	h.out.Printf("Cards in hand: %s", strings.Join(cards, " "))

	for {
		h.out.Printf("Choose a card to play (1-%d):", len(hand))
		line, err := h.in.ReadLine()
		if err != nil {
			return 0, err
		}

		line = strings.TrimSpace(line)
		if strings.EqualFold(line, "exit") {
			return 0, ErrExit
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(hand) {
			continue
		}

		return n - 1, nil
	}
}
