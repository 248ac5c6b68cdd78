package deck

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Hand represents an ordered collection of cards
// A hand is owned by exactly one holder; cards leave one hand before joining another
type Hand []Card

// Len returns the number of cards in the hand
func (h Hand) Len() int {
	return len(h)
}

// Add appends the cards to the end of the hand
func (h *Hand) Add(cards ...Card) {
	*h = append(*h, cards...)
}

// PlayOldest removes and returns the first card in the hand
func (h *Hand) PlayOldest() (Card, error) {
	return h.PlayAt(0)
}

// PlayAt removes and returns the card at index i
func (h *Hand) PlayAt(i int) (Card, error) {
	if i < 0 || i >= len(*h) {
		return Card{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(*h))
	}

	card := (*h)[i]
	*h = slices.Delete(*h, i, i+1)

	return card, nil
}

// Last returns the most recently added card
// ok is false if the hand is empty
func (h Hand) Last() (card Card, ok bool) {
	n := len(h)
	if n == 0 {
		return Card{}, false
	}

	return h[n-1], true
}

// TakeAll empties the hand and returns the cards it held
func (h *Hand) TakeAll() []Card {
	cards := *h
	*h = nil

	return cards
}

func (h Hand) String() string {
	return JoinCards(h)
}
