package indigo

import "indigo/pkg/deck"

// Table is the pile of played cards
// The last card added is the top card
type Table struct {
	pile deck.Hand
}

// Add puts the cards on top of the pile
func (t *Table) Add(cards ...deck.Card) {
	t.pile.Add(cards...)
}

// TopCard returns the top card
// ok is false if the table is empty
func (t *Table) TopCard() (card deck.Card, ok bool) {
	return t.pile.Last()
}

// Size returns the number of cards on the table
func (t *Table) Size() int {
	return t.pile.Len()
}

// Cards returns a copy of the pile, bottom card first
func (t *Table) Cards() []deck.Card {
	return append([]deck.Card{}, t.pile...)
}

// hasMatch returns true if the two most recent cards share a suit or a rank
func (t *Table) hasMatch() bool {
	n := t.pile.Len()
	if n < 2 {
		return false
	}

	return isMatch(t.pile[n-2], t.pile[n-1])
}

func (t *Table) takeAll() []deck.Card {
	return t.pile.TakeAll()
}

func isMatch(a, b deck.Card) bool {
	return a.Suit == b.Suit || a.Rank == b.Rank
}
