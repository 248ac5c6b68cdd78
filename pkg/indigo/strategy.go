package indigo

import "indigo/pkg/deck"

// Strategy decides which card a participant plays
type Strategy interface {
	// Play removes the chosen card from hand and returns it
	// hand is never empty
	Play(hand *deck.Hand, table *Table) (deck.Card, error)

	// Announces returns true if plays made with this strategy are shown to the user
	Announces() bool
}

// Passive always plays the oldest card. The dealer deals with it
type Passive struct{}

// Play plays the first card
func (Passive) Play(hand *deck.Hand, _ *Table) (deck.Card, error) {
	return hand.PlayOldest()
}

// Announces returns false
func (Passive) Announces() bool {
	return false
}

// Naive is a computer that always plays the oldest card in its hand
type Naive struct{}

// Play plays the first card
func (Naive) Play(hand *deck.Hand, _ *Table) (deck.Card, error) {
	return hand.PlayOldest()
}

// Announces returns true
func (Naive) Announces() bool {
	return true
}
