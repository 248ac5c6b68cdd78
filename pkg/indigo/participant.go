package indigo

import (
	"indigo/pkg/deck"
)

// Participant is anyone holding cards: the player, the computer, or the dealer
type Participant struct {
	Name string

	hand     deck.Hand
	stack    deck.Hand
	score    int
	strategy Strategy
}

// NewParticipant returns a new participant who plays with strategy
func NewParticipant(name string, strategy Strategy) *Participant {
	return &Participant{
		Name:     name,
		hand:     make(deck.Hand, 0),
		stack:    make(deck.Hand, 0),
		strategy: strategy,
	}
}

// Hand returns a shallow clone of the participant's hand
func (p *Participant) Hand() deck.Hand {
	return append(deck.Hand{}, p.hand...)
}

// Score returns the points earned so far
func (p *Participant) Score() int {
	return p.score
}

// CardsWon returns the number of cards in the participant's stack
func (p *Participant) CardsWon() int {
	return p.stack.Len()
}

// AddCards adds the cards to the participant's hand
func (p *Participant) AddCards(cards ...deck.Card) {
	p.hand.Add(cards...)
}

// Play has the strategy take a card out of the hand
func (p *Participant) Play(table *Table) (deck.Card, error) {
	if p.hand.Len() == 0 {
		return deck.Card{}, ErrNoCardsInHand
	}

	return p.strategy.Play(&p.hand, table)
}

// win moves the cards to the stack and returns the points they scored
func (p *Participant) win(cards []deck.Card) int {
	points := 0
	for _, card := range cards {
		if card.Power() >= highCardPower {
			points++
		}
	}

	p.stack.Add(cards...)
	p.score += points
	return points
}
