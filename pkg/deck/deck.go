package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"indigo/internal/rng"
)

// Size is the number of cards in a full deck
const Size = 52

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(gen rng.Generator) *Deck {
	d := &Deck{
		rng: gen,
	}

	d.Reset()
	return d
}

// Reset rebuilds the full deck in canonical order: suit by suit, ace through king
func (d *Deck) Reset() {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the remaining cards in place
func (d *Deck) Shuffle() {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// DrawN removes n cards from the top of the deck
// The deck is left untouched if n is not within 1 and Size, or if fewer than n cards remain
func (d *Deck) DrawN(n int) ([]Card, error) {
	if n < 1 || n > Size {
		return nil, ErrInvalidCount
	}

	if !d.CanDraw(n) {
		return nil, ErrInsufficientCards
	}

	cards := make([]Card, n)
	copy(cards, d.Cards[:n])
	d.Cards = d.Cards[n:]

	return cards, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
