package indigo

import (
	"indigo/internal/rng"
	"indigo/pkg/deck"

	"golang.org/x/exp/slices"
)

// Smart is a computer that plays for future captures
//
// With a card on the table it plays a card that can take the pile. If there is
// a choice, or nothing can take the pile, it prefers cards whose suit (then rank)
// appears more than once, keeping a second card ready for a later capture.
type Smart struct {
	rng rng.Generator
}

// NewSmart returns a new smart strategy that breaks ties with gen
func NewSmart(gen rng.Generator) *Smart {
	return &Smart{
		rng: gen,
	}
}

// Announces returns true
func (s *Smart) Announces() bool {
	return true
}

// Play plays the card chosen by choose
func (s *Smart) Play(hand *deck.Hand, table *Table) (deck.Card, error) {
	return hand.PlayAt(s.choose(*hand, table))
}

// choose returns the index of the card to play
func (s *Smart) choose(hand deck.Hand, table *Table) int {
	if len(hand) == 1 {
		return 0
	}

	candidates := []deck.Card(hand)
	if top, ok := table.TopCard(); ok {
		matching := make([]deck.Card, 0, len(hand))
		for _, card := range hand {
			if isMatch(card, top) {
				matching = append(matching, card)
			}
		}

		switch len(matching) {
		case 0:
		case 1:
			return slices.Index(hand, matching[0])
		default:
			candidates = matching
		}
	}

	return slices.Index(hand, s.pick(candidates))
}

func (s *Smart) pick(cards []deck.Card) deck.Card {
	if group := sameSuit(cards); len(group) > 0 {
		return group[s.rng.Intn(len(group))]
	}

	if group := sameRank(cards); len(group) > 0 {
		return group[s.rng.Intn(len(group))]
	}

	return cards[s.rng.Intn(len(cards))]
}

// sameSuit returns every card whose suit appears at least twice
func sameSuit(cards []deck.Card) []deck.Card {
	group := make([]deck.Card, 0)
	for _, suit := range deck.Suits {
		group = append(group, collect(cards, func(c deck.Card) bool { return c.Suit == suit })...)
	}

	return group
}

// sameRank returns every card whose rank appears at least twice
func sameRank(cards []deck.Card) []deck.Card {
	group := make([]deck.Card, 0)
	for _, rank := range deck.Ranks {
		group = append(group, collect(cards, func(c deck.Card) bool { return c.Rank == rank })...)
	}

	return group
}

// collect returns the cards that satisfy fn, or nil if fewer than two do
func collect(cards []deck.Card, fn func(c deck.Card) bool) []deck.Card {
	var found []deck.Card
	for _, card := range cards {
		if fn(card) {
			found = append(found, card)
		}
	}

	if len(found) < 2 {
		return nil
	}

	return found
}
