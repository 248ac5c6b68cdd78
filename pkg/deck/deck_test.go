package deck

import (
	"indigo/internal/rng"
	"testing"

	"github.com/stretchr/testify/assert"
)

// zeroGenerator always returns 0
type zeroGenerator struct{}

func (zeroGenerator) Intn(int) int {
	return 0
}

func assertFullDeck(t *testing.T, d *Deck) {
	t.Helper()

	assert.Equal(t, Size, d.CardsLeft())
	seen := make(map[Card]bool)
	for _, card := range d.Cards {
		assert.False(t, seen[card], "duplicate card %s", card)
		seen[card] = true
	}

	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			assert.True(t, seen[Card{Rank: rank, Suit: suit}])
		}
	}
}

func TestNewDeck(t *testing.T) {
	d := New(zeroGenerator{})
	assertFullDeck(t, d)

	assert.Equal(t, Card{Rank: Ace, Suit: Diamonds}, d.Cards[0])
	assert.Equal(t, Card{Rank: 2, Suit: Diamonds}, d.Cards[1])
	assert.Equal(t, Card{Rank: King, Suit: Diamonds}, d.Cards[12])
	assert.Equal(t, Card{Rank: Ace, Suit: Hearts}, d.Cards[13])
	assert.Equal(t, Card{Rank: King, Suit: Clubs}, d.Cards[51])

	assert.Equal(t, "A♦ 2♦ 3♦ 4♦ 5♦ 6♦ 7♦ 8♦ 9♦ 10♦ J♦ Q♦ K♦", JoinCards(d.Cards[:13]))
}

func TestDeck_Shuffle(t *testing.T) {
	d := New(zeroGenerator{})
	d.Shuffle()

	// always picking the first index rotates the deck by one
	assert.Equal(t, Card{Rank: 2, Suit: Diamonds}, d.Cards[0])
	assert.Equal(t, Card{Rank: Ace, Suit: Diamonds}, d.Cards[51])
	assertFullDeck(t, d)

	d1 := New(rng.NewSeeded(1))
	d2 := New(rng.NewSeeded(1))
	unshuffled := d1.HashCode()
	d1.Shuffle()
	d2.Shuffle()
	assert.Equal(t, d1.HashCode(), d2.HashCode())
	assert.NotEqual(t, unshuffled, d1.HashCode())
	assertFullDeck(t, d1)

	for i := 0; i < 10; i++ {
		d1.Shuffle()
		assertFullDeck(t, d1)
	}

	d1.Reset()
	assertFullDeck(t, d1)
	assert.Equal(t, unshuffled, d1.HashCode())
}

func TestDeck_CanDraw(t *testing.T) {
	deck := New(zeroGenerator{})

	if !deck.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if deck.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	if _, err := deck.DrawN(52); err != nil {
		t.Errorf("expected err to be nil, got %v", err)
	}

	if deck.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	cards, err := deck.DrawN(1)
	assert.Nil(t, cards)
	assert.Equal(t, ErrInsufficientCards, err)

	deck.Reset()
	if !deck.CanDraw(52) {
		t.Errorf("expected Reset() to rebuild the deck")
	}
}

func TestDeck_DrawN(t *testing.T) {
	a := assert.New(t)
	d := New(zeroGenerator{})

	cards, err := d.DrawN(0)
	a.Nil(cards)
	a.Equal(ErrInvalidCount, err)

	cards, err = d.DrawN(53)
	a.Nil(cards)
	a.Equal(ErrInvalidCount, err)
	a.Equal(52, d.CardsLeft())

	cards, err = d.DrawN(3)
	a.NoError(err)
	a.Equal("A♦ 2♦ 3♦", JoinCards(cards))
	a.Equal(49, d.CardsLeft())

	cards, err = d.DrawN(50)
	a.Nil(cards)
	a.Equal(ErrInsufficientCards, err)
	a.Equal(49, d.CardsLeft())

	cards, err = d.DrawN(49)
	a.NoError(err)
	a.Equal(49, len(cards))
	a.Equal(0, d.CardsLeft())
}
