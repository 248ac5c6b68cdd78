package indigo

import (
	"bytes"
	"indigo/internal/console"
	"indigo/pkg/deck"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

// fixedGenerator always returns the same number
type fixedGenerator int

func (f fixedGenerator) Intn(n int) int {
	if int(f) >= n {
		panic("fixedGenerator out of range")
	}

	return int(f)
}

// recordingGenerator returns 0 and remembers every n it was asked for
type recordingGenerator struct {
	calls []int
}

func (r *recordingGenerator) Intn(n int) int {
	r.calls = append(r.calls, n)
	return 0
}

// noRandom fails the test if any random number is requested
type noRandom struct {
	t *testing.T
}

func (n noRandom) Intn(int) int {
	n.t.Fatal("no random number was expected")
	return 0
}

var naiveOptions = Options{
	PlayerName:   "Player",
	ComputerName: "Computer",
	Opponent:     OpponentNaive,
}

func newTestGame(t *testing.T, opts Options, lines ...string) (*Game, *bytes.Buffer, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	buf := &bytes.Buffer{}
	g, err := NewGame(logger, console.NewScript(lines...), console.NewPrinter(buf, false), fixedGenerator(0), opts)
	require.NoError(t, err)
	require.NotNil(t, g)

	return g, buf, hook
}

// stackDealer puts the given cards on top of the dealer's deck, followed by the rest of the deck in order
func stackDealer(g *Game, top string) {
	first := deck.CardsFromString(top)
	hand := append(deck.Hand{}, first...)
	for _, card := range deck.New(fixedGenerator(0)).Cards {
		if !slices.Contains(first, card) {
			hand.Add(card)
		}
	}

	g.dealer.hand = hand
}

func cards(s string) deck.Hand {
	return deck.Hand(deck.CardsFromString(s))
}

func highCards(cards []deck.Card) int {
	n := 0
	for _, card := range cards {
		if card.Power() >= 10 {
			n++
		}
	}

	return n
}
