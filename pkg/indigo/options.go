package indigo

// Opponent selects the strategy the computer plays with
type Opponent string

// opponents
const (
	OpponentSmart Opponent = "smart"
	OpponentNaive Opponent = "naive"
)

// rules
const (
	initialTableCards = 4
	cardsPerDeal      = 3
	highCardPower     = 10

	// Bonus is awarded at the end of the game to the side holding more cards
	Bonus = 3
)

// Options are options for creating a new game of Indigo
type Options struct {
	PlayerName   string
	ComputerName string
	Opponent     Opponent
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		PlayerName:   "Player",
		ComputerName: "Computer",
		Opponent:     OpponentSmart,
	}
}
