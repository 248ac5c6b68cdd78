package indigo

// Result contains the results of a game of Indigo
type Result struct {
	// Exited is true if the user quit. No other field is set
	Exited bool

	PlayerName    string
	ComputerName  string
	FirstPlayer   string
	PlayerScore   int
	ComputerScore int
	PlayerCards   int
	ComputerCards int
	BonusTo       string
}

// Winner returns the name of the participant with the higher score
// An empty string means the game was tied or exited
func (r *Result) Winner() string {
	if r.Exited {
		return ""
	}

	switch {
	case r.PlayerScore > r.ComputerScore:
		return r.PlayerName
	case r.ComputerScore > r.PlayerScore:
		return r.ComputerName
	default:
		return ""
	}
}

// bonusGoesToPlayer decides who gets the end of game bonus from the number of cards won.
// The player wins ties, except an even split of the deck, which goes to whoever played first
func bonusGoesToPlayer(playerCards, computerCards int, playerFirst bool) bool {
	if playerCards == computerCards && playerCards*2 == deckSize {
		return playerFirst
	}

	return playerCards >= computerCards
}
