package indigo

import (
	"errors"
	"fmt"
)

// ErrExit is returned by a strategy when the user asks to quit the game
var ErrExit = errors.New("player exited the game")

// ErrGameIsOver is an error when the game is advanced after it ended
var ErrGameIsOver = errors.New("game is over")

// ErrNoCardsInHand is an error when a participant is asked to play with an empty hand
var ErrNoCardsInHand = errors.New("no cards in hand")

// ErrNamesNotUnique is an error when the player and the computer share a name
var ErrNamesNotUnique = errors.New("the player and computer names must be different")

// OpponentError is an error for an unknown computer opponent
type OpponentError string

func (o OpponentError) Error() string {
	return fmt.Sprintf("unknown opponent %q, expected %q or %q", string(o), OpponentSmart, OpponentNaive)
}
