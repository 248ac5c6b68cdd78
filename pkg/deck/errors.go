package deck

import "errors"

// ErrInvalidCount is an error when DrawN() is asked for fewer than one or more than Size cards
var ErrInvalidCount = errors.New("invalid number of cards")

// ErrInsufficientCards is an error when DrawN() is asked for more cards than remain
var ErrInsufficientCards = errors.New("the remaining cards are insufficient")

// ErrIndexOutOfRange is an error when a card is played from a position the hand does not have
var ErrIndexOutOfRange = errors.New("card index out of range")
