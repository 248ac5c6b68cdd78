// Package inspect is a console session for examining a deck: resetting it,
// shuffling it, and taking cards off the top.
package inspect

import (
	"errors"
	"indigo/internal/console"
	"indigo/internal/rng"
	"indigo/pkg/deck"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Session reads commands until the user types "exit"
type Session struct {
	deck   *deck.Deck
	in     console.Input
	out    *console.Printer
	logger logrus.FieldLogger
}

// NewSession returns a new session over an unshuffled deck
func NewSession(logger logrus.FieldLogger, in console.Input, out *console.Printer, gen rng.Generator) *Session {
	return &Session{
		deck:   deck.New(gen),
		in:     in,
		out:    out,
		logger: logger,
	}
}

// Deck returns the deck being inspected
func (s *Session) Deck() *deck.Deck {
	return s.deck
}

// Run processes commands until "exit"
// An error is only returned if input cannot be read
func (s *Session) Run() error {
	for {
		s.out.Println("Choose an action (reset, shuffle, get, exit):")
		line, err := s.in.ReadLine()
		if err != nil {
			return err
		}

		action := strings.TrimSpace(line)
		s.logger.WithField("action", action).Debug("inspect action")

		switch action {
		case "reset":
			s.deck.Reset()
			s.out.Println("Card deck is reset.")
		case "shuffle":
			s.deck.Shuffle()
			s.out.Println("Card deck is shuffled.")
		case "get":
			if err := s.get(); err != nil {
				return err
			}
		case "exit":
			s.out.Headline("Bye")
			return nil
		default:
			s.out.Warning("Wrong action.")
		}
	}
}

// get asks how many cards to take and prints them
// Invalid answers abort the command and leave the deck untouched
func (s *Session) get() error {
	s.out.Println("Number of cards:")
	line, err := s.in.ReadLine()
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		s.out.Warning("Invalid number of cards.")
		return nil
	}

	cards, err := s.deck.DrawN(n)
	switch {
	case errors.Is(err, deck.ErrInvalidCount):
		s.out.Warning("Invalid number of cards.")
	case errors.Is(err, deck.ErrInsufficientCards):
		s.out.Warning("The remaining cards are insufficient to meet the request.")
	case err != nil:
		return err
	default:
		s.out.Println(s.out.Cards(cards))
	}

	return nil
}
