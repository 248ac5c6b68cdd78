package indigo

import (
	"errors"
	"fmt"
	"indigo/internal/console"
	"indigo/internal/rng"
	"indigo/pkg/deck"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const deckSize = deck.Size

// Game is a game of Indigo between the user and the computer
type Game struct {
	ID string

	options Options
	logger  logrus.FieldLogger
	in      console.Input
	out     *console.Printer

	dealer   *Participant
	player   *Participant
	computer *Participant
	table    *Table

	state      State
	first      *Participant
	current    *Participant
	lastWinner *Participant

	result *Result // only populated when the game is over or exited
}

// NewGame returns a new game with a freshly shuffled deck
// The user answers prompts through in, and everything shown to the user goes to out
func NewGame(logger logrus.FieldLogger, in console.Input, out *console.Printer, gen rng.Generator, opts Options) (*Game, error) {
	if opts.PlayerName == "" || opts.ComputerName == "" || strings.EqualFold(opts.PlayerName, opts.ComputerName) {
		return nil, ErrNamesNotUnique
	}

	var computer Strategy
	switch opts.Opponent {
	case OpponentSmart:
		computer = NewSmart(gen)
	case OpponentNaive:
		computer = Naive{}
	default:
		return nil, OpponentError(opts.Opponent)
	}

	d := deck.New(gen)
	d.Shuffle()
	hash := d.HashCode()

	cards, err := d.DrawN(d.CardsLeft())
	if err != nil {
		return nil, fmt.Errorf("could not hand the deck to the dealer: %w", err)
	}

	dealer := NewParticipant("Dealer", Passive{})
	dealer.AddCards(cards...)

	id := uuid.New().String()
	g := &Game{
		ID:       id,
		options:  opts,
		logger:   logger.WithField("gameID", id),
		in:       in,
		out:      out,
		dealer:   dealer,
		player:   NewParticipant(opts.PlayerName, NewHuman(in, out)),
		computer: NewParticipant(opts.ComputerName, computer),
		table:    &Table{},
		state:    StateChoosingFirstPlayer,
	}

	fields := logrus.Fields{
		"opponent": opts.Opponent,
		"deckHash": hash,
	}
	if seeded, ok := gen.(*rng.Seeded); ok {
		fields["seed"] = seeded.Seed()
	}

	g.logger.WithFields(fields).Info("new game")

	out.Headline("Indigo Card Game")
	return g, nil
}

// Run plays the game until it is over or the user exits
func (g *Game) Run() (*Result, error) {
	for !g.IsOver() {
		if err := g.Step(); err != nil {
			return nil, err
		}
	}

	return g.result, nil
}

// Step advances the game by one transition
func (g *Game) Step() error {
	switch g.state {
	case StateChoosingFirstPlayer:
		return g.chooseFirstPlayer()
	case StateInitialDeal:
		return g.initialDeal()
	case StateTurn:
		return g.turn()
	case StateGameOver, StateExited:
		return ErrGameIsOver
	default:
		panic(fmt.Sprintf("unknown state: %d", g.state))
	}
}

// IsOver returns true if the game ended or the user exited
func (g *Game) IsOver() bool {
	return g.state == StateGameOver || g.state == StateExited
}

// State returns the current state
func (g *Game) State() State {
	return g.state
}

// Result returns the result, or nil if the game is still in progress
func (g *Game) Result() *Result {
	return g.result
}

// Player returns the user's participant
func (g *Game) Player() *Participant {
	return g.player
}

// Computer returns the computer's participant
func (g *Game) Computer() *Participant {
	return g.computer
}

// Table returns the table
func (g *Game) Table() *Table {
	return g.table
}

// CardsInDealer returns the number of cards the dealer has yet to deal
func (g *Game) CardsInDealer() int {
	return g.dealer.hand.Len()
}

// CardCount returns the number of cards across every location in the game
func (g *Game) CardCount() int {
	return g.dealer.hand.Len() +
		g.player.hand.Len() + g.computer.hand.Len() +
		g.table.Size() +
		g.player.stack.Len() + g.computer.stack.Len()
}

func (g *Game) chooseFirstPlayer() error {
	for g.first == nil {
		g.out.Println("Play first?")
		line, err := g.in.ReadLine()
		if err != nil {
			return err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes":
			g.first = g.player
		case "no":
			g.first = g.computer
		}
	}

	g.logger.WithField("first", g.first.Name).Debug("first player chosen")
	g.current = g.first
	g.state = StateInitialDeal
	return nil
}

func (g *Game) initialDeal() error {
	for i := 0; i < initialTableCards; i++ {
		card, err := g.dealer.Play(nil)
		if err != nil {
			return err
		}

		g.table.Add(card)
	}

	g.out.Printf("Initial cards on the table: %s", g.out.Cards(g.table.Cards()))
	g.state = StateTurn
	return nil
}

func (g *Game) turn() error {
	g.printTable()

	if g.player.hand.Len() == 0 && g.computer.hand.Len() == 0 {
		if g.dealer.hand.Len() == 0 {
			g.endGame()
			return nil
		}

		if err := g.deal(); err != nil {
			return err
		}
	}

	p := g.current
	card, err := p.Play(g.table)
	if errors.Is(err, ErrExit) {
		g.exit()
		return nil
	} else if err != nil {
		return fmt.Errorf("%s could not play: %w", p.Name, err)
	}

	if p.strategy.Announces() {
		g.out.Printf("%s plays %s", p.Name, g.out.Card(card))
	}

	g.logger.WithFields(logrus.Fields{
		"participant": p.Name,
		"card":        card.String(),
	}).Debug("card played")

	g.table.Add(card)
	if g.table.hasMatch() {
		g.award(p, true)
	}

	g.current = g.opponentOf(p)
	return nil
}

// deal gives three cards to the player and three to the computer
func (g *Game) deal() error {
	for _, p := range []*Participant{g.player, g.computer} {
		for i := 0; i < cardsPerDeal; i++ {
			card, err := g.dealer.Play(nil)
			if err != nil {
				return fmt.Errorf("could not deal to %s: %w", p.Name, err)
			}

			p.AddCards(card)
		}
	}

	g.logger.WithField("cardsInDealer", g.dealer.hand.Len()).Debug("cards dealt")
	return nil
}

// award gives the whole pile to p
func (g *Game) award(p *Participant, announce bool) {
	cards := g.table.takeAll()
	points := p.win(cards)
	g.lastWinner = p

	g.logger.WithFields(logrus.Fields{
		"participant": p.Name,
		"cards":       len(cards),
		"points":      points,
		"silent":      !announce,
	}).Debug("pile won")

	if announce {
		g.out.Success("%s wins cards", p.Name)
		g.printScore()
	}
}

func (g *Game) endGame() {
	if g.table.Size() > 0 {
		winner := g.lastWinner
		if winner == nil {
			winner = g.first
		}

		g.award(winner, false)
	}

	bonusTo := g.computer
	if bonusGoesToPlayer(g.player.CardsWon(), g.computer.CardsWon(), g.first == g.player) {
		bonusTo = g.player
	}

	bonusTo.score += Bonus

	g.printScore()
	g.out.Headline("Game Over")

	g.result = &Result{
		PlayerName:    g.player.Name,
		ComputerName:  g.computer.Name,
		FirstPlayer:   g.first.Name,
		PlayerScore:   g.player.score,
		ComputerScore: g.computer.score,
		PlayerCards:   g.player.CardsWon(),
		ComputerCards: g.computer.CardsWon(),
		BonusTo:       bonusTo.Name,
	}
	g.state = StateGameOver

	g.logger.WithFields(logrus.Fields{
		"playerScore":   g.result.PlayerScore,
		"computerScore": g.result.ComputerScore,
		"bonusTo":       g.result.BonusTo,
	}).Info("game over")
}

// exit stops the game where it is. Nothing is settled and nothing more is printed
func (g *Game) exit() {
	g.result = &Result{Exited: true}
	g.state = StateExited
	g.logger.Info("player exited")
}

func (g *Game) printTable() {
	g.out.Println("")
	if top, ok := g.table.TopCard(); ok {
		g.out.Printf("%d cards on the table, and the top card is %s", g.table.Size(), g.out.Card(top))
	} else {
		g.out.Println("No cards on the table")
	}
}

func (g *Game) printScore() {
	g.out.Printf("Score: %s %d - %s %d", g.player.Name, g.player.score, g.computer.Name, g.computer.score)
	g.out.Printf("Cards: %s %d - %s %d", g.player.Name, g.player.CardsWon(), g.computer.Name, g.computer.CardsWon())
}

func (g *Game) opponentOf(p *Participant) *Participant {
	if p == g.player {
		return g.computer
	}

	return g.player
}
