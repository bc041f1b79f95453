package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/tatianab/treasure-hunter/internal/models"
)

// Command is one menu choice.
type Command int

const (
	CmdInvalid Command = iota
	CmdBuy
	CmdSell
	CmdExplore
	CmdHunt
	CmdMove
	CmdTrouble
	CmdDig
	CmdExit
)

var commandLetters = map[string]Command{
	"b": CmdBuy,
	"s": CmdSell,
	"e": CmdExplore,
	"h": CmdHunt,
	"m": CmdMove,
	"l": CmdTrouble,
	"d": CmdDig,
	"x": CmdExit,
}

// ParseCommand maps a menu letter to its command, ignoring case.
func ParseCommand(s string) Command {
	return commandLetters[strings.ToLower(strings.TrimSpace(s))]
}

func (c Command) String() string {
	for k, v := range commandLetters {
		if v == c {
			return k
		}
	}
	return "invalid"
}

// Status is where the game stands after a turn.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
	StatusQuit
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "WON"
	case StatusLost:
		return "LOST"
	case StatusQuit:
		return "QUIT"
	default:
		return "PLAYING"
	}
}

// Turn is everything that happened in response to one command, in order.
type Turn struct {
	Results []Result
	Status  Status
}

// Engine owns the hunter and the current town and moves the hunter from
// town to town.
type Engine struct {
	src        Source
	rules      *models.Rules
	difficulty models.Difficulty
	profile    models.Profile
	catalog    map[models.Item]int
	log        *slog.Logger

	hunter *models.Hunter
	town   *Town
	status Status
	towns  int
	turns  int
}

// NewEngine creates the hunter for difficulty d and lets it arrive in the
// first town. A nil logger discards output.
func NewEngine(src Source, rules *models.Rules, d models.Difficulty, name string, log *slog.Logger) (*Engine, error) {
	profile, err := rules.Profile(d)
	if err != nil {
		return nil, err
	}
	catalog, err := rules.CatalogFor(d)
	if err != nil {
		return nil, err
	}
	hunter, err := rules.NewHunter(name, d)
	if err != nil {
		return nil, fmt.Errorf("create hunter: %w", err)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	e := &Engine{
		src:        src,
		rules:      rules,
		difficulty: d,
		profile:    profile,
		catalog:    catalog,
		log:        log,
		hunter:     hunter,
	}
	e.enterTown()
	e.log.Info("game started", "hunter", name, "difficulty", d, "gold", hunter.Gold)
	return e, nil
}

func (e *Engine) Hunter() *models.Hunter { return e.hunter }

func (e *Engine) Town() *Town { return e.town }

func (e *Engine) Difficulty() models.Difficulty { return e.difficulty }

func (e *Engine) Status() Status { return e.status }

// TownsVisited counts every town entered, including the first.
func (e *Engine) TownsVisited() int { return e.towns }

func (e *Engine) Turns() int { return e.turns }

// enterTown replaces the current town with a fresh one and re-attaches the
// same hunter.
func (e *Engine) enterTown() Result {
	shop := NewShop(e.catalog, e.profile.Markdown)
	e.town = NewTown(e.src, shop, e.profile.Toughness, e.profile.Easy)
	e.towns++
	e.log.Debug("entered town", "town", e.towns, "terrain", e.town.Terrain().Name, "tough", e.town.Tough())
	return e.town.HunterArrives(e.hunter)
}

// ProcessTurn runs one command. it names the item for buy and sell and is
// ignored otherwise. Loss is checked before win. Once the game is over
// every call returns the final status with no results.
func (e *Engine) ProcessTurn(cmd Command, it models.Item) Turn {
	if e.status != StatusPlaying {
		return Turn{Status: e.status}
	}
	e.turns++

	var results []Result
	switch cmd {
	case CmdBuy:
		results = append(results, e.town.EnterShop(ShopBuy, it))
	case CmdSell:
		results = append(results, e.town.EnterShop(ShopSell, it))
	case CmdExplore:
		results = append(results, e.town.Explore())
	case CmdHunt:
		results = append(results, e.town.HuntTreasure())
	case CmdMove:
		left := e.town.LeaveTown()
		results = append(results, e.town.LatestNews())
		if left {
			results = append(results, e.enterTown())
		}
	case CmdTrouble:
		results = append(results, e.town.LookForTrouble())
	case CmdDig:
		results = append(results, e.town.Dig())
	case CmdExit:
		results = append(results, Result{Outcome: OutcomeFarewell, Hunter: e.hunter.Name})
		e.status = StatusQuit
	default:
		results = append(results, Result{Outcome: OutcomeInvalidCommand, Hunter: e.hunter.Name})
	}

	switch {
	case e.status == StatusQuit:
	case e.hunter.Bankrupt():
		e.status = StatusLost
	case e.town.IsTreasureFull():
		e.status = StatusWon
	}

	for _, r := range results {
		e.log.Debug("turn", "turn", e.turns, "command", cmd, "outcome", r.Outcome, "gold", e.hunter.Gold)
	}
	if e.status != StatusPlaying {
		e.log.Info("game over", "status", e.status, "turns", e.turns, "towns", e.towns, "gold", e.hunter.Gold)
	}
	return Turn{Results: results, Status: e.status}
}
