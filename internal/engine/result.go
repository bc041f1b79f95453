package engine

import "github.com/tatianab/treasure-hunter/internal/models"

// Outcome identifies what happened during an action.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWelcome
	OutcomeExplored
	OutcomeCrossed
	OutcomeMissingItem
	OutcomeNoTrouble
	OutcomeBrawlWonArmed
	OutcomeBrawlWon
	OutcomeBrawlLost
	OutcomeDugGold
	OutcomeDugDirt
	OutcomeNoShovel
	OutcomeAlreadyDug
	OutcomeTreasureFound
	OutcomeFoundDust
	OutcomeTreasureDuplicate
	OutcomeAlreadySearched
	OutcomeBought
	OutcomeSold
	OutcomeInsufficientGold
	OutcomeAlreadyOwned
	OutcomeNotOwned
	OutcomeUnknownItem
	OutcomeFarewell
	OutcomeInvalidCommand
)

var outcomeNames = [...]string{
	OutcomeNone:              "none",
	OutcomeWelcome:           "welcome",
	OutcomeExplored:          "explored",
	OutcomeCrossed:           "crossed",
	OutcomeMissingItem:       "missing_item",
	OutcomeNoTrouble:         "no_trouble",
	OutcomeBrawlWonArmed:     "brawl_won_armed",
	OutcomeBrawlWon:          "brawl_won",
	OutcomeBrawlLost:         "brawl_lost",
	OutcomeDugGold:           "dug_gold",
	OutcomeDugDirt:           "dug_dirt",
	OutcomeNoShovel:          "no_shovel",
	OutcomeAlreadyDug:        "already_dug",
	OutcomeTreasureFound:     "treasure_found",
	OutcomeFoundDust:         "found_dust",
	OutcomeTreasureDuplicate: "treasure_duplicate",
	OutcomeAlreadySearched:   "already_searched",
	OutcomeBought:            "bought",
	OutcomeSold:              "sold",
	OutcomeInsufficientGold:  "insufficient_gold",
	OutcomeAlreadyOwned:      "already_owned",
	OutcomeNotOwned:          "not_owned",
	OutcomeUnknownItem:       "unknown_item",
	OutcomeFarewell:          "farewell",
	OutcomeInvalidCommand:    "invalid_command",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "none"
	}
	return outcomeNames[o]
}

// Result is the structured outcome of one action. Only the fields relevant
// to Outcome are set.
type Result struct {
	Outcome  Outcome
	Hunter   string
	Item     models.Item
	Terrain  models.Terrain
	Treasure models.Treasure
	Gold     int  // gold gained, lost, paid or received
	Tough    bool // welcome: the town is rough
	Broke    bool // crossed: the required item broke
}
