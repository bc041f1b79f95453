package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/muesli/reflow/wordwrap"
	"github.com/tatianab/treasure-hunter/internal/config"
	"github.com/tatianab/treasure-hunter/internal/engine"
	"github.com/tatianab/treasure-hunter/internal/logger"
	"github.com/tatianab/treasure-hunter/internal/models"
	"github.com/tatianab/treasure-hunter/internal/tui"
)

const maxTurns = 300

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	games := flag.Int("games", 100, "number of games to play")
	difficulty := flag.String("difficulty", cfg.Difficulty, "easy, normal, hard, test or samurai")
	seed := flag.Uint64("seed", cfg.Seed, "random seed, 0 for time based")
	verbose := flag.Bool("v", false, "print every turn of every game")
	flag.Parse()

	d, err := models.ParseDifficulty(*difficulty)
	if err != nil {
		log.Fatalf("Bad difficulty: %v", err)
	}
	rules, err := models.DefaultRules()
	if err != nil {
		log.Fatalf("Failed to load rules: %v", err)
	}

	baseLog := logger.New(os.Stderr, cfg)
	src := engine.NewSource(*seed)

	tally := map[engine.Status]int{}
	for i := 1; i <= *games; i++ {
		sessionLog, _ := logger.WithSession(baseLog)
		e, err := engine.NewEngine(src, rules, d, fmt.Sprintf("bot-%d", i), sessionLog)
		if err != nil {
			log.Fatalf("Failed to start game: %v", err)
		}
		if *verbose {
			fmt.Printf("--- Game %d ---\n", i)
			printResult(e.Town().LatestNews())
		}

		for e.Status() == engine.StatusPlaying && e.Turns() < maxTurns {
			cmd, item := nextMove(e)
			turn := e.ProcessTurn(cmd, item)
			if *verbose {
				for _, res := range turn.Results {
					printResult(res)
				}
			}
		}

		status := e.Status()
		tally[status]++
		fmt.Printf("Game %d: %s after %d turns in %d towns, gold=%d, treasures=%v\n",
			i, status, e.Turns(), e.TownsVisited(), e.Hunter().Gold, e.Hunter().Treasures.List())
	}

	fmt.Printf("\nDifficulty %s over %d games: won %d, lost %d, unfinished %d\n",
		d, *games, tally[engine.StatusWon], tally[engine.StatusLost], tally[engine.StatusPlaying])
}

// nextMove searches, digs, equips and then moves on, brawling when it
// cannot afford the crossing item.
func nextMove(e *engine.Engine) (engine.Command, models.Item) {
	town := e.Town()
	h := e.Hunter()
	shop := town.Shop()
	needed := town.Terrain().RequiredItem
	neededPrice, _ := shop.BuyPrice(needed)

	if !town.Searched() {
		return engine.CmdHunt, ""
	}
	if h.HasItem(models.ItemShovel) && !town.Dug() {
		return engine.CmdDig, ""
	}
	if !h.HasItem(needed) {
		if neededPrice <= h.Gold {
			return engine.CmdBuy, needed
		}
		return engine.CmdTrouble, ""
	}
	if shovelPrice, ok := shop.BuyPrice(models.ItemShovel); ok && !h.HasItem(models.ItemShovel) && shovelPrice <= h.Gold {
		return engine.CmdBuy, models.ItemShovel
	}
	return engine.CmdMove, ""
}

func printResult(res engine.Result) {
	fmt.Println(wordwrap.String(tui.Render(res), 80))
}
