package engine

import (
	"fmt"
	"strings"

	"github.com/tatianab/treasure-hunter/internal/models"
)

const (
	breakChance    = 0.5
	toughNoTrouble = 0.66
	mildNoTrouble  = 0.33
	brawlGoldSides = 10
	digSides       = 2
	digGoldSides   = 20
	digLuckyFace   = 1
)

// Town is one stay of the hunter. It borrows the hunter; the engine owns it
// and re-attaches it to every new town.
type Town struct {
	src     Source
	shop    *Shop
	terrain models.Terrain
	hunter  *models.Hunter

	tough    bool
	easy     bool
	dug      bool
	searched bool

	latest Result
}

// NewTown rolls the terrain, then decides with probability toughness
// whether the town is rough.
func NewTown(src Source, shop *Shop, toughness float64, easy bool) *Town {
	t := &Town{
		src:     src,
		shop:    shop,
		easy:    easy,
		terrain: models.TerrainForRoll(roll(src, models.TerrainSides)),
	}
	t.tough = src.Float64() < toughness
	return t
}

func (t *Town) Terrain() models.Terrain { return t.terrain }

func (t *Town) Shop() *Shop { return t.shop }

func (t *Town) Tough() bool { return t.tough }

func (t *Town) Dug() bool { return t.dug }

func (t *Town) Searched() bool { return t.searched }

// LatestNews returns the result of the most recent action.
func (t *Town) LatestNews() Result { return t.latest }

// HunterArrives binds h to the town. The one-shot flags are only ever
// cleared by NewTown.
func (t *Town) HunterArrives(h *models.Hunter) Result {
	t.hunter = h
	return t.record(Result{Outcome: OutcomeWelcome, Hunter: h.Name, Tough: t.tough})
}

// Explore describes the surrounding terrain without changing anything.
func (t *Town) Explore() Result {
	return t.record(Result{Outcome: OutcomeExplored, Hunter: t.hunter.Name, Terrain: t.terrain, Item: t.terrain.RequiredItem})
}

// LeaveTown reports whether the hunter crossed the terrain. Outside easy
// mode the required item breaks half the time.
func (t *Town) LeaveTown() bool {
	res := Result{Hunter: t.hunter.Name, Terrain: t.terrain, Item: t.terrain.RequiredItem}
	if !t.terrain.CanCross(t.hunter) {
		res.Outcome = OutcomeMissingItem
		t.record(res)
		return false
	}
	res.Outcome = OutcomeCrossed
	if !t.easy && t.src.Float64() < breakChance {
		t.hunter.RemoveItem(t.terrain.RequiredItem)
		res.Broke = true
	}
	t.record(res)
	return true
}

// EnterShop trades one item with the town's shop.
func (t *Town) EnterShop(mode ShopMode, it models.Item) Result {
	return t.record(t.shop.Enter(t.hunter, mode, it))
}

// ShopOffers lists what the hunter can trade here in mode.
func (t *Town) ShopOffers(mode ShopMode) []Offer {
	return t.shop.Offers(t.hunter, mode)
}

// LookForTrouble picks a fight. The same threshold decides both whether a
// fight starts and whether an unarmed hunter wins it.
func (t *Town) LookForTrouble() Result {
	noTrouble := mildNoTrouble
	if t.tough {
		noTrouble = toughNoTrouble
	}
	res := Result{Hunter: t.hunter.Name}
	if t.src.Float64() > noTrouble {
		res.Outcome = OutcomeNoTrouble
		return t.record(res)
	}

	res.Gold = roll(t.src, brawlGoldSides)
	switch {
	case t.hunter.HasItem(models.ItemSword):
		res.Outcome = OutcomeBrawlWonArmed
		t.hunter.ChangeGold(res.Gold)
	case t.src.Float64() > noTrouble:
		res.Outcome = OutcomeBrawlWon
		t.hunter.ChangeGold(res.Gold)
	default:
		res.Outcome = OutcomeBrawlLost
		t.hunter.ChangeGold(-res.Gold)
	}
	return t.record(res)
}

// Dig can succeed once per town and needs a shovel.
func (t *Town) Dig() Result {
	res := Result{Hunter: t.hunter.Name, Item: models.ItemShovel}
	switch {
	case t.dug:
		res.Outcome = OutcomeAlreadyDug
	case !t.hunter.HasItem(models.ItemShovel):
		res.Outcome = OutcomeNoShovel
	default:
		t.dug = true
		if roll(t.src, digSides) != digLuckyFace {
			res.Outcome = OutcomeDugDirt
			break
		}
		res.Outcome = OutcomeDugGold
		res.Gold = roll(t.src, digGoldSides)
		t.hunter.ChangeGold(res.Gold)
	}
	return t.record(res)
}

// HuntTreasure searches the town once. Dust and duplicates are reported
// but never stored.
func (t *Town) HuntTreasure() Result {
	res := Result{Hunter: t.hunter.Name}
	if t.searched {
		res.Outcome = OutcomeAlreadySearched
		return t.record(res)
	}
	t.searched = true
	res.Treasure = models.TreasureForRoll(roll(t.src, models.TreasureSides))
	switch {
	case !res.Treasure.Collectible():
		res.Outcome = OutcomeFoundDust
	case t.hunter.Treasures.Add(res.Treasure):
		res.Outcome = OutcomeTreasureFound
	default:
		res.Outcome = OutcomeTreasureDuplicate
	}
	return t.record(res)
}

// IsTreasureFull is the win predicate.
func (t *Town) IsTreasureFull() bool {
	return t.hunter != nil && t.hunter.Treasures.Full()
}

func (t *Town) Info() string {
	return fmt.Sprintf("This nice little town is surrounded by %s.", t.terrain.Name)
}

func (t *Town) TreasureInfo() string {
	found := t.hunter.Treasures.List()
	if len(found) == 0 {
		return "Treasures found: none"
	}
	names := make([]string, len(found))
	for i, tr := range found {
		names[i] = string(tr)
	}
	return "Treasures found: " + strings.Join(names, ", ")
}

func (t *Town) record(res Result) Result {
	t.latest = res
	return res
}
