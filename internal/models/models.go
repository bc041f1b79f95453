package models

import (
	"errors"
	"fmt"
	"strings"
)

// Item is the canonical lowercase name of something a hunter can carry.
type Item string

const (
	ItemWater   Item = "water"
	ItemRope    Item = "rope"
	ItemMachete Item = "machete"
	ItemHorse   Item = "horse"
	ItemBoat    Item = "boat"
	ItemBoots   Item = "boots"
	ItemShovel  Item = "shovel"
	ItemSword   Item = "sword"
)

// ParseItem normalizes user input into an Item. It does not check that the
// item is sold anywhere.
func ParseItem(s string) Item {
	return Item(strings.ToLower(strings.TrimSpace(s)))
}

// TerrainName names the obstacle surrounding a town.
type TerrainName string

const (
	Mountains TerrainName = "Mountains"
	Ocean     TerrainName = "Ocean"
	Plains    TerrainName = "Plains"
	Desert    TerrainName = "Desert"
	Marsh     TerrainName = "Marsh"
	Jungle    TerrainName = "Jungle"
)

// Terrain is the obstacle a hunter must cross to leave a town.
type Terrain struct {
	Name         TerrainName `yaml:"name"`
	RequiredItem Item        `yaml:"required_item"`
}

// terrainTable is indexed by die face minus one.
var terrainTable = [...]Terrain{
	{Name: Mountains, RequiredItem: ItemRope},
	{Name: Ocean, RequiredItem: ItemBoat},
	{Name: Plains, RequiredItem: ItemHorse},
	{Name: Desert, RequiredItem: ItemWater},
	{Name: Marsh, RequiredItem: ItemBoots},
	{Name: Jungle, RequiredItem: ItemMachete},
}

// TerrainSides is the die size used to pick a terrain.
const TerrainSides = len(terrainTable)

// TerrainForRoll maps a die face in [1, TerrainSides] to its terrain.
// Faces past the end of the table fall through to the last entry.
func TerrainForRoll(roll int) Terrain {
	if roll < 1 {
		roll = 1
	}
	if roll > TerrainSides {
		roll = TerrainSides
	}
	return terrainTable[roll-1]
}

// Terrains returns every terrain in table order.
func Terrains() []Terrain {
	out := make([]Terrain, len(terrainTable))
	copy(out, terrainTable[:])
	return out
}

// CanCross reports whether h carries the item this terrain demands.
func (t Terrain) CanCross(h *Hunter) bool {
	return h != nil && h.HasItem(t.RequiredItem)
}

func (t Terrain) Info() string {
	return fmt.Sprintf("The %s surround this town. You will need %s to cross.", t.Name, t.RequiredItem)
}

// Treasure is a find from searching a town.
type Treasure string

const (
	TreasureCrown  Treasure = "crown"
	TreasureTrophy Treasure = "trophy"
	TreasureGem    Treasure = "gem"
	TreasureDust   Treasure = "dust"
)

var treasureTable = [...]Treasure{TreasureCrown, TreasureTrophy, TreasureGem, TreasureDust}

// TreasureSides is the die size used to pick a treasure.
const TreasureSides = len(treasureTable)

// TreasureForRoll maps a die face in [1, TreasureSides] to its treasure.
func TreasureForRoll(roll int) Treasure {
	if roll < 1 || roll > TreasureSides {
		return TreasureDust
	}
	return treasureTable[roll-1]
}

// Collectible reports whether t can occupy a treasure slot.
func (t Treasure) Collectible() bool {
	return t == TreasureCrown || t == TreasureTrophy || t == TreasureGem
}

// Difficulty selects a preset profile.
type Difficulty string

const (
	Easy    Difficulty = "easy"
	Normal  Difficulty = "normal"
	Hard    Difficulty = "hard"
	Test    Difficulty = "test"
	Samurai Difficulty = "samurai"
)

// Difficulties lists every profile the rules document must define.
var Difficulties = []Difficulty{Easy, Normal, Hard, Test, Samurai}

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// ParseDifficulty accepts full names and the single-letter menu answers.
// An empty answer selects Normal.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "e", "easy":
		return Easy, nil
	case "", "n", "normal":
		return Normal, nil
	case "h", "hard":
		return Hard, nil
	case "test":
		return Test, nil
	case "s", "samurai":
		return Samurai, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}
