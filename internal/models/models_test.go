package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerrainForRoll(t *testing.T) {
	tests := []struct {
		roll int
		want Terrain
	}{
		{1, Terrain{Mountains, ItemRope}},
		{2, Terrain{Ocean, ItemBoat}},
		{3, Terrain{Plains, ItemHorse}},
		{4, Terrain{Desert, ItemWater}},
		{5, Terrain{Marsh, ItemBoots}},
		{6, Terrain{Jungle, ItemMachete}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TerrainForRoll(tt.roll), "roll %d", tt.roll)
	}
	assert.Len(t, Terrains(), TerrainSides)
}

func TestTerrainCanCross(t *testing.T) {
	terrain := TerrainForRoll(1)
	assert.False(t, terrain.CanCross(nil))
	assert.False(t, terrain.CanCross(NewHunter("ann", 0)))
	assert.True(t, terrain.CanCross(NewHunter("ann", 0, ItemRope)))
	assert.Contains(t, terrain.Info(), "rope")
}

func TestTreasureForRoll(t *testing.T) {
	assert.Equal(t, TreasureCrown, TreasureForRoll(1))
	assert.Equal(t, TreasureTrophy, TreasureForRoll(2))
	assert.Equal(t, TreasureGem, TreasureForRoll(3))
	assert.Equal(t, TreasureDust, TreasureForRoll(4))
	assert.False(t, TreasureDust.Collectible())
}

func TestTreasureSlots(t *testing.T) {
	var s TreasureSlots
	assert.False(t, s.Add(TreasureDust), "dust is never stored")
	assert.True(t, s.Add(TreasureGem))
	assert.False(t, s.Add(TreasureGem), "duplicates are rejected")
	assert.False(t, s.Full())
	assert.True(t, s.Add(TreasureCrown))
	assert.True(t, s.Add(TreasureTrophy))
	assert.True(t, s.Full())
	assert.Equal(t, []Treasure{TreasureGem, TreasureCrown, TreasureTrophy}, s.List())
	assert.Equal(t, TreasureCapacity, s.Len())
}

func TestHunterKit(t *testing.T) {
	h := NewHunter("ann", 20, ItemShovel)
	assert.True(t, h.HasItem(ItemShovel))
	assert.False(t, h.AddItem(ItemShovel))
	assert.True(t, h.AddItem(ItemRope))
	assert.Equal(t, []Item{ItemRope, ItemShovel}, h.Kit())
	assert.True(t, h.RemoveItem(ItemRope))
	assert.False(t, h.RemoveItem(ItemRope))
	assert.Equal(t, "ann has 20 gold and shovel.", h.Info())
}

func TestHunterBankrupt(t *testing.T) {
	h := NewHunter("ann", 3)
	h.ChangeGold(-3)
	assert.False(t, h.Bankrupt())
	h.ChangeGold(-1)
	assert.True(t, h.Bankrupt())
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"e", Easy},
		{"EASY", Easy},
		{"", Normal},
		{"n", Normal},
		{" h ", Hard},
		{"test", Test},
		{"s", Samurai},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseDifficulty("nightmare")
	assert.True(t, errors.Is(err, ErrUnknownDifficulty))
}

func TestDefaultRules(t *testing.T) {
	r, err := DefaultRules()
	require.NoError(t, err)

	for _, d := range Difficulties {
		_, err := r.Profile(d)
		assert.NoError(t, err, d)
	}

	easy, _ := r.Profile(Easy)
	assert.True(t, easy.Easy)
	assert.Equal(t, 40, easy.StartingGold)
	assert.Equal(t, 1.0, easy.Markdown)

	hard, _ := r.Profile(Hard)
	assert.Equal(t, 0.25, hard.Markdown)
	assert.Equal(t, 0.75, hard.Toughness)

	catalog, err := r.CatalogFor(Samurai)
	require.NoError(t, err)
	assert.Contains(t, catalog, ItemSword)
	catalog, _ = r.CatalogFor(Normal)
	assert.NotContains(t, catalog, ItemSword)
	assert.NotContains(t, r.Catalog, ItemSword, "armory must not leak into the shared catalog")
}

func TestRulesNewHunter(t *testing.T) {
	r, err := DefaultRules()
	require.NoError(t, err)

	h, err := r.NewHunter("ann", Test)
	require.NoError(t, err)
	assert.Equal(t, 100, h.Gold)
	for it := range r.Catalog {
		assert.True(t, h.HasItem(it), it)
	}

	h, err = r.NewHunter("bob", Normal)
	require.NoError(t, err)
	assert.Equal(t, 20, h.Gold)
	assert.Empty(t, h.Kit())
}

func TestLoadRulesRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "catalog: [\n"},
		{"empty catalog", "catalog: {}\nprofiles:\n  normal: {starting_gold: 1}\n"},
		{"markdown above one", `
catalog: {rope: 4}
profiles:
  easy: {markdown: 2}
  normal: {}
  hard: {}
  test: {}
  samurai: {}
`},
		{"missing profile", `
catalog: {rope: 4}
profiles:
  normal: {}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRules([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
