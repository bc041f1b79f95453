package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tatianab/treasure-hunter/internal/models"
)

func TestShopSellPrice(t *testing.T) {
	tests := []struct {
		markdown float64
		item     models.Item
		want     int
	}{
		{1, models.ItemBoat, 20},
		{0.5, models.ItemBoat, 10},
		{0.5, models.ItemWater, 1},
		{0.25, models.ItemMachete, 1},
		{0.25, models.ItemWater, 0},
		{0.25, models.ItemHorse, 3},
		{0, models.ItemBoat, 0},
		{-1, models.ItemBoat, 0},
	}
	for _, tt := range tests {
		shop := NewShop(testCatalog, tt.markdown)
		got, ok := shop.SellPrice(tt.item)
		assert.True(t, ok)
		assert.Equal(t, tt.want, got, "%s at %v", tt.item, tt.markdown)
	}

	_, ok := NewShop(testCatalog, 1).SellPrice(models.ItemSword)
	assert.False(t, ok)
}

func TestShopBuy(t *testing.T) {
	tests := []struct {
		name     string
		gold     int
		kit      []models.Item
		item     models.Item
		outcome  Outcome
		wantGold int
		owned    bool
	}{
		{"buys when affordable", 20, nil, models.ItemBoat, OutcomeBought, 0, true},
		{"rejects when short", 19, nil, models.ItemBoat, OutcomeInsufficientGold, 19, false},
		{"rejects second copy", 20, []models.Item{models.ItemRope}, models.ItemRope, OutcomeAlreadyOwned, 20, true},
		{"rejects unknown item", 20, nil, models.ItemSword, OutcomeUnknownItem, 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := models.NewHunter("ann", tt.gold, tt.kit...)
			res := NewShop(testCatalog, 0.5).Buy(h, tt.item)

			assert.Equal(t, tt.outcome, res.Outcome)
			assert.Equal(t, tt.wantGold, h.Gold)
			assert.Equal(t, tt.owned, h.HasItem(tt.item))
			assert.GreaterOrEqual(t, h.Gold, 0)
		})
	}
}

func TestShopSell(t *testing.T) {
	h := models.NewHunter("ann", 0, models.ItemHorse)
	shop := NewShop(testCatalog, 0.25)

	res := shop.Sell(h, models.ItemHorse)
	assert.Equal(t, OutcomeSold, res.Outcome)
	assert.Equal(t, 3, res.Gold)
	assert.Equal(t, 3, h.Gold)
	assert.False(t, h.HasItem(models.ItemHorse))

	res = shop.Sell(h, models.ItemHorse)
	assert.Equal(t, OutcomeNotOwned, res.Outcome)
	assert.Equal(t, 3, h.Gold)
}

func TestShopSellItemNotStocked(t *testing.T) {
	h := models.NewHunter("ann", 0, models.ItemSword)
	res := NewShop(testCatalog, 1).Sell(h, models.ItemSword)

	assert.Equal(t, OutcomeUnknownItem, res.Outcome)
	assert.True(t, h.HasItem(models.ItemSword))
}

func TestShopOffers(t *testing.T) {
	shop := NewShop(testCatalog, 0.5)
	h := models.NewHunter("ann", 0, models.ItemBoat, models.ItemWater)

	buy := shop.Offers(h, ShopBuy)
	assert.Len(t, buy, len(testCatalog))
	assert.Equal(t, Offer{Item: models.ItemWater, Price: 2}, buy[0])
	assert.Equal(t, Offer{Item: models.ItemBoat, Price: 20}, buy[len(buy)-1])

	sell := shop.Offers(h, ShopSell)
	assert.Equal(t, []Offer{
		{Item: models.ItemWater, Price: 1},
		{Item: models.ItemBoat, Price: 10},
	}, sell)
}

func TestTownEnterShop(t *testing.T) {
	h := models.NewHunter("ann", 10)
	town := newTestTown(t, nil, 1, false, false, h)

	res := town.EnterShop(ShopBuy, models.ItemRope)
	assert.Equal(t, OutcomeBought, res.Outcome)
	assert.Equal(t, res, town.LatestNews())
	assert.Equal(t, 6, h.Gold)

	res = town.EnterShop(ShopSell, models.ItemRope)
	assert.Equal(t, OutcomeSold, res.Outcome)
	assert.Equal(t, 8, h.Gold)
	assert.Empty(t, town.ShopOffers(ShopSell))
}
