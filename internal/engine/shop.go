package engine

import (
	"cmp"
	"maps"
	"math"
	"slices"

	"github.com/tatianab/treasure-hunter/internal/models"
)

// ShopMode is the direction of a shop visit.
type ShopMode int

const (
	ShopBuy ShopMode = iota
	ShopSell
)

func (m ShopMode) String() string {
	if m == ShopSell {
		return "sell"
	}
	return "buy"
}

// Offer is one line of a shop listing.
type Offer struct {
	Item  models.Item
	Price int
}

// Shop trades with hunters at fixed prices. Sell prices are the buy price
// scaled down by markdown.
type Shop struct {
	markdown float64
	catalog  map[models.Item]int
}

func NewShop(catalog map[models.Item]int, markdown float64) *Shop {
	return &Shop{
		markdown: markdown,
		catalog:  maps.Clone(catalog),
	}
}

func (s *Shop) Markdown() float64 { return s.markdown }

// BuyPrice reports the price of it and whether the shop stocks it.
func (s *Shop) BuyPrice(it models.Item) (int, bool) {
	p, ok := s.catalog[it]
	return p, ok
}

// SellPrice reports what the shop pays for it: floor(buy * markdown), never
// negative.
func (s *Shop) SellPrice(it models.Item) (int, bool) {
	p, ok := s.catalog[it]
	if !ok {
		return 0, false
	}
	return max(0, int(math.Floor(float64(p)*s.markdown))), true
}

// Offers lists what h can trade in the given mode, cheapest first. Selling
// only lists items h carries.
func (s *Shop) Offers(h *models.Hunter, mode ShopMode) []Offer {
	var offers []Offer
	for it := range s.catalog {
		if mode == ShopSell {
			if !h.HasItem(it) {
				continue
			}
			p, _ := s.SellPrice(it)
			offers = append(offers, Offer{Item: it, Price: p})
			continue
		}
		offers = append(offers, Offer{Item: it, Price: s.catalog[it]})
	}
	slices.SortFunc(offers, func(a, b Offer) int {
		return cmp.Or(cmp.Compare(a.Price, b.Price), cmp.Compare(a.Item, b.Item))
	})
	return offers
}

// Enter performs one trade of it in the given mode.
func (s *Shop) Enter(h *models.Hunter, mode ShopMode, it models.Item) Result {
	if mode == ShopSell {
		return s.Sell(h, it)
	}
	return s.Buy(h, it)
}

// Buy never lets gold go negative and never sells a second copy.
func (s *Shop) Buy(h *models.Hunter, it models.Item) Result {
	res := Result{Hunter: h.Name, Item: it}
	price, ok := s.BuyPrice(it)
	switch {
	case !ok:
		res.Outcome = OutcomeUnknownItem
	case h.HasItem(it):
		res.Outcome = OutcomeAlreadyOwned
	case price > h.Gold:
		res.Outcome = OutcomeInsufficientGold
		res.Gold = price
	default:
		h.ChangeGold(-price)
		h.AddItem(it)
		res.Outcome = OutcomeBought
		res.Gold = price
	}
	return res
}

func (s *Shop) Sell(h *models.Hunter, it models.Item) Result {
	res := Result{Hunter: h.Name, Item: it}
	if !h.HasItem(it) {
		res.Outcome = OutcomeNotOwned
		return res
	}
	price, ok := s.SellPrice(it)
	if !ok {
		res.Outcome = OutcomeUnknownItem
		return res
	}
	h.RemoveItem(it)
	h.ChangeGold(price)
	res.Outcome = OutcomeSold
	res.Gold = price
	return res
}
