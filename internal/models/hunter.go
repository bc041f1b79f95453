package models

import (
	"fmt"
	"slices"
	"strings"
)

// TreasureCapacity is the number of treasure slots. Filling all of them wins.
const TreasureCapacity = 3

// TreasureSlots holds up to TreasureCapacity distinct collectible treasures
// in the order they were found.
type TreasureSlots struct {
	slots [TreasureCapacity]Treasure
	n     int
}

// Add stores t if it is collectible, absent and there is room. It reports
// whether t was stored.
func (s *TreasureSlots) Add(t Treasure) bool {
	if !t.Collectible() || s.Has(t) || s.n == TreasureCapacity {
		return false
	}
	s.slots[s.n] = t
	s.n++
	return true
}

func (s *TreasureSlots) Has(t Treasure) bool {
	for _, v := range s.slots[:s.n] {
		if v == t {
			return true
		}
	}
	return false
}

func (s *TreasureSlots) Len() int { return s.n }

func (s *TreasureSlots) Full() bool { return s.n == TreasureCapacity }

// List returns the stored treasures in insertion order.
func (s *TreasureSlots) List() []Treasure {
	return slices.Clone(s.slots[:s.n])
}

// Hunter is the player. It outlives every town it visits.
type Hunter struct {
	Name      string
	Gold      int
	Treasures TreasureSlots

	kit map[Item]struct{}
}

func NewHunter(name string, gold int, kit ...Item) *Hunter {
	h := &Hunter{
		Name: name,
		Gold: gold,
		kit:  make(map[Item]struct{}, len(kit)),
	}
	for _, it := range kit {
		h.kit[it] = struct{}{}
	}
	return h
}

func (h *Hunter) HasItem(it Item) bool {
	_, ok := h.kit[it]
	return ok
}

// AddItem puts it in the kit and reports whether it was new.
func (h *Hunter) AddItem(it Item) bool {
	if h.HasItem(it) {
		return false
	}
	if h.kit == nil {
		h.kit = make(map[Item]struct{})
	}
	h.kit[it] = struct{}{}
	return true
}

// RemoveItem drops it from the kit and reports whether it was there.
func (h *Hunter) RemoveItem(it Item) bool {
	if !h.HasItem(it) {
		return false
	}
	delete(h.kit, it)
	return true
}

// Kit returns the carried items sorted by name.
func (h *Hunter) Kit() []Item {
	items := make([]Item, 0, len(h.kit))
	for it := range h.kit {
		items = append(items, it)
	}
	slices.Sort(items)
	return items
}

// ChangeGold adds delta, which may be negative. The balance is allowed to
// drop below zero; Bankrupt reports that.
func (h *Hunter) ChangeGold(delta int) {
	h.Gold += delta
}

// Bankrupt is the loss predicate checked after every turn.
func (h *Hunter) Bankrupt() bool {
	return h.Gold < 0
}

func (h *Hunter) Info() string {
	s := fmt.Sprintf("%s has %d gold", h.Name, h.Gold)
	if kit := h.Kit(); len(kit) > 0 {
		names := make([]string, len(kit))
		for i, it := range kit {
			names[i] = string(it)
		}
		s += " and " + strings.Join(names, ", ")
	}
	return s + "."
}
