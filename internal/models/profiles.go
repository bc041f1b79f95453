package models

import (
	_ "embed"
	"fmt"
	"maps"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var defaultRules []byte

// Profile is one difficulty preset.
type Profile struct {
	StartingGold int          `yaml:"starting_gold" validate:"gte=0"`
	FullKit      bool         `yaml:"full_kit"`
	Markdown     float64      `yaml:"markdown" validate:"gte=0,lte=1"`
	Toughness    float64      `yaml:"toughness" validate:"gte=0,lte=1"`
	Easy         bool         `yaml:"easy"`
	Armory       map[Item]int `yaml:"armory" validate:"omitempty,dive,gte=0"` // extra stock on top of the catalog
}

// Rules is the master price list plus every difficulty preset.
type Rules struct {
	Catalog  map[Item]int           `yaml:"catalog" validate:"required,min=1,dive,gte=0"`
	Profiles map[Difficulty]Profile `yaml:"profiles" validate:"required,dive"`
}

// DefaultRules returns the rules embedded in the binary.
func DefaultRules() (*Rules, error) {
	return LoadRules(defaultRules)
}

// LoadRules parses and validates a rules document.
func LoadRules(data []byte) (*Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	if err := validator.New().Struct(&r); err != nil {
		return nil, fmt.Errorf("validate rules: %w", err)
	}
	for _, d := range Difficulties {
		if _, ok := r.Profiles[d]; !ok {
			return nil, fmt.Errorf("validate rules: missing profile %q", d)
		}
	}
	return &r, nil
}

func (r *Rules) Profile(d Difficulty) (Profile, error) {
	p, ok := r.Profiles[d]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
	return p, nil
}

// CatalogFor returns the stock of a shop under difficulty d.
func (r *Rules) CatalogFor(d Difficulty) (map[Item]int, error) {
	p, err := r.Profile(d)
	if err != nil {
		return nil, err
	}
	out := maps.Clone(r.Catalog)
	maps.Copy(out, p.Armory)
	return out, nil
}

// NewHunter creates a hunter with the starting gold and kit of difficulty d.
func (r *Rules) NewHunter(name string, d Difficulty) (*Hunter, error) {
	p, err := r.Profile(d)
	if err != nil {
		return nil, err
	}
	var kit []Item
	if p.FullKit {
		kit = slices.Sorted(maps.Keys(r.Catalog))
	}
	return NewHunter(name, p.StartingGold, kit...), nil
}
