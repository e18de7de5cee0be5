// Package catalog is the process-wide card/ability catalog: built once at
// startup from a set of card definitions, read-only thereafter (spec.md
// section 9's "the catalog ... is the only mutable global, and it is
// immutable after construction"). Grounded on
// original_source/rules_engine/src/battle_state/src/battle/ability_cache.rs
// (AbilityCache, indexed by CardIdentity) and
// .../battle_cards/ability_list.rs (AbilityList's derived-flags shape,
// reproduced as ability.List).
package catalog

import (
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dreamtides/dtengine/ability"
	"github.com/dreamtides/dtengine/cardtext"
	"github.com/dreamtides/dtengine/dterr"
	"github.com/dreamtides/dtengine/ids"
)

// RawCard is the unparsed per-card input to Build: catalog data as it would
// be loaded from a card database (the teacher's pkg/card/database.go plays
// this role for MTG cards; here it is the Dreamtides equivalent).
type RawCard struct {
	Identity    ids.CardIdentity
	Name        string
	Cost        ids.Energy
	Spark       ids.Spark
	IsCharacter bool
	CharacterTypes []string
	// IsFast marks an event card as playable at instant speed (while an
	// opponent holds stack priority), spec.md 4.E's "fast cards in hand
	// they can afford". Characters are never fast; the flag is only
	// meaningful for events.
	IsFast      bool
	OracleText  string
	Bindings    map[string]cardtext.BindingValue
}

// Definition is one catalog entry: a card's fixed data plus its parsed
// AbilityList, grounded on AbilityCache's pairing of a CardDefinition with
// an AbilityList per CardIdentity.
type Definition struct {
	Identity       ids.CardIdentity
	Name           string
	Cost           ids.Energy
	Spark          ids.Spark
	IsCharacter    bool
	CharacterTypes []string
	IsFast         bool
	OracleText     string
	Abilities      *ability.List
}

// Catalog is the built, immutable card/ability catalog. Unlike
// AbilityCache's Vec indexed by a dense sequential identity, definitions is
// a map: Dreamtides card identities are author-assigned strings, not a
// compacted integer range the loader controls.
type Catalog struct {
	definitions map[ids.CardIdentity]*Definition

	// textCache memoizes ParseCardText by raw oracle text, bounded by an
	// LRU because distinct (text, bindings) pairs are not bounded by the
	// catalog's own size the way CardIdentity lookups are: the same
	// oracle text can recur across many printings/variants, and a naive
	// unbounded map would grow with every distinct binding combination a
	// deck-building or search session produces.
	textCache *lru.Cache[string, []ability.Ability]
}

const defaultTextCacheSize = 512

// Build parses every card's oracle text and assembles the catalog. It
// fails fast on the first parse or binding error, matching spec.md section
// 7's "a bad card definition is a build-time failure, not a runtime one"
// framing: a malformed catalog should never reach a running battle.
func Build(cards []RawCard) (*Catalog, error) {
	cache, err := lru.New[string, []ability.Ability](defaultTextCacheSize)
	if err != nil {
		return nil, fmt.Errorf("allocating card-text cache: %w", err)
	}
	c := &Catalog{definitions: make(map[ids.CardIdentity]*Definition, len(cards)), textCache: cache}

	for _, raw := range cards {
		parsed, err := c.parseCached(raw.OracleText, raw.Bindings)
		if err != nil {
			return nil, fmt.Errorf("card %q (%s): %w", raw.Name, raw.Identity, err)
		}

		data := make([]ability.AbilityData, len(parsed))
		for i, a := range parsed {
			data[i] = ability.AbilityData{AbilityNumber: ids.AbilityNumber(i), Ability: a}
		}

		c.definitions[raw.Identity] = &Definition{
			Identity:       raw.Identity,
			Name:           raw.Name,
			Cost:           raw.Cost,
			Spark:          raw.Spark,
			IsCharacter:    raw.IsCharacter,
			CharacterTypes: append([]string(nil), raw.CharacterTypes...),
			IsFast:         raw.IsFast,
			OracleText:     raw.OracleText,
			Abilities:      ability.NewList(data),
		}
	}
	return c, nil
}

// parseCached parses text via cardtext.ParseCardText, memoizing by the raw
// text. Binding-dependent cards (those with {e}/{cards}/{s}/{subtype}
// placeholders) always miss the cache since no two bound variants share a
// literal oracle-text string only by coincidence; that's acceptable, the
// cache exists to skip reparsing identical unbound text, which is the
// common case.
func (c *Catalog) parseCached(text string, bindings map[string]cardtext.BindingValue) ([]ability.Ability, error) {
	if len(bindings) == 0 {
		if cached, ok := c.textCache.Get(text); ok {
			return cached, nil
		}
	}
	parsed, err := cardtext.ParseCardText(text, bindings)
	if err != nil {
		return nil, err
	}
	if len(bindings) == 0 {
		c.textCache.Add(text, parsed)
	}
	return parsed, nil
}

// Lookup returns the definition for identity, or false if absent.
func (c *Catalog) Lookup(identity ids.CardIdentity) (*Definition, bool) {
	d, ok := c.definitions[identity]
	return d, ok
}

// MustLookup returns the definition for identity, or a dterr.CatalogMissing
// error — the failure mode spec.md section 7 assigns to a save file or
// network message referencing an identity absent from this process's
// catalog.
func (c *Catalog) MustLookup(identity ids.CardIdentity) (*Definition, error) {
	d, ok := c.Lookup(identity)
	if !ok {
		return nil, dterr.NewCatalogMissing(string(identity))
	}
	return d, nil
}

// Identities returns every catalog identity in sorted order, for
// deterministic iteration (deck validation, snapshot tests).
func (c *Catalog) Identities() []ids.CardIdentity {
	out := make([]ids.CardIdentity, 0, len(c.definitions))
	for id := range c.definitions {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of cards in the catalog.
func (c *Catalog) Len() int { return len(c.definitions) }
