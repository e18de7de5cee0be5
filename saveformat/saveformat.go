// Package saveformat implements the versioned JSON save document spec.md
// section 6 describes: "A versioned JSON document carrying quest state and
// an optional serialized BattleState. On load the catalog is rebuilt and
// the ability-list cache is repopulated by identity. Unknown versions fail
// the load." Grounded on the teacher's pkg/card.Card, which already
// round-trips Scryfall data through encoding/json struct tags — the same
// tagging style, extended here to a whole-document envelope rather than a
// single card.
package saveformat

import (
	"encoding/json"

	"github.com/dreamtides/dtengine/battle"
	"github.com/dreamtides/dtengine/catalog"
	"github.com/dreamtides/dtengine/dterr"
	"github.com/dreamtides/dtengine/ids"
)

// CurrentVersion is the only Version this build of the engine writes, and
// the only one Load accepts.
const CurrentVersion = 1

// QuestState is the player's persistent meta-progression outside of any
// single battle: which cards they own and have built into a deck, and the
// currency a completed run earns toward unlocking more. Card-by-card deck
// construction, currency balancing, and encounter sequencing are the
// spreadsheet-to-TOML content tooling's concern (out of scope per spec.md
// section 1); QuestState only needs to be a stable, serializable record of
// where a player left off.
type QuestState struct {
	Deck             []ids.CardIdentity `json:"deck"`
	Currency         int                `json:"currency"`
	CompletedQuests  int                `json:"completed_quests"`
}

// Document is the on-disk save format envelope.
type Document struct {
	Version int                     `json:"version"`
	Quest   QuestState              `json:"quest"`
	Battle  *battle.BattleSnapshot  `json:"battle,omitempty"`
}

// Save serializes doc with a stable field/key order (struct fields marshal
// in declaration order and encoding/json sorts map keys, so save → load →
// save reproduces byte-identical output, the property spec.md section 8
// requires).
func Save(doc *Document) ([]byte, error) {
	doc.Version = CurrentVersion
	return json.MarshalIndent(doc, "", "  ")
}

// Load parses data as a Document, rejecting any version other than
// CurrentVersion, then — if the document carries a battle snapshot —
// rebuilds it against a freshly-built catalog. cards is the full card
// pool to rebuild the catalog from (the loader never trusts a serialized
// catalog: the running process's card definitions, not whatever was on
// disk, are authoritative). seed re-seeds the restored battle's rng.
func Load(data []byte, cards []catalog.RawCard, seed int64) (*Document, *battle.State, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, err
	}
	if doc.Version != CurrentVersion {
		return nil, nil, dterr.NewSaveVersionUnsupported(doc.Version)
	}

	cat, err := catalog.Build(cards)
	if err != nil {
		return nil, nil, err
	}

	if doc.Battle == nil {
		return &doc, nil, nil
	}
	return &doc, battle.RestoreSnapshot(cat, doc.Battle, seed), nil
}
