package ids

import (
	"fmt"
	"strconv"
	"strings"
)

// CardId is stable across zone movement; assigned on creation and retired
// only on banishment or game end. It is never reused within a battle.
type CardId uint64

func (c CardId) String() string { return fmt.Sprintf("card#%d", uint64(c)) }

// ObjectId is a distinct counter that increments whenever a card enters a
// new zone. References captured before a zone change (e.g. "the card that
// just entered") are invalidated once ObjectId changes, per spec.md section
// 3's CardInstance description. The teacher minted a fresh uuid.UUID per
// stack push (pkg/ability/stack.go); ObjectId generalizes that into a dense,
// orderable counter so zone-transition ordering is directly observable.
type ObjectId uint64

func (o ObjectId) String() string { return fmt.Sprintf("obj#%d", uint64(o)) }

// Zone identifies which zone a card currently occupies.
type Zone int

const (
	ZoneDeck Zone = iota
	ZoneHand
	ZoneStack
	ZoneBattlefield
	ZoneVoid
	ZoneBanished
)

func (z Zone) String() string {
	switch z {
	case ZoneDeck:
		return "deck"
	case ZoneHand:
		return "hand"
	case ZoneStack:
		return "stack"
	case ZoneBattlefield:
		return "battlefield"
	case ZoneVoid:
		return "void"
	case ZoneBanished:
		return "banished"
	default:
		return "unknown-zone"
	}
}

// HandCardId, VoidCardId, DeckCardId, BattlefieldCharacterId, StackCardId,
// and BanishedCardId are zone-tagged aliases of CardId. They name, at a
// signature, which zone the card is expected to occupy; as type aliases they
// are interchangeable with CardId and with each other, so the compiler does
// not check the zone. A zone change keeps the CardId and mints a fresh
// ObjectId via battle's State.NewObjectId.
type (
	HandCardId             = CardId
	VoidCardId              = CardId
	DeckCardId              = CardId
	BattlefieldCharacterId  = CardId
	StackCardId             = CardId
	BanishedCardId          = CardId
)

// AbilityNumber is the position of an ability within a card's definition.
// Paired with a CardId it identifies one ability instance, used for
// "once per turn" bookkeeping (spec.md section 3).
type AbilityNumber uint16

func (n AbilityNumber) String() string { return fmt.Sprintf("ability#%d", uint16(n)) }

// AbilityId pairs a CardId with an AbilityNumber to name one ability
// instance on one card.
type AbilityId struct {
	CardId        CardId
	AbilityNumber AbilityNumber
}

func (a AbilityId) String() string {
	return fmt.Sprintf("%s/%s", a.CardId, a.AbilityNumber)
}

// MarshalText renders an AbilityId as "<cardId>/<abilityNumber>" so it can
// serve as a JSON object key — encoding/json requires map keys to be a
// string, an integer, or a TextMarshaler, and a struct key qualifies only
// via the latter (saveformat's battle snapshot needs this for
// PlayerState.UsedActivatedAbilitiesThisTurn).
func (a AbilityId) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%d/%d", uint64(a.CardId), uint16(a.AbilityNumber))), nil
}

// UnmarshalText parses the format MarshalText produces.
func (a *AbilityId) UnmarshalText(text []byte) error {
	parts := strings.SplitN(string(text), "/", 2)
	if len(parts) != 2 {
		return fmt.Errorf("ids: invalid AbilityId %q", text)
	}
	cardId, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return fmt.Errorf("ids: invalid AbilityId card id %q: %w", parts[0], err)
	}
	abilityNumber, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		return fmt.Errorf("ids: invalid AbilityId ability number %q: %w", parts[1], err)
	}
	a.CardId = CardId(cardId)
	a.AbilityNumber = AbilityNumber(abilityNumber)
	return nil
}

// PlayerName identifies one of the two players in a battle.
type PlayerName int

const (
	PlayerOne PlayerName = iota
	PlayerTwo
)

func (p PlayerName) String() string {
	if p == PlayerOne {
		return "One"
	}
	return "Two"
}

// Opponent returns the other player.
func (p PlayerName) Opponent() PlayerName {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// DisplayPlayer is the viewer-relative projection of a PlayerName, used only
// at the presentation boundary (never inside rules logic).
type DisplayPlayer int

const (
	DisplayUser DisplayPlayer = iota
	DisplayEnemy
)

// ToDisplay projects an absolute PlayerName to a viewer-relative
// DisplayPlayer given which player is viewing.
func ToDisplay(viewer, subject PlayerName) DisplayPlayer {
	if viewer == subject {
		return DisplayUser
	}
	return DisplayEnemy
}

// CardIdentity identifies the "named card" in the catalog; two physical
// copies of the same printed card share an identity.
type CardIdentity string

// BaseCardId identifies a single catalog entry (one printing). Most catalog
// lookups go through CardIdentity; BaseCardId exists for cases where a
// specific printing must be distinguished (alternate art, etc).
type BaseCardId string

// StackItemId identifies an item that has been pushed onto the shared
// resolution stack. Like CardId, a StackItemId is never reused: it is
// minted by BattleState's object-id counter at push time, the same counter
// used for ObjectId, so stack items and zone transitions share one global
// ordering.
type StackItemId = ObjectId
