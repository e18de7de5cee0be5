// Package ids provides the typed identifier and numeric wrapper primitives
// shared by every other Dreamtides package. CardId, ObjectId, AbilityNumber
// and the numeric wrappers are distinct types; the zone-tagged card ids and
// StackItemId are type aliases, interchangeable with CardId and ObjectId
// respectively.
package ids

import "fmt"

// Energy is the resource spent to play cards and activate abilities.
type Energy uint32

// Add returns a+b. Energy cannot overflow in practice (values stay well
// under 2^32) so no overflow check is performed, mirroring the teacher's
// numeric wrappers which only guard against underflow.
func (a Energy) Add(b Energy) Energy { return a + b }

// Sub returns a-b and false if the subtraction would underflow; spending
// below zero is a failure, not a wraparound, per spec.md invariant 3.
func (a Energy) Sub(b Energy) (Energy, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater than b.
func (a Energy) Cmp(b Energy) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (a Energy) String() string { return fmt.Sprintf("%dE", uint32(a)) }

// Spark is the victory-point-generating stat on characters.
type Spark uint32

func (a Spark) Add(b Spark) Spark { return a + b }

func (a Spark) Sub(b Spark) (Spark, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

func (a Spark) Cmp(b Spark) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (a Spark) String() string { return fmt.Sprintf("%dS", uint32(a)) }

// Points are victory points; a player wins at 25 (see battle package).
type Points uint32

func (a Points) Add(b Points) Points { return a + b }

func (a Points) Sub(b Points) (Points, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

func (a Points) Cmp(b Points) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (a Points) String() string { return fmt.Sprintf("%dpts", uint32(a)) }

// TurnId identifies a turn within a battle; it strictly increases and the
// battle is a forced draw once it exceeds MaxTurnId (spec.md invariant 6).
type TurnId uint32

// MaxTurnId is the turn_id beyond which the battle ends in a draw.
const MaxTurnId TurnId = 50

func (a TurnId) Add(b TurnId) TurnId { return a + b }

func (a TurnId) Cmp(b TurnId) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (a TurnId) String() string { return fmt.Sprintf("turn %d", uint32(a)) }
