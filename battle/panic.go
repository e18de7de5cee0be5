package battle

import (
	"fmt"
	"strings"

	"github.com/dreamtides/dtengine/internal/logger"
)

// PanicWithDiagnostics is the central invariant-failure routine (spec.md
// section 7: "bugs, not runtime conditions" — underflowing energy, zone
// desynchronisation, a missing trigger listener target, a mismatched
// prompt type on selection, an empty stack at resolution). It dumps the
// full battle state to the diagnostic log and aborts the in-flight
// mutation by panicking; the caller's request shell recovers the panic and
// returns a generic internal error, leaving the on-disk saved battle
// untouched since the mutation only ever touched an in-memory working
// copy. Grounded on
// original_source/rules_engine/src/battle_queries/src/macros/battle_trace.rs's
// panic_with! macro and the teacher's logger.LogBattleDiagnostic sink.
func (s *State) PanicWithDiagnostics(message string, args ...any) {
	dump := s.diagnosticDump()
	label := fmt.Sprintf("%s %v", message, args)
	logger.LogBattleDiagnostic(label, dump)
	panic(fmt.Sprintf("battle invariant violated: %s %v", message, args))
}

func (s *State) diagnosticDump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "turn_id=%v active_player=%v phase=%v status=%+v\n", s.TurnId, s.ActivePlayer, s.Phase, s.Status)
	fmt.Fprintf(&b, "stack=%v\n", s.Stack)
	for name, p := range s.Players {
		fmt.Fprintf(&b, "player %v: points=%v energy=%v/%v spark_bonus=%v mulligan=%v\n",
			name, p.Points, p.CurrentEnergy, p.ProducedEnergy, p.SparkBonus, p.Mulligan)
	}
	for id, c := range s.Cards {
		fmt.Fprintf(&b, "card %v: identity=%v zone=%v owner=%v controller=%v spark=%v\n",
			id, c.Identity, c.Zone, c.Owner, c.Controller, c.CurrentSpark())
	}
	return b.String()
}
