package cardtext

import (
	"strconv"
	"strings"

	"github.com/dreamtides/dtengine/ability"
	"github.com/dreamtides/dtengine/dterr"
	"github.com/dreamtides/dtengine/ids"
)

// ParseCardText parses the full oracle text of a card into zero or more
// Abilities, one per "$br"-separated paragraph, after stripping
// {flavor:}/{reminder:} comments and substituting {e}/{cards}/{s}/{subtype}
// placeholders from vars. Grounded on original_source's top-level parse
// driver implied by engine/tests/tests/parser/ability_formating_tests.rs
// (multiple abilities joined by "$br", comments stripped before the grammar
// ever sees them).
func ParseCardText(text string, vars map[string]BindingValue) ([]ability.Ability, error) {
	lowered := strings.ToLower(text)
	stripped := stripComments(lowered)
	bound, err := BindVariables(stripped, vars)
	if err != nil {
		return nil, err
	}

	var abilities []ability.Ability
	for _, segment := range strings.Split(bound, "$br") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		parsed, err := parseOneAbility(Lex(segment))
		if err != nil {
			return nil, err
		}
		abilities = append(abilities, parsed)
	}
	return abilities, nil
}

// state walks a token stream with backtracking: grammar functions save()
// before attempting a production and restore() on failure. maxPos records
// the furthest position any attempt reached, used to build a useful
// dterr.ParseFailed span when every top-level alternative fails.
type state struct {
	tokens []Token
	pos    int
	maxPos int
}

func (s *state) save() int { return s.pos }

func (s *state) restore(p int) { s.pos = p }

func (s *state) peek() Token { return s.tokens[s.pos] }

func (s *state) advance() {
	s.pos++
	if s.pos > s.maxPos {
		s.maxPos = s.pos
	}
}

func (s *state) atEnd() bool { return s.peek().Kind == TokEOF }

func (s *state) word(w string) bool {
	t := s.peek()
	if t.Kind == TokWord && t.Text == w {
		s.advance()
		return true
	}
	return false
}

// noun matches a singular or simply-pluralized ("s" suffix) word, since card
// text refers to both "a character" and "characters".
func (s *state) noun(singular string) bool {
	if s.word(singular) {
		return true
	}
	return s.word(singular + "s")
}

func (s *state) phrase(words ...string) bool {
	start := s.save()
	for _, w := range words {
		if !s.word(w) {
			s.restore(start)
			return false
		}
	}
	return true
}

func (s *state) punct(p string) bool {
	t := s.peek()
	if t.Kind == TokPunct && t.Text == p {
		s.advance()
		return true
	}
	return false
}

func (s *state) dollarTag(tag string) bool {
	t := s.peek()
	if t.Kind == TokDollar && t.Text == tag {
		s.advance()
		return true
	}
	return false
}

// dollarAmount matches a "$N" token (energy written with the energy sigil)
// and returns N.
func (s *state) dollarAmount() (int, bool) {
	t := s.peek()
	if t.Kind != TokDollar || len(t.Text) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(t.Text[1:])
	if err != nil {
		return 0, false
	}
	s.advance()
	return n, true
}

// number matches a digit token or a spelled-out small integer ("a", "an",
// "one".."ten").
func (s *state) number() (int, bool) {
	t := s.peek()
	if t.Kind != TokWord {
		return 0, false
	}
	if n, ok := wordNumbers[t.Text]; ok {
		s.advance()
		return n, true
	}
	if n, err := strconv.Atoi(t.Text); err == nil {
		s.advance()
		return n, true
	}
	return 0, false
}

// directive matches a {...} token whose content equals text exactly.
func (s *state) directive(text string) bool {
	t := s.peek()
	if t.Kind == TokDirective && t.Text == text {
		s.advance()
		return true
	}
	return false
}

// directiveWithPrefix matches a {prefix...} token and returns the remainder.
func (s *state) directiveWithPrefix(prefix string) (string, bool) {
	t := s.peek()
	if t.Kind == TokDirective && strings.HasPrefix(t.Text, prefix) {
		s.advance()
		return strings.TrimSpace(strings.TrimPrefix(t.Text, prefix)), true
	}
	return "", false
}

func (s *state) span() dterr.Span {
	t := s.tokens[s.maxPos]
	return dterr.Span{Start: t.Start, Length: max(t.Length, 1)}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// --- ability-level grammar -------------------------------------------------

type abilityProduction struct {
	name string
	fn   func(*state) (ability.Ability, bool)
}

var abilityProductions = []abilityProduction{
	{"triggered", parseTriggered},
	{"activated", parseActivated},
	{"event", parseEventAbility},
	{"static", parseStaticAbility},
}

func parseOneAbility(tokens []Token) (ability.Ability, error) {
	var furthestExpected []string
	furthest := 0
	for _, p := range abilityProductions {
		st := &state{tokens: tokens}
		value, ok := p.fn(st)
		if ok && st.atEnd() {
			return value, nil
		}
		if st.maxPos > furthest {
			furthest = st.maxPos
			furthestExpected = []string{p.name}
		} else if st.maxPos == furthest {
			furthestExpected = append(furthestExpected, p.name)
		}
	}
	t := tokens[furthest]
	return nil, dterr.NewParseFailed(dterr.Span{Start: t.Start, Length: max(t.Length, 1)},
		"no ability grammar matched", furthestExpected...)
}

func parseEventAbility(s *state) (ability.Ability, bool) {
	effect, ok := parseEffectBody(s)
	if !ok || !s.punct(".") {
		return nil, false
	}
	return ability.AbilityEvent{Effect: effect}, true
}

func parseStaticAbility(s *state) (ability.Ability, bool) {
	effect, ok := parseDisableActivatedAbilities(s)
	if !ok || !s.punct(".") {
		return nil, false
	}
	return ability.AbilityStatic{Effect: effect}, true
}

func parseActivated(s *state) (ability.Ability, bool) {
	isFast, isMulti := false, false
	switch {
	case s.dollarTag("$fastmultiactivated"):
		isFast, isMulti = true, true
	case s.dollarTag("$fastactivated"):
		isFast = true
	case s.dollarTag("$multiactivated"):
		isMulti = true
	case s.dollarTag("$activated"):
	default:
		return nil, false
	}

	var costs []ability.Cost
	for {
		cost, ok := parseCost(s)
		if !ok {
			break
		}
		costs = append(costs, cost)
		if !s.punct(",") {
			break
		}
	}
	if len(costs) == 0 || !s.punct(":") {
		return nil, false
	}
	effect, ok := parseEffectBody(s)
	if !ok || !s.punct(".") {
		return nil, false
	}
	return ability.AbilityActivated{Costs: costs, Effect: effect, IsFast: isFast, IsMulti: isMulti}, true
}

func parseTriggered(s *state) (ability.Ability, bool) {
	trigger, ok := parseTrigger(s)
	if !ok || !s.punct(":") {
		return nil, false
	}
	effect, ok := parseEffectBody(s)
	if !ok || !s.punct(".") {
		return nil, false
	}
	return ability.AbilityTriggered{Trigger: trigger, Effect: effect}, true
}

func parseTrigger(s *state) (ability.Trigger, bool) {
	switch {
	case s.dollarTag("$materialized"):
		return ability.Trigger{Kind: ability.TriggerMaterialized}, true
	case s.dollarTag("$judgment"):
		return ability.Trigger{Kind: ability.TriggerJudgment}, true
	case s.phrase("at", "the", "end", "of", "your", "turn"):
		return ability.Trigger{Kind: ability.TriggerEndOfYourTurn}, true
	}

	start := s.save()
	if s.phrase("whenever", "you", "discard") {
		pred, _ := parsePredicate(s)
		return ability.Trigger{Kind: ability.TriggerDiscard, Predicate: pred}, true
	}
	s.restore(start)

	if s.phrase("whenever", "you", "abandon") {
		pred, _ := parsePredicate(s)
		return ability.Trigger{Kind: ability.TriggerAbandon, Predicate: pred}, true
	}
	s.restore(start)

	if s.word("whenever") {
		if pred, ok := parsePredicate(s); ok {
			if s.phrase("is", "dissolved") {
				return ability.Trigger{Kind: ability.TriggerDissolved, Predicate: pred}, true
			}
			if s.phrase("is", "played", "from", "your", "hand") {
				return ability.Trigger{Kind: ability.TriggerPlayedCardFromHand, Predicate: pred}, true
			}
			if s.phrase("is", "played", "from", "your", "void") {
				return ability.Trigger{Kind: ability.TriggerPlayedCardFromVoid, Predicate: pred}, true
			}
		}
	}
	s.restore(start)
	return ability.Trigger{}, false
}

// --- costs -------------------------------------------------------------

func parseCost(s *state) (ability.Cost, bool) {
	if amount, ok := s.dollarAmount(); ok {
		return ability.CostEnergy{Amount: ids.Energy(amount)}, true
	}

	start := s.save()
	if s.word("spend") && s.phrase("one", "or", "more", "energy") {
		return ability.CostSpendOneOrMoreEnergy{}, true
	}
	s.restore(start)

	if s.word("discard") {
		count, ok := parseCount(s, "card")
		if ok {
			return ability.CostDiscardCards{Predicate: ability.CardPredicate{Kind: ability.CardPredicateCard}, Count: count}, true
		}
	}
	s.restore(start)

	if s.word("banish") {
		count, ok := parseCount(s, "card")
		if ok && s.phrase("from", "your", "void") {
			return ability.CostBanishCardsFromYourVoid{Count: count}, true
		}
	}
	s.restore(start)

	if s.word("abandon") {
		count, ok := parseCount(s, "character")
		if ok {
			return ability.CostAbandonCharactersCount{Count: count}, true
		}
	}
	s.restore(start)

	return nil, false
}

// parseCount parses "a <noun>" or "N <noun>s" and returns the count.
func parseCount(s *state, noun string) (int, bool) {
	start := s.save()
	if s.phrase("a", noun) {
		return 1, true
	}
	s.restore(start)
	if n, ok := s.number(); ok && s.noun(noun) {
		return n, true
	}
	s.restore(start)
	return 0, false
}

// --- effect bodies -------------------------------------------------------

func parseCondition(s *state) (ability.Condition, bool) {
	start := s.save()
	if s.phrase("you", "control") {
		another := s.word("another")
		n, ok := s.number()
		if !ok {
			s.restore(start)
			return ability.Condition{}, false
		}
		cp, ok := parseCardPredicate(s)
		if !ok {
			s.restore(start)
			return ability.Condition{}, false
		}
		var predicate ability.Predicate
		if another {
			predicate = ability.PredicateAnother{Card: cp}
		} else {
			predicate = ability.PredicateYour{Card: cp}
		}
		return ability.Condition{
			Kind:      ability.ConditionPredicateCount,
			Predicate: predicate,
			Count:     n,
			Operator:  ability.OpOrMore,
		}, true
	}
	s.restore(start)
	return ability.Condition{}, false
}

// parseEffectBody parses "[you may ][if <condition>, ]<standard effect>[,
// then <standard effect>]*" into an Effect, matching original_source's
// EffectWithOptions/List shapes (ability/effect.go).
func parseEffectBody(s *state) (ability.Effect, bool) {
	var condition *ability.Condition
	if s.word("if") {
		cond, ok := parseCondition(s)
		if !ok {
			return nil, false
		}
		if !s.punct(",") {
			return nil, false
		}
		condition = &cond
	}

	optional := s.phrase("you", "may")

	first, ok := parseStandardEffect(s)
	if !ok {
		return nil, false
	}
	effects := []ability.StandardEffect{first}
	for {
		start := s.save()
		if s.punct(",") && s.word("then") {
			next, ok := parseStandardEffect(s)
			if !ok {
				s.restore(start)
				break
			}
			effects = append(effects, next)
			continue
		}
		s.restore(start)
		break
	}

	if len(effects) == 1 {
		return ability.NormalizeEffect(ability.EffectWithOptions{
			Effect: effects[0], Optional: optional, Condition: condition,
		}), true
	}

	withOptions := make([]ability.EffectWithOptions, len(effects))
	for i, e := range effects {
		withOptions[i] = ability.EffectWithOptions{Effect: e}
	}
	if optional || condition != nil {
		return ability.EffectListWithOptions{
			Effects: withOptions,
			Options: ability.EffectWithOptions{Optional: optional, Condition: condition},
		}, true
	}
	return ability.EffectList{Effects: withOptions}, true
}

type effectProduction struct {
	name string
	fn   func(*state) (ability.StandardEffect, bool)
}

// Order matters: more specific phrasings must be attempted before a shorter
// phrasing they share a prefix with (e.g. the "...for each" spark variant
// before the plain gains-spark variant).
var effectProductions = []effectProduction{
	{"gains spark until next main for each", parseGainsSparkUntilNextMainForEach},
	{"gains spark", parseGainsSpark},
	{"gain points for each", parseCountingGainPointsForEach},
	{"draw cards", parseDrawCards},
	{"discard cards", parseDiscardCards},
	{"dissolve character", parseDissolveCharacter},
	{"gain energy", parseGainEnergy},
	{"gain points", parseGainPoints},
	{"banish from void", parseBanishFromVoid},
	{"foresee", parseForesee},
	{"negate unless pays cost", parseNegateUnlessPaysCost},
	{"negate", parseNegate},
	{"prevent dissolve", parsePreventDissolve},
	{"put on top of enemy deck", parsePutOnTopOfEnemyDeck},
	{"gain control", parseGainControl},
	{"discover", parseDiscover},
	{"spend energy", parseSpendEnergy},
}

func parseStandardEffect(s *state) (ability.StandardEffect, bool) {
	for _, p := range effectProductions {
		start := s.save()
		if v, ok := p.fn(s); ok {
			return v, true
		}
		s.restore(start)
	}
	return nil, false
}

func parseDrawCards(s *state) (ability.StandardEffect, bool) {
	if !s.word("draw") {
		return nil, false
	}
	count, ok := parseCount(s, "card")
	if !ok {
		return nil, false
	}
	return ability.EffectDrawCards{Count: count}, true
}

func parseDiscardCards(s *state) (ability.StandardEffect, bool) {
	if !s.word("discard") {
		return nil, false
	}
	count, ok := parseCount(s, "card")
	if !ok {
		return nil, false
	}
	return ability.EffectDiscardCards{Predicate: ability.CardPredicate{Kind: ability.CardPredicateCard}, Count: count}, true
}

func parseDissolveCharacter(s *state) (ability.StandardEffect, bool) {
	if !s.word("dissolve") {
		return nil, false
	}
	target, ok := parsePredicate(s)
	if !ok {
		return nil, false
	}
	return ability.EffectDissolveCharacter{Target: target}, true
}

func parseGainEnergy(s *state) (ability.StandardEffect, bool) {
	if !s.word("gain") {
		return nil, false
	}
	amount, ok := s.dollarAmount()
	if !ok {
		return nil, false
	}
	return ability.EffectGainEnergy{Amount: ids.Energy(amount)}, true
}

func parseGainPoints(s *state) (ability.StandardEffect, bool) {
	if !s.word("gain") {
		return nil, false
	}
	n, ok := s.number()
	if !ok || !s.noun("point") {
		return nil, false
	}
	return ability.EffectGainPoints{Amount: ids.Points(n)}, true
}

func parseBanishFromVoid(s *state) (ability.StandardEffect, bool) {
	if !s.word("banish") {
		return nil, false
	}
	count, ok := parseCount(s, "card")
	if !ok || !s.word("from") {
		return nil, false
	}
	var pred ability.Predicate
	switch {
	case s.phrase("the", "enemy's", "void"):
		pred = ability.PredicateEnemyVoid{Card: ability.CardPredicate{Kind: ability.CardPredicateCard}}
	case s.phrase("your", "void"):
		pred = ability.PredicateYourVoid{Card: ability.CardPredicate{Kind: ability.CardPredicateCard}}
	default:
		return nil, false
	}
	return ability.EffectBanishCardsFromVoid{Predicate: pred, Count: count}, true
}

func parseForesee(s *state) (ability.StandardEffect, bool) {
	if !s.word("foresee") {
		return nil, false
	}
	n, ok := s.number()
	if !ok {
		return nil, false
	}
	return ability.EffectForesee{Count: n}, true
}

func parseNegate(s *state) (ability.StandardEffect, bool) {
	if !s.word("negate") {
		return nil, false
	}
	target, ok := parsePredicate(s)
	if !ok {
		return nil, false
	}
	return ability.EffectNegate{Target: target}, true
}

func parseNegateUnlessPaysCost(s *state) (ability.StandardEffect, bool) {
	if !s.word("negate") {
		return nil, false
	}
	target, ok := parsePredicate(s)
	if !ok {
		return nil, false
	}
	if !s.phrase("unless", "its", "controller", "pays") {
		return nil, false
	}
	amount, ok := s.dollarAmount()
	if !ok {
		return nil, false
	}
	return ability.EffectNegateUnlessPaysCost{Target: target, Cost: ids.Energy(amount)}, true
}

func parseDisableActivatedAbilities(s *state) (ability.StandardEffect, bool) {
	if !s.phrase("disable", "the", "activated", "abilities", "of") {
		return nil, false
	}
	target, ok := parsePredicate(s)
	if !ok {
		return nil, false
	}
	return ability.EffectDisableActivatedAbilitiesWhileInPlay{Target: target}, true
}

func parsePreventDissolve(s *state) (ability.StandardEffect, bool) {
	target, ok := parsePredicate(s)
	if !ok {
		return nil, false
	}
	if !s.phrase("cannot", "be", "dissolved", "this", "turn") {
		return nil, false
	}
	return ability.EffectPreventDissolve{Target: target}, true
}

func parsePutOnTopOfEnemyDeck(s *state) (ability.StandardEffect, bool) {
	if !s.word("return") {
		return nil, false
	}
	target, ok := parsePredicate(s)
	if !ok {
		return nil, false
	}
	if !s.phrase("to", "the", "top", "of", "the", "enemy's", "deck") {
		return nil, false
	}
	return ability.EffectPutOnTopOfEnemyDeck{Target: target}, true
}

func parseGainControl(s *state) (ability.StandardEffect, bool) {
	if !s.phrase("take", "control", "of") {
		return nil, false
	}
	target, ok := parsePredicate(s)
	if !ok {
		return nil, false
	}
	return ability.EffectGainControl{Target: target}, true
}

func parseDiscover(s *state) (ability.StandardEffect, bool) {
	if !s.word("discover") {
		return nil, false
	}
	s.word("a")
	cp, ok := parseCardPredicate(s)
	if !ok {
		return nil, false
	}
	return ability.EffectDiscover{Predicate: cp}, true
}

func parseSpendEnergy(s *state) (ability.StandardEffect, bool) {
	if !s.word("spend") {
		return nil, false
	}
	amount, ok := s.dollarAmount()
	if !ok {
		return nil, false
	}
	return ability.EffectSpendEnergy{Amount: ids.Energy(amount)}, true
}

func parseGainsSpark(s *state) (ability.StandardEffect, bool) {
	target, ok := parsePredicate(s)
	if !ok || !s.word("gains") || !s.punct("+") {
		return nil, false
	}
	n, ok := s.number()
	if !ok || !s.noun("spark") {
		return nil, false
	}
	return ability.EffectGainsSpark{Target: target, Amount: ids.Spark(n)}, true
}

func parseGainsSparkUntilNextMainForEach(s *state) (ability.StandardEffect, bool) {
	target, ok := parsePredicate(s)
	if !ok || !s.word("gains") || !s.punct("+") {
		return nil, false
	}
	n, ok := s.number()
	if !ok || !s.noun("spark") {
		return nil, false
	}
	if !s.phrase("until", "your", "next", "main", "phase", "for", "each") {
		return nil, false
	}
	cp, ok := parseCardPredicate(s)
	if !ok || !s.phrase("you", "control") {
		return nil, false
	}
	return ability.EffectGainsSparkUntilNextMainForEach{
		Target:   target,
		PerUnit:  ids.Spark(n),
		Quantity: ability.QuantityExpression{Kind: ability.QuantityCardsMatchingPredicate, Predicate: ability.PredicateYour{Card: cp}},
	}, true
}

func parseCountingGainPointsForEach(s *state) (ability.StandardEffect, bool) {
	if !s.word("gain") {
		return nil, false
	}
	n, ok := s.number()
	if !ok || !s.noun("point") {
		return nil, false
	}
	if !s.phrase("for", "each") {
		return nil, false
	}
	target, ok := parsePredicate(s)
	if !ok {
		return nil, false
	}
	return ability.EffectCountingGainPointsForEach{
		PerUnit:  ids.Points(n),
		Quantity: ability.QuantityExpression{Kind: ability.QuantityCardsMatchingPredicate, Predicate: target},
	}, true
}

// --- predicates ----------------------------------------------------------

func parsePredicate(s *state) (ability.Predicate, bool) {
	switch {
	case s.word("this"):
		return ability.PredicateThis{}, true
	case s.word("it"):
		return ability.PredicateIt{}, true
	case s.word("them"):
		return ability.PredicateThem{}, true
	case s.word("that"):
		s.word("character")
		return ability.PredicateThat{}, true
	}

	start := s.save()
	if s.phrase("the", "enemy's") {
		if cp, ok := parseCardPredicate(s); ok {
			return ability.PredicateEnemy{Card: cp}, true
		}
	}
	s.restore(start)

	if s.word("an") && s.word("enemy") {
		if cp, ok := parseCardPredicate(s); ok {
			return ability.PredicateEnemy{Card: cp}, true
		}
	}
	s.restore(start)

	if s.word("enemy") {
		if cp, ok := parseCardPredicate(s); ok {
			return ability.PredicateEnemy{Card: cp}, true
		}
	}
	s.restore(start)

	if s.word("another") {
		if cp, ok := parseCardPredicate(s); ok {
			s.phrase("you", "control")
			return ability.PredicateAnother{Card: cp}, true
		}
	}
	s.restore(start)

	if s.phrase("any", "other") {
		if cp, ok := parseCardPredicate(s); ok {
			return ability.PredicateAnyOther{Card: cp}, true
		}
	}
	s.restore(start)

	if s.word("any") {
		if cp, ok := parseCardPredicate(s); ok {
			return ability.PredicateAny{Card: cp}, true
		}
	}
	s.restore(start)

	hasArticle := s.word("a") || s.word("an")
	if cp, ok := parseCardPredicate(s); ok {
		if s.phrase("you", "control") {
			return ability.PredicateYour{Card: cp}, true
		}
		if hasArticle {
			return ability.PredicateAny{Card: cp}, true
		}
		return ability.PredicateAny{Card: cp}, true
	}
	s.restore(start)

	return nil, false
}

func parseCardPredicate(s *state) (ability.CardPredicate, bool) {
	if sub, ok := s.directiveWithPrefix("cardtype:"); ok {
		sub = strings.TrimSuffix(sub, "s")
		return ability.CardPredicate{Kind: ability.CardPredicateCharacterType, Subtype: sub}, true
	}

	start := s.save()
	if s.word("fast") {
		if nested, ok := parseCardPredicate(s); ok {
			return ability.CardPredicate{Kind: ability.CardPredicateFast, Nested: &nested}, true
		}
	}
	s.restore(start)

	if s.noun("character") {
		if cp, ok := parseCharacterModifier(s); ok {
			return cp, true
		}
		return ability.CardPredicate{Kind: ability.CardPredicateCharacter}, true
	}

	if s.noun("event") {
		return ability.CardPredicate{Kind: ability.CardPredicateEvent}, true
	}

	if s.noun("card") {
		if s.phrase("on", "the", "stack") {
			return ability.CardPredicate{Kind: ability.CardPredicateCardOnStack}, true
		}
		return ability.CardPredicate{Kind: ability.CardPredicateCard}, true
	}

	return ability.CardPredicate{}, false
}

// parseCharacterModifier parses the "with cost/spark ..." suffixes that can
// follow "character", e.g. "character with cost $2 or less".
func parseCharacterModifier(s *state) (ability.CardPredicate, bool) {
	start := s.save()
	if s.phrase("with", "cost", "less", "than", "or", "equal", "to", "the", "number", "of") {
		if nested, ok := parseCardPredicate(s); ok && s.phrase("you", "control") {
			return ability.CardPredicate{
				Kind: ability.CardPredicateCharacterWithCostComparedToControlled,
				Nested: &nested, Operator: ability.OpOrLess,
			}, true
		}
	}
	s.restore(start)

	if s.phrase("with", "cost") {
		amount, ok := s.dollarAmount()
		if ok {
			op, ok := parseComparisonSuffix(s)
			if ok {
				return ability.CardPredicate{Kind: ability.CardPredicateCardWithCost, Cost: ids.Energy(amount), Operator: op}, true
			}
		}
	}
	s.restore(start)

	if s.phrase("with", "spark") {
		n, ok := s.number()
		if ok {
			op, ok := parseComparisonSuffix(s)
			if ok {
				return ability.CardPredicate{Kind: ability.CardPredicateCharacterWithSpark, Spark: ids.Spark(n), Operator: op}, true
			}
		}
	}
	s.restore(start)

	if s.phrase("with", "a", "materialized", "ability") {
		return ability.CardPredicate{Kind: ability.CardPredicateCharacterWithMaterializedAbility}, true
	}
	s.restore(start)

	return ability.CardPredicate{}, false
}

func parseComparisonSuffix(s *state) (ability.Operator, bool) {
	switch {
	case s.phrase("or", "less"):
		return ability.OpOrLess, true
	case s.phrase("or", "more"):
		return ability.OpOrMore, true
	case s.word("exactly"):
		return ability.OpExactly, true
	default:
		return 0, false
	}
}
