package battle

import (
	"github.com/dreamtides/dtengine/action"
	"github.com/dreamtides/dtengine/ability"
	"github.com/dreamtides/dtengine/ids"
)

// PromptKind names which of the six prompt variants spec.md 4.D describes
// a Prompt carries.
type PromptKind int

const (
	PromptChooseCharacter PromptKind = iota
	PromptChooseStackCard
	PromptChooseHandCards
	PromptChooseEnergyValue
	PromptSelectDeckCardOrder
	PromptGenericChoice
)

// GenericChoice is one labelled alternative in a PromptGenericChoice
// prompt, carrying the effect to apply if chosen — the representation
// spec.md 4.D uses for "pay cost or decline" responses to negate-style
// effects, grounded on
// original_source/rules_engine/src/battle_mutations/src/effects/negate_unless_pays_cost.rs.
type GenericChoice struct {
	Label  string
	Effect ability.StandardEffect // a nil Effect means "do nothing"
}

// pendingResolution carries enough context to resume an effect once its
// prompt is answered (spec.md section 9's "externalised continuation"),
// rather than encoding the suspension as a captured closure, keeping
// Prompt plain data. Pending prompts are not saved: Snapshot refuses to
// save a battle while any prompt is pending.
type pendingResolution struct {
	Source  EffectSource
	Effect  ability.StandardEffect
	Targets ResolvedTargets
}

// Prompt is a single pending player decision. Only one prompt is ever
// "active" (the front of State.Prompts); submitting or cancelling it may
// enqueue further prompts or apply an effect (spec.md 4.D).
type Prompt struct {
	Player ids.PlayerName
	Kind   PromptKind

	// StackItem is the stack card this prompt's selection attaches targets
	// to, for ChooseCharacter/ChooseStackCard prompts raised while playing
	// a card. Zero if the prompt instead resumes a pendingResolution
	// directly (e.g. a triggered ability's own target choice).
	StackItem ids.CardId
	Resume    *pendingResolution

	CharacterChoices []ids.CardId
	StackChoices     []ids.CardId

	HandChoices []ids.CardId
	HandMin     int
	HandMax     int
	HandTag     string // "discard" | "banish"

	EnergyMin     ids.Energy
	EnergyMax     ids.Energy
	EnergyCurrent ids.Energy

	OrderTarget action.CardOrderSelectionTarget
	OrderCards  []ids.CardId

	Choices []GenericChoice
}

// PromptActive reports whether a prompt is awaiting a decision.
func (s *State) PromptActive() bool {
	return len(s.Prompts) > 0
}

// FrontPrompt returns the active prompt, or nil.
func (s *State) FrontPrompt() *Prompt {
	if len(s.Prompts) == 0 {
		return nil
	}
	return s.Prompts[0]
}

// PushPrompt enqueues a prompt.
func (s *State) PushPrompt(p *Prompt) {
	s.Prompts = append(s.Prompts, p)
}

// popPrompt removes and returns the front prompt.
func (s *State) popPrompt() *Prompt {
	if len(s.Prompts) == 0 {
		return nil
	}
	p := s.Prompts[0]
	s.Prompts = s.Prompts[1:]
	return p
}
