package script

// Action identifies a transition in the conversation decision tree.
// The set is closed; anything else falls through to the generic branch.
type Action string

const (
	ActionFeelingPicked   Action = "feeling_picked"
	ActionExplainVenting  Action = "explain_venting"
	ActionExplainCoaching Action = "explain_coaching"
	ActionExplainTherapy  Action = "explain_therapy"
	ActionCrisisMode      Action = "crisis_mode"
	ActionGotoVenting     Action = "goto_venting"
	ActionGotoCoaching    Action = "goto_coaching"
	ActionGotoTherapy     Action = "goto_therapy"
	ActionGotoHelpline    Action = "goto_helpline"
)

// Stage names a point in the decision tree that determines which bot
// message and choice set come next.
type Stage string

const (
	StageOpening       Stage = "opening"
	StageReflection    Stage = "reflection"
	StageVenting       Stage = "venting"
	StageCoaching      Stage = "coaching"
	StageTherapy       Stage = "therapy"
	StageCrisis        Stage = "crisis"
	StageCrisisKeyword Stage = "crisis_keyword"
	StageFallback      Stage = "fallback"
)

// Choice is one selectable button offered at a conversational stage.
type Choice struct {
	Label  string `json:"label"`
	Action Action `json:"action"`
}

// Reply pairs a scripted bot message with the name of the choice set
// offered once it is delivered.
type Reply struct {
	Body      string
	ChoiceSet string
}

// Script bundles the static conversation content: message bodies, choice
// sets keyed by stage name, crisis keywords, and navigation targets.
// Loaded once at startup, never mutated at runtime.
type Script struct {
	Disclaimer     string
	Replies        map[Stage]Reply
	ChoiceSets     map[string][]Choice
	CrisisKeywords []string
	Routes         map[Action]string
	HelplineURL    string
}

// Reply looks up the scripted response for a stage.
func (s Script) Reply(stage Stage) (Reply, bool) {
	reply, ok := s.Replies[stage]
	return reply, ok
}

// Choices returns a copy of the named choice set, or nil when the name
// is unknown or empty.
func (s Script) Choices(name string) []Choice {
	set, ok := s.ChoiceSets[name]
	if !ok {
		return nil
	}
	return append([]Choice(nil), set...)
}

// Route resolves the in-site destination for a navigation action.
func (s Script) Route(action Action) (string, bool) {
	path, ok := s.Routes[action]
	return path, ok
}
