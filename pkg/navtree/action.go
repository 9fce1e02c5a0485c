package navtree

// ActionType is the verb of a navigation action
type ActionType string

const (
	// ActionNavigate goes to a route, reusing an existing history entry
	// when one with the same name is already present
	ActionNavigate ActionType = "NAVIGATE"

	// ActionPush always adds a new history entry
	ActionPush ActionType = "PUSH"

	// ActionReplace supersedes the active route in place
	ActionReplace ActionType = "REPLACE"

	// ActionReset replaces a navigator's state wholesale
	ActionReset ActionType = "RESET"
)

// Intent is the caller-supplied hint qualifying how a navigate request
// should treat the existing history
type Intent string

const (
	// IntentNone is the default: no override requested
	IntentNone Intent = ""

	// IntentForcedUp asserts the current screen must be fully superseded
	IntentForcedUp Intent = "FORCED_UP"

	// IntentUp replaces the current top screen with the target while
	// preserving what lies below it as the back target
	IntentUp Intent = "UP"

	// IntentPush requests a genuinely new history entry
	IntentPush Intent = "PUSH"

	// IntentReplace requests an in-place replacement, used when silently
	// redirecting away from an inaccessible target
	IntentReplace Intent = "REPLACE"
)

// Payload addresses the target route at the node an action applies to.
// Params may recursively carry the next {screen, params, path} triple.
type Payload struct {
	Name   string `yaml:"name,omitempty" json:"name,omitempty"`
	Params Params `yaml:"params,omitempty" json:"params,omitempty"`
	Path   string `yaml:"path,omitempty" json:"path,omitempty"`
}

// Action is the unit of intent dispatched to a navigator node
type Action struct {
	Type    ActionType `yaml:"type" json:"type"`
	Payload Payload    `yaml:"payload" json:"payload"`

	// Target is the key of the node the action applies to; empty means
	// the tree root
	Target string `yaml:"target,omitempty" json:"target,omitempty"`

	// State carries the replacement tree for ActionReset
	State *State `yaml:"state,omitempty" json:"state,omitempty"`
}

// NextLevel unwraps the nested {screen, params, path} triple from the
// payload's params, producing the payload for one nesting level down.
// ok is false when the params carry no deeper screen.
func (p Payload) NextLevel() (Payload, bool) {
	if p.Params == nil {
		return Payload{}, false
	}
	next := Payload{}
	if screen, isStr := p.Params[ParamScreen].(string); isStr {
		next.Name = screen
	}
	if params, isMap := p.Params[ParamParams].(map[string]interface{}); isMap {
		next.Params = Params(params)
	} else if params, isParams := p.Params[ParamParams].(Params); isParams {
		next.Params = params
	}
	if path, isStr := p.Params[ParamPath].(string); isStr {
		next.Path = path
	}
	if next.Name == "" && next.Params == nil && next.Path == "" {
		return Payload{}, false
	}
	return next, true
}

// WithNested returns a copy of the params with the next-level triple set
// under the well-known keys
func (p Params) WithNested(next Payload) Params {
	out := make(Params, len(p)+3)
	for k, v := range p {
		out[k] = v
	}
	if next.Name != "" {
		out[ParamScreen] = next.Name
	}
	if next.Params != nil {
		out[ParamParams] = map[string]interface{}(next.Params)
	}
	if next.Path != "" {
		out[ParamPath] = next.Path
	}
	return out
}
