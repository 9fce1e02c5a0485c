package navtree

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/wayfind/pkg/errors"
)

// rawState mirrors State for decoding foreign snapshots. Index is a
// pointer so an omitted index ("unset") can be told apart from an explicit
// zero and normalized to the last route.
type rawState struct {
	Key    string      `yaml:"key" json:"key"`
	Routes []*rawRoute `yaml:"routes" json:"routes"`
	Index  *int        `yaml:"index" json:"index"`
}

type rawRoute struct {
	Name   string                 `yaml:"name" json:"name"`
	Key    string                 `yaml:"key" json:"key"`
	Params map[string]interface{} `yaml:"params" json:"params"`
	State  *rawState              `yaml:"state" json:"state"`
}

// DecodeState parses a YAML snapshot into a State tree, filling in missing
// keys, normalizing unset indices to the last route, and validating the
// result
func DecodeState(data []byte) (*State, error) {
	var raw rawState
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrSnapshotDecode, "snapshot is not valid YAML")
	}
	return fromRaw(&raw)
}

// DecodeStateJSON parses a JSON snapshot into a State tree with the same
// normalization as DecodeState
func DecodeStateJSON(data []byte) (*State, error) {
	var raw rawState
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrSnapshotDecode, "snapshot is not valid JSON")
	}
	return fromRaw(&raw)
}

// EncodeState renders a State tree as YAML
func EncodeState(s *State) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSnapshotEncode, "cannot encode state as YAML")
	}
	return data, nil
}

// EncodeStateJSON renders a State tree as indented JSON
func EncodeStateJSON(s *State) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSnapshotEncode, "cannot encode state as JSON")
	}
	return data, nil
}

func fromRaw(raw *rawState) (*State, error) {
	state := convertState(raw)
	if state == nil {
		return nil, errors.New(errors.ErrSnapshotDecode, "snapshot is empty")
	}
	if err := state.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrSnapshotDecode, "snapshot violates tree invariants")
	}
	return state, nil
}

func convertState(raw *rawState) *State {
	if raw == nil {
		return nil
	}
	state := &State{Key: raw.Key}
	if state.Key == "" {
		state.Key = NewStateKey()
	}
	for _, rr := range raw.Routes {
		route := &Route{
			Name:  rr.Name,
			Key:   rr.Key,
			State: convertState(rr.State),
		}
		if route.Key == "" {
			route.Key = NewRouteKey(rr.Name)
		}
		if rr.Params != nil {
			route.Params = Params(rr.Params)
		}
		state.Routes = append(state.Routes, route)
	}
	// An unset index addresses the last route
	switch {
	case raw.Index != nil:
		state.Index = *raw.Index
	case len(state.Routes) > 0:
		state.Index = len(state.Routes) - 1
	}
	return state
}
