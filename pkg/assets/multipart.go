package assets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Case is one entry of a multipart block states file. The models in Apply
// are used whenever When matches (or always if When is nil).
type Case struct {
	When  *WhenClause `json:"when,omitempty" yaml:"when,omitempty"`
	Apply Variant     `json:"apply" yaml:"apply"`
}

// UnmarshalJSON requires the "apply" field
func (c *Case) UnmarshalJSON(data []byte) error {
	var raw struct {
		When  *WhenClause `json:"when"`
		Apply Variant     `json:"apply"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Apply == nil {
		return errors.New(`multipart case without "apply"`)
	}
	c.When = raw.When
	c.Apply = raw.Apply
	return nil
}

// Applies returns true if this case should be rendered for the given block state
func (c Case) Applies(state map[string]string) bool {
	return c.When == nil || c.When.Matches(state)
}

// ClauseOp is the way the conditions of a WhenClause are combined
type ClauseOp int

const (
	// OpSingle is a clause with exactly one condition
	OpSingle ClauseOp = iota
	// OpOr matches if any condition matches (`{"OR": [...]}`)
	OpOr
	// OpAnd matches if all conditions match (`{"AND": [...]}`)
	OpAnd
)

// WhenClause is the "when" of a multipart case
type WhenClause struct {
	Op         ClauseOp
	Conditions []Condition
}

// Matches evaluates the clause against a block state
func (w WhenClause) Matches(state map[string]string) bool {
	switch w.Op {
	case OpOr:
		for _, c := range w.Conditions {
			if c.Matches(state) {
				return true
			}
		}
		return false
	default:
		for _, c := range w.Conditions {
			if !c.Matches(state) {
				return false
			}
		}
		return true
	}
}

// UnmarshalJSON handles the three forms of a "when" clause:
//
//	{"north": "true"}
//	{"OR": [{"north": "true"}, {"east": "true"}]}
//	{"AND": [{"north": "true"}, {"east": "true"}]}
func (w *WhenClause) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if len(fields) == 1 {
		for key, value := range fields {
			var op ClauseOp
			switch key {
			case "OR":
				op = OpOr
			case "AND":
				op = OpAnd
			default:
				continue
			}
			if trimmed := bytes.TrimLeft(value, " \t\r\n"); len(trimmed) == 0 || trimmed[0] != '[' {
				return fmt.Errorf("%q must be a list of conditions", key)
			}
			var conditions []Condition
			if err := json.Unmarshal(value, &conditions); err != nil {
				return err
			}
			*w = WhenClause{Op: op, Conditions: conditions}
			return nil
		}
	}

	var condition Condition
	if err := json.Unmarshal(data, &condition); err != nil {
		return err
	}
	*w = WhenClause{Op: OpSingle, Conditions: []Condition{condition}}
	return nil
}

// MarshalJSON writes the clause back in its original form
func (w WhenClause) MarshalJSON() ([]byte, error) {
	switch w.Op {
	case OpOr:
		return json.Marshal(map[string][]Condition{"OR": w.Conditions})
	case OpAnd:
		return json.Marshal(map[string][]Condition{"AND": w.Conditions})
	}
	if len(w.Conditions) == 0 {
		return []byte("{}"), nil
	}
	return json.Marshal(w.Conditions[0])
}

// MarshalYAML mirrors MarshalJSON
func (w WhenClause) MarshalYAML() (interface{}, error) {
	switch w.Op {
	case OpOr:
		return map[string][]Condition{"OR": w.Conditions}, nil
	case OpAnd:
		return map[string][]Condition{"AND": w.Conditions}, nil
	}
	if len(w.Conditions) == 0 {
		return Condition{}, nil
	}
	return w.Conditions[0], nil
}

// Condition maps block property names to required values. All of them have
// to match.
type Condition map[string]StateValue

// Matches returns true if all properties match state
func (c Condition) Matches(state map[string]string) bool {
	for name, want := range c {
		actual, ok := state[name]
		if !ok || !want.Matches(actual) {
			return false
		}
	}
	return true
}

// StateValue is the right hand side of a condition. Files use both
// `"up": "true"` and `"up": true`, so the value remembers whether it was a
// JSON bool. Numbers are kept as their text.
type StateValue struct {
	value  string
	isBool bool
}

// StringValue returns a string condition value
func StringValue(s string) StateValue {
	return StateValue{value: s}
}

// BoolValue returns a bool condition value
func BoolValue(b bool) StateValue {
	if b {
		return StateValue{value: "true", isBool: true}
	}
	return StateValue{value: "false", isBool: true}
}

// IsBool returns true if the value was an unquoted JSON bool
func (s StateValue) IsBool() bool {
	return s.isBool
}

func (s StateValue) String() string {
	return s.value
}

// Matches compares the value with a property value. Values can list
// alternatives separated by "|" ("side|up") and can be negated with a
// leading "!".
func (s StateValue) Matches(actual string) bool {
	want := s.value
	negate := strings.HasPrefix(want, "!")
	if negate {
		want = want[1:]
	}
	matched := false
	for _, alt := range strings.Split(want, "|") {
		if alt == actual {
			matched = true
			break
		}
	}
	return matched != negate
}

// UnmarshalJSON accepts strings, bools and numbers
func (s *StateValue) UnmarshalJSON(data []byte) error {
	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch val := v.(type) {
	case bool:
		*s = BoolValue(val)
	case string:
		*s = StringValue(val)
	case json.Number:
		*s = StringValue(val.String())
	default:
		return fmt.Errorf("condition value must be a string or bool, got %s", data)
	}
	return nil
}

// MarshalJSON writes bools unquoted
func (s StateValue) MarshalJSON() ([]byte, error) {
	if s.isBool {
		return []byte(s.value), nil
	}
	return json.Marshal(s.value)
}

// MarshalYAML mirrors MarshalJSON
func (s StateValue) MarshalYAML() (interface{}, error) {
	if s.isBool {
		return s.value == "true", nil
	}
	return s.value, nil
}
