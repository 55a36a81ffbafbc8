// Package script replays recorded page events from a JSON file.
// Scripts only drive input; nothing is written back.
package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/idilsaglam/todofilter/internal/widget"
)

const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["type"],
    "additionalProperties": false,
    "properties": {
      "type":  {"enum": ["submit", "keyup", "click"]},
      "value": {"type": "string"},
      "row":   {"type": "integer", "minimum": 0}
    }
  }
}`

var stepSchema = jsonschema.MustCompileString("script.schema.json", schemaJSON)

// Step is one user action. Row is the 1-based displayed row a click lands on.
type Step struct {
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
	Row   int    `json:"row,omitempty"`
}

// Load reads and validates a script file.
func Load(path string) ([]Step, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(b)
}

// Parse validates a script against its schema and decodes it.
func Parse(b []byte) ([]Step, error) {
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := stepSchema.Validate(doc); err != nil {
		return nil, schemaError(err)
	}
	var steps []Step
	if err := json.Unmarshal(b, &steps); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return steps, nil
}

// schemaError reports the first leaf failure as "step N: field: message".
func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("validate: %w", err)
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return fmt.Errorf("%s: %s", location(ve.InstanceLocation), ve.Message)
}

func location(ptr string) string {
	parts := strings.Split(strings.TrimPrefix(ptr, "/"), "/")
	if ptr == "" || len(parts) == 0 {
		return "script"
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return "script"
	}
	loc := "step " + strconv.Itoa(n+1)
	if len(parts) > 1 {
		loc += ": " + strings.Join(parts[1:], ".")
	}
	return loc
}

// Event turns a step into the event the page would have observed,
// resolving click rows against the widget's current rendering.
func (s Step) Event(w *widget.ListWidget) widget.Event {
	switch widget.EventType(s.Type) {
	case widget.EventSubmit:
		return widget.Event{Type: widget.EventSubmit, Target: widget.Element{Role: widget.RoleForm}, Value: s.Value}
	case widget.EventKeyUp:
		return widget.Event{Type: widget.EventKeyUp, Target: widget.Element{Role: widget.RoleSearch}, Value: s.Value}
	default:
		return widget.Event{Type: widget.EventClick, Target: w.ElementAt(s.Row)}
	}
}

// Replay dispatches every step through the widget and returns how many
// of them changed the view.
func Replay(w *widget.ListWidget, steps []Step) int {
	changed := 0
	for _, s := range steps {
		if w.Handle(s.Event(w)).Changed {
			changed++
		}
	}
	return changed
}
