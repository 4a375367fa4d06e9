package webkit

import (
	"encoding/json"
	"fmt"
)

// CustomEventScript builds a script dispatching a DOM CustomEvent named name
// on window, with payload JSON encoded as the event detail.
func CustomEventScript(name string, payload any) (string, error) {
	if name == "" {
		return "", fmt.Errorf("webkit: custom event name cannot be empty")
	}
	encodedName, err := json.Marshal(name)
	if err != nil {
		return "", fmt.Errorf("encode event name: %w", err)
	}
	detail, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode %s detail: %w", name, err)
	}
	return fmt.Sprintf("window.dispatchEvent(new CustomEvent(%s, { detail: %s }));", encodedName, detail), nil
}
