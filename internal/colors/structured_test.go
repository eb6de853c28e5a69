package colors

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestStructuredLogOnlyInDebug(t *testing.T) {
	_, errOut := captureOutput(t)

	SetDebug(false)
	StructuredInfo("fader", "step", "completed", nil, "", nil)
	if errOut.Len() != 0 {
		t.Fatalf("expected no structured output without debug, got %q", errOut.String())
	}

	SetDebug(true)
	defer SetDebug(false)
	StructuredError("pulse", "run", "failed", errors.New("boom"), "get-sink-volume", map[string]interface{}{"args_count": 2})

	line := strings.TrimSpace(errOut.String())
	var entry StructuredLogEntry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("invalid JSON %q: %v", line, err)
	}
	if entry.Level != LevelError || entry.Component != "pulse" || entry.Error != "boom" || entry.ID != "get-sink-volume" {
		t.Errorf("unexpected entry: %+v", entry)
	}
}
