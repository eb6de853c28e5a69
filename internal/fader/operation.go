package fader

import (
	"fmt"
	"strings"
)

// Operation is one of the fades a single invocation can perform.
type Operation int

const (
	Increase Operation = iota
	Decrease
	Mute
	Unmute
	ToggleMute
)

var operationNames = map[Operation]string{
	Increase:   "increase",
	Decrease:   "decrease",
	Mute:       "mute",
	Unmute:     "unmute",
	ToggleMute: "toggle-mute",
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// Banner is the line printed when the operation runs.
func (o Operation) Banner() string {
	switch o {
	case Increase:
		return "Crescendo"
	case Decrease:
		return "Diminuendo"
	case Mute:
		return "Diminuendo al niente"
	case Unmute:
		return "Crescendo dal niente"
	case ToggleMute:
		return "Toggled mute state"
	default:
		return o.String()
	}
}

// ParseOperation accepts the command names and their short aliases.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "increase", "inc", "i":
		return Increase, nil
	case "decrease", "dec", "d":
		return Decrease, nil
	case "mute", "m":
		return Mute, nil
	case "unmute", "u":
		return Unmute, nil
	case "toggle-mute", "toggle", "t":
		return ToggleMute, nil
	default:
		return 0, fmt.Errorf("unknown operation %q", s)
	}
}
