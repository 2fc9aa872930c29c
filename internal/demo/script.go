package demo

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Verb names a scripted action.
type Verb string

const (
	// VerbTap taps at a viewport y coordinate.
	VerbTap Verb = "tap"
	// VerbDrag drags by a distance and rests before lifting.
	VerbDrag Verb = "drag"
	// VerbFling drags by a distance and lifts while moving.
	VerbFling Verb = "fling"
	// VerbScroll moves the offset programmatically.
	VerbScroll Verb = "scroll"
	// VerbWait lets time pass.
	VerbWait Verb = "wait"
)

// DefaultScript exercises flinging in both directions, a tap and a large
// programmatic jump.
const DefaultScript = "fling -900; tap 250; drag 120; scroll 5000; fling 1500"

// Step is one scripted action. Value is a pixel amount for every verb
// except wait, which uses Duration.
type Step struct {
	Verb     Verb
	Value    float64
	Duration time.Duration
}

func (s Step) String() string {
	if s.Verb == VerbWait {
		return fmt.Sprintf("%s %s", s.Verb, s.Duration)
	}
	return fmt.Sprintf("%s %g", s.Verb, s.Value)
}

// ParseScript parses steps separated by semicolons or newlines, such as
// "fling -600; wait 500ms; tap 250".
func ParseScript(script string) ([]Step, error) {
	var steps []Step
	fields := strings.FieldsFunc(script, func(r rune) bool { return r == ';' || r == '\n' })
	for i, raw := range fields {
		raw = strings.TrimSpace(raw)
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		parts := strings.Fields(raw)
		if len(parts) != 2 {
			return nil, fmt.Errorf("step %d %q: want \"<verb> <amount>\"", i+1, raw)
		}
		step := Step{Verb: Verb(strings.ToLower(parts[0]))}
		switch step.Verb {
		case VerbWait:
			d, err := time.ParseDuration(parts[1])
			if err != nil {
				return nil, fmt.Errorf("step %d %q: %w", i+1, raw, err)
			}
			if d < 0 {
				return nil, fmt.Errorf("step %d %q: negative duration", i+1, raw)
			}
			step.Duration = d
		case VerbTap, VerbDrag, VerbFling, VerbScroll:
			v, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return nil, fmt.Errorf("step %d %q: %w", i+1, raw, err)
			}
			step.Value = v
		default:
			return nil, fmt.Errorf("step %d %q: unknown verb %q", i+1, raw, parts[0])
		}
		steps = append(steps, step)
	}
	return steps, nil
}
