package entities

import (
	"encoding/json"
	"fmt"

	"video-clipper/pkg/errors"
)

// ClipRange is one requested time range, in seconds.
type ClipRange struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// ClipPlan is the ordered list of ranges to cut. Order determines clip
// numbering and ZIP entry order.
type ClipPlan []ClipRange

// ParseClipPlan deserializes and structurally validates the client-supplied
// plan. Every entry is checked; the first violation is reported with its
// 0-based index.
func ParseClipPlan(raw string) (ClipPlan, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, errors.ErrMalformedPlan(fmt.Sprintf("Invalid JSON format for clips: %v", err))
	}
	if len(items) == 0 {
		return nil, errors.ErrMalformedPlan("At least one clip must be specified")
	}

	plan := make(ClipPlan, 0, len(items))
	for i, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			return nil, errors.ErrMalformedPlan(fmt.Sprintf("Clip %d must be an object", i))
		}

		start, err := numericField(fields, "start")
		if err != nil {
			return nil, errors.ErrMalformedPlan(fmt.Sprintf("Clip %d %v", i, err))
		}
		end, err := numericField(fields, "end")
		if err != nil {
			return nil, errors.ErrMalformedPlan(fmt.Sprintf("Clip %d %v", i, err))
		}
		if start < 0 || end < 0 {
			return nil, errors.ErrMalformedPlan(fmt.Sprintf("Clip %d start and end must be non-negative", i))
		}
		if end <= start {
			return nil, errors.ErrMalformedPlan(fmt.Sprintf("Clip %d end must be greater than start", i))
		}

		plan = append(plan, ClipRange{Start: start, End: end})
	}

	return plan, nil
}

// ValidateAgainstDuration checks every range against the probed source
// duration, reporting the first range that runs past the end.
func (p ClipPlan) ValidateAgainstDuration(duration float64) error {
	for i, r := range p {
		if r.End > duration {
			return errors.ErrRangeExceedsSource(i, r.End, duration)
		}
	}
	return nil
}

func numericField(fields map[string]json.RawMessage, key string) (float64, error) {
	raw, ok := fields[key]
	if !ok {
		return 0, fmt.Errorf("must have 'start' and 'end' keys")
	}
	// Unmarshal through a pointer: a bare float64 silently ignores JSON null.
	var v *float64
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return 0, fmt.Errorf("start and end must be numbers")
	}
	return *v, nil
}
