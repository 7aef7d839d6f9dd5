package calc

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Number is a float64 whose JSON form is a plain number when finite and the
// string "+Inf", "-Inf" or "NaN" otherwise. encoding/json rejects
// non-finite floats, and operations such as Add can legitimately overflow.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	v := float64(n)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return json.Marshal(FormatNumber(v))
	}
	return json.Marshal(v)
}

func (n *Number) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", s, err)
		}
		*n = Number(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = Number(v)
	return nil
}

type snapshotJSON struct {
	Memory     Number   `json:"memory"`
	History    []string `json:"history"`
	LastResult *Number  `json:"last_result,omitempty"`
}

// MarshalJSON encodes the snapshot with non-finite values as strings.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	out := snapshotJSON{Memory: Number(s.Memory), History: s.History}
	if s.LastResult != nil {
		v := Number(*s.LastResult)
		out.LastResult = &v
	}
	return json.Marshal(out)
}

// UnmarshalJSON replaces s entirely; a missing last_result leaves it nil.
func (s *Snapshot) UnmarshalJSON(b []byte) error {
	var in snapshotJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	*s = Snapshot{Memory: float64(in.Memory), History: in.History}
	if in.LastResult != nil {
		v := float64(*in.LastResult)
		s.LastResult = &v
	}
	return nil
}
