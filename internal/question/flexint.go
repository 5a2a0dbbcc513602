package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Int is an optional integer that decodes from a JSON number or a numeric
// string. null, "" and an absent field all leave it unset.
type Int struct {
	Value int
	Set   bool
}

func (n *Int) UnmarshalJSON(b []byte) error {
	*n = Int{}
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}

	if v, err := strconv.Atoi(raw); err == nil {
		*n = Int{Value: v, Set: true}
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return fmt.Errorf("invalid integer %s", string(b))
	}
	*n = Int{Value: int(f), Set: true}
	return nil
}

// Ptr returns nil for an unset value.
func (n Int) Ptr() *int {
	if !n.Set {
		return nil
	}
	v := n.Value
	return &v
}
