package advisor

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// parseCalories pulls the first integer out of a model reply. Replies
// are expected to be a bare number but models occasionally wrap them in
// prose or units.
func parseCalories(out string) (int, error) {
	out = strings.TrimSpace(out)

	start := -1
	for i, r := range out {
		if unicode.IsDigit(r) {
			start = i
			break
		}
	}
	if start == -1 {
		return 0, fmt.Errorf("no number in response %q", truncate(out, 80))
	}

	end := start
	for end < len(out) && out[end] >= '0' && out[end] <= '9' {
		end++
	}

	calories, err := strconv.Atoi(out[start:end])
	if err != nil {
		return 0, fmt.Errorf("invalid number in response: %w", err)
	}
	return calories, nil
}

// parseJSON decodes a model reply into dst, tolerating markdown code
// fences and prose around the payload.
func parseJSON(out string, dst any) error {
	out = strings.TrimSpace(out)
	out = strings.TrimPrefix(out, "```json")
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(out, "```")
	out = strings.TrimSpace(out)

	// Cut down to the outermost JSON value if prose surrounds it.
	if start := strings.IndexAny(out, "[{"); start > 0 {
		out = out[start:]
	}
	if end := strings.LastIndexAny(out, "]}"); end >= 0 && end < len(out)-1 {
		out = out[:end+1]
	}

	if err := json.Unmarshal([]byte(out), dst); err != nil {
		return fmt.Errorf("malformed response %q: %w", truncate(out, 80), err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
