package cli

import (
	"fmt"
	"time"
)

func parseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid --timeout %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid --timeout %q: must not be negative", s)
	}
	return d, nil
}
