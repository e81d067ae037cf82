package generator

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// DefaultAuthenticityScore is reported whenever scoring cannot complete.
const DefaultAuthenticityScore = 50

var leadingInt = regexp.MustCompile(`^\s*([+-]?\d+)`)

// ScoreAuthenticity rates content for trust-building potential. It never
// fails: any problem yields DefaultAuthenticityScore.
func (c *Client) ScoreAuthenticity(ctx context.Context, content string) int {
	reply, err := c.complete(ctx, authenticitySystemPrompt, fmt.Sprintf(authenticityPrompt, content), 0.3, nil)
	if err != nil {
		c.logger.Warn("authenticity scoring failed, using default", "error", err)
		return DefaultAuthenticityScore
	}

	score, ok := parseScore(reply)
	if !ok {
		c.logger.Warn("unparsable authenticity score, using default", "reply", reply)
		return DefaultAuthenticityScore
	}
	return score
}

// parseScore reads the integer at the start of s and clamps it to 0..100.
func parseScore(s string) (int, bool) {
	m := leadingInt.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if errors.Is(err, strconv.ErrRange) {
		if m[1][0] == '-' {
			return 0, true
		}
		return 100, true
	}
	if err != nil {
		return 0, false
	}
	return clamp(n, 0, 100), true
}
