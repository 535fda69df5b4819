package planka

import (
	"context"
	"fmt"
)

// StopwatchStatus is a read-only view of a card's stopwatch. Current is
// the elapsed seconds of the running segment; Total the accumulated
// seconds from stopped segments.
type StopwatchStatus struct {
	IsRunning        bool   `json:"isRunning"`
	Total            int    `json:"total"`
	Current          int    `json:"current"`
	FormattedTotal   string `json:"formattedTotal"`
	FormattedCurrent string `json:"formattedCurrent"`
}

// StartStopwatch starts a card's stopwatch, preserving the accumulated
// total. Starting an already-running stopwatch leaves it untouched.
func (c *Client) StartStopwatch(ctx context.Context, cardID string) (*Card, error) {
	card, err := c.GetCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("start stopwatch: %w", err)
	}

	total := 0
	if card.Stopwatch != nil {
		if card.Stopwatch.StartedAt != nil {
			return card, nil
		}
		total = card.Stopwatch.Total
	}

	now := c.now()
	return c.patchStopwatch(ctx, cardID, &Stopwatch{StartedAt: &now, Total: total}, "start stopwatch")
}

// StopStopwatch stops a running stopwatch, folding the elapsed segment
// into the total. Stopping a stopped stopwatch is a no-op.
func (c *Client) StopStopwatch(ctx context.Context, cardID string) (*Card, error) {
	card, err := c.GetCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("stop stopwatch: %w", err)
	}

	if card.Stopwatch == nil || card.Stopwatch.StartedAt == nil {
		return card, nil
	}

	elapsed := int(c.now().Sub(*card.Stopwatch.StartedAt).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}
	total := card.Stopwatch.Total + elapsed

	return c.patchStopwatch(ctx, cardID, &Stopwatch{StartedAt: nil, Total: total}, "stop stopwatch")
}

// ResetStopwatch clears the stopwatch entirely.
func (c *Client) ResetStopwatch(ctx context.Context, cardID string) (*Card, error) {
	var env itemEnvelope[Card]
	err := c.patch(ctx, "cards/"+cardID, map[string]any{"stopwatch": nil}, &env)
	if err != nil {
		return nil, fmt.Errorf("reset stopwatch: %w", err)
	}
	return &env.Item, nil
}

// GetStopwatch computes the stopwatch status without mutating state.
func (c *Client) GetStopwatch(ctx context.Context, cardID string) (*StopwatchStatus, error) {
	card, err := c.GetCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("get stopwatch: %w", err)
	}

	status := &StopwatchStatus{}
	if card.Stopwatch != nil {
		status.Total = card.Stopwatch.Total
		if card.Stopwatch.StartedAt != nil {
			status.IsRunning = true
			current := int(c.now().Sub(*card.Stopwatch.StartedAt).Seconds())
			if current < 0 {
				current = 0
			}
			status.Current = current
		}
	}
	status.FormattedTotal = formatSeconds(status.Total)
	status.FormattedCurrent = formatSeconds(status.Current)
	return status, nil
}

func (c *Client) patchStopwatch(ctx context.Context, cardID string, sw *Stopwatch, op string) (*Card, error) {
	var env itemEnvelope[Card]
	err := c.patch(ctx, "cards/"+cardID, map[string]any{"stopwatch": sw}, &env)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &env.Item, nil
}

// formatSeconds renders seconds as "XhYmZs". Zero-valued leading units
// are dropped; the seconds unit is always present.
func formatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
