package workflows

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/openkanban/planka-mcp/planka"
)

// CardDetails is the full analyzed view of one card.
type CardDetails struct {
	Card     planka.Card      `json:"card"`
	Tasks    []planka.Task    `json:"tasks"`
	Comments []planka.Comment `json:"comments"`
	Labels   []planka.Label   `json:"labels"`

	TaskTotal            int `json:"taskTotal"`
	TaskCompleted        int `json:"taskCompleted"`
	CompletionPercentage int `json:"completionPercentage"`

	// IsComplete means the card has tasks and every one is done.
	IsComplete bool `json:"isComplete"`

	// LikelyHumanFeedback means the newest comment does not look like one
	// this package generated.
	LikelyHumanFeedback bool `json:"likelyHumanFeedback"`

	// NeedsAttention flags cards with human feedback that are not done yet.
	NeedsAttention bool `json:"needsAttention"`
}

// AnalyzeCard fetches a card with its tasks, comments and labels and
// derives completion and attention signals. Comments come back newest
// first.
func (e *Engine) AnalyzeCard(ctx context.Context, cardID string) (*CardDetails, error) {
	card, err := e.client.GetCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("analyze card: %w", err)
	}

	tasks, err := e.client.TasksByCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("analyze card: %w", err)
	}

	comments, err := e.client.CommentsByCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("analyze card: %w", err)
	}
	sort.SliceStable(comments, func(i, j int) bool {
		a, b := comments[i].CreatedAt, comments[j].CreatedAt
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		return a.After(*b)
	})

	labels := []planka.Label{}
	if card.BoardID != "" {
		contents, err := e.client.GetBoardContents(ctx, card.BoardID)
		if err != nil {
			e.logger.Warn("analyze card labels",
				"card_id", cardID, "board_id", card.BoardID, "error", err)
		} else {
			byID := map[string]planka.Label{}
			for _, label := range contents.Labels {
				byID[label.ID] = label
			}
			for _, link := range contents.CardLabels {
				if link.CardID != cardID {
					continue
				}
				if label, ok := byID[link.LabelID]; ok {
					labels = append(labels, label)
				}
			}
		}
	}

	completed := 0
	for _, task := range tasks {
		if task.IsCompleted {
			completed++
		}
	}

	details := &CardDetails{
		Card:                 *card,
		Tasks:                tasks,
		Comments:             comments,
		Labels:               labels,
		TaskTotal:            len(tasks),
		TaskCompleted:        completed,
		CompletionPercentage: completionPercentage(completed, len(tasks)),
		IsComplete:           len(tasks) > 0 && completed == len(tasks),
	}
	details.LikelyHumanFeedback = likelyHumanFeedback(comments)
	details.NeedsAttention = details.LikelyHumanFeedback && !details.IsComplete
	return details, nil
}

// likelyHumanFeedback reports whether the newest comment reads like a
// human wrote it rather than this package.
func likelyHumanFeedback(comments []planka.Comment) bool {
	if len(comments) == 0 {
		return false
	}
	latest := comments[0].Text
	if strings.Contains(latest, automatedSignature) {
		return false
	}
	if strings.HasPrefix(latest, taskCommentPrefix) {
		return false
	}
	return true
}
