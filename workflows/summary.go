package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/openkanban/planka-mcp/planka"
)

// CardSummary is a card with its derived task progress.
type CardSummary struct {
	planka.Card
	Labels               []string         `json:"labels,omitempty"`
	TaskTotal            int              `json:"taskTotal"`
	TaskCompleted        int              `json:"taskCompleted"`
	CompletionPercentage int              `json:"completionPercentage"`
	Tasks                []planka.Task    `json:"tasks,omitempty"`
	Comments             []planka.Comment `json:"comments,omitempty"`
}

// ListSummary groups a list with its cards.
type ListSummary struct {
	planka.List
	Cards []CardSummary `json:"cards"`
}

// BoardStats are board-wide counts over well-known list and label names.
type BoardStats struct {
	TotalCards int `json:"totalCards"`
	Backlog    int `json:"backlog"`
	InProgress int `json:"inProgress"`
	Testing    int `json:"testing"`
	Done       int `json:"done"`
	Urgent     int `json:"urgent"`
	Bugs       int `json:"bugs"`
}

// BoardSummary is the aggregated view of one board.
type BoardSummary struct {
	Board      planka.Board  `json:"board"`
	Lists      []ListSummary `json:"lists"`
	Stats      BoardStats    `json:"stats"`
	NextAction string        `json:"nextAction"`
}

// Summarize fetches a board with its lists, cards, tasks and labels and
// derives per-card completion, board stats and a next-action suggestion.
// When includeDetails is set, each card additionally carries its tasks
// and comments (one extra upstream call per card).
func (e *Engine) Summarize(ctx context.Context, boardID string, includeDetails bool) (*BoardSummary, error) {
	contents, err := e.client.GetBoardContents(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("board summary: %w", err)
	}

	tasksByCard := map[string][]planka.Task{}
	for _, task := range contents.Tasks {
		tasksByCard[task.CardID] = append(tasksByCard[task.CardID], task)
	}

	labelNames := map[string]string{}
	for _, label := range contents.Labels {
		labelNames[label.ID] = label.Name
	}
	labelsByCard := map[string][]string{}
	for _, link := range contents.CardLabels {
		if name, ok := labelNames[link.LabelID]; ok {
			labelsByCard[link.CardID] = append(labelsByCard[link.CardID], name)
		}
	}

	summary := &BoardSummary{Board: contents.Board, Lists: []ListSummary{}}
	stats := BoardStats{}

	for _, list := range contents.Lists {
		listSummary := ListSummary{List: list, Cards: []CardSummary{}}

		for _, card := range contents.Cards {
			if card.ListID != list.ID {
				continue
			}

			tasks := tasksByCard[card.ID]
			completed := 0
			for _, task := range tasks {
				if task.IsCompleted {
					completed++
				}
			}

			cardSummary := CardSummary{
				Card:                 card,
				Labels:               labelsByCard[card.ID],
				TaskTotal:            len(tasks),
				TaskCompleted:        completed,
				CompletionPercentage: completionPercentage(completed, len(tasks)),
			}

			if includeDetails {
				cardSummary.Tasks = tasks
				comments, err := e.client.CommentsByCard(ctx, card.ID)
				if err != nil {
					e.logger.Warn("summary card comments",
						"card_id", card.ID, "error", err)
				} else {
					cardSummary.Comments = comments
				}
			}

			stats.TotalCards++
			for _, name := range cardSummary.Labels {
				switch strings.ToLower(name) {
				case "urgent":
					stats.Urgent++
				case "bug":
					stats.Bugs++
				}
			}

			listSummary.Cards = append(listSummary.Cards, cardSummary)
		}

		switch strings.ToLower(list.Name) {
		case "backlog":
			stats.Backlog += len(listSummary.Cards)
		case "in progress":
			stats.InProgress += len(listSummary.Cards)
		case "testing":
			stats.Testing += len(listSummary.Cards)
		case "done":
			stats.Done += len(listSummary.Cards)
		}

		summary.Lists = append(summary.Lists, listSummary)
	}

	summary.Stats = stats
	summary.NextAction = nextAction(stats)
	return summary, nil
}

// nextAction applies the fixed priority testing > in progress > backlog.
func nextAction(stats BoardStats) string {
	switch {
	case stats.Testing > 0:
		return fmt.Sprintf("Review the %d card(s) in testing", stats.Testing)
	case stats.InProgress > 0:
		return fmt.Sprintf("Continue the %d card(s) in progress", stats.InProgress)
	case stats.Backlog > 0:
		return fmt.Sprintf("Pick up the next of %d card(s) from the backlog", stats.Backlog)
	default:
		return "All cards complete"
	}
}
