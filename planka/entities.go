// Package planka is an HTTP client for the Planka Kanban board REST API.
// It owns no state beyond a cached bearer token and admin user ID; every
// read goes back to the upstream server.
package planka

import "time"

// Project is the top-level grouping; it has many boards.
type Project struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Board belongs to a project and carries lists, labels and memberships.
type Board struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	ProjectID string     `json:"projectId"`
	Position  float64    `json:"position"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// List is a lane on a board.
type List struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	BoardID   string     `json:"boardId"`
	Position  float64    `json:"position"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Stopwatch tracks time spent on a card. Total accumulates only while the
// stopwatch is stopped; StartedAt is set only while it is running.
type Stopwatch struct {
	StartedAt *time.Time `json:"startedAt"`
	Total     int        `json:"total"`
}

// Card is a single item on a list.
type Card struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ListID      string     `json:"listId"`
	BoardID     string     `json:"boardId"`
	Position    float64    `json:"position"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	IsCompleted bool       `json:"isDueDateCompleted,omitempty"`
	Stopwatch   *Stopwatch `json:"stopwatch,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Task is a checklist item on a card.
type Task struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	CardID      string     `json:"cardId"`
	Position    float64    `json:"position"`
	IsCompleted bool       `json:"isCompleted"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Label is a board-scoped tag with a fixed color palette.
type Label struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Color     string     `json:"color"`
	BoardID   string     `json:"boardId"`
	Position  float64    `json:"position"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// CardLabel links a label to a card.
type CardLabel struct {
	ID      string `json:"id"`
	CardID  string `json:"cardId"`
	LabelID string `json:"labelId"`
}

// Action is an event on a card. Comments are actions of type "commentCard"
// whose data carries the text.
type Action struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	CardID    string     `json:"cardId"`
	UserID    string     `json:"userId"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	Data      struct {
		Text string `json:"text"`
	} `json:"data"`
}

const actionTypeComment = "commentCard"

// Comment is the normalized view of a commentCard action.
type Comment struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	CardID    string     `json:"cardId"`
	UserID    string     `json:"userId"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

func commentFromAction(a Action) (Comment, bool) {
	if a.Type != actionTypeComment {
		return Comment{}, false
	}
	return Comment{
		ID:        a.ID,
		Text:      a.Data.Text,
		CardID:    a.CardID,
		UserID:    a.UserID,
		CreatedAt: a.CreatedAt,
	}, true
}

// Membership roles accepted by the upstream API.
const (
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// BoardMembership grants a user access to a board.
type BoardMembership struct {
	ID         string `json:"id"`
	BoardID    string `json:"boardId"`
	UserID     string `json:"userId"`
	Role       string `json:"role"`
	CanComment *bool  `json:"canComment,omitempty"`
}

// User is an upstream account.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	Name      string     `json:"name,omitempty"`
	IsAdmin   bool       `json:"isAdmin"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// included holds the child collections the upstream API embeds inside
// parent responses instead of exposing flat list endpoints.
type included struct {
	Projects         []Project         `json:"projects"`
	Boards           []Board           `json:"boards"`
	Lists            []List            `json:"lists"`
	Cards            []Card            `json:"cards"`
	Tasks            []Task            `json:"tasks"`
	Labels           []Label           `json:"labels"`
	CardLabels       []CardLabel       `json:"cardLabels"`
	BoardMemberships []BoardMembership `json:"boardMemberships"`
	Users            []User            `json:"users"`
	Actions          []Action          `json:"actions"`
}

// itemEnvelope is the upstream single-item response wrapper.
type itemEnvelope[T any] struct {
	Item     T        `json:"item"`
	Included included `json:"included"`
}

// itemsEnvelope is the upstream collection response wrapper.
type itemsEnvelope[T any] struct {
	Items    []T      `json:"items"`
	Included included `json:"included"`
}
