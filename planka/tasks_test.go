package planka

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTasksBatchIsolatesFailures(t *testing.T) {
	created := 0
	mux, client := newTestMux(t)
	mux.HandleFunc("POST /api/cards/c1/tasks", func(w http.ResponseWriter, r *http.Request) {
		created++
		writeItem(w, Task{ID: fmt.Sprintf("t%d", created), CardID: "c1"})
	})

	inputs := []TaskInput{
		{CardID: "c1", Name: "first"},
		{CardID: "c1", Name: ""}, // invalid: rejected before any network call
		{CardID: "c1", Name: "third"},
	}

	result := client.CreateTasks(context.Background(), inputs)

	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Results, 3)

	assert.NotNil(t, result.Results[0].Task)
	assert.Equal(t, 1, result.Results[1].Index)
	assert.NotEmpty(t, result.Results[1].Error)
	assert.Nil(t, result.Results[1].Task)
	assert.NotNil(t, result.Results[2].Task, "a failing item must not abort the rest")

	assert.Equal(t, 2, created, "the invalid item must never reach the upstream")
}

func TestCreateTasksSpacesPositions(t *testing.T) {
	var positions []float64
	mux, client := newTestMux(t)
	mux.HandleFunc("POST /api/cards/c1/tasks", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(r)
		positions = append(positions, body["position"].(float64))
		writeItem(w, Task{ID: "t", CardID: "c1"})
	})

	client.CreateTasks(context.Background(), []TaskInput{
		{CardID: "c1", Name: "a"},
		{CardID: "c1", Name: "b"},
		{CardID: "c1", Name: "c"},
	})

	require.Len(t, positions, 3)
	for i := 1; i < len(positions); i++ {
		assert.Greater(t, positions[i], positions[i-1])
	}
}

func TestTasksByCardReadsEmbedded(t *testing.T) {
	mux, client := newTestMux(t)
	mux.HandleFunc("GET /api/cards/c1", func(w http.ResponseWriter, r *http.Request) {
		writeItemIncluded(w, Card{ID: "c1"}, map[string]any{
			"tasks": []Task{
				{ID: "t1", Name: "a", CardID: "c1"},
				{ID: "t2", Name: "b", CardID: "c1", IsCompleted: true},
			},
		})
	})

	tasks, err := client.TasksByCard(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.True(t, tasks[1].IsCompleted)
}

func TestGetTaskScansHierarchy(t *testing.T) {
	mux, client := newTestMux(t)
	mux.HandleFunc("GET /api/projects", func(w http.ResponseWriter, r *http.Request) {
		writeItems(w, []Project{{ID: "p1"}})
	})
	mux.HandleFunc("GET /api/projects/p1", func(w http.ResponseWriter, r *http.Request) {
		writeItemIncluded(w, Project{ID: "p1"}, map[string]any{
			"boards": []Board{{ID: "b1", ProjectID: "p1"}},
		})
	})
	mux.HandleFunc("GET /api/boards/b1", func(w http.ResponseWriter, r *http.Request) {
		writeItemIncluded(w, Board{ID: "b1"}, map[string]any{
			"tasks": []Task{{ID: "t9", Name: "found me", CardID: "c1"}},
		})
	})

	task, err := client.GetTask(context.Background(), "t9")
	require.NoError(t, err)
	assert.Equal(t, "found me", task.Name)

	_, err = client.GetTask(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestUpdateTaskComplete(t *testing.T) {
	mux, client := newTestMux(t)
	mux.HandleFunc("PATCH /api/tasks/t1", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(r)
		assert.Equal(t, map[string]any{"isCompleted": true}, body)
		writeItem(w, Task{ID: "t1", IsCompleted: true})
	})

	done := true
	task, err := client.UpdateTask(context.Background(), "t1", TaskPatch{IsCompleted: &done})
	require.NoError(t, err)
	assert.True(t, task.IsCompleted)
}
