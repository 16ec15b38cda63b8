// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tasklist

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/taskdeck/internal/api"
	"github.com/jeranaias/taskdeck/internal/model"
	"github.com/jeranaias/taskdeck/internal/ui/styles"
)

func newTestModel() Model {
	return New(api.NewClient(""), styles.NewTheme())
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(m Model, tasks ...model.Task) Model {
	m, _ = m.Update(TasksLoadedMsg{Tasks: tasks})
	return m
}

func task(id int, title string) model.Task {
	return model.Task{
		ID:        id,
		Title:     title,
		CreatedAt: "2025-06-01T10:00:00",
		UpdatedAt: "2025-06-01T10:00:00",
	}
}

func TestStatePrecedence(t *testing.T) {
	m := newTestModel()

	m.fetching = true
	if m.State() != StateLoading {
		t.Fatal("fetching should render loading")
	}

	// A failure while a refetch is in flight still shows the loader.
	m.fetchErr = errFetch
	if m.State() != StateLoading {
		t.Fatal("loading outranks error")
	}

	m.fetching = false
	if m.State() != StateError {
		t.Fatal("error outranks empty")
	}

	m.fetchErr = ""
	if m.State() != StateEmpty {
		t.Fatal("no items should render empty")
	}

	m = loaded(m, task(1, "a"))
	if m.State() != StatePopulated {
		t.Fatal("items should render the list")
	}
}

func TestInitIssuesFetch(t *testing.T) {
	m := newTestModel()
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should issue the first fetch")
	}
}

func TestFilterCycleIssuesOneFetch(t *testing.T) {
	m := loaded(newTestModel(), task(1, "a"))

	for _, k := range []string{"c", "p", "s"} {
		before := m.filters
		var cmd tea.Cmd
		m, cmd = m.Update(key(k))
		if cmd == nil {
			t.Errorf("key %q should issue a fetch", k)
		}
		if !m.fetching {
			t.Errorf("key %q should mark a fetch in flight", k)
		}
		if m.filters == before {
			t.Errorf("key %q should change the criteria", k)
		}
		m = loaded(m, task(1, "a"))
	}
}

func TestSearchKeystrokeIssuesFetch(t *testing.T) {
	m := loaded(newTestModel(), task(1, "a"))
	m, _ = m.Update(key("/"))
	if !m.searching {
		t.Fatal("slash should enter search mode")
	}

	m, cmd := m.Update(key("g"))
	if cmd == nil {
		t.Fatal("a search keystroke should issue a fetch")
	}
	if m.filters.Search != "g" {
		t.Fatalf("Search = %q, want %q", m.filters.Search, "g")
	}

	// Keys that do not change the text do not refetch.
	m.fetching = false
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.fetching {
		t.Fatal("cursor movement should not refetch")
	}
	_ = cmd
}

func TestLastResponseWins(t *testing.T) {
	m := newTestModel()

	// Two overlapping fetches: the stale response lands after the
	// fresh one and still replaces it.
	m, _ = m.Update(key("c"))
	m, _ = m.Update(key("c"))

	m, _ = m.Update(TasksLoadedMsg{Tasks: []model.Task{task(2, "fresh")}})
	m, _ = m.Update(TasksLoadedMsg{Tasks: []model.Task{task(1, "stale")}})

	if len(m.items) != 1 || m.items[0].Task.Title != "stale" {
		t.Fatalf("last response should win, got %+v", m.items)
	}
	if m.State() != StatePopulated {
		t.Fatalf("State = %v", m.State())
	}
}

func TestToggleReplacesRecordInPlace(t *testing.T) {
	m := loaded(newTestModel(), task(1, "a"), task(2, "b"), task(3, "c"))

	updated := task(2, "b")
	updated.Completed = true
	updated.UpdatedAt = "2025-06-02T09:00:00"
	m, _ = m.Update(ToggleResultMsg{ID: 2, Task: updated})

	if !m.items[1].Task.Completed {
		t.Fatal("record should be replaced with the response")
	}
	// Position is preserved; no re-sort happens on mutation.
	ids := []int{m.items[0].Task.ID, m.items[1].Task.ID, m.items[2].Task.ID}
	if ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Fatalf("order changed: %v", ids)
	}
}

func TestToggleIssuesSingleBarePatch(t *testing.T) {
	var requests []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if len(body) != 0 {
			t.Errorf("toggle request carried a body: %q", body)
		}
		requests = append(requests, r.Method+" "+r.URL.Path)
		done := task(1, "a")
		done.Completed = true
		json.NewEncoder(w).Encode(done)
	}))
	defer server.Close()

	m := loaded(New(api.NewClient(server.URL), styles.NewTheme()), task(1, "a"))
	m, cmd := m.Update(key(" "))
	if cmd == nil {
		t.Fatal("space should issue the toggle")
	}

	// The server owns the flip; the client sends one request and applies
	// whatever comes back.
	m, _ = m.Update(cmd())
	if len(requests) != 1 || requests[0] != "PATCH /tasks/1/complete" {
		t.Fatalf("requests = %v", requests)
	}
	if !m.items[0].Task.Completed {
		t.Fatal("record should be replaced with the response")
	}
}

func TestToggleFailureSetsRowError(t *testing.T) {
	m := loaded(newTestModel(), task(1, "a"))
	m, _ = m.Update(ToggleResultMsg{ID: 1, Err: errors.New("boom")})

	if got := m.items[0].ErrText(); got != "Failed to update task completion status. Please try again." {
		t.Fatalf("ErrText = %q", got)
	}
	if m.items[0].Task.Completed {
		t.Fatal("record must not change on failure")
	}
}

func TestDeleteRemovesRow(t *testing.T) {
	m := loaded(newTestModel(), task(1, "a"), task(2, "b"))
	m.cursor = 1

	m, _ = m.Update(key("d"))
	if !m.items[1].ConfirmingDelete() {
		t.Fatal("d should arm the confirmation")
	}

	m, cmd := m.Update(key("y"))
	if cmd == nil {
		t.Fatal("y should issue the delete")
	}
	m, _ = m.Update(DeleteResultMsg{ID: 2})

	if len(m.items) != 1 || m.items[0].Task.ID != 1 {
		t.Fatalf("row not removed: %+v", m.items)
	}
	if m.cursor != 0 {
		t.Fatalf("cursor = %d", m.cursor)
	}
}

func TestDeleteDeclined(t *testing.T) {
	m := loaded(newTestModel(), task(1, "a"))
	m, _ = m.Update(key("d"))
	m, cmd := m.Update(key("n"))

	if cmd != nil {
		t.Fatal("n must not issue a delete")
	}
	if m.items[0].ConfirmingDelete() {
		t.Fatal("confirmation should disarm")
	}
	if len(m.items) != 1 {
		t.Fatal("row must survive a declined delete")
	}
}

func TestDeleteFailureKeepsRow(t *testing.T) {
	m := loaded(newTestModel(), task(1, "a"))
	m, _ = m.Update(DeleteResultMsg{ID: 1, Err: errors.New("boom")})

	if len(m.items) != 1 {
		t.Fatal("row must survive a failed delete")
	}
	if got := m.items[0].ErrText(); got != "Failed to delete task. Please try again." {
		t.Fatalf("ErrText = %q", got)
	}
}

func TestEditCancelIsLocal(t *testing.T) {
	m := loaded(newTestModel(), task(1, "original"))

	m, _ = m.Update(key("e"))
	if !m.items[0].Editing() {
		t.Fatal("e should enter edit mode")
	}

	m, _ = m.Update(key("x"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if cmd != nil {
		t.Fatal("cancel must not issue a request")
	}
	if m.items[0].Editing() {
		t.Fatal("esc should leave edit mode")
	}
	if m.items[0].Task.Title != "original" {
		t.Fatalf("record changed on cancel: %q", m.items[0].Task.Title)
	}

	// Re-entering seeds from the untouched record.
	m, _ = m.Update(key("e"))
	if got := m.items[0].inputs[editFieldTitle].Value(); got != "original" {
		t.Fatalf("re-edit seeded %q", got)
	}
}

func TestEditSaveValidation(t *testing.T) {
	m := loaded(newTestModel(), task(1, "a"))
	m, _ = m.Update(key("e"))
	m.items[0].inputs[editFieldTitle].SetValue("   ")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("blank title must not save")
	}
	if got := m.items[0].ErrText(); got != "Title is required" {
		t.Fatalf("ErrText = %q", got)
	}
}

func TestSaveFailureStaysInEditMode(t *testing.T) {
	m := loaded(newTestModel(), task(1, "a"))
	m, _ = m.Update(key("e"))
	m, _ = m.Update(SaveResultMsg{ID: 1, Err: errors.New("boom")})

	if !m.items[0].Editing() {
		t.Fatal("failure should keep edit mode open")
	}
	if got := m.items[0].ErrText(); got != "Failed to update task. Please try again." {
		t.Fatalf("ErrText = %q", got)
	}
}

func TestCreateAppendsWithoutResort(t *testing.T) {
	m := loaded(newTestModel(), task(5, "z"), task(3, "a"))
	m.showForm = true
	m.form = NewForm()
	m.form.pending = true

	m, _ = m.Update(CreateResultMsg{Task: task(9, "new")})

	if m.showForm {
		t.Fatal("form should close on success")
	}
	if len(m.items) != 3 || m.items[2].Task.ID != 9 {
		t.Fatalf("new task should append last: %+v", m.items)
	}
}

func TestCreateValidation(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(TasksLoadedMsg{})
	m, _ = m.Update(key("n"))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("empty form must not submit")
	}
	if got := m.form.ErrText(); got != "Title is required" {
		t.Fatalf("ErrText = %q", got)
	}
}

func TestCreateFailureKeepsForm(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(TasksLoadedMsg{})
	m, _ = m.Update(key("n"))
	m.form.pending = true

	m, _ = m.Update(CreateResultMsg{Err: errors.New("boom")})
	if !m.showForm {
		t.Fatal("form should stay open on failure")
	}
	if got := m.form.ErrText(); got != "Failed to create task. Please try again." {
		t.Fatalf("ErrText = %q", got)
	}
}

func TestFilterCycles(t *testing.T) {
	f := DefaultFilters()

	f.CycleCompleted()
	if f.Completed != CompletedOpen {
		t.Fatalf("Completed = %q", f.Completed)
	}
	f.CycleCompleted()
	if f.Completed != CompletedDone {
		t.Fatalf("Completed = %q", f.Completed)
	}
	f.CycleCompleted()
	if f.Completed != CompletedAll {
		t.Fatalf("Completed = %q", f.Completed)
	}

	if f.CompletedBool() != nil {
		t.Fatal("all should map to nil")
	}
	f.Completed = CompletedDone
	if v := f.CompletedBool(); v == nil || !*v {
		t.Fatal("done should map to true")
	}
}

func TestSortStartsUnsetAndCycles(t *testing.T) {
	f := DefaultFilters()

	// Unset leaves ordering to the server (newest first) and keeps the
	// sort parameter out of the query string.
	if f.Sort != "" {
		t.Fatalf("Sort = %q, want unset", f.Sort)
	}

	for _, want := range []string{SortCreated, SortPriority, SortTitle, ""} {
		f.CycleSort()
		if f.Sort != want {
			t.Fatalf("Sort = %q, want %q", f.Sort, want)
		}
	}
}
