// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tasklist implements the task pane: a filtered, sorted list
// of todos with inline editing, completion toggles, delete
// confirmation and a create form, all backed by the task service.
package tasklist

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/taskdeck/internal/api"
	"github.com/jeranaias/taskdeck/internal/ui/styles"
)

// ============================================================================
// List state
// ============================================================================

// State is the list's render mode. The checks run in declared order:
// a fetch in flight always shows the loader, a fetch failure always
// shows the error view, and only a successful empty result shows the
// empty view.
type State int

const (
	StateLoading State = iota
	StateError
	StateEmpty
	StatePopulated
)

// User-facing failure banners. These match the task service client's
// conventions so the same wording appears regardless of entry point.
const (
	errFetch  = "Failed to fetch tasks. Please try again."
	errUpdate = "Failed to update task. Please try again."
	errToggle = "Failed to update task completion status. Please try again."
	errDelete = "Failed to delete task. Please try again."
	errCreate = "Failed to create task. Please try again."
)

// Model is the task pane controller.
type Model struct {
	client *api.Client
	theme  *styles.Theme

	filters Filters
	items   []Item
	cursor  int

	// fetching is true from the moment a list request is issued until
	// any list response lands. Responses are applied unconditionally,
	// so overlapping fetches resolve last-response-wins.
	fetching bool

	// fetchErr holds the list-level failure banner, cleared by the
	// next successful fetch.
	fetchErr string

	// searching routes keystrokes into the search input. Every edit
	// to the search text issues a fresh fetch.
	searching   bool
	searchInput textinput.Model

	// showForm overlays the create form on the list.
	showForm bool
	form     Form

	spinner spinner.Model

	width  int
	height int
}

// New builds the task pane against the given client.
func New(client *api.Client, theme *styles.Theme) Model {
	search := textinput.New()
	search.Placeholder = "Search tasks..."
	search.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return Model{
		client:      client,
		theme:       theme,
		filters:     DefaultFilters(),
		searchInput: search,
		spinner:     sp,
	}
}

// Init issues the initial fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(), m.spinner.Tick)
}

// State returns the current render mode.
func (m Model) State() State {
	switch {
	case m.fetching:
		return StateLoading
	case m.fetchErr != "":
		return StateError
	case len(m.items) == 0:
		return StateEmpty
	default:
		return StatePopulated
	}
}

// Filters returns the active query criteria.
func (m Model) Filters() Filters { return m.filters }

// Tasks returns the current records in display order.
func (m Model) Tasks() []Item { return m.items }

// Cursor returns the selected row index.
func (m Model) Cursor() int { return m.cursor }

// InputActive reports whether keystrokes are being captured by a text
// input or prompt, meaning global shortcuts must stay out of the way.
func (m Model) InputActive() bool {
	if m.showForm || m.searching {
		return true
	}
	if m.cursor >= 0 && m.cursor < len(m.items) {
		it := m.items[m.cursor]
		return it.Editing() || it.ConfirmingDelete()
	}
	return false
}

// SetSize propagates the terminal dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.searchInput.Width = max(10, width-8)
}

// fetch issues a list request for the current criteria. There is no
// cancellation of prior requests; each response applies as it lands.
func (m *Model) fetch() tea.Cmd {
	m.fetching = true
	return FetchTasksCmd(m.client, m.filters)
}

// ============================================================================
// Update
// ============================================================================

// Update handles one message and returns the follow-up command.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TasksLoadedMsg:
		return m.applyLoaded(msg)

	case ToggleResultMsg:
		if i := m.indexOf(msg.ID); i >= 0 {
			it := &m.items[i]
			it.pending = false
			if msg.Err != nil {
				it.errText = errToggle
			} else {
				it.Task = msg.Task
				it.errText = ""
			}
		}
		return m, nil

	case SaveResultMsg:
		if i := m.indexOf(msg.ID); i >= 0 {
			it := &m.items[i]
			if msg.Err != nil {
				it.pending = false
				it.errText = errUpdate
			} else {
				it.ApplySave(msg.Task)
			}
		}
		return m, nil

	case DeleteResultMsg:
		return m.applyDeleted(msg)

	case CreateResultMsg:
		m.form.pending = false
		if msg.Err != nil {
			m.form.errText = errCreate
			return m, nil
		}
		// New records append at the end; the list does not re-sort
		// until the next fetch.
		m.items = append(m.items, NewItem(msg.Task))
		m.showForm = false
		m.form = NewForm()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// applyLoaded installs a list response. Responses are never fenced
// against the criteria that produced them; whichever lands last wins.
func (m Model) applyLoaded(msg TasksLoadedMsg) (Model, tea.Cmd) {
	m.fetching = false
	if msg.Err != nil {
		m.fetchErr = errFetch
		return m, nil
	}
	m.fetchErr = ""
	items := make([]Item, len(msg.Tasks))
	for i, t := range msg.Tasks {
		items[i] = NewItem(t)
	}
	m.items = items
	m.clampCursor()
	return m, nil
}

func (m Model) applyDeleted(msg DeleteResultMsg) (Model, tea.Cmd) {
	i := m.indexOf(msg.ID)
	if i < 0 {
		return m, nil
	}
	if msg.Err != nil {
		m.items[i].pending = false
		m.items[i].confirmDelete = false
		m.items[i].errText = errDelete
		return m, nil
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	m.clampCursor()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showForm {
		return m.handleFormKey(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if it := m.current(); it != nil {
		if it.Editing() {
			return m.handleEditKey(msg)
		}
		if it.ConfirmingDelete() {
			return m.handleConfirmKey(msg)
		}
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = max(0, len(m.items)-1)

	case " ":
		if it := m.current(); it != nil && !it.Pending() {
			it.pending = true
			return m, ToggleTaskCmd(m.client, it.Task.ID)
		}

	case "e", "enter":
		if it := m.current(); it != nil {
			it.StartEdit()
			return m, textinput.Blink
		}

	case "d", "delete":
		if it := m.current(); it != nil && !it.Pending() {
			it.confirmDelete = true
		}

	case "n":
		m.showForm = true
		m.form = NewForm()
		return m, textinput.Blink

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "c":
		m.filters.CycleCompleted()
		return m, m.fetch()
	case "p":
		m.filters.CyclePriority()
		return m, m.fetch()
	case "s":
		m.filters.CycleSort()
		return m, m.fetch()

	case "r":
		if m.fetchErr != "" {
			return m, m.fetch()
		}
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}
	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if v := m.searchInput.Value(); v != before {
		// One fetch per keystroke that changes the text, with no
		// debounce and no cancellation of the previous request.
		m.filters.Search = v
		return m, tea.Batch(cmd, m.fetch())
	}
	return m, cmd
}

func (m Model) handleEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	it := m.current()
	switch msg.String() {
	case "esc":
		// Cancel is local only; buffered values are discarded and the
		// record is untouched.
		it.CancelEdit()
		return m, nil
	case "tab", "shift+tab":
		it.NextField()
		return m, nil
	case "ctrl+p":
		it.CyclePriority()
		return m, nil
	case "enter":
		if it.Pending() {
			return m, nil
		}
		if errText := it.Validate(); errText != "" {
			it.errText = errText
			return m, nil
		}
		it.pending = true
		return m, SaveTaskCmd(m.client, it.Task.ID, it.Patch())
	}
	return m, it.UpdateFocused(msg)
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	it := m.current()
	switch msg.String() {
	case "y", "Y":
		it.confirmDelete = false
		it.pending = true
		return m, DeleteTaskCmd(m.client, it.Task.ID)
	case "n", "N", "esc":
		it.confirmDelete = false
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if !m.form.Pending() {
			m.showForm = false
			m.form = NewForm()
		}
		return m, nil
	case "tab", "shift+tab":
		m.form.NextField()
		return m, nil
	case "ctrl+p":
		m.form.CyclePriority()
		return m, nil
	case "enter":
		if m.form.Pending() {
			return m, nil
		}
		if errText := m.form.Validate(); errText != "" {
			m.form.errText = errText
			return m, nil
		}
		m.form.pending = true
		m.form.errText = ""
		return m, CreateTaskCmd(m.client, m.form.Draft())
	}
	return m, m.form.UpdateFocused(msg)
}

// ============================================================================
// Helpers
// ============================================================================

// current returns the selected row, or nil when the list is empty.
func (m *Model) current() *Item {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return &m.items[m.cursor]
}

// indexOf locates a row by task id, or -1.
func (m *Model) indexOf(id int) int {
	for i := range m.items {
		if m.items[i].Task.ID == id {
			return i
		}
	}
	return -1
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
