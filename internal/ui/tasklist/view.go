// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tasklist

import (
	"fmt"
	"strings"

	"github.com/jeranaias/taskdeck/internal/model"
	"github.com/jeranaias/taskdeck/internal/util"
)

// ============================================================================
// Rendering
// ============================================================================

// View renders the task pane for the current state.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderFilterBar())
	b.WriteByte('\n')

	if m.showForm {
		b.WriteString(m.renderForm())
		return b.String()
	}

	switch m.State() {
	case StateLoading:
		b.WriteString(m.theme.Loading.Render(m.spinner.View() + " Loading tasks..."))
	case StateError:
		b.WriteString(m.theme.ErrorBox.Render(
			m.theme.ErrorTitle.Render("Error") + "\n" +
				m.theme.ErrorText.Render(m.fetchErr) + "\n" +
				m.theme.ShortcutDesc.Render("press r to retry")))
	case StateEmpty:
		b.WriteString(m.theme.EmptyBox.Render(
			m.theme.EmptyTitle.Render("No tasks found") + "\n" +
				m.theme.EmptyText.Render("press n to add one")))
	default:
		b.WriteString(m.renderList())
	}
	return b.String()
}

func (m Model) renderFilterBar() string {
	var parts []string
	if m.searching || m.filters.Search != "" {
		parts = append(parts, m.theme.InputPrompt.Render("/")+m.searchInput.View())
	}
	parts = append(parts,
		m.theme.ShortcutKey.Render("c")+m.theme.ShortcutDesc.Render(" "+m.filters.CompletedLabel()),
		m.theme.ShortcutKey.Render("p")+m.theme.ShortcutDesc.Render(" "+m.filters.PriorityLabel()),
		m.theme.ShortcutKey.Render("s")+m.theme.ShortcutDesc.Render(" "+m.filters.SortLabel()),
	)
	return m.theme.StatusBar.Render(strings.Join(parts, "  "))
}

func (m Model) renderList() string {
	var b strings.Builder
	for i := range m.items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.renderItem(i))
	}
	return b.String()
}

func (m Model) renderItem(i int) string {
	it := &m.items[i]
	if it.Editing() {
		return m.renderItemEdit(it)
	}

	checkbox := "[ ]"
	if it.Task.Completed {
		checkbox = "[x]"
	}

	title := it.Task.Title
	titleStyle := m.theme.TaskTitle
	if it.Task.Completed {
		titleStyle = m.theme.TaskTitleDone
	}
	width := max(20, m.width-10)

	line := m.theme.TaskCheckbox.Render(checkbox) + " " +
		m.priorityBadge(it.Task.Priority) + " " +
		titleStyle.Render(util.TruncateWidth(title, width))
	if it.Pending() {
		line += " " + m.spinner.View()
	}

	var extra []string
	if it.Task.Description != "" {
		extra = append(extra, m.theme.TaskDescription.Render(util.TruncateWidth(it.Task.Description, width)))
	}
	if tags := it.Task.TagList(); len(tags) > 0 {
		chips := make([]string, len(tags))
		for j, tag := range tags {
			chips[j] = m.theme.TagChip.Render(tag)
		}
		extra = append(extra, strings.Join(chips, " "))
	}
	extra = append(extra, m.renderTimestamps(it.Task))
	if it.ConfirmingDelete() {
		extra = append(extra, m.theme.ConfirmBox.Render("Are you sure you want to delete this task? (y/n)"))
	}
	if it.ErrText() != "" {
		extra = append(extra, m.theme.ErrorText.Render(it.ErrText()))
	}

	body := line
	if len(extra) > 0 {
		body += "\n" + strings.Join(extra, "\n")
	}
	if i == m.cursor {
		return m.theme.TaskRowSelected.Render(body)
	}
	return m.theme.TaskRow.Render(body)
}

func (m Model) renderItemEdit(it *Item) string {
	var b strings.Builder
	labels := [editFieldCount]string{"Title", "Description", "Tags"}
	for f := 0; f < editFieldCount; f++ {
		style := m.theme.FormLabel
		if f == it.focus {
			style = m.theme.FormLabelFocus
		}
		b.WriteString(style.Render(labels[f]) + " " + it.inputs[f].View() + "\n")
	}
	b.WriteString(m.theme.FormLabel.Render("Priority") + " " +
		m.priorityBadge(it.editPriority) + " " +
		m.theme.FormHint.Render("(ctrl+p to change)") + "\n")
	if it.ErrText() != "" {
		b.WriteString(m.theme.FormError.Render(it.ErrText()) + "\n")
	}
	hint := "enter save · esc cancel"
	if it.Pending() {
		hint = m.spinner.View() + " saving..."
	}
	b.WriteString(m.theme.FormHint.Render(hint))
	return m.theme.TaskRowSelected.Render(b.String())
}

func (m Model) renderForm() string {
	var b strings.Builder
	b.WriteString(m.theme.HeaderTitle.Render("New task") + "\n\n")
	labels := [editFieldCount]string{"Title", "Description", "Tags"}
	for f := 0; f < editFieldCount; f++ {
		style := m.theme.FormLabel
		if f == m.form.focus {
			style = m.theme.FormLabelFocus
		}
		b.WriteString(style.Render(labels[f]) + " " + m.form.inputs[f].View() + "\n")
	}
	b.WriteString(m.theme.FormLabel.Render("Priority") + " " +
		m.priorityBadge(m.form.priority) + " " +
		m.theme.FormHint.Render("(ctrl+p to change)") + "\n")
	if m.form.ErrText() != "" {
		b.WriteString(m.theme.FormError.Render(m.form.ErrText()) + "\n")
	}
	hint := "enter add · esc close"
	if m.form.Pending() {
		hint = m.spinner.View() + " adding..."
	}
	b.WriteString(m.theme.FormHint.Render(hint))
	return m.theme.FormBox.Render(b.String())
}

func (m Model) renderTimestamps(t model.Task) string {
	ts := fmt.Sprintf("created %s", t.CreatedAt)
	if t.WasUpdated() {
		ts += fmt.Sprintf(" · updated %s", t.UpdatedAt)
	}
	return m.theme.TaskTimestamp.Render(ts)
}

func (m Model) priorityBadge(p model.Priority) string {
	label := "·"
	if p != model.PriorityNone {
		label = strings.ToUpper(string(p[0]))
	}
	return m.theme.PriorityStyle(p).Render(label)
}
