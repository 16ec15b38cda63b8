// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// tasks.go - One-shot task commands: list, add, done, rm.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jeranaias/taskdeck/internal/api"
	"github.com/jeranaias/taskdeck/internal/config"
	"github.com/jeranaias/taskdeck/internal/model"
	"github.com/jeranaias/taskdeck/internal/util"
)

// newClient builds the API client from config, with the --api flag
// taking precedence.
func newClient(args Args) *api.Client {
	baseURL := config.Global().API.BaseURL
	if args.BaseURL != "" {
		baseURL = args.BaseURL
	}
	return api.NewClient(baseURL)
}

// =============================================================================
// LIST
// =============================================================================

// HandleList handles the "list" command.
func HandleList(args Args) error {
	filters := api.TaskFilters{
		Priority: args.Parser.Flag("priority"),
		Search:   args.Parser.Flag("search"),
		Sort:     args.Parser.Flag("sort"),
	}
	switch args.Parser.Flag("completed") {
	case "true":
		v := true
		filters.Completed = &v
	case "false":
		v := false
		filters.Completed = &v
	case "":
	default:
		return NewUsageError("list", "--completed must be true or false")
	}

	tasks, err := newClient(args).GetTasks(context.Background(), filters)
	if err != nil {
		return err
	}

	if args.JSON {
		return json.NewEncoder(os.Stdout).Encode(tasks)
	}

	if len(tasks) == 0 {
		fmt.Println(MutedStyle.Render("No tasks found."))
		return nil
	}

	width := GetTerminalWidth()
	for _, t := range tasks {
		printTask(t, width)
	}
	if !args.Quiet {
		fmt.Println(MutedStyle.Render(fmt.Sprintf("%d task(s)", len(tasks))))
	}
	return nil
}

func printTask(t model.Task, width int) {
	marker := OpenStyle.Render("[ ]")
	if t.Completed {
		marker = DoneStyle.Render("[x]")
	}

	line := fmt.Sprintf("%s %s %s",
		MutedStyle.Render(fmt.Sprintf("#%-4d", t.ID)),
		marker,
		util.TruncateWidth(t.Title, max(20, width-30)))
	if t.Priority != model.PriorityNone {
		line += " " + priorityStyle(string(t.Priority)).Render(string(t.Priority))
	}
	fmt.Println(line)

	if t.Description != "" {
		fmt.Println("       " + MutedStyle.Render(util.TruncateWidth(t.Description, max(20, width-10))))
	}
	if tags := t.TagList(); len(tags) > 0 {
		fmt.Println("       " + MutedStyle.Render("tags: "+strings.Join(tags, ", ")))
	}
}

// =============================================================================
// ADD
// =============================================================================

// HandleAdd handles the "add" command.
func HandleAdd(args Args) error {
	title := strings.TrimSpace(args.Query)
	if title == "" {
		return NewUsageError("add", "a title is required")
	}

	priority := model.Priority(args.Parser.Flag("priority"))
	if !priority.IsValid() {
		return NewUsageError("add", "priority must be high, medium or low")
	}

	draft := model.TaskDraft{
		Title:       title,
		Description: args.Parser.Flag("desc"),
		Completed:   false,
		Priority:    priority,
		Tags:        args.Parser.Flag("tags"),
	}

	task, err := newClient(args).CreateTask(context.Background(), draft)
	if err != nil {
		return err
	}

	if args.JSON {
		return json.NewEncoder(os.Stdout).Encode(task)
	}
	fmt.Println(SuccessStyle.Render(fmt.Sprintf("Created task #%d: %s", task.ID, task.Title)))
	return nil
}

// =============================================================================
// DONE
// =============================================================================

// HandleDone handles the "done" command: the server flips the task's
// completion state and returns the updated record.
func HandleDone(args Args) error {
	id, err := taskIDArg(args, "done")
	if err != nil {
		return err
	}

	client := newClient(args)
	updated, err := client.ToggleTaskCompletion(context.Background(), id)
	if err != nil {
		return err
	}

	if args.JSON {
		return json.NewEncoder(os.Stdout).Encode(updated)
	}
	state := "open"
	if updated.Completed {
		state = "done"
	}
	fmt.Println(SuccessStyle.Render(fmt.Sprintf("Task #%d is now %s", updated.ID, state)))
	return nil
}

// =============================================================================
// RM
// =============================================================================

// HandleRm handles the "rm" command. Deletion prompts for confirmation
// on a TTY unless --yes is given.
func HandleRm(args Args) error {
	id, err := taskIDArg(args, "rm")
	if err != nil {
		return err
	}

	if !args.Parser.BoolFlag("yes") {
		if !IsTTY() {
			return NewUsageError("rm", "refusing to delete without --yes on non-interactive input")
		}
		fmt.Printf("Are you sure you want to delete this task? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println(MutedStyle.Render("Aborted."))
			return nil
		}
	}

	if err := newClient(args).DeleteTask(context.Background(), id); err != nil {
		return err
	}
	fmt.Println(SuccessStyle.Render(fmt.Sprintf("Deleted task #%d", id)))
	return nil
}

// taskIDArg reads the numeric task id positional argument.
func taskIDArg(args Args, command string) (int, error) {
	raw := args.Parser.Positional(0)
	if raw == "" {
		return 0, NewUsageError(command, "a task id is required")
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewUsageError(command, fmt.Sprintf("invalid task id %q", raw))
	}
	return id, nil
}
