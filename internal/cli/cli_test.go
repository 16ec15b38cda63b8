// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/jeranaias/taskdeck/internal/api"
)

func parseWith(t *testing.T, argv ...string) (Command, Args) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"taskdeck"}, argv...)
	t.Cleanup(func() { os.Args = old })
	return Parse()
}

func TestParseDefaultsToTUI(t *testing.T) {
	cmd, _ := parseWith(t)
	if cmd != CmdTUI {
		t.Fatalf("cmd = %v", cmd)
	}
}

func TestParseList(t *testing.T) {
	cmd, args := parseWith(t, "list", "--completed", "false", "--sort", "priority")
	if cmd != CmdList {
		t.Fatalf("cmd = %v", cmd)
	}
	if args.Parser.Flag("completed") != "false" {
		t.Errorf("completed = %q", args.Parser.Flag("completed"))
	}
	if args.Parser.Flag("sort") != "priority" {
		t.Errorf("sort = %q", args.Parser.Flag("sort"))
	}
}

func TestParseAddJoinsTitle(t *testing.T) {
	cmd, args := parseWith(t, "add", "buy", "milk", "--priority", "high")
	if cmd != CmdAdd {
		t.Fatalf("cmd = %v", cmd)
	}
	if args.Query != "buy milk" {
		t.Errorf("Query = %q", args.Query)
	}
	if args.Parser.Flag("priority") != "high" {
		t.Errorf("priority = %q", args.Parser.Flag("priority"))
	}
}

func TestParseGlobalFlags(t *testing.T) {
	cmd, args := parseWith(t, "--api", "http://example.test/api", "list", "--json")
	if cmd != CmdList {
		t.Fatalf("cmd = %v", cmd)
	}
	if args.BaseURL != "http://example.test/api" {
		t.Errorf("BaseURL = %q", args.BaseURL)
	}
	if !args.JSON {
		t.Error("JSON flag not set")
	}
}

func TestParseUnknownCommandFallsBackToHelp(t *testing.T) {
	cmd, _ := parseWith(t, "frobnicate")
	if cmd != CmdHelp {
		t.Fatalf("cmd = %v", cmd)
	}
}

func TestArgParserFormats(t *testing.T) {
	p := NewArgParser([]string{"show", "--lines", "50", "--since=2024-01-01", "--json", "-v"})

	if p.Subcommand() != "show" {
		t.Errorf("Subcommand = %q", p.Subcommand())
	}
	if p.Flag("lines") != "50" {
		t.Errorf("lines = %q", p.Flag("lines"))
	}
	if p.Flag("since") != "2024-01-01" {
		t.Errorf("since = %q", p.Flag("since"))
	}
	if !p.BoolFlag("json") || !p.BoolFlag("v") {
		t.Error("boolean flags not parsed")
	}
	if n, err := p.FlagInt("lines"); err != nil || n != 50 {
		t.Errorf("FlagInt = %d, %v", n, err)
	}
	if p.FlagOrDefault("lines", "10") != "50" {
		t.Errorf("FlagOrDefault present = %q", p.FlagOrDefault("lines", "10"))
	}
	if p.FlagOrDefault("missing", "10") != "10" {
		t.Errorf("FlagOrDefault absent = %q", p.FlagOrDefault("missing", "10"))
	}
}

func TestArgParserExplicitBool(t *testing.T) {
	p := NewArgParser([]string{"--json=false"})
	if p.BoolFlag("json") {
		t.Error("explicit false not honored")
	}
}

func TestGetExitCode(t *testing.T) {
	if got := GetExitCode(nil); got != ExitSuccess {
		t.Errorf("nil = %d", got)
	}
	if got := GetExitCode(NewUsageError("list", "bad flag")); got != ExitUsageError {
		t.Errorf("usage = %d", got)
	}
	if got := GetExitCode(&api.NotFoundError{Status: 404}); got != ExitNotFoundError {
		t.Errorf("not found = %d", got)
	}
	if got := GetExitCode(&api.FetchError{Err: errors.New("dial refused")}); got != ExitNetworkError {
		t.Errorf("network = %d", got)
	}
	if got := GetExitCode(&api.FetchError{Status: 500}); got != ExitGeneralError {
		t.Errorf("server = %d", got)
	}
	if got := GetExitCode(errors.New("other")); got != ExitGeneralError {
		t.Errorf("other = %d", got)
	}
}
