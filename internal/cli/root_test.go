package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/hexcomb/hexcomb/pkg/errors"
)

func TestRootCommandStructure(t *testing.T) {
	root := newRootCmd()

	if root.Use != "hexcomb" {
		t.Errorf("root.Use = %q, want %q", root.Use, "hexcomb")
	}

	want := map[string]bool{
		"generate":   false,
		"inspect":    false,
		"variants":   false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestRootCommandHelp(t *testing.T) {
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"--help"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("help: %v", err)
	}
	if !strings.Contains(buf.String(), "honeycomb") {
		t.Errorf("help output should mention honeycomb patterns:\n%s", buf.String())
	}
}

func TestInspectCommand(t *testing.T) {
	err := execCommand(t, newInspectCmd(), "-c", "2", "-r", "2", "-s", "10")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
}

func TestInspectCommandInvalidVariant(t *testing.T) {
	err := execCommand(t, newInspectCmd(), "--variant", "diagonal")
	if !errors.Is(err, errors.ErrCodeInvalidVariant) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidVariant)
	}
}

func TestVariantsCommand(t *testing.T) {
	cmd := newVariantsCmd()
	cmd.SetContext(withLogger(context.Background(), newLogger(io.Discard, log.FatalLevel)))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(nil)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("variants: %v", err)
	}
}
