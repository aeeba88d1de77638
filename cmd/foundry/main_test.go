package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestInteractive(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"no args", nil, true},
		{"empty slice", []string{}, true},
		{"help flag", []string{"--help"}, false},
		{"version flag", []string{"--version"}, false},
		{"positional", []string{"chat"}, false},
		{"empty string arg", []string{""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interactive(tt.args); got != tt.want {
				t.Errorf("interactive(%q) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestRunWithArgsExitStatus(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"version", []string{"--version"}, 0},
		{"help", []string{"-h"}, 0},
		{"positional", []string{"chat"}, 1},
		{"unknown flag", []string{"--bogus"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(tt.args); got != tt.want {
				t.Errorf("run(%q) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}

func TestFailReportsError(t *testing.T) {
	var buf bytes.Buffer
	if got := fail(&buf, errors.New("load config: boom")); got != 1 {
		t.Errorf("fail() = %d, want 1", got)
	}
	if got, want := ansi.Strip(buf.String()), "Error: load config: boom\n"; got != want {
		t.Errorf("fail() wrote %q, want %q", got, want)
	}
}
