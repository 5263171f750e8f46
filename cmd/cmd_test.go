package cmd

import (
	"testing"
)

func TestNew(t *testing.T) {
	cmd := New()
	if cmd == nil {
		t.Fatal("New() returned nil")
	}
	if cmd.Use != "repofolio <username>" {
		t.Errorf("expected Use to be 'repofolio <username>', got %q", cmd.Use)
	}
}

func TestNewCmdConfig(t *testing.T) {
	cmd := NewCmdConfig()
	if cmd == nil {
		t.Fatal("NewCmdConfig() returned nil")
	}
	if cmd.Use != "config" {
		t.Errorf("expected Use to be 'config', got %q", cmd.Use)
	}
}

func TestNewCmdVersion(t *testing.T) {
	cmd := NewCmdVersion()
	if cmd == nil {
		t.Fatal("NewCmdVersion() returned nil")
	}
	if cmd.Use != "version" {
		t.Errorf("expected Use to be 'version', got %q", cmd.Use)
	}
}

func TestNewCmdRateLimit(t *testing.T) {
	cmd := NewCmdRateLimit()
	if cmd == nil {
		t.Fatal("NewCmdRateLimit() returned nil")
	}
	if cmd.Use != "ratelimit" {
		t.Errorf("expected Use to be 'ratelimit', got %q", cmd.Use)
	}
}

func TestNewOptions(t *testing.T) {
	opts := NewOptions(
		WithFormat("json"),
		WithMaxProjects(5),
		WithMinScore(40),
		WithSummary(true),
		WithModel("gpt-4o"),
	)

	if opts.Format != "json" {
		t.Errorf("expected format json, got %q", opts.Format)
	}
	if opts.MaxProjects != 5 {
		t.Errorf("expected max projects 5, got %d", opts.MaxProjects)
	}
	if opts.MinScore != 40 {
		t.Errorf("expected min score 40, got %d", opts.MinScore)
	}
	if !opts.Summary {
		t.Error("expected summary enabled")
	}
	if opts.Model != "gpt-4o" {
		t.Errorf("expected model gpt-4o, got %q", opts.Model)
	}
}

func TestRootCommandRequiresUsername(t *testing.T) {
	cmd := New()
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error when no username given")
	}
}
