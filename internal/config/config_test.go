package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gorcw.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmptyPath(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Input != "inputs.csv" || c.Output != "outputs.csv" {
		t.Errorf("unexpected paths: %q, %q", c.Input, c.Output)
	}
	if c.Workers != 1 || c.OnError != OnErrorAbort || c.DefaultLambda != 1.0 {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if c.Precision == nil || *c.Precision != -1 {
		t.Errorf("precision default = %v, want -1", c.Precision)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
input: walls.xlsx
output: capacities.xlsx
workers: 4
on_error: skip
default_lambda: 0.85
precision: 2
detail: true
log:
  debug: true
server:
  addr: "127.0.0.1:9000"
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Input != "walls.xlsx" || c.Output != "capacities.xlsx" {
		t.Errorf("paths = %q, %q", c.Input, c.Output)
	}
	if c.Workers != 4 || c.OnError != OnErrorSkip {
		t.Errorf("workers=%d on_error=%q", c.Workers, c.OnError)
	}
	if c.DefaultLambda != 0.85 {
		t.Errorf("default_lambda = %v", c.DefaultLambda)
	}
	if *c.Precision != 2 || !c.Detail || !c.Log.Debug {
		t.Errorf("unexpected values: %+v", c)
	}
	if c.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("server addr = %q", c.Server.Addr)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, "transpose: true\n")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Transpose {
		t.Error("transpose not loaded")
	}
	if c.Workers != 1 || c.Input != "inputs.csv" || c.Server.Addr != ":8080" {
		t.Errorf("defaults not applied: %+v", c)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"bad policy", "on_error: retry\n", "on_error"},
		{"negative workers", "workers: -2\n", "workers"},
		{"negative lambda", "default_lambda: -1\n", "default_lambda"},
		{"bad precision", "precision: -3\n", "precision"},
		{"malformed yaml", "workers: [\n", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
