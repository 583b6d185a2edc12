package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/modal/pkg/modal"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// chdir switches to dir for the rest of the test so config discovery does
// not pick up files from the package directory.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir() error: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		wantErr  bool
		empty    bool
	}{
		{
			name:     "defaults",
			args:     []string{"render"},
			contains: []string{`class="modal-dialog modal-xl modal-dialog-centered"`},
		},
		{
			name:     "aliases",
			args:     []string{"render", "--size", "lg", "--position", "bottom", "--content", "Hello"},
			contains: []string{`class="modal-dialog modal-lg modal-dialog-bottom"`, "Hello"},
		},
		{
			name:  "closed",
			args:  []string{"render", "--closed"},
			empty: true,
		},
		{
			name:    "unknown size",
			args:    []string{"render", "--size", "huge"},
			wantErr: true,
		},
		{
			name:    "unknown position",
			args:    []string{"render", "--position", "left"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.empty && out != "" {
				t.Errorf("expected no output, got %q", out)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version", "-s")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version -s = %q, want %q", out, version)
	}

	out, err = execute(t, "version")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out, "Go version:") {
		t.Errorf("expected build details in:\n%s", out)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cmd := serveCmd()

	if _, _, err := loadConfig(newViper(filepath.Join(dir, "missing.yaml")), cmd.Flags(), true); err == nil {
		t.Fatal("expected error for a named config file that does not exist")
	}

	chdir(t, dir)
	cfg, logger, err := loadConfig(newViper(""), cmd.Flags(), false)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if logger == nil {
		t.Fatal("expected a logger")
	}
	if cfg.Address != ":8080" {
		t.Errorf("Address = %q, want :8080", cfg.Address)
	}
	if cfg.DefaultSize != modal.SizeExtraLarge || cfg.DefaultPosition != modal.PositionCenter {
		t.Errorf("defaults = %s/%s, want extra-large/center", cfg.DefaultSize, cfg.DefaultPosition)
	}
	if cfg.CheckOrigin != nil {
		t.Error("CheckOrigin should be nil unless allow-all-origins is set")
	}
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vango-modal.yaml")
	data := "addr: \":9000\"\nsize: sm\nposition: bottom\nshutdown-timeout: 3s\nallow-all-origins: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	t.Setenv("VANGO_MODAL_POSITION", "top")
	t.Setenv("VANGO_MODAL_LOG_LEVEL", "debug")

	cmd := serveCmd()
	if err := cmd.Flags().Set("addr", ":7000"); err != nil {
		t.Fatalf("Set(addr) error: %v", err)
	}

	cfg, _, err := loadConfig(newViper(path), cmd.Flags(), true)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Address != ":7000" {
		t.Errorf("Address = %q, want flag value :7000", cfg.Address)
	}
	if cfg.DefaultSize != modal.SizeSmall {
		t.Errorf("DefaultSize = %q, want small from file", cfg.DefaultSize)
	}
	if cfg.DefaultPosition != modal.PositionTop {
		t.Errorf("DefaultPosition = %q, want top from env", cfg.DefaultPosition)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 3s", cfg.ShutdownTimeout)
	}
	if cfg.CheckOrigin == nil || !cfg.CheckOrigin(nil) {
		t.Error("allow-all-origins should install a permissive CheckOrigin")
	}
}

func TestServeFlagsCoverConfigKeys(t *testing.T) {
	chdir(t, t.TempDir())
	cmd := serveCmd()
	for _, key := range []string{"addr", "title", "size", "position", "log-level", "allow-all-origins", "shutdown-timeout", "max-message-size"} {
		if cmd.Flags().Lookup(key) == nil {
			t.Errorf("serve has no --%s flag", key)
		}
	}

	if err := cmd.Flags().Set("shutdown-timeout", "2s"); err != nil {
		t.Fatalf("Set(shutdown-timeout) error: %v", err)
	}
	if err := cmd.Flags().Set("max-message-size", "8192"); err != nil {
		t.Fatalf("Set(max-message-size) error: %v", err)
	}
	cfg, _, err := loadConfig(newViper(""), cmd.Flags(), false)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.ShutdownTimeout != 2*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 2s", cfg.ShutdownTimeout)
	}
	if cfg.MaxMessageSize != 8192 {
		t.Errorf("MaxMessageSize = %d, want 8192", cfg.MaxMessageSize)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{"size", "VANGO_MODAL_SIZE", "huge"},
		{"position", "VANGO_MODAL_POSITION", "left"},
		{"log level", "VANGO_MODAL_LOG_LEVEL", "loud"},
		{"max message size", "VANGO_MODAL_MAX_MESSAGE_SIZE", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(tt.env, tt.val)
			if _, _, err := loadConfig(newViper(""), serveCmd().Flags(), false); err == nil {
				t.Errorf("expected error for %s=%q", tt.env, tt.val)
			}
		})
	}
}
