package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yllada/opconnect/common"
)

func TestBuild_InsufficientArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"nil", nil},
		{"program only", []string{"opconnect"}},
		{"host only", []string{"opconnect", "vpn.example.com"}},
		{"missing pass path", []string{"opconnect", "vpn.example.com", "CORP", "alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.args)
			if !errors.Is(err, common.ErrInsufficientArguments) {
				t.Errorf("Build(%v) error = %v, want ErrInsufficientArguments", tt.args, err)
			}
		})
	}
}

func TestBuild_TakesFieldsVerbatim(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "exact",
			args: []string{"opconnect", "vpn.example.com", "CORP", "alice", "op://vault/item"},
			want: Config{Host: "vpn.example.com", Group: "CORP", User: "alice", PassPath: "op://vault/item"},
		},
		{
			name: "extra ignored",
			args: []string{"opconnect", "h", "g", "u", "p", "extra"},
			want: Config{Host: "h", Group: "g", User: "u", PassPath: "p"},
		},
		{
			name: "no trimming or validation",
			args: []string{"opconnect", " spaced ", "", "ÄlIcE", "op://a b/c"},
			want: Config{Host: " spaced ", Group: "", User: "ÄlIcE", PassPath: "op://a b/c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.args)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Build() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConfig_String(t *testing.T) {
	cfg := Config{Host: "vpn.example.com", Group: "CORP", User: "alice", PassPath: "op://vault/item"}
	got := cfg.String()
	for _, part := range []string{"vpn.example.com", "CORP", "alice", "op://vault/item"} {
		if !strings.Contains(got, part) {
			t.Errorf("String() = %q, missing %q", got, part)
		}
	}
}

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if *got != *DefaultSettings() {
		t.Errorf("LoadSettings() = %+v, want defaults", got)
	}
	if common.FileExists(path) {
		t.Error("LoadSettings should not create the settings file")
	}
}

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, s *Settings)
		wantErr error
	}{
		{
			name:    "empty file",
			content: "",
			check: func(t *testing.T, s *Settings) {
				if s.CredentialStore != common.StoreOnePassword {
					t.Errorf("CredentialStore = %q", s.CredentialStore)
				}
			},
		},
		{
			name: "overrides",
			content: `credential_store: keyring
op_path: /usr/local/bin/op
vpn_path: /usr/bin/vpn
notifications: false
log_file: true
log_level: debug
`,
			check: func(t *testing.T, s *Settings) {
				if s.CredentialStore != common.StoreKeyring {
					t.Errorf("CredentialStore = %q, want keyring", s.CredentialStore)
				}
				if s.OnePasswordPath != "/usr/local/bin/op" || s.VPNPath != "/usr/bin/vpn" {
					t.Errorf("paths = %q, %q", s.OnePasswordPath, s.VPNPath)
				}
				if s.Notifications || !s.LogFile {
					t.Errorf("Notifications = %v, LogFile = %v", s.Notifications, s.LogFile)
				}
				if s.Level() != common.LevelDebug {
					t.Errorf("Level() = %v, want DEBUG", s.Level())
				}
			},
		},
		{
			name:    "empty paths fall back",
			content: "op_path: \"\"\nvpn_path: \"\"\n",
			check: func(t *testing.T, s *Settings) {
				if s.OnePasswordPath != common.DefaultOnePasswordPath || s.VPNPath != common.DefaultVPNPath {
					t.Errorf("paths = %q, %q", s.OnePasswordPath, s.VPNPath)
				}
			},
		},
		{
			name:    "unknown field",
			content: "theme: dark\n",
			wantErr: common.ErrConfigLoad,
		},
		{
			name:    "unknown store",
			content: "credential_store: vault\n",
			wantErr: common.ErrInvalidSettings,
		},
		{
			name:    "unknown level",
			content: "log_level: chatty\n",
			wantErr: common.ErrInvalidSettings,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			got, err := LoadSettings(path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadSettings() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadSettings() error = %v", err)
			}
			tt.check(t, got)
		})
	}
}

func TestDefaultSettingsPath(t *testing.T) {
	path, err := DefaultSettingsPath()
	if err != nil {
		t.Fatalf("DefaultSettingsPath() error = %v", err)
	}
	if filepath.Base(path) != common.SettingsFileName {
		t.Errorf("DefaultSettingsPath() = %q", path)
	}
}
