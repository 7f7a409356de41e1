package keyring

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/zalando/go-keyring"

	"github.com/yllada/opconnect/common"
)

func TestParseReference(t *testing.T) {
	store := New("")

	tests := []struct {
		ref         string
		wantService string
		wantUser    string
		wantErr     bool
	}{
		{"keyring://corp-vpn/alice", "corp-vpn", "alice", false},
		{"corp-vpn/alice", "corp-vpn", "alice", false},
		{"alice", common.DefaultKeyringService, "alice", false},
		{"keyring://alice", common.DefaultKeyringService, "alice", false},
		{"keyring:///alice", common.DefaultKeyringService, "alice", false},
		{"svc/domain/alice", "svc", "domain/alice", false},
		{"", "", "", true},
		{"keyring://svc/", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			service, user, err := store.parseReference(tt.ref)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidReference) {
					t.Errorf("parseReference(%q) error = %v, want ErrInvalidReference", tt.ref, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseReference(%q) error = %v", tt.ref, err)
			}
			if service != tt.wantService || user != tt.wantUser {
				t.Errorf("parseReference(%q) = %q, %q, want %q, %q", tt.ref, service, user, tt.wantService, tt.wantUser)
			}
		})
	}
}

func TestRead(t *testing.T) {
	keyring.MockInit()
	if err := keyring.Set("corp-vpn", "alice", "hunter2"); err != nil {
		t.Fatal(err)
	}

	store := New("corp-vpn")

	got, err := store.Read(context.Background(), "keyring://corp-vpn/alice")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got.Reveal() != "hunter2" {
		t.Errorf("Read() = %q, want hunter2", got.Reveal())
	}

	got, err = store.Read(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Read() with default service error = %v", err)
	}
	if got.Reveal() != "hunter2" {
		t.Errorf("Read() = %q, want hunter2", got.Reveal())
	}
}

func TestRead_Errors(t *testing.T) {
	keyring.MockInit()
	store := New("")

	if _, err := store.Read(context.Background(), "corp-vpn/nobody"); !errors.Is(err, common.ErrSecretReadFailed) {
		t.Errorf("Read() missing entry error = %v, want ErrSecretReadFailed", err)
	}
	if _, err := store.Read(context.Background(), ""); !errors.Is(err, common.ErrSecretReadFailed) {
		t.Errorf("Read() empty reference error = %v, want ErrSecretReadFailed", err)
	}

	keyring.MockInitWithError(fmt.Errorf("dbus down"))
	if _, err := store.Read(context.Background(), "svc/alice"); !errors.Is(err, common.ErrSecretReadFailed) {
		t.Errorf("Read() backend failure error = %v, want ErrSecretReadFailed", err)
	}
}

func TestSignIn_NoOp(t *testing.T) {
	if err := New("").SignIn(context.Background()); err != nil {
		t.Errorf("SignIn() error = %v", err)
	}
}
