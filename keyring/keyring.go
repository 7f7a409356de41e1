// Package keyring reads VPN passwords from the system keyring.
// It is the alternative to 1Password for users who keep the password
// in the Secret Service, macOS Keychain or Windows Credential Manager.
package keyring

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/yllada/opconnect/common"
)

// scheme prefixes an explicit keyring reference.
const scheme = "keyring://"

// ErrInvalidReference is returned for references that name no user.
var ErrInvalidReference = errors.New("invalid keyring reference")

// Store implements common.CredentialStore over the system keyring.
// It never writes to the keyring.
type Store struct {
	defaultService string
}

var _ common.CredentialStore = (*Store)(nil)

// New creates a Store. References without a service use defaultService.
func New(defaultService string) *Store {
	if defaultService == "" {
		defaultService = common.DefaultKeyringService
	}
	return &Store{defaultService: defaultService}
}

// Name implements common.CredentialStore.
func (s *Store) Name() string {
	return "system keyring"
}

// SignIn is a no-op: the keyring is unlocked with the user's session.
func (s *Store) SignIn(context.Context) error {
	common.LogDebug("Keyring: no sign-in required")
	return nil
}

// Read looks up reference, which is "keyring://service/user",
// "service/user" or a bare "user".
func (s *Store) Read(_ context.Context, reference string) (common.Secret, error) {
	service, user, err := s.parseReference(reference)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrSecretReadFailed, err)
	}

	password, err := keyring.Get(service, user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("%w: no entry for %s in service %s", common.ErrSecretReadFailed, user, service)
		}
		return "", fmt.Errorf("%w: keyring unavailable: %v", common.ErrSecretReadFailed, err)
	}

	common.LogDebug("Keyring: read entry %s/%s", service, user)
	return common.Secret(password), nil
}

// parseReference splits a reference into service and user. The user part
// may itself contain slashes; only the first one separates the service.
func (s *Store) parseReference(reference string) (service, user string, err error) {
	ref := strings.TrimPrefix(reference, scheme)

	service, user, found := strings.Cut(ref, "/")
	if !found {
		service, user = s.defaultService, ref
	}
	if service == "" {
		service = s.defaultService
	}
	if user == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidReference, reference)
	}
	return service, user, nil
}
