package keystore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"ctenc/internal/domain"
	"ctenc/internal/keys"
	"ctenc/internal/pem"
	"ctenc/internal/secret"
)

// Required filesystem mode for key store directories (unix only).
const requiredDirMode os.FileMode = 0o700

const (
	keyFileMode = 0o600
	keyFileExt  = ".pem"

	labelPrivateKey       = "PRIVATE KEY"
	labelSealedPrivateKey = "SEALED PRIVATE KEY"
)

var (
	ErrNotADirectory = errors.New("keystore: not a directory")
	ErrPermissions   = errors.New("keystore: directory permissions must be 0700")
	ErrKeyNotFound   = domain.ErrKeyNotFound
	ErrKeyMalformed  = errors.New("keystore: malformed key file")
)

// FsKeyStore stores key documents as PEM files in a directory.
type FsKeyStore struct {
	path   string
	mu     sync.Mutex
	log    *zap.Logger
	sealer sealer
}

// Option configures an FsKeyStore.
type Option func(*FsKeyStore)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *FsKeyStore) { s.log = l }
}

// WithKDF selects the KDF used for newly sealed keys.
func WithKDF(kdf KDF) Option {
	return func(s *FsKeyStore) { s.sealer.kdf = kdf }
}

// WithScryptParams overrides DefaultScryptParams for newly sealed keys.
func WithScryptParams(p ScryptParams) Option {
	return func(s *FsKeyStore) { s.sealer.scrypt = p }
}

// WithArgon2Params overrides DefaultArgon2Params for newly sealed keys.
func WithArgon2Params(p Argon2Params) Option {
	return func(s *FsKeyStore) { s.sealer.argon2 = p }
}

// CreateOrOpen opens the key store at dir, creating it if it doesn't exist.
func CreateOrOpen(dir string, opts ...Option) (*FsKeyStore, error) {
	s, err := Open(dir, opts...)
	if err == nil {
		return s, nil
	}
	return Create(dir, opts...)
}

// Create makes dir (and its parents) and restricts it to mode 0700 before
// opening it.
func Create(dir string, opts ...Option) (*FsKeyStore, error) {
	if err := os.MkdirAll(dir, requiredDirMode); err != nil {
		return nil, err
	}
	if err := os.Chmod(dir, requiredDirMode); err != nil {
		return nil, err
	}
	return Open(dir, opts...)
}

// Open opens an existing key store, checking that dir is a directory with
// mode 0700.
func Open(dir string, opts ...Option) (*FsKeyStore, error) {
	path, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if path, err = filepath.EvalSymlinks(path); err != nil {
		return nil, err
	}
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}
	if runtime.GOOS != "windows" && st.Mode().Perm() != requiredDirMode {
		return nil, fmt.Errorf("%w: %s has %#o", ErrPermissions, path, st.Mode().Perm())
	}

	s := &FsKeyStore{
		path: path,
		log:  zap.NewNop(),
		sealer: sealer{
			kdf:    KDFScrypt,
			scrypt: DefaultScryptParams,
			argon2: DefaultArgon2Params,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("keystore", path))
	return s, nil
}

// Path returns the canonical directory of the store.
func (s *FsKeyStore) Path() string { return s.path }

// keyPath computes the path for a key with a given name.
func (s *FsKeyStore) keyPath(name domain.KeyName) string {
	return filepath.Join(s.path, string(name)+keyFileExt)
}

// Info returns information about a key with the given name.
func (s *FsKeyStore) Info(name domain.KeyName) (domain.KeyInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text, err := readSecretFile(s.keyPath(name))
	if err != nil {
		return domain.KeyInfo{}, err
	}
	defer text.Destroy()

	info := domain.KeyInfo{Name: name}
	switch {
	case pem.HasLabel(text.Bytes(), labelSealedPrivateKey):
		info.Sealed = true
	case pem.HasLabel(text.Bytes(), labelPrivateKey):
		_, der, err := pem.Decode(text.Bytes(), labelPrivateKey)
		if err != nil {
			return domain.KeyInfo{}, fmt.Errorf("%w: %s: %w", ErrKeyMalformed, name, err)
		}
		defer der.Destroy()
		if info.Algorithm, err = keys.AlgorithmOf(der.Bytes()); err != nil {
			return domain.KeyInfo{}, fmt.Errorf("%w: %s: %w", ErrKeyMalformed, name, err)
		}
	default:
		return domain.KeyInfo{}, fmt.Errorf("%w: %s: unknown document type", ErrKeyMalformed, name)
	}
	return info, nil
}

// Load returns the PKCS#8 document for name, unsealing it with passphrase
// when needed.
func (s *FsKeyStore) Load(name domain.KeyName, passphrase string) (*secret.Buffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text, err := readSecretFile(s.keyPath(name))
	if err != nil {
		return nil, err
	}
	defer text.Destroy()

	label, body, err := pem.Decode(text.Bytes(), "")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrKeyMalformed, name, err)
	}
	switch label {
	case labelPrivateKey:
		s.log.Debug("loaded key", zap.String("name", string(name)))
		return body, nil
	case labelSealedPrivateKey:
		defer body.Destroy()
		der, err := open(passphrase, body.Bytes())
		if err != nil {
			return nil, err
		}
		s.log.Debug("unsealed key", zap.String("name", string(name)))
		return der, nil
	}
	body.Destroy()
	return nil, fmt.Errorf("%w: %s: unexpected label %q", ErrKeyMalformed, name, label)
}

// Store writes an unsealed PKCS#8 document, replacing any existing key.
func (s *FsKeyStore) Store(name domain.KeyName, der []byte) error {
	text, err := pem.Encode(labelPrivateKey, der)
	if err != nil {
		return err
	}
	defer text.Destroy()
	return s.write(name, text.Bytes(), false)
}

// StoreSealed seals der under passphrase and writes it, replacing any
// existing key.
func (s *FsKeyStore) StoreSealed(name domain.KeyName, der []byte, passphrase string) error {
	blob, err := s.sealer.seal(passphrase, der)
	if err != nil {
		return err
	}
	text, err := pem.Encode(labelSealedPrivateKey, blob)
	if err != nil {
		return err
	}
	defer text.Destroy()
	return s.write(name, text.Bytes(), true)
}

func (s *FsKeyStore) write(name domain.KeyName, text []byte, sealed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFile(s.keyPath(name), text, keyFileMode); err != nil {
		return err
	}
	s.log.Debug("stored key", zap.String("name", string(name)), zap.Bool("sealed", sealed))
	return nil
}

// Delete removes the key with the given name.
func (s *FsKeyStore) Delete(name domain.KeyName) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.keyPath(name))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, name)
	}
	if err != nil {
		return err
	}
	s.log.Debug("deleted key", zap.String("name", string(name)))
	return nil
}

// List returns the names of all stored keys in lexical order. Files whose
// stem is not a valid key name are skipped.
func (s *FsKeyStore) List() ([]domain.KeyName, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, err
	}
	var names []domain.KeyName
	for _, e := range entries {
		stem, ok := strings.CutSuffix(e.Name(), keyFileExt)
		if !ok || !e.Type().IsRegular() {
			continue
		}
		name, err := domain.ParseKeyName(stem)
		if err != nil {
			s.log.Debug("skipping file", zap.String("file", e.Name()), zap.Error(err))
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// Compile-time assertion that FsKeyStore implements domain.KeyStore.
var _ domain.KeyStore = (*FsKeyStore)(nil)
