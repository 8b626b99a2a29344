package keyring

import (
	"errors"
	"fmt"
	"unicode"

	"go.uber.org/zap"

	"ctenc/internal/domain"
	"ctenc/internal/encoding"
	"ctenc/internal/keys"
	"ctenc/internal/secret"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
	ErrKeyExists         = errors.New("key already exists")
	ErrAlgorithmRequired = errors.New("algorithm required to import a raw seed")
	ErrAlgorithmMismatch = errors.New("document algorithm does not match")
)

// Service manages named keys using a backing store.
//
// An empty passphrase stores a key unsealed. Any other passphrase must pass
// the strength policy and seals the document.
type Service struct {
	store domain.KeyStore
	log   *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

// New returns a key service backed by the given store.
func New(store domain.KeyStore, opts ...Option) *Service {
	s := &Service{store: store, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate creates a new key, saves it under name and returns its fingerprint.
func (s *Service) Generate(
	name domain.KeyName,
	alg domain.Algorithm,
	passphrase string,
) (domain.Fingerprint, error) {
	if err := s.checkNew(name, passphrase); err != nil {
		return "", err
	}
	seed, err := keys.Generate(alg)
	if err != nil {
		return "", err
	}
	defer seed.Destroy()

	fp, err := s.save(name, alg, seed, passphrase)
	if err != nil {
		return "", err
	}
	s.log.Info("generated key",
		zap.String("name", string(name)),
		zap.String("algorithm", string(alg)),
		zap.String("fingerprint", string(fp)))
	return fp, nil
}

// Import decodes text with enc and saves the key under name.
//
// The decoded bytes are either a raw 32-byte seed, which needs alg, or a
// PKCS#8 document, whose algorithm must match alg when alg is set.
func (s *Service) Import(
	name domain.KeyName,
	alg domain.Algorithm,
	text []byte,
	enc encoding.Encoding,
	passphrase string,
) (domain.Fingerprint, error) {
	if err := s.checkNew(name, passphrase); err != nil {
		return "", err
	}
	raw, err := encoding.Decode(enc, text)
	if err != nil {
		return "", err
	}
	defer raw.Destroy()

	var seed *secret.Buffer
	if raw.Len() == keys.SeedSize {
		if alg == "" {
			return "", ErrAlgorithmRequired
		}
		seed = raw.Clone()
	} else {
		var docAlg domain.Algorithm
		docAlg, seed, err = keys.ParsePKCS8(raw.Bytes())
		if err != nil {
			return "", err
		}
		if alg != "" && alg != docAlg {
			seed.Destroy()
			return "", fmt.Errorf("%w: got %s, want %s", ErrAlgorithmMismatch, docAlg, alg)
		}
		alg = docAlg
	}
	defer seed.Destroy()

	fp, err := s.save(name, alg, seed, passphrase)
	if err != nil {
		return "", err
	}
	s.log.Info("imported key",
		zap.String("name", string(name)),
		zap.String("algorithm", string(alg)),
		zap.String("encoding", enc.Name()))
	return fp, nil
}

// Export returns the seed of the named key encoded with enc. The text is as
// sensitive as the seed, so it is returned in a secret buffer.
func (s *Service) Export(
	name domain.KeyName,
	passphrase string,
	enc encoding.Encoding,
) (*secret.Buffer, error) {
	_, seed, err := s.load(name, passphrase)
	if err != nil {
		return nil, err
	}
	defer seed.Destroy()
	return encoding.EncodeToBuffer(enc, seed.Bytes())
}

// PublicKey returns the public key of the named key encoded with enc.
func (s *Service) PublicKey(
	name domain.KeyName,
	passphrase string,
	enc encoding.Encoding,
) (string, error) {
	pub, err := s.publicKey(name, passphrase)
	if err != nil {
		return "", err
	}
	return encoding.EncodeToString(enc, pub)
}

// Fingerprint returns a short fingerprint of the named key's public key.
func (s *Service) Fingerprint(name domain.KeyName, passphrase string) (domain.Fingerprint, error) {
	pub, err := s.publicKey(name, passphrase)
	if err != nil {
		return "", err
	}
	return keys.Fingerprint(pub), nil
}

// Info describes the named key.
func (s *Service) Info(name domain.KeyName) (domain.KeyInfo, error) {
	return s.store.Info(name)
}

// List describes every stored key. Keys whose documents cannot be read are
// logged and skipped.
func (s *Service) List() ([]domain.KeyInfo, error) {
	names, err := s.store.List()
	if err != nil {
		return nil, err
	}
	infos := make([]domain.KeyInfo, 0, len(names))
	for _, name := range names {
		info, err := s.store.Info(name)
		if err != nil {
			s.log.Warn("skipping unreadable key", zap.String("name", string(name)), zap.Error(err))
			continue
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Delete removes the named key.
func (s *Service) Delete(name domain.KeyName) error {
	if err := s.store.Delete(name); err != nil {
		return err
	}
	s.log.Info("deleted key", zap.String("name", string(name)))
	return nil
}

// checkNew validates the passphrase and makes sure name is free.
func (s *Service) checkNew(name domain.KeyName, passphrase string) error {
	if passphrase != "" && !isSecurePassphrase(passphrase) {
		return ErrWeakPassphrase
	}
	_, err := s.store.Info(name)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrKeyExists, name)
	case errors.Is(err, domain.ErrKeyNotFound):
		return nil
	}
	return err
}

// save writes seed as a PKCS#8 document and returns the key's fingerprint.
func (s *Service) save(
	name domain.KeyName,
	alg domain.Algorithm,
	seed *secret.Buffer,
	passphrase string,
) (domain.Fingerprint, error) {
	pub, err := keys.PublicKey(alg, seed.Bytes())
	if err != nil {
		return "", err
	}
	der, err := keys.MarshalPKCS8(alg, seed.Bytes())
	if err != nil {
		return "", err
	}
	defer der.Destroy()

	if passphrase == "" {
		err = s.store.Store(name, der.Bytes())
	} else {
		err = s.store.StoreSealed(name, der.Bytes(), passphrase)
	}
	if err != nil {
		return "", err
	}
	return keys.Fingerprint(pub), nil
}

func (s *Service) load(name domain.KeyName, passphrase string) (domain.Algorithm, *secret.Buffer, error) {
	der, err := s.store.Load(name, passphrase)
	if err != nil {
		return "", nil, err
	}
	defer der.Destroy()
	return keys.ParsePKCS8(der.Bytes())
}

func (s *Service) publicKey(name domain.KeyName, passphrase string) ([]byte, error) {
	alg, seed, err := s.load(name, passphrase)
	if err != nil {
		return nil, err
	}
	defer seed.Destroy()
	return keys.PublicKey(alg, seed.Bytes())
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
