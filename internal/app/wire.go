package app

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ctenc/internal/domain"
	"ctenc/internal/encoding"
	"ctenc/internal/keystore"
	"ctenc/internal/services/keyring"
)

// Wire bundles the logger, store and services for the CLI.
type Wire struct {
	Log      *zap.Logger
	Store    domain.KeyStore
	Keys     domain.KeyService
	Encoding encoding.Encoding

	bech32MaxLength int
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return nil, err
	}

	w := &Wire{Log: log, bech32MaxLength: cfg.Bech32MaxLength}
	if w.Encoding, err = w.ParseEncoding(cfg.Encoding); err != nil {
		return nil, err
	}

	opts := []keystore.Option{keystore.WithLogger(log)}
	if cfg.KDF != "" {
		kdf, err := keystore.ParseKDF(cfg.KDF)
		if err != nil {
			return nil, err
		}
		opts = append(opts, keystore.WithKDF(kdf))
	}
	ks, err := keystore.CreateOrOpen(cfg.Home, opts...)
	if err != nil {
		return nil, fmt.Errorf("open key store: %w", err)
	}

	w.Store = ks
	w.Keys = keyring.New(ks, keyring.WithLogger(log))
	return w, nil
}

// ParseEncoding resolves an encoding name, applying the configured bech32
// length limit. An empty name selects lowercase hex.
func (w *Wire) ParseEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return encoding.HexLower, nil
	}
	enc, err := encoding.Parse(name)
	if err != nil {
		return nil, err
	}
	if b, ok := enc.(encoding.Bech32); ok && w.bech32MaxLength > 0 {
		b.MaxLength = w.bech32MaxLength
		enc = b
	}
	return enc, nil
}

// Close flushes buffered log entries.
func (w *Wire) Close() error {
	_ = w.Log.Sync()
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = ""
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}
