package domain

import (
	interfaces "ctenc/internal/domain/interfaces"
	types "ctenc/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	KeyName     = types.KeyName
	Algorithm   = types.Algorithm
	Fingerprint = types.Fingerprint
	KeyInfo     = types.KeyInfo
)

const (
	AlgorithmEd25519 = types.AlgorithmEd25519
	AlgorithmX25519  = types.AlgorithmX25519
)

var (
	ErrInvalidKeyName = types.ErrInvalidKeyName
	ErrKeyNotFound    = types.ErrKeyNotFound
	ParseKeyName      = types.ParseKeyName
	ParseAlgorithm    = types.ParseAlgorithm
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyStore   = interfaces.KeyStore
	KeyService = interfaces.KeyService
)
