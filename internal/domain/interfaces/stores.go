package interfaces

import (
	domaintypes "ctenc/internal/domain/types"
	"ctenc/internal/secret"
)

// KeyStore persists PKCS#8 private key documents by name.
type KeyStore interface {
	// Info describes a key without needing its passphrase.
	Info(name domaintypes.KeyName) (domaintypes.KeyInfo, error)
	// Load returns the PKCS#8 document. passphrase is only used for sealed keys.
	Load(name domaintypes.KeyName, passphrase string) (*secret.Buffer, error)
	// Store writes an unsealed document.
	Store(name domaintypes.KeyName, der []byte) error
	// StoreSealed writes a document sealed under passphrase.
	StoreSealed(name domaintypes.KeyName, der []byte, passphrase string) error
	Delete(name domaintypes.KeyName) error
	List() ([]domaintypes.KeyName, error)
}
