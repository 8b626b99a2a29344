package interfaces

import (
	domaintypes "ctenc/internal/domain/types"
	"ctenc/internal/encoding"
	"ctenc/internal/secret"
)

// KeyService creates, imports, exports and inspects stored keys.
type KeyService interface {
	Generate(
		name domaintypes.KeyName,
		alg domaintypes.Algorithm,
		passphrase string,
	) (domaintypes.Fingerprint, error)
	Import(
		name domaintypes.KeyName,
		alg domaintypes.Algorithm,
		text []byte,
		enc encoding.Encoding,
		passphrase string,
	) (domaintypes.Fingerprint, error)
	Export(
		name domaintypes.KeyName,
		passphrase string,
		enc encoding.Encoding,
	) (*secret.Buffer, error)
	PublicKey(
		name domaintypes.KeyName,
		passphrase string,
		enc encoding.Encoding,
	) (string, error)
	Fingerprint(name domaintypes.KeyName, passphrase string) (domaintypes.Fingerprint, error)
	Info(name domaintypes.KeyName) (domaintypes.KeyInfo, error)
	List() ([]domaintypes.KeyInfo, error)
	Delete(name domaintypes.KeyName) error
}
