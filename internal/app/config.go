package app

// Config holds runtime wiring options for building the app.
type Config struct {
	Home            string // key store directory, e.g. $HOME/.ctenc
	Encoding        string // default encoding name, see encoding.Parse
	KDF             string // KDF for newly sealed keys: scrypt or argon2id
	Bech32MaxLength int    // 0 keeps the BIP-173 limit of 90
	Verbose         bool   // log debug output to stderr
}
