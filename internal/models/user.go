package models

// User represents a registered account in the users document.
//
// Password holds the hex-encoded SHA-256 digest of the plaintext password,
// never the plaintext itself. The digest is unsalted; stored values are only
// as strong as the passwords behind them. Changing the digest scheme would
// invalidate every stored account, so it stays as-is.
type User struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,len=64,hexadecimal"`
}
