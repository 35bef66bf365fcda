package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned when a password does not match its hash.
var ErrPasswordMismatch = errors.New("password does not match")

// ErrInvalidHash is returned for stored hashes in no format we understand.
var ErrInvalidHash = errors.New("invalid hash format")

type argon2Params struct {
	memory      uint32 // KiB
	iterations  uint32
	parallelism uint8
	keyLength   uint32
	saltLength  int
}

// passwordParams follows the OWASP argon2id minimum (19 MiB, t=2, p=1).
var passwordParams = argon2Params{
	memory:      19 * 1024,
	iterations:  2,
	parallelism: 1,
	keyLength:   32,
	saltLength:  16,
}

func (p argon2Params) prefix() string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$", argon2.Version, p.memory, p.iterations, p.parallelism)
}

// HashPassword returns a PHC-format argon2id hash of password and the pepper.
func HashPassword(password string) (string, error) {
	pep, err := Pepper()
	if err != nil {
		return "", err
	}

	salt := make([]byte, passwordParams.saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	p := passwordParams
	key := argon2.IDKey([]byte(password+pep), salt, p.iterations, p.memory, p.parallelism, p.keyLength)

	return p.prefix() +
		base64.RawStdEncoding.EncodeToString(salt) + "$" +
		base64.RawStdEncoding.EncodeToString(key), nil
}

// VerifyPassword compares a plaintext password against a stored hash.
//
// Argon2id PHC strings are the native format. Bcrypt hashes ($2a$, $2b$,
// $2y$) from databases created by the earlier portal server are still
// accepted; callers should rehash those after a successful login (see
// NeedsUpgrade).
func VerifyPassword(password, encodedHash string) error {
	if isBcrypt(encodedHash) {
		return verifyBcrypt(password, encodedHash)
	}

	params, salt, want, err := decodeArgon2id(encodedHash)
	if err != nil {
		return err
	}

	pep, err := Pepper()
	if err != nil {
		return err
	}

	got := argon2.IDKey([]byte(password+pep), salt, params.iterations, params.memory, params.parallelism, params.keyLength)
	if subtle.ConstantTimeCompare(got, want) == 1 {
		return nil
	}
	return ErrPasswordMismatch
}

// decodeArgon2id splits "$argon2id$v=19$m=X,t=Y,p=Z$salt$hash".
func decodeArgon2id(encodedHash string) (argon2Params, []byte, []byte, error) {
	var p argon2Params

	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" {
		return p, nil, nil, fmt.Errorf("%w: expected 6 parts", ErrInvalidHash)
	}
	if parts[1] != "argon2id" {
		return p, nil, nil, fmt.Errorf("%w: not argon2id", ErrInvalidHash)
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return p, nil, nil, fmt.Errorf("%w: wrong version", ErrInvalidHash)
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.iterations, &p.parallelism); err != nil {
		return p, nil, nil, fmt.Errorf("%w: parameters: %w", ErrInvalidHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: salt: %w", ErrInvalidHash, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: hash: %w", ErrInvalidHash, err)
	}
	if len(key) == 0 {
		return p, nil, nil, fmt.Errorf("%w: empty hash", ErrInvalidHash)
	}

	p.saltLength = len(salt)
	p.keyLength = uint32(len(key)) // #nosec G115 - decoded from a short stored string
	return p, salt, key, nil
}

// NeedsUpgrade reports whether a stored hash is bcrypt, or argon2id with
// parameters other than the current ones.
func NeedsUpgrade(encodedHash string) bool {
	return isBcrypt(encodedHash) || !strings.HasPrefix(encodedHash, passwordParams.prefix())
}

func isBcrypt(encodedHash string) bool {
	return strings.HasPrefix(encodedHash, "$2a$") ||
		strings.HasPrefix(encodedHash, "$2b$") ||
		strings.HasPrefix(encodedHash, "$2y$")
}

// Bcrypt hashes were produced without a pepper.
func verifyBcrypt(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
}
