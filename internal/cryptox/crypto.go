// Package cryptox holds the vault's cryptographic primitives: argon2id key
// derivation, a key verifier, and AES-GCM sealing of JSON payloads.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/keeperdemo/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of the per-vault salt in bytes.
const SaltSize = 32

// ErrDecrypt is returned when a payload cannot be authenticated with the key.
var ErrDecrypt = errors.New("decryption failed")

// NewSalt returns a fresh random salt for DeriveMasterKey.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// MakeVerifier returns the value stored next to the salt and compared on
// open to tell a wrong password from a corrupted entry.
func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

// DeriveMasterKey turns a master password into a 32-byte AES key.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal serializes v to JSON and encrypts it with AES-GCM under key.
// A new random nonce is generated for every call and returned separately.
//
//	ciphertext, nonce, err := cryptox.Seal(models.Overview{Title: "Site"}, key)
func Seal(v any, key []byte) (ciphertext, nonce []byte, err error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}
	defer common.WipeByteArray(plaintext)

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = common.GenerateRandByteArray(aesgcm.NonceSize())
	ciphertext = aesgcm.Seal(nil, nonce, plaintext, nil)

	return ciphertext, nonce, nil
}

// Unseal decrypts ciphertext produced by Seal and unmarshals the JSON into v.
// Authentication failures are reported as ErrDecrypt.
func Unseal(ciphertext, nonce, key []byte, v any) error {
	aesgcm, err := newGCM(key)
	if err != nil {
		return err
	}
	if len(nonce) != aesgcm.NonceSize() {
		return ErrDecrypt
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return ErrDecrypt
	}
	defer common.WipeByteArray(plaintext)

	return json.Unmarshal(plaintext, v)
}
