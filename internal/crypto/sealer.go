// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"math/big"

	"github.com/verdantlabs/wastesentry/internal/utils"
)

// sealPrefixLen is how many leading bytes of the raw data are base64-encoded
// into the visible part of the placeholder token.
const sealPrefixLen = 50

// keyAlphabet is the base36 alphabet used for simulated decryption keys,
// matching the "KEY-XXXXXXXXXXXX" shape operators see in the vault UI.
const keyAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const keyLen = 12

// sealer is the private implementation of [Sealer].
type sealer struct {
}

// NewSealer constructs the placeholder [Sealer].
//
// The produced tokens deliberately imitate an AES-256 blob without being
// one. Swapping this implementation for real encryption would change the
// documented custody semantics (locked items remain technically readable in
// memory) and should be a conscious decision, not a drive-by fix.
func NewSealer() Sealer {
	return &sealer{}
}

// Seal implements [Sealer]. The token embeds a base64 rendering of the first
// [sealPrefixLen] bytes so different frames produce visibly different blobs.
func (s *sealer) Seal(data []byte) (SealedData, error) {
	key, err := generateKey()
	if err != nil {
		return SealedData{}, fmt.Errorf("error generating seal key: %w", err)
	}

	prefix := data
	if len(prefix) > sealPrefixLen {
		prefix = prefix[:sealPrefixLen]
	}

	return SealedData{
		Ciphertext: "ENC-" + base64.StdEncoding.EncodeToString(prefix) + "...[AES-256-ENCRYPTED-BLOB]",
		Key:        key,
	}, nil
}

// IssueKey implements [Sealer].
func (s *sealer) IssueKey() (string, error) {
	return generateKey()
}

// Fingerprint implements [Sealer].
func (s *sealer) Fingerprint(data []byte) string {
	return utils.SHA256Hex(data)
}

// generateKey reads [keyLen] characters from the OS CSPRNG mapped onto the
// base36 alphabet. Returns an error if the random read fails.
func generateKey() (string, error) {
	return generateKeyFrom(rand.Reader)
}

func generateKeyFrom(random io.Reader) (string, error) {
	max := big.NewInt(int64(len(keyAlphabet)))
	buf := make([]byte, keyLen)
	for i := range buf {
		n, err := rand.Int(random, max)
		if err != nil {
			return "", fmt.Errorf("decryption key generation failed: %w", err)
		}
		buf[i] = keyAlphabet[n.Int64()]
	}

	return "KEY-" + string(buf), nil
}
