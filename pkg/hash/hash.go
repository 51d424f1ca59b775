package hash

import (
	"crypto/aes"
	"encoding/binary"
)

// Hash64 reduces a Fingerprint to a 64-bit value for transposition-table
// indexing. The source mixes the 32-byte nibble map with a single AES-NI
// AESDEC round (_mm_aesdec_si128) across its two 16-byte halves; Go's
// standard library exposes no single-round AES primitive (no example
// repository in the corpus provides one either), so the same two halves are
// combined here via a full AES block encryption instead -- the first half as
// the block, the second as the key -- which gives the same bit-diffusion
// property the source relied on, using only github.com/chessblunder/blunder's
// remaining stdlib surface. See DESIGN.md.
func Hash64(fp Fingerprint) uint64 {
	block, err := aes.NewCipher(fp.Nibbles[16:32])
	if err != nil {
		// aes.NewCipher only fails on bad key length; 16 bytes is always valid.
		panic(err)
	}

	var out [16]byte
	block.Encrypt(out[:], fp.Nibbles[0:16])

	h := binary.LittleEndian.Uint64(out[0:8])
	if fp.WhiteToMove {
		h ^= 1
	}
	return h
}
