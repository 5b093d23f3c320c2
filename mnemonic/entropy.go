package mnemonic

import (
	"crypto/sha256"

	"github.com/tyler-smith/go-bip39/wordlists"
)

const bitsPerWord = 11

var (
	dictionary = wordlists.English
	wordIndex  = buildIndex(dictionary)
)

func buildIndex(words []string) map[string]int {
	idx := make(map[string]int, len(words))
	for i, w := range words {
		idx[w] = i
	}
	return idx
}

// EntropyToWords renders entropy and its checksum as dictionary words.
// The entropy length must match a row of the size table.
func EntropyToWords(entropy []byte) ([]string, error) {
	size, ok := sizeForEntropy(len(entropy))
	if !ok {
		return nil, ErrEntropySize
	}

	// Checksum bits never exceed 8, so the first hash byte is enough.
	sum := sha256.Sum256(entropy)
	buf := make([]byte, 0, len(entropy)+1)
	buf = append(buf, entropy...)
	buf = append(buf, sum[0])

	words := make([]string, size.Words)
	for i := range words {
		words[i] = dictionary[readBits(buf, i*bitsPerWord, bitsPerWord)]
	}
	return words, nil
}

// WordsToEntropy recovers the entropy encoded by words and verifies the
// embedded checksum against the one recomputed from that entropy.
func WordsToEntropy(words []string) ([]byte, error) {
	size, ok := sizeForWords(len(words))
	if !ok {
		return nil, ErrWordCount
	}

	entLen := size.EntropyBits / 8
	buf := make([]byte, entLen+1)
	for i, w := range words {
		idx, ok := wordIndex[w]
		if !ok {
			return nil, &WordError{Index: i}
		}
		writeBits(buf, i*bitsPerWord, bitsPerWord, idx)
	}

	entropy := buf[:entLen]
	got := buf[entLen] >> (8 - size.ChecksumBits)
	sum := sha256.Sum256(entropy)
	if want := sum[0] >> (8 - size.ChecksumBits); got != want {
		return nil, ErrChecksum
	}
	return append([]byte(nil), entropy...), nil
}

// readBits reads n bits starting at bit offset off, most significant first.
func readBits(buf []byte, off, n int) int {
	v := 0
	for i := 0; i < n; i++ {
		bit := off + i
		v = v<<1 | int(buf[bit/8]>>(7-bit%8)&1)
	}
	return v
}

// writeBits stores the low n bits of v at bit offset off.
func writeBits(buf []byte, off, n, v int) {
	for i := 0; i < n; i++ {
		if v>>(n-1-i)&1 == 1 {
			bit := off + i
			buf[bit/8] |= 1 << (7 - bit%8)
		}
	}
}
