package mnemonic

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is one row of the closed mnemonic size table.
type Size struct {
	Words        int
	EntropyBits  int
	ChecksumBits int
}

// sizes lists every supported sentence length. Each word carries 11 bits,
// so Words*11 == EntropyBits+ChecksumBits for every row.
var sizes = []Size{
	{Words: 9, EntropyBits: 96, ChecksumBits: 3},
	{Words: 12, EntropyBits: 128, ChecksumBits: 4},
	{Words: 15, EntropyBits: 160, ChecksumBits: 5},
	{Words: 18, EntropyBits: 192, ChecksumBits: 6},
	{Words: 21, EntropyBits: 224, ChecksumBits: 7},
	{Words: 24, EntropyBits: 256, ChecksumBits: 8},
}

// Sizes returns the full size table.
func Sizes() []Size {
	return append([]Size(nil), sizes...)
}

// sizeForWords looks up the table row for a word count.
func sizeForWords(n int) (Size, bool) {
	for _, s := range sizes {
		if s.Words == n {
			return s, true
		}
	}
	return Size{}, false
}

// sizeForEntropy looks up the table row for an entropy length in bytes.
func sizeForEntropy(n int) (Size, bool) {
	for _, s := range sizes {
		if s.EntropyBits == n*8 {
			return s, true
		}
	}
	return Size{}, false
}

// Purpose tags the role of a mnemonic. Sentences for different purposes
// follow the same algorithm but are never interchangeable.
type Purpose uint8

// Known purposes.
const (
	Seed Purpose = iota + 1
	SecondFactor
)

// acceptedWords maps each purpose to its accepted word counts.
var acceptedWords = map[Purpose][]int{
	Seed:         {15, 18, 21, 24},
	SecondFactor: {9, 12},
}

var purposeNames = map[Purpose]string{
	Seed:         "seed",
	SecondFactor: "second-factor",
}

func (p Purpose) String() string {
	if name, ok := purposeNames[p]; ok {
		return name
	}
	return "purpose(" + strconv.Itoa(int(p)) + ")"
}

// ParsePurpose is the inverse of Purpose.String.
func ParsePurpose(s string) (Purpose, error) {
	for p, name := range purposeNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPurpose, s)
}

// IsValidPurpose reports whether p is a known purpose.
func IsValidPurpose(p Purpose) bool {
	_, ok := acceptedWords[p]
	return ok
}

// AcceptedSizes returns the word counts accepted for p, ascending.
func AcceptedSizes(p Purpose) []int {
	return append([]int(nil), acceptedWords[p]...)
}

// Accepts reports whether a sentence of n words is valid for p.
func (p Purpose) Accepts(n int) bool {
	for _, w := range acceptedWords[p] {
		if w == n {
			return true
		}
	}
	return false
}

// FormatSizes renders word counts as "15, 18, 21 or 24".
func FormatSizes(counts []int) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = strconv.Itoa(c)
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}
