// Package mnemonic converts between recovery sentences and the entropy
// they encode.
//
// Sentence lengths come from a closed table (9, 12, 15, 18, 21 and 24
// words) and each Purpose accepts a fixed subset of it: Seed takes 15 to
// 24 words, SecondFactor takes 9 or 12. Decoding verifies the checksum
// carried by the last word. A decoded Mnemonic keeps the exact words it
// was built from, so Words(FromWords(p, w)) == w.
package mnemonic

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Mnemonic is a checksum-verified sentence tagged with its purpose.
type Mnemonic struct {
	purpose Purpose
	size    Size
	entropy []byte
	words   []string
}

// FromWords validates words for purpose p.
func FromWords(p Purpose, words []string) (Mnemonic, error) {
	if !IsValidPurpose(p) {
		return Mnemonic{}, ErrUnknownPurpose
	}
	if !p.Accepts(len(words)) {
		err := &SizeError{Purpose: p, Got: len(words), Accepted: AcceptedSizes(p)}
		log.Tracef("Rejected %d-word %v mnemonic: %v", len(words), p, err)
		return Mnemonic{}, err
	}
	size, _ := sizeForWords(len(words))

	entropy, err := WordsToEntropy(words)
	if err != nil {
		log.Tracef("Rejected %d-word %v mnemonic: %v", len(words), p, err)
		return Mnemonic{}, err
	}

	return Mnemonic{
		purpose: p,
		size:    size,
		entropy: entropy,
		words:   append([]string(nil), words...),
	}, nil
}

// Parse splits text on whitespace and validates the words for purpose p.
func Parse(p Purpose, text string) (Mnemonic, error) {
	return FromWords(p, strings.Fields(text))
}

// FromEntropy renders entropy as a sentence for purpose p.
func FromEntropy(p Purpose, entropy []byte) (Mnemonic, error) {
	if !IsValidPurpose(p) {
		return Mnemonic{}, ErrUnknownPurpose
	}
	words, err := EntropyToWords(entropy)
	if err != nil {
		return Mnemonic{}, err
	}
	if !p.Accepts(len(words)) {
		return Mnemonic{}, &SizeError{Purpose: p, Got: len(words), Accepted: AcceptedSizes(p)}
	}
	size, _ := sizeForWords(len(words))
	return Mnemonic{
		purpose: p,
		size:    size,
		entropy: append([]byte(nil), entropy...),
		words:   words,
	}, nil
}

// Generate draws fresh entropy for a sentence of n words.
//
// Entropy comes from crypto/rand, whose Read aborts the process when the
// system source fails, so there is no error path for exhaustion.
func Generate(p Purpose, n int) (Mnemonic, error) {
	if !IsValidPurpose(p) {
		return Mnemonic{}, ErrUnknownPurpose
	}
	if !p.Accepts(n) {
		return Mnemonic{}, &SizeError{Purpose: p, Got: n, Accepted: AcceptedSizes(p)}
	}
	size, _ := sizeForWords(n)

	entropy := make([]byte, size.EntropyBits/8)
	if _, err := rand.Read(entropy); err != nil {
		panic(fmt.Sprintf("mnemonic: reading system randomness: %v", err))
	}

	m, err := FromEntropy(p, entropy)
	if err != nil {
		return Mnemonic{}, err
	}
	log.Debugf("Generated %d-word %v mnemonic", n, p)
	return m, nil
}

// Purpose returns the role the sentence was validated for.
func (m Mnemonic) Purpose() Purpose {
	return m.purpose
}

// Size returns the table row of the sentence.
func (m Mnemonic) Size() Size {
	return m.size
}

// Words returns a copy of the words the mnemonic was built from.
func (m Mnemonic) Words() []string {
	return append([]string(nil), m.words...)
}

// Text joins the words with single spaces.
func (m Mnemonic) Text() string {
	return strings.Join(m.words, " ")
}

// Entropy returns a copy of the secret bytes encoded by the sentence.
func (m Mnemonic) Entropy() []byte {
	return append([]byte(nil), m.entropy...)
}

// Equal reports whether both mnemonics have the same purpose and words.
func (m Mnemonic) Equal(o Mnemonic) bool {
	if m.purpose != o.purpose || len(m.words) != len(o.words) {
		return false
	}
	for i := range m.words {
		if m.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

func (m Mnemonic) String() string {
	return fmt.Sprintf("<%d-word %v mnemonic>", len(m.words), m.purpose)
}

func (m Mnemonic) GoString() string {
	return "mnemonic.Mnemonic{<redacted>}"
}
