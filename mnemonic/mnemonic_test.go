package mnemonic

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"
)

func repeat(word string, n int, last string) []string {
	words := make([]string, 0, n)
	for i := 0; i < n-1; i++ {
		words = append(words, word)
	}
	return append(words, last)
}

func TestSizeTableConsistency(t *testing.T) {
	for _, s := range Sizes() {
		assert.Equal(t, s.Words*bitsPerWord, s.EntropyBits+s.ChecksumBits, "size %d", s.Words)
		assert.Equal(t, s.EntropyBits/32, s.ChecksumBits, "size %d", s.Words)
	}
}

func TestEntropyToWordsVectors(t *testing.T) {
	tests := []struct {
		entropy []byte
		words   []string
	}{
		{bytes.Repeat([]byte{0x00}, 16), repeat("abandon", 12, "about")},
		{bytes.Repeat([]byte{0x7f}, 16), strings.Fields("legal winner thank year wave sausage worth useful legal winner thank yellow")},
		{bytes.Repeat([]byte{0x80}, 16), strings.Fields("letter advice cage absurd amount doctor acoustic avoid letter advice cage above")},
		{bytes.Repeat([]byte{0xff}, 16), repeat("zoo", 12, "wrong")},
		{bytes.Repeat([]byte{0x00}, 24), repeat("abandon", 18, "agent")},
		{bytes.Repeat([]byte{0xff}, 24), repeat("zoo", 18, "when")},
		{bytes.Repeat([]byte{0x00}, 32), repeat("abandon", 24, "art")},
		{bytes.Repeat([]byte{0xff}, 32), repeat("zoo", 24, "vote")},
	}
	for _, tt := range tests {
		got, err := EntropyToWords(tt.entropy)
		require.NoError(t, err)
		assert.Equal(t, tt.words, got)

		back, err := WordsToEntropy(got)
		require.NoError(t, err)
		assert.Equal(t, tt.entropy, back)
	}
}

// Every supported size must survive entropy -> words -> entropy and
// words -> entropy -> words.
func TestRoundTripEverySize(t *testing.T) {
	for _, s := range Sizes() {
		for i := 0; i < 32; i++ {
			entropy := make([]byte, s.EntropyBits/8)
			_, err := rand.Read(entropy)
			require.NoError(t, err)

			words, err := EntropyToWords(entropy)
			require.NoError(t, err)
			require.Len(t, words, s.Words)

			back, err := WordsToEntropy(words)
			require.NoError(t, err)
			require.Equal(t, entropy, back)

			again, err := EntropyToWords(back)
			require.NoError(t, err)
			require.Equal(t, words, again)
		}
	}
}

// For the lengths go-bip39 supports, both implementations must agree.
func TestMatchesBIP39(t *testing.T) {
	for _, s := range Sizes() {
		if s.Words < 12 {
			continue
		}
		entropy := make([]byte, s.EntropyBits/8)
		_, err := rand.Read(entropy)
		require.NoError(t, err)

		want, err := bip39.NewMnemonic(entropy)
		require.NoError(t, err)

		got, err := EntropyToWords(entropy)
		require.NoError(t, err)
		assert.Equal(t, want, strings.Join(got, " "), "size %d", s.Words)
		assert.True(t, bip39.IsMnemonicValid(strings.Join(got, " ")))
	}
}

func TestEntropyToWordsRejectsUnknownSize(t *testing.T) {
	for _, n := range []int{0, 8, 17, 33} {
		_, err := EntropyToWords(make([]byte, n))
		require.ErrorIs(t, err, ErrEntropySize, "entropy of %d bytes", n)
	}
}

func TestFromWordsAcceptedSizes(t *testing.T) {
	tests := []struct {
		purpose Purpose
		words   int
		ok      bool
	}{
		{Seed, 9, false},
		{Seed, 12, false},
		{Seed, 15, true},
		{Seed, 18, true},
		{Seed, 21, true},
		{Seed, 24, true},
		{SecondFactor, 9, true},
		{SecondFactor, 12, true},
		{SecondFactor, 15, false},
		{SecondFactor, 24, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v/%d", tt.purpose, tt.words), func(t *testing.T) {
			size, ok := sizeForWords(tt.words)
			require.True(t, ok)
			words, err := EntropyToWords(make([]byte, size.EntropyBits/8))
			require.NoError(t, err)

			m, err := FromWords(tt.purpose, words)
			if !tt.ok {
				var sizeErr *SizeError
				require.ErrorAs(t, err, &sizeErr)
				assert.Equal(t, AcceptedSizes(tt.purpose), sizeErr.Accepted)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, words, m.Words())
			assert.Equal(t, tt.words, m.Size().Words)
			assert.Equal(t, tt.purpose, m.Purpose())
		})
	}
}

func TestFromWordsSizeMessage(t *testing.T) {
	_, err := FromWords(Seed, []string{"abandon"})
	require.ErrorIs(t, err, ErrWordCount)
	assert.Equal(t, "invalid number of words: 15, 18, 21 or 24 words are expected", err.Error())

	_, err = FromWords(SecondFactor, nil)
	require.ErrorIs(t, err, ErrWordCount)
	assert.Equal(t, "invalid number of words: 9 or 12 words are expected", err.Error())
}

func TestFromWordsBadChecksum(t *testing.T) {
	m, err := Generate(Seed, 15)
	require.NoError(t, err)
	words := m.Words()

	// Flipping the lowest index bit of the last word changes one checksum
	// bit and leaves the entropy intact.
	last := wordIndex[words[len(words)-1]]
	words[len(words)-1] = dictionary[last^1]

	_, err = FromWords(Seed, words)
	require.ErrorIs(t, err, ErrChecksum)
}

func TestFromWordsUnknownWord(t *testing.T) {
	words := repeat("abandon", 15, "address")
	words[3] = "notaword"

	_, err := FromWords(Seed, words)
	var wordErr *WordError
	require.ErrorAs(t, err, &wordErr)
	assert.Equal(t, 3, wordErr.Index)
	assert.True(t, errors.Is(err, ErrUnknownWord))
	assert.NotContains(t, err.Error(), "notaword")
}

func TestParseKeepsLiteralWords(t *testing.T) {
	m, err := Generate(Seed, 24)
	require.NoError(t, err)

	messy := "  " + strings.Join(m.Words(), "\t \n") + "  "
	parsed, err := Parse(Seed, messy)
	require.NoError(t, err)
	assert.Equal(t, m.Words(), parsed.Words())
	assert.Equal(t, m.Text(), parsed.Text())
	assert.Equal(t, m.Entropy(), parsed.Entropy())
	assert.True(t, m.Equal(parsed))
}

func TestGenerate(t *testing.T) {
	for _, p := range []Purpose{Seed, SecondFactor} {
		for _, n := range AcceptedSizes(p) {
			m, err := Generate(p, n)
			require.NoError(t, err)
			assert.Len(t, m.Words(), n)

			again, err := FromWords(p, m.Words())
			require.NoError(t, err)
			assert.Equal(t, m.Entropy(), again.Entropy())
		}
	}

	_, err := Generate(Seed, 12)
	require.ErrorIs(t, err, ErrWordCount)

	_, err = Generate(Purpose(42), 12)
	require.ErrorIs(t, err, ErrUnknownPurpose)
}

func TestFromEntropyPurposeMismatch(t *testing.T) {
	_, err := FromEntropy(SecondFactor, make([]byte, 32))
	require.ErrorIs(t, err, ErrWordCount)

	m, err := FromEntropy(SecondFactor, make([]byte, 12))
	require.NoError(t, err)
	assert.Len(t, m.Words(), 9)
}

func TestMnemonicNeverFormatsWords(t *testing.T) {
	m, err := FromWords(Seed, repeat("abandon", 18, "agent"))
	require.NoError(t, err)
	assert.Equal(t, "<18-word seed mnemonic>", m.String())
	assert.NotContains(t, m.GoString(), "abandon")
}

func TestPurposeNames(t *testing.T) {
	for _, p := range []Purpose{Seed, SecondFactor} {
		got, err := ParsePurpose(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePurpose("spending")
	require.ErrorIs(t, err, ErrUnknownPurpose)
}

func TestFormatSizes(t *testing.T) {
	assert.Equal(t, "", FormatSizes(nil))
	assert.Equal(t, "9", FormatSizes([]int{9}))
	assert.Equal(t, "9 or 12", FormatSizes([]int{9, 12}))
	assert.Equal(t, "15, 18, 21 or 24", FormatSizes([]int{15, 18, 21, 24}))
}
