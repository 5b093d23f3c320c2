package mnemonic

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to test for them.
var (
	// ErrWordCount indicates a sentence length outside the accepted set.
	ErrWordCount = errors.New("invalid number of words")

	// ErrUnknownWord indicates a word missing from the dictionary.
	ErrUnknownWord = errors.New("unknown word")

	// ErrChecksum indicates the checksum bits do not match the entropy.
	ErrChecksum = errors.New("invalid entropy checksum")

	// ErrEntropySize indicates entropy whose length is not in the size table.
	ErrEntropySize = errors.New("invalid entropy size")

	// ErrUnknownPurpose indicates a purpose outside Seed and SecondFactor.
	ErrUnknownPurpose = errors.New("unknown mnemonic purpose")
)

// SizeError reports a word count that the purpose does not accept.
type SizeError struct {
	Purpose  Purpose
	Got      int
	Accepted []int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("invalid number of words: %s words are expected", FormatSizes(e.Accepted))
}

func (e *SizeError) Unwrap() error {
	return ErrWordCount
}

// WordError reports a word that is not in the dictionary. The word itself
// is not kept so the error can be logged.
type WordError struct {
	Index int
}

func (e *WordError) Error() string {
	return fmt.Sprintf("word %d is not present in the dictionary", e.Index+1)
}

func (e *WordError) Unwrap() error {
	return ErrUnknownWord
}
