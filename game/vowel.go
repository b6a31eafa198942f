package game

import (
	"strings"
	"unicode"
)

// Vowels is the fixed vowel set. 'y' is never a vowel.
const Vowels = "aeiou"

// Mask replaces the interchangeable vowel in a skeleton.
const Mask = "_"

// IsVowel reports whether r, lowercased, is one of Vowels.
func IsVowel(r rune) bool {
	return strings.ContainsRune(Vowels, unicode.ToLower(r))
}
