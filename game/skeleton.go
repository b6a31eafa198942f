package game

import (
	"iter"
	"unicode/utf8"
)

// Skeletonize replaces the character starting at byte offset i with Mask.
// The caller must make sure word[i] is a vowel.
func Skeletonize(word string, i int) string {
	_, size := utf8.DecodeRuneInString(word[i:])
	return word[:i] + Mask + word[i+size:]
}

// Skeletons yields one skeleton per vowel of word, left to right.
//
//	Skeletons("skeleton") -> "sk_leton", "skel_ton", "skelet_n"
func Skeletons(word string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i, r := range word {
			if !IsVowel(r) {
				continue
			}
			if !yield(Skeletonize(word, i)) {
				return
			}
		}
	}
}
