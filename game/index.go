package game

import (
	"iter"
	"slices"
	"strings"
)

// Solution is a skeleton whose mask can be filled with every vowel.
type Solution struct {
	Skeleton string   `json:"skeleton"`
	Words    []string `json:"words"`
}

func (s Solution) String() string {
	return strings.Join(s.Words, ", ")
}

// Index groups words by skeleton and detects complete groups.
type Index struct {
	groups map[string]map[string]struct{}
}

func NewIndex() *Index {
	return &Index{groups: make(map[string]map[string]struct{})}
}

// Add inserts word into all of its skeleton groups and returns the groups
// that became complete because of it. A group completes exactly once: when
// it grows to len(Vowels) members.
func (x *Index) Add(word string) []Solution {
	var solved []Solution
	for skeleton := range Skeletons(word) {
		group, ok := x.groups[skeleton]
		if !ok {
			group = make(map[string]struct{})
			x.groups[skeleton] = group
		}
		if _, dup := group[word]; dup {
			continue
		}
		group[word] = struct{}{}

		if len(group) == len(Vowels) {
			solved = append(solved, Solution{Skeleton: skeleton, Words: sortedWords(group)})
		}
	}
	return solved
}

// Group returns the sorted members of skeleton's group, nil if unknown.
func (x *Index) Group(skeleton string) []string {
	group, ok := x.groups[skeleton]
	if !ok {
		return nil
	}
	return sortedWords(group)
}

// Len is the number of distinct skeletons seen so far.
func (x *Index) Len() int {
	return len(x.groups)
}

// Solutions yields solutions in the order they are completed by words.
// Every iteration starts from an empty Index.
func Solutions(words iter.Seq[string]) iter.Seq[Solution] {
	return func(yield func(Solution) bool) {
		idx := NewIndex()
		for word := range words {
			for _, s := range idx.Add(word) {
				if !yield(s) {
					return
				}
			}
		}
	}
}

// FindSolutions collects Solutions(words) into a slice.
func FindSolutions(words []string) []Solution {
	solutions := []Solution{}
	for s := range Solutions(slices.Values(words)) {
		solutions = append(solutions, s)
	}
	return solutions
}

func sortedWords(group map[string]struct{}) []string {
	words := make([]string, 0, len(group))
	for w := range group {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}
