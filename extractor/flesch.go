package extractor

import (
	"strings"
	"unicode"
)

// fleschReadingEase estimates the Flesch reading-ease score (0-100, higher
// is easier) for the given text. Returns false when the text is too short
// to score meaningfully.
func fleschReadingEase(text string) (float64, bool) {
	words := strings.Fields(text)
	if len(words) < 30 {
		return 0, false
	}

	sentences := countSentences(text)
	if sentences == 0 {
		sentences = 1
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	score := 206.835 -
		1.015*(float64(len(words))/float64(sentences)) -
		84.6*(float64(syllables)/float64(len(words)))

	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}
	return score, true
}

func countSentences(text string) int {
	n := 0
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			n++
		}
	}
	return n
}

// countSyllables approximates syllables as runs of consecutive vowels,
// with a silent trailing 'e' discounted.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
