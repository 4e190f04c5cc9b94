package generator

import (
	"strings"
	"testing"
	"unicode"
)

func TestGenerateMemorableExactLength(t *testing.T) {
	// With a filler class enabled the output always lands on the requested
	// length exactly, whatever the drawn words add up to.
	for length := 1; length <= 40; length++ {
		cfg := Config{
			Length:    length,
			Lowercase: true,
			Numbers:   true,
			Symbols:   true,
			Memorable: true,
		}
		password, err := Generate(cfg)
		if err != nil {
			t.Fatalf("Generate() unexpected error at length %d: %v", length, err)
		}
		if len(password) != length {
			t.Errorf("Generate() length = %d, want %d (%q)", len(password), length, password)
		}
	}
}

func TestGenerateMemorableNeverLonger(t *testing.T) {
	// Without numbers or symbols there is nothing to fill with; the output
	// may fall short of the requested length but never exceeds it.
	for length := 1; length <= 40; length++ {
		cfg := Config{
			Length:    length,
			Uppercase: true,
			Lowercase: true,
			Memorable: true,
		}
		password, err := Generate(cfg)
		if err != nil {
			t.Fatalf("Generate() unexpected error at length %d: %v", length, err)
		}
		if len(password) > length {
			t.Errorf("Generate() length = %d, exceeds requested %d (%q)", len(password), length, password)
		}
	}
}

func TestGenerateMemorableShortWithoutFiller(t *testing.T) {
	// Below one word budget no words are drawn, and with no filler classes
	// the result is empty rather than padded.
	cfg := Config{
		Length:    5,
		Lowercase: true,
		Memorable: true,
	}
	password, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if password != "" {
		t.Errorf("Generate() = %q, want empty output below the word budget with no filler", password)
	}
}

func TestGenerateMemorableStartsWithWord(t *testing.T) {
	// At one word budget or more the output opens with a capitalized
	// dictionary word.
	cfg := Config{
		Length:    12,
		Lowercase: true,
		Numbers:   true,
		Memorable: true,
	}

	for i := 0; i < 20; i++ {
		password, err := Generate(cfg)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if password == "" || !unicode.IsUpper(rune(password[0])) {
			t.Errorf("password %q should start with a capitalized word", password)
		}
	}
}

func TestGenerateMemorableWordsOnlyLetters(t *testing.T) {
	// Without filler classes every character comes from the word list.
	cfg := Config{
		Length:    18,
		Uppercase: true,
		Lowercase: true,
		Memorable: true,
	}

	for i := 0; i < 20; i++ {
		password, err := Generate(cfg)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		for _, r := range password {
			if !unicode.IsLetter(r) {
				t.Errorf("password %q contains non-letter %q with no filler classes", password, r)
			}
		}
	}
}

func TestGenerateMemorableFillerHonorsSimilarFilter(t *testing.T) {
	// The similar filter applies to filler draws. Words are used verbatim, so
	// only non-letter characters are checked here.
	cfg := Config{
		Length:         30,
		Lowercase:      true,
		Numbers:        true,
		ExcludeSimilar: true,
		Memorable:      true,
	}

	for i := 0; i < 30; i++ {
		password, err := Generate(cfg)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		for _, r := range password {
			if unicode.IsLetter(r) {
				continue
			}
			if strings.ContainsRune(SimilarChars, r) {
				t.Errorf("password %q has similar filler character %q", password, r)
			}
		}
	}
}

func TestGenerateMemorableRequiresCharacterType(t *testing.T) {
	cfg := Config{
		Length:    12,
		Memorable: true,
	}
	if _, err := Generate(cfg); err != ErrNoCharacterTypes {
		t.Errorf("Generate() error = %v, want ErrNoCharacterTypes", err)
	}
}

func TestGenerateMemorableSingleWordBudget(t *testing.T) {
	// Length 11 buys exactly one word and no filler classes are enabled, so
	// the output is a single dictionary word, untruncated.
	cfg := Config{
		Length:    11,
		Uppercase: true,
		Lowercase: true,
		Memorable: true,
	}

	known := make(map[string]bool, len(wordList))
	for _, w := range wordList {
		known[w] = true
	}

	for i := 0; i < 30; i++ {
		password, err := Generate(cfg)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if !known[password] {
			t.Errorf("password %q is not a single dictionary word", password)
		}
	}
}

func TestGenerateMemorableCapsAtThreeWords(t *testing.T) {
	// A very long request still draws at most three words; with no filler the
	// output cannot exceed three of the longest words.
	cfg := Config{
		Length:    64,
		Uppercase: true,
		Lowercase: true,
		Memorable: true,
	}

	longest := 0
	for _, w := range wordList {
		if len(w) > longest {
			longest = len(w)
		}
	}

	for i := 0; i < 20; i++ {
		password, err := Generate(cfg)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if len(password) > 3*longest {
			t.Errorf("password %q longer than three words", password)
		}
	}
}
