package generator

import "strings"

const (
	// maxWords caps the dictionary words in one memorable password.
	maxWords = 3

	// wordBudget is the share of requested length one word accounts for when
	// deciding how many words to draw.
	wordBudget = 6
)

// generateMemorable builds a word-based password: up to three dictionary
// words drawn with replacement, topped up with number/symbol filler, cut to
// the exact requested length. No complexity check applies in this mode.
func generateMemorable(cfg Config) (string, error) {
	wordCount := cfg.Length / wordBudget
	if wordCount > maxWords {
		wordCount = maxWords
	}

	var b strings.Builder
	b.Grow(cfg.Length)
	for i := 0; i < wordCount; i++ {
		j, err := randIndex(len(wordList))
		if err != nil {
			return "", err
		}
		b.WriteString(wordList[j])
	}

	// Top up from the enabled number/symbol classes. With neither enabled
	// there is nothing to fill from and the result stays short of the
	// requested length.
	var filler string
	if cfg.Numbers {
		filler += cfg.workingSet(NumberChars)
	}
	if cfg.Symbols {
		filler += cfg.workingSet(SymbolChars)
	}
	if filler != "" {
		for b.Len() < cfg.Length {
			ch, err := randChar(filler)
			if err != nil {
				return "", err
			}
			b.WriteByte(ch)
		}
	}

	out := b.String()
	if len(out) > cfg.Length {
		// Drawn words may overshoot; cutting mid-word is accepted here.
		out = out[:cfg.Length]
	}
	return out, nil
}
