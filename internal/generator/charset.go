package generator

import "strings"

// Canonical character classes. Fixed data, never mutated after init.
const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	NumberChars    = "0123456789"
	SymbolChars    = "!@#$%^&*()-_=+[]{}|;:,.<>?"

	// SimilarChars are visually ambiguous characters dropped from the working
	// pool when Config.ExcludeSimilar is set.
	SimilarChars = "O0lI1"
)

// wordList feeds memorable mode. Words are capitalized so word-based
// passwords carry mixed case without further transformation.
var wordList = []string{
	"Amber", "Breeze", "Candle", "Dragon", "Ember", "Falcon",
	"Garden", "Harbor", "Island", "Jungle", "Kernel", "Lantern",
	"Meadow", "Nectar", "Orchid", "Pepper", "Quartz", "River",
	"Sunset", "Timber", "Velvet", "Willow", "Yonder", "Zephyr",
}

// charClass ties a canonical class to its Config flag. The complexity check
// and the guaranteed build both walk this registry in order.
type charClass struct {
	chars   string
	enabled func(Config) bool
}

var classes = []charClass{
	{UppercaseChars, func(c Config) bool { return c.Uppercase }},
	{LowercaseChars, func(c Config) bool { return c.Lowercase }},
	{NumberChars, func(c Config) bool { return c.Numbers }},
	{SymbolChars, func(c Config) bool { return c.Symbols }},
}

// stripSimilar returns chars with every character from SimilarChars removed.
// No class empties out under filtering, so a validated config always yields a
// non-empty pool.
func stripSimilar(chars string) string {
	var b strings.Builder
	b.Grow(len(chars))
	for i := 0; i < len(chars); i++ {
		if !strings.ContainsRune(SimilarChars, rune(chars[i])) {
			b.WriteByte(chars[i])
		}
	}
	return b.String()
}
