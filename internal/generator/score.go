package generator

import "math"

// Strength is the discrete label attached to a score.
type Strength string

const (
	StrengthWeak       Strength = "Weak"
	StrengthMedium     Strength = "Medium"
	StrengthStrong     Strength = "Strong"
	StrengthVeryStrong Strength = "Very Strong"
)

// Per-class pool sizes for the entropy estimate. The symbol pool uses the
// conventional 32-character printable set rather than the exact generation
// charset.
const (
	lowerPool  = 26
	upperPool  = 26
	digitPool  = 10
	symbolPool = 32
)

// Rating is the scorer's verdict on a password.
type Rating struct {
	Score       int
	Label       Strength
	EntropyBits float64
}

// ClampedScore bounds the score to the 0..100 range display meters expect.
// The raw score stays unclamped on the Rating itself.
func (r Rating) ClampedScore() int {
	if r.Score > 100 {
		return 100
	}
	if r.Score < 0 {
		return 0
	}
	return r.Score
}

// Score rates a password. The score is additive over independent tests of
// length, character variety and estimated entropy. It is deterministic and
// depends only on the password itself, never on the config that produced it:
// class membership is decided by fixed character ranges, with anything
// non-alphanumeric counting as a symbol.
func Score(password string) Rating {
	var score int

	switch {
	case len(password) >= 16:
		score += 25
	case len(password) >= 12:
		score += 15
	case len(password) >= 8:
		score += 10
	default:
		score += 5
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	if hasLower {
		score += 15
	}
	if hasUpper {
		score += 15
	}
	if hasDigit {
		score += 15
	}
	if hasSymbol {
		score += 20
	}

	pool := 0
	if hasLower {
		pool += lowerPool
	}
	if hasUpper {
		pool += upperPool
	}
	if hasDigit {
		pool += digitPool
	}
	if hasSymbol {
		pool += symbolPool
	}

	// Entropy of the implied search space: length * log2(pool).
	var entropy float64
	if pool > 0 {
		entropy = float64(len(password)) * math.Log2(float64(pool))
	}

	switch {
	case entropy > 80:
		score += 10
	case entropy > 60:
		score += 5
	}

	return Rating{
		Score:       score,
		Label:       labelFor(score),
		EntropyBits: entropy,
	}
}

// labelFor maps a numeric score to its strength band.
func labelFor(score int) Strength {
	switch {
	case score >= 80:
		return StrengthVeryStrong
	case score >= 60:
		return StrengthStrong
	case score >= 40:
		return StrengthMedium
	default:
		return StrengthWeak
	}
}
