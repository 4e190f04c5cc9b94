package generator

import (
	"math"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		wantScore int
		wantLabel Strength
	}{
		{
			// 8 chars (+10), lowercase only (+15), 37.6 bits.
			name:      "short lowercase",
			password:  "aaaaaaaa",
			wantScore: 25,
			wantLabel: StrengthWeak,
		},
		{
			// 8 chars (+10), all four classes (+65), 52.4 bits.
			name:      "short all classes",
			password:  "aA1!aA1!",
			wantScore: 75,
			wantLabel: StrengthStrong,
		},
		{
			// 12 chars (+15), all four classes (+65), 78.7 bits (+5).
			name:      "medium all classes",
			password:  "Password123!",
			wantScore: 85,
			wantLabel: StrengthVeryStrong,
		},
		{
			// 16 chars (+25), all four classes (+65), 104.9 bits (+10).
			name:      "long all classes",
			password:  "aB3$aB3$aB3$aB3$",
			wantScore: 100,
			wantLabel: StrengthVeryStrong,
		},
		{
			// 9 chars (+10), three classes (+45), 53.6 bits.
			name:      "three classes",
			password:  "Password1",
			wantScore: 55,
			wantLabel: StrengthMedium,
		},
		{
			// 12 chars (+15), lowercase only (+15), 56.4 bits.
			name:      "medium lowercase",
			password:  "abcdefghijkl",
			wantScore: 30,
			wantLabel: StrengthWeak,
		},
		{
			// 16 chars (+25), lowercase only (+15), 75.2 bits (+5).
			name:      "long lowercase",
			password:  "abcdefghijklmnop",
			wantScore: 45,
			wantLabel: StrengthMedium,
		},
		{
			// 8 chars (+10), digits only (+15), 26.6 bits.
			name:      "digits only",
			password:  "12345678",
			wantScore: 25,
			wantLabel: StrengthWeak,
		},
		{
			// 4 chars (+5), digits only (+15), 13.3 bits.
			name:      "tiny digits",
			password:  "1234",
			wantScore: 20,
			wantLabel: StrengthWeak,
		},
		{
			name:      "empty string",
			password:  "",
			wantScore: 5,
			wantLabel: StrengthWeak,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.password)
			if got.Score != tt.wantScore {
				t.Errorf("Score(%q).Score = %d, want %d", tt.password, got.Score, tt.wantScore)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Score(%q).Label = %q, want %q", tt.password, got.Label, tt.wantLabel)
			}
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	password := "xK9#mQ2$vL5@"

	first := Score(password)
	for i := 0; i < 10; i++ {
		again := Score(password)
		if again != first {
			t.Fatalf("Score() not deterministic: %+v vs %+v", again, first)
		}
	}
}

func TestScoreClassVarietyMonotonic(t *testing.T) {
	// Same length, more classes: the variety bonus must raise the score.
	low := Score("aaaaaaaa")
	high := Score("aA1!aA1!")
	if low.Score >= high.Score {
		t.Errorf("Score(%q) = %d, should be below Score(%q) = %d",
			"aaaaaaaa", low.Score, "aA1!aA1!", high.Score)
	}
}

func TestScoreEntropyGrowsWithLength(t *testing.T) {
	// Fixed composition, increasing length: entropy strictly increases.
	prev := -1.0
	for _, password := range []string{"abc", "abcdef", "abcdefgh", "abcdefghijkl", "abcdefghijklmnop"} {
		got := Score(password).EntropyBits
		if got <= prev {
			t.Errorf("EntropyBits(%q) = %f, want > %f", password, got, prev)
		}
		prev = got
	}
}

func TestScoreEntropyValue(t *testing.T) {
	// 8 lowercase characters: 8 * log2(26).
	want := 8 * math.Log2(26)
	got := Score("aaaaaaaa").EntropyBits
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("EntropyBits = %f, want %f", got, want)
	}

	// All four classes: pool of 26+26+10+32.
	want = 8 * math.Log2(94)
	got = Score("aA1!aA1!").EntropyBits
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("EntropyBits = %f, want %f", got, want)
	}
}

func TestScoreSymbolMembership(t *testing.T) {
	// Anything outside the alphanumeric ranges counts toward the symbol
	// class, including characters absent from the generation charset.
	got := Score("aaaa aaaa")
	if got.Score != 10+15+20 {
		t.Errorf("Score with space = %d, want %d", got.Score, 10+15+20)
	}
}

func TestLabelFor(t *testing.T) {
	tests := []struct {
		score int
		want  Strength
	}{
		{0, StrengthWeak},
		{39, StrengthWeak},
		{40, StrengthMedium},
		{59, StrengthMedium},
		{60, StrengthStrong},
		{79, StrengthStrong},
		{80, StrengthVeryStrong},
		{100, StrengthVeryStrong},
	}

	for _, tt := range tests {
		if got := labelFor(tt.score); got != tt.want {
			t.Errorf("labelFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestClampedScore(t *testing.T) {
	if got := (Rating{Score: 130}).ClampedScore(); got != 100 {
		t.Errorf("ClampedScore() = %d, want 100", got)
	}
	if got := (Rating{Score: -5}).ClampedScore(); got != 0 {
		t.Errorf("ClampedScore() = %d, want 0", got)
	}
	if got := (Rating{Score: 55}).ClampedScore(); got != 55 {
		t.Errorf("ClampedScore() = %d, want 55", got)
	}
}

func TestGeneratedPasswordsScoreVeryStrong(t *testing.T) {
	// 16 characters with every class enabled collects the maximum length and
	// variety bonuses; the complexity guarantee makes the class bonuses
	// certain, so every trial must rate Very Strong.
	cfg := DefaultConfig()

	for i := 0; i < 50; i++ {
		password, err := Generate(cfg)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		rating := Score(password)
		if rating.Label != StrengthVeryStrong {
			t.Errorf("Score(%q) = %+v, want Very Strong", password, rating)
		}
		if rating.Score < 80 {
			t.Errorf("Score(%q).Score = %d, want >= 80", password, rating.Score)
		}
	}
}
