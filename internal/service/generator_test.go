package service

import (
	"errors"
	"testing"

	"github.com/passmint/passmint-go/internal/generator"
	"github.com/passmint/passmint-go/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
	if resp.Strength.Label != string(generator.StrengthVeryStrong) {
		t.Errorf("expected default passwords to rate Very Strong, got %q", resp.Strength.Label)
	}
	if resp.Strength.Score < 0 || resp.Strength.Score > 100 {
		t.Errorf("expected clamped score in 0..100, got %d", resp.Strength.Score)
	}
	if resp.Strength.EntropyBits <= 0 {
		t.Errorf("expected positive entropy, got %f", resp.Strength.EntropyBits)
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerate_Memorable(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    24,
		Memorable: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Password) != 24 {
		t.Errorf("expected memorable password of length 24, got %d", len(resp.Password))
	}
}

func TestGenerate_LengthTooShort(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 3})
	if !errors.Is(err, ErrLengthOutOfRange) {
		t.Fatalf("expected ErrLengthOutOfRange, got %v", err)
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := NewGeneratorService()
	for _, length := range []int{65, 200} {
		_, err := svc.Generate(model.GenerateRequest{Length: length})
		if !errors.Is(err, ErrLengthOutOfRange) {
			t.Fatalf("length %d: expected ErrLengthOutOfRange, got %v", length, err)
		}
	}
}

func TestGenerate_NegativeLength(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: -1})
	if !errors.Is(err, ErrLengthOutOfRange) {
		t.Fatalf("expected ErrLengthOutOfRange, got %v", err)
	}
}

func TestGenerate_NoCharacterTypes(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{
		Length:    16,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if !errors.Is(err, generator.ErrNoCharacterTypes) {
		t.Fatalf("expected ErrNoCharacterTypes, got %v", err)
	}
}

func TestScore_KnownPasswords(t *testing.T) {
	svc := NewGeneratorService()

	weak := svc.Score(model.ScoreRequest{Password: "aaaaaaaa"})
	strong := svc.Score(model.ScoreRequest{Password: "aA1!aA1!"})

	if weak.Score >= strong.Score {
		t.Errorf("expected %d (single class) < %d (all classes)", weak.Score, strong.Score)
	}
	if weak.Label != string(generator.StrengthWeak) {
		t.Errorf("expected Weak, got %q", weak.Label)
	}
	if strong.Label != string(generator.StrengthStrong) {
		t.Errorf("expected Strong, got %q", strong.Label)
	}
}

func TestScore_EmptyPassword(t *testing.T) {
	svc := NewGeneratorService()
	resp := svc.Score(model.ScoreRequest{Password: ""})
	if resp.Label != string(generator.StrengthWeak) {
		t.Errorf("expected empty password to rate Weak, got %q", resp.Label)
	}
	if resp.EntropyBits != 0 {
		t.Errorf("expected zero entropy for empty password, got %f", resp.EntropyBits)
	}
}

func TestScore_FullMarks(t *testing.T) {
	svc := NewGeneratorService()
	resp := svc.Score(model.ScoreRequest{Password: "aB3$aB3$aB3$aB3$"})
	if resp.Score != 100 {
		t.Errorf("expected top score 100, got %d", resp.Score)
	}
	if resp.Label != string(generator.StrengthVeryStrong) {
		t.Errorf("expected Very Strong, got %q", resp.Label)
	}
}
