package service

import (
	"errors"

	"github.com/passmint/passmint-go/internal/generator"
	"github.com/passmint/passmint-go/internal/model"
)

const (
	defaultLength = 16
	minLength     = 4
	maxLength     = 64
)

// ErrLengthOutOfRange rejects lengths outside what the API offers. The core
// generator accepts any positive length; the API keeps requests within the
// slider bounds.
var ErrLengthOutOfRange = errors.New("password length must be between 4 and 64")

// GeneratorService handles password generation business logic.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a password based on the given request and rates its
// strength.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg, err := configFromRequest(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	password, err := generator.Generate(cfg)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: ratingToResponse(generator.Score(password)),
	}, nil
}

// Score rates a caller-supplied password without storing it. Scoring never
// fails; any string, including an empty one, gets a rating.
func (s *GeneratorService) Score(req model.ScoreRequest) model.StrengthResponse {
	return ratingToResponse(generator.Score(req.Password))
}

// configFromRequest maps an API request onto a generator config, applying
// defaults (all character types on, length 16) and the API length bounds.
func configFromRequest(req model.GenerateRequest) (generator.Config, error) {
	length := req.Length
	if length == 0 {
		length = defaultLength
	}
	if length < minLength || length > maxLength {
		return generator.Config{}, ErrLengthOutOfRange
	}

	return generator.Config{
		Length:         length,
		Uppercase:      boolOrDefault(req.Uppercase, true),
		Lowercase:      boolOrDefault(req.Lowercase, true),
		Numbers:        boolOrDefault(req.Numbers, true),
		Symbols:        boolOrDefault(req.Symbols, true),
		ExcludeSimilar: req.ExcludeSimilar,
		Memorable:      req.Memorable,
	}, nil
}

// ratingToResponse converts a rating to its API shape, clamping the score for
// display meters.
func ratingToResponse(r generator.Rating) model.StrengthResponse {
	return model.StrengthResponse{
		Score:       r.ClampedScore(),
		Label:       string(r.Label),
		EntropyBits: r.EntropyBits,
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
