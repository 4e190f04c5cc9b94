package generator

import "errors"

// uniqueAttempts is the retry budget for GenerateUnique.
const uniqueAttempts = 10

// ErrRetriesExhausted means every candidate within the retry budget collided
// with the caller's history.
var ErrRetriesExhausted = errors.New("could not generate a unique password within the retry budget")

// GenerateUnique generates passwords until isUnique accepts one. Attempts are
// independent: each draws fresh randomness, nothing is repaired or reused
// between them. After ten rejected candidates it gives up with
// ErrRetriesExhausted. Config validation errors surface on the first attempt
// and are never retried.
func GenerateUnique(cfg Config, isUnique func(string) bool) (string, error) {
	for attempt := 0; attempt < uniqueAttempts; attempt++ {
		password, err := Generate(cfg)
		if err != nil {
			return "", err
		}
		if isUnique(password) {
			return password, nil
		}
	}
	return "", ErrRetriesExhausted
}
