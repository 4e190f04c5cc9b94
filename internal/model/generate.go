package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and
// explicit false for the character type flags; the remaining options default
// off.
type GenerateRequest struct {
	Length         int   `json:"length"`
	Uppercase      *bool `json:"uppercase"`
	Lowercase      *bool `json:"lowercase"`
	Numbers        *bool `json:"numbers"`
	Symbols        *bool `json:"symbols"`
	ExcludeSimilar bool  `json:"exclude_similar"`
	Memorable      bool  `json:"memorable"`
}

// StrengthResponse represents a strength rating in API responses. Score is
// clamped to 0..100 for display meters.
type StrengthResponse struct {
	Score       int     `json:"score"`
	Label       string  `json:"label"`
	EntropyBits float64 `json:"entropy_bits"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Strength StrengthResponse `json:"strength"`
}

// ScoreRequest represents a strength scoring request for a caller-supplied
// password.
type ScoreRequest struct {
	Password string `json:"password"`
}
