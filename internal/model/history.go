package model

import "time"

// HistoryEntry represents one generated password in a user's history.
type HistoryEntry struct {
	ID            int64
	UserID        int64
	Password      string
	StrengthLabel string
	CreatedAt     time.Time
}

// SaveHistoryRequest represents a request to record a password into history.
type SaveHistoryRequest struct {
	Password string `json:"password"`
}

// HistoryEntryResponse represents a single history entry in API responses.
type HistoryEntryResponse struct {
	Password      string    `json:"password"`
	StrengthLabel string    `json:"strength_label"`
	CreatedAt     time.Time `json:"created_at"`
}
