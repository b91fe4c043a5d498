package types

import (
	"errors"
	"time"
)

// ErrServiceUnavailable marks a recognition or suggestion-chat call that
// was rejected or timed out. Callers check it with errors.Is to tell a
// failed call apart from a successful-but-empty result.
var ErrServiceUnavailable = errors.New("external service unavailable")

// Candidate is one recognition result for an imaged shelf. ExpiryDate is
// the raw text returned by the service; unparsable text is treated as no
// expiry.
type Candidate struct {
	Name       string  `json:"name"`
	Quantity   float64 `json:"qty"`
	Unit       Unit    `json:"unit"`
	ExpiryDate string  `json:"expDate,omitempty"`
	Confidence float64 `json:"confidence"`
}

// expiryLayouts are the date formats accepted from recognition output.
var expiryLayouts = []string{time.RFC3339, "2006-01-02"}

// ItemInput converts the candidate into an item creation input for the
// given shelf. An absent or unparsable expiry date becomes no expiry.
func (c Candidate) ItemInput(shelfID string) AddItemInput {
	in := AddItemInput{
		ShelfID:  shelfID,
		Name:     c.Name,
		Unit:     c.Unit,
		Quantity: c.Quantity,
	}
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, c.ExpiryDate); err == nil {
			in.ExpiryDate = &t
			break
		}
	}
	return in
}

// RecognitionResult is the output of one recognition call.
type RecognitionResult struct {
	Candidates []Candidate `json:"candidates"`
	Note       string      `json:"note"`
}

// ChatResponse is the output of one suggestion-chat call. Suggestions may
// be empty on success; that is not a failure.
type ChatResponse struct {
	Reply       string       `json:"reply"`
	Suggestions []Suggestion `json:"suggestions"`
}
