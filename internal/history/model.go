package history

import (
	"time"
	"unicode/utf8"
)

// MaxTextLength caps the OCR text stored with a record.
const MaxTextLength = 2000

// DefaultListLimit caps how many records a history view shows.
const DefaultListLimit = 50

// GuestUserID keys the process-local fallback bucket for anonymous sessions
// that send no session identifier. Guest records are non-persistent.
const GuestUserID = "guest"

// maxGuestSession caps client-supplied session identifiers.
const maxGuestSession = 64

// GuestKey derives the fallback-bucket key for an anonymous session. Each
// client session gets its own bucket; without an identifier everything lands
// in the shared default.
func GuestKey(session string) string {
	if session == "" {
		return GuestUserID
	}
	if len(session) > maxGuestSession {
		session = session[:maxGuestSession]
	}
	return GuestUserID + ":" + session
}

// Truncate caps s at MaxTextLength bytes without splitting a multi-byte
// character, so the stored text stays valid UTF-8.
func Truncate(s string) string {
	if len(s) <= MaxTextLength {
		return s
	}
	cut := MaxTextLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// ScanRecord is one completed ingredient scan. Records are append-only and
// immutable; they are removed only by a bulk clear.
type ScanRecord struct {
	ID              string    `json:"id"`
	UserID          string    `json:"-"`
	CreatedAt       time.Time `json:"timestamp"`
	IngredientsText string    `json:"ingredients_text"`
	AllergiesFound  []string  `json:"allergies_found"`
	HarmfulNotes    []string  `json:"harmful_notes"`
	ImageURL        string    `json:"image_url,omitempty"`
}
