package domain

import "time"

// GeneratedPassword is a log entry for one password-generation event,
// optionally linked to the preset it was generated from. Records are
// written once and never mutated.
//
// EncryptedValue is opaque to this service: callers encrypt before sending
// and decrypt after fetching. Nothing here inspects or validates it.
type GeneratedPassword struct {
	ID     string
	UserID string

	// PresetID references the owning user's preset, nil when the password
	// was generated ad hoc. Survives preset deletion as nil.
	PresetID *string

	EncryptedValue []byte
	HintLabel      *string
	Length         *int64

	WasCopied    bool
	LastCopiedAt *time.Time

	CreatedAt time.Time
}
