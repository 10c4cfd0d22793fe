package domain

import "time"

// Preset is a named, reusable configuration describing desired password
// characteristics. Presets belong to exactly one user and every read or
// write is scoped by that ownership.
type Preset struct {
	ID     string
	UserID string
	Name   string

	// Length is the desired password length, never below MinPresetLength.
	Length int64

	IncludeLowercase bool
	IncludeUppercase bool
	IncludeNumbers   bool
	IncludeSymbols   bool
	ExcludeSimilar   bool

	// CustomSymbols overrides the symbol set when non-nil.
	CustomSymbols *string
	Notes         *string

	// IsDefault marks the preset the client UI preselects. More than one
	// default per user is deliberately tolerated at this layer.
	IsDefault bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MinPresetLength is the smallest password length a preset may request.
const MinPresetLength = 4
