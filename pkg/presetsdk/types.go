package presetsdk

import "time"

// Envelope is the uniform result wrapper every endpoint responds with.
// Data is present on success, Err on failure.
type Envelope struct {
	Success bool    `json:"success"`
	Data    any     `json:"data,omitempty"`
	Err     *APIErr `json:"error,omitempty"`
}

// APIErr is the serialized error payload inside a failed envelope.
type APIErr struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatePresetRequest creates a new password preset. Omitted flags use the
// documented defaults: every include flag true, exclude_similar false,
// is_default false.
type CreatePresetRequest struct {
	Name   string `json:"name"`
	Length int64  `json:"length"`

	IncludeLowercase *bool `json:"include_lowercase,omitempty"`
	IncludeUppercase *bool `json:"include_uppercase,omitempty"`
	IncludeNumbers   *bool `json:"include_numbers,omitempty"`
	IncludeSymbols   *bool `json:"include_symbols,omitempty"`
	ExcludeSimilar   *bool `json:"exclude_similar,omitempty"`

	CustomSymbols *string `json:"custom_symbols,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	IsDefault     *bool   `json:"is_default,omitempty"`
}

// UpdatePresetRequest partially updates a preset. Every field is optional
// but at least one must be supplied.
type UpdatePresetRequest struct {
	Name   *string `json:"name,omitempty"`
	Length *int64  `json:"length,omitempty"`

	IncludeLowercase *bool `json:"include_lowercase,omitempty"`
	IncludeUppercase *bool `json:"include_uppercase,omitempty"`
	IncludeNumbers   *bool `json:"include_numbers,omitempty"`
	IncludeSymbols   *bool `json:"include_symbols,omitempty"`
	ExcludeSimilar   *bool `json:"exclude_similar,omitempty"`

	CustomSymbols *string `json:"custom_symbols,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	IsDefault     *bool   `json:"is_default,omitempty"`
}

// PresetInfo is the API representation of a preset.
type PresetInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Length int64  `json:"length"`

	IncludeLowercase bool `json:"include_lowercase"`
	IncludeUppercase bool `json:"include_uppercase"`
	IncludeNumbers   bool `json:"include_numbers"`
	IncludeSymbols   bool `json:"include_symbols"`
	ExcludeSimilar   bool `json:"exclude_similar"`

	CustomSymbols *string `json:"custom_symbols,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	IsDefault     bool    `json:"is_default"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListPresetsResponse carries a page-less list plus its count.
type ListPresetsResponse struct {
	Presets []PresetInfo `json:"presets"`
	Count   int          `json:"count"`
}

// LogPasswordRequest records one password-generation event. EncryptedValue
// must already be encrypted by the caller; it travels as base64 and is
// never inspected server-side.
type LogPasswordRequest struct {
	PresetID       *string    `json:"preset_id,omitempty"`
	EncryptedValue []byte     `json:"encrypted_value,omitempty"`
	HintLabel      *string    `json:"hint_label,omitempty"`
	Length         *int64     `json:"length,omitempty"`
	WasCopied      *bool      `json:"was_copied,omitempty"`
	LastCopiedAt   *time.Time `json:"last_copied_at,omitempty"`
}

// GeneratedPasswordInfo is the API representation of a logged record.
type GeneratedPasswordInfo struct {
	ID             string     `json:"id"`
	PresetID       *string    `json:"preset_id,omitempty"`
	EncryptedValue []byte     `json:"encrypted_value,omitempty"`
	HintLabel      *string    `json:"hint_label,omitempty"`
	Length         *int64     `json:"length,omitempty"`
	WasCopied      bool       `json:"was_copied"`
	LastCopiedAt   *time.Time `json:"last_copied_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ListPasswordsResponse carries the records plus their count.
type ListPasswordsResponse struct {
	Passwords []GeneratedPasswordInfo `json:"passwords"`
	Count     int                     `json:"count"`
}

// HealthChecks reports per-dependency status on the readiness endpoint.
type HealthChecks struct {
	Database string `json:"database"`
	Verifier string `json:"verifier"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
