package http

import (
	"net/http"

	"github.com/padlockhq/padlock/internal/presets/domain"
	"github.com/padlockhq/padlock/internal/presets/service"
	"github.com/padlockhq/padlock/pkg/httpx"
	"github.com/padlockhq/padlock/pkg/presetsdk"
)

// PasswordsHandler handles the generated-password log endpoints.
type PasswordsHandler struct {
	PasswordService *service.PasswordService
}

func toGeneratedPasswordInfo(g domain.GeneratedPassword) presetsdk.GeneratedPasswordInfo {
	return presetsdk.GeneratedPasswordInfo{
		ID:             g.ID,
		PresetID:       g.PresetID,
		EncryptedValue: g.EncryptedValue,
		HintLabel:      g.HintLabel,
		Length:         g.Length,
		WasCopied:      g.WasCopied,
		LastCopiedAt:   g.LastCopiedAt,
		CreatedAt:      g.CreatedAt,
	}
}

// HandleLog handles POST /v1/passwords
//
//	@Summary		Log Generated Password
//	@Description	Records one password-generation event. The encrypted_value is expected to be encrypted by the caller
//	@Description	already and is stored as an opaque blob. A supplied preset_id must reference the caller's own preset.
//	@Tags			Passwords
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		presetsdk.LogPasswordRequest	true	"Generation event"
//	@Success		201		{object}	presetsdk.Envelope				"Created record"
//	@Failure		400		{object}	presetsdk.Envelope				"VALIDATION_ERROR"
//	@Failure		401		{object}	presetsdk.Envelope				"UNAUTHORIZED"
//	@Failure		404		{object}	presetsdk.Envelope				"NOT_FOUND (foreign or missing preset)"
//	@Failure		500		{object}	presetsdk.Envelope				"SERVER_ERROR"
//	@Router			/v1/passwords [post].
func (h *PasswordsHandler) HandleLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req presetsdk.LogPasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		presetsdk.ErrValidation.WithMessage("invalid JSON in request body").WriteError(w)
		return
	}

	record, err := h.PasswordService.LogGeneratedPassword(r.Context(), userID,
		service.LogPasswordParams{
			PresetID:       req.PresetID,
			EncryptedValue: req.EncryptedValue,
			HintLabel:      req.HintLabel,
			Length:         req.Length,
			WasCopied:      req.WasCopied,
			LastCopiedAt:   req.LastCopiedAt,
		})
	if err != nil {
		writePresetError(w, r, err)
		return
	}

	writeData(w, http.StatusCreated, toGeneratedPasswordInfo(record))
}

// HandleList handles GET /v1/passwords
//
//	@Summary		List Generated Passwords
//	@Description	Returns the authenticated user's logged records, newest first. An optional preset_id filter is
//	@Description	ownership-checked before it is applied.
//	@Tags			Passwords
//	@Produce		json
//	@Security		BearerAuth
//	@Param			preset_id	query		string				false	"Filter to one owned preset"
//	@Success		200			{object}	presetsdk.Envelope	"Records and count"
//	@Failure		401			{object}	presetsdk.Envelope	"UNAUTHORIZED"
//	@Failure		404			{object}	presetsdk.Envelope	"NOT_FOUND (foreign or missing preset)"
//	@Failure		500			{object}	presetsdk.Envelope	"SERVER_ERROR"
//	@Router			/v1/passwords [get].
func (h *PasswordsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var presetID *string
	if raw := r.URL.Query().Get("preset_id"); raw != "" {
		presetID = &raw
	}

	records, err := h.PasswordService.ListGeneratedPasswords(r.Context(), userID, presetID)
	if err != nil {
		writePresetError(w, r, err)
		return
	}

	infos := make([]presetsdk.GeneratedPasswordInfo, len(records))
	for i, g := range records {
		infos[i] = toGeneratedPasswordInfo(g)
	}

	writeData(w, http.StatusOK, presetsdk.ListPasswordsResponse{
		Passwords: infos,
		Count:     len(infos),
	})
}
