package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/padlockhq/padlock/internal/presets/domain"
	"github.com/padlockhq/padlock/internal/presets/service"
	"github.com/padlockhq/padlock/pkg/httpx"
	"github.com/padlockhq/padlock/pkg/presetsdk"
	"github.com/padlockhq/padlock/pkg/slogx"
)

// PresetsHandler handles the preset CRUD endpoints.
type PresetsHandler struct {
	PresetService *service.PresetService
}

// writeData writes a success envelope.
func writeData(w http.ResponseWriter, code int, data any) {
	httpx.WriteJSON(w, code, presetsdk.Envelope{Success: true, Data: data})
}

func toPresetInfo(p domain.Preset) presetsdk.PresetInfo {
	return presetsdk.PresetInfo{
		ID:               p.ID,
		Name:             p.Name,
		Length:           p.Length,
		IncludeLowercase: p.IncludeLowercase,
		IncludeUppercase: p.IncludeUppercase,
		IncludeNumbers:   p.IncludeNumbers,
		IncludeSymbols:   p.IncludeSymbols,
		ExcludeSimilar:   p.ExcludeSimilar,
		CustomSymbols:    p.CustomSymbols,
		Notes:            p.Notes,
		IsDefault:        p.IsDefault,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// requireUser pulls the authenticated user id out of the request context.
// The authn middleware guarantees it for registered routes; the empty check
// guards against a route accidentally registered without the guard.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		presetsdk.ErrUnauthorized.WriteError(w)
		return "", false
	}
	return userID, true
}

// writePresetError maps service errors onto the API error taxonomy.
func writePresetError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrPresetNotFound):
		presetsdk.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrNameRequired):
		presetsdk.ErrValidation.WithMessage("name must not be empty").WriteError(w)
	case errors.Is(err, service.ErrLengthTooShort):
		presetsdk.ErrValidation.WithMessage("length must be at least 4").WriteError(w)
	case errors.Is(err, service.ErrNoFieldsToUpdate):
		presetsdk.ErrValidation.WithMessage("at least one field must be supplied").WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("preset operation failed", "error", err)
		presetsdk.ErrServerError.WriteError(w)
	}
}

// HandleCreate handles POST /v1/presets
//
//	@Summary		Create Password Preset
//	@Description	Creates a reusable password-generation preset for the authenticated user.
//	@Description	Character-class flags default to true except exclude_similar; is_default defaults to false.
//	@Tags			Presets
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		presetsdk.CreatePresetRequest	true	"Preset definition"
//	@Success		201		{object}	presetsdk.Envelope				"Created preset"
//	@Failure		400		{object}	presetsdk.Envelope				"VALIDATION_ERROR"
//	@Failure		401		{object}	presetsdk.Envelope				"UNAUTHORIZED"
//	@Failure		500		{object}	presetsdk.Envelope				"SERVER_ERROR"
//	@Router			/v1/presets [post].
func (h *PresetsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req presetsdk.CreatePresetRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		presetsdk.ErrValidation.WithMessage("invalid JSON in request body").WriteError(w)
		return
	}

	preset, err := h.PresetService.CreatePreset(r.Context(), userID, service.CreatePresetParams{
		Name:             req.Name,
		Length:           req.Length,
		IncludeLowercase: req.IncludeLowercase,
		IncludeUppercase: req.IncludeUppercase,
		IncludeNumbers:   req.IncludeNumbers,
		IncludeSymbols:   req.IncludeSymbols,
		ExcludeSimilar:   req.ExcludeSimilar,
		CustomSymbols:    req.CustomSymbols,
		Notes:            req.Notes,
		IsDefault:        req.IsDefault,
	})
	if err != nil {
		writePresetError(w, r, err)
		return
	}

	writeData(w, http.StatusCreated, toPresetInfo(preset))
}

// HandleUpdate handles PATCH /v1/presets/{id}
//
//	@Summary		Update Password Preset
//	@Description	Partially updates an owned preset. At least one field must be supplied; omitted fields are left unchanged.
//	@Tags			Presets
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Preset ID (ULID)"
//	@Param			request	body		presetsdk.UpdatePresetRequest	true	"Fields to change"
//	@Success		200		{object}	presetsdk.Envelope				"Updated preset"
//	@Failure		400		{object}	presetsdk.Envelope				"VALIDATION_ERROR"
//	@Failure		401		{object}	presetsdk.Envelope				"UNAUTHORIZED"
//	@Failure		404		{object}	presetsdk.Envelope				"NOT_FOUND"
//	@Failure		500		{object}	presetsdk.Envelope				"SERVER_ERROR"
//	@Router			/v1/presets/{id} [patch].
func (h *PresetsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req presetsdk.UpdatePresetRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		presetsdk.ErrValidation.WithMessage("invalid JSON in request body").WriteError(w)
		return
	}

	preset, err := h.PresetService.UpdatePreset(r.Context(), userID, r.PathValue("id"),
		service.UpdatePresetParams{
			Name:             req.Name,
			Length:           req.Length,
			IncludeLowercase: req.IncludeLowercase,
			IncludeUppercase: req.IncludeUppercase,
			IncludeNumbers:   req.IncludeNumbers,
			IncludeSymbols:   req.IncludeSymbols,
			ExcludeSimilar:   req.ExcludeSimilar,
			CustomSymbols:    req.CustomSymbols,
			Notes:            req.Notes,
			IsDefault:        req.IsDefault,
		})
	if err != nil {
		writePresetError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, toPresetInfo(preset))
}

// HandleGet handles GET /v1/presets/{id}
//
//	@Summary		Get Password Preset
//	@Description	Returns a single owned preset.
//	@Tags			Presets
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string				true	"Preset ID (ULID)"
//	@Success		200	{object}	presetsdk.Envelope	"Preset"
//	@Failure		401	{object}	presetsdk.Envelope	"UNAUTHORIZED"
//	@Failure		404	{object}	presetsdk.Envelope	"NOT_FOUND"
//	@Failure		500	{object}	presetsdk.Envelope	"SERVER_ERROR"
//	@Router			/v1/presets/{id} [get].
func (h *PresetsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	preset, err := h.PresetService.GetPreset(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		writePresetError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, toPresetInfo(preset))
}

// HandleList handles GET /v1/presets
//
//	@Summary		List Password Presets
//	@Description	Returns the authenticated user's presets, newest first. Set defaults_only=true to filter to default presets.
//	@Tags			Presets
//	@Produce		json
//	@Security		BearerAuth
//	@Param			defaults_only	query		bool				false	"Only presets flagged is_default"
//	@Success		200				{object}	presetsdk.Envelope	"Presets and count"
//	@Failure		401				{object}	presetsdk.Envelope	"UNAUTHORIZED"
//	@Failure		500				{object}	presetsdk.Envelope	"SERVER_ERROR"
//	@Router			/v1/presets [get].
func (h *PresetsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	defaultsOnly := false
	if raw := r.URL.Query().Get("defaults_only"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			presetsdk.ErrValidation.WithMessage("defaults_only must be a boolean").WriteError(w)
			return
		}
		defaultsOnly = parsed
	}

	presets, err := h.PresetService.ListPresets(r.Context(), userID, defaultsOnly)
	if err != nil {
		writePresetError(w, r, err)
		return
	}

	infos := make([]presetsdk.PresetInfo, len(presets))
	for i, p := range presets {
		infos[i] = toPresetInfo(p)
	}

	writeData(w, http.StatusOK, presetsdk.ListPresetsResponse{
		Presets: infos,
		Count:   len(infos),
	})
}

// HandleDelete handles DELETE /v1/presets/{id}
//
//	@Summary		Delete Password Preset
//	@Description	Deletes an owned preset. Logged password records that referenced it are kept with their preset link cleared.
//	@Tags			Presets
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Preset ID (ULID)"
//	@Success		204	"Preset deleted"
//	@Failure		401	{object}	presetsdk.Envelope	"UNAUTHORIZED"
//	@Failure		404	{object}	presetsdk.Envelope	"NOT_FOUND"
//	@Failure		500	{object}	presetsdk.Envelope	"SERVER_ERROR"
//	@Router			/v1/presets/{id} [delete].
func (h *PresetsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.PresetService.DeletePreset(r.Context(), userID, r.PathValue("id")); err != nil {
		writePresetError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
