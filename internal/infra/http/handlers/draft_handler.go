package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aishnar/aishnar-leads/internal/form"
	"github.com/aishnar/aishnar-leads/internal/infra/http/middleware"
	"github.com/aishnar/aishnar-leads/internal/usecase"
)

// DraftHandler serves the multi-section form's server-held drafts.
type DraftHandler struct {
	Store    *form.Store
	SubmitUC *usecase.SubmitLeadUseCase
}

func NewDraftHandler(store *form.Store, submitUC *usecase.SubmitLeadUseCase) *DraftHandler {
	return &DraftHandler{
		Store:    store,
		SubmitUC: submitUC,
	}
}

func (h *DraftHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	id, draft := h.Store.Create()
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":    id,
		"draft": draft,
	})
}

func (h *DraftHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var snapshot form.Draft
	err := h.Store.Update(id, func(d *form.Draft) error {
		snapshot = *d
		return nil
	})
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "draft not found"})
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

// DraftPatch is one edit operation: either a field update or a
// business-problem toggle.
type DraftPatch struct {
	Field         string          `json:"field,omitempty"`
	Value         json.RawMessage `json:"value,omitempty"`
	ToggleProblem string          `json:"toggle_problem,omitempty"`
}

func (h *DraftHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch DraftPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}

	var snapshot form.Draft
	err := h.Store.Update(id, func(d *form.Draft) error {
		if patch.ToggleProblem != "" {
			if err := d.ToggleProblem(patch.ToggleProblem); err != nil {
				return err
			}
		} else if patch.Field == "consent" {
			var v bool
			if err := json.Unmarshal(patch.Value, &v); err != nil {
				return err
			}
			if err := d.SetConsent(v); err != nil {
				return err
			}
		} else {
			var v string
			if err := json.Unmarshal(patch.Value, &v); err != nil {
				return err
			}
			if err := d.SetField(patch.Field, v); err != nil {
				return err
			}
		}
		snapshot = *d
		return nil
	})

	switch {
	case errors.Is(err, form.ErrDraftNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "draft not found"})
		return
	case errors.Is(err, form.ErrUnknownField):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown field: " + patch.Field})
		return
	case errors.Is(err, form.ErrAlreadySubmitted):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "draft already submitted"})
		return
	case err != nil:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid patch"})
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

func (h *DraftHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var output *usecase.SubmitLeadOutput
	var fieldErrors map[string]string
	err := h.Store.Update(id, func(d *form.Draft) error {
		out, err := d.Submit(r.Context(), h.SubmitUC)
		if err != nil {
			fieldErrors = d.Errors
			return err
		}
		output = out
		return nil
	})

	switch {
	case errors.Is(err, form.ErrDraftNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "draft not found"})
		return
	case errors.Is(err, form.ErrAlreadySubmitted):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "draft already submitted"})
		return
	case err != nil:
		var verrs usecase.ValidationErrors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusUnprocessableEntity, SubmitLeadResponse{
				Success: false,
				Errors:  fieldErrors,
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, SubmitLeadResponse{
			Success: false,
			Message: "Submission failed. Please try again later.",
		})
		return
	}

	// Submitted drafts are terminal; drop them instead of letting the TTL
	// sweep collect them.
	h.Store.Remove(id)

	middleware.RecordLeadCaptured()
	writeJSON(w, http.StatusCreated, SubmitLeadResponse{
		Success:   true,
		ID:        output.ID,
		Status:    output.Status,
		CreatedAt: &output.CreatedAt,
	})
}
