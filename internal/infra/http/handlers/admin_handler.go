package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aishnar/aishnar-leads/internal/entity"
	"github.com/aishnar/aishnar-leads/internal/infra/http/middleware"
	"github.com/aishnar/aishnar-leads/internal/usecase"
)

// AdminHandler serves the review dashboard: list/filter, triage, export.
type AdminHandler struct {
	Repo     entity.LeadRepositoryInterface
	StatusUC *usecase.UpdateLeadStatusUseCase
}

func NewAdminHandler(repo entity.LeadRepositoryInterface, statusUC *usecase.UpdateLeadStatusUseCase) *AdminHandler {
	return &AdminHandler{
		Repo:     repo,
		StatusUC: statusUC,
	}
}

type ListLeadsResponse struct {
	Leads      []entity.Lead        `json:"leads"`
	Industries []string             `json:"industries"`
	Counts     usecase.StatusCounts `json:"counts"`
}

// HandleList fetches the whole collection newest-first and filters it in
// memory; the filter menu options and stat tallies come from the unfiltered
// collection, matching what the dashboard renders.
func (h *AdminHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Repo.ListAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load leads"})
		return
	}

	filtered := usecase.FilterLeads(leads, filterFromQuery(r))

	writeJSON(w, http.StatusOK, ListLeadsResponse{
		Leads:      filtered,
		Industries: usecase.Industries(leads),
		Counts:     usecase.CountByStatus(leads),
	})
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}

	lead := entity.Lead{ID: id}
	err := h.StatusUC.Execute(r.Context(), &lead, req.Status)
	switch {
	case errors.Is(err, entity.ErrInvalidStatus):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "status must be New, Contacted or Qualified"})
		return
	case errors.Is(err, entity.ErrLeadNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "lead not found"})
		return
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Update failed"})
		return
	}

	middleware.RecordStatusTransition(lead.Status)
	writeJSON(w, http.StatusOK, map[string]string{
		"id":     lead.ID,
		"status": lead.Status,
	})
}

// HandleExport downloads the currently filtered view, never the raw table.
func (h *AdminHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Repo.ListAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load leads"})
		return
	}

	filtered := usecase.FilterLeads(leads, filterFromQuery(r))

	filename := usecase.ExportFilename(time.Now())
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := usecase.WriteLeadsCSV(w, filtered, time.Local); err != nil {
		return // headers already sent, nothing to recover
	}
	middleware.RecordExport()
}

func (h *AdminHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Repo.ListAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load leads"})
		return
	}

	writeJSON(w, http.StatusOK, usecase.CountByStatus(leads))
}

func filterFromQuery(r *http.Request) usecase.LeadFilter {
	q := r.URL.Query()
	return usecase.LeadFilter{
		Search:   q.Get("search"),
		Industry: q.Get("industry"),
		Interest: q.Get("interest"),
		Status:   q.Get("status"),
	}
}
