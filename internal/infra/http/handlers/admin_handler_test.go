package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aishnar/aishnar-leads/internal/entity"
	"github.com/aishnar/aishnar-leads/internal/infra/http/handlers"
	"github.com/aishnar/aishnar-leads/internal/usecase"
)

func adminRouter(repo entity.LeadRepositoryInterface) *chi.Mux {
	h := handlers.NewAdminHandler(repo, usecase.NewUpdateLeadStatusUseCase(repo))

	r := chi.NewRouter()
	r.Get("/admin/leads", h.HandleList)
	r.Patch("/admin/leads/{id}/status", h.HandleUpdateStatus)
	r.Get("/admin/leads/export", h.HandleExport)
	r.Get("/admin/leads/stats", h.HandleStats)
	return r
}

func storedLeads() []entity.Lead {
	return []entity.Lead{
		{ID: "l1", FullName: "Rahul Sharma", Email: "rahul@sharma.in", CompanyName: "Sharma Enterprises", Industry: "Technology", InterestInPaid: "Yes", Status: entity.StatusNew, CreatedAt: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)},
		{ID: "l2", FullName: "Priya Singh", Email: "priya@finco.in", CompanyName: "FinCo", Industry: "Finance", InterestInPaid: "Maybe", Status: entity.StatusContacted, CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
	}
}

func TestHandleListAppliesFiltersButCountsEverything(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("ListAll", mock.Anything).Return(storedLeads(), nil)

	r := adminRouter(mockRepo)

	req := httptest.NewRequest(http.MethodGet, "/admin/leads?search=sharma&status=all", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.ListLeadsResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Len(t, resp.Leads, 1)
	assert.Equal(t, "l1", resp.Leads[0].ID)

	// Menu options and tallies come from the unfiltered collection.
	assert.Equal(t, []string{"Technology", "Finance"}, resp.Industries)
	assert.Equal(t, 2, resp.Counts.Total)
	assert.Equal(t, 1, resp.Counts.New)
	assert.Equal(t, 1, resp.Counts.Contacted)
}

func TestHandleUpdateStatus(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("UpdateStatus", mock.Anything, "l1", entity.StatusQualified).Return(nil)

	r := adminRouter(mockRepo)

	body := bytes.NewReader([]byte(`{"status":"Qualified"}`))
	req := httptest.NewRequest(http.MethodPatch, "/admin/leads/l1/status", body)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, entity.StatusQualified, resp["status"])
}

func TestHandleUpdateStatusUnknownLead(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("UpdateStatus", mock.Anything, "ghost", entity.StatusContacted).Return(entity.ErrLeadNotFound)

	r := adminRouter(mockRepo)

	body := bytes.NewReader([]byte(`{"status":"Contacted"}`))
	req := httptest.NewRequest(http.MethodPatch, "/admin/leads/ghost/status", body)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleUpdateStatusRejectsUnknownValue(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	r := adminRouter(mockRepo)

	body := bytes.NewReader([]byte(`{"status":"Archived"}`))
	req := httptest.NewRequest(http.MethodPatch, "/admin/leads/l1/status", body)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestHandleExportDownloadsFilteredView(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("ListAll", mock.Anything).Return(storedLeads(), nil)

	r := adminRouter(mockRepo)

	req := httptest.NewRequest(http.MethodGet, "/admin/leads/export?industry=Finance", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

	disposition := rec.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, `attachment; filename="leads-`)
	assert.Contains(t, disposition, `.csv"`)

	lines := strings.Split(rec.Body.String(), "\n")
	assert.Len(t, lines, 2) // header + the one Finance lead
	assert.Contains(t, lines[1], `"Priya Singh"`)
	assert.NotContains(t, rec.Body.String(), "Rahul Sharma")
}

func TestHandleStats(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("ListAll", mock.Anything).Return(storedLeads(), nil)

	r := adminRouter(mockRepo)

	req := httptest.NewRequest(http.MethodGet, "/admin/leads/stats", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var counts usecase.StatusCounts
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &counts))
	assert.Equal(t, 2, counts.Total)
}
