package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"procintel/pipeline/internal/models"
	"procintel/pipeline/internal/repositories"
)

type ContractsHandler struct {
	repo *repositories.ContractRepository
}

func NewContractsHandler(repo *repositories.ContractRepository) *ContractsHandler {
	return &ContractsHandler{
		repo: repo,
	}
}

// HandleSearch handles GET /contracts
func (h *ContractsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	// Parse query parameters
	params := repositories.SearchParams{
		Category:   r.URL.Query().Get("category"),
		SearchText: r.URL.Query().Get("search"),
	}

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		if parsed, err := strconv.Atoi(yearStr); err == nil && parsed > 0 {
			params.Year = parsed
		}
	}

	if minScoreStr := r.URL.Query().Get("minScore"); minScoreStr != "" {
		if parsed, err := strconv.Atoi(minScoreStr); err == nil && parsed > 0 {
			params.MinScore = parsed
		}
	}

	limit := 25
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	params.Limit = limit

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil && parsed >= 0 {
			params.Offset = parsed
		}
	}

	// Query repository
	result, err := h.repo.SearchContracts(r.Context(), params)
	if err != nil {
		WriteJSON(w, http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
		return
	}

	// Ensure items is always an array, never null
	items := result.Items
	if items == nil {
		items = []models.ContractRecord{}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":        items,
		"totalRecords": result.TotalRecords,
		"limit":        result.Limit,
		"offset":       result.Offset,
		"hasMore":      result.HasMore,
	})
}

// HandleSummary handles GET /contracts/summary
func (h *ContractsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	summary, err := h.repo.GetSummary(r.Context())
	if err != nil {
		WriteJSON(w, http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
		return
	}

	WriteJSON(w, http.StatusOK, summary)
}

// HandleGetContract handles GET /contracts/:contractId
func (h *ContractsHandler) HandleGetContract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	// Extract contractId from path
	path := r.URL.Path
	contractID := strings.TrimPrefix(path, "/contracts/")
	if contractID == "" || contractID == path {
		WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "contractId is required"})
		return
	}

	records, err := h.repo.GetContractByID(r.Context(), contractID)
	if err != nil {
		WriteJSON(w, http.StatusNotFound, map[string]string{
			"error": "contract not found",
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"contractId": contractID,
		"records":    records,
	})
}
