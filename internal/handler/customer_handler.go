package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/4NTx/desafioFacilita/internal/models"
	"github.com/4NTx/desafioFacilita/internal/service"
)

// CustomerHandler handles customer HTTP requests
type CustomerHandler struct {
	customerService service.CustomerService
	logger          *slog.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService service.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// Register handles POST /customers
func (h *CustomerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterCustomerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, models.CodeInvalidArgument, "Invalid JSON body")
		return
	}

	customer, err := h.customerService.Register(r.Context(), &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondCreated(w, customer)
}

// List handles GET /customers
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := parsePaginationParam(query.Get("page"), "page")
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	pageSize, err := parsePaginationParam(query.Get("page_size"), "page_size")
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	filter := models.CustomerFilter{
		Name:     query.Get("name"),
		Email:    query.Get("email"),
		Phone:    query.Get("phone"),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.customerService.List(r.Context(), filter)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, result)
}

// Get handles GET /customers/{id}
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, models.CodeInvalidArgument, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, customer)
}

// parsePaginationParam parses a 1-indexed pagination parameter. An absent
// parameter returns zero so the filter can apply its default; a supplied
// value must be a positive integer.
func parsePaginationParam(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, models.ErrInvalidArgument(name + " must be an integer greater than or equal to 1")
	}

	return v, nil
}
