package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/4NTx/desafioFacilita/internal/models"
	"github.com/4NTx/desafioFacilita/internal/service"
)

// mockCustomerService for handler tests
type mockCustomerService struct {
	registerResult *models.Customer
	registerErr    error
	listResult     *service.CustomerListResult
	listErr        error
	getResult      *models.Customer
	getErr         error
	gotFilter      models.CustomerFilter
}

func (m *mockCustomerService) Register(ctx context.Context, req *service.RegisterCustomerRequest) (*models.Customer, error) {
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return m.registerResult, nil
}

func (m *mockCustomerService) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.getResult, nil
}

func (m *mockCustomerService) List(ctx context.Context, filter models.CustomerFilter) (*service.CustomerListResult, error) {
	m.gotFilter = filter
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listResult, nil
}

type mockRouteService struct {
	result *service.RouteResult
	err    error
}

func (m *mockRouteService) ComputeRoute(ctx context.Context) (*service.RouteResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(customerSvc service.CustomerService, routeSvc service.RouteService) http.Handler {
	logger := discardLogger()
	customerHandler := NewCustomerHandler(customerSvc, logger)
	routeHandler := NewRouteHandler(routeSvc, logger)

	r := chi.NewRouter()
	r.Get("/route", routeHandler.Compute)
	r.Route("/customers", func(r chi.Router) {
		r.Post("/", customerHandler.Register)
		r.Get("/", customerHandler.List)
		r.Get("/{id}", customerHandler.Get)
	})
	return r
}

func decodeError(t *testing.T, body io.Reader) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp
}

func TestCustomerHandler_Register(t *testing.T) {
	svc := &mockCustomerService{
		registerResult: &models.Customer{
			ID:    1,
			Name:  "Alice",
			Email: "alice@example.com",
			Phone: "11999990000",
			X:     1,
			Y:     2,
		},
	}
	router := newTestRouter(svc, &mockRouteService{})

	body := `{"name":"Alice","email":"alice@example.com","phone":"11999990000","x":1,"y":2}`
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var customer models.Customer
	if err := json.NewDecoder(rec.Body).Decode(&customer); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if customer.ID != 1 {
		t.Errorf("customer ID = %d, want 1", customer.ID)
	}
}

func TestCustomerHandler_Register_InvalidJSON(t *testing.T) {
	router := newTestRouter(&mockCustomerService{}, &mockRouteService{})

	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	resp := decodeError(t, rec.Body)
	if resp.Error.Code != models.CodeInvalidArgument {
		t.Errorf("code = %s, want %s", resp.Error.Code, models.CodeInvalidArgument)
	}
}

func TestCustomerHandler_Register_ValidationFailed(t *testing.T) {
	svc := &mockCustomerService{
		registerErr: models.ErrValidationFailed(map[string]string{"email": "must be a valid email address"}),
	}
	router := newTestRouter(svc, &mockRouteService{})

	body := `{"name":"Alice","email":"nope","phone":"11999990000","x":1,"y":2}`
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	resp := decodeError(t, rec.Body)
	if resp.Error.Code != models.CodeValidationFailed {
		t.Errorf("code = %s, want %s", resp.Error.Code, models.CodeValidationFailed)
	}
	if resp.Error.Fields["email"] == "" {
		t.Errorf("expected email field detail, got %v", resp.Error.Fields)
	}
}

func TestCustomerHandler_List(t *testing.T) {
	svc := &mockCustomerService{
		listResult: &service.CustomerListResult{
			Data: []*models.Customer{
				{ID: 1, Name: "Alice"},
				{ID: 2, Name: "Bob"},
			},
			Pagination: models.PaginationResult{Page: 1, PageSize: 10, TotalCount: 2, TotalPages: 1},
		},
	}
	router := newTestRouter(svc, &mockRouteService{})

	req := httptest.NewRequest(http.MethodGet, "/customers?name=li&page=1&page_size=10", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if svc.gotFilter.Name != "li" || svc.gotFilter.Page != 1 || svc.gotFilter.PageSize != 10 {
		t.Errorf("filter not forwarded: %+v", svc.gotFilter)
	}
}

func TestCustomerHandler_List_InvalidPagination(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"zero page", "?page=0"},
		{"negative page", "?page=-3"},
		{"zero page size", "?page_size=0"},
		{"non-numeric page", "?page=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&mockCustomerService{}, &mockRouteService{})

			req := httptest.NewRequest(http.MethodGet, "/customers"+tt.query, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			resp := decodeError(t, rec.Body)
			if resp.Error.Code != models.CodeInvalidArgument {
				t.Errorf("code = %s, want %s", resp.Error.Code, models.CodeInvalidArgument)
			}
		})
	}
}

func TestCustomerHandler_List_StorageUnavailable(t *testing.T) {
	svc := &mockCustomerService{
		listErr: models.ErrStorageUnavailableWrap(io.ErrUnexpectedEOF),
	}
	router := newTestRouter(svc, &mockRouteService{})

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	resp := decodeError(t, rec.Body)
	if resp.Error.Code != models.CodeStorageUnavailable {
		t.Errorf("code = %s, want %s", resp.Error.Code, models.CodeStorageUnavailable)
	}
	// Internal detail must not leak to the client
	if strings.Contains(resp.Error.Message, io.ErrUnexpectedEOF.Error()) {
		t.Errorf("storage error detail leaked: %q", resp.Error.Message)
	}
}

func TestCustomerHandler_Get_NotFound(t *testing.T) {
	svc := &mockCustomerService{
		getErr: models.ErrNotFoundWithMsg("customer with ID 42 not found"),
	}
	router := newTestRouter(svc, &mockRouteService{})

	req := httptest.NewRequest(http.MethodGet, "/customers/42", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouteHandler_Compute(t *testing.T) {
	depot := models.RoutePoint{ID: models.DepotID, Name: "Company"}
	routeSvc := &mockRouteService{
		result: &service.RouteResult{
			Route: []models.RoutePoint{
				depot,
				{ID: 1, Name: "Alice", X: 1, Y: 1},
				depot,
			},
		},
	}
	router := newTestRouter(&mockCustomerService{}, routeSvc)

	req := httptest.NewRequest(http.MethodGet, "/route", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var result service.RouteResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(result.Route) != 3 {
		t.Fatalf("route length = %d, want 3", len(result.Route))
	}
	if result.Route[0].ID != models.DepotID || result.Route[2].ID != models.DepotID {
		t.Errorf("route must start and end at the depot: %+v", result.Route)
	}
}
