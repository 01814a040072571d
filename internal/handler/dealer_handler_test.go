package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyanshuKshk/dealer-info-api/internal/middleware"
	"github.com/priyanshuKshk/dealer-info-api/internal/models"
	"github.com/priyanshuKshk/dealer-info-api/internal/service"
	"github.com/priyanshuKshk/dealer-info-api/internal/utils"
)

// dealerStoreStub is an in-memory service.DealerStore for handler tests.
type dealerStoreStub struct {
	dealers map[string]*models.Dealer
}

func newDealerStoreStub() *dealerStoreStub {
	return &dealerStoreStub{dealers: make(map[string]*models.Dealer)}
}

func (s *dealerStoreStub) Create(_ context.Context, d *models.Dealer) error {
	d.ID = uuid.New().String()
	cp := *d
	s.dealers[d.ID] = &cp
	return nil
}

func (s *dealerStoreStub) GetByID(_ context.Context, id string) (*models.Dealer, error) {
	d, ok := s.dealers[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *d
	return &cp, nil
}

func (s *dealerStoreStub) GetByCode(_ context.Context, code string) (*models.Dealer, error) {
	for _, d := range s.dealers {
		if d.DealerCode == code {
			cp := *d
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *dealerStoreStub) List(_ context.Context, filter models.DealerFilter) ([]*models.Dealer, error) {
	var out []*models.Dealer
	for _, d := range s.dealers {
		if filter.Name != "" && !strings.Contains(strings.ToLower(d.DealershipName), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.State != "" && d.State != filter.State {
			continue
		}
		if filter.City != "" && d.City != filter.City {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (s *dealerStoreStub) Update(_ context.Context, d *models.Dealer) error {
	if _, ok := s.dealers[d.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *d
	s.dealers[d.ID] = &cp
	return nil
}

func (s *dealerStoreStub) Delete(_ context.Context, id string) error {
	if _, ok := s.dealers[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.dealers, id)
	return nil
}

// newDealerRouter wires the dealer routes the way cmd/api does: reads are
// public, mutations need an admin token.
func newDealerRouter(store *dealerStoreStub, tokens *utils.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewDealerHandler(service.NewDealerService(store))
	jwtMw := middleware.NewJWTMiddleware(tokens)

	router.GET("/dealers", h.ListDealers)
	router.POST("/dealers", jwtMw.Handle(), h.CreateDealer)
	router.PUT("/dealers/:id", jwtMw.Handle(), h.UpdateDealer)
	router.DELETE("/dealers/:id", jwtMw.Handle(), h.DeleteDealer)
	return router
}

func adminToken(t *testing.T, tokens *utils.TokenIssuer) string {
	t.Helper()
	token, err := tokens.Generate("admin-1", models.RoleAdmin)
	require.NoError(t, err)
	return token
}

func dealerBody(code string) map[string]any {
	return map[string]any{
		"dealershipName": "Acme Motors",
		"dealerCode":     code,
		"address":        "12 MG Road",
		"contactPerson":  "Asha",
		"contactNumber":  "9999999999",
		"pincode":        "500001",
		"city":           "Pune",
		"district":       "Pune",
		"state":          "Maharashtra",
		"email":          "acme@example.com",
	}
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateDealer_CreatedThenConflict(t *testing.T) {
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	router := newDealerRouter(newDealerStoreStub(), tokens)
	token := adminToken(t, tokens)

	w := doJSON(router, http.MethodPost, "/dealers", token, dealerBody("D1"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Dealer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "India", created.Country)
	assert.Equal(t, models.DealerStatusActive, created.Status)

	// Same dealer code again.
	w = doJSON(router, http.MethodPost, "/dealers", token, dealerBody("D1"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"status":"exists","message":"Dealer already exists"}`, w.Body.String())
}

func TestCreateDealer_OptionalAddressAndContactPerson(t *testing.T) {
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	router := newDealerRouter(newDealerStoreStub(), tokens)
	token := adminToken(t, tokens)

	// Address and contact person are optional; only the directory
	// identity fields are mandatory.
	body := map[string]any{
		"dealerCode":     "D1",
		"dealershipName": "Acme",
		"email":          "a@a.com",
		"contactNumber":  "9999999999",
		"pincode":        "500001",
		"state":          "X",
		"district":       "Y",
		"city":           "Z",
		"country":        "India",
		"status":         "active",
	}
	w := doJSON(router, http.MethodPost, "/dealers", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Dealer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.Address)
	assert.Empty(t, created.ContactPerson)

	w = doJSON(router, http.MethodPost, "/dealers", token, body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"status":"exists","message":"Dealer already exists"}`, w.Body.String())
}

func TestCreateDealer_RequiresToken(t *testing.T) {
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	router := newDealerRouter(newDealerStoreStub(), tokens)

	w := doJSON(router, http.MethodPost, "/dealers", "", dealerBody("D1"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateDealer_ValidationFailure(t *testing.T) {
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	router := newDealerRouter(newDealerStoreStub(), tokens)
	token := adminToken(t, tokens)

	body := dealerBody("D1")
	body["contactNumber"] = "12"
	w := doJSON(router, http.MethodPost, "/dealers", token, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Failed to add dealer", resp.Message)
}

func TestListDealers_EmptyDirectory(t *testing.T) {
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	router := newDealerRouter(newDealerStoreStub(), tokens)

	w := doJSON(router, http.MethodGet, "/dealers", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListDealers_Filters(t *testing.T) {
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	store := newDealerStoreStub()
	router := newDealerRouter(store, tokens)
	token := adminToken(t, tokens)

	pune := dealerBody("D1")
	mumbai := dealerBody("D2")
	mumbai["dealershipName"] = "Bharat Wheels"
	mumbai["city"] = "Mumbai"
	mumbai["district"] = "Mumbai City"
	require.Equal(t, http.StatusCreated, doJSON(router, http.MethodPost, "/dealers", token, pune).Code)
	require.Equal(t, http.StatusCreated, doJSON(router, http.MethodPost, "/dealers", token, mumbai).Code)

	w := doJSON(router, http.MethodGet, "/dealers?city=Mumbai", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dealers []models.Dealer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dealers))
	require.Len(t, dealers, 1)
	assert.Equal(t, "Bharat Wheels", dealers[0].DealershipName)

	// Name filter matches case-insensitively.
	w = doJSON(router, http.MethodGet, "/dealers?name=bharat", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	dealers = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dealers))
	assert.Len(t, dealers, 1)
}

func TestUpdateDealer_NotFound(t *testing.T) {
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	router := newDealerRouter(newDealerStoreStub(), tokens)
	token := adminToken(t, tokens)

	w := doJSON(router, http.MethodPut, "/dealers/missing-id", token, map[string]any{"dealershipName": "X"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Dealer not found"}`, w.Body.String())
}

func TestUpdateDealer_AppliesChanges(t *testing.T) {
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	router := newDealerRouter(newDealerStoreStub(), tokens)
	token := adminToken(t, tokens)

	w := doJSON(router, http.MethodPost, "/dealers", token, dealerBody("D1"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Dealer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(router, http.MethodPut, "/dealers/"+created.ID, token, map[string]any{
		"dealershipName": "Acme Motors Pvt Ltd",
		"website":        "acme.example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Dealer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Acme Motors Pvt Ltd", updated.DealershipName)
	assert.Equal(t, "https://acme.example.com", updated.Website)
	assert.Equal(t, "D1", updated.DealerCode)
}

func TestDeleteDealer(t *testing.T) {
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	router := newDealerRouter(newDealerStoreStub(), tokens)
	token := adminToken(t, tokens)

	w := doJSON(router, http.MethodPost, "/dealers", token, dealerBody("D1"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Dealer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(router, http.MethodDelete, "/dealers/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Dealer deleted"}`, w.Body.String())

	w = doJSON(router, http.MethodDelete, "/dealers/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
