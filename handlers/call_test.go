// File: handlers/call_test.go
package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pizzavoice/models"
	voice "pizzavoice/services/voice"
)

type stubMenuRepo struct {
	items []models.MenuItem
}

func (s *stubMenuRepo) Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	return item, nil
}

func (s *stubMenuRepo) GetByStoreID(ctx context.Context, storeID string) ([]models.MenuItem, error) {
	return s.items, nil
}

func (s *stubMenuRepo) Update(ctx context.Context, storeID, itemID string, update map[string]interface{}) (*models.MenuItem, error) {
	return nil, errors.New("not implemented")
}

func (s *stubMenuRepo) Delete(ctx context.Context, storeID, itemID string) error {
	return errors.New("not implemented")
}

type stubOrderRepo struct {
	created []*models.Order
}

func (s *stubOrderRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	s.created = append(s.created, order)
	return order, nil
}

func (s *stubOrderRepo) GetByID(ctx context.Context, storeID, orderID string) (*models.Order, error) {
	return nil, errors.New("not implemented")
}

func (s *stubOrderRepo) GetByStoreID(ctx context.Context, storeID string) ([]models.Order, error) {
	return nil, errors.New("not implemented")
}

func (s *stubOrderRepo) UpdateStatus(ctx context.Context, storeID, orderID, status, cancellationReason, cancellationNotes string) (*models.Order, error) {
	return nil, errors.New("not implemented")
}

func (s *stubOrderRepo) Delete(ctx context.Context, storeID, orderID string) error {
	return errors.New("not implemented")
}

func newCallTestRouter(orders *stubOrderRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	clock := func() time.Time { return time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC) }
	svc := &voice.CallFlowService{
		MenuRepo: &stubMenuRepo{items: []models.MenuItem{
			{ID: primitive.NewObjectID(), StoreID: "1234", Name: "Margherita", Category: "Pizza", Price: 7.5, Available: true},
		}},
		OrderRepo:      orders,
		Extractor:      &voice.Extractor{Clock: clock},
		BaseURL:        "https://pizza.example.com",
		DefaultStoreID: "1234",
		Clock:          clock,
	}
	h := NewCallHandler(svc)

	r := gin.New()
	r.POST("/api/calls/incoming", h.IncomingHandler)
	r.POST("/api/calls/collect-order", h.CollectOrderHandler)
	r.POST("/api/calls/confirm-time", h.ConfirmTimeHandler)
	return r
}

func postForm(r *gin.Engine, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIncomingHandlerRespondsVoiceDocument(t *testing.T) {
	r := newCallTestRouter(&stubOrderRepo{})

	w := postForm(r, "/api/calls/incoming", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/xml")
	assert.Contains(t, w.Body.String(), "<Response>")
	assert.Contains(t, w.Body.String(), "Buongiorno")
	assert.Contains(t, w.Body.String(), "collect-order")
}

func TestCollectOrderHandlerSurvivesGarbageState(t *testing.T) {
	r := newCallTestRouter(&stubOrderRepo{})

	w := postForm(r, "/api/calls/collect-order?state=%21%21not-a-state%21%21",
		url.Values{"SpeechResult": {"vorrei due margherita"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<Response>")
	// The garbage state degrades to a fresh one on the default store.
	assert.Contains(t, w.Body.String(), "2 Margherita")
}

func TestConfirmTimeHandlerFallsBackToStateSlot(t *testing.T) {
	orders := &stubOrderRepo{}
	r := newCallTestRouter(orders)

	st := models.CallState{
		StoreID:    "1234",
		Items:      []models.CallItem{{Name: "Margherita", Quantity: 2}},
		PickupSlot: 76,
	}

	// No slot query parameter: the handler must use the one in the state.
	w := postForm(r, "/api/calls/confirm-time?state="+voice.EncodeState(st),
		url.Values{"SpeechResult": {"sì"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "19:00")
	require.Len(t, orders.created, 1)
	assert.Equal(t, 76, orders.created[0].Slot)
}
