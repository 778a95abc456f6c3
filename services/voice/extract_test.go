// File: services/voice/extract_test.go
package voice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pizzavoice/models"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s stubCompleter) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	return s.reply, s.err
}

func testMenu() []models.MenuItem {
	return []models.MenuItem{
		{ID: primitive.NewObjectID(), StoreID: "1234", Name: "Margherita", Category: "Pizza", Price: 7.5, Available: true},
		{ID: primitive.NewObjectID(), StoreID: "1234", Name: "Diavola", Category: "Pizza", Price: 9, Available: true},
		{ID: primitive.NewObjectID(), StoreID: "1234", Name: "Coca Cola", Category: "Bevande", Price: 3, Available: true},
		{ID: primitive.NewObjectID(), StoreID: "1234", Name: "Tiramisu", Category: "Dolci", Price: 5, Available: true},
	}
}

func newExtractor(delegate Completer, now time.Time) *Extractor {
	return &Extractor{Delegate: delegate, Clock: func() time.Time { return now }}
}

func TestExtractEmptyMenu(t *testing.T) {
	e := newExtractor(nil, at(10, 0))
	out := e.Extract(context.Background(), "vorrei una margherita", nil)
	assert.Equal(t, OutcomeEmptyMenu, out.Kind)
}

func TestExtractMenuInquiry(t *testing.T) {
	e := newExtractor(nil, at(10, 0))
	out := e.Extract(context.Background(), "Cosa avete oggi?", testMenu())
	assert.Equal(t, OutcomeMenuInquiry, out.Kind)
}

func TestExtractWordQuantity(t *testing.T) {
	e := newExtractor(nil, at(10, 0))
	out := e.Extract(context.Background(), "vorrei due margherita", testMenu())

	require.Equal(t, OutcomeItems, out.Kind)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Margherita", out.Items[0].Name)
	assert.Equal(t, 2, out.Items[0].Quantity)
}

func TestExtractNumericQuantity(t *testing.T) {
	e := newExtractor(nil, at(10, 0))
	out := e.Extract(context.Background(), "2 margherita per favore", testMenu())

	require.Equal(t, OutcomeItems, out.Kind)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 2, out.Items[0].Quantity)
}

func TestExtractItemWithPickupTime(t *testing.T) {
	e := newExtractor(nil, at(15, 0))
	out := e.Extract(context.Background(), "vorrei una margherita per le 19 grazie", testMenu())

	require.Equal(t, OutcomeItems, out.Kind)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 1, out.Items[0].Quantity)
	assert.Equal(t, 76, out.Items[0].PickupSlot)
}

func TestExtractTimeOnly(t *testing.T) {
	e := newExtractor(nil, at(15, 0))
	out := e.Extract(context.Background(), "per le 8", testMenu())

	assert.Equal(t, OutcomeTimeOnly, out.Kind)
	assert.Equal(t, 80, out.Slot)
}

func TestExtractUnrecognized(t *testing.T) {
	e := newExtractor(nil, at(10, 0))
	out := e.Extract(context.Background(), "vorrei un calzone", testMenu())
	assert.Equal(t, OutcomeUnrecognized, out.Kind)
}

func TestExtractDelegateItems(t *testing.T) {
	e := newExtractor(stubCompleter{reply: `{"items":[{"name":"margherita","quantity":2}]}`}, at(10, 0))
	out := e.Extract(context.Background(), "ciao, due margherite per favore", testMenu())

	require.Equal(t, OutcomeItems, out.Kind)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Margherita", out.Items[0].Name)
	assert.Equal(t, 2, out.Items[0].Quantity)
	assert.NotEmpty(t, out.Items[0].MenuItemID)
}

func TestExtractDelegateCodeFences(t *testing.T) {
	reply := "```json\n{\"items\":[{\"name\":\"Diavola\",\"quantity\":1}]}\n```"
	e := newExtractor(stubCompleter{reply: reply}, at(10, 0))
	out := e.Extract(context.Background(), "una diavola", testMenu())

	require.Equal(t, OutcomeItems, out.Kind)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Diavola", out.Items[0].Name)
}

func TestExtractDelegateEmptyArrayMeansUnrecognized(t *testing.T) {
	e := newExtractor(stubCompleter{reply: `{"items":[]}`}, at(10, 0))
	out := e.Extract(context.Background(), "bla bla", testMenu())
	assert.Equal(t, OutcomeUnrecognized, out.Kind)
}

func TestExtractDelegateDeclinedFallsBack(t *testing.T) {
	e := newExtractor(stubCompleter{err: errors.New("quota exceeded")}, at(10, 0))
	out := e.Extract(context.Background(), "vorrei due margherita", testMenu())

	require.Equal(t, OutcomeItems, out.Kind)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 2, out.Items[0].Quantity)
}

func TestExtractDelegateGarbageFallsBack(t *testing.T) {
	e := newExtractor(stubCompleter{reply: "non posso aiutarti"}, at(10, 0))
	out := e.Extract(context.Background(), "vorrei due margherita", testMenu())

	require.Equal(t, OutcomeItems, out.Kind)
	assert.Equal(t, 2, out.Items[0].Quantity)
}
