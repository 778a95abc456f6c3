// File: services/voice/extract.go
package voice

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"pizzavoice/models"
	"pizzavoice/utils"
)

// OutcomeKind classifies the result of interpreting one speech turn.
type OutcomeKind int

const (
	OutcomeItems OutcomeKind = iota
	OutcomeMenuInquiry
	OutcomeEmptyMenu
	OutcomeUnrecognized
	OutcomeTimeOnly
)

// Outcome is the classified result of one extraction call. Exactly one kind
// is produced per call; Items is set only for OutcomeItems, Slot only for
// OutcomeTimeOnly.
type Outcome struct {
	Kind  OutcomeKind
	Items []models.CallItem
	Slot  int
}

// Completer is the optional generative delegate used to resolve free-form
// speech against the menu. Any error means the delegate declined and the
// deterministic parser takes over.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
}

// delegateTimeout bounds the round-trip to the generative delegate; a
// timeout is treated exactly like a declined delegate.
const delegateTimeout = 5 * time.Second

// Extractor turns a transcript plus a store menu into an Outcome.
type Extractor struct {
	Delegate Completer // optional
	Clock    Clock
}

var menuInquiryTriggers = []string{
	"menu",
	"cosa c'è",
	"cosa hai",
	"cosa avete",
	"cosa posso ordinare",
}

// Extract classifies the transcript against the store menu.
func (e *Extractor) Extract(ctx context.Context, transcript string, menu []models.MenuItem) Outcome {
	if len(menu) == 0 {
		return Outcome{Kind: OutcomeEmptyMenu}
	}

	textLower := strings.ToLower(transcript)
	for _, trigger := range menuInquiryTriggers {
		if strings.Contains(textLower, trigger) {
			return Outcome{Kind: OutcomeMenuInquiry}
		}
	}

	if items, ok := e.delegateExtract(ctx, transcript, menu); ok {
		if len(items) == 0 {
			return Outcome{Kind: OutcomeUnrecognized}
		}
		return Outcome{Kind: OutcomeItems, Items: items}
	}

	return e.fallbackParse(textLower, menu)
}

// delegateResponse is the structured list the delegate must return.
type delegateResponse struct {
	Items []struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
	} `json:"items"`
}

// delegateExtract asks the generative delegate to resolve the order. The
// second return value is false whenever the delegate is absent, errored,
// or produced no usable array, in which case the caller falls back to the
// deterministic parser.
func (e *Extractor) delegateExtract(ctx context.Context, transcript string, menu []models.MenuItem) ([]models.CallItem, bool) {
	if e.Delegate == nil {
		return nil, false
	}
	logger := utils.GetLogger()

	var menuLines []string
	for _, item := range menu {
		desc := item.Description
		if desc == "" {
			desc = "Nessuna descrizione"
		}
		menuLines = append(menuLines, fmt.Sprintf("%s: €%.2f - %s", item.Name, item.Price, desc))
	}

	systemPrompt := "Sei un assistente per ordinazioni al ristorante. Estrai gli elementi ordinati dal testo del cliente.\n" +
		"Menu disponibile:\n" + strings.Join(menuLines, "\n") + "\n\n" +
		`Restituisci solo un oggetto JSON nel formato: {"items": [{"name": "<nome dell'item>", "quantity": <numero>}]}`

	ctx, cancel := context.WithTimeout(ctx, delegateTimeout)
	defer cancel()

	raw, err := e.Delegate.Complete(ctx, systemPrompt, transcript)
	if err != nil {
		logger.Warn("Generative delegate declined, using fallback parser", zap.Error(err))
		return nil, false
	}

	var resp delegateResponse
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &resp); err != nil || resp.Items == nil {
		logger.Warn("Generative delegate returned no usable item array", zap.Error(err))
		return nil, false
	}

	var items []models.CallItem
	for _, entry := range resp.Items {
		menuItem, ok := findMenuItemByName(menu, entry.Name)
		if !ok {
			continue
		}
		quantity := entry.Quantity
		if quantity < 1 {
			quantity = 1
		}
		items = append(items, models.CallItem{
			MenuItemID: menuItem.ID.Hex(),
			Name:       menuItem.Name,
			Quantity:   quantity,
		})
	}
	return items, true
}

func findMenuItemByName(menu []models.MenuItem, name string) (models.MenuItem, bool) {
	for _, item := range menu {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

var quantityWords = map[string]int{
	"una": 1, "un": 1, "uno": 1, "due": 2, "tre": 3, "quattro": 4,
	"cinque": 5, "sei": 6, "sette": 7, "otto": 8, "nove": 9, "dieci": 10,
}

// leadingQtyRe finds numerals followed by whitespace; timeTailRe rejects
// the ones that are actually part of a time expression ("7 e 30", "7:15").
var (
	leadingQtyRe = regexp.MustCompile(`\b(\d+)\s+`)
	timeTailRe   = regexp.MustCompile(`^(?:e\s+\d|\.|:|\d)`)
)

// fallbackParse is the deterministic matcher used whenever the generative
// delegate is unavailable. It matches every menu entry whose name, category
// or (for pizza entries) the literal word "pizza" appears in the transcript.
func (e *Extractor) fallbackParse(textLower string, menu []models.MenuItem) Outcome {
	slot, slotFound := slotFromSpeech(textLower, e.Clock())

	var items []models.CallItem
	for _, item := range menu {
		itemName := strings.ToLower(item.Name)
		itemCategory := strings.ToLower(item.Category)

		matched := strings.Contains(textLower, itemName) ||
			(itemCategory != "" && strings.Contains(textLower, itemCategory)) ||
			(strings.Contains(itemName, "pizza") && strings.Contains(textLower, "pizza"))
		if !matched {
			continue
		}

		quantity := 1
		if q, ok := numericQuantityBefore(textLower, itemName); ok {
			quantity = q
		} else if q, ok := wordQuantityBefore(textLower, itemName); ok {
			quantity = q
		}

		callItem := models.CallItem{
			MenuItemID: item.ID.Hex(),
			Name:       item.Name,
			Quantity:   quantity,
		}
		if slotFound {
			callItem.PickupSlot = slot
		}
		items = append(items, callItem)
	}

	if len(items) == 0 && slotFound {
		return Outcome{Kind: OutcomeTimeOnly, Slot: slot}
	}
	if len(items) == 0 {
		return Outcome{Kind: OutcomeUnrecognized}
	}
	return Outcome{Kind: OutcomeItems, Items: items}
}

// numericQuantityBefore looks for a numeral preceding the item name,
// skipping numerals that open a time expression.
func numericQuantityBefore(textLower, itemName string) (int, bool) {
	nameIdx := strings.Index(textLower, itemName)
	if nameIdx < 0 {
		return 0, false
	}
	for _, loc := range leadingQtyRe.FindAllStringSubmatchIndex(textLower, -1) {
		if loc[1] > nameIdx {
			break
		}
		if timeTailRe.MatchString(textLower[loc[1]:]) {
			continue
		}
		q, err := strconv.Atoi(textLower[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		return q, true
	}
	return 0, false
}

// wordQuantityBefore looks for an Italian quantity word immediately
// preceding the item name, optionally separated by "pizza".
func wordQuantityBefore(textLower, itemName string) (int, bool) {
	for word, value := range quantityWords {
		pattern := regexp.MustCompile(`\b` + word + `\s+(?:pizza\s+)?` + regexp.QuoteMeta(itemName))
		if pattern.MatchString(textLower) {
			return value, true
		}
	}
	return 0, false
}
