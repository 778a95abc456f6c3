// File: services/voice/callflow.go
package voice

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	menuRepo "pizzavoice/database/repository/menu"
	orderRepo "pizzavoice/database/repository/order"
	"pizzavoice/models"
	"pizzavoice/utils"
)

// CallFlowService drives the phone-order dialogue. Every webhook turn is
// stateless: the working state arrives encoded in the callback URL and the
// updated state is encoded into the next one.
type CallFlowService struct {
	MenuRepo       menuRepo.MenuRepository
	OrderRepo      orderRepo.OrderRepository
	Extractor      *Extractor
	Cache          *MenuCache
	BaseURL        string
	DefaultStoreID string
	Clock          Clock
}

var affirmationTokens = []string{"sì", "si", "certo", "ok", "perfetto", "corretto"}

func containsAny(textLower string, tokens ...string) bool {
	for _, t := range tokens {
		if strings.Contains(textLower, t) {
			return true
		}
	}
	return false
}

func isAffirmative(speechLower string) bool {
	return containsAny(speechLower, affirmationTokens...)
}

// isFinalConfirmation is deliberately permissive: the terminal confirmation
// defaults to yes unless the caller objects or asks for a change.
func isFinalConfirmation(speechLower string) bool {
	if isAffirmative(speechLower) {
		return true
	}
	return !strings.Contains(speechLower, "no") && !strings.Contains(speechLower, "modific")
}

// actionURL builds the callback URL for the next dialogue turn, embedding
// the full continuation state.
func (s *CallFlowService) actionURL(stage string, st models.CallState, extra url.Values) string {
	params := url.Values{}
	params.Set("state", EncodeState(st))
	for key, values := range extra {
		for _, v := range values {
			params.Set(key, v)
		}
	}
	return s.BaseURL + "/api/calls/" + stage + "?" + params.Encode()
}

// menuFor loads the store menu, through the cache when available.
func (s *CallFlowService) menuFor(ctx context.Context, storeID string) []models.MenuItem {
	if items, ok := s.Cache.Get(ctx, storeID); ok {
		return items
	}
	items, err := s.MenuRepo.GetByStoreID(ctx, storeID)
	if err != nil {
		utils.GetLogger().Error("Menu lookup failed",
			zap.String("storeId", storeID), zap.Error(err))
		return nil
	}
	s.Cache.Set(ctx, storeID, items)
	return items
}

func orderDescription(items []models.CallItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		name := item.Name
		if name == "" {
			name = "item"
		}
		parts = append(parts, fmt.Sprintf("%d %s", item.Quantity, name))
	}
	return strings.Join(parts, ", ")
}

// Incoming greets the caller and opens the order-collection turn.
func (s *CallFlowService) Incoming(storeID string) *VoiceResponse {
	if storeID == "" {
		storeID = s.DefaultStoreID
	}
	st := models.CallState{StoreID: storeID}

	vr := &VoiceResponse{}
	vr.AddSay("Buongiorno! Sono Bianca della pizzeria La Bella Napoli. Come posso aiutarti oggi?")
	vr.GatherSpeech(s.actionURL("collect-order", st, nil))
	return vr
}

// CollectOrder runs the extractor on the caller's speech and branches on
// the outcome. Unrecognized input and menu questions loop back here.
func (s *CallFlowService) CollectOrder(ctx context.Context, st models.CallState, speech string) *VoiceResponse {
	vr := &VoiceResponse{}

	if speech == "" {
		vr.AddSay("Non sono riuscita a sentirti. Puoi dirmi cosa vorresti ordinare oggi?")
		vr.GatherSpeech(s.actionURL("collect-order", st, nil))
		return vr
	}

	menu := s.menuFor(ctx, st.StoreID)
	outcome := s.Extractor.Extract(ctx, speech, menu)

	switch outcome.Kind {
	case OutcomeMenuInquiry:
		vr.AddSay("Oggi abbiamo diverse specialità! Posso consigliarti " + menuHighlights(menu) + ". Cosa ti piacerebbe ordinare?")
		vr.GatherSpeech(s.actionURL("collect-order", st, nil))

	case OutcomeEmptyMenu:
		vr.AddSay("Mi dispiace tanto, ma oggi il nostro chef sta aggiornando il menù. Potresti riprovare più tardi? Grazie della comprensione!")
		vr.EndCall()

	case OutcomeUnrecognized:
		vr.AddSay("Scusami, non sono riuscita a capire cosa vorresti ordinare. Puoi ripetere per favore?")
		vr.GatherSpeech(s.actionURL("collect-order", st, nil))

	case OutcomeTimeOnly:
		st.PickupSlot = outcome.Slot
		vr.AddSay(fmt.Sprintf("Ho capito che vuoi ritirare alle %s. Cosa vorresti ordinare?", SlotToClock(outcome.Slot)))
		vr.GatherSpeech(s.actionURL("collect-order", st, nil))

	case OutcomeItems:
		items := correctQuantities(outcome.Items, speech)
		for _, item := range items {
			if item.PickupSlot != 0 && st.PickupSlot == 0 {
				st.PickupSlot = item.PickupSlot
			}
		}
		st.Items = append(st.Items, items...)

		vr.AddSay(fmt.Sprintf("Perfetto! Ho segnato %s. Ti chiedo ancora un paio di cose... Desideri anche qualcosa da bere con il tuo ordine?", orderDescription(items)))
		vr.GatherSpeech(s.actionURL("add-drinks", st, nil))
	}

	return vr
}

// menuHighlights speaks the first few entries of the store menu.
func menuHighlights(menu []models.MenuItem) string {
	const maxSpoken = 5
	names := make([]string, 0, maxSpoken)
	for _, item := range menu {
		names = append(names, item.Name)
		if len(names) == maxSpoken {
			break
		}
	}
	return strings.Join(names, ", ")
}

// correctQuantities downgrades implausible quantities: an extracted count
// above 5 that the caller did not literally say (e.g. the hour of a time
// expression mistaken for a count) becomes 1.
func correctQuantities(items []models.CallItem, speech string) []models.CallItem {
	speechLower := strings.ToLower(speech)
	corrected := make([]models.CallItem, len(items))
	for i, item := range items {
		if item.Quantity > 5 &&
			!strings.Contains(speechLower, fmt.Sprintf("%d %s", item.Quantity, strings.ToLower(item.Name))) {
			item.Quantity = 1
		}
		corrected[i] = item
	}
	return corrected
}

// AddDrinks interprets the drinks reply, appends beverage line items on a
// match and always moves on to the dessert question.
func (s *CallFlowService) AddDrinks(ctx context.Context, st models.CallState, speech string) *VoiceResponse {
	speechLower := strings.ToLower(speech)

	wantsDrinks := isAffirmative(speechLower) ||
		containsAny(speechLower, "acqua", "coca", "bere")

	if wantsDrinks && containsAny(speechLower, "acqua", "naturale") {
		st.Items = append(st.Items, s.resolveExtra(ctx, st.StoreID, "acqua", "Acqua"))
	}
	if wantsDrinks && containsAny(speechLower, "coca", "cola") {
		st.Items = append(st.Items, s.resolveExtra(ctx, st.StoreID, "coca", "Coca Cola"))
	}

	vr := &VoiceResponse{}
	vr.AddSay("Perfetto! E per finire, ti posso aggiungere anche un delizioso tiramisù fatto in casa?")
	vr.GatherSpeech(s.actionURL("add-dessert", st, nil))
	return vr
}

// AddDessert interprets the dessert reply and moves on to the cutting
// preference question.
func (s *CallFlowService) AddDessert(ctx context.Context, st models.CallState, speech string) *VoiceResponse {
	speechLower := strings.ToLower(speech)

	wantsDessert := isAffirmative(speechLower) ||
		containsAny(speechLower, "tiramisù", "tiramisu", "dolce")

	if wantsDessert {
		st.Items = append(st.Items, s.resolveExtra(ctx, st.StoreID, "tiramis", "Tiramisu"))
	}

	vr := &VoiceResponse{}
	vr.AddSay("Ultima domanda, vuoi che le pizze siano tagliate a spicchi?")
	vr.GatherSpeech(s.actionURL("final-confirm", st, nil))
	return vr
}

// resolveExtra attaches a beverage or dessert line item, resolving it to a
// menu entry when the store carries one matching the keyword.
func (s *CallFlowService) resolveExtra(ctx context.Context, storeID, keyword, displayName string) models.CallItem {
	item := models.CallItem{Name: displayName, Quantity: 1}
	for _, entry := range s.menuFor(ctx, storeID) {
		if strings.Contains(strings.ToLower(entry.Name), keyword) {
			item.MenuItemID = entry.ID.Hex()
			item.Name = entry.Name
			break
		}
	}
	return item
}

// FinalConfirm records the cutting preference and caller phone, summarizes
// the order, then either asks for a pickup time or, when a slot was already
// captured, goes straight to the time confirmation.
func (s *CallFlowService) FinalConfirm(st models.CallState, speech, callerPhone string) *VoiceResponse {
	speechLower := strings.ToLower(speech)
	st.Cutting = isAffirmative(speechLower)
	if callerPhone != "" {
		st.Phone = callerPhone
	}

	description := orderDescription(st.Items)
	cuttingPhrase := "non tagliate"
	if st.Cutting {
		cuttingPhrase = "tagliate a spicchi"
	}

	vr := &VoiceResponse{}
	if st.PickupSlot != 0 {
		vr.AddSay(fmt.Sprintf("Perfetto! Riassumo il tuo ordine: %s, con le pizze %s, pronte per il ritiro alle %s. Ti sembra tutto corretto?",
			description, cuttingPhrase, SlotToClock(st.PickupSlot)))
		vr.GatherSpeech(s.actionURL("confirm-time", st, url.Values{"slot": {strconv.Itoa(st.PickupSlot)}}))
	} else {
		vr.AddSay(fmt.Sprintf("Perfetto! Riassumo il tuo ordine: %s, con le pizze %s. A che ora vorresti ritirare il tuo ordine? Il tempo di preparazione è di circa 20 minuti.",
			description, cuttingPhrase))
		vr.GatherSpeech(s.actionURL("select-time", st, nil))
	}
	return vr
}

// SelectTime parses the requested pickup time and enforces the minimum
// preparation lead time, suggesting the earliest acceptable slot instead of
// silently moving an early request.
func (s *CallFlowService) SelectTime(st models.CallState, speech string) *VoiceResponse {
	now := s.Clock()
	selectedSlot := ExtractSlotFromSpeech(speech, now)
	minSlot := CurrentSlot(now) + MinLeadSlots

	vr := &VoiceResponse{}
	if selectedSlot < minSlot {
		vr.AddSay(fmt.Sprintf("Mi dispiace, ma abbiamo bisogno di almeno 30 minuti per preparare il tuo ordine. Ti va bene ritirare alle %s?", SlotToClock(minSlot)))
		vr.GatherSpeech(s.actionURL("confirm-time", st, url.Values{"slot": {strconv.Itoa(minSlot)}}))
	} else {
		vr.AddSay(fmt.Sprintf("Hai selezionato le ore %s come orario di ritiro. Confermi?", SlotToClock(selectedSlot)))
		vr.GatherSpeech(s.actionURL("confirm-time", st, url.Values{"slot": {strconv.Itoa(selectedSlot)}}))
	}
	return vr
}

// ConfirmTime closes the dialogue: on affirmation the order is persisted
// and the caller hears the pickup time; a persistence failure is never
// spoken as a technical error. Either way the call ends.
func (s *CallFlowService) ConfirmTime(ctx context.Context, st models.CallState, speech string, slot int) *VoiceResponse {
	speechLower := strings.ToLower(speech)
	vr := &VoiceResponse{}

	if isFinalConfirmation(speechLower) {
		if _, err := s.Finalize(ctx, st, slot); err != nil {
			utils.GetLogger().Error("Failed to persist phone order",
				zap.String("storeId", st.StoreID), zap.Error(err))
			vr.AddSay("Il tuo ordine è stato ricevuto ma abbiamo avuto un piccolo problema tecnico nel salvarlo. Ti preghiamo di chiamare il negozio per conferma.")
		} else {
			vr.AddSay(fmt.Sprintf("Fantastico! Il tuo ordine è stato registrato. Sarà pronto per il ritiro alle %s. Grazie per aver scelto la nostra pizzeria!", SlotToClock(slot)))
		}
	} else {
		vr.AddSay("Nessun problema! Puoi richiamare quando vuoi per fare un nuovo ordine. Grazie per la tua pazienza e a presto!")
	}

	vr.EndCall()
	return vr
}

// Apology is the stage-fatal fallback document: a spoken apology and a
// graceful hangup, never a broken response.
func Apology() *VoiceResponse {
	vr := &VoiceResponse{}
	vr.AddSay("Mi dispiace, c'è stato un piccolo problema tecnico. Potresti richiamare tra qualche minuto?")
	vr.EndCall()
	return vr
}
