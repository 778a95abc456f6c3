// File: handlers/call.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pizzavoice/models"
	voice "pizzavoice/services/voice"
	"pizzavoice/utils"
)

// CallHandler exposes the telephony webhooks. Whatever happens inside a
// stage, the response is always a valid voice document: a malformed one
// would break the live phone call.
type CallHandler struct {
	Svc *voice.CallFlowService
}

func NewCallHandler(svc *voice.CallFlowService) *CallHandler {
	return &CallHandler{Svc: svc}
}

func (h *CallHandler) respond(c *gin.Context, vr *voice.VoiceResponse) {
	c.Header("Content-Type", "text/xml")
	c.String(http.StatusOK, vr.Render())
}

func (h *CallHandler) recoverStage(c *gin.Context, stage string) {
	if r := recover(); r != nil {
		utils.GetLogger().Error("Voice stage failed",
			zap.String("stage", stage), zap.Any("error", r))
		h.respond(c, voice.Apology())
	}
}

// stateFrom recovers the continuation state from the callback URL. A state
// that cannot be decoded degrades to the empty state with the default
// store, never to a dropped call.
func (h *CallHandler) stateFrom(c *gin.Context) models.CallState {
	st := voice.DecodeState(c.Query("state"))
	if st.StoreID == "" {
		st.StoreID = c.DefaultQuery("storeId", h.Svc.DefaultStoreID)
	}
	return st
}

// IncomingHandler handles POST /api/calls/incoming.
func (h *CallHandler) IncomingHandler(c *gin.Context) {
	defer h.recoverStage(c, "incoming")
	storeID := c.DefaultQuery("storeId", h.Svc.DefaultStoreID)
	h.respond(c, h.Svc.Incoming(storeID))
}

// CollectOrderHandler handles POST /api/calls/collect-order.
func (h *CallHandler) CollectOrderHandler(c *gin.Context) {
	defer h.recoverStage(c, "collect-order")
	st := h.stateFrom(c)
	speech := c.PostForm("SpeechResult")
	h.respond(c, h.Svc.CollectOrder(c.Request.Context(), st, speech))
}

// AddDrinksHandler handles POST /api/calls/add-drinks.
func (h *CallHandler) AddDrinksHandler(c *gin.Context) {
	defer h.recoverStage(c, "add-drinks")
	st := h.stateFrom(c)
	speech := c.PostForm("SpeechResult")
	h.respond(c, h.Svc.AddDrinks(c.Request.Context(), st, speech))
}

// AddDessertHandler handles POST /api/calls/add-dessert.
func (h *CallHandler) AddDessertHandler(c *gin.Context) {
	defer h.recoverStage(c, "add-dessert")
	st := h.stateFrom(c)
	speech := c.PostForm("SpeechResult")
	h.respond(c, h.Svc.AddDessert(c.Request.Context(), st, speech))
}

// FinalConfirmHandler handles POST /api/calls/final-confirm.
func (h *CallHandler) FinalConfirmHandler(c *gin.Context) {
	defer h.recoverStage(c, "final-confirm")
	st := h.stateFrom(c)
	speech := c.PostForm("SpeechResult")
	caller := c.PostForm("Caller")
	h.respond(c, h.Svc.FinalConfirm(st, speech, caller))
}

// SelectTimeHandler handles POST /api/calls/select-time.
func (h *CallHandler) SelectTimeHandler(c *gin.Context) {
	defer h.recoverStage(c, "select-time")
	st := h.stateFrom(c)
	speech := c.PostForm("SpeechResult")
	h.respond(c, h.Svc.SelectTime(st, speech))
}

// ConfirmTimeHandler handles POST /api/calls/confirm-time.
func (h *CallHandler) ConfirmTimeHandler(c *gin.Context) {
	defer h.recoverStage(c, "confirm-time")
	st := h.stateFrom(c)
	speech := c.PostForm("SpeechResult")
	slot, err := strconv.Atoi(c.Query("slot"))
	if err != nil {
		slot = st.PickupSlot
	}
	h.respond(c, h.Svc.ConfirmTime(c.Request.Context(), st, speech, slot))
}
