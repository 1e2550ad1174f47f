package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"tembea/internal/gateway/mpesa"
	"tembea/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const maxCallbackBodyBytes = 64 * 1024

type WebhookHandler struct {
	reconcileCommands commands.ReconcileCommands
}

func NewWebhookHandler(reconcileCommands commands.ReconcileCommands) *WebhookHandler {
	return &WebhookHandler{reconcileCommands: reconcileCommands}
}

// @Summary M-Pesa payment callback
// @Description Receives the Daraja STK push result. Always responds 200 so the gateway never retries against us; recovery is our job.
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Router /payments/mpesa/callback [post]
func (h *WebhookHandler) MpesaCallback(c *gin.Context) {
	// The gateway treats any non-200 as transient and retries; our replay
	// protection makes retries harmless, but failing loudly buys nothing.
	defer c.JSON(http.StatusOK, gin.H{
		"ResultCode": 0,
		"ResultDesc": "Accepted",
	})

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCallbackBodyBytes))
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to read mpesa callback body", "error", err)
		return
	}

	var envelope mpesa.CallbackEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to parse mpesa callback", "error", err)
		return
	}

	cb := envelope.Body.STKCallback
	if cb.CheckoutRequestID == "" {
		slog.WarnContext(c.Request.Context(), "mpesa callback missing checkout request ID")
		return
	}

	if err := h.reconcileCommands.RecordCallback(c.Request.Context(), &cb, raw); err != nil {
		// Already logged downstream; the sweeper owns recovery from here.
		return
	}
}
