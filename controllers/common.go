package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zaliyastore/shopit-gateway/backend"
	"github.com/zaliyastore/shopit-gateway/checkout"
)

const (
	// Standard response messages
	msgInvalidInput        = "invalid input"
	msgItemAlreadyInCart   = "Item is already in your cart."
	msgItemAddedToCart     = "Item added to cart."
	msgItemRemovedFromCart = "Item removed from cart."
	msgCartInitialized     = "Cart initialized."
	msgQuantityUpdated     = "Quantity updated."
	msgCheckoutNotOpen     = "Checkout is not open."
	msgCheckoutBusy        = "An order is already being submitted."
	msgCartIsEmpty         = "Your cart is empty."
	msgCheckoutClosed      = "Checkout closed."
	msgPaymentClaimed      = "Payment claim received. We will confirm your transfer shortly."
	msgAuthFailed          = "Authentication failed."
	msgUpstreamUnreachable = "Store service is unreachable. Try again shortly."
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// respondBackendError renders an upstream failure with the upstream's own
// status and envelope so the UI can toast it verbatim. Transport-level
// failures become a 502.
func respondBackendError(ctx *gin.Context, log *zap.Logger, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		payload := gin.H{"status": "error", "message": apiErr.Message}
		if len(apiErr.Data) > 0 {
			payload["data"] = apiErr.Data
		}
		sendJSONResponse(ctx, apiErr.Status, payload)
		return
	}
	log.Error("upstream request failed", zap.Error(err))
	sendErrorResponse(ctx, http.StatusBadGateway, msgUpstreamUnreachable)
}

// respondCheckoutError maps orchestrator failures onto HTTP statuses,
// falling through to the upstream envelope for submission errors.
func respondCheckoutError(ctx *gin.Context, log *zap.Logger, err error) {
	var invalid *checkout.ValidationError
	switch {
	case errors.As(err, &invalid):
		sendJSONResponse(ctx, http.StatusBadRequest, gin.H{"message": msgInvalidInput, "fields": invalid.Fields})
	case errors.Is(err, checkout.ErrNotOpen):
		sendErrorResponse(ctx, http.StatusConflict, msgCheckoutNotOpen)
	case errors.Is(err, checkout.ErrBusy):
		sendErrorResponse(ctx, http.StatusConflict, msgCheckoutBusy)
	case errors.Is(err, checkout.ErrEmptyCart):
		sendErrorResponse(ctx, http.StatusBadRequest, msgCartIsEmpty)
	default:
		respondBackendError(ctx, log, err)
	}
}
