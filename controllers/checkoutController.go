package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/zaliyastore/shopit-gateway/backend"
	"github.com/zaliyastore/shopit-gateway/checkout"
	"github.com/zaliyastore/shopit-gateway/middlewares"
	"github.com/zaliyastore/shopit-gateway/models"
	"github.com/zaliyastore/shopit-gateway/notifier"
)

type CheckoutController struct {
	Checkouts *checkout.Registry
	Backend   *backend.Client
	Hub       *notifier.Hub
	Log       *zap.Logger
}

func (cc *CheckoutController) checkout(ctx *gin.Context) *checkout.Checkout {
	return cc.Checkouts.Get(middlewares.SessionID(ctx), middlewares.SessionStore(ctx))
}

// Open starts the checkout form, prefilled for authenticated users, and
// kicks off the pricing queries for the current cart.
func (cc *CheckoutController) Open(ctx *gin.Context) {
	co := cc.checkout(ctx)
	if err := co.Open(ctx.Request.Context()); err != nil {
		respondCheckoutError(ctx, cc.Log, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"form":  co.Form(),
		"quote": co.Aggregator().Snapshot(),
	})
}

// SetAddress updates the destination and, when given, the delivery method.
// A state change invalidates the previous delivery quote.
func (cc *CheckoutController) SetAddress(ctx *gin.Context) {
	var body struct {
		State          string                `json:"state" binding:"required"`
		LGA            string                `json:"lga"`
		DeliveryMethod models.DeliveryMethod `json:"deliveryMethod" binding:"omitempty,oneof=pick_up waybill"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	co := cc.checkout(ctx)
	if err := co.SetAddress(ctx.Request.Context(), body.State, body.LGA); err != nil {
		respondCheckoutError(ctx, cc.Log, err)
		return
	}
	if body.DeliveryMethod != "" {
		if err := co.SetDeliveryMethod(body.DeliveryMethod); err != nil {
			respondCheckoutError(ctx, cc.Log, err)
			return
		}
	}

	form := co.Form()
	includeFee := form.DeliveryMethod != models.DeliveryPickUp
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"form":         form,
		"quote":        co.Aggregator().Snapshot(),
		"displayTotal": co.Aggregator().DisplayTotal(includeFee),
	})
}

// Submit validates the form and creates the order upstream. Success yields
// a payment link or manual-transfer instructions; failure keeps the form
// open with the entered data intact.
func (cc *CheckoutController) Submit(ctx *gin.Context) {
	var form checkout.Form
	if err := ctx.ShouldBindJSON(&form); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	co := cc.checkout(ctx)
	result, err := co.Submit(ctx.Request.Context(), middlewares.BackendToken(ctx), form)
	if err != nil {
		respondCheckoutError(ctx, cc.Log, err)
		return
	}

	cc.Hub.Broadcast(notifier.OrderEvent{Type: notifier.EventOrderCreated, Order: result.Order})
	ctx.JSON(http.StatusCreated, result)
}

func (cc *CheckoutController) Close(ctx *gin.Context) {
	if err := cc.checkout(ctx).Close(); err != nil {
		respondCheckoutError(ctx, cc.Log, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgCheckoutClosed})
}

// ClaimPayment records the customer's bank-transfer claim and notifies the
// admin order feed. The session's active checkout is used when it created
// the order; otherwise the claim goes straight upstream, which covers
// claims made later from the order history page.
func (cc *CheckoutController) ClaimPayment(ctx *gin.Context) {
	orderID := ctx.Param("orderId")
	token := middlewares.BackendToken(ctx)

	co := cc.checkout(ctx)
	if result := co.Result(); result != nil && result.Order.ID == orderID {
		if _, err := co.ConfirmManualPayment(ctx.Request.Context(), token); err != nil {
			respondCheckoutError(ctx, cc.Log, err)
			return
		}
	} else if err := cc.Backend.ClaimPayment(ctx.Request.Context(), token, orderID); err != nil {
		respondBackendError(ctx, cc.Log, err)
		return
	}

	cc.Hub.Broadcast(notifier.OrderEvent{Type: notifier.EventPaymentClaims, Order: models.Order{ID: orderID}})
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgPaymentClaimed})
}

// PaymentQR renders the manual-transfer instructions for an order as a
// QR PNG: the receiving account plus the order reference to tag the
// transfer with.
func (cc *CheckoutController) PaymentQR(ctx *gin.Context) {
	orderID := ctx.Param("orderId")

	order, err := cc.Backend.GetOrder(ctx.Request.Context(), middlewares.BackendToken(ctx), orderID)
	if err != nil {
		respondBackendError(ctx, cc.Log, err)
		return
	}

	account := cc.checkout(ctx).BankAccounts()[0]
	content := fmt.Sprintf("%s %s (%s)\nAmount: %.2f NGN\nReference: %s",
		account.Bank, account.Number, account.Name, order.GrandTotal(), order.ID)

	png, err := qrcode.Encode(content, qrcode.Medium, 256)
	if err != nil {
		cc.Log.Error("qr encoding failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, "failed to render QR code")
		return
	}
	ctx.Data(http.StatusOK, "image/png", png)
}
