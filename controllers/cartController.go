package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zaliyastore/shopit-gateway/checkout"
	"github.com/zaliyastore/shopit-gateway/middlewares"
	"github.com/zaliyastore/shopit-gateway/models"
	"github.com/zaliyastore/shopit-gateway/pricing"
	"github.com/zaliyastore/shopit-gateway/store"
	"github.com/zaliyastore/shopit-gateway/utils"
)

// CartController mutates the session cart and keeps the session's pricing
// view in step. Prices always come from upstream; the cart endpoints only
// ever return what the aggregator has resolved so far.
type CartController struct {
	Checkouts *checkout.Registry
	Log       *zap.Logger
}

func (cc *CartController) session(ctx *gin.Context) (*store.Store, *pricing.Aggregator) {
	st := middlewares.SessionStore(ctx)
	co := cc.Checkouts.Get(middlewares.SessionID(ctx), st)
	return st, co.Aggregator()
}

func (cc *CartController) GetCart(ctx *gin.Context) {
	st, agg := cc.session(ctx)
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"items": st.Cart(),
		"quote": agg.Snapshot(),
	})
}

func (cc *CartController) AddItemToCart(ctx *gin.Context) {
	var item models.CartLine
	if err := ctx.ShouldBindJSON(&item); err != nil || item.ID == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	st, agg := cc.session(ctx)
	if utils.CheckDuplicates(st.Cart(), func(l models.CartLine) string { return l.ID }, item.ID) {
		sendErrorResponse(ctx, http.StatusConflict, msgItemAlreadyInCart)
		return
	}

	st.AddItemToCart(item)
	agg.RefreshItems(ctx.Request.Context(), st.Cart())
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgItemAddedToCart, "items": st.Cart()})
}

// InitializeCart merges a cart the browser held locally, for example from
// before the user signed in. Ids already present are skipped.
func (cc *CartController) InitializeCart(ctx *gin.Context) {
	var body struct {
		Items []models.CartLine `json:"items" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	st, agg := cc.session(ctx)
	st.InitializeCart(body.Items)
	agg.RefreshItems(ctx.Request.Context(), st.Cart())
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgCartInitialized, "items": st.Cart()})
}

func (cc *CartController) RemoveItemFromCart(ctx *gin.Context) {
	st, agg := cc.session(ctx)
	st.RemoveItemFromCart(ctx.Param("productId"))
	agg.RefreshItems(ctx.Request.Context(), st.Cart())
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgItemRemovedFromCart, "items": st.Cart()})
}

func (cc *CartController) UpdateItemQuantity(ctx *gin.Context) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	st, agg := cc.session(ctx)
	st.UpdateItemQuantity(ctx.Param("productId"), body.Quantity)
	agg.RefreshItems(ctx.Request.Context(), st.Cart())
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgQuantityUpdated, "items": st.Cart()})
}

// GetQuote returns the reconciled totals for the session cart. With a
// state query parameter the delivery fee is quoted too; while anything is
// unresolved the displayed total is the pending marker.
func (cc *CartController) GetQuote(ctx *gin.Context) {
	st, agg := cc.session(ctx)
	state := ctx.Query("state")

	agg.RefreshItems(ctx.Request.Context(), st.Cart())
	agg.RefreshDeliveryFee(ctx.Request.Context(), state, pricing.TotalQuantity(st.Cart()))

	includeFee := state != ""
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"quote":        agg.Snapshot(),
		"displayTotal": agg.DisplayTotal(includeFee),
	})
}
