package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zaliyastore/shopit-gateway/backend"
)

// CatalogController proxies the public product surface. The gateway adds
// nothing here; every figure comes from upstream untouched.
type CatalogController struct {
	Backend *backend.Client
	Log     *zap.Logger
}

func pageParam(ctx *gin.Context) int {
	page, _ := strconv.Atoi(ctx.Query("page"))
	return page
}

func (cc *CatalogController) GetProducts(ctx *gin.Context) {
	products, err := cc.Backend.GetProducts(ctx.Request.Context(), backend.ProductQuery{
		Page:       pageParam(ctx),
		Filter:     ctx.Query("filter"),
		Query:      ctx.Query("query"),
		Collection: ctx.Query("collection"),
	})
	if err != nil {
		respondBackendError(ctx, cc.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (cc *CatalogController) GetProduct(ctx *gin.Context) {
	product, err := cc.Backend.GetProduct(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondBackendError(ctx, cc.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

func (cc *CatalogController) GetCollections(ctx *gin.Context) {
	collections, err := cc.Backend.GetCollections(ctx.Request.Context())
	if err != nil {
		respondBackendError(ctx, cc.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, collections)
}

func (cc *CatalogController) GetCollectionProducts(ctx *gin.Context) {
	products, err := cc.Backend.GetCollectionProducts(ctx.Request.Context(), ctx.Param("slug"), pageParam(ctx))
	if err != nil {
		respondBackendError(ctx, cc.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (cc *CatalogController) GetBestSellingProduct(ctx *gin.Context) {
	product, err := cc.Backend.GetBestSellingProduct(ctx.Request.Context())
	if err != nil {
		respondBackendError(ctx, cc.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

func (cc *CatalogController) GetLatestDiscountedProduct(ctx *gin.Context) {
	product, err := cc.Backend.GetLatestDiscountedProduct(ctx.Request.Context())
	if err != nil {
		respondBackendError(ctx, cc.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

func (cc *CatalogController) GetTopSellers(ctx *gin.Context) {
	products, err := cc.Backend.GetTopSellers(ctx.Request.Context())
	if err != nil {
		respondBackendError(ctx, cc.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (cc *CatalogController) GetSuggestedForYou(ctx *gin.Context) {
	size, _ := strconv.Atoi(ctx.Query("size"))
	products, err := cc.Backend.GetSuggestedForYou(ctx.Request.Context(), ctx.Query("category"), size)
	if err != nil {
		respondBackendError(ctx, cc.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (cc *CatalogController) GetProductSet(ctx *gin.Context) {
	set, err := cc.Backend.GetProductSet(ctx.Request.Context())
	if err != nil {
		respondBackendError(ctx, cc.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, set)
}

func (cc *CatalogController) GetPromoBanner(ctx *gin.Context) {
	banner, err := cc.Backend.GetPromoBanner(ctx.Request.Context())
	if err != nil {
		respondBackendError(ctx, cc.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, banner)
}

func (cc *CatalogController) GetStates(ctx *gin.Context) {
	states, err := cc.Backend.GetStates(ctx.Request.Context())
	if err != nil {
		respondBackendError(ctx, cc.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, states)
}

func (cc *CatalogController) GetLGAs(ctx *gin.Context) {
	lgas, err := cc.Backend.GetLGAs(ctx.Request.Context(), ctx.Param("state"))
	if err != nil {
		respondBackendError(ctx, cc.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, lgas)
}

func (cc *CatalogController) JoinNewsletter(ctx *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	message, err := cc.Backend.JoinNewsletter(ctx.Request.Context(), body.Email)
	if err != nil {
		respondBackendError(ctx, cc.Log, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": message})
}
