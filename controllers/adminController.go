package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zaliyastore/shopit-gateway/backend"
	"github.com/zaliyastore/shopit-gateway/middlewares"
	"github.com/zaliyastore/shopit-gateway/models"
)

// AdminController fronts the dashboard surface. Everything here is a thin
// proxy; the role check happens in middleware before these run.
type AdminController struct {
	Backend *backend.Client
	Log     *zap.Logger
}

func (ac *AdminController) GetDashboardContent(ctx *gin.Context) {
	content, err := ac.Backend.GetDashboardContent(ctx.Request.Context(), middlewares.BackendToken(ctx))
	if err != nil {
		respondBackendError(ctx, ac.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, content)
}

func (ac *AdminController) GetSalesOverview(ctx *gin.Context) {
	overview, err := ac.Backend.GetSalesOverview(ctx.Request.Context(), middlewares.BackendToken(ctx))
	if err != nil {
		respondBackendError(ctx, ac.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, overview)
}

// UpsertProduct creates or edits a catalog product depending on editMode.
func (ac *AdminController) UpsertProduct(ctx *gin.Context) {
	var body struct {
		models.Product
		EditMode  bool   `json:"editMode"`
		ProductID string `json:"productId"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	message, err := ac.Backend.UpsertProduct(ctx.Request.Context(), middlewares.BackendToken(ctx), body.Product, body.EditMode, body.ProductID)
	if err != nil {
		respondBackendError(ctx, ac.Log, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": message})
}

func (ac *AdminController) DeleteProduct(ctx *gin.Context) {
	message, err := ac.Backend.DeleteProduct(ctx.Request.Context(), middlewares.BackendToken(ctx), ctx.Param("productId"))
	if err != nil {
		respondBackendError(ctx, ac.Log, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": message})
}

func (ac *AdminController) CreateCategory(ctx *gin.Context) {
	var collection models.Collection
	if err := ctx.ShouldBindJSON(&collection); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	message, err := ac.Backend.CreateCategory(ctx.Request.Context(), middlewares.BackendToken(ctx), collection)
	if err != nil {
		respondBackendError(ctx, ac.Log, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": message})
}

func (ac *AdminController) GetUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageData, err := ac.Backend.GetUsers(ctx.Request.Context(), middlewares.BackendToken(ctx),
		page, ctx.Query("query"), models.Role(ctx.Query("sortRole")))
	if err != nil {
		respondBackendError(ctx, ac.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, pageData)
}

func (ac *AdminController) DeleteUser(ctx *gin.Context) {
	message, err := ac.Backend.DeleteUser(ctx.Request.Context(), middlewares.BackendToken(ctx), ctx.Param("userId"))
	if err != nil {
		respondBackendError(ctx, ac.Log, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": message})
}

func (ac *AdminController) AssignModerator(ctx *gin.Context) {
	message, err := ac.Backend.AssignModerator(ctx.Request.Context(), middlewares.BackendToken(ctx), ctx.Param("userId"))
	if err != nil {
		respondBackendError(ctx, ac.Log, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": message})
}

func (ac *AdminController) SendMessageToUsers(ctx *gin.Context) {
	var message models.AdminMessage
	if err := ctx.ShouldBindJSON(&message); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	reply, err := ac.Backend.SendMessageToUsers(ctx.Request.Context(), middlewares.BackendToken(ctx), message)
	if err != nil {
		respondBackendError(ctx, ac.Log, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": reply})
}

func (ac *AdminController) GetMessage(ctx *gin.Context) {
	message, err := ac.Backend.GetMessage(ctx.Request.Context(), middlewares.BackendToken(ctx))
	if err != nil {
		respondBackendError(ctx, ac.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, message)
}

func (ac *AdminController) DeleteMessage(ctx *gin.Context) {
	message, err := ac.Backend.DeleteMessage(ctx.Request.Context(), middlewares.BackendToken(ctx), ctx.Param("messageId"))
	if err != nil {
		respondBackendError(ctx, ac.Log, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": message})
}

func (ac *AdminController) UpsertStorePromotion(ctx *gin.Context) {
	var promotion models.Promotion
	if err := ctx.ShouldBindJSON(&promotion); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	saved, err := ac.Backend.UpsertStorePromotion(ctx.Request.Context(), middlewares.BackendToken(ctx), promotion)
	if err != nil {
		respondBackendError(ctx, ac.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, saved)
}

func (ac *AdminController) GetStorePromotion(ctx *gin.Context) {
	promotion, err := ac.Backend.GetStorePromotion(ctx.Request.Context(), middlewares.BackendToken(ctx))
	if err != nil {
		respondBackendError(ctx, ac.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, promotion)
}

func (ac *AdminController) UpsertStoreSet(ctx *gin.Context) {
	var req backend.UpsertStoreSetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.CompleteSetID == "" || len(req.Products) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	message, err := ac.Backend.UpsertStoreSet(ctx.Request.Context(), middlewares.BackendToken(ctx), req)
	if err != nil {
		respondBackendError(ctx, ac.Log, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": message})
}

func (ac *AdminController) GetStoreSet(ctx *gin.Context) {
	set, err := ac.Backend.GetStoreSet(ctx.Request.Context(), middlewares.BackendToken(ctx))
	if err != nil {
		respondBackendError(ctx, ac.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, set)
}

func (ac *AdminController) UpsertStoreBanner(ctx *gin.Context) {
	var banner models.Banner
	if err := ctx.ShouldBindJSON(&banner); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	message, err := ac.Backend.UpsertStoreBanner(ctx.Request.Context(), middlewares.BackendToken(ctx), banner)
	if err != nil {
		respondBackendError(ctx, ac.Log, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": message})
}
