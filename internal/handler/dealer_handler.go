package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/priyanshuKshk/dealer-info-api/internal/models"
	"github.com/priyanshuKshk/dealer-info-api/internal/service"
	"github.com/priyanshuKshk/dealer-info-api/internal/utils"
)

// DealerManager is the service surface the dealer handler depends on.
type DealerManager interface {
	Create(ctx context.Context, req *service.CreateDealerRequest) (*models.Dealer, error)
	List(ctx context.Context, filter models.DealerFilter) ([]*models.Dealer, error)
	Update(ctx context.Context, id string, req *service.UpdateDealerRequest) (*models.Dealer, error)
	Delete(ctx context.Context, id string) error
}

// DealerHandler handles dealer directory HTTP endpoints.
type DealerHandler struct {
	dealers DealerManager
}

// NewDealerHandler constructs a DealerHandler.
func NewDealerHandler(dealers DealerManager) *DealerHandler {
	return &DealerHandler{dealers: dealers}
}

// CreateDealer handles POST /dealers
func (h *DealerHandler) CreateDealer(c *gin.Context) {
	var req service.CreateDealerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, "Failed to add dealer", err.Error())
		return
	}

	dealer, err := h.dealers.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, utils.ErrDealerExists) {
			utils.Exists(c, "Dealer already exists")
			return
		}
		var ve *utils.ValidationError
		if errors.As(err, &ve) {
			utils.ValidationFailed(c, "Failed to add dealer", ve.Error())
			return
		}
		utils.Error(c, 500, "Failed to add dealer")
		return
	}

	c.JSON(201, dealer)
}

// ListDealers handles GET /dealers?name=&state=&city=
func (h *DealerHandler) ListDealers(c *gin.Context) {
	filter := models.DealerFilter{
		Name:  c.Query("name"),
		State: c.Query("state"),
		City:  c.Query("city"),
	}

	dealers, err := h.dealers.List(c.Request.Context(), filter)
	if err != nil {
		utils.Error(c, 500, "Failed to fetch dealers")
		return
	}

	c.JSON(200, dealers)
}

// UpdateDealer handles PUT /dealers/:id
func (h *DealerHandler) UpdateDealer(c *gin.Context) {
	var req service.UpdateDealerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "Invalid update")
		return
	}

	dealer, err := h.dealers.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, utils.ErrDealerNotFound) {
			utils.Error(c, 404, "Dealer not found")
			return
		}
		if errors.Is(err, utils.ErrDealerExists) {
			utils.Exists(c, "Dealer already exists")
			return
		}
		var ve *utils.ValidationError
		if errors.As(err, &ve) {
			utils.Error(c, 400, "Invalid update")
			return
		}
		utils.Error(c, 500, "Update failed")
		return
	}

	c.JSON(200, dealer)
}

// DeleteDealer handles DELETE /dealers/:id
func (h *DealerHandler) DeleteDealer(c *gin.Context) {
	if err := h.dealers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, utils.ErrDealerNotFound) {
			utils.Error(c, 404, "Dealer not found")
			return
		}
		utils.Error(c, 500, "Delete failed")
		return
	}

	c.JSON(200, gin.H{"message": "Dealer deleted"})
}
