package handler

import (
	"errors"
	"net/http"

	"github.com/bizdesk/backend/internal/domain/resource"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/bizdesk/backend/internal/interfaces/http/dto"
	"github.com/bizdesk/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// OrderItemHandler serves order items. Every mutation goes through the
// guarded accessor, which moves stock in the same transaction.
type OrderItemHandler struct {
	*ResourceHandler
}

// NewOrderItemHandler creates the order-item handler. store must reject
// additions and updates that exceed stock with shared.ErrInsufficientStock.
func NewOrderItemHandler(store Accessor) *OrderItemHandler {
	return &OrderItemHandler{ResourceHandler: NewResourceHandler(resource.OrderItem, store)}
}

// AddOrderItemRequest is the body of an order item addition
// @Description Order item to add; quantity is reserved from inventory
type AddOrderItemRequest struct {
	OrderID   int64           `json:"order_id" binding:"required" example:"1001"`
	ProductID int64           `json:"product_id" binding:"required" example:"7"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0" example:"3"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"number" example:"19.99"`
}

// Add godoc
// @Summary      Add an order item
// @Description  Reserves the quantity from the product's inventory and inserts the item atomically
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body AddOrderItemRequest true "Order item"
// @Success      201 {object} dto.MessageResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      413 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse "Insufficient stock available"
// @Failure      500 {object} dto.ErrorResponse
// @Router       /oap/order-items/add [post]
func (h *OrderItemHandler) Add(c *gin.Context) {
	var req AddOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.HandleError(c, shared.ErrBodyTooLarge)
			return
		}
		h.BadRequest(c, middleware.ValidationMessage(err))
		return
	}
	if req.UnitPrice.IsNegative() {
		h.BadRequest(c, "unit_price: must be greater than or equal to 0")
		return
	}

	_, err := h.store.Add(c.Request.Context(), req.OrderID, req.ProductID, req.Quantity, req.UnitPrice)
	if err != nil {
		h.WriteFailed(c, err)
		return
	}
	h.Created(c, dto.Added(h.res.Label))
}
