package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/luzbrill/pos-terminal/internal/application/service"
	"github.com/luzbrill/pos-terminal/internal/presentation/http/dto/request"
	"github.com/luzbrill/pos-terminal/internal/presentation/http/dto/response"
)

// CheckoutHandler handles sale submission and lifecycle requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Submit turns the cart into a sale on the sales service
func (h *CheckoutHandler) Submit(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		response.BadRequest(c, "Invalid cart id")
		return
	}

	var req request.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.checkoutService.Submit(c.Request.Context(), id, service.SubmitInput{
		AsPending:      req.AsPending,
		AmountTendered: req.AmountTendered,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.AwaitingConfirm {
		response.Created(c, "Sale submitted, awaiting confirmation", result)
		return
	}
	response.Created(c, "Sale confirmed", result)
}

// LoadForEdit reseeds a cart session from a pending sale
func (h *CheckoutHandler) LoadForEdit(c *gin.Context) {
	sess := GetSession(c)
	if sess == nil {
		response.Unauthorized(c, "Session required")
		return
	}

	sid, ok := saleID(c, "sale_id")
	if !ok {
		response.BadRequest(c, "Invalid sale id")
		return
	}

	view, err := h.checkoutService.LoadForEdit(c.Request.Context(), sess, sid)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale loaded for editing", view)
}

// ConfirmPending promotes a pending sale
func (h *CheckoutHandler) ConfirmPending(c *gin.Context) {
	sid, ok := saleID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sale id")
		return
	}

	sale, err := h.checkoutService.ConfirmPending(c.Request.Context(), sid)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale confirmed", sale)
}

// Annul voids a sale
func (h *CheckoutHandler) Annul(c *gin.Context) {
	sid, ok := saleID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sale id")
		return
	}

	sale, err := h.checkoutService.Annul(c.Request.Context(), sid)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale annulled", sale)
}

// GetSale fetches a sale with its lines
func (h *CheckoutHandler) GetSale(c *gin.Context) {
	sid, ok := saleID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sale id")
		return
	}

	sale, err := h.checkoutService.GetSale(c.Request.Context(), sid)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved", sale)
}
