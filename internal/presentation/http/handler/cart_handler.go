package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/luzbrill/pos-terminal/internal/application/service"
	"github.com/luzbrill/pos-terminal/internal/domain/enum"
	"github.com/luzbrill/pos-terminal/internal/presentation/http/dto/request"
	"github.com/luzbrill/pos-terminal/internal/presentation/http/dto/response"
	"github.com/luzbrill/pos-terminal/pkg/capability"
)

// CartHandler handles cart-session HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Create opens a new cart session
func (h *CartHandler) Create(c *gin.Context) {
	sess := GetSession(c)
	if sess == nil {
		response.Unauthorized(c, "Session required")
		return
	}

	var req request.CreateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.cartService.CreateCart(c.Request.Context(), sess, req.ClientID, req.RepresentativeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cart created", view)
}

// Get returns a cart with freshly computed totals
func (h *CartHandler) Get(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		response.BadRequest(c, "Invalid cart id")
		return
	}

	view, err := h.cartService.GetCart(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart retrieved", view)
}

// AddLine adds a catalog item to the cart
func (h *CartHandler) AddLine(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		response.BadRequest(c, "Invalid cart id")
		return
	}

	var req request.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	in := service.AddLineInput{Code: req.Code}
	if req.Code == "" {
		if req.ItemID == nil {
			response.BadRequest(c, "Either code or item_id is required")
			return
		}
		kind, valid := enum.ParseLineKind(req.Kind)
		if !valid {
			response.BadRequest(c, "Unknown line kind: "+req.Kind)
			return
		}
		in.ItemID = *req.ItemID
		in.Kind = kind
	}

	view, err := h.cartService.AddLine(c.Request.Context(), id, in)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line added", view)
}

// UpdateLine edits a line's quantity, price or note. Price overrides require
// the price-override capability.
func (h *CartHandler) UpdateLine(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		response.BadRequest(c, "Invalid cart id")
		return
	}
	idx, ok := lineIndex(c)
	if !ok {
		response.BadRequest(c, "Invalid line index")
		return
	}

	var req request.UpdateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.UnitPrice != nil {
		sess := GetSession(c)
		if sess == nil || !sess.Caps.Can(capability.PriceOverride) {
			response.Forbidden(c, "You do not have permission to override prices")
			return
		}
	}

	view, err := h.cartService.UpdateLine(id, idx, service.UpdateLineInput{
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Note:      req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line updated", view)
}

// RemoveLine deletes a line from the cart
func (h *CartHandler) RemoveLine(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		response.BadRequest(c, "Invalid cart id")
		return
	}
	idx, ok := lineIndex(c)
	if !ok {
		response.BadRequest(c, "Invalid line index")
		return
	}

	view, err := h.cartService.RemoveLine(id, idx)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line removed", view)
}

// SetClient selects the nominal client and optional representative
func (h *CartHandler) SetClient(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		response.BadRequest(c, "Invalid cart id")
		return
	}

	var req request.SetClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.cartService.SetClient(c.Request.Context(), id, req.ClientID, req.RepresentativeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client selected", view)
}

// SetTender records the payment method, cash tendered and delivery flag
func (h *CartHandler) SetTender(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		response.BadRequest(c, "Invalid cart id")
		return
	}

	var req request.SetTenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tender, ok := enum.ParseTender(req.Tender)
	if !ok {
		response.BadRequest(c, "Unknown tender: "+req.Tender)
		return
	}

	view, err := h.cartService.SetTender(id, tender, req.AmountTendered, req.IsDelivery)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tender updated", view)
}

// Delete abandons the cart session
func (h *CartHandler) Delete(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		response.BadRequest(c, "Invalid cart id")
		return
	}

	if err := h.cartService.Abandon(id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
