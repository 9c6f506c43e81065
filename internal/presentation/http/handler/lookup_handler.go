package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/luzbrill/pos-terminal/internal/domain/port"
	"github.com/luzbrill/pos-terminal/internal/presentation/http/dto/response"
)

// LookupHandler proxies catalog and client-directory reads so the terminal UI
// only ever talks to this process.
type LookupHandler struct {
	catalog   port.Catalog
	directory port.ClientDirectory
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(catalog port.Catalog, directory port.ClientDirectory) *LookupHandler {
	return &LookupHandler{catalog: catalog, directory: directory}
}

// ListItems lists sellable catalog items
func (h *LookupHandler) ListItems(c *gin.Context) {
	filter := port.ItemFilter{
		Search:     c.Query("search"),
		OnlyUnique: c.Query("unique") == "true",
	}

	items, err := h.catalog.ListAvailable(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Items retrieved", items)
}

// LookupItem resolves a scanned barcode or typed id
func (h *LookupHandler) LookupItem(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		response.BadRequest(c, "Code is required")
		return
	}

	item, err := h.catalog.FindByBarcodeOrID(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved", item)
}

// ListClients lists clients matching an optional search term
func (h *LookupHandler) ListClients(c *gin.Context) {
	clients, err := h.directory.ListClients(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Clients retrieved", clients)
}

// GetClient fetches one client with its commercial privileges
func (h *LookupHandler) GetClient(c *gin.Context) {
	id, ok := saleID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid client id")
		return
	}

	client, err := h.directory.GetClient(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client retrieved", client)
}
