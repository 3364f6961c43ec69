package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siteguard/siteguard-api/internal/dto"
	apierrors "github.com/siteguard/siteguard-api/internal/errors"
	"github.com/siteguard/siteguard-api/internal/services"
)

// ResourceHandler coordinates inventory HTTP handlers.
type ResourceHandler struct {
	resourceService *services.ResourceService
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(resourceService *services.ResourceService) *ResourceHandler {
	return &ResourceHandler{
		resourceService: resourceService,
	}
}

// ResourceRequest is the wire shape of an inventory item. Status is not
// accepted: it is always derived server-side.
type ResourceRequest struct {
	Name      string   `json:"name" binding:"required"`
	Quantity  *float64 `json:"quantity" binding:"required"`
	Unit      string   `json:"unit" binding:"required"`
	Threshold *float64 `json:"threshold" binding:"required"`
}

func (r ResourceRequest) toInput() services.ResourceInput {
	return services.ResourceInput{
		Name:      r.Name,
		Quantity:  *r.Quantity,
		Unit:      r.Unit,
		Threshold: *r.Threshold,
	}
}

// List returns all resources of the workspace.
func (h *ResourceHandler) List(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	items, err := h.resourceService.List(workspaceID, userID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "Resources retrieved", dto.ResourceListDTO(items))
}

// Add appends a new resource.
func (h *ResourceHandler) Add(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	var req ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "name, quantity, unit and threshold are required")
		return
	}

	item, err := h.resourceService.Add(workspaceID, userID, req.toInput())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusCreated, "Resource added", item)
}

// BulkReplace swaps the entire inventory, all-or-nothing.
func (h *ResourceHandler) BulkReplace(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	var req []ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body: expected an array of resources")
		return
	}

	inputs := make([]services.ResourceInput, 0, len(req))
	for _, r := range req {
		if r.Quantity == nil || r.Threshold == nil {
			apierrors.BadRequest(c, "every resource requires name, quantity, unit and threshold")
			return
		}
		inputs = append(inputs, r.toInput())
	}

	items, err := h.resourceService.BulkReplace(workspaceID, userID, inputs)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "Resources replaced", dto.ResourceListDTO(items))
}

// Statistics reduces the inventory to counts by status and a quantity sum.
func (h *ResourceHandler) Statistics(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	stats, err := h.resourceService.Statistics(workspaceID, userID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "Resource statistics computed", stats)
}

// Get returns a single resource.
func (h *ResourceHandler) Get(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	item, err := h.resourceService.GetByID(workspaceID, userID, c.Param("resourceId"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "Resource retrieved", item)
}

// Update replaces a resource's fields and re-derives its status.
func (h *ResourceHandler) Update(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	var req ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "name, quantity, unit and threshold are required")
		return
	}

	item, err := h.resourceService.Update(workspaceID, userID, c.Param("resourceId"), req.toInput())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "Resource updated", item)
}

// Delete removes a resource.
func (h *ResourceHandler) Delete(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	if err := h.resourceService.Delete(workspaceID, userID, c.Param("resourceId")); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateQuantity changes only the quantity of a resource.
func (h *ResourceHandler) UpdateQuantity(c *gin.Context) {
	workspaceID, userID, ok := requestScope(c, "id")
	if !ok {
		return
	}

	type QuantityRequest struct {
		Quantity *float64 `json:"quantity" binding:"required"`
	}

	var req QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "quantity is required")
		return
	}

	item, err := h.resourceService.UpdateQuantity(workspaceID, userID, c.Param("resourceId"), *req.Quantity)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "Resource quantity updated", item)
}
