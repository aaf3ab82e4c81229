package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itemshare/item-sharing-backend/internal/identity"
	"github.com/itemshare/item-sharing-backend/internal/itemrequest"
	"github.com/itemshare/item-sharing-backend/internal/pkg/request"
	"github.com/itemshare/item-sharing-backend/internal/pkg/response"
)

type Handler struct {
	service itemrequest.Service
}

func NewHandler(service itemrequest.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateItemRequestRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	requestorID := identity.GetUserID(c)

	req, err := h.service.Create(c.Request.Context(), requestorID, body.Description)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewItemRequestResponse(req))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	actorID := identity.GetUserID(c)

	wi, err := h.service.GetByID(c.Request.Context(), actorID, req.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemRequestWithItemsResponse(wi))
}

func (h *Handler) ListOwn(c *gin.Context) {
	actorID := identity.GetUserID(c)

	reqs, err := h.service.ListOwn(c.Request.Context(), actorID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toResponses(reqs))
}

func (h *Handler) ListAll(c *gin.Context) {
	var query ListItemRequestsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	window, err := request.NewPageWindow(query.From, query.Size)
	if err != nil {
		response.Error(c, err)
		return
	}

	actorID := identity.GetUserID(c)

	reqs, err := h.service.ListAll(c.Request.Context(), actorID, window)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toResponses(reqs))
}

func (h *Handler) toResponses(reqs []*itemrequest.WithItems) []ItemRequestWithItemsResponse {
	items := make([]ItemRequestWithItemsResponse, len(reqs))
	for i, wi := range reqs {
		items[i] = NewItemRequestWithItemsResponse(wi)
	}
	return items
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, itemrequest.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "item request not found"})
	case errors.Is(err, itemrequest.ErrRequestorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, itemrequest.ErrDescriptionRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process item request"})
	}
}
