package handlers

import (
	"revista-editorial-api/helper"
	"revista-editorial-api/models"
	"revista-editorial-api/services"

	"github.com/gin-gonic/gin"
)

type PendingHandler struct {
	pendingService services.PendingService
	Helper         *helper.HTTPHelper
}

func NewPendingHandler(pendingService services.PendingService) *PendingHandler {
	return &PendingHandler{
		pendingService: pendingService,
		Helper:         helper.NewHTTPHelper(),
	}
}

func (h *PendingHandler) Create(c *gin.Context) {
	var req models.CreatePendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	pending, err := h.pendingService.Create(c.Request.Context(), req, actorID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendCreated(c, "Pending request filed", pending)
}

func (h *PendingHandler) Get(c *gin.Context) {
	pending, err := h.pendingService.Get(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "", pending)
}

func (h *PendingHandler) List(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}
	normalizePaging(&params.Page, &params.PageSize)

	status := models.PendingStatus(c.Query("status"))

	pendings, total, err := h.pendingService.List(c.Request.Context(), status, params, actorID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", gin.H{
		"pending_requests": pendings,
		"paging":           h.Helper.GeneratePaging(params.Page, params.PageSize, total),
	})
}

func (h *PendingHandler) Resolve(c *gin.Context) {
	var req models.ResolvePendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	pending, err := h.pendingService.Resolve(c.Request.Context(), c.Param("id"), req.Approve, actorID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Pending request resolved", pending)
}
