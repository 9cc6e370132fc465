package handlers

import (
	"revista-editorial-api/helper"
	"revista-editorial-api/models"
	"revista-editorial-api/services"

	"github.com/gin-gonic/gin"
)

type VolumeHandler struct {
	volumeService services.VolumeService
	Helper        *helper.HTTPHelper
}

func NewVolumeHandler(volumeService services.VolumeService) *VolumeHandler {
	return &VolumeHandler{
		volumeService: volumeService,
		Helper:        helper.NewHTTPHelper(),
	}
}

func (h *VolumeHandler) Create(c *gin.Context) {
	var req models.CreateVolumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	volume, err := h.volumeService.Create(c.Request.Context(), req, actorID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendCreated(c, "Volume created", volume)
}

func (h *VolumeHandler) Update(c *gin.Context) {
	var req models.UpdateVolumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	volume, err := h.volumeService.Update(c.Request.Context(), c.Param("id"), req, actorID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Volume updated", volume)
}

func (h *VolumeHandler) Get(c *gin.Context) {
	volume, err := h.volumeService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "", volume)
}

func (h *VolumeHandler) List(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}
	normalizePaging(&params.Page, &params.PageSize)

	volumes, total, err := h.volumeService.List(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", gin.H{
		"volumes": volumes,
		"paging":  h.Helper.GeneratePaging(params.Page, params.PageSize, total),
	})
}
