package handlers

import (
	"revista-editorial-api/helper"
	"revista-editorial-api/models"
	"revista-editorial-api/services"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	staffService services.StaffService
	Helper       *helper.HTTPHelper
}

func NewStaffHandler(staffService services.StaffService) *StaffHandler {
	return &StaffHandler{
		staffService: staffService,
		Helper:       helper.NewHTTPHelper(),
	}
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req models.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	staff, err := h.staffService.Create(c.Request.Context(), req, actorID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendCreated(c, "Staff created", staff)
}

func (h *StaffHandler) Update(c *gin.Context) {
	var req models.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	staff, err := h.staffService.Update(c.Request.Context(), c.Param("id"), req, actorID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Staff updated", staff)
}

func (h *StaffHandler) Get(c *gin.Context) {
	staff, err := h.staffService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "", staff)
}

func (h *StaffHandler) List(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}
	normalizePaging(&params.Page, &params.PageSize)

	staff, total, err := h.staffService.List(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", gin.H{
		"staff":  staff,
		"paging": h.Helper.GeneratePaging(params.Page, params.PageSize, total),
	})
}

// Profile echoes the authenticated claims plus the local staff record
// when one exists.
func (h *StaffHandler) Profile(c *gin.Context) {
	id := actorID(c)
	username, _ := c.Get("username")
	role, _ := c.Get("role")

	payload := gin.H{
		"external_user_id": id,
		"username":         username,
		"role":             role,
	}

	staff, err := h.staffService.GetByExternalUserID(c.Request.Context(), id)
	if err == nil {
		payload["staff"] = staff
	}

	h.Helper.SendSuccess(c, "", payload)
}
