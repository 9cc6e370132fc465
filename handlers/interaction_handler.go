package handlers

import (
	"revista-editorial-api/helper"
	"revista-editorial-api/models"
	"revista-editorial-api/services"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	interactionService services.InteractionService
	userService        services.UserService
	Helper             *helper.HTTPHelper
}

func NewInteractionHandler(interactionService services.InteractionService, userService services.UserService) *InteractionHandler {
	return &InteractionHandler{
		interactionService: interactionService,
		userService:        userService,
		Helper:             helper.NewHTTPHelper(),
	}
}

// CreatePublicComment serves the unauthenticated route; anonymous
// commenters simply leave external_user_id empty.
func (h *InteractionHandler) CreatePublicComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	comment, err := h.interactionService.CreatePublicComment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendCreated(c, "Comment created", comment)
}

func (h *InteractionHandler) ListPublicComments(c *gin.Context) {
	h.listComments(c, models.InteractionPublicComment)
}

func (h *InteractionHandler) ListEditorialComments(c *gin.Context) {
	h.listComments(c, models.InteractionEditorialComment)
}

func (h *InteractionHandler) listComments(c *gin.Context, kind models.InteractionType) {
	ctx := c.Request.Context()

	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}
	normalizePaging(&params.Page, &params.PageSize)

	comments, total, err := h.interactionService.ListByArticle(ctx, c.Param("id"), kind, params, actorID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	ids := make([]string, 0, len(comments))
	for _, comment := range comments {
		ids = append(ids, comment.ExternalUserID)
	}
	users, err := h.userService.GetUsersByIDs(ctx, ids)
	if err != nil {
		users = map[string]models.DirectoryUser{}
	}

	h.Helper.SendSuccess(c, "", gin.H{
		"comments": comments,
		"users":    users,
		"paging":   h.Helper.GeneratePaging(params.Page, params.PageSize, total),
	})
}

func (h *InteractionHandler) CreateEditorialComment(c *gin.Context) {
	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	comment, err := h.interactionService.CreateEditorialComment(c.Request.Context(), c.Param("id"), req.Content, actorID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendCreated(c, "Editorial comment created", comment)
}

func (h *InteractionHandler) UpdateComment(c *gin.Context) {
	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	comment, err := h.interactionService.Update(c.Request.Context(), c.Param("comment_id"), req.Content, actorID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Comment updated", comment)
}

func (h *InteractionHandler) DeleteComment(c *gin.Context) {
	if err := h.interactionService.Delete(c.Request.Context(), c.Param("comment_id"), actorID(c)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Comment deleted", h.Helper.EmptyJsonMap())
}
