package handlers

import (
	"revista-editorial-api/helper"
	"revista-editorial-api/models"
	"revista-editorial-api/services"

	"github.com/gin-gonic/gin"
)

type AuthorHandler struct {
	authorService services.AuthorService
	userService   services.UserService
	Helper        *helper.HTTPHelper
}

func NewAuthorHandler(authorService services.AuthorService, userService services.UserService) *AuthorHandler {
	return &AuthorHandler{
		authorService: authorService,
		userService:   userService,
		Helper:        helper.NewHTTPHelper(),
	}
}

func (h *AuthorHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	author, err := h.authorService.Get(ctx, c.Param("id"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	users, err := h.userService.GetUsersByIDs(ctx, []string{author.ExternalUserID})
	if err != nil {
		users = map[string]models.DirectoryUser{}
	}

	h.Helper.SendSuccess(c, "", gin.H{
		"author": author,
		"user":   users[author.ExternalUserID],
	})
}

func (h *AuthorHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}
	normalizePaging(&params.Page, &params.PageSize)

	authors, total, err := h.authorService.List(ctx, params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	ids := make([]string, 0, len(authors))
	for _, author := range authors {
		ids = append(ids, author.ExternalUserID)
	}
	users, err := h.userService.GetUsersByIDs(ctx, ids)
	if err != nil {
		users = map[string]models.DirectoryUser{}
	}

	h.Helper.SendSuccess(c, "", gin.H{
		"authors": authors,
		"users":   users,
		"paging":  h.Helper.GeneratePaging(params.Page, params.PageSize, total),
	})
}
