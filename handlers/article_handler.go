package handlers

import (
	"revista-editorial-api/helper"
	"revista-editorial-api/models"
	"revista-editorial-api/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	userService    services.UserService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, userService services.UserService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		userService:    userService,
		Helper:         helper.NewHTTPHelper(),
	}
}

// actorID pulls the external user id the auth middleware stored. Empty
// on public routes.
func actorID(c *gin.Context) string {
	v, exists := c.Get("external_user_id")
	if !exists {
		return ""
	}
	id, _ := v.(string)
	return id
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), req, actorID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Article created", article)
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	h.listArticles(c, false)
}

func (h *ArticleHandler) GetPublicArticles(c *gin.Context) {
	h.listArticles(c, true)
}

func (h *ArticleHandler) listArticles(c *gin.Context, isPublic bool) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}
	normalizePaging(&params.Page, &params.PageSize)

	articles, total, err := h.articleService.GetArticles(c.Request.Context(), params, isPublic)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", gin.H{
		"articles": articles,
		"paging":   h.Helper.GeneratePaging(params.Page, params.PageSize, total),
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.articleService.GetArticle(c.Request.Context(), c.Param("id"), actorID(c), false)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "", article)
}

func (h *ArticleHandler) GetPublicArticle(c *gin.Context) {
	ctx := c.Request.Context()

	article, err := h.articleService.GetArticle(ctx, c.Param("id"), "", true)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	// Resolve author names in one directory round trip. Best effort:
	// the article is still served when the directory is down.
	authors, err := h.userService.GetUsersByIDs(ctx, article.AuthorIDs)
	if err != nil {
		authors = map[string]models.DirectoryUser{}
	}

	h.Helper.SendSuccess(c, "", gin.H{
		"article": article,
		"authors": authors,
	})
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	if err := h.articleService.DeleteArticle(c.Request.Context(), c.Param("id"), actorID(c)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Article deleted", h.Helper.EmptyJsonMap())
}

func (h *ArticleHandler) ReviseContent(c *gin.Context) {
	var req models.ReviseContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	history, err := h.articleService.ReviseContent(c.Request.Context(), c.Param("id"), req, actorID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendCreated(c, "Content revised", history)
}

func (h *ArticleHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateArticleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	if err := h.articleService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, actorID(c)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Status updated", h.Helper.EmptyJsonMap())
}

func (h *ArticleHandler) AdvancePosition(c *gin.Context) {
	var req models.AdvancePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	if err := h.articleService.AdvancePosition(c.Request.Context(), c.Param("id"), req.Position, actorID(c)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Editorial position updated", h.Helper.EmptyJsonMap())
}

func (h *ArticleHandler) AddTeamMember(c *gin.Context) {
	var req models.AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	if err := h.articleService.AddTeamMember(c.Request.Context(), c.Param("id"), req, actorID(c)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Team member added", h.Helper.EmptyJsonMap())
}

func (h *ArticleHandler) AssignVolume(c *gin.Context) {
	var req models.AssignVolumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	if err := h.articleService.AssignToVolume(c.Request.Context(), c.Param("id"), req.VolumeID, actorID(c)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Article assigned to volume", h.Helper.EmptyJsonMap())
}

func (h *ArticleHandler) GetEditorial(c *gin.Context) {
	editorial, err := h.articleService.GetEditorial(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "", editorial)
}

func (h *ArticleHandler) ListHistory(c *gin.Context) {
	histories, err := h.articleService.ListHistory(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "", histories)
}

func (h *ArticleHandler) GetHistory(c *gin.Context) {
	history, err := h.articleService.GetHistory(c.Request.Context(), c.Param("id"), c.Param("history_id"), actorID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "", history)
}

func normalizePaging(page, pageSize *int) {
	if *page < 0 {
		*page = 0
	}
	if *pageSize <= 0 {
		*pageSize = 10
	}
	if *pageSize > 50 {
		*pageSize = 50
	}
}
