package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"yanews/internal/middleware"
	"yanews/internal/services"
	"yanews/internal/utils"

	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	news     *services.NewsService
	comments *services.CommentService
	metrics  *middleware.Metrics
}

func NewNewsHandler(news *services.NewsService, comments *services.CommentService, metrics *middleware.Metrics) *NewsHandler {
	return &NewsHandler{
		news:     news,
		comments: comments,
		metrics:  metrics,
	}
}

func detailURL(newsID uint) string {
	return fmt.Sprintf("/news/%d/", newsID)
}

func commentsAnchor(newsID uint) string {
	return detailURL(newsID) + "#comments"
}

// Home lists the newest news items
func (h *NewsHandler) Home(c *gin.Context) {
	items, err := h.news.ListHome(c.Request.Context())
	if err != nil {
		serviceError(c, "list home", err)
		return
	}

	Render(c, http.StatusOK, "news/home.html", gin.H{
		"News": items,
	})
}

// Detail shows a news item with its comments. The comment form is only offered to logged-in users.
func (h *NewsHandler) Detail(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}

	var form *CommentForm
	if middleware.CurrentUser(c) != nil {
		form = &CommentForm{}
	}
	h.renderDetail(c, id, form)
}

func (h *NewsHandler) renderDetail(c *gin.Context, id uint, form *CommentForm) {
	news, comments, err := h.news.GetNewsWithComments(c.Request.Context(), id)
	if err != nil {
		serviceError(c, "get news", err)
		return
	}

	user := middleware.CurrentUser(c)
	data := gin.H{
		"News":        news,
		"ContentHTML": utils.RenderMarkdown(news.Text),
		"Comments":    commentViews(user, comments),
	}
	if user != nil && form != nil {
		data["Form"] = form
	}

	Render(c, http.StatusOK, "news/detail.html", data)
}

// CreateComment posts a comment on the news item.
// Anonymous submissions are dropped without a login redirect.
func (h *NewsHandler) CreateComment(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}

	user := middleware.CurrentUser(c)
	text := c.PostForm("text")

	_, err := h.comments.Create(c.Request.Context(), user, id, text)
	if err == nil {
		h.metrics.CommentEvent("create")
		c.Redirect(http.StatusFound, commentsAnchor(id))
		return
	}

	if errors.Is(err, services.ErrUnauthorized) {
		c.Redirect(http.StatusFound, detailURL(id))
		return
	}

	form := &CommentForm{Text: text}
	if form.bindValidation(err) {
		h.metrics.CommentEvent("rejected")
		h.renderDetail(c, id, form)
		return
	}

	serviceError(c, "create comment", err)
}
