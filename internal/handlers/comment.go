package handlers

import (
	"net/http"
	"yanews/internal/middleware"
	"yanews/internal/services"
	"yanews/internal/utils"

	"github.com/gin-gonic/gin"
)

// CommentHandler serves the edit and delete pages. Routes are mounted behind LoginRequired.
type CommentHandler struct {
	comments *services.CommentService
	metrics  *middleware.Metrics
}

func NewCommentHandler(comments *services.CommentService, metrics *middleware.Metrics) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		metrics:  metrics,
	}
}

func (h *CommentHandler) ShowEdit(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}

	comment, err := h.comments.GetOwned(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		serviceError(c, "get comment", err)
		return
	}

	Render(c, http.StatusOK, "comment/edit.html", gin.H{
		"Comment": comment,
		"Form":    &CommentForm{Text: comment.Text},
	})
}

func (h *CommentHandler) Edit(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}

	ctx := c.Request.Context()
	user := middleware.CurrentUser(c)
	text := c.PostForm("text")

	comment, err := h.comments.Edit(ctx, user, id, text)
	if err == nil {
		h.metrics.CommentEvent("edit")
		c.Redirect(http.StatusFound, commentsAnchor(comment.NewsID))
		return
	}

	form := &CommentForm{Text: text}
	if !form.bindValidation(err) {
		serviceError(c, "edit comment", err)
		return
	}
	h.metrics.CommentEvent("rejected")

	// ownership was already checked by Edit
	current, err := h.comments.GetOwned(ctx, user, id)
	if err != nil {
		serviceError(c, "get comment", err)
		return
	}

	Render(c, http.StatusOK, "comment/edit.html", gin.H{
		"Comment": current,
		"Form":    form,
	})
}

func (h *CommentHandler) ShowDelete(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}

	comment, err := h.comments.GetOwned(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		serviceError(c, "get comment", err)
		return
	}

	Render(c, http.StatusOK, "comment/delete.html", gin.H{
		"Comment": comment,
	})
}

// Delete removes the comment on POST or DELETE and returns to the comment list.
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}

	newsID, err := h.comments.Delete(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		serviceError(c, "delete comment", err)
		return
	}
	h.metrics.CommentEvent("delete")

	c.Redirect(http.StatusFound, commentsAnchor(newsID))
}
