package handlers

import (
	"errors"
	"html/template"
	"yanews/internal/models"
	"yanews/internal/services"
	"yanews/internal/utils"
)

// CommentForm carries the submitted comment text and its field errors back to the template.
type CommentForm struct {
	Text   string
	Errors map[string][]string
}

func (f *CommentForm) AddError(field, msg string) {
	if f.Errors == nil {
		f.Errors = make(map[string][]string)
	}
	f.Errors[field] = append(f.Errors[field], msg)
}

// FieldErrors returns the messages for one field, nil when it is valid.
func (f *CommentForm) FieldErrors(field string) []string {
	if f == nil {
		return nil
	}
	return f.Errors[field]
}

// bindValidation puts a *services.ValidationError on the form. Other errors are left to the caller.
func (f *CommentForm) bindValidation(err error) bool {
	var verr *services.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	f.AddError(verr.Field, verr.Message)
	return true
}

// CommentView is a comment as shown on the detail page.
type CommentView struct {
	models.Comment
	ContentHTML template.HTML
	Floor       int
	Editable    bool
}

func commentViews(user *models.User, comments []models.Comment) []CommentView {
	views := make([]CommentView, len(comments))
	for i := range comments {
		views[i] = CommentView{
			Comment:     comments[i],
			ContentHTML: utils.RenderMarkdown(comments[i].Text),
			Floor:       i + 1,
			Editable:    services.CanModify(user, &comments[i]),
		}
	}
	return views
}
