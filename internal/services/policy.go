package services

import (
	"yanews/internal/models"
)

// CanModify reports whether user may edit or delete c. Only the author can.
func CanModify(user *models.User, c *models.Comment) bool {
	return user != nil && c != nil && user.ID == c.AuthorID
}
