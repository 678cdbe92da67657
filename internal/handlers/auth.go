package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"
	"yanews/internal/middleware"
	"yanews/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	LoginURL  = "/auth/login/"
	SignupURL = "/auth/signup/"
	LogoutURL = "/auth/logout/"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// safeNext only accepts local absolute paths as a post-login target.
// Browsers drop tab and newline from a Location, so control bytes are rejected outright.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return "/"
	}
	if strings.IndexFunc(next, func(r rune) bool { return r < 0x20 || r == 0x7f }) >= 0 {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return next
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{"Next": c.Query("next")})
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	next := c.PostForm("next")
	if next == "" {
		next = c.Query("next")
	}

	user, err := h.auth.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			log.Printf("[%s] login failed: %v", middleware.GetRequestID(c), err)
		}
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Error":    "Неверное имя пользователя или пароль",
			"Username": username,
			"Next":     next,
		})
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUserKey, user.ID)
	if err := session.Save(); err != nil {
		serviceError(c, "save session", err)
		return
	}

	c.Redirect(http.StatusFound, safeNext(next))
}

// Logout clears the session and shows a confirmation page.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	session.Save()

	c.Set(middleware.CurrentUserKey, nil)
	Render(c, http.StatusOK, "auth/logout.html", nil)
}

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	Render(c, http.StatusOK, "auth/signup.html", nil)
}

func (h *AuthHandler) Signup(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	_, err := h.auth.Register(c.Request.Context(), username, password)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			Render(c, http.StatusBadRequest, "auth/signup.html", gin.H{"Error": verr.Message, "Username": username})
		case errors.Is(err, services.ErrUserExists):
			Render(c, http.StatusConflict, "auth/signup.html", gin.H{"Error": "Пользователь с таким именем уже существует", "Username": username})
		default:
			serviceError(c, "register", err)
		}
		return
	}

	c.Redirect(http.StatusFound, LoginURL)
}
