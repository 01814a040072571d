// Package web serves the dealer directory panel: login/signup pages, the
// searchable dealer list, and the add/edit forms with cascading
// State→District→City selectors. Pages are rendered server-side from
// embedded templates; the session token lives in an HttpOnly cookie.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/priyanshuKshk/dealer-info-api/internal/handler"
	"github.com/priyanshuKshk/dealer-info-api/internal/locations"
	"github.com/priyanshuKshk/dealer-info-api/internal/models"
	"github.com/priyanshuKshk/dealer-info-api/internal/service"
	"github.com/priyanshuKshk/dealer-info-api/internal/utils"
)

//go:embed templates/*.html static/*
var assets embed.FS

const sessionCookie = "token"

// Handler renders the panel pages on top of the same services the JSON
// API uses.
type Handler struct {
	dealers handler.DealerManager
	auth    handler.Authenticator
	tokens  *utils.TokenIssuer
	ttl     time.Duration
	secure  bool

	locationsJSON template.JS
}

// New constructs the panel handler. secure controls the cookie's Secure
// flag (off for local development).
func New(dealers handler.DealerManager, auth handler.Authenticator, tokens *utils.TokenIssuer, ttl time.Duration, secure bool) *Handler {
	raw, _ := json.Marshal(locations.Table())
	return &Handler{
		dealers:       dealers,
		auth:          auth,
		tokens:        tokens,
		ttl:           ttl,
		secure:        secure,
		locationsJSON: template.JS(raw),
	}
}

// Register mounts the panel routes and its embedded assets under /panel.
func (h *Handler) Register(r *gin.Engine) {
	tmpl := template.Must(template.ParseFS(assets, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	static, _ := fs.Sub(assets, "static")
	r.StaticFS("/panel/static", http.FS(static))

	panel := r.Group("/panel")
	panel.GET("/login", h.loginPage)
	panel.POST("/login", h.login)
	panel.GET("/signup", h.signupPage)
	panel.POST("/signup", h.signup)
	panel.GET("/logout", h.logout)

	// Protected views: anonymous visitors are redirected to the login
	// page before anything renders.
	guarded := panel.Group("")
	guarded.Use(h.requireSession())
	guarded.GET("", h.listPage)
	guarded.GET("/dealers", h.listPage)
	guarded.GET("/dealers/new", h.newPage)
	guarded.POST("/dealers", h.create)
	guarded.GET("/dealers/:id/edit", h.editPage)
	guarded.POST("/dealers/:id", h.update)
	guarded.POST("/dealers/:id/delete", h.delete)
}

// requireSession validates the session cookie and redirects to the login
// page when the visitor is anonymous.
func (h *Handler) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusSeeOther, "/panel/login")
			c.Abort()
			return
		}
		claims, err := h.tokens.Validate(token)
		if err != nil || claims.Role != models.RoleAdmin {
			h.clearCookie(c)
			c.Redirect(http.StatusSeeOther, "/panel/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (h *Handler) setCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookie, token, int(h.ttl.Seconds()), "/", "", h.secure, true)
}

func (h *Handler) clearCookie(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", h.secure, true)
}

func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(200, "login.html", gin.H{"Error": c.Query("error")})
}

func (h *Handler) login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	token, err := h.auth.Login(c.Request.Context(), email, password)
	if err != nil {
		msg := "Login failed"
		if errors.Is(err, utils.ErrAdminNotFound) {
			msg = "Admin not found"
		} else if errors.Is(err, utils.ErrInvalidCredentials) {
			msg = "Invalid credentials"
		}
		c.Redirect(http.StatusSeeOther, "/panel/login?error="+url.QueryEscape(msg))
		return
	}

	h.setCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/panel/dealers")
}

func (h *Handler) signupPage(c *gin.Context) {
	c.HTML(200, "signup.html", gin.H{"Error": c.Query("error")})
}

func (h *Handler) signup(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")

	token, err := h.auth.Signup(c.Request.Context(), name, email, password)
	if err != nil {
		msg := "Signup failed"
		if errors.Is(err, utils.ErrEmailRegistered) {
			msg = "Email already registered"
		}
		c.Redirect(http.StatusSeeOther, "/panel/signup?error="+url.QueryEscape(msg))
		return
	}

	h.setCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/panel/dealers")
}

func (h *Handler) logout(c *gin.Context) {
	h.clearCookie(c)
	c.Redirect(http.StatusSeeOther, "/panel/login")
}

func (h *Handler) listPage(c *gin.Context) {
	filter := models.DealerFilter{
		Name:  c.Query("name"),
		State: c.Query("state"),
		City:  c.Query("city"),
	}

	dealers, err := h.dealers.List(c.Request.Context(), filter)
	if err != nil {
		// A list-fetch failure renders an empty list rather than a broken page.
		log.Error().Err(err).Msg("Failed to fetch dealers for panel")
		dealers = []*models.Dealer{}
	}

	c.HTML(200, "dealers.html", gin.H{
		"Dealers":   dealers,
		"Filter":    filter,
		"District":  c.Query("district"),
		"Locations": h.locationsJSON,
		"Message":   c.Query("msg"),
		"Error":     c.Query("error"),
	})
}

func (h *Handler) newPage(c *gin.Context) {
	c.HTML(200, "dealer_form.html", gin.H{
		"Title":     "Add Dealer",
		"Action":    "/panel/dealers",
		"Dealer":    &models.Dealer{Country: "India", Status: models.DealerStatusActive},
		"Locations": h.locationsJSON,
		"Error":     c.Query("error"),
	})
}

func (h *Handler) create(c *gin.Context) {
	req := service.CreateDealerRequest{
		DealershipName: c.PostForm("dealershipName"),
		DealerCode:     c.PostForm("dealerCode"),
		Address:        c.PostForm("address"),
		ContactPerson:  c.PostForm("contactPerson"),
		ContactNumber:  c.PostForm("contactNumber"),
		Pincode:        c.PostForm("pincode"),
		City:           c.PostForm("city"),
		District:       c.PostForm("district"),
		State:          c.PostForm("state"),
		Country:        c.PostForm("country"),
		Services:       c.PostForm("services"),
		Email:          c.PostForm("email"),
		Website:        c.PostForm("website"),
		Status:         c.PostForm("status"),
	}

	if _, err := h.dealers.Create(c.Request.Context(), &req); err != nil {
		c.Redirect(http.StatusSeeOther, "/panel/dealers/new?error="+url.QueryEscape(userMessage(err, "Failed to add dealer")))
		return
	}
	c.Redirect(http.StatusSeeOther, "/panel/dealers?msg="+url.QueryEscape("Dealer added successfully"))
}

func (h *Handler) editPage(c *gin.Context) {
	id := c.Param("id")

	// The list already holds full records; fetch via List to avoid a
	// dedicated endpoint the panel does not otherwise need.
	dealers, err := h.dealers.List(c.Request.Context(), models.DealerFilter{})
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/panel/dealers?error="+url.QueryEscape("Failed to load dealer"))
		return
	}
	var dealer *models.Dealer
	for _, d := range dealers {
		if d.ID == id {
			dealer = d
			break
		}
	}
	if dealer == nil {
		c.Redirect(http.StatusSeeOther, "/panel/dealers?error="+url.QueryEscape("Dealer not found"))
		return
	}

	c.HTML(200, "dealer_form.html", gin.H{
		"Title":     "Edit Dealer",
		"Action":    "/panel/dealers/" + url.PathEscape(dealer.ID),
		"Dealer":    dealer,
		"Locations": h.locationsJSON,
		"Error":     c.Query("error"),
	})
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")

	field := func(name string) *string {
		v := c.PostForm(name)
		return &v
	}
	req := service.UpdateDealerRequest{
		DealershipName: field("dealershipName"),
		DealerCode:     field("dealerCode"),
		Address:        field("address"),
		ContactPerson:  field("contactPerson"),
		ContactNumber:  field("contactNumber"),
		Pincode:        field("pincode"),
		City:           field("city"),
		District:       field("district"),
		State:          field("state"),
		Country:        field("country"),
		Services:       field("services"),
		Email:          field("email"),
		Website:        field("website"),
		Status:         field("status"),
	}

	if _, err := h.dealers.Update(c.Request.Context(), id, &req); err != nil {
		c.Redirect(http.StatusSeeOther, "/panel/dealers/"+url.PathEscape(id)+"/edit?error="+url.QueryEscape(userMessage(err, "Failed to update dealer")))
		return
	}
	c.Redirect(http.StatusSeeOther, "/panel/dealers?msg="+url.QueryEscape("Dealer updated"))
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.dealers.Delete(c.Request.Context(), id); err != nil {
		c.Redirect(http.StatusSeeOther, "/panel/dealers?error="+url.QueryEscape(userMessage(err, "Delete failed")))
		return
	}
	c.Redirect(http.StatusSeeOther, "/panel/dealers?msg="+url.QueryEscape("Dealer deleted"))
}

// userMessage maps service errors to the flash message shown to the user.
func userMessage(err error, fallback string) string {
	if errors.Is(err, utils.ErrDealerExists) {
		return "Dealer already exists"
	}
	if errors.Is(err, utils.ErrDealerNotFound) {
		return "Dealer not found"
	}
	var ve *utils.ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	return fallback
}
