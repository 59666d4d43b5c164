package controllers

import (
	"net/http"
	"net/url"
	"strings"

	rootcontrollers "github.com/uqo/assistanat_client/controllers"
	"github.com/uqo/assistanat_client/internal/navigation"
)

// AuthController gère la connexion par courriel.
type AuthController struct {
	rootcontrollers.BaseController
}

type loginRequest struct {
	Email string `json:"email"`
}

// GetLogin
// @Title Page de connexion
// @Success 200 {object} requestresponse.APIResponseDTO
// @router /login [get]
func (c *AuthController) GetLogin() {
	c.RespondSuccess(http.StatusOK, "", map[string]interface{}{
		"redirect": safeRedirect(c.GetString("redirect")),
	})
}

// PostLogin enregistre le courriel puis redirige vers la page demandée.
// @router /login [post]
func (c *AuthController) PostLogin() {
	var body loginRequest
	if strings.Contains(c.Ctx.Input.Header("Content-Type"), "application/json") {
		if err := c.ParseJSONBody(&body); err != nil {
			c.RespondError(err, "")
			return
		}
	} else {
		body.Email = c.GetString("email")
	}

	a := application()
	if err := a.Login(c.RequestContext(), body.Email); err != nil {
		c.RespondError(err, "connexion impossible")
		return
	}
	c.RespondRedirect(navigation.RouteDashboard, safeRedirect(c.GetString("redirect")))
}

// PostLogout
// @router /logout [post]
func (c *AuthController) PostLogout() {
	if err := application().Logout(c.RequestContext()); err != nil {
		c.RespondError(err, "déconnexion impossible")
		return
	}
	c.RespondRedirect(navigation.RouteLogin, "/login")
}

// safeRedirect n'accepte qu'un chemin local. Les navigateurs lisent \ comme /,
// donc /\hote vaut //hote.
func safeRedirect(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.ContainsAny(raw, "\\\r\n\t") {
		return "/"
	}
	if u, err := url.Parse(raw); err != nil || u.Host != "" {
		return "/"
	}
	return raw
}
