package controllers

import (
	"net/http"

	rootcontrollers "github.com/uqo/assistanat_client/controllers"
)

// PagesController sert les pages sans contenu propre (journal, utilisateurs).
type PagesController struct {
	rootcontrollers.BaseController
}

func (c *PagesController) GetLogs() {
	c.placeholder("logs")
}

func (c *PagesController) GetUsers() {
	c.placeholder("users")
}

func (c *PagesController) placeholder(page string) {
	a := application()
	c.RespondSuccess(http.StatusOK, "", map[string]interface{}{
		"page":      page,
		"email":     a.Email(c.RequestContext()),
		"selection": a.Selection.Snapshot(),
	})
}
