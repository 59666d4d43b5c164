package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/uqo/assistanat_client/helpers"
	internalhelpers "github.com/uqo/assistanat_client/internal/helpers"
	"github.com/uqo/assistanat_client/models/requestresponse"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
)

// BaseController centralise la construction des réponses.
type BaseController struct {
	beego.Controller
}

// RespondSuccess enveloppe data dans la réponse standard.
func (c *BaseController) RespondSuccess(status int, message string, data interface{}) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = requestresponse.NewSuccess(status, message, data)
	_ = c.ServeJSON()
}

// RespondError traduit err en réponse standard; defaultMessage sert aux erreurs non typées.
func (c *BaseController) RespondError(err error, defaultMessage string) {
	appErr := helpers.AsAppError(err, defaultMessage)
	if appErr.Status >= http.StatusInternalServerError {
		logs.Error("%s %s: %v", c.Ctx.Request.Method, c.Ctx.Request.URL.Path, err)
	}
	c.Ctx.Output.SetStatus(appErr.Status)
	c.Data["json"] = requestresponse.NewError(appErr.Status, appErr.Message, nil)
	_ = c.ServeJSON()
}

// RespondRedirect répond 302 vers location, avec la route décrite dans le corps.
func (c *BaseController) RespondRedirect(route, location string) {
	c.Ctx.Output.Header("Location", location)
	c.Ctx.Output.SetStatus(http.StatusFound)
	c.Data["json"] = requestresponse.NewRedirect(http.StatusFound, route, location)
	_ = c.ServeJSON()
}

// RequestContext retourne le contexte de la requête portant son identifiant de corrélation.
func (c *BaseController) RequestContext() context.Context {
	return internalhelpers.CorrelationContext(c.Ctx)
}

// ParseJSONBody désérialise le corps de la requête dans out.
func (c *BaseController) ParseJSONBody(out interface{}) error {
	raw := c.Ctx.Input.RequestBody

	if len(raw) == 0 && c.Ctx.Request != nil && c.Ctx.Request.Body != nil {
		b, err := io.ReadAll(c.Ctx.Request.Body)
		if err != nil {
			return err
		}
		raw = b

		c.Ctx.Input.RequestBody = b
		c.Ctx.Request.Body = io.NopCloser(bytes.NewBuffer(b))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return helpers.BadRequest("corps de requête invalide", err)
	}
	return nil
}
