package errorhandler

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/uqo/assistanat_client/models/requestresponse"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	"github.com/beego/beego/v2/server/web/context"
)

// ErrorHandlerController répond aux routes inconnues avec l'enveloppe standard.
type ErrorHandlerController struct {
	beego.Controller
}

func (c *ErrorHandlerController) Error404() {
	c.reply(http.StatusNotFound, fmt.Sprintf("aucune page|%s|%s", c.Ctx.Request.Method, c.Ctx.Request.URL.Path))
}

func (c *ErrorHandlerController) Error405() {
	c.reply(http.StatusMethodNotAllowed, fmt.Sprintf("méthode %s refusée sur %s", c.Ctx.Request.Method, c.Ctx.Request.URL.Path))
}

func (c *ErrorHandlerController) Error500() {
	c.reply(http.StatusInternalServerError, "erreur interne")
}

func (c *ErrorHandlerController) reply(status int, message string) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = requestresponse.NewError(status, message, nil)
	_ = c.ServeJSON()
}

// Recover remplace la récupération de panique de beego (BConfig.RecoverFunc)
// et répond 500 dans l'enveloppe standard. beego l'appelle en defer.
func Recover(ctx *context.Context, cfg *beego.Config) {
	r := recover()
	if r == nil || r == beego.ErrAbort {
		return
	}
	logs.Error("panic: %v", r)
	if cfg != nil && cfg.RunMode == beego.DEV {
		debug.PrintStack()
	}

	appName := "assistanat_client"
	if cfg != nil && cfg.AppName != "" {
		appName = cfg.AppName
	}
	message := fmt.Sprintf("%s: erreur interne sur %s %s à %s",
		appName, ctx.Request.Method, ctx.Request.URL.Path, time.Now().UTC().Format(time.RFC3339))

	status := http.StatusInternalServerError
	ctx.Output.SetStatus(status)
	_ = ctx.Output.JSON(requestresponse.NewError(status, message, nil), false, false)
}
