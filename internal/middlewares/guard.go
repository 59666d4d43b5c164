package middlewares

import (
	"net/http"
	"sync"

	internalhelpers "github.com/uqo/assistanat_client/internal/helpers"
	"github.com/uqo/assistanat_client/internal/navigation"
	"github.com/uqo/assistanat_client/models/requestresponse"
	"github.com/uqo/assistanat_client/routers"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	"github.com/beego/beego/v2/server/web/context"
)

var guardOnce sync.Once

// UseNavigationGuard enregistre le filtre du garde une seule fois.
func UseNavigationGuard(g *navigation.Guard) {
	guardOnce.Do(func() {
		beego.InsertFilter("*", beego.BeforeRouter, NavigationGuardFilter(g))
	})
}

// NavigationGuardFilter retourne le filtre, pour un enregistrement manuel.
func NavigationGuardFilter(g *navigation.Guard) beego.FilterFunc {
	return func(ctx *context.Context) {
		if ctx.Input.Method() == http.MethodOptions {
			return
		}
		route, ok := routers.Match(ctx.Input.URL())
		if !ok {
			return
		}

		fullPath := ctx.Input.URI()
		d := g.Resolve(internalhelpers.CorrelationContext(ctx), navigation.Target{
			Name:         route.Name,
			FullPath:     fullPath,
			RequiresAuth: route.RequiresAuth,
		})
		if d.Allow {
			return
		}

		location := routers.PathFor(d.RedirectName)
		if len(d.Query) > 0 {
			location += "?" + d.Query.Encode()
		}
		logs.Debug("garde: %s -> %s", fullPath, location)

		ctx.Output.Header("Location", location)
		ctx.Output.SetStatus(http.StatusFound)
		_ = ctx.Output.JSON(requestresponse.NewRedirect(http.StatusFound, d.RedirectName, location), false, false)
	}
}
