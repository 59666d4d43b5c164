package main

import (
	"context"

	"github.com/uqo/assistanat_client/controllers/errorhandler"
	"github.com/uqo/assistanat_client/internal/app"
	"github.com/uqo/assistanat_client/internal/middlewares"
	"github.com/uqo/assistanat_client/routers"
	rootservices "github.com/uqo/assistanat_client/services"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	cors "github.com/beego/beego/v2/server/web/filter/cors"
)

func main() {
	cfg := rootservices.GetConfig()
	rootservices.ConfigureLogging(cfg.LogLevel)

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		logs.Critical("initialisation impossible: %v", err)
		return
	}
	defer a.Close()

	beego.InsertFilter("*", beego.BeforeRouter, cors.Allow(&cors.Options{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Requested-With", "X-Correlation-Id", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "Location"},
		AllowCredentials: true,
	}))
	middlewares.UseNavigationGuard(a.Guard)
	routers.Register(a)

	beego.BConfig.AppName = cfg.AppName
	beego.BConfig.RunMode = cfg.RunMode
	beego.BConfig.Listen.HTTPPort = cfg.HTTPPort
	beego.BConfig.CopyRequestBody = true
	beego.BConfig.RecoverFunc = errorhandler.Recover

	logs.Info("%s: API %s, stockage %q", cfg.AppName, cfg.APIBaseURL, cfg.StorePath)
	beego.Run()
}
