package routers

import (
	"github.com/uqo/assistanat_client/controllers/errorhandler"
	"github.com/uqo/assistanat_client/internal/app"
	internalcontrollers "github.com/uqo/assistanat_client/internal/controllers"

	beego "github.com/beego/beego/v2/server/web"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Register lie l'application aux contrôleurs et déclare les routes du shell.
func Register(a *app.App) {
	internalcontrollers.Bind(a)

	beego.ErrorController(&errorhandler.ErrorHandlerController{})

	beego.Router("/login", &internalcontrollers.AuthController{}, "get:GetLogin;post:PostLogin")
	beego.Router("/logout", &internalcontrollers.AuthController{}, "post:PostLogout")

	beego.Router("/premiere-visite", &internalcontrollers.PremiereVisiteController{}, "get:Get;post:Post")
	beego.Router("/formulaire/:trimestre", &internalcontrollers.FormulaireController{}, "get:Get;post:Post")

	beego.Router("/", &internalcontrollers.DashboardController{}, "get:Get")

	beego.Router("/campagnes", &internalcontrollers.CampagnesController{}, "get:GetAll")
	beego.Router("/campagnes/:trimestre", &internalcontrollers.CampagnesController{}, "put:PutCampagne")
	beego.Router("/campagnes/:trimestre/sync", &internalcontrollers.CampagnesController{}, "post:PostSync")
	beego.Router("/campagnes/:trimestre/:sigle/:groupe/approve", &internalcontrollers.CampagnesController{}, "patch:PatchApproveSeance")
	beego.Router("/campagnes/:trimestre/:sigle/:groupe/:activite/approve", &internalcontrollers.CampagnesController{}, "patch:PatchApproveActivite")
	beego.Router("/campagnes/:trimestre/:sigle/:groupe", &internalcontrollers.CampagnesController{}, "put:PutSeance")
	beego.Router("/campagnes/:trimestre/:sigle/candidatures", &internalcontrollers.CampagnesController{}, "post:PostCandidature")

	beego.Router("/candidatures", &internalcontrollers.CandidaturesController{}, "get:GetAll")
	beego.Router("/candidatures/:id", &internalcontrollers.CandidaturesController{}, "get:GetOne;delete:Delete")
	beego.Router("/candidatures/:id/resume", &internalcontrollers.CandidaturesController{}, "get:GetResume")

	beego.Router("/logs", &internalcontrollers.PagesController{}, "get:GetLogs")
	beego.Router("/users", &internalcontrollers.PagesController{}, "get:GetUsers")

	beego.Router("/selection", &internalcontrollers.SelectionController{}, "get:Get;put:Put")

	beego.Handler("/metrics", promhttp.Handler())
}
