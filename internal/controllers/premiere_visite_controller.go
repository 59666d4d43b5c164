package controllers

import (
	"net/http"
	"time"

	rootcontrollers "github.com/uqo/assistanat_client/controllers"
	"github.com/uqo/assistanat_client/helpers"
	"github.com/uqo/assistanat_client/internal/navigation"
	"github.com/uqo/assistanat_client/models"
)

// PremiereVisiteController crée la première campagne d'un compte.
type PremiereVisiteController struct {
	rootcontrollers.BaseController
}

// Get propose le trimestre courant comme valeur par défaut.
func (c *PremiereVisiteController) Get() {
	c.RespondSuccess(http.StatusOK, "", map[string]interface{}{
		"trimestre_suggere": trimestreCourant(time.Now()),
	})
}

// Post crée la campagne puis renvoie au tableau de bord.
func (c *PremiereVisiteController) Post() {
	var body models.CampagneCreateRequest
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(err, "")
		return
	}
	if body.Trimestre == 0 {
		c.RespondError(helpers.BadRequest("trimestre requis", nil), "")
		return
	}
	if body.Cours == nil {
		body.Cours = []models.CampagneCoursItem{}
	}

	if _, err := application().CreateCampagne(c.RequestContext(), body); err != nil {
		c.RespondError(err, "création de la campagne impossible")
		return
	}
	c.RespondRedirect(navigation.RouteDashboard, "/")
}

// trimestreCourant: janvier-avril hiver, mai-août été, sinon automne.
func trimestreCourant(now time.Time) models.Trimestre {
	saison := 3
	switch {
	case now.Month() <= time.April:
		saison = 1
	case now.Month() <= time.August:
		saison = 2
	}
	return models.Trimestre(now.Year()*10 + saison)
}
