package controllers

import (
	"net/http"

	rootcontrollers "github.com/uqo/assistanat_client/controllers"
	"github.com/uqo/assistanat_client/internal/selection"
	"github.com/uqo/assistanat_client/models"

	"github.com/beego/beego/v2/core/logs"
)

// DashboardController présente la campagne du trimestre sélectionné.
type DashboardController struct {
	rootcontrollers.BaseController
}

type dashboardVue struct {
	Selection            selection.Snapshot `json:"selection"`
	Libelle              string             `json:"libelle,omitempty"`
	Campagne             *models.Campagne   `json:"campagne"`
	ChangementsEnAttente int                `json:"changements_en_attente"`
	CoursConfirmes       int                `json:"cours_confirmes"`
	CoursNonConfirmes    int                `json:"cours_non_confirmes"`
}

// Get
// @Title Tableau de bord
// @router / [get]
func (c *DashboardController) Get() {
	ctx := c.RequestContext()
	a := application()

	if _, ok := a.Selection.Selected(); !ok {
		if _, err := a.RefreshTrimestres(ctx); err != nil {
			logs.Warn("découverte des trimestres: %v", err)
		}
	}

	vue := dashboardVue{}
	if t, ok := a.Selection.Selected(); ok {
		campagne, err := a.Campagnes.GetCampagne(ctx, t)
		if err != nil {
			c.RespondError(err, "campagne indisponible")
			return
		}
		vue.Libelle = t.String()
		vue.Campagne = campagne
		vue.ChangementsEnAttente = campagne.ChangementsEnAttente()
		for _, cours := range campagne.Cours {
			if cours.Status.IsConfirme() {
				vue.CoursConfirmes++
			} else {
				vue.CoursNonConfirmes++
			}
		}
	}
	vue.Selection = a.Selection.Snapshot()
	c.RespondSuccess(http.StatusOK, "", vue)
}
