package controllers

import (
	"net/http"

	rootcontrollers "github.com/uqo/assistanat_client/controllers"
	"github.com/uqo/assistanat_client/helpers"
	internalhelpers "github.com/uqo/assistanat_client/internal/helpers"
	"github.com/uqo/assistanat_client/models"
)

// CampagnesController liste les campagnes et relaie les opérations de gestion.
type CampagnesController struct {
	rootcontrollers.BaseController
}

// GetAll liste les campagnes et enrichit les trimestres connus.
// @router /campagnes [get]
func (c *CampagnesController) GetAll() {
	a := application()
	campagnes, err := a.RefreshTrimestres(c.RequestContext())
	if err != nil {
		c.RespondError(err, "campagnes indisponibles")
		return
	}
	c.RespondSuccess(http.StatusOK, "", map[string]interface{}{
		"campagnes": campagnes,
		"selection": a.Selection.Snapshot(),
	})
}

// PutCampagne
// @router /campagnes/:trimestre [put]
func (c *CampagnesController) PutCampagne() {
	trimestre, ok := c.trimestre()
	if !ok {
		return
	}
	var body models.CampagneUpdateRequest
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(err, "")
		return
	}
	out, err := application().CampagneSvc.UpdateCampagne(c.RequestContext(), trimestre, body)
	if err != nil {
		c.RespondError(err, "mise à jour de la campagne impossible")
		return
	}
	c.RespondSuccess(http.StatusOK, "", out)
}

// PostSync resynchronise la campagne avec l'horaire UQO.
// @router /campagnes/:trimestre/sync [post]
func (c *CampagnesController) PostSync() {
	trimestre, ok := c.trimestre()
	if !ok {
		return
	}
	out, err := application().CampagneSvc.SyncCampagne(c.RequestContext(), trimestre)
	if err != nil {
		c.RespondError(err, "synchronisation impossible")
		return
	}
	c.RespondSuccess(http.StatusOK, "campagne synchronisée", out)
}

// PatchApproveSeance
// @router /campagnes/:trimestre/:sigle/:groupe/approve [patch]
func (c *CampagnesController) PatchApproveSeance() {
	trimestre, ok := c.trimestre()
	if !ok {
		return
	}
	sigle, groupe, ok := c.seance()
	if !ok {
		return
	}
	out, err := application().CampagneSvc.ApproveSeanceChange(c.RequestContext(), trimestre, sigle, groupe)
	if err != nil {
		c.RespondError(err, "approbation impossible")
		return
	}
	c.RespondSuccess(http.StatusOK, "changement approuvé", out)
}

// PatchApproveActivite
// @router /campagnes/:trimestre/:sigle/:groupe/:activite/approve [patch]
func (c *CampagnesController) PatchApproveActivite() {
	trimestre, ok := c.trimestre()
	if !ok {
		return
	}
	sigle, groupe, ok := c.seance()
	if !ok {
		return
	}
	activite, err := internalhelpers.ParamInt(c.Ctx, "activite")
	if err != nil {
		c.RespondError(helpers.BadRequest(err.Error(), err), "")
		return
	}
	out, err := application().CampagneSvc.ApproveActiviteChange(c.RequestContext(), trimestre, sigle, groupe, activite)
	if err != nil {
		c.RespondError(err, "approbation impossible")
		return
	}
	c.RespondSuccess(http.StatusOK, "changement approuvé", out)
}

// PutSeance met à jour les assignations d'une séance.
// @router /campagnes/:trimestre/:sigle/:groupe [put]
func (c *CampagnesController) PutSeance() {
	trimestre, ok := c.trimestre()
	if !ok {
		return
	}
	sigle, groupe, ok := c.seance()
	if !ok {
		return
	}
	var body models.SeanceUpdateRequest
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(err, "")
		return
	}
	out, err := application().CampagneSvc.UpdateSeance(c.RequestContext(), trimestre, sigle, groupe, body)
	if err != nil {
		c.RespondError(err, "mise à jour de la séance impossible")
		return
	}
	c.RespondSuccess(http.StatusOK, "", out)
}

// PostCandidature inscrit directement un candidat à un cours de la campagne.
// @router /campagnes/:trimestre/:sigle/candidatures [post]
func (c *CampagnesController) PostCandidature() {
	trimestre, ok := c.trimestre()
	if !ok {
		return
	}
	sigle, err := internalhelpers.ParamString(c.Ctx, "sigle")
	if err != nil {
		c.RespondError(helpers.BadRequest(err.Error(), err), "")
		return
	}
	var body models.CandidaturePayload
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(err, "")
		return
	}
	if body.CodePermanent == "" {
		c.RespondError(helpers.BadRequest("code permanent requis", nil), "")
		return
	}
	out, err := application().CoursSvc.AddCandidature(c.RequestContext(), trimestre, sigle, body)
	if err != nil {
		c.RespondError(err, "inscription au cours impossible")
		return
	}
	c.RespondSuccess(http.StatusCreated, "candidat ajouté", out)
}

func (c *CampagnesController) trimestre() (models.Trimestre, bool) {
	t, err := internalhelpers.ParamTrimestre(c.Ctx, "trimestre")
	if err != nil {
		c.RespondError(helpers.BadRequest(err.Error(), err), "")
		return 0, false
	}
	return t, true
}

func (c *CampagnesController) seance() (string, string, bool) {
	sigle, err := internalhelpers.ParamString(c.Ctx, "sigle")
	if err != nil {
		c.RespondError(helpers.BadRequest(err.Error(), err), "")
		return "", "", false
	}
	groupe, err := internalhelpers.ParamString(c.Ctx, "groupe")
	if err != nil {
		c.RespondError(helpers.BadRequest(err.Error(), err), "")
		return "", "", false
	}
	return sigle, groupe, true
}
