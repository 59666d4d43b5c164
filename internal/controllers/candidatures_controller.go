package controllers

import (
	"fmt"
	"net/http"

	rootcontrollers "github.com/uqo/assistanat_client/controllers"
	"github.com/uqo/assistanat_client/helpers"
	internalhelpers "github.com/uqo/assistanat_client/internal/helpers"
)

// CandidaturesController liste les candidats du trimestre sélectionné.
type CandidaturesController struct {
	rootcontrollers.BaseController
}

// GetAll accepte ?page=&taille= pour paginer.
// @router /candidatures [get]
func (c *CandidaturesController) GetAll() {
	a := application()
	trimestre, err := a.SelectedTrimestre()
	if err != nil {
		c.RespondError(err, "")
		return
	}
	candidats, err := a.CandidatSvc.GetCandidatures(c.RequestContext(), trimestre)
	if err != nil {
		c.RespondError(err, "candidatures indisponibles")
		return
	}
	total := len(candidats)
	out := map[string]interface{}{
		"trimestre":    trimestre,
		"libelle":      trimestre.String(),
		"nb_candidats": total,
	}
	// sans ?page, la liste complète
	if c.GetString("page") != "" {
		page, size := internalhelpers.ParsePageSize(c.GetString("page"), c.GetString("taille"))
		start, end := internalhelpers.PageBounds(total, page, size)
		candidats = candidats[start:end]
		out["page"] = page
		out["taille"] = size
	}
	out["candidats"] = candidats
	c.RespondSuccess(http.StatusOK, "", out)
}

// GetOne retourne une candidature avec ses cours.
// @router /candidatures/:id [get]
func (c *CandidaturesController) GetOne() {
	id, ok := c.id()
	if !ok {
		return
	}
	out, err := application().CandidatSvc.GetCandidature(c.RequestContext(), id)
	if err != nil {
		c.RespondError(err, "candidature indisponible")
		return
	}
	c.RespondSuccess(http.StatusOK, "", out)
}

// Delete retire la candidature du backend.
// @router /candidatures/:id [delete]
func (c *CandidaturesController) Delete() {
	id, ok := c.id()
	if !ok {
		return
	}
	if err := application().CandidatSvc.DeleteCandidature(c.RequestContext(), id); err != nil {
		c.RespondError(err, "suppression impossible")
		return
	}
	c.RespondSuccess(http.StatusOK, "candidature supprimée", nil)
}

// GetResume transmet le CV tel que reçu du backend.
// @router /candidatures/:id/resume [get]
func (c *CandidaturesController) GetResume() {
	id, ok := c.id()
	if !ok {
		return
	}
	resume := application().CandidatSvc.DownloadResume(c.RequestContext(), id)
	if resume == nil {
		c.RespondError(helpers.NewAppError(http.StatusNotFound, "CV introuvable", nil), "")
		return
	}

	filename := resume.Filename
	if filename == "" {
		filename = fmt.Sprintf("%d_resume.pdf", id)
	}
	contentType := resume.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Ctx.Output.Header("Content-Type", contentType)
	c.Ctx.Output.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_ = c.Ctx.Output.Body(resume.Content)
}

func (c *CandidaturesController) id() (int, bool) {
	id, err := internalhelpers.ParamInt(c.Ctx, "id")
	if err != nil || id <= 0 {
		c.RespondError(helpers.BadRequest("identifiant de candidature invalide", err), "")
		return 0, false
	}
	return id, true
}
