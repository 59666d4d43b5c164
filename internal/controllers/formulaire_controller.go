package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	rootcontrollers "github.com/uqo/assistanat_client/controllers"
	"github.com/uqo/assistanat_client/helpers"
	internalhelpers "github.com/uqo/assistanat_client/internal/helpers"
	"github.com/uqo/assistanat_client/models"
)

const (
	departementParDefaut = "informatique"
	tailleMaxCV          = 10 << 20
)

// FormulaireController sert le formulaire public de candidature d'un trimestre.
type FormulaireController struct {
	rootcontrollers.BaseController
}

type formulaireVue struct {
	Trimestre  models.Trimestre   `json:"trimestre"`
	Libelle    string             `json:"libelle"`
	Cours      []models.UQOCours  `json:"cours"`
	Programmes []models.Programme `json:"programmes"`
}

// Get
// @Title Formulaire de candidature
// @Param trimestre path int true "Trimestre AAAAS"
// @Param departement query string false "Département UQO"
// @Param cycle query string false "Cycle d'études"
// @router /formulaire/:trimestre [get]
func (c *FormulaireController) Get() {
	trimestre, err := internalhelpers.ParamTrimestre(c.Ctx, "trimestre")
	if err != nil {
		c.RespondError(helpers.BadRequest(err.Error(), err), "")
		return
	}
	departement := c.GetString("departement", departementParDefaut)
	cycle := c.GetString("cycle", "1")

	ctx := c.RequestContext()
	a := application()
	cours, err := a.UQOSvc.GetCours(ctx, departement)
	if err != nil {
		c.RespondError(err, "cours UQO indisponibles")
		return
	}
	programmes, err := a.UQOSvc.GetProgrammes(ctx, departement, cycle)
	if err != nil {
		c.RespondError(err, "programmes UQO indisponibles")
		return
	}

	c.RespondSuccess(http.StatusOK, "", formulaireVue{
		Trimestre:  trimestre,
		Libelle:    trimestre.String(),
		Cours:      cours,
		Programmes: programmes,
	})
}

// Post soumet la candidature (multipart, champ courses_json et fichier resume).
func (c *FormulaireController) Post() {
	trimestre, err := internalhelpers.ParamTrimestre(c.Ctx, "trimestre")
	if err != nil {
		c.RespondError(helpers.BadRequest(err.Error(), err), "")
		return
	}
	form, err := c.readForm(trimestre)
	if err != nil {
		c.RespondError(err, "")
		return
	}

	created, err := application().CandidatSvc.CreateCandidature(c.RequestContext(), form)
	if err != nil {
		c.RespondError(err, "envoi de la candidature impossible")
		return
	}
	c.RespondSuccess(http.StatusCreated, "candidature reçue", created)
}

func (c *FormulaireController) readForm(trimestre models.Trimestre) (models.CandidatureForm, error) {
	cycle, _ := c.GetInt("cycle", 0)
	form := models.CandidatureForm{
		CodePermanent: strings.TrimSpace(c.GetString("code_permanent")),
		Nom:           strings.TrimSpace(c.GetString("nom")),
		Prenom:        strings.TrimSpace(c.GetString("prenom")),
		Cycle:         cycle,
		Trimestre:     trimestre,
		Campus:        c.GetString("campus"),
		Programme:     c.GetString("programme"),
		Email:         strings.TrimSpace(c.GetString("email")),
	}

	if raw := strings.TrimSpace(c.GetString("courses_json")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &form.Courses); err != nil {
			return form, helpers.BadRequest("courses_json invalide", err)
		}
	}

	file, header, err := c.GetFile("resume")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return form, nil
	}
	if err != nil {
		return form, helpers.BadRequest("fichier resume illisible", err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, tailleMaxCV+1))
	if err != nil {
		return form, helpers.BadRequest("fichier resume illisible", err)
	}
	if len(content) > tailleMaxCV {
		return form, helpers.NewAppError(http.StatusRequestEntityTooLarge, "CV trop volumineux", nil)
	}
	form.Resume = &models.ResumeFile{Filename: header.Filename, Content: content}
	return form, nil
}
