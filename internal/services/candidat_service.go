package services

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/url"
	"strconv"

	"github.com/uqo/assistanat_client/internal/clients"
	"github.com/uqo/assistanat_client/models"
	rootservices "github.com/uqo/assistanat_client/services"

	"github.com/beego/beego/v2/core/logs"
)

const candidatureResource = "/v1/candidature"

// CandidatService gère les candidatures étudiantes.
type CandidatService struct {
	api *clients.APIClient
}

func NewCandidatService(api *clients.APIClient) *CandidatService {
	return &CandidatService{api: api}
}

// GetCandidatures liste les candidats d'un trimestre avec leurs candidatures.
func (s *CandidatService) GetCandidatures(ctx context.Context, trimestre models.Trimestre) ([]models.Etudiant, error) {
	query := url.Values{}
	query.Set("trimestre", trimestre.PathSegment())

	var out []models.Etudiant
	if err := s.api.GetJSON(ctx, candidatureResource, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CandidatService) GetCandidature(ctx context.Context, id int) (*models.Etudiant, error) {
	var out models.Etudiant
	if err := s.api.GetJSON(ctx, candidaturePath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCandidature soumet le formulaire multipart (cours en JSON, CV optionnel).
func (s *CandidatService) CreateCandidature(ctx context.Context, form models.CandidatureForm) (*models.Etudiant, error) {
	if form.Courses == nil {
		form.Courses = []models.CandidatureCoursItem{}
	}
	var out models.Etudiant
	if err := s.api.PostMultipart(ctx, candidatureResource, formWriter(form), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCandidature n'envoie que les champs renseignés; Courses nil laisse les cours inchangés.
func (s *CandidatService) UpdateCandidature(ctx context.Context, id int, form models.CandidatureForm) (*models.Etudiant, error) {
	var out models.Etudiant
	if err := s.api.PutMultipart(ctx, candidaturePath(id), formWriter(form), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CandidatService) DeleteCandidature(ctx context.Context, id int) error {
	return s.api.Delete(ctx, candidaturePath(id), nil)
}

// DownloadResume télécharge le CV d'un candidat. Un échec est journalisé et retourne nil.
func (s *CandidatService) DownloadResume(ctx context.Context, id int) *models.Resume {
	blob, err := s.api.GetBlob(ctx, rootservices.BuildURL(candidaturePath(id), "resume"))
	if err != nil {
		logs.Error("candidature %d: téléchargement du CV impossible: %v", id, err)
		return nil
	}
	return &models.Resume{
		ContentType: blob.ContentType,
		Filename:    blob.Filename,
		Content:     blob.Content,
	}
}

func candidaturePath(id int) string {
	return rootservices.BuildURL(candidatureResource, strconv.Itoa(id))
}

func formWriter(form models.CandidatureForm) func(*multipart.Writer) error {
	return func(w *multipart.Writer) error {
		fields := []struct{ name, value string }{
			{"code_permanent", form.CodePermanent},
			{"nom", form.Nom},
			{"prenom", form.Prenom},
			{"campus", form.Campus},
			{"programme", form.Programme},
			{"email", form.Email},
		}
		if form.Cycle > 0 {
			fields = append(fields, struct{ name, value string }{"cycle", strconv.Itoa(form.Cycle)})
		}
		if form.Trimestre > 0 {
			fields = append(fields, struct{ name, value string }{"trimestre", form.Trimestre.PathSegment()})
		}
		for _, f := range fields {
			if f.value == "" {
				continue
			}
			if err := w.WriteField(f.name, f.value); err != nil {
				return err
			}
		}

		if form.Courses != nil {
			raw, err := json.Marshal(form.Courses)
			if err != nil {
				return err
			}
			if err := w.WriteField("courses_json", string(raw)); err != nil {
				return err
			}
		}

		if form.Resume != nil && len(form.Resume.Content) > 0 {
			name := form.Resume.Filename
			if name == "" {
				name = "resume.pdf"
			}
			fw, err := w.CreateFormFile("resume", name)
			if err != nil {
				return err
			}
			if _, err := fw.Write(form.Resume.Content); err != nil {
				return err
			}
		}
		return nil
	}
}
