package services

import (
	"context"
	"net/url"

	"github.com/uqo/assistanat_client/internal/clients"
	"github.com/uqo/assistanat_client/models"
)

// UQOService interroge le répertoire des cours et programmes de l'UQO via le backend.
type UQOService struct {
	api *clients.APIClient
}

func NewUQOService(api *clients.APIClient) *UQOService {
	return &UQOService{api: api}
}

// GetCours liste les cours d'un département.
func (s *UQOService) GetCours(ctx context.Context, departement string) ([]models.UQOCours, error) {
	query := url.Values{}
	query.Set("departement", departement)

	var out []models.UQOCours
	if err := s.api.GetJSON(ctx, "/v1/uqo/cours", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProgrammes liste les programmes d'un département pour un cycle donné.
func (s *UQOService) GetProgrammes(ctx context.Context, departement, cycle string) ([]models.Programme, error) {
	query := url.Values{}
	query.Set("departement", departement)
	query.Set("cycle", cycle)

	var out []models.Programme
	if err := s.api.GetJSON(ctx, "/v1/uqo/programmes", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}
