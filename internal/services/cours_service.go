package services

import (
	"context"

	"github.com/uqo/assistanat_client/internal/clients"
	"github.com/uqo/assistanat_client/models"
	rootservices "github.com/uqo/assistanat_client/services"
)

// CoursService couvre les opérations propres à un cours.
type CoursService struct {
	api *clients.APIClient
}

func NewCoursService(api *clients.APIClient) *CoursService {
	return &CoursService{api: api}
}

// AddCandidature inscrit un candidat au cours et retourne le cours mis à jour.
func (s *CoursService) AddCandidature(ctx context.Context, trimestre models.Trimestre, sigle string, payload models.CandidaturePayload) (*models.Cours, error) {
	var out models.Cours
	path := rootservices.BuildURL("/v1/cours", trimestre.PathSegment(), clients.PathSegment(sigle), "candidature")
	if err := s.api.PostJSON(ctx, path, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
