package services

import (
	"context"

	"github.com/uqo/assistanat_client/internal/clients"
	"github.com/uqo/assistanat_client/models"
	rootservices "github.com/uqo/assistanat_client/services"
)

const campagneResource = "/v1/campagne"

// CampagneReader regroupe les lectures de campagnes, offertes par le service
// réel comme par les données de démonstration.
type CampagneReader interface {
	GetCampagnes(ctx context.Context) ([]models.Campagne, error)
	GetCampagne(ctx context.Context, trimestre models.Trimestre) (*models.Campagne, error)
}

// CampagneService mappe chaque opération de campagne sur un appel HTTP.
type CampagneService struct {
	api *clients.APIClient
}

func NewCampagneService(api *clients.APIClient) *CampagneService {
	return &CampagneService{api: api}
}

// GetCampagnes liste toutes les campagnes.
func (s *CampagneService) GetCampagnes(ctx context.Context) ([]models.Campagne, error) {
	var out []models.Campagne
	if err := s.api.GetJSON(ctx, campagneResource, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCampagne retourne une campagne et ses cours.
func (s *CampagneService) GetCampagne(ctx context.Context, trimestre models.Trimestre) (*models.Campagne, error) {
	var out models.Campagne
	if err := s.api.GetJSON(ctx, campagnePath(trimestre), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CampagneService) CreateCampagne(ctx context.Context, payload models.CampagneCreateRequest) (*models.Campagne, error) {
	var out models.Campagne
	if err := s.api.PostJSON(ctx, campagneResource, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CampagneService) UpdateCampagne(ctx context.Context, trimestre models.Trimestre, payload models.CampagneUpdateRequest) (*models.Campagne, error) {
	var out models.Campagne
	if err := s.api.PutJSON(ctx, campagnePath(trimestre), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SyncCampagne resynchronise les cours de la campagne avec l'horaire UQO.
func (s *CampagneService) SyncCampagne(ctx context.Context, trimestre models.Trimestre) (*models.Campagne, error) {
	var out models.Campagne
	if err := s.api.PostJSON(ctx, campagnePath(trimestre, "sync"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveSeanceChange approuve le changement en attente d'une séance.
func (s *CampagneService) ApproveSeanceChange(ctx context.Context, trimestre models.Trimestre, sigle, groupe string) (*models.ApprovalResponse, error) {
	var out models.ApprovalResponse
	path := campagnePath(trimestre, clients.PathSegment(sigle), clients.PathSegment(groupe), "changes", "approve")
	if err := s.api.PatchJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveActiviteChange approuve le changement en attente d'une activité.
func (s *CampagneService) ApproveActiviteChange(ctx context.Context, trimestre models.Trimestre, sigle, groupe string, activiteID int) (*models.ApprovalResponse, error) {
	var out models.ApprovalResponse
	path := campagnePath(trimestre, clients.PathSegment(sigle), clients.PathSegment(groupe), clients.PathInt(activiteID), "changes", "approve")
	if err := s.api.PatchJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSeance met à jour les activités d'une séance (assignations, nombre de séances).
func (s *CampagneService) UpdateSeance(ctx context.Context, trimestre models.Trimestre, sigle, groupe string, payload models.SeanceUpdateRequest) (*models.Seance, error) {
	var out models.Seance
	path := campagnePath(trimestre, clients.PathSegment(sigle), clients.PathSegment(groupe))
	if err := s.api.PutJSON(ctx, path, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func campagnePath(trimestre models.Trimestre, elems ...string) string {
	return rootservices.BuildURL(campagneResource, append([]string{trimestre.PathSegment()}, elems...)...)
}
