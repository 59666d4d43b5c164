// Package app assemble la session: stockage local, sélection de trimestre,
// client API, services de domaine et garde de navigation.
package app

import (
	"context"
	"io"
	"strings"

	"github.com/uqo/assistanat_client/internal/clients"
	"github.com/uqo/assistanat_client/internal/navigation"
	"github.com/uqo/assistanat_client/internal/selection"
	internalservices "github.com/uqo/assistanat_client/internal/services"
	"github.com/uqo/assistanat_client/internal/storage"
	"github.com/uqo/assistanat_client/models"
	rootservices "github.com/uqo/assistanat_client/services"

	"github.com/beego/beego/v2/core/logs"
)

// App regroupe les dépendances partagées par le shell web et la CLI.
type App struct {
	Config    rootservices.Config
	Store     storage.Store
	Selection *selection.State
	API       *clients.APIClient

	// Campagnes sert les lectures, éventuellement depuis les données de démonstration.
	Campagnes   internalservices.CampagneReader
	CampagneSvc *internalservices.CampagneService
	CoursSvc    *internalservices.CoursService
	CandidatSvc *internalservices.CandidatService
	UQOSvc      *internalservices.UQOService
	Guard       *navigation.Guard

	closers []io.Closer
}

// New ouvre le stockage décrit par cfg et construit l'application.
func New(ctx context.Context, cfg rootservices.Config) (*App, error) {
	store, closer, err := openStore(cfg.StorePath)
	if err != nil {
		return nil, err
	}
	a := NewWithStore(ctx, cfg, store, clients.New(cfg))
	if closer != nil {
		a.closers = append(a.closers, closer)
	}
	return a, nil
}

// NewWithStore construit l'application sur un stockage et un client fournis.
func NewWithStore(ctx context.Context, cfg rootservices.Config, store storage.Store, api *clients.APIClient) *App {
	a := &App{
		Config:      cfg,
		Store:       store,
		API:         api,
		CampagneSvc: internalservices.NewCampagneService(api),
		CoursSvc:    internalservices.NewCoursService(api),
		CandidatSvc: internalservices.NewCandidatService(api),
		UQOSvc:      internalservices.NewUQOService(api),
	}
	a.Campagnes = a.CampagneSvc
	if cfg.UseFixtures {
		logs.Info("données de démonstration activées pour les campagnes")
		a.Campagnes = internalservices.CampagneFixtures{}
	}
	a.Selection = selection.New(ctx, store)
	a.Guard = navigation.NewGuard(navigation.StoreAuthenticator{Store: store}, a.Campagnes, cfg.GuardFailOpen)
	return a
}

func openStore(path string) (storage.Store, io.Closer, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return storage.NewMemory(nil), nil, nil
	}
	db, err := storage.NewSQLite(path)
	if err != nil {
		return nil, nil, err
	}
	return db, db, nil
}

// Close libère le stockage.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Login enregistre le marqueur d'authentification et relance la vérification des campagnes.
func (a *App) Login(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errEmptyEmail
	}
	if err := a.Store.Set(ctx, storage.KeyEmail, email); err != nil {
		return err
	}
	a.Guard.Reset()
	return nil
}

// Logout efface le marqueur d'authentification.
func (a *App) Logout(ctx context.Context) error {
	a.Guard.Reset()
	return a.Store.Remove(ctx, storage.KeyEmail)
}

// Email retourne l'utilisateur connecté, vide sinon.
func (a *App) Email(ctx context.Context) string {
	v, ok, err := a.Store.Get(ctx, storage.KeyEmail)
	if err != nil || !ok {
		return ""
	}
	return v
}

// CreateCampagne crée la campagne, l'ajoute aux trimestres connus et
// relance la vérification du garde.
func (a *App) CreateCampagne(ctx context.Context, req models.CampagneCreateRequest) (*models.Campagne, error) {
	created, err := a.CampagneSvc.CreateCampagne(ctx, req)
	if err != nil {
		return nil, err
	}
	t := created.Trimestre
	if t == 0 {
		t = req.Trimestre
	}
	a.Selection.UpdateTrimestreOptions(ctx, t)
	a.Guard.Reset()
	return created, nil
}

// RefreshTrimestres lit les campagnes et ajoute leurs trimestres aux options.
func (a *App) RefreshTrimestres(ctx context.Context) ([]models.Campagne, error) {
	campagnes, err := a.Campagnes.GetCampagnes(ctx)
	if err != nil {
		return nil, err
	}
	a.Selection.DiscoverTrimestres(ctx, campagnes)
	return campagnes, nil
}

// SelectedTrimestre retourne le trimestre sélectionné ou errNoSelection.
func (a *App) SelectedTrimestre() (models.Trimestre, error) {
	t, ok := a.Selection.Selected()
	if !ok {
		return 0, errNoSelection
	}
	return t, nil
}
