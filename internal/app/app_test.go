package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/uqo/assistanat_client/internal/clients"
	"github.com/uqo/assistanat_client/internal/navigation"
	"github.com/uqo/assistanat_client/internal/storage"
	"github.com/uqo/assistanat_client/models"
	rootservices "github.com/uqo/assistanat_client/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backend(t *testing.T) *clients.APIClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1/campagne":
			_, _ = w.Write([]byte(`[]`))
		case r.Method == http.MethodPost && r.URL.Path == "/v1/campagne":
			var req models.CampagneCreateRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			_ = json.NewEncoder(w).Encode(models.Campagne{Id: 3, Trimestre: req.Trimestre})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return clients.NewWithHTTPClient(srv.URL, srv.Client())
}

func TestSessionSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	cfg := rootservices.Config{APIBaseURL: "http://127.0.0.1:1", StorePath: filepath.Join(t.TempDir(), "session.db")}

	a, err := New(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, a.Login(ctx, "  admin@uqo.ca "))
	a.Selection.UpdateTrimestreOptions(ctx, 20251)
	require.NoError(t, a.Close())

	b, err := New(ctx, cfg)
	require.NoError(t, err)
	defer b.Close()
	assert.Equal(t, "admin@uqo.ca", b.Email(ctx))
	got, err := b.SelectedTrimestre()
	require.NoError(t, err)
	assert.Equal(t, models.Trimestre(20251), got)
}

func TestLoginRejectsEmptyEmail(t *testing.T) {
	a := NewWithStore(context.Background(), rootservices.Config{}, storage.NewMemory(nil), backend(t))
	assert.ErrorIs(t, a.Login(context.Background(), "   "), errEmptyEmail)
}

func TestNoSelection(t *testing.T) {
	a := NewWithStore(context.Background(), rootservices.Config{}, storage.NewMemory(nil), backend(t))
	_, err := a.SelectedTrimestre()
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestCreateCampagneSelectsAndResetsGuard(t *testing.T) {
	ctx := context.Background()
	a := NewWithStore(ctx, rootservices.Config{}, storage.NewMemory(nil), backend(t))
	require.NoError(t, a.Login(ctx, "admin@uqo.ca"))

	d := a.Guard.Resolve(ctx, navigation.Target{Name: navigation.RouteDashboard, FullPath: "/", RequiresAuth: true})
	assert.Equal(t, navigation.RouteCreateFirstCampagne, d.RedirectName)
	assert.True(t, a.Guard.Checked())

	created, err := a.CreateCampagne(ctx, models.CampagneCreateRequest{Trimestre: 20252})
	require.NoError(t, err)
	assert.Equal(t, models.Trimestre(20252), created.Trimestre)
	assert.False(t, a.Guard.Checked())

	got, err := a.SelectedTrimestre()
	require.NoError(t, err)
	assert.Equal(t, models.Trimestre(20252), got)
}

func TestFixturesServeCampagnes(t *testing.T) {
	ctx := context.Background()
	a := NewWithStore(ctx, rootservices.Config{UseFixtures: true}, storage.NewMemory(nil), backend(t))

	campagnes, err := a.RefreshTrimestres(ctx)
	require.NoError(t, err)
	assert.Len(t, campagnes, 7)
	assert.NotEmpty(t, a.Selection.Options())
	_, err = a.SelectedTrimestre()
	assert.NoError(t, err)
}
