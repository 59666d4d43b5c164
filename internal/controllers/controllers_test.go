package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/uqo/assistanat_client/internal/app"
	"github.com/uqo/assistanat_client/internal/clients"
	"github.com/uqo/assistanat_client/internal/middlewares"
	"github.com/uqo/assistanat_client/internal/selection"
	"github.com/uqo/assistanat_client/internal/storage"
	"github.com/uqo/assistanat_client/models"
	"github.com/uqo/assistanat_client/routers"
	rootservices "github.com/uqo/assistanat_client/services"

	beego "github.com/beego/beego/v2/server/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backend simule l'API d'assistanat.
type backend struct {
	mu        sync.Mutex
	campagnes []models.Campagne
	created   []models.CampagneCreateRequest
	lastForm  map[string][]string
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/v1/campagne":
		_ = json.NewEncoder(w).Encode(b.campagnes)
	case r.Method == http.MethodPost && r.URL.Path == "/v1/campagne":
		var req models.CampagneCreateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.created = append(b.created, req)
		c := models.Campagne{Id: len(b.campagnes) + 1, Trimestre: req.Trimestre, Status: models.CampagneEnCours}
		b.campagnes = append(b.campagnes, c)
		_ = json.NewEncoder(w).Encode(c)
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/v1/campagne/"):
		for _, c := range b.campagnes {
			if "/v1/campagne/"+c.Trimestre.PathSegment() == r.URL.Path {
				c.Cours = []models.Cours{{Sigle: "INF1573", Titre: "Programmation II", Status: models.CoursConfirme}}
				_ = json.NewEncoder(w).Encode(c)
				return
			}
		}
		http.Error(w, `{"detail":"Campagne not found"}`, http.StatusNotFound)
	case r.Method == http.MethodPatch && strings.HasSuffix(r.URL.Path, "/changes/approve"):
		_, _ = io.WriteString(w, `{"entity":{"id":1},"change":{"change_type":"modified","value":{}},"approved":true}`)
	case r.Method == http.MethodPost && r.URL.Path == "/v1/cours/20251/INF1573/candidature":
		_, _ = io.WriteString(w, `{"id":4,"sigle":"INF1573","titre":"Programmation II"}`)
	case r.Method == http.MethodGet && r.URL.Path == "/v1/candidature/12":
		_, _ = io.WriteString(w, `{"id":12,"nom":"Doe","prenom":"John"}`)
	case r.Method == http.MethodGet && r.URL.Path == "/v1/candidature":
		_, _ = io.WriteString(w, `[{"id":12,"nom":"Doe","prenom":"John","trimestre":`+r.URL.Query().Get("trimestre")+`}]`)
	case r.Method == http.MethodPost && r.URL.Path == "/v1/candidature":
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			b.lastForm = r.MultipartForm.Value
		}
		_, _ = io.WriteString(w, `{"id":13}`)
	case r.Method == http.MethodGet && r.URL.Path == "/v1/candidature/12/resume":
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="12_20251_resume.pdf"`)
		_, _ = w.Write([]byte("%PDF-1.4"))
	case r.Method == http.MethodGet && r.URL.Path == "/v1/uqo/cours":
		_, _ = io.WriteString(w, `[{"sigle":"INF1563","titre":"Programmation I"}]`)
	case r.Method == http.MethodGet && r.URL.Path == "/v1/uqo/programmes":
		_, _ = io.WriteString(w, `[{"code":"7833","libelle":"Baccalauréat en informatique","cycle":"1"}]`)
	default:
		http.Error(w, `{"detail":"Not Found"}`, http.StatusNotFound)
	}
}

func (b *backend) reset(campagnes ...models.Campagne) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.campagnes = campagnes
	b.created = nil
	b.lastForm = nil
}

func (b *backend) requests() ([]models.CampagneCreateRequest, map[string][]string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.created, b.lastForm
}

var (
	api     = &backend{}
	session *app.App
	store   *storage.Memory
)

func TestMain(m *testing.M) {
	srv := httptest.NewServer(api)

	store = storage.NewMemory(nil)
	cfg := rootservices.Config{AppName: "assistanat_client", GuardFailOpen: true}
	session = app.NewWithStore(context.Background(), cfg, store, clients.NewWithHTTPClient(srv.URL, srv.Client()))

	beego.BConfig.CopyRequestBody = true
	beego.BConfig.RunMode = beego.PROD
	middlewares.UseNavigationGuard(session.Guard)
	routers.Register(session)

	code := m.Run()
	srv.Close()
	os.Exit(code)
}

// newSession remet le stockage et le garde à zéro.
func newSession(t *testing.T, email string, campagnes ...models.Campagne) {
	t.Helper()
	ctx := context.Background()
	for _, k := range []string{storage.KeyEmail, storage.KeySelectedTrimestre, storage.KeyTrimestreOptions} {
		require.NoError(t, store.Remove(ctx, k))
	}
	session.Selection = selection.New(ctx, store)
	api.reset(campagnes...)
	require.NoError(t, session.Logout(ctx))
	if email != "" {
		require.NoError(t, session.Login(ctx, email))
	}
}

func do(t *testing.T, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	beego.BeeApp.Handlers.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"Success"`
	Status  int             `json:"Status"`
	Message string          `json:"Message"`
	Data    json.RawMessage `json:"Data"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestAnonymousIsSentToLogin(t *testing.T) {
	newSession(t, "")

	rec := do(t, http.MethodGet, "/campagnes", nil, "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?redirect=%2Fcampagnes", rec.Header().Get("Location"))
}

func TestAnonymousCannotChangeSelection(t *testing.T) {
	newSession(t, "")
	session.Selection.UpdateTrimestreOptions(context.Background(), 20251)

	rec := do(t, http.MethodPut, "/selection", strings.NewReader(`{"selectedTrimestre":"20243"}`), "application/json")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?redirect=%2Fselection", rec.Header().Get("Location"))

	raw, _, err := store.Get(context.Background(), storage.KeySelectedTrimestre)
	require.NoError(t, err)
	assert.Equal(t, "20251", raw)
}

func TestLoginRedirectsToRequestedPage(t *testing.T) {
	newSession(t, "")

	rec := do(t, http.MethodPost, "/login?redirect=/candidatures", strings.NewReader(`{"email":"admin@uqo.ca"}`), "application/json")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/candidatures", rec.Header().Get("Location"))
	assert.Equal(t, "admin@uqo.ca", session.Email(context.Background()))

	rec = do(t, http.MethodGet, "/login", nil, "")
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestLoginRejectsForeignRedirect(t *testing.T) {
	cases := []struct {
		redirect string
		want     string
	}{
		{"//evil.example", "/"},
		{`/\evil.example`, "/"},
		{`/\/evil.example`, "/"},
		{`/campagnes\..\evil`, "/"},
		{"https://evil.example/", "/"},
		{"/campagnes?x=1", "/campagnes?x=1"},
	}
	for _, tc := range cases {
		t.Run(tc.redirect, func(t *testing.T) {
			newSession(t, "")
			rec := do(t, http.MethodPost, "/login?redirect="+url.QueryEscape(tc.redirect), strings.NewReader(`{"email":"admin@uqo.ca"}`), "application/json")
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tc.want, rec.Header().Get("Location"))
		})
	}
}

func TestLoginRequiresEmail(t *testing.T) {
	newSession(t, "")

	rec := do(t, http.MethodPost, "/login", strings.NewReader(`{"email":" "}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decode(t, rec).Success)
}

func TestFirstVisitFlow(t *testing.T) {
	newSession(t, "admin@uqo.ca")

	rec := do(t, http.MethodGet, "/", nil, "")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/premiere-visite", rec.Header().Get("Location"))

	rec = do(t, http.MethodPost, "/premiere-visite", strings.NewReader(`{"trimestre":20252,"cours":[{"sigle":"INF1563"}]}`), "application/json")
	require.Equal(t, http.StatusFound, rec.Code, rec.Body.String())
	assert.Equal(t, "/", rec.Header().Get("Location"))
	created, _ := api.requests()
	require.Len(t, created, 1)
	assert.Equal(t, models.Trimestre(20252), created[0].Trimestre)

	selected, ok := session.Selection.Selected()
	require.True(t, ok)
	assert.Equal(t, models.Trimestre(20252), selected)

	rec = do(t, http.MethodGet, "/", nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var vue struct {
		Libelle        string `json:"libelle"`
		CoursConfirmes int    `json:"cours_confirmes"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &vue))
	assert.Equal(t, "Été 2025", vue.Libelle)
	assert.Equal(t, 1, vue.CoursConfirmes)

	rec = do(t, http.MethodGet, "/premiere-visite", nil, "")
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestCampagnesDiscoversTrimestres(t *testing.T) {
	newSession(t, "admin@uqo.ca",
		models.Campagne{Id: 1, Trimestre: 20243},
		models.Campagne{Id: 2, Trimestre: 20251},
	)

	rec := do(t, http.MethodGet, "/campagnes", nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []models.Trimestre{20251, 20243}, session.Selection.Options())

	rec = do(t, http.MethodPatch, "/campagnes/20251/INF1573/01/approve", nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, http.MethodPost, "/campagnes/20259/sync", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBackendNotFoundKeepsStatus(t *testing.T) {
	newSession(t, "admin@uqo.ca", models.Campagne{Id: 1, Trimestre: 20251})

	rec := do(t, http.MethodPut, "/campagnes/20111", strings.NewReader(`{}`), "application/json")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSelection(t *testing.T) {
	newSession(t, "admin@uqo.ca", models.Campagne{Id: 1, Trimestre: 20243}, models.Campagne{Id: 2, Trimestre: 20251})
	do(t, http.MethodGet, "/campagnes", nil, "")

	rec := do(t, http.MethodPut, "/selection", strings.NewReader(`{"selectedTrimestre":"20243"}`), "application/json")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	raw, _, err := store.Get(context.Background(), storage.KeySelectedTrimestre)
	require.NoError(t, err)
	assert.Equal(t, "20243", raw)

	rec = do(t, http.MethodGet, "/candidatures", nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"nb_candidats":1`)

	rec = do(t, http.MethodGet, "/candidatures?page=2&taille=10", nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"candidats":[]`)
	assert.Contains(t, rec.Body.String(), `"nb_candidats":1`)
}

func TestAddCandidatToCours(t *testing.T) {
	newSession(t, "admin@uqo.ca", models.Campagne{Id: 1, Trimestre: 20251})

	rec := do(t, http.MethodPost, "/campagnes/20251/INF1573/candidatures", strings.NewReader(`{"code_permanent":"DOEJ01019000","nom":"Doe","prenom":"John","cycle":1}`), "application/json")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"sigle":"INF1573"`)

	rec = do(t, http.MethodPost, "/campagnes/20251/INF1573/candidatures", strings.NewReader(`{"nom":"Doe"}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCandidature(t *testing.T) {
	newSession(t, "admin@uqo.ca", models.Campagne{Id: 1, Trimestre: 20251})

	rec := do(t, http.MethodGet, "/candidatures/12", nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"nom":"Doe"`)

	rec = do(t, http.MethodGet, "/candidatures/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResumeDownload(t *testing.T) {
	newSession(t, "admin@uqo.ca", models.Campagne{Id: 1, Trimestre: 20251})

	rec := do(t, http.MethodGet, "/candidatures/12/resume", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "12_20251_resume.pdf")
	assert.Equal(t, "%PDF-1.4", rec.Body.String())

	rec = do(t, http.MethodGet, "/candidatures/99/resume", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFormulaireIsPublic(t *testing.T) {
	newSession(t, "")

	rec := do(t, http.MethodGet, "/formulaire/20251", nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Programmation I")
	assert.Contains(t, rec.Body.String(), "7833")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("nom", "Doe"))
	require.NoError(t, w.WriteField("courses_json", `[{"sigle":"INF1563","note":"A"}]`))
	fw, err := w.CreateFormFile("resume", "cv.pdf")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("%PDF"))
	require.NoError(t, w.Close())

	rec = do(t, http.MethodPost, "/formulaire/20251", &buf, w.FormDataContentType())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	_, form := api.requests()
	assert.Equal(t, []string{"20251"}, form["trimestre"])
	assert.Equal(t, []string{"Doe"}, form["nom"])
}

func TestMetricsAreExposed(t *testing.T) {
	newSession(t, "")

	rec := do(t, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
