package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	rootservices "github.com/uqo/assistanat_client/services"

	"github.com/google/uuid"
)

// ErrTransport signale que le backend n'a pas pu être joint.
var ErrTransport = errors.New("backend injoignable")

// HTTPError enveloppe les codes de statut non 2xx.
type HTTPError struct {
	Method string
	URL    string
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s -> HTTP %d: %s", e.Method, e.URL, e.Status, e.Body)
}

// IsHTTPError indique si err correspond à un statut donné.
func IsHTTPError(err error, status int) bool {
	if err == nil {
		return false
	}
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status == status
	}
	return false
}

type correlationKey struct{}

// WithCorrelationID attache un identifiant de corrélation aux requêtes issues de ctx.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

func correlationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// APIClient est l'unique client HTTP du backend, lié à une URL de base.
// Aucun réessai: toute erreur est retournée à l'appelant.
type APIClient struct {
	baseURL string
	http    *http.Client
	headers map[string]string
}

// New construit le client à partir de la configuration.
func New(cfg rootservices.Config) *APIClient {
	return NewWithHTTPClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.Timeout()})
}

// NewWithHTTPClient permet d'injecter un http.Client (tests, transports personnalisés).
func NewWithHTTPClient(baseURL string, hc *http.Client) *APIClient {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    hc,
		headers: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// BaseURL retourne l'URL de base configurée.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// GetJSON exécute un GET et décode la réponse dans out.
func (c *APIClient) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, withQuery(path, query), nil, out)
}

func (c *APIClient) PostJSON(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, in, out)
}

func (c *APIClient) PutJSON(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, in, out)
}

func (c *APIClient) PatchJSON(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPatch, path, in, out)
}

// Delete exécute un DELETE; le corps de réponse est décodé dans out s'il est fourni.
func (c *APIClient) Delete(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, out)
}

// PostMultipart envoie un formulaire multipart construit par build.
func (c *APIClient) PostMultipart(ctx context.Context, path string, build func(*multipart.Writer) error, out any) error {
	return c.doMultipart(ctx, http.MethodPost, path, build, out)
}

func (c *APIClient) PutMultipart(ctx context.Context, path string, build func(*multipart.Writer) error, out any) error {
	return c.doMultipart(ctx, http.MethodPut, path, build, out)
}

// Blob est une réponse binaire brute.
type Blob struct {
	ContentType string
	Filename    string
	Content     []byte
}

// GetBlob télécharge une ressource binaire.
func (c *APIClient) GetBlob(ctx context.Context, path string) (*Blob, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "*/*")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	blob := &Blob{ContentType: resp.Header.Get("Content-Type"), Content: content}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		blob.Filename = params["filename"]
	}
	return blob, nil
}

func (c *APIClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeBody(resp.Body, out)
}

func (c *APIClient) doMultipart(ctx context.Context, method, path string, build func(*multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := build(w); err != nil {
		return fmt.Errorf("build multipart: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeBody(resp.Body, out)
}

func (c *APIClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("X-Correlation-Id", correlationID(ctx))
	return req, nil
}

// do exécute la requête, enregistre les métriques et transforme les statuts non 2xx en HTTPError.
func (c *APIClient) do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	observe(req.Method, resp, err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, req.Method, req.URL.Path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		return nil, &HTTPError{
			Method: req.Method,
			URL:    req.URL.Path,
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

func decodeBody(r io.Reader, out any) error {
	if out == nil {
		_, _ = io.Copy(io.Discard, r)
		return nil
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

func withQuery(path string, query url.Values) string {
	if encoded := query.Encode(); encoded != "" {
		return path + "?" + encoded
	}
	return path
}

// PathInt formate un identifiant numérique pour un segment d'URL.
func PathInt(n int) string {
	return strconv.Itoa(n)
}

// PathSegment échappe un segment d'URL libre (sigle, groupe).
func PathSegment(s string) string {
	return url.PathEscape(s)
}
