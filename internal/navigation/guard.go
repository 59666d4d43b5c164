// Package navigation décide, à chaque navigation, si la page demandée est
// servie ou redirigée (connexion, création de la première campagne, tableau de bord).
package navigation

import (
	"context"
	"net/url"
	"sync"

	"github.com/uqo/assistanat_client/internal/storage"
	"github.com/uqo/assistanat_client/models"

	"github.com/beego/beego/v2/core/logs"
)

// Noms de routes utilisés par les redirections.
const (
	RouteLogin               = "Login"
	RouteCreateFirstCampagne = "CreateFirstCampagne"
	RouteDashboard           = "dashboard"
)

// Target est la destination d'une navigation.
type Target struct {
	Name         string
	FullPath     string
	RequiresAuth bool
}

// Decision est le résultat du garde. Si Allow est faux, RedirectName désigne la route cible.
type Decision struct {
	Allow        bool
	RedirectName string
	Query        url.Values
}

func allow() Decision { return Decision{Allow: true} }

func redirect(name string, query url.Values) Decision {
	return Decision{RedirectName: name, Query: query}
}

type Authenticator interface {
	IsAuthenticated(ctx context.Context) bool
}

type CampagneLister interface {
	GetCampagnes(ctx context.Context) ([]models.Campagne, error)
}

// StoreAuthenticator considère l'utilisateur connecté dès qu'un courriel est enregistré.
type StoreAuthenticator struct {
	Store storage.Store
}

func (a StoreAuthenticator) IsAuthenticated(ctx context.Context) bool {
	_, ok, err := a.Store.Get(ctx, storage.KeyEmail)
	if err != nil {
		logs.Warn("lecture du marqueur d'authentification: %v", err)
		return false
	}
	return ok
}

// Guard porte les deux drapeaux de session: vérification des campagnes faite,
// et présence d'au moins une campagne.
type Guard struct {
	auth     Authenticator
	lister   CampagneLister
	failOpen bool

	mu           sync.Mutex
	checked      bool
	hasCampagnes bool
}

// NewGuard crée un garde. failOpen détermine la valeur de hasCampagnes quand
// la liste des campagnes ne peut être obtenue.
func NewGuard(auth Authenticator, lister CampagneLister, failOpen bool) *Guard {
	return &Guard{auth: auth, lister: lister, failOpen: failOpen}
}

// Reset oublie la vérification des campagnes; à appeler à la connexion et à la déconnexion.
func (g *Guard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.checked = false
	g.hasCampagnes = false
}

// Checked indique si la vérification des campagnes a eu lieu pour cette session.
func (g *Guard) Checked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.checked
}

// HasCampagnes retourne le dernier résultat de la vérification.
func (g *Guard) HasCampagnes() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hasCampagnes
}

// MarkHasCampagnes enregistre qu'une campagne existe, après une création par exemple.
func (g *Guard) MarkHasCampagnes() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.checked = true
	g.hasCampagnes = true
}

// Resolve applique les règles de navigation à la destination.
func (g *Guard) Resolve(ctx context.Context, to Target) Decision {
	authenticated := g.auth.IsAuthenticated(ctx)

	if !to.RequiresAuth && to.Name != RouteCreateFirstCampagne {
		if authenticated && to.Name == RouteLogin {
			return redirect(RouteDashboard, nil)
		}
		return allow()
	}

	if !authenticated {
		if !to.RequiresAuth {
			return allow()
		}
		g.Reset()
		return redirect(RouteLogin, url.Values{"redirect": {to.FullPath}})
	}

	hasCampagnes := g.ensureChecked(ctx)

	switch {
	case !hasCampagnes && to.Name != RouteCreateFirstCampagne:
		return redirect(RouteCreateFirstCampagne, nil)
	case hasCampagnes && to.Name == RouteCreateFirstCampagne:
		return redirect(RouteDashboard, nil)
	}
	return allow()
}

// ensureChecked interroge le backend une seule fois par session. L'appel se fait
// hors verrou: deux premières navigations simultanées peuvent interroger deux fois.
func (g *Guard) ensureChecked(ctx context.Context) bool {
	g.mu.Lock()
	if g.checked {
		has := g.hasCampagnes
		g.mu.Unlock()
		return has
	}
	g.mu.Unlock()

	campagnes, err := g.lister.GetCampagnes(ctx)
	has := len(campagnes) > 0
	if err != nil {
		logs.Warn("vérification initiale des campagnes échouée: %v", err)
		has = g.failOpen
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.checked = true
	g.hasCampagnes = has
	return has
}
