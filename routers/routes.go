package routers

import (
	"strings"

	"github.com/uqo/assistanat_client/internal/navigation"
)

// Route est une page du shell avec son exigence d'authentification.
type Route struct {
	Name         string
	Path         string
	RequiresAuth bool
}

// Routes est la table des pages soumises au garde de navigation.
var Routes = []Route{
	{Name: navigation.RouteLogin, Path: "/login"},
	{Name: navigation.RouteCreateFirstCampagne, Path: "/premiere-visite"},
	{Name: "Formulaire", Path: "/formulaire/:trimestre"},
	{Name: navigation.RouteDashboard, Path: "/", RequiresAuth: true},
	{Name: "campagnes", Path: "/campagnes", RequiresAuth: true},
	{Name: "candidatures", Path: "/candidatures", RequiresAuth: true},
	{Name: "logs", Path: "/logs", RequiresAuth: true},
	{Name: "users", Path: "/users", RequiresAuth: true},
	{Name: "selection", Path: "/selection", RequiresAuth: true},
}

// Match retourne la route de la page demandée. Les sous-chemins d'une page
// authentifiée (/campagnes/20251/sync) relèvent de cette page.
func Match(path string) (Route, bool) {
	segs := splitPath(path)
	var prefix *Route
	for i := range Routes {
		r := &Routes[i]
		pattern := splitPath(r.Path)
		if matchSegments(pattern, segs) {
			return *r, true
		}
		if r.RequiresAuth && len(pattern) > 0 && len(segs) > len(pattern) && matchSegments(pattern, segs[:len(pattern)]) {
			if prefix == nil {
				prefix = r
			}
		}
	}
	if prefix != nil {
		return *prefix, true
	}
	return Route{}, false
}

// PathFor retourne le chemin d'une route nommée sans paramètres.
func PathFor(name string) string {
	for _, r := range Routes {
		if r.Name == name {
			return r.Path
		}
	}
	return "/"
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func matchSegments(pattern, segs []string) bool {
	if len(pattern) != len(segs) {
		return false
	}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if segs[i] == "" {
				return false
			}
			continue
		}
		if p != segs[i] {
			return false
		}
	}
	return true
}
