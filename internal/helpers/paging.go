package helpers

import (
	"strconv"
	"strings"
)

const (
	defaultPage     = 1
	defaultPageSize = 25
	maxPageSize     = 200
)

// ParsePageSize lit page et taille depuis la requête. Valeurs absentes ou
// invalides: page 1, taille par défaut; la taille est plafonnée.
func ParsePageSize(pageStr, sizeStr string) (int, int) {
	page, size := defaultPage, defaultPageSize
	if v, err := strconv.Atoi(strings.TrimSpace(pageStr)); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(sizeStr)); err == nil && v > 0 {
		size = v
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

// PageBounds retourne l'intervalle [start, end) de la page dans une liste de total éléments.
func PageBounds(total, page, size int) (int, int) {
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	return start, end
}
