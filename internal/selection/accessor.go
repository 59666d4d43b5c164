package selection

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/uqo/assistanat_client/internal/storage"
	"github.com/uqo/assistanat_client/models"

	"github.com/beego/beego/v2/core/logs"
)

// getFromStore lit une clé persistée et la désérialise selon sa convention:
// tableau JSON pour trimestreOptions, nombre pour selectedTrimestre.
// Toute absence ou erreur de lecture retourne def; rien n'est propagé à l'appelant.
func getFromStore(ctx context.Context, store storage.Store, key string, def any) any {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		logs.Error("selection: lecture de %q impossible: %v", key, err)
		return def
	}
	if !ok {
		return def
	}

	switch key {
	case storage.KeyTrimestreOptions:
		var opts []models.Trimestre
		if err := json.Unmarshal([]byte(raw), &opts); err != nil {
			logs.Error("selection: valeur %q invalide pour %q: %v", raw, key, err)
			return def
		}
		if opts == nil {
			return def
		}
		return opts
	case storage.KeySelectedTrimestre:
		n, ok := parseNumber(raw)
		if !ok {
			return def
		}
		return models.Trimestre(n)
	}
	return raw
}

func loadSelected(ctx context.Context, store storage.Store) *models.Trimestre {
	v, ok := getFromStore(ctx, store, storage.KeySelectedTrimestre, nil).(models.Trimestre)
	if !ok {
		return nil
	}
	return &v
}

func loadOptions(ctx context.Context, store storage.Store) []models.Trimestre {
	opts, _ := getFromStore(ctx, store, storage.KeyTrimestreOptions, []models.Trimestre{}).([]models.Trimestre)
	return normalizeOptions(opts)
}

// parseNumber accepte un entier ou un flottant entier ("20251", " 20251 ", "20251.0").
func parseNumber(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// toTrimestre convertit une entrée quelconque en trimestre. Faux si la valeur est nulle ou non numérique.
func toTrimestre(value any) (models.Trimestre, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case models.Trimestre:
		return v, true
	case *models.Trimestre:
		if v == nil {
			return 0, false
		}
		return *v, true
	case int:
		return models.Trimestre(v), true
	case int32:
		return models.Trimestre(v), true
	case int64:
		return models.Trimestre(v), true
	case *int:
		if v == nil {
			return 0, false
		}
		return models.Trimestre(*v), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return 0, false
		}
		return models.Trimestre(int(v)), true
	case json.Number:
		if n, ok := parseNumber(v.String()); ok {
			return models.Trimestre(n), true
		}
	case string:
		if n, ok := parseNumber(v); ok {
			return models.Trimestre(n), true
		}
	}
	return 0, false
}
