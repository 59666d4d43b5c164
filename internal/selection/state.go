// Package selection maintient le trimestre sélectionné et la liste des trimestres connus,
// partagés par toutes les vues du client et persistés entre les sessions.
//
// Invariant: si un trimestre est sélectionné, il fait partie des trimestres connus.
// La liste des trimestres connus est triée en ordre décroissant et sans doublon.
package selection

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"sync"

	"github.com/uqo/assistanat_client/internal/storage"
	"github.com/uqo/assistanat_client/models"

	"github.com/beego/beego/v2/core/logs"
)

// State est l'état de sélection partagé. Une instance par processus.
type State struct {
	mu       sync.Mutex
	store    storage.Store
	selected *models.Trimestre
	options  []models.Trimestre
}

// Snapshot est une copie de l'état, sérialisable pour les vues.
type Snapshot struct {
	Selected *models.Trimestre   `json:"selectedTrimestre"`
	Options  []models.Trimestre `json:"trimestreOptions"`
}

// New charge l'état depuis le store puis valide la sélection.
func New(ctx context.Context, store storage.Store) *State {
	s := &State{
		store:    store,
		selected: loadSelected(ctx, store),
		options:  loadOptions(ctx, store),
	}
	s.mu.Lock()
	s.validateLocked(ctx)
	s.mu.Unlock()
	return s
}

// SetSelectedValue sélectionne un trimestre (nil pour aucun) et le persiste,
// même si la valeur n'a pas changé.
func (s *State) SetSelectedValue(ctx context.Context, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setSelectedLocked(ctx, value)
}

// UpdateTrimestreOptions ajoute un trimestre connu. Les valeurs non numériques sont ignorées.
func (s *State) UpdateTrimestreOptions(ctx context.Context, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := toTrimestre(value)
	if !ok {
		logs.Warn("selection: trimestre %v ignoré (non numérique)", value)
		return
	}
	if !s.addOptionLocked(ctx, t) {
		return
	}
	if s.selected == nil {
		s.setSelectedLocked(ctx, t)
	}
	s.validateLocked(ctx)
}

// DiscoverTrimestres ajoute les trimestres de toutes les campagnes reçues.
func (s *State) DiscoverTrimestres(ctx context.Context, campagnes []models.Campagne) {
	for _, c := range campagnes {
		if c.Trimestre == 0 {
			continue
		}
		s.UpdateTrimestreOptions(ctx, c.Trimestre)
	}
}

// ValidateSelection rétablit l'invariant: la sélection est nulle seulement
// si aucun trimestre n'est connu, sinon elle en fait partie.
func (s *State) ValidateSelection(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.validateLocked(ctx)
}

// Selected retourne le trimestre sélectionné.
func (s *State) Selected() (models.Trimestre, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return 0, false
	}
	return *s.selected, true
}

// Options retourne une copie des trimestres connus.
func (s *State) Options() []models.Trimestre {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Trimestre{}, s.options...)
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{Options: append([]models.Trimestre{}, s.options...)}
	if s.selected != nil {
		t := *s.selected
		snap.Selected = &t
	}
	return snap
}

func (s *State) setSelectedLocked(ctx context.Context, value any) {
	var next *models.Trimestre
	if t, ok := toTrimestre(value); ok {
		next = &t
	} else if value != nil {
		logs.Warn("selection: valeur %v non numérique, sélection vidée", value)
	}

	if !sameTrimestre(s.selected, next) {
		logs.Info("selection: trimestre sélectionné %s -> %s", describe(s.selected), describe(next))
	}
	s.selected = next

	persisted := ""
	if next != nil {
		persisted = strconv.Itoa(next.Int())
	}
	if err := s.store.Set(ctx, storage.KeySelectedTrimestre, persisted); err != nil {
		logs.Error("selection: persistance de %q impossible: %v", storage.KeySelectedTrimestre, err)
	}
}

func (s *State) addOptionLocked(ctx context.Context, t models.Trimestre) bool {
	if containsTrimestre(s.options, t) {
		return false
	}
	s.options = append(s.options, t)
	sortDesc(s.options)

	raw, err := json.Marshal(s.options)
	if err != nil {
		logs.Error("selection: encodage des trimestres impossible: %v", err)
		return true
	}
	if err := s.store.Set(ctx, storage.KeyTrimestreOptions, string(raw)); err != nil {
		logs.Error("selection: persistance de %q impossible: %v", storage.KeyTrimestreOptions, err)
	}
	logs.Info("selection: trimestres connus %v", s.options)
	return true
}

func (s *State) validateLocked(ctx context.Context) {
	switch {
	case s.selected != nil && !containsTrimestre(s.options, *s.selected):
		logs.Warn("selection: trimestre %d absent des options, réinitialisation", s.selected.Int())
		if len(s.options) > 0 {
			s.setSelectedLocked(ctx, s.options[0])
		} else {
			s.setSelectedLocked(ctx, nil)
		}
	case s.selected == nil && len(s.options) > 0:
		s.setSelectedLocked(ctx, s.options[0])
	}
}

func containsTrimestre(list []models.Trimestre, t models.Trimestre) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}

func sortDesc(list []models.Trimestre) {
	sort.Slice(list, func(i, j int) bool { return list[i] > list[j] })
}

// normalizeOptions retire les doublons d'une liste lue du store et la trie.
func normalizeOptions(list []models.Trimestre) []models.Trimestre {
	out := make([]models.Trimestre, 0, len(list))
	for _, t := range list {
		if !containsTrimestre(out, t) {
			out = append(out, t)
		}
	}
	sortDesc(out)
	return out
}

func sameTrimestre(a, b *models.Trimestre) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func describe(t *models.Trimestre) string {
	if t == nil {
		return "null"
	}
	return strconv.Itoa(t.Int())
}
