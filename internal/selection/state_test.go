package selection

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/uqo/assistanat_client/internal/storage"
	"github.com/uqo/assistanat_client/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stored(t *testing.T, s storage.Store, key string) (string, bool) {
	t.Helper()
	v, ok, err := s.Get(context.Background(), key)
	require.NoError(t, err)
	return v, ok
}

func TestNewWithEmptyStore(t *testing.T) {
	st := New(context.Background(), storage.NewMemory(nil))

	_, ok := st.Selected()
	assert.False(t, ok)
	assert.Empty(t, st.Options())
}

func TestNewLoadsPersistedState(t *testing.T) {
	store := storage.NewMemory(map[string]string{
		storage.KeySelectedTrimestre: "20243",
		storage.KeyTrimestreOptions:  "[20243,20251]",
	})
	st := New(context.Background(), store)

	sel, ok := st.Selected()
	require.True(t, ok)
	assert.Equal(t, models.Trimestre(20243), sel)
	assert.Equal(t, []models.Trimestre{20251, 20243}, st.Options())
}

func TestNewRepairsSelectionOutsideOptions(t *testing.T) {
	store := storage.NewMemory(map[string]string{
		storage.KeySelectedTrimestre: "20199",
		storage.KeyTrimestreOptions:  "[20251,20243]",
	})
	st := New(context.Background(), store)

	sel, ok := st.Selected()
	require.True(t, ok)
	assert.Equal(t, models.Trimestre(20251), sel)

	v, _ := stored(t, store, storage.KeySelectedTrimestre)
	assert.Equal(t, "20251", v)
}

func TestNewClearsSelectionWithoutOptions(t *testing.T) {
	store := storage.NewMemory(map[string]string{
		storage.KeySelectedTrimestre: "20251",
	})
	st := New(context.Background(), store)

	_, ok := st.Selected()
	assert.False(t, ok)
	v, present := stored(t, store, storage.KeySelectedTrimestre)
	assert.True(t, present)
	assert.Equal(t, "", v)
}

func TestInvalidOptionsJSONFallsBackToDefault(t *testing.T) {
	store := storage.NewMemory(map[string]string{
		storage.KeyTrimestreOptions: "{not json",
	})

	var st *State
	require.NotPanics(t, func() {
		st = New(context.Background(), store)
	})
	assert.Empty(t, st.Options())
}

func TestNullOptionsJSONFallsBackToDefault(t *testing.T) {
	store := storage.NewMemory(map[string]string{
		storage.KeyTrimestreOptions: "null",
	})
	st := New(context.Background(), store)
	assert.NotNil(t, st.Options())
	assert.Empty(t, st.Options())
}

func TestNonNumericSelectionFallsBackToDefault(t *testing.T) {
	store := storage.NewMemory(map[string]string{
		storage.KeySelectedTrimestre: "abc",
	})
	st := New(context.Background(), store)

	_, ok := st.Selected()
	assert.False(t, ok)
}

func TestSetSelectedValuePersistsString(t *testing.T) {
	store := storage.NewMemory(nil)
	st := New(context.Background(), store)
	ctx := context.Background()

	st.SetSelectedValue(ctx, 5)
	v, _ := stored(t, store, storage.KeySelectedTrimestre)
	assert.Equal(t, "5", v)

	st.SetSelectedValue(ctx, nil)
	v, present := stored(t, store, storage.KeySelectedTrimestre)
	assert.True(t, present)
	assert.Equal(t, "", v)
}

func TestSetSelectedValueCoercesStrings(t *testing.T) {
	store := storage.NewMemory(nil)
	st := New(context.Background(), store)

	st.SetSelectedValue(context.Background(), " 20251 ")
	sel, ok := st.Selected()
	require.True(t, ok)
	assert.Equal(t, models.Trimestre(20251), sel)
}

func TestSetSelectedValueIsWriteThrough(t *testing.T) {
	store := &countingStore{Store: storage.NewMemory(nil)}
	st := New(context.Background(), store)
	ctx := context.Background()

	st.SetSelectedValue(ctx, 20251)
	st.SetSelectedValue(ctx, 20251)
	assert.Equal(t, 2, store.sets[storage.KeySelectedTrimestre])
}

func TestUpdateTrimestreOptionsAutoSelects(t *testing.T) {
	store := storage.NewMemory(map[string]string{
		storage.KeyTrimestreOptions: "[20251,20243]",
	})
	ctx := context.Background()
	st := New(ctx, store)
	// la validation initiale choisit déjà 20251; on repart d'une sélection vide
	st.mu.Lock()
	st.selected = nil
	st.mu.Unlock()

	st.UpdateTrimestreOptions(ctx, 20252)

	assert.Equal(t, []models.Trimestre{20252, 20251, 20243}, st.Options())
	sel, ok := st.Selected()
	require.True(t, ok)
	assert.Equal(t, models.Trimestre(20252), sel)

	v, _ := stored(t, store, storage.KeyTrimestreOptions)
	assert.JSONEq(t, "[20252,20251,20243]", v)
	v, _ = stored(t, store, storage.KeySelectedTrimestre)
	assert.Equal(t, "20252", v)
}

func TestUpdateTrimestreOptionsKeepsExistingSelection(t *testing.T) {
	ctx := context.Background()
	st := New(ctx, storage.NewMemory(nil))

	st.UpdateTrimestreOptions(ctx, 20243)
	st.UpdateTrimestreOptions(ctx, 20251)

	sel, ok := st.Selected()
	require.True(t, ok)
	assert.Equal(t, models.Trimestre(20243), sel)
}

func TestUpdateTrimestreOptionsIgnoresDuplicatesAndGarbage(t *testing.T) {
	store := &countingStore{Store: storage.NewMemory(nil)}
	ctx := context.Background()
	st := New(ctx, store)

	st.UpdateTrimestreOptions(ctx, 20251)
	st.UpdateTrimestreOptions(ctx, "20251")
	st.UpdateTrimestreOptions(ctx, "hiver")
	st.UpdateTrimestreOptions(ctx, nil)

	assert.Equal(t, []models.Trimestre{20251}, st.Options())
	assert.Equal(t, 1, store.sets[storage.KeyTrimestreOptions])
}

func TestOptionsStaySortedAndUnique(t *testing.T) {
	ctx := context.Background()
	st := New(ctx, storage.NewMemory(nil))
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		st.UpdateTrimestreOptions(ctx, 20200+rng.Intn(40))

		opts := st.Options()
		assert.True(t, sort.SliceIsSorted(opts, func(a, b int) bool { return opts[a] > opts[b] }))
		seen := map[models.Trimestre]bool{}
		for _, o := range opts {
			assert.False(t, seen[o], "doublon %d", o)
			seen[o] = true
		}
		sel, ok := st.Selected()
		require.True(t, ok)
		assert.True(t, seen[sel])
	}
}

func TestValidateSelection(t *testing.T) {
	tests := []struct {
		name     string
		selected *models.Trimestre
		options  []models.Trimestre
		want     *models.Trimestre
	}{
		{name: "valide", selected: ptr(20243), options: []models.Trimestre{20251, 20243}, want: ptr(20243)},
		{name: "hors options", selected: ptr(20111), options: []models.Trimestre{20251, 20243}, want: ptr(20251)},
		{name: "nul avec options", selected: nil, options: []models.Trimestre{20251}, want: ptr(20251)},
		{name: "hors options sans options", selected: ptr(20251), options: nil, want: nil},
		{name: "nul sans options", selected: nil, options: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &State{store: storage.NewMemory(nil), selected: tt.selected, options: tt.options}
			st.ValidateSelection(context.Background())

			got := st.Snapshot().Selected
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestDiscoverTrimestres(t *testing.T) {
	ctx := context.Background()
	st := New(ctx, storage.NewMemory(nil))

	st.DiscoverTrimestres(ctx, []models.Campagne{{Trimestre: 20243}, {Trimestre: 20251}, {Trimestre: 0}})

	assert.Equal(t, []models.Trimestre{20251, 20243}, st.Options())
	sel, _ := st.Selected()
	assert.Equal(t, models.Trimestre(20243), sel)

	st.DiscoverTrimestres(ctx, []models.Campagne{{Trimestre: 20252}})
	assert.Equal(t, []models.Trimestre{20252, 20251, 20243}, st.Options())
	sel, _ = st.Selected()
	assert.Equal(t, models.Trimestre(20243), sel, "un trimestre plus récent ne remplace pas la sélection")
}

func TestStoreWriteFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	st := New(ctx, failingStore{})

	st.UpdateTrimestreOptions(ctx, 20251)

	assert.Equal(t, []models.Trimestre{20251}, st.Options())
	sel, ok := st.Selected()
	require.True(t, ok)
	assert.Equal(t, models.Trimestre(20251), sel)
}

func ptr(v int) *models.Trimestre {
	t := models.Trimestre(v)
	return &t
}

type countingStore struct {
	storage.Store
	sets map[string]int
}

func (c *countingStore) Set(ctx context.Context, key, value string) error {
	if c.sets == nil {
		c.sets = map[string]int{}
	}
	c.sets[key]++
	return c.Store.Set(ctx, key, value)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disque indisponible")
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("disque indisponible")
}

func (failingStore) Remove(context.Context, string) error {
	return errors.New("disque indisponible")
}
