package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"iter"
	"log/slog"
	"strings"
	"testing"

	"github.com/abgdnv/inventory/internal/inventory/service"
	"github.com/abgdnv/inventory/internal/inventory/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// session runs the shell over script against catalog and returns everything printed.
func session(t *testing.T, catalog store.CatalogStore, script string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	svc := service.NewService(catalog)
	prompter := NewLinePrompter(strings.NewReader(script), &out)
	h := NewHandler(svc, prompter, &out, discardLogger)
	err := NewLoop(h, prompter, &out, discardLogger).Run(context.Background())
	return out.String(), err
}

func seededStore(t *testing.T) *store.InMemory {
	t.Helper()
	s := store.NewInMemoryStore()
	require.NoError(t, service.NewService(s).Reset(context.Background()))
	return s
}

func find(t *testing.T, s store.CatalogStore, filter store.Filter) []store.Product {
	t.Helper()
	seq, err := s.Find(context.Background(), filter, store.FindOptions{})
	require.NoError(t, err)
	var out []store.Product
	for p, err := range seq {
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func Test_Loop_ViewAll(t *testing.T) {
	out, err := session(t, seededStore(t), "vap\nex\ny\n")

	require.NoError(t, err)
	for _, p := range store.SeedCatalog() {
		assert.Contains(t, out, p.Name)
	}
}

func Test_Loop_ViewByCategory(t *testing.T) {
	testCases := []struct {
		name      string
		script    string
		contains  []string
		forbidden []string
	}{
		{
			name:      "Limit respected in store order",
			script:    "vp\nkitchen\n2\nex\ny\n",
			contains:  []string{"pot", "pan"},
			forbidden: []string{"knife", "spatula", "cutting board"},
		},
		{
			name:     "Category is normalized",
			script:   "vp\n  KITCHEN \n10\nex\ny\n",
			contains: []string{"pot", "pan", "knife", "spatula", "cutting board"},
		},
		{
			name:      "Unknown category",
			script:    "vp\ngarage\n5\nex\ny\n",
			contains:  []string{msgNoProducts},
			forbidden: []string{"pot"},
		},
		{
			name:      "Zero count",
			script:    "vp\nkitchen\n0\nex\ny\n",
			contains:  []string{msgNoProducts},
			forbidden: []string{"pot"},
		},
		{
			name:      "Non-numeric count",
			script:    "vp\nkitchen\nabc\nex\ny\n",
			contains:  []string{msgInvalidCount},
			forbidden: []string{"pot"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			out, err := session(t, seededStore(t), tc.script)
			// then
			require.NoError(t, err)
			for _, s := range tc.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tc.forbidden {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func Test_Loop_Add(t *testing.T) {
	catalog := seededStore(t)

	out, err := session(t, catalog, "ap\n Mop \nBathroom\n9.5\nex\ny\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Product with id ")
	assert.Contains(t, out, " was added.")
	assert.Equal(t, []store.Product{{Name: "mop", Category: "bathroom", Price: 9.5}}, find(t, catalog, store.ByName("mop")))
}

func Test_Loop_Add_Rejected(t *testing.T) {
	testCases := []struct {
		name     string
		script   string
		expected string
	}{
		{name: "Price not a number", script: "ap\nmop\nbathroom\ncheap\nex\ny\n", expected: msgInvalidPrice},
		{name: "Blank name", script: "ap\n   \nbathroom\n9.5\nex\ny\n", expected: msgEmptyName},
		{name: "Both invalid reports price", script: "ap\n\nbathroom\nNaN\nex\ny\n", expected: msgInvalidPrice},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			catalog := seededStore(t)
			// when
			out, err := session(t, catalog, tc.script)
			// then
			require.NoError(t, err)
			assert.Contains(t, out, tc.expected)
			assert.NotContains(t, out, "was added.")
			assert.Len(t, find(t, catalog, store.All()), len(store.SeedCatalog()))
		})
	}
}

func Test_Loop_Update(t *testing.T) {
	catalog := seededStore(t)

	out, err := session(t, catalog, "up\nsponge\nsponge-deluxe\nbathroom\n1.99\nex\ny\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Updated 1 documents.")
	assert.Empty(t, find(t, catalog, store.ByName("sponge")))
	assert.Equal(t,
		[]store.Product{{Name: "sponge-deluxe", Category: "bathroom", Price: 1.99}},
		find(t, catalog, store.ByName("sponge-deluxe")))
}

func Test_Loop_Update_NoMatch(t *testing.T) {
	catalog := seededStore(t)

	out, err := session(t, catalog, "up\nhammer\nhammer\ngarage\n12\nex\ny\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Updated 0 documents.")
	assert.Empty(t, find(t, catalog, store.ByName("hammer")))
}

func Test_Loop_Update_InvalidPriceLeavesStore(t *testing.T) {
	catalog := seededStore(t)

	out, err := session(t, catalog, "up\nsponge\nsponge\nbathroom\nfree\nex\ny\n")

	require.NoError(t, err)
	assert.Contains(t, out, msgInvalidPrice)
	assert.NotContains(t, out, "Updated")
	assert.Equal(t, []store.Product{{Name: "sponge", Category: "bathroom", Price: 0.56}}, find(t, catalog, store.ByName("sponge")))
}

func Test_Loop_Delete(t *testing.T) {
	catalog := seededStore(t)

	out, err := session(t, catalog, "dp\nToothbrush\ndp\ntoothbrush\nex\ny\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 1 documents.")
	assert.Contains(t, out, "Deleted 0 documents.")
	assert.Empty(t, find(t, catalog, store.ByName("toothbrush")))
	assert.Len(t, find(t, catalog, store.All()), len(store.SeedCatalog())-1)
}

func Test_Loop_Exit(t *testing.T) {
	testCases := []struct {
		name          string
		script        string
		expectPrompts int
	}{
		{name: "Confirmed", script: "ex\ny\nvap\n", expectPrompts: 1},
		{name: "Confirmed with yes and long alias", script: "EXIT\n yes \n", expectPrompts: 1},
		{name: "Answer is case sensitive", script: "ex\nY\nex\ny\n", expectPrompts: 2},
		{name: "Declined then confirmed", script: "ex\nn\nex\ny\n", expectPrompts: 2},
		{name: "Anything else declines", script: "ex\nsure\nex\ny\n", expectPrompts: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			out, err := session(t, seededStore(t), tc.script)
			// then
			require.NoError(t, err)
			assert.Equal(t, tc.expectPrompts, strings.Count(out, confirmPrompt))
			assert.NotContains(t, out, "sponge", "nothing runs after a confirmed exit")
		})
	}
}

func Test_Loop_EndOfInputExits(t *testing.T) {
	testCases := []struct {
		name   string
		script string
	}{
		{name: "Empty input", script: ""},
		{name: "After a command", script: "vap\n"},
		{name: "During exit confirmation", script: "ex\n"},
		{name: "Mid command", script: "ap\nmop\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := seededStore(t)

			_, err := session(t, catalog, tc.script)

			assert.NoError(t, err)
			assert.Empty(t, find(t, catalog, store.ByName("mop")))
		})
	}
}

func Test_Loop_InvalidOption(t *testing.T) {
	out, err := session(t, seededStore(t), "zz\n\nex\ny\n")

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, msgInvalidCommand))
	assert.Equal(t, 3, strings.Count(out, "Choose an action:"))
}

func Test_Loop_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	prompter := NewLinePrompter(strings.NewReader("vap\n"), &out)
	h := NewHandler(service.NewService(seededStore(t)), prompter, &out, discardLogger)

	err := NewLoop(h, prompter, &out, discardLogger).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func Test_Loop_DispatchIsTotal(t *testing.T) {
	var out bytes.Buffer
	prompter := NewLinePrompter(strings.NewReader(""), &out)
	h := NewHandler(service.NewService(store.NewInMemoryStore()), prompter, &out, discardLogger)

	l := NewLoop(h, prompter, &out, discardLogger)

	for _, c := range Commands {
		assert.NotNil(t, l.actions[c], "no action for %v", c)
	}
}

// failingStore is a catalog whose reads always fail.
type failingStore struct {
	*store.InMemory
	err error
}

func (f *failingStore) Find(context.Context, store.Filter, store.FindOptions) (iter.Seq2[store.Product, error], error) {
	return nil, f.err
}

func Test_Loop_StoreErrorStopsShell(t *testing.T) {
	ErrUnavailable := errors.New("store unavailable")
	catalog := &failingStore{InMemory: store.NewInMemoryStore(), err: ErrUnavailable}

	out, err := session(t, catalog, "vap\nex\ny\n")

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotContains(t, out, confirmPrompt)
}
