package views

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	Name  string
	Email string
}

func rowFields(r row) []string {
	return []string{r.Name, r.Email}
}

func TestListViewLoadLifecycle(t *testing.T) {
	rows := []row{{Name: "Ada Lovelace"}, {Name: "Grace Hopper"}}

	view := NewListView(func() ([]row, error) { return rows, nil }, rowFields)
	assert.Equal(t, StateIdle, view.State())

	view.Load()
	assert.Equal(t, StateLoaded, view.State())
	assert.Len(t, view.Rows(), 2)
	assert.NoError(t, view.Err())
}

func TestListViewLoadFailure(t *testing.T) {
	boom := errors.New("store unreachable")
	view := NewListView(func() ([]row, error) { return nil, boom }, rowFields)

	view.Load()
	assert.Equal(t, StateFailed, view.State())
	assert.Empty(t, view.Rows())
	assert.Equal(t, boom, view.Err())

	// A later successful load recovers the view
	recovered := NewListView(func() ([]row, error) { return []row{{Name: "Back"}}, nil }, rowFields)
	recovered.Load()
	assert.Equal(t, StateLoaded, recovered.State())
}

func TestListViewStaleLoadDiscarded(t *testing.T) {
	view := NewListView[row](nil, rowFields)

	first := view.BeginLoad()
	second := view.BeginLoad()

	// The newer load resolves first and owns the view
	view.CompleteLoad(second, []row{{Name: "Fresh"}}, nil)
	assert.Equal(t, StateLoaded, view.State())
	assert.Equal(t, "Fresh", view.Rows()[0].Name)

	// The superseded result lands late and is discarded
	view.CompleteLoad(first, []row{{Name: "Stale"}}, nil)
	assert.Equal(t, "Fresh", view.Rows()[0].Name)

	// A stale failure does not flip a loaded view into Failed either
	view.CompleteLoad(first, nil, errors.New("too late"))
	assert.Equal(t, StateLoaded, view.State())
	assert.NoError(t, view.Err())
}

func TestListViewSearchFilter(t *testing.T) {
	rows := []row{
		{Name: "Ada Lovelace", Email: "ada@example.com"},
		{Name: "Grace Hopper", Email: "grace@navy.mil"},
	}
	view := NewListView(func() ([]row, error) { return rows, nil }, rowFields)
	view.Load()

	t.Run("Case-insensitive name match", func(t *testing.T) {
		view.SetSearch("ADA")
		assert.Len(t, view.Rows(), 1)
		assert.Equal(t, "Ada Lovelace", view.Rows()[0].Name)
	})

	t.Run("Matches any configured field", func(t *testing.T) {
		view.SetSearch("navy")
		assert.Len(t, view.Rows(), 1)
		assert.Equal(t, "Grace Hopper", view.Rows()[0].Name)
	})

	t.Run("No match yields empty, not error", func(t *testing.T) {
		view.SetSearch("zzz")
		assert.Empty(t, view.Rows())
		assert.Equal(t, StateLoaded, view.State())
	})

	t.Run("Clearing the filter restores all rows", func(t *testing.T) {
		view.SetSearch("")
		assert.Len(t, view.Rows(), 2)
	})
}

func TestListViewMutationRefetches(t *testing.T) {
	calls := 0
	view := NewListView(func() ([]row, error) {
		calls++
		return []row{{Name: "Current"}}, nil
	}, rowFields)

	view.Load()
	view.MutationDone()
	assert.Equal(t, 2, calls)
	assert.Equal(t, StateLoaded, view.State())
}
