package screen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/ident"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/seed"
)

func seqGen() ident.Generator {
	n := 0
	return ident.GeneratorFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
}

func values(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Value)
	}
	return out
}

func TestNewSeedsDefault(t *testing.T) {
	s := New(seqGen(), seed.Default(), model.FilterAll)
	require.Len(t, s.Items(), 3)
	assert.Equal(t, []string{"Sample Todo 1", "Sample Todo 3", "Sample Todo 2"}, values(s.Visible()))

	done, pending := s.Stats()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)
}

func TestNewSkipsBlankEntries(t *testing.T) {
	s := New(seqGen(), []seed.Entry{{Value: " "}, {Value: "x"}}, model.FilterAll)
	assert.Equal(t, []string{"x"}, values(s.Items()))
}

func TestMutationsReproject(t *testing.T) {
	s := New(seqGen(), seed.Default(), model.FilterPending)
	assert.Equal(t, []string{"Sample Todo 1", "Sample Todo 3"}, values(s.Visible()))

	it, ok := s.Add("Buy milk")
	require.True(t, ok)
	assert.Equal(t, []string{"Sample Todo 1", "Sample Todo 3", "Buy milk"}, values(s.Visible()))

	require.True(t, s.Toggle(it.ID))
	got, ok := s.Get(it.ID)
	require.True(t, ok)
	assert.True(t, got.Done)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []string{"Sample Todo 1", "Sample Todo 3"}, values(s.Visible()))

	require.True(t, s.SetFilter(model.FilterDone))
	assert.Equal(t, []string{"Sample Todo 2", "Buy milk"}, values(s.Visible()))

	assert.False(t, s.SetFilter("nope"))
	assert.Equal(t, model.FilterDone, s.Filter())
}

func TestInvalidInitialFilter(t *testing.T) {
	s := New(seqGen(), nil, model.Filter("x"))
	assert.Equal(t, model.FilterAll, s.Filter())
	assert.Empty(t, s.Visible())
}
