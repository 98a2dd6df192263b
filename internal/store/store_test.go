package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/ident"
	"github.com/Makepad-fr/tada/internal/model"
)

func seqGen() ident.Generator {
	n := 0
	return ident.GeneratorFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Buy milk", want: "Buy milk"},
		{name: "trimmed", in: "  walk the dog \t", want: "walk the dog"},
		{name: "inner spaces kept", in: "a  b", want: "a  b"},
		{name: "unicode", in: " café ", want: "café"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(seqGen())
			s.Add("existing")
			before := s.Len()

			it, ok := s.Add(tt.in)
			require.True(t, ok)
			require.Equal(t, before+1, s.Len())
			assert.Equal(t, tt.want, it.Value)
			assert.False(t, it.Done)
			assert.NotEmpty(t, it.ID)

			items := s.List()
			assert.Equal(t, it, items[len(items)-1], "new item is appended last")
			assert.Equal(t, "existing", items[0].Value)
		})
	}
}

func TestAddBlankIsNoop(t *testing.T) {
	s := New(seqGen())
	s.Add("keep")
	for _, in := range []string{"", "   ", "\t\n"} {
		_, ok := s.Add(in)
		assert.False(t, ok, "Add(%q)", in)
	}
	assert.Equal(t, 1, s.Len())
}

func TestToggleIsInvolution(t *testing.T) {
	s := New(seqGen())
	a, _ := s.Add("a")
	b, _ := s.Seed("b", true)

	require.True(t, s.Toggle(a.ID))
	got, _ := s.Get(a.ID)
	assert.True(t, got.Done)
	require.True(t, s.Toggle(a.ID))
	got, _ = s.Get(a.ID)
	assert.False(t, got.Done)

	s.Toggle(b.ID)
	s.Toggle(b.ID)
	got, _ = s.Get(b.ID)
	assert.True(t, got.Done)
}

func TestToggleDoesNotReorder(t *testing.T) {
	s := New(seqGen())
	s.Add("a")
	b, _ := s.Add("b")
	s.Add("c")

	s.Toggle(b.ID)
	var values []string
	for _, it := range s.List() {
		values = append(values, it.Value)
	}
	assert.Equal(t, []string{"a", "b", "c"}, values)
}

func TestToggleUnknownID(t *testing.T) {
	s := New(seqGen())
	s.Add("a")
	s.Seed("b", true)
	before := s.List()

	assert.False(t, s.Toggle("missing"))
	assert.Equal(t, before, s.List())
}

func TestAddThenToggle(t *testing.T) {
	s := New(ident.UUID{})
	it, ok := s.Add("Buy milk")
	require.True(t, ok)
	s.Toggle(it.ID)

	var matches []model.Item
	for _, x := range s.List() {
		if x.Value == "Buy milk" {
			matches = append(matches, x)
		}
	}
	require.Len(t, matches, 1)
	assert.True(t, matches[0].Done)
}

func TestListIsACopy(t *testing.T) {
	s := New(seqGen())
	s.Add("a")
	items := s.List()
	items[0].Done = true
	items[0].Value = "changed"

	got := s.List()
	assert.False(t, got[0].Done)
	assert.Equal(t, "a", got[0].Value)
}

func TestGet(t *testing.T) {
	s := New(seqGen())
	a, _ := s.Add("a")
	got, ok := s.Get(a.ID)
	require.True(t, ok)
	assert.Equal(t, a, got)

	_, ok = s.Get("nope")
	assert.False(t, ok)
}
