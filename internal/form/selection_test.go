package form

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleItem(t *testing.T) {
	f := newFixture()
	s := f.session
	s.Activate(context.Background())

	selected, err := s.ToggleItem(2)
	require.NoError(t, err)
	assert.True(t, selected)

	selected, err = s.ToggleItem(5)
	require.NoError(t, err)
	assert.True(t, selected)
	assert.Equal(t, []int{2, 5}, s.State().SelectedItems)

	selected, err = s.ToggleItem(2)
	require.NoError(t, err)
	assert.False(t, selected)
	assert.Equal(t, []int{5}, s.State().SelectedItems)
}

func TestToggleTwiceIsNoop(t *testing.T) {
	tests := []struct {
		name    string
		initial []int
		toggle  int
	}{
		{"from empty", nil, 1},
		{"member", []int{1, 2}, 2},
		{"non member", []int{1, 2}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			s := f.session
			s.Activate(context.Background())
			for _, id := range tt.initial {
				_, err := s.ToggleItem(id)
				require.NoError(t, err)
			}
			before := s.State().SelectedItems

			_, err := s.ToggleItem(tt.toggle)
			require.NoError(t, err)
			_, err = s.ToggleItem(tt.toggle)
			require.NoError(t, err)

			assert.ElementsMatch(t, before, s.State().SelectedItems)
		})
	}
}

func TestToggleUnknownCategory(t *testing.T) {
	f := newFixture()
	s := f.session

	// nothing fetched yet, so nothing is selectable
	_, err := s.ToggleItem(1)
	assert.ErrorIs(t, err, ErrUnknownCategory)

	s.Activate(context.Background())
	_, err = s.ToggleItem(99)
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Empty(t, s.State().SelectedItems)
}
