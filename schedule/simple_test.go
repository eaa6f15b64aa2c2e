package schedule_test

import (
	"testing"

	"github.com/katalvlaran/rcspp/label"
	"github.com/katalvlaran/rcspp/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimple_FIFOOrder(t *testing.T) {
	s := schedule.NewSimple(0)
	a := &label.Label{ID: 1, EndNode: 10}
	b := &label.Label{ID: 2, EndNode: 10}
	s.Push(a)
	s.Push(b)

	got, ok := s.Next()
	require.True(t, ok)
	assert.Same(t, a, got)

	got, ok = s.Next()
	require.True(t, ok)
	assert.Same(t, b, got)

	_, ok = s.Next()
	assert.False(t, ok)
}

func TestSimple_DominatedReturnedWithoutCountingBudget(t *testing.T) {
	s := schedule.NewSimple(1)
	dominated := &label.Label{ID: 1, EndNode: 10, Dominated: true}
	live := &label.Label{ID: 2, EndNode: 10}
	s.Push(dominated)
	s.Push(live)

	got, ok := s.Next()
	require.True(t, ok)
	assert.Same(t, dominated, got, "dominated label is still returned, for the caller to release")

	got, ok = s.Next()
	require.True(t, ok)
	assert.Same(t, live, got, "dominated label must not count against the budget")
}

func TestSimple_BudgetTruncatesAndRestoresNextPhase(t *testing.T) {
	s := schedule.NewSimple(1)
	a := &label.Label{ID: 1, EndNode: 10}
	b := &label.Label{ID: 2, EndNode: 10}
	s.Push(a)
	s.Push(b)

	got, ok := s.Next()
	require.True(t, ok)
	assert.Same(t, a, got)

	_, ok = s.Next()
	assert.False(t, ok, "second label for the same node exceeds the budget this phase")
	assert.Equal(t, 1, s.Len(), "truncated label still counted in Len")

	s.PreparePhase()
	got, ok = s.Next()
	require.True(t, ok)
	assert.Same(t, b, got, "truncated label must resurface after PreparePhase")
}
