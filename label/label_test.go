package label_test

import (
	"testing"

	"github.com/katalvlaran/rcspp/label"
	"github.com/katalvlaran/rcspp/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildExtender(t *testing.T, amount float64) *resource.Extender {
	t.Helper()
	tmpl := template()
	ext, err := resource.BuildExtender(tmpl, []resource.Operator{resource.AdditiveOperator(amount)})
	require.NoError(t, err)

	return ext
}

func TestLabel_ExtendAccumulatesCost(t *testing.T) {
	l := label.Label{EndNode: 1, Resource: template()}

	next, err := l.Extend(10, 2, buildExtender(t, 5))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), next.EndNode)
	assert.Equal(t, uint64(10), next.InArc)
	assert.Equal(t, 5.0, next.Cost())

	// receiver is untouched
	assert.Equal(t, 0.0, l.Cost())
}

func TestLabel_DominatesRequiresSameEndNode(t *testing.T) {
	a := label.Label{EndNode: 1, Resource: template()}
	b := label.Label{EndNode: 2, Resource: template()}

	assert.False(t, a.Dominates(&b))
}

func TestLabel_DominatesDelegatesToResource(t *testing.T) {
	cheap := label.Label{EndNode: 1, Resource: template()}
	expensive, err := cheap.Extend(1, 1, buildExtender(t, 5))
	require.NoError(t, err)

	assert.True(t, cheap.Dominates(&expensive))
	assert.False(t, expensive.Dominates(&cheap))
}
