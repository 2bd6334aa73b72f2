package dsf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vancomm/signpost-server/internal/dsf"
)

func TestSingletons(t *testing.T) {
	d := dsf.New(5)
	for i := range 5 {
		assert.Equal(t, i, d.Canonify(i))
		assert.Equal(t, 1, d.Size(i))
	}
	assert.False(t, d.Connected(0, 4))
}

func TestMerge(t *testing.T) {
	d := dsf.New(6)
	d.Merge(0, 1)
	d.Merge(2, 3)
	d.Merge(1, 2)

	assert.True(t, d.Connected(0, 3))
	assert.False(t, d.Connected(0, 4))
	assert.Equal(t, 4, d.Size(0))
	assert.Equal(t, 4, d.Size(3))
	assert.Equal(t, 1, d.Size(5))
}

func TestMergeIdempotent(t *testing.T) {
	d := dsf.New(4)
	d.Merge(0, 1)
	d.Merge(0, 1)
	d.Merge(1, 0)
	assert.Equal(t, 2, d.Size(0))
}

func TestReset(t *testing.T) {
	d := dsf.New(4)
	d.Merge(0, 1)
	d.Merge(2, 3)
	d.Reset()
	for i := range 4 {
		assert.Equal(t, 1, d.Size(i))
	}
	assert.False(t, d.Connected(0, 1))
}

func TestClone(t *testing.T) {
	d := dsf.New(4)
	d.Merge(0, 1)
	c := d.Clone()
	c.Merge(2, 3)
	assert.True(t, c.Connected(2, 3))
	assert.False(t, d.Connected(2, 3))
}
