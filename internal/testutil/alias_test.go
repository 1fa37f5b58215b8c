package testutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

type node struct {
	Name  string
	Tags  []string
	Attrs map[string]string
	Next  *node
}

func TestSharedMemoryDetectsAliases(t *testing.T) {
	a := node{Tags: []string{"x"}, Attrs: map[string]string{"k": "v"}, Next: &node{Tags: []string{"y"}}}
	b := a

	shared := SharedMemory(a, b)
	assert.Len(t, shared, 4)
}

func TestSharedMemoryIgnoresCopies(t *testing.T) {
	a := node{Tags: []string{"x"}, Attrs: map[string]string{"k": "v"}, Next: &node{Tags: []string{"y"}}}
	next := *a.Next
	next.Tags = slices.Clone(a.Next.Tags)
	b := node{Tags: slices.Clone(a.Tags), Attrs: map[string]string{"k": "v"}, Next: &next}

	assert.Empty(t, SharedMemory(a, b))
}

func TestSharedMemoryIgnoresEmptySlices(t *testing.T) {
	a := node{Tags: []string{}}
	b := node{Tags: a.Tags}
	assert.Empty(t, SharedMemory(a, b))
}
