package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fournii/domtree/webidl"
)

func TestArenaInsertAndGet(t *testing.T) {
	a := NewNodeArena()
	h := a.Insert(NewCommentNode("hello"))
	require.False(t, h.Null())

	n, err := a.Get(h)
	require.NoError(t, err)
	assert.Equal(t, CommentNode, n.NodeType)
	assert.Equal(t, webidl.DOMString("hello"), n.Comment.Data)
	assert.Equal(t, 1, a.Len())
}

func TestArenaHandlesStayValidAcrossGrowth(t *testing.T) {
	a := NewNodeArena()
	first := a.Insert(NewTextNode("first"))
	want, err := a.Get(first)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		a.Insert(NewCommentNode("filler"))
	}

	got, err := a.Get(first)
	require.NoError(t, err)
	assert.Same(t, want, got)
	assert.Equal(t, 1001, a.Len())
}

func TestArenaIssuesDistinctHandles(t *testing.T) {
	a := NewNodeArena()
	x := a.Insert(NewCommentNode("same data"))
	y := a.Insert(NewCommentNode("same data"))
	assert.NotEqual(t, x, y)
}

func TestArenaRejectsZeroHandle(t *testing.T) {
	a := NewNodeArena()
	a.Insert(NewDocumentNode())

	_, err := a.Get(NodeHandle{})
	require.ErrorIs(t, err, ErrInvalidHandle)
}

func TestArenaRejectsForeignHandle(t *testing.T) {
	a := NewNodeArena()
	b := NewNodeArena()
	foreign := b.Insert(NewTextNode("elsewhere"))

	_, err := a.Get(foreign)
	require.ErrorIs(t, err, ErrInvalidHandle)
}

func TestArenaRejectsOutOfRangeIndex(t *testing.T) {
	a := NewNodeArena()
	a.Insert(NewDocumentNode())

	_, err := a.Get(NodeHandle{arena: a.id, index: 5})
	require.ErrorIs(t, err, ErrInvalidHandle)
}

func TestNodeHandleNull(t *testing.T) {
	assert.True(t, NodeHandle{}.Null())

	a := NewNodeArena()
	assert.False(t, a.Insert(NewDocumentNode()).Null())
}
