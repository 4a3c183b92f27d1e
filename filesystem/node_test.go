package filesystem

import (
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper to build a tree from slash paths; every ancestor is created as needed
func createTestTree(t *testing.T, paths ...string) *Node {
	t.Helper()
	root := NewNode()
	for _, p := range paths {
		cur := root
		for _, name := range ParsePath(p) {
			if child, ok := cur.GetChild(name); ok {
				cur = child
				continue
			}
			child, err := cur.InsertChild(name)
			require.NoError(t, err)
			cur = child
		}
	}
	return root
}

func TestNode_InsertChild(t *testing.T) {
	t.Parallel()

	parent := NewNode()

	child, err := parent.InsertChild("child")
	require.NoError(t, err)
	require.NotNil(t, child)

	// Verify child was added and is empty
	retrieved, exists := parent.GetChild("child")
	require.True(t, exists)
	assert.Same(t, child, retrieved)
	assert.Equal(t, 0, child.Len())
	assert.True(t, parent.HasChild("child"))
	assert.Equal(t, 1, parent.Len())
}

func TestNode_InsertChild_NameInUse(t *testing.T) {
	t.Parallel()

	parent := NewNode()
	first, err := parent.InsertChild("dup")
	require.NoError(t, err)

	second, err := parent.InsertChild("dup")
	assert.ErrorIs(t, err, ErrNameInUse)
	assert.Nil(t, second)

	// original child untouched
	retrieved, _ := parent.GetChild("dup")
	assert.Same(t, first, retrieved)
}

func TestNode_GetChild(t *testing.T) {
	t.Parallel()

	parent := createTestTree(t, "child")

	// Test existing child
	child, exists := parent.GetChild("child")
	assert.True(t, exists)
	assert.NotNil(t, child)

	// Test non-existing child
	missing, exists := parent.GetChild("nonexistent")
	assert.False(t, exists)
	assert.Nil(t, missing)
	assert.False(t, parent.HasChild("nonexistent"))
}

func TestNode_RemoveChild(t *testing.T) {
	t.Parallel()

	parent := createTestTree(t, "child/grandchild")

	removed, err := parent.RemoveChild("child")
	require.NoError(t, err)
	require.NotNil(t, removed)

	// Verify child no longer exists but its subtree travelled with it
	assert.False(t, parent.HasChild("child"))
	assert.True(t, removed.HasChild("grandchild"))

	// Test removing non-existent child
	_, err = parent.RemoveChild("child")
	assert.ErrorIs(t, err, ErrNoChild)
}

func TestNode_AttachChild(t *testing.T) {
	t.Parallel()

	src := createTestTree(t, "a/b/c")
	dst := NewNode()

	a, err := src.RemoveChild("a")
	require.NoError(t, err)
	require.NoError(t, dst.AttachChild("renamed", a))

	node, _, ok := dst.Resolve(Path{"renamed", "b", "c"})
	assert.True(t, ok)
	assert.NotNil(t, node)

	err = dst.AttachChild("renamed", NewNode())
	assert.ErrorIs(t, err, ErrNameInUse)
}

func TestNode_Resolve(t *testing.T) {
	t.Parallel()

	root := createTestTree(t, "a/b/c", "a/d")

	tests := []struct {
		name        string
		path        Path
		wantOK      bool
		wantMatched Path
	}{
		{"empty path resolves to self", Path{}, true, Path{}},
		{"single segment", Path{"a"}, true, Path{"a"}},
		{"nested", Path{"a", "b", "c"}, true, Path{"a", "b", "c"}},
		{"missing first", Path{"x", "b"}, false, Path{}},
		{"missing middle", Path{"a", "x", "c"}, false, Path{"a"}},
		{"missing last", Path{"a", "b", "x"}, false, Path{"a", "b"}},
		{"past a leaf", Path{"a", "d", "e"}, false, Path{"a", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, matched, ok := root.Resolve(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMatched, matched)
			if tt.wantOK {
				assert.NotNil(t, node)
			} else {
				assert.Nil(t, node)
			}
		})
	}
}

func TestNode_SortedChildren(t *testing.T) {
	t.Parallel()

	root := createTestTree(t, "pear", "apple", "Zebra", "banana")

	names := make([]string, 0)
	for _, ch := range root.SortedChildren() {
		names = append(names, ch.Name)
	}
	// byte-wise ordering puts upper case first
	assert.Equal(t, []string{"Zebra", "apple", "banana", "pear"}, names)
}

func TestNode_Walk(t *testing.T) {
	t.Parallel()

	root := createTestTree(t, "x/z", "x/y", "w", "x/y/q")

	entries := slices.Collect(root.Walk())
	assert.Equal(t, []Entry{
		{Name: "w", Depth: 1},
		{Name: "x", Depth: 1},
		{Name: "y", Depth: 2},
		{Name: "q", Depth: 3},
		{Name: "z", Depth: 2},
	}, entries)
}

func TestNode_Walk_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, slices.Collect(NewNode().Walk()))
}

func TestNode_Walk_EarlyStop(t *testing.T) {
	t.Parallel()

	root := createTestTree(t, "a/b/c", "d")

	var seen []string
	for e := range root.Walk() {
		seen = append(seen, e.Name)
		if e.Name == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestNode_Snapshot(t *testing.T) {
	t.Parallel()

	root := createTestTree(t, "a/c", "a/b")

	assert.Equal(t, Snapshot{
		Name: "",
		Children: []Snapshot{
			{Name: "a", Children: []Snapshot{{Name: "b"}, {Name: "c"}}},
		},
	}, root.Snapshot(""))
}

func TestNode_ConcurrentChildOperations(t *testing.T) {
	parent := NewNode()

	const numGoroutines = 10
	const numOperations = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	// Concurrent insert/remove operations on distinct names
	for i := range numGoroutines {
		go func(goroutineID int) {
			defer wg.Done()
			for j := range numOperations {
				childName := fmt.Sprintf("child_%d_%d", goroutineID, j)
				_, err := parent.InsertChild(childName)
				assert.NoError(t, err)

				assert.True(t, parent.HasChild(childName))

				_, err = parent.RemoveChild(childName)
				assert.NoError(t, err)

				assert.False(t, parent.HasChild(childName))
			}
		}(i)
	}

	wg.Wait()
	assert.Equal(t, 0, parent.Len())
}

func TestNode_ConcurrentInsertSameName(t *testing.T) {
	parent := NewNode()

	const numGoroutines = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0

	wg.Add(numGoroutines)
	for range numGoroutines {
		go func() {
			defer wg.Done()
			if _, err := parent.InsertChild("contended"); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// only one insert may win
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, parent.Len())
}
