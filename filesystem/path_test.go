package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Path{"a"}, ParsePath("a"))
	assert.Equal(t, Path{"a", "b", "c"}, ParsePath("a/b/c"))
	assert.Equal(t, Path{"", "a"}, ParsePath("/a"))
	assert.Equal(t, "a/b/c", ParsePath("a/b/c").String())
}

func TestPath_Split(t *testing.T) {
	t.Parallel()

	parent, name := Path{"a", "b", "c"}.Split()
	assert.Equal(t, Path{"a", "b"}, parent)
	assert.Equal(t, "c", name)

	parent, name = Path{"a"}.Split()
	assert.Empty(t, parent)
	assert.Equal(t, "a", name)

	parent, name = Path{}.Split()
	assert.Nil(t, parent)
	assert.Equal(t, "", name)
}

func TestPath_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"a", ""},
		{"a/b.c/d-e", ""},
		{"", "empty path segment"},
		{"/a", "empty path segment"},
		{"a/", "empty path segment"},
		{"a//b", "empty path segment"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePath(tt.path).Validate())
		})
	}

	assert.Equal(t, "empty path", Path{}.Validate())
}

func TestPath_HasPrefix(t *testing.T) {
	t.Parallel()

	p := Path{"a", "b", "c"}
	assert.True(t, p.HasPrefix(Path{}))
	assert.True(t, p.HasPrefix(Path{"a"}))
	assert.True(t, p.HasPrefix(Path{"a", "b", "c"}))
	assert.False(t, p.HasPrefix(Path{"a", "b", "c", "d"}))
	assert.False(t, p.HasPrefix(Path{"a", "x"}))
	// segment-wise, not textual
	assert.False(t, Path{"ab"}.HasPrefix(Path{"a"}))
}
