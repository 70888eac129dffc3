package slug_test

import (
	"testing"

	"github.com/atulv2861/seven-healer-backend/internal/slug"

	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello, World!  Foo", "hello-world-foo"},
		{"Building Resilient Teams", "building-resilient-teams"},
		{"  --Already-Sluggish--  ", "already-sluggish"},
		{"What's New in 2026?", "whats-new-in-2026"},
		{"!!!", ""},
		{"snake_case stays", "snake_case-stays"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, slug.Generate(tc.title), "title %q", tc.title)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	titles := []string{"Hello, World!  Foo", "Building Resilient Teams", "What's New in 2026?"}
	for _, title := range titles {
		once := slug.Generate(title)
		require.Equal(t, once, slug.Generate(once))
	}
}
