package mailer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atulv2861/seven-healer-backend/internal/mailer"
)

func TestTemplateStore_Render(t *testing.T) {
	dir := t.TempDir()
	body := "<p>Hello {{name}}, your message: {{message}}</p>"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "greeting.html"), []byte(body), 0o644))

	store := mailer.NewTemplateStore(dir)
	out, err := store.Render("greeting.html", map[string]string{
		"name":    "Jane",
		"message": "hi there",
	})
	require.NoError(t, err)
	require.Equal(t, "<p>Hello Jane, your message: hi there</p>", out)
}

func TestTemplateStore_Render_LiteralSubstitutionNoEscaping(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "raw.html"), []byte("{{value}}"), 0o644))

	store := mailer.NewTemplateStore(dir)
	out, err := store.Render("raw.html", map[string]string{"value": "<b>&bold</b>"})
	require.NoError(t, err)
	require.Equal(t, "<b>&bold</b>", out)
}

func TestTemplateStore_Render_UnknownKeysLeftIntact(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "partial.html"), []byte("{{known}} {{unknown}}"), 0o644))

	store := mailer.NewTemplateStore(dir)
	out, err := store.Render("partial.html", map[string]string{"known": "yes"})
	require.NoError(t, err)
	require.Equal(t, "yes {{unknown}}", out)
}

func TestTemplateStore_Render_MissingFile(t *testing.T) {
	store := mailer.NewTemplateStore(t.TempDir())
	_, err := store.Render("nope.html", nil)
	require.Error(t, err)
}
