package mailer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TemplateStore loads HTML email bodies from a directory and fills them by
// literal `{{key}}` substitution. The bodies are trusted templates shipped
// with the service, not user input, so no escaping is applied.
type TemplateStore struct {
	dir string
}

func NewTemplateStore(dir string) *TemplateStore {
	return &TemplateStore{dir: dir}
}

func (s *TemplateStore) Render(name string, values map[string]string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("load template %s: %w", name, err)
	}

	body := string(raw)
	for key, value := range values {
		body = strings.ReplaceAll(body, "{{"+key+"}}", value)
	}
	return body, nil
}
