package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassFilename(t *testing.T) {
	tests := []struct {
		name      string
		className string
		expected  string
	}{
		{"no namespace", "Article", "Article.xml"},
		{"backslash namespace", `Midgard\CreatePHP\Entity\Article`, "Midgard.CreatePHP.Entity.Article.xml"},
		{"leading separator", `\App\Article`, ".App.Article.xml"},
		{"go import path", "example.com/blog.Post", "example.com.blog.Post.xml"},
		{"already dotted", "app.Post", "app.Post.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassFilename(tt.className))
		})
	}
}
