package site

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitfolio/gitfolio/internal/domain"
)

func testPortfolio() *domain.Portfolio {
	return &domain.Portfolio{
		Profile: &domain.Profile{
			Login:     "octocat",
			Name:      "The Octocat",
			Bio:       "I build things",
			AvatarURL: "https://example.com/a.png",
			Location:  "Internet",
			Followers: 100,
			Following: 9,
		},
		Repos: []domain.Repository{
			{Name: "gitfolio", Description: "portfolio generator", Language: "Go", Stars: 40, Forks: 3, HTMLURL: "https://github.com/octocat/gitfolio", License: "MIT License"},
		},
		Skills: []domain.Skill{{Name: "Go", Count: 1, Icon: "devicon-go-original-wordmark"}},
		Stars:  domain.StarSummary{Total: 40, Median: 40, Max: 40},
		Social: domain.Social{GitHub: "https://github.com/octocat", LinkedIn: "https://linkedin.com/in/octocat"},
	}
}

func TestRenderer_Render(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	t.Run("full portfolio renders every section", func(t *testing.T) {
		buf := new(bytes.Buffer)
		require.NoError(t, renderer.Render(buf, testPortfolio()))
		html := buf.String()

		assert.Contains(t, html, `id="hero"`)
		assert.Contains(t, html, `id="about"`)
		assert.Contains(t, html, `id="skills"`)
		assert.Contains(t, html, `id="projects"`)
		assert.Contains(t, html, `id="social"`)

		assert.Contains(t, html, "The Octocat")
		assert.Contains(t, html, "I build things")
		assert.Contains(t, html, "Based in Internet")
		assert.Contains(t, html, `href="https://github.com/octocat/gitfolio"`)
		assert.Contains(t, html, "devicon-go-original-wordmark")
		assert.Contains(t, html, `href="https://linkedin.com/in/octocat"`)
	})

	t.Run("missing profile falls back to placeholders, grid still renders", func(t *testing.T) {
		p := testPortfolio()
		p.Profile = nil

		buf := new(bytes.Buffer)
		require.NoError(t, renderer.Render(buf, p))
		html := buf.String()

		assert.Contains(t, html, "My Portfolio")
		assert.Contains(t, html, "Details are temporarily unavailable.")
		assert.NotContains(t, html, "The Octocat")
		// The project grid is independent of the profile fetch.
		assert.Contains(t, html, `href="https://github.com/octocat/gitfolio"`)
	})

	t.Run("empty repository list omits the grid but not the page", func(t *testing.T) {
		p := testPortfolio()
		p.Repos = nil
		p.Stars = domain.StarSummary{}

		buf := new(bytes.Buffer)
		require.NoError(t, renderer.Render(buf, p))
		html := buf.String()

		assert.Contains(t, html, `id="projects"`)
		assert.NotContains(t, html, "class=\"card\"")
	})
}

func TestRenderer_WriteFile(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, renderer.WriteFile(dir, testPortfolio()))

	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
	assert.Contains(t, string(data), "The Octocat")
}
