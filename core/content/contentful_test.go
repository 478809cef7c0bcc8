package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveImage_AllShapesResolveIdentically(t *testing.T) {
	idx := newAssetIndex([]asset{
		mustAsset(t, `{"sys":{"id":"img1","type":"Asset"},"fields":{"title":"Cover","file":{"url":"//images.ctfassets.net/cover.png"}}}`),
	})

	shapes := map[string]string{
		"link":             `{"sys":{"type":"Link","linkType":"Asset","id":"img1"}}`,
		"array":            `[{"sys":{"type":"Link","linkType":"Asset","id":"img1"}}]`,
		"inlined":          `{"sys":{"id":"img1","type":"Asset"},"fields":{"title":"Cover","file":{"url":"//images.ctfassets.net/cover.png"}}}`,
		"array of inlined": `[{"sys":{"id":"img1"},"fields":{"title":"Cover","file":{"url":"//images.ctfassets.net/cover.png"}}}]`,
	}

	for name, raw := range shapes {
		t.Run(name, func(t *testing.T) {
			img := idx.resolveImage(json.RawMessage(raw))
			require.NotNil(t, img)
			assert.Equal(t, "https://images.ctfassets.net/cover.png", img.URL)
			assert.Equal(t, "Cover", img.Title)
		})
	}
}

func TestResolveImage_Unresolvable(t *testing.T) {
	idx := newAssetIndex(nil)

	tests := map[string]string{
		"missing":       ``,
		"null":          `null`,
		"dangling link": `{"sys":{"type":"Link","linkType":"Asset","id":"nope"}}`,
		"entry link":    `{"sys":{"type":"Link","linkType":"Entry","id":"img1"}}`,
		"empty array":   `[]`,
		"no file":       `{"sys":{"id":"x"},"fields":{"title":"No file"}}`,
		"not json":      `{oops`,
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, idx.resolveImage(json.RawMessage(raw)))
		})
	}
}

func TestAbsoluteURL(t *testing.T) {
	assert.Equal(t, "https://cdn/x.png", absoluteURL("//cdn/x.png"))
	assert.Equal(t, "https://cdn/x.png", absoluteURL("https://cdn/x.png"))
}

func TestToArticle_Defaults(t *testing.T) {
	idx := newAssetIndex(nil)
	e := mustEntry(t, `{"sys":{"id":"e1"},"fields":{"title":"Hello World!"}}`)

	a, ok := idx.toArticle(e)
	require.True(t, ok)
	assert.Equal(t, "hello-world", a.Slug)
	assert.Equal(t, `""`, string(a.Body))
	assert.Equal(t, []string{}, a.Tags)
	assert.Equal(t, "", a.Excerpt)
	assert.Nil(t, a.FeaturedImage)
}

func TestToArticle_PrefersContentOverBody(t *testing.T) {
	idx := newAssetIndex(nil)

	e := mustEntry(t, `{"fields":{"title":"A","content":"# Markdown","body":"ignored"}}`)
	a, ok := idx.toArticle(e)
	require.True(t, ok)
	text, isText := a.BodyText()
	assert.True(t, isText)
	assert.Equal(t, "# Markdown", text)

	e = mustEntry(t, `{"fields":{"title":"B","body":{"nodeType":"document","content":[]}}}`)
	a, ok = idx.toArticle(e)
	require.True(t, ok)
	_, isText = a.BodyText()
	assert.False(t, isText)
	assert.JSONEq(t, `{"nodeType":"document","content":[]}`, string(a.Body))
}

func TestToArticle_ExplicitSlugKept(t *testing.T) {
	idx := newAssetIndex(nil)
	e := mustEntry(t, `{"fields":{"title":"Hello","slug":"custom-slug","tags":["go","",  "api"],"publishedDate":"2024-01-02"}}`)

	a, ok := idx.toArticle(e)
	require.True(t, ok)
	assert.Equal(t, "custom-slug", a.Slug)
	assert.Equal(t, []string{"go", "api"}, a.Tags)
	assert.Equal(t, "2024-01-02", a.PublishedDate)
}

func TestToArticle_SymbolOnlyTitleUsesFallbackSlug(t *testing.T) {
	idx := newAssetIndex(nil)
	a, ok := idx.toArticle(mustEntry(t, `{"fields":{"title":"!!!"}}`))
	require.True(t, ok)
	assert.Equal(t, "blog-post", a.Slug)

	p, ok := idx.toProject(mustEntry(t, `{"fields":{"title":"???"}}`))
	require.True(t, ok)
	assert.Equal(t, "project", p.Slug)
}

func TestToArticle_MissingTitleRejected(t *testing.T) {
	idx := newAssetIndex(nil)

	_, ok := idx.toArticle(mustEntry(t, `{"fields":{"slug":"orphan"}}`))
	assert.False(t, ok)

	_, ok = idx.toArticle(mustEntry(t, `{"fields":{"title":"   "}}`))
	assert.False(t, ok)

	_, ok = idx.toProject(mustEntry(t, `{"fields":{"title":42}}`))
	assert.False(t, ok)
}

func TestToProject_Fields(t *testing.T) {
	idx := newAssetIndex(nil)
	e := mustEntry(t, `{"fields":{
		"title":"Portfolio API",
		"description":"Backend",
		"techStack":["Go","Redis"],
		"githubUrl":"https://github.com/x/y",
		"demoUrl":"https://demo.example.com"
	}}`)

	p, ok := idx.toProject(e)
	require.True(t, ok)
	assert.Equal(t, "portfolio-api", p.Slug)
	assert.Equal(t, []string{"Go", "Redis"}, p.TechStack)
	assert.Equal(t, "https://github.com/x/y", p.GithubURL)
	assert.Equal(t, "https://demo.example.com", p.DemoURL)
}

func mustAsset(t *testing.T, raw string) asset {
	t.Helper()
	var a asset
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	return a
}

func mustEntry(t *testing.T, raw string) entry {
	t.Helper()
	var e entry
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	return e
}
