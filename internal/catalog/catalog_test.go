package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSampleCatalog(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "catalog.yml"))
	require.NoError(t, err)

	assert.Equal(t, "Studio Glow", c.Studio.Name)
	assert.Len(t, c.Hero, 3)
	assert.Len(t, c.Testimonials, 3)

	wedding, ok := c.Category("Wedding")
	require.True(t, ok)
	assert.Len(t, wedding.Images, 5)
	assert.Len(t, wedding.Videos, 2)

	portrait, ok := c.Category("Portrait")
	require.True(t, ok)
	assert.Empty(t, portrait.Videos)

	svc, ok := c.Service("portrait")
	require.True(t, ok)
	assert.Equal(t, "Portrait Sessions", svc.Title)
	assert.Contains(t, c.ServiceTitles(), "Event Films")

	st := c.Stats()
	assert.Equal(t, 3, st.Categories)
	assert.Equal(t, 10, st.Images)
	assert.Equal(t, 3, st.Videos)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.False(t, IsInvalid(err))
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte("hero: [unterminated"))
	require.Error(t, err)
	assert.False(t, IsInvalid(err))
}

func TestValidateReportsEveryProblem(t *testing.T) {
	src := `
media:
  - name: Wedding
  - name: Wedding
  - name: ""
picker:
  - title: Ghost
    category: Birthday
hero:
  - title: no image
services:
  - id: a
  - id: a
courses:
  - title: no id
testimonials:
  - quote: fine
    rating: 6
  - quote: ""
    rating: 3
`
	_, err := Parse([]byte(src))
	require.Error(t, err)
	assert.True(t, IsInvalid(err))

	msg := err.Error()
	for _, want := range []string{
		`duplicate category "Wedding"`,
		"media[2]: name is required",
		`unknown category "Birthday"`,
		"hero[0]: image is required",
		`services: duplicate id "a"`,
		"courses[0]: id is required",
		"rating must be 1-5, got 6",
		"testimonials[1]: quote is required",
	} {
		assert.Contains(t, msg, want)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "catalog.yml"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yml")
	require.NoError(t, c.Save(path))

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, again)
}

func TestMarkdown(t *testing.T) {
	out := string(Markdown("Two **photographers**\n\n<script>alert(1)</script>"))
	assert.Contains(t, out, "<strong>photographers</strong>")
	assert.NotContains(t, out, "<script>")
}

func TestSourceSwap(t *testing.T) {
	first := &Catalog{Studio: Studio{Name: "first"}}
	src := NewSource(first)
	held := src.Current()

	old := src.Swap(&Catalog{Studio: Studio{Name: "second"}})
	assert.Same(t, first, old)
	assert.Equal(t, "second", src.Current().Studio.Name)
	assert.Equal(t, "first", held.Studio.Name, "values already handed out are untouched")
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestIsInvalidMessage(t *testing.T) {
	err := (&Catalog{Testimonials: []Testimonial{{Quote: "x"}}}).Validate()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "invalid catalog: "))
}
