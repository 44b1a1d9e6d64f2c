package json_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/brochure"
	"github.com/fwojciec/brochure/inline"
	brochurejson "github.com/fwojciec/brochure/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDashboard(name string) brochure.Dashboard {
	return brochure.Dashboard{
		Name: name,
		Hero: brochure.Hero{Headline: "Unlock the full power of " + name + "."},
		FAQ: []brochure.FAQItem{
			{Question: "How can I cancel my plan?", Answer: "Use the **Stripe** link.\n\nNeed help?"},
		},
		Callouts: []brochure.Callout{{
			Title:     "Boost your experience with",
			Highlight: "pro",
			Body:      "Control your robot in VR.",
			Label:     "Learn More",
			URL:       "https://example.com/pro",
			Source:    name + "_app",
			Accent:    2,
		}},
		Footer: brochure.Footer{Text: "footer"},
	}
}

func TestMarshalDashboard_RoundTrip(t *testing.T) {
	t.Parallel()

	d := testDashboard("phosphobot")
	data, err := brochurejson.MarshalDashboard(d)
	require.NoError(t, err)

	got, err := brochurejson.UnmarshalDashboard(data)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestMarshalDashboard_V1Envelope(t *testing.T) {
	t.Parallel()

	data, err := brochurejson.MarshalDashboard(brochure.Dashboard{Name: "x"})
	require.NoError(t, err)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &envelope))

	var version int
	require.NoError(t, json.Unmarshal(envelope["version"], &version))
	assert.Equal(t, 1, version)
	assert.JSONEq(t, `"x"`, string(envelope["name"]))
	assert.JSONEq(t, `[]`, string(envelope["faq"]))
	assert.JSONEq(t, `[]`, string(envelope["callouts"]))
}

func TestUnmarshalDashboard(t *testing.T) {
	t.Parallel()

	t.Run("unsupported version", func(t *testing.T) {
		t.Parallel()
		_, err := brochurejson.UnmarshalDashboard([]byte(`{"version": 2, "name": "x"}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported envelope version: 2")
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		_, err := brochurejson.UnmarshalDashboard([]byte(`{`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unmarshal envelope")
	})

	t.Run("missing accent means no color", func(t *testing.T) {
		t.Parallel()
		d, err := brochurejson.UnmarshalDashboard([]byte(`{
			"version": 1,
			"name": "x",
			"callouts": [{"title": "t", "label": "l", "url": "https://x.test"}]
		}`))
		require.NoError(t, err)
		require.Len(t, d.Callouts, 1)
		assert.Equal(t, -1, d.Callouts[0].Accent)
	})

	t.Run("explicit zero accent is kept", func(t *testing.T) {
		t.Parallel()
		d, err := brochurejson.UnmarshalDashboard([]byte(`{
			"version": 1,
			"name": "x",
			"callouts": [{"title": "t", "label": "l", "url": "https://x.test", "accent": 0}]
		}`))
		require.NoError(t, err)
		assert.Equal(t, 0, d.Callouts[0].Accent)
	})

	t.Run("empty sections stay nil", func(t *testing.T) {
		t.Parallel()
		d, err := brochurejson.UnmarshalDashboard([]byte(`{"version": 1, "name": "x"}`))
		require.NoError(t, err)
		assert.Nil(t, d.FAQ)
		assert.Nil(t, d.Callouts)
	})
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "phosphobot.json")
	d := testDashboard("phosphobot")

	require.NoError(t, brochurejson.Save(path, d))
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")

	got, err := brochurejson.Load(path)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := brochurejson.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadGlob(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, brochurejson.Save(filepath.Join(root, "b.json"), testDashboard("b")))
	require.NoError(t, brochurejson.Save(filepath.Join(root, "sub", "a.json"), testDashboard("a")))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("ignored"), 0o644))

	t.Run("recursive pattern", func(t *testing.T) {
		t.Parallel()
		got, err := brochurejson.LoadGlob(root, "**/*.json")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "b", got[0].Name)
		assert.Equal(t, "a", got[1].Name)
	})

	t.Run("top-level pattern", func(t *testing.T) {
		t.Parallel()
		got, err := brochurejson.LoadGlob(root, "*.json")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "b", got[0].Name)
	})

	t.Run("no matches", func(t *testing.T) {
		t.Parallel()
		got, err := brochurejson.LoadGlob(root, "*.yaml")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		t.Parallel()
		_, err := brochurejson.LoadGlob(root, "[")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid glob pattern")
	})

	t.Run("root is a file", func(t *testing.T) {
		t.Parallel()
		_, err := brochurejson.LoadGlob(filepath.Join(root, "notes.txt"), "*.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "root must be a directory")
	})
}

func TestLoadGlob_BadFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "bad.json"), []byte(`{"version": 9}`), 0o644))

	_, err := brochurejson.LoadGlob(root, "*.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
	assert.Contains(t, err.Error(), "unsupported envelope version: 9")
}

func TestMarshalDocument(t *testing.T) {
	t.Parallel()

	doc := inline.Render("see [docs](https://x.test) **now**\n\n")
	data, err := brochurejson.MarshalDocument(doc)
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"runs": [
			{"type": "text", "content": "see "},
			{"type": "link", "text": "docs", "url": "https://x.test"},
			{"type": "text", "content": " "},
			{"type": "bold", "content": "now"}
		]},
		{"runs": [{"type": "text", "content": ""}]}
	]`, string(data))

	got, err := brochurejson.UnmarshalDocument(data)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestUnmarshalDocument_UnknownRunType(t *testing.T) {
	t.Parallel()

	_, err := brochurejson.UnmarshalDocument([]byte(`[{"runs": [{"type": "italic", "content": "x"}]}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `paragraph 0: run 0: unknown run type: "italic"`)
}
