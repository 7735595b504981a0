package orbyte

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, cfg EngineConfig) *TemplateEngine {
	t.Helper()
	e, err := NewEngine(cfg)
	require.NoError(t, err)
	return e
}

func TestTemplateEngine_Render_Raw(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeTemplate(t, dir, "greeting.en.tmpl", "Hello {{ .name }} & <b>{{ .tag }}</b>")

	e := newTestEngine(t, EngineConfig{})
	out, err := e.Render(path, "en", map[string]any{"name": "World", "tag": "<i>"})
	require.NoError(t, err)
	assert.Equal(t, "Hello World & <b><i></b>", out, "plain templates get no escaping")
}

func TestTemplateEngine_Render_MarkupEscapes(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeTemplate(t, dir, "page.html.tmpl", "<p>{{ .body }}</p>")

	e := newTestEngine(t, EngineConfig{})
	out, err := e.Render(path, "en", map[string]any{"body": "<script>alert(1)</script>"})
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestTemplateEngine_Render_MarkupDetectionSkipsLocaleSuffix(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeTemplate(t, dir, "page.html.es.tmpl", "<p>{{ .body }}</p>")

	e := newTestEngine(t, EngineConfig{})
	out, err := e.Render(path, "es", map[string]any{"body": "<x>"})
	require.NoError(t, err)
	assert.Contains(t, out, "&lt;x&gt;")
}

func TestTemplateEngine_Render_MissingVariable(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeTemplate(t, dir, "greeting.en.tmpl", "Hello {{ .name }}!")

	e := newTestEngine(t, EngineConfig{})
	_, err := e.Render(path, "en", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingVariable)

	var varErr *VariableError
	require.ErrorAs(t, err, &varErr)
	assert.Equal(t, "name", varErr.Variable)
	assert.Equal(t, path, varErr.Template)
}

func TestTemplateEngine_Render_FileVanished(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeTemplate(t, dir, "gone.tmpl", "x")
	require.NoError(t, os.Remove(path))

	e := newTestEngine(t, EngineConfig{})
	_, err := e.Render(path, "en", nil)
	require.Error(t, err)
}

func TestTemplateEngine_Cache_ReparsesOnMtimeChange(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeTemplate(t, dir, "greeting.en.tmpl", "v1")

	e := newTestEngine(t, EngineConfig{})
	out, err := e.Render(path, "en", nil)
	require.NoError(t, err)
	assert.Equal(t, "v1", out)

	// Rewrite with a deliberately different mtime; coarse filesystem
	// timestamps would otherwise hide the change.
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o600))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	out, err = e.Render(path, "en", nil)
	require.NoError(t, err)
	assert.Equal(t, "v2", out)
}

func TestTemplateEngine_Cache_ServesCachedParse(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeTemplate(t, dir, "greeting.en.tmpl", "v1")
	info, err := os.Stat(path)
	require.NoError(t, err)

	e := newTestEngine(t, EngineConfig{})
	out, err := e.Render(path, "en", nil)
	require.NoError(t, err)
	assert.Equal(t, "v1", out)

	// Same mtime: the rewrite is invisible until Reload.
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o600))
	require.NoError(t, os.Chtimes(path, info.ModTime(), info.ModTime()))

	out, err = e.Render(path, "en", nil)
	require.NoError(t, err)
	assert.Equal(t, "v1", out)

	e.Reload()
	out, err = e.Render(path, "en", nil)
	require.NoError(t, err)
	assert.Equal(t, "v2", out)
}

func TestTemplateEngine_NoCache(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeTemplate(t, dir, "greeting.en.tmpl", "v1")
	info, err := os.Stat(path)
	require.NoError(t, err)

	e := newTestEngine(t, EngineConfig{NoCache: true})
	out, err := e.Render(path, "en", nil)
	require.NoError(t, err)
	assert.Equal(t, "v1", out)

	// Even with an unchanged mtime the rewrite is picked up.
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o600))
	require.NoError(t, os.Chtimes(path, info.ModTime(), info.ModTime()))

	out, err = e.Render(path, "en", nil)
	require.NoError(t, err)
	assert.Equal(t, "v2", out)
}

func TestNewEngine_SandboxRejectsFilters(t *testing.T) {
	t.Parallel()
	_, err := NewEngine(EngineConfig{
		Sandbox: true,
		Filters: map[string]any{"x": func() string { return "" }},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestTemplateEngine_CustomFilter(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeTemplate(t, dir, "shout.en.tmpl", `{{ shout .name }}`)

	e := newTestEngine(t, EngineConfig{
		Filters: map[string]any{"shout": func(s string) string { return s + "!!!" }},
	})
	out, err := e.Render(path, "en", map[string]any{"name": "go"})
	require.NoError(t, err)
	assert.Equal(t, "go!!!", out)
}

// fixedTranslator returns canned messages for exact locale+key pairs.
type fixedTranslator struct {
	messages map[string]string
}

func (f *fixedTranslator) T(locale, key string, _ map[string]any) string {
	if msg, ok := f.messages[locale+"/"+key]; ok {
		return msg
	}
	return key
}

func TestTemplateEngine_TranslationFunc(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeTemplate(t, dir, "intro.es.tmpl", `{{ t "hello" }}`)

	e := newTestEngine(t, EngineConfig{
		Translator: &fixedTranslator{messages: map[string]string{"es/hello": "hola"}},
	})
	out, err := e.Render(path, "es", nil)
	require.NoError(t, err)
	assert.Equal(t, "hola", out)
}

func TestTemplateEngine_TranslationFallsBackToKey(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeTemplate(t, dir, "intro.en.tmpl", `{{ t "hello" }}`)

	e := newTestEngine(t, EngineConfig{})
	out, err := e.Render(path, "en", nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", out, "no translator configured: t echoes the key")
}
