package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/magiconair/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/xmlprops/errors"
	"github.com/teranos/xmlprops/kotlin"
)

const sampleProperties = `# login screen
login_title = Sign in
login_button=Go
app.name=Demo
object=reserved
greeting=Hello ${user}
`

func TestBuild(t *testing.T) {
	l := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := l.LoadBytes([]byte(sampleProperties))
	require.NoError(t, err)

	file, err := Build(props, "io.i18n.resources", "Strings")
	require.NoError(t, err)

	want := kotlin.Header + "\n" +
		"package io.i18n.resources\n" +
		"\n" +
		"public object Strings {\n" +
		"  public val login_title: String = \"login_title\"\n" +
		"\n" +
		"  public val login_button: String = \"login_button\"\n" +
		"\n" +
		"  public val app_name: String = \"app.name\"\n" +
		"\n" +
		"  public val `object`: String = \"object\"\n" +
		"\n" +
		"  public val greeting: String = \"greeting\"\n" +
		"}\n"
	assert.Equal(t, want, file.Render())
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "string.properties")
	require.NoError(t, os.WriteFile(input, []byte(sampleProperties), 0644))

	out := filepath.Join(dir, "build")
	path, count, err := Generate(input, "io.i18n.resources", "Strings", out)
	require.NoError(t, err)

	assert.Equal(t, 5, count)
	assert.Equal(t, filepath.Join(out, "io", "i18n", "resources", "Strings.kt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "public object Strings {")
	assert.Contains(t, string(data), `public val greeting: String = "greeting"`)
}

func TestGenerate_Errors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := Generate(filepath.Join(dir, "missing.properties"), "p", "Strings", dir)
	assert.Error(t, err)

	_, _, err = Generate(filepath.Join(dir, "missing.properties"), "p", "", dir)
	assert.True(t, errors.Is(err, errors.ErrMissingName))
}

func TestBuild_Empty(t *testing.T) {
	file, err := Build(properties.NewProperties(), "p", "Strings")
	require.NoError(t, err)
	assert.Contains(t, file.Render(), "public object Strings\n")
}

func loadString(t *testing.T, s string) *properties.Properties {
	t.Helper()
	l := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := l.LoadBytes([]byte(s))
	require.NoError(t, err)
	return props
}

func TestConstantName(t *testing.T) {
	tests := map[string]string{
		"login_title":    "login_title",
		"app.name":       "app_name",
		"menu/file:open": "menu_file_open",
		"list[0];<x>\\y": "list_0___x__y",
		"two words":      "two words",
	}
	for key, want := range tests {
		assert.Equal(t, want, ConstantName(key), key)
	}
}

func TestBuild_DottedKeysStayValid(t *testing.T) {
	file, err := Build(loadString(t, "app.name=X\nscreen.login.title=Y\n"), "p", "Strings")
	require.NoError(t, err)

	out := file.Render()
	assert.Contains(t, out, `public val app_name: String = "app.name"`)
	assert.Contains(t, out, `public val screen_login_title: String = "screen.login.title"`)
	assert.NotContains(t, out, "`")
}

func TestBuild_ConstantNameCollision(t *testing.T) {
	_, err := Build(loadString(t, "app.name=X\napp_name=Y\n"), "p", "Strings")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidName))
	assert.Contains(t, err.Error(), `"app.name"`)
	assert.Contains(t, err.Error(), `"app_name"`)
}

func TestBuild_RejectsUnsafeObjectAndPackage(t *testing.T) {
	props := loadString(t, "a=b\n")

	_, err := Build(props, "p", "../Strings")
	assert.True(t, errors.Is(err, errors.ErrInvalidName))

	_, err = Build(props, "io/../../etc", "Strings")
	assert.True(t, errors.Is(err, errors.ErrInvalidName))
}
