package xmlgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/xmlprops/errors"
	"github.com/teranos/xmlprops/kotlin"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindObjectClass, KindOf("object-class"))
	assert.Equal(t, KindVar, KindOf("var"))
	assert.Equal(t, KindUnknown, KindOf("enum-class"))
	assert.Equal(t, "constructor", KindConstructor.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestProcessImport(t *testing.T) {
	single, err := processImport(parseXML(t, `<import name="Log" package="android.util"/>`))
	require.NoError(t, err)
	assert.Equal(t, []kotlin.Import{{Package: "android.util", Name: "Log"}}, single)

	multi, err := processImport(parseXML(t, `<import package="android.util">
		<import name="Log"/>
		<import/>
		<import name="Pair"/>
	</import>`))
	require.NoError(t, err)
	assert.Equal(t, []kotlin.Import{
		{Package: "android.util", Name: "Log"},
		{Package: "android.util", Name: "Pair"},
	}, multi)

	_, err = processImport(parseXML(t, `<import name="Log"/>`))
	assert.True(t, errors.Is(err, errors.ErrMissingName))
}

func TestProcessImport_EmptyNameIsAbsent(t *testing.T) {
	none, err := processImport(parseXML(t, `<import name="" package="android.util"/>`))
	require.NoError(t, err)
	assert.Empty(t, none)

	nested, err := processImport(parseXML(t, `<import name="" package="android.util"><import name="Log"/></import>`))
	require.NoError(t, err)
	assert.Equal(t, []kotlin.Import{{Package: "android.util", Name: "Log"}}, nested)
}

func TestProcessClass_ImplicitPublic(t *testing.T) {
	c, err := processClass(parseXML(t, `<object-class name="HttpPath">
		<val name="BASE" modifier="const">"/api"</val>
		<fun name="ignored"/>
		<constructor/>
		<whatever/>
	</object-class>`), kotlin.KindObject)
	require.NoError(t, err)

	assert.Equal(t, kotlin.KindObject, c.Kind)
	assert.Equal(t, "HttpPath", c.Name)
	assert.Equal(t, []kotlin.Modifier{kotlin.Public}, c.Modifiers)
	require.Len(t, c.Properties, 1)
	assert.Equal(t, "BASE", c.Properties[0].Name)
}

func TestProcessClass_ExplicitVisibility(t *testing.T) {
	c, err := processClass(parseXML(t, `<class name="Box">
		<modifiers><internal/><open/></modifiers>
	</class>`), kotlin.KindClass)
	require.NoError(t, err)
	assert.Equal(t, []kotlin.Modifier{kotlin.Internal, kotlin.Open}, c.Modifiers)

	c, err = processClass(parseXML(t, `<class name="Box"><modifiers><open/></modifiers></class>`), kotlin.KindClass)
	require.NoError(t, err)
	assert.Equal(t, []kotlin.Modifier{kotlin.Public, kotlin.Open}, c.Modifiers)
}

func TestProcessClass_Errors(t *testing.T) {
	_, err := processClass(parseXML(t, `<class/>`), kotlin.KindClass)
	assert.True(t, errors.Is(err, errors.ErrMissingName))

	_, err = processClass(parseXML(t, `<class name="A"><modifiers><sealed/></modifiers></class>`), kotlin.KindClass)
	assert.True(t, errors.Is(err, errors.ErrUnknownModifier))

	_, err = processClass(parseXML(t, `<class name="A"><val type="String"/></class>`), kotlin.KindClass)
	assert.True(t, errors.Is(err, errors.ErrMissingName))
}

func TestProcessFileNode_IgnoresUnknownAndNoOps(t *testing.T) {
	for _, doc := range []string{`<fun name="f"/>`, `<constructor/>`, `<match default="true"/>`, `<something-new a="b"/>`} {
		frag, err := processFileNode(parseXML(t, doc))
		require.NoError(t, err, doc)
		assert.Equal(t, fileFragment{}, frag, doc)
	}
}
