package variant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/xmlprops/markup"
)

func ruleFromXML(t *testing.T, doc string) Rule {
	t.Helper()
	node, err := markup.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return RuleFrom(node)
}

func TestMatches_DefaultOnly(t *testing.T) {
	contexts := []Context{
		{BuildType: "release"},
		{BuildType: "debug"},
		{BuildType: "debug", Flavor: "master"},
		{BuildType: ""},
	}

	withDefault := ruleFromXML(t, `<match default="true"/>`)
	bare := ruleFromXML(t, `<match/>`)
	falseDefault := ruleFromXML(t, `<match default="false"/>`)
	upperDefault := ruleFromXML(t, `<match default="TRUE"/>`)

	for _, ctx := range contexts {
		t.Run(ctx.String(), func(t *testing.T) {
			assert.True(t, Matches(withDefault, ctx))
			assert.False(t, Matches(bare, ctx))
			assert.False(t, Matches(falseDefault, ctx))
			assert.False(t, Matches(upperDefault, ctx))
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name  string
		match string
		ctx   Context
		want  bool
	}{
		{"build type exact", `<match build-type="release"/>`, Context{BuildType: "release"}, true},
		{"build type mismatch", `<match build-type="release"/>`, Context{BuildType: "debug"}, false},
		{"no substring match", `<match build-type="debug"/>`, Context{BuildType: "debug1"}, false},
		{"list member", `<match build-type="debug1,release"/>`, Context{BuildType: "debug1"}, true},
		{"list prefix is not member", `<match build-type="debug1,release"/>`, Context{BuildType: "debug"}, false},
		{"list with spaces", `<match build-type=" debug , release "/>`, Context{BuildType: "release"}, true},
		{"flavor matches", `<match build-type="debug" flavor="master,sen"/>`, Context{BuildType: "debug", Flavor: "sen"}, true},
		{"flavor mismatch voids match", `<match build-type="debug" flavor="master"/>`, Context{BuildType: "debug", Flavor: "sen"}, false},
		{"flavor scope ignored without context flavor", `<match build-type="debug" flavor="master"/>`, Context{BuildType: "debug"}, true},
		{"flavor irrelevant when build type fails", `<match build-type="release" flavor="master"/>`, Context{BuildType: "debug", Flavor: "master"}, false},
		{"scope wins over default", `<match build-type="release" default="true"/>`, Context{BuildType: "debug"}, false},
		{"declared empty scope never matches", `<match build-type="" default="true"/>`, Context{BuildType: "debug"}, false},
		{"flavor-only scope accepts any build type", `<match flavor="master"/>`, Context{BuildType: "debug", Flavor: "sen"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(ruleFromXML(t, tt.match), tt.ctx))
		})
	}
}

func TestRuleFrom(t *testing.T) {
	rule := ruleFromXML(t, `<match default="true" flavor="master" build-type="debug, release"/>`)

	assert.True(t, rule.Default)
	assert.Equal(t, Scope{Declared: true, Names: []string{"debug", "release"}}, rule.BuildTypes)
	assert.Equal(t, Scope{Declared: true, Names: []string{"master"}}, rule.Flavors)

	empty := ruleFromXML(t, `<match/>`)
	assert.False(t, empty.BuildTypes.Declared)
	assert.False(t, empty.Flavors.Declared)
	assert.False(t, empty.Default)
}

func TestContext_String(t *testing.T) {
	assert.Equal(t, "debug", Context{BuildType: "debug"}.String())
	assert.Equal(t, "master/debug", Context{BuildType: "debug", Flavor: "master"}.String())
}

func TestParseTaskRequest(t *testing.T) {
	buildTypes := []string{"debug", "release"}
	tasks := []string{
		":app:assembleMasterDebug",
		":app:assembleMasterDebugUnitTest",
		":arch:ui:theme:assembleDebug",
		":arch:ui:theme:assembleDebugUnitTest",
	}

	tests := []struct {
		name    string
		project string
		tasks   []string
		want    Context
		wantOK  bool
	}{
		{"flavored app", ":app", tasks, Context{BuildType: "debug", Flavor: "master"}, true},
		{"library without flavor", ":arch:ui:theme", tasks, Context{BuildType: "debug"}, true},
		{"bundle task", ":app", []string{":app:bundleSenRelease"}, Context{BuildType: "release", Flavor: "sen"}, true},
		{"case insensitive", ":app", []string{":APP:ASSEMBLERELEASE"}, Context{BuildType: "release"}, true},
		{"other project", ":server", tasks, Context{}, false},
		{"unknown build type", ":app", []string{":app:assembleStaging"}, Context{}, false},
		{"no tasks", ":app", nil, Context{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTaskRequest(tt.project, tt.tasks, buildTypes)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := ParseTaskRequest(":app", tasks, nil)
	assert.False(t, ok)
}

func TestScopeContainsAgreesWithFullMatch(t *testing.T) {
	lists := []string{"", "debug", "debug1,release", " debug , release "}
	names := []string{"", "debug", "debug1", "release", "Release"}

	for _, list := range lists {
		scope := NewScope(list)
		for _, name := range names {
			assert.Equal(t,
				markup.FullMatch(list, true, name, markup.DefaultSeparator),
				scope.Contains(name),
				"list %q name %q", list, name)
		}
		assert.False(t, Scope{}.Contains(list))
	}
}
