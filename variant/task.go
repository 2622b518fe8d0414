package variant

import (
	"regexp"
	"strings"
)

// ParseTaskRequest derives the active variant from the build tasks that
// were requested, e.g. ":app:assembleMasterDebug" for project ":app" and
// build types debug and release gives {BuildType: "debug", Flavor: "master"}.
//
// assemble tasks are searched when any task mentions assemble; bundle tasks
// otherwise. Matching ignores case and results are lower-cased. The boolean
// is false when no task names a known build type for project.
func ParseTaskRequest(project string, tasks, buildTypes []string) (Context, bool) {
	if len(buildTypes) == 0 {
		return Context{}, false
	}

	joined := strings.Join(tasks, ", ")

	verb := "bundle"
	if strings.Contains(strings.ToLower(joined), "assemble") {
		verb = "assemble"
	}

	quoted := make([]string, len(buildTypes))
	for i, bt := range buildTypes {
		quoted[i] = regexp.QuoteMeta(bt)
	}

	pattern := regexp.MustCompile("(?i)" + regexp.QuoteMeta(project) + ":" + verb +
		`(\w+)?(` + strings.Join(quoted, "|") + `)`)

	m := pattern.FindStringSubmatch(joined)
	if m == nil {
		return Context{}, false
	}
	return Context{
		BuildType: strings.ToLower(m[2]),
		Flavor:    strings.ToLower(m[1]),
	}, true
}
