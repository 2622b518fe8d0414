// Package i18n generates a Kotlin object of string-resource keys from a
// Java .properties file.
package i18n

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"

	"github.com/teranos/xmlprops/errors"
	"github.com/teranos/xmlprops/kotlin"
)

// Load reads a .properties file as UTF-8 without expanding ${} references.
func Load(path string) (*properties.Properties, error) {
	l := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := l.LoadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return p, nil
}

// jvmForbidden are characters the JVM rejects in member names, even when
// the Kotlin name is back-quoted.
const jvmForbidden = ".;[]/<>:\\`\r\n"

// ConstantName maps a properties key to the Kotlin property name declared
// for it. Characters the JVM rejects in names become underscores; keywords
// and other non-identifiers are back-quoted at render time.
func ConstantName(key string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(jvmForbidden, r) {
			return '_'
		}
		return r
	}, key)
}

// Build returns a file declaring one public object named objectName with a
// String constant per key, in file order. Each constant's value is its own
// key. Two keys mapping to the same constant name fail with ErrInvalidName.
func Build(props *properties.Properties, packageName, objectName string) (*kotlin.File, error) {
	object := kotlin.Class{
		Kind:      kotlin.KindObject,
		Name:      objectName,
		Modifiers: []kotlin.Modifier{kotlin.Public},
	}

	stringType := kotlin.Type{Name: "String", Package: "kotlin"}
	declared := make(map[string]string, props.Len())
	for _, key := range props.Keys() {
		name := ConstantName(key)
		if name == "" {
			return nil, errors.Wrap(errors.ErrInvalidName, "empty properties key")
		}
		if other, ok := declared[name]; ok {
			return nil, errors.WithHint(
				errors.Wrapf(errors.ErrInvalidName, "keys %q and %q both map to constant %q", other, key, name),
				"rename one of the keys",
			)
		}
		declared[name] = key

		object.Properties = append(object.Properties, kotlin.Property{
			Name:        name,
			Type:        stringType,
			Initializer: kotlin.QuoteString(key),
			Modifiers:   []kotlin.Modifier{kotlin.Public},
		})
	}

	file := &kotlin.File{
		Package: packageName,
		Name:    objectName,
		Classes: []kotlin.Class{object},
	}
	if err := file.CheckPath(); err != nil {
		return nil, err
	}
	return file, nil
}

// Generate loads input and writes the object's file under outDir. It
// returns the written path and the number of keys.
func Generate(input, packageName, objectName, outDir string) (string, int, error) {
	if objectName == "" {
		return "", 0, errors.Wrap(errors.ErrMissingName, "i18n object name is empty")
	}

	props, err := Load(input)
	if err != nil {
		return "", 0, err
	}

	file, err := Build(props, packageName, objectName)
	if err != nil {
		return "", 0, errors.Wrapf(err, "%s", filepath.Base(input))
	}
	path := file.Path(outDir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", 0, errors.Wrapf(err, "failed to create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(file.Render()), 0644); err != nil {
		return "", 0, errors.Wrapf(err, "failed to write %s", path)
	}
	return path, props.Len(), nil
}
