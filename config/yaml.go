package config

import (
	"reflect"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/tessellated-io/txclient/log"
)

// WriteYamlWithComments renders config as YAML, placing each field's `comment` tag above it, and
// writes it to filename if that file does not exist yet.
func WriteYamlWithComments(config interface{}, header string, filename string, logger *log.Logger) (bool, error) {
	fileData, err := addCommentsToYaml(config, header)
	if err != nil {
		return false, err
	}

	return SafeWrite(filename, fileData, logger)
}

func addCommentsToYaml(config interface{}, header string) ([]byte, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, err
	}

	v := reflect.ValueOf(config)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	// Top level yaml key => comment
	comments := make(map[string]string)
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)

		yamlKey := strings.Split(field.Tag.Get("yaml"), ",")[0]
		comment := field.Tag.Get("comment")
		if yamlKey != "" && comment != "" {
			comments[yamlKey] = comment
		}
	}

	var result strings.Builder
	if header != "" {
		result.WriteString("# " + header + "\n")
	}

	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		// Nested keys are indented and never match
		key, _, found := strings.Cut(line, ":")
		if comment, ok := comments[key]; found && ok {
			result.WriteString("\n# " + comment + "\n")
		}
		result.WriteString(line + "\n")
	}

	return []byte(result.String()), nil
}
