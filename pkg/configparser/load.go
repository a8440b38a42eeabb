package configparser

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrNoFilePath = errors.New("no file path provided")

// LoadYamlFile reads a flat YAML config file and exports its values as
// environment variables. Nested sections become underscore-joined, upper-cased
// prefixes (server.port -> SERVER_PORT). Variables already present in the
// environment win over file values, and ${VAR:-default} substitution is
// honoured for scalar values.
func LoadYamlFile(filepath string) error {
	if filepath == "" {
		return ErrNoFilePath
	}

	file, err := os.Open(filepath)
	if err != nil {
		return fmt.Errorf("could not open YAML file: %w", err)
	}
	defer file.Close()

	var (
		sections   []string
		lastIndent int
	)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		content := strings.TrimSpace(line)
		if content == "" || strings.HasPrefix(content, "#") {
			continue
		}

		indent := countIndent(line)
		if indent < lastIndent {
			// Dedent: close one section per two spaces
			for i := 0; i < (lastIndent-indent)/2 && len(sections) > 0; i++ {
				sections = sections[:len(sections)-1]
			}
		}
		lastIndent = indent

		// Bare "name:" opens a new section
		if strings.HasSuffix(content, ":") && !strings.Contains(content, ": ") {
			sections = append(sections, strings.TrimSuffix(content, ":"))
			continue
		}

		key, value, ok := strings.Cut(content, ":")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if value == "" {
			continue
		}

		value = substituteEnv(value)

		envKey := strings.ToUpper(key)
		if len(sections) > 0 {
			envKey = strings.ToUpper(strings.Join(append(sections, key), "_"))
		}

		if os.Getenv(envKey) != "" {
			continue
		}
		if err := os.Setenv(envKey, value); err != nil {
			return fmt.Errorf("could not set env var %s: %w", envKey, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading YAML file: %w", err)
	}

	return nil
}

func countIndent(line string) int {
	indent := 0
	for _, ch := range line {
		if ch != ' ' {
			break
		}
		indent++
	}
	return indent
}

// substituteEnv resolves the ${VAR:-default} form: the named environment
// variable if set, the default otherwise. Other values pass through unchanged.
func substituteEnv(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	name, def, ok := strings.Cut(value[2:len(value)-1], ":-")
	if !ok {
		return value
	}

	if env := os.Getenv(strings.TrimSpace(name)); env != "" {
		return env
	}
	return strings.TrimSpace(def)
}
