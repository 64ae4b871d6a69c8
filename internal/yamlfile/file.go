// Package yamlfile reads and writes the YAML documents flashgrid keeps on disk.
package yamlfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

func Read[T any](path string) (T, error) {
	var result T

	file, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&result); err != nil {
		return result, fmt.Errorf("yaml.NewDecoder().Decode(%s) > %w", path, err)
	}
	return result, nil
}

// Write encodes data to path, creating the parent directory if needed.
func Write[T any](path string, data T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("yaml.NewEncoder().Encode(%s) > %w", path, err)
	}
	return encoder.Close()
}

// IsYAML reports whether path has a .yml or .yaml extension.
func IsYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yml" || ext == ".yaml"
}

// LoadDir reads every YAML file directly under dir, keyed by base name
// without the extension. A missing directory yields an empty map.
func LoadDir[T any](dir string) (map[string]T, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return map[string]T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir(%s) > %w", dir, err)
	}

	result := make(map[string]T, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsYAML(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		contents, err := Read[T](path)
		if err != nil {
			return nil, fmt.Errorf("Read(%s) > %w", path, err)
		}
		result[strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))] = contents
	}
	return result, nil
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
