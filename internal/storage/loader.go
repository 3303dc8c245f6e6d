package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/domain"
	"github.com/denisok6893-rgb/ai-phone-comparison/internal/validation"
)

// RecordError lists the schema violations of one catalog record.
type RecordError struct {
	Index  int
	ID     string
	Errors []string
}

// CatalogError is returned when one or more catalog records fail validation.
type CatalogError struct {
	Path    string
	Records []RecordError
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog %s: %d invalid record(s)", e.Path, len(e.Records))
}

// LoadPhonesFromFile reads a phone catalog (a JSON or YAML list of phones),
// validates every record and returns the decoded phones.
func LoadPhonesFromFile(path string) ([]domain.Phone, error) {
	docs, err := readCatalog(path)
	if err != nil {
		return nil, err
	}

	var invalid []RecordError
	for i, doc := range docs {
		if errs := validation.ValidatePhone(doc); len(errs) > 0 {
			invalid = append(invalid, RecordError{Index: i, ID: recordID(doc), Errors: errs})
		}
	}
	if len(invalid) > 0 {
		return nil, &CatalogError{Path: path, Records: invalid}
	}

	// Round-trip through JSON so YAML catalogs decode with the same tags.
	b, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	var phones []domain.Phone
	if err := json.Unmarshal(b, &phones); err != nil {
		return nil, fmt.Errorf("unmarshal phones: %w", err)
	}
	return phones, nil
}

func readCatalog(path string) ([]any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var docs []any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &docs); err != nil {
			return nil, fmt.Errorf("unmarshal yaml catalog: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.UseNumber()
		if err := dec.Decode(&docs); err != nil {
			return nil, fmt.Errorf("unmarshal json catalog: %w", err)
		}
	}
	return docs, nil
}

func recordID(doc any) string {
	if m, ok := doc.(map[string]any); ok {
		if id, ok := m["id"].(string); ok {
			return id
		}
	}
	return ""
}
