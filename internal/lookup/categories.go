package lookup

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DocumentCategories maps a UI category to the document type codes it groups.
type DocumentCategories map[string][]string

func DefaultDocumentCategories() DocumentCategories {
	return DocumentCategories{
		"PLEADINGS":      {"CNC", "NCL", "RES", "CCL", "PET", "RPT", "ATP"},
		"AFFIDAVITS":     {"AFF", "AFP", "AFS"},
		"APPLICATIONS":   {"NAP", "APR", "APP"},
		"ORDERS":         {"ORD", "CON", "ORE", "DEO"},
		"FINANCIAL":      {"FIN", "FST"},
		"CORRESPONDENCE": {"LET", "COR"},
	}
}

// Classify returns the category holding code, or "" when none does.
func (c DocumentCategories) Classify(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	for category, codes := range c {
		for _, candidate := range codes {
			if strings.EqualFold(candidate, code) {
				return category
			}
		}
	}
	return ""
}

// LoadDocumentCategories reads a YAML file of the form
//
//	ORDERS: [ORD, CON]
//	AFFIDAVITS: [AFF]
func LoadDocumentCategories(path string) (DocumentCategories, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document categories: %w", err)
	}

	var categories DocumentCategories
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to parse document categories: %w", err)
	}

	seen := make(map[string]string)
	for category, codes := range categories {
		for _, code := range codes {
			key := strings.ToUpper(code)
			if other, dup := seen[key]; dup && other != category {
				return nil, fmt.Errorf("document type %q listed under both %s and %s", code, other, category)
			}
			seen[key] = category
		}
	}
	return categories, nil
}
