// Package catalog provides loading and lookup of the immutable career catalog.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jonathan/fairpath/internal/schemas"
	"github.com/jonathan/fairpath/internal/types"
)

// Document is the on-disk shape of the processed career catalog.
type Document struct {
	Version string               `json:"version"`
	Careers []types.CareerRecord `json:"careers"`
}

// Catalog is the in-memory career catalog. It is read-only after Load
// and safe for concurrent use.
type Catalog struct {
	version    string
	careers    []types.CareerRecord
	byID       map[string]*types.CareerRecord
	vocabulary []string // canonical skill vocabulary, sorted case-insensitively
}

// Load reads, optionally schema-validates, and indexes a catalog file.
// An empty career list is an EmptyCatalogError: the caller cannot
// operate without a catalog.
func Load(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	// Validate against the catalog schema when it can be located.
	// Schema resolution failure is non-fatal (tests and installed
	// binaries run from different directories); a resolvable schema
	// that rejects the document is fatal.
	if schemaPath := schemas.ResolveSchemaPath("schemas/career_catalog.schema.json"); schemaPath != "" {
		schemaContent, readErr := os.ReadFile(schemaPath)
		if readErr == nil {
			if err := schemas.ValidateJSONString(string(schemaContent), string(content)); err != nil {
				return nil, &LoadError{
					Message: fmt.Sprintf("catalog file %s failed schema validation", path),
					Cause:   err,
				}
			}
		}
	}

	var doc Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal catalog JSON",
			Cause:   err,
		}
	}

	if len(doc.Careers) == 0 {
		return nil, &EmptyCatalogError{Path: path}
	}

	return New(doc.Version, doc.Careers)
}

// New builds a catalog from already-decoded records. Records with a
// duplicate or missing career_id are rejected.
func New(version string, careers []types.CareerRecord) (*Catalog, error) {
	c := &Catalog{
		version: version,
		careers: careers,
		byID:    make(map[string]*types.CareerRecord, len(careers)),
	}

	for i := range c.careers {
		rec := &c.careers[i]
		if rec.CareerID == "" {
			return nil, &LoadError{Message: fmt.Sprintf("career at index %d has no career_id", i)}
		}
		if _, exists := c.byID[rec.CareerID]; exists {
			return nil, &LoadError{Message: fmt.Sprintf("duplicate career_id %s", rec.CareerID)}
		}
		c.byID[rec.CareerID] = rec
	}

	c.vocabulary = buildVocabulary(c.careers)
	return c, nil
}

// buildVocabulary collects the distinct skill names across all careers.
// The result is sorted case-insensitively so the feature ordering is
// stable for the process lifetime regardless of catalog record order.
func buildVocabulary(careers []types.CareerRecord) []string {
	seen := make(map[string]string) // lowercased name -> first display name
	for i := range careers {
		for _, skill := range careers[i].Skills {
			key := strings.ToLower(strings.TrimSpace(skill.Name))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; !ok {
				seen[key] = strings.TrimSpace(skill.Name)
			}
		}
	}

	vocab := make([]string, 0, len(seen))
	for _, display := range seen {
		vocab = append(vocab, display)
	}
	sort.Slice(vocab, func(i, j int) bool {
		return strings.ToLower(vocab[i]) < strings.ToLower(vocab[j])
	})
	return vocab
}

// Version returns the catalog document version.
func (c *Catalog) Version() string { return c.version }

// Len returns the number of careers in the catalog.
func (c *Catalog) Len() int { return len(c.careers) }

// Careers returns all career records in catalog order. Callers must not
// mutate the returned slice.
func (c *Catalog) Careers() []types.CareerRecord { return c.careers }

// ByID looks up a career record by its stable identifier.
func (c *Catalog) ByID(careerID string) (*types.CareerRecord, error) {
	rec, ok := c.byID[careerID]
	if !ok {
		return nil, &NotFoundError{CareerID: careerID}
	}
	return rec, nil
}

// SkillVocabulary returns the catalog-wide skill vocabulary in its
// stable order. Callers must not mutate the returned slice.
func (c *Catalog) SkillVocabulary() []string { return c.vocabulary }
