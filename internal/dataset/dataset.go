// Package dataset loads the aggregate statistics document that backs the
// dashboard. The document ships embedded; deployments can point at a file
// or an HTTP endpoint instead.
package dataset

import (
	_ "embed"
	"fmt"
	"os"

	"api/internal/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

// CategoryEntry is one category row of the dataset document.
type CategoryEntry struct {
	Key       models.CategoryKey `yaml:"key"`
	Label     string             `yaml:"label"`
	Count     int64              `yaml:"count"`
	WordCount int64              `yaml:"word_count"`
}

// ActCategoryEntry is one acts-by-category row.
type ActCategoryEntry struct {
	Category string `yaml:"category"`
	Count    int64  `yaml:"count"`
}

// BucketEntry is one word-count-range row.
type BucketEntry struct {
	Range    string `yaml:"range"`
	NumFiles int64  `yaml:"num_files"`
}

// Document is the full aggregate dataset.
type Document struct {
	Categories       []CategoryEntry    `yaml:"categories"`
	ActCategories    []ActCategoryEntry `yaml:"act_categories"`
	WordCountBuckets []BucketEntry      `yaml:"word_count_buckets"`
}

// Load resolves the dataset from the configured source. Precedence:
// remote URL, then file path, then the embedded default.
func Load(config models.DatasetConfiguration) (*Document, error) {
	raw := defaultDocument
	source := "embedded"

	switch {
	case config.URL != "":
		resp, err := resty.New().R().Get(config.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch dataset from %s: %w", config.URL, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("dataset endpoint %s returned %s", config.URL, resp.Status())
		}
		raw = resp.Body()
		source = config.URL
	case config.Path != "":
		data, err := os.ReadFile(config.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset file: %w", err)
		}
		raw = data
		source = config.Path
	}

	doc, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	zap.L().Info("Loaded dataset",
		zap.String("source", source),
		zap.Int("categories", len(doc.Categories)),
		zap.Int("act_categories", len(doc.ActCategories)),
		zap.Int("word_count_buckets", len(doc.WordCountBuckets)))

	return doc, nil
}

// Parse unmarshals and validates a dataset document.
func Parse(raw []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate enforces the input contract: categories present and unique,
// counts non-negative, and no category claiming words without documents.
func (d *Document) Validate() error {
	if len(d.Categories) == 0 {
		return fmt.Errorf("dataset has no categories")
	}

	seen := make(map[models.CategoryKey]bool, len(d.Categories))
	for _, c := range d.Categories {
		if c.Key == "" {
			return fmt.Errorf("category with empty key")
		}
		if seen[c.Key] {
			return fmt.Errorf("duplicate category %q", c.Key)
		}
		seen[c.Key] = true

		if c.Count < 0 || c.WordCount < 0 {
			return fmt.Errorf("category %q has negative counts", c.Key)
		}
		if c.Count == 0 && c.WordCount > 0 {
			return fmt.Errorf("category %q has words but no documents", c.Key)
		}
	}

	for _, a := range d.ActCategories {
		if a.Category == "" {
			return fmt.Errorf("act category with empty name")
		}
		if a.Count < 0 {
			return fmt.Errorf("act category %q has a negative count", a.Category)
		}
	}

	for _, b := range d.WordCountBuckets {
		if b.Range == "" {
			return fmt.Errorf("word count bucket with empty range")
		}
		if b.NumFiles < 0 {
			return fmt.Errorf("word count bucket %q has a negative file count", b.Range)
		}
	}

	return nil
}
