package catalog

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/domain"
	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Document is the deterministic, serializable form of a catalog.
type Document struct {
	Workflows []domain.WorkflowEntry `json:"workflows" yaml:"workflows"`
	Scenarios []domain.Scenario      `json:"scenarios" yaml:"scenarios"`
	Steps     []string               `json:"steps" yaml:"steps"`
	Numbers   []domain.UpgradeNumber `json:"numbers" yaml:"numbers"`
	Skip      int                    `json:"skip" yaml:"skip"`
	Reserved  []Range                `json:"reserved" yaml:"reserved"`
	Fragments []domain.Fragment      `json:"fragments" yaml:"fragments"`
	Upgrade   []domain.WorkflowEntry `json:"upgrade,omitempty" yaml:"upgrade,omitempty"`
}

// Export flattens the catalog. With expanded set, the generated upgrade workflows are
// included as well.
func Export(c *Catalog, expanded bool) Document {
	doc := Document{
		Workflows: c.Workflows.Entries(),
		Steps:     append([]string(nil), c.Steps...),
		Numbers:   c.UpgradeNumbers(),
		Skip:      c.Numbering.Skip,
		Reserved:  append([]Range(nil), c.Numbering.Reserved...),
		Fragments: c.Fragments(),
	}
	for _, year := range c.Years() {
		doc.Scenarios = append(doc.Scenarios, c.Scenarios(year)...)
	}
	if expanded {
		doc.Upgrade = c.ExpandUpgrade().Entries()
	}
	return doc
}

// Fingerprint is the hex BLAKE2b-256 digest of the JSON export without expansion.
// Any change to the tables, including key order, changes it.
func Fingerprint(c *Catalog) (string, error) {
	b, err := json.Marshal(Export(c, false))
	if err != nil {
		return "", fmt.Errorf("marshal catalog: %w", err)
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// Write renders a document to w in the requested format.
func Write(w io.Writer, doc Document, format string) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}
