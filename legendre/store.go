package legendre

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/katalvlaran/numanalysis/quad"
	"gopkg.in/yaml.v3"
)

// Save writes rule as a flat YAML mapping, one `"root": "weight"` entry per
// node in ascending root order. Numbers use the shortest representation
// that parses back to the same float64.
func Save(w io.Writer, rule quad.Rule) error {
	table := &yaml.Node{Kind: yaml.MappingNode}
	for _, n := range rule.Pairs() {
		table.Content = append(table.Content, scalar(n.X), scalar(n.W))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(table); err != nil {
		return fmt.Errorf("legendre: save: %w", err)
	}
	return enc.Close()
}

func scalar(v float64) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Style: yaml.DoubleQuotedStyle,
		Value: strconv.FormatFloat(v, 'g', -1, 64),
	}
}

// Load reads a table written by Save. Entries may appear in any order;
// the rule is rebuilt in ascending root order.
//
// Errors: ErrMalformedTable for empty input, a non-mapping document,
// unparsable numbers or duplicate roots.
func Load(r io.Reader) (quad.Rule, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return quad.Rule{}, fmt.Errorf("%w: empty input", ErrMalformedTable)
		}
		return quad.Rule{}, fmt.Errorf("%w: %w", ErrMalformedTable, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return quad.Rule{}, fmt.Errorf("%w: expected a root: weight mapping", ErrMalformedTable)
	}

	content := doc.Content[0].Content
	pairs := make([]quad.Node, 0, len(content)/2)
	for i := 0; i+1 < len(content); i += 2 {
		k, v := content[i], content[i+1]
		x, err := strconv.ParseFloat(k.Value, 64)
		if err != nil {
			return quad.Rule{}, fmt.Errorf("%w: line %d: root %q: %w", ErrMalformedTable, k.Line, k.Value, err)
		}
		w, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return quad.Rule{}, fmt.Errorf("%w: line %d: weight %q: %w", ErrMalformedTable, v.Line, v.Value, err)
		}
		pairs = append(pairs, quad.Node{X: x, W: w})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].X < pairs[j].X })

	nodes := make([]float64, len(pairs))
	weights := make([]float64, len(pairs))
	for i, p := range pairs {
		nodes[i], weights[i] = p.X, p.W
	}
	rule, err := quad.NewRule(nodes, weights)
	if err != nil {
		return quad.Rule{}, fmt.Errorf("%w: %w", ErrMalformedTable, err)
	}

	return rule, nil
}

// SaveFile writes rule to path, truncating any existing file.
func SaveFile(path string, rule quad.Rule) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("legendre: save %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	return Save(f, rule)
}

// LoadFile reads a table from path.
func LoadFile(path string) (quad.Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return quad.Rule{}, fmt.Errorf("legendre: load %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// FromRule wraps a persisted rule back into a Legendre value; the degree is
// the node count and the polynomial is rebuilt by recurrence. Roots and
// weights are taken as stored.
func FromRule(rule quad.Rule) (*Legendre, error) {
	n := rule.Len()
	if n < MinDegree {
		return nil, fmt.Errorf("legendre: rule with %d nodes: %w", n, ErrInvalidDegree)
	}

	return &Legendre{
		degree:  n,
		poly:    Polynomial(n),
		roots:   rule.Nodes(),
		weights: rule.Weights(),
		rule:    rule,
	}, nil
}
