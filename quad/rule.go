package quad

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/zeebo/blake3"
)

// Node is one (root, weight) pair of a quadrature rule on [-1, 1].
type Node struct {
	X float64 // abscissa in [-1, 1]
	W float64 // weight
}

// Rule is an immutable quadrature rule: strictly ascending nodes on
// [-1, 1] with one weight each. The zero value is an empty rule.
type Rule struct {
	nodes   []float64
	weights []float64
}

// NewRule validates and copies nodes and weights into a Rule.
//
// Errors:
//   - ErrEmptyRule when no node is given.
//   - ErrLengthMismatch when len(nodes) != len(weights).
//   - ErrUnorderedNodes when nodes are not strictly ascending.
func NewRule(nodes, weights []float64) (Rule, error) {
	if len(nodes) == 0 {
		return Rule{}, ErrEmptyRule
	}
	if len(nodes) != len(weights) {
		return Rule{}, fmt.Errorf("%d nodes, %d weights: %w", len(nodes), len(weights), ErrLengthMismatch)
	}
	for i := 1; i < len(nodes); i++ {
		if !(nodes[i-1] < nodes[i]) {
			return Rule{}, fmt.Errorf("x[%d]=%g, x[%d]=%g: %w", i-1, nodes[i-1], i, nodes[i], ErrUnorderedNodes)
		}
	}

	return Rule{
		nodes:   append([]float64(nil), nodes...),
		weights: append([]float64(nil), weights...),
	}, nil
}

// Len returns the number of nodes.
func (r Rule) Len() int { return len(r.nodes) }

// Nodes returns a copy of the ascending nodes.
func (r Rule) Nodes() []float64 { return append([]float64(nil), r.nodes...) }

// Weights returns a copy of the weights, aligned with Nodes.
func (r Rule) Weights() []float64 { return append([]float64(nil), r.weights...) }

// Pairs returns the rule as ordered (node, weight) pairs.
func (r Rule) Pairs() []Node {
	out := make([]Node, len(r.nodes))
	for i := range r.nodes {
		out[i] = Node{X: r.nodes[i], W: r.weights[i]}
	}

	return out
}

// WeightSum returns Σ wᵢ; for a rule on [-1, 1] this approximates 2.
func (r Rule) WeightSum() float64 {
	s := 0.0
	for _, w := range r.weights {
		s += w
	}

	return s
}

// Fingerprint returns the hex BLAKE3 digest of the rule's length and the
// IEEE-754 bit patterns of every node and weight. Equal fingerprints mean
// bit-for-bit identical rules.
func (r Rule) Fingerprint() string {
	h := blake3.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(len(r.nodes)))
	_, _ = h.Write(buf[:])
	for i := range r.nodes {
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(r.nodes[i]))
		_, _ = h.Write(buf[:])
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(r.weights[i]))
		_, _ = h.Write(buf[:])
	}

	return hex.EncodeToString(h.Sum(nil))
}
