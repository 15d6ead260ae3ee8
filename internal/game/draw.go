package game

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// WeightNode is one entry in a draw distribution: either a leaf carrying a
// card id, or a weighted group whose members are sampled recursively.
type WeightNode struct {
	Value  CardID       `yaml:"id,omitempty"`
	Weight float64      `yaml:"weight"`
	Group  []WeightNode `yaml:"group,omitempty"`
}

// Distributor performs weighted sampling over card identities. The random
// source is injected so draw sequences are reproducible in tests.
type Distributor struct {
	nodes []WeightNode
	rng   *rand.Rand
}

// NewDistributor creates a distributor over the given nodes. A nil rng falls
// back to a time-seeded source.
func NewDistributor(nodes []WeightNode, rng *rand.Rand) *Distributor {
	if len(nodes) == 0 {
		panic("distributor requires at least one weight node")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Distributor{nodes: nodes, rng: rng}
}

// Pick samples one card id from the distribution.
func (d *Distributor) Pick() CardID {
	return d.pickFrom(d.nodes)
}

func (d *Distributor) pickFrom(nodes []WeightNode) CardID {
	sum := 0.0
	for _, node := range nodes {
		sum += node.Weight
	}

	pick := d.rng.Float64() * sum
	acc := 0.0
	for _, node := range nodes {
		acc += node.Weight
		if pick <= acc {
			if len(node.Group) > 0 {
				return d.pickFrom(node.Group)
			}
			return node.Value
		}
	}
	return nodes[0].Value
}

// DefaultWeights derives a draw distribution from the catalog's own
// per-card weights. Cards with zero weight never appear in a draw.
func DefaultWeights(catalog *Catalog) []WeightNode {
	var nodes []WeightNode
	for _, card := range catalog.Cards() {
		if card.DrawWeight <= 0 {
			continue
		}
		nodes = append(nodes, WeightNode{Value: card.ID, Weight: card.DrawWeight})
	}
	return nodes
}

type weightsFile struct {
	Cards []WeightNode `yaml:"cards"`
}

// LoadWeights parses a YAML draw-weight file. Every referenced card id must
// exist in the catalog.
func LoadWeights(path string, catalog *Catalog) ([]WeightNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wf weightsFile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("parse weights YAML: %w", err)
	}
	if len(wf.Cards) == 0 {
		return nil, fmt.Errorf("weights file %s defines no cards", path)
	}
	if err := checkWeights(wf.Cards, catalog); err != nil {
		return nil, err
	}
	return wf.Cards, nil
}

func checkWeights(nodes []WeightNode, catalog *Catalog) error {
	for _, node := range nodes {
		if len(node.Group) > 0 {
			if err := checkWeights(node.Group, catalog); err != nil {
				return err
			}
			continue
		}
		if _, ok := catalog.byID[node.Value]; !ok {
			return fmt.Errorf("weights reference unknown card %q", node.Value)
		}
	}
	return nil
}
