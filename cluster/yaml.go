package cluster

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sizeconstrained/scclust/ids"
	"github.com/sizeconstrained/scclust/scerr"
)

// document is the on-disk shape of an exported Clustering: the label
// vector plus the cluster count it was computed against, so a consumer
// can validate the vector's range without rescanning it.
type document struct {
	NumClusters int         `yaml:"num_clusters"`
	Labels      []ids.Label `yaml:"labels"`
}

// ExportYAML serializes a Clustering to YAML: a num_clusters scalar and
// the flat label vector, in vertex ID order. This is the interchange
// format for a persisted clustering result; there is no binary wire
// format in scope.
func ExportYAML(cl *Clustering) ([]byte, error) {
	doc := document{NumClusters: cl.NumClusters, Labels: cl.Labels}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("cluster: marshal: %w", err)
	}
	return out, nil
}

// ImportYAML parses a document produced by ExportYAML back into a
// Clustering.
//
// Returns ErrInvalidInput if the document is malformed or any label
// falls outside [0, NumClusters) ∪ {Unassigned}.
func ImportYAML(data []byte) (*Clustering, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cluster: unmarshal: %w: %w", err, scerr.ErrInvalidInput)
	}

	for _, l := range doc.Labels {
		if l != ids.Unassigned && (l < 0 || int(l) >= doc.NumClusters) {
			return nil, fmt.Errorf("cluster: label %d out of range [0,%d): %w", l, doc.NumClusters, scerr.ErrInvalidInput)
		}
	}

	return &Clustering{Labels: doc.Labels, NumClusters: doc.NumClusters}, nil
}
