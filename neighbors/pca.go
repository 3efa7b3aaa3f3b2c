package neighbors

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// reduce projects the cells x genes observation matrix onto its first dims
// principal components. dims is clamped to what the data can support; the
// returned matrix is cells x effectiveDims.
func reduce(obs *mat.Dense, dims int) (*mat.Dense, int, error) {
	cells, genes := obs.Dims()

	maxDims := min(cells, genes)
	if dims > maxDims {
		dims = maxDims
	}
	if dims <= 0 {
		return nil, 0, fmt.Errorf("pca: no usable dimensions for %d cells x %d genes", cells, genes)
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(obs, nil); !ok {
		return nil, 0, fmt.Errorf("pca: decomposition failed for %d cells x %d genes", cells, genes)
	}

	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	var proj mat.Dense
	proj.Mul(obs, vecs.Slice(0, genes, 0, dims))
	return &proj, dims, nil
}
