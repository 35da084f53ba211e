// Package canon computes relabeling-invariant signatures for k-node
// induced subgraphs via exhaustive permutation search.
package canon

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mgab/motifs/core"
)

// MaxMotifSize is the largest supported subgraph size. The directed bit
// pattern of MaxMotifSize nodes must fit a uint64, and k! permutations must
// stay cheap enough for exhaustive search.
const MaxMotifSize = 8

// Sentinel errors for canonicalization.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("canon: graph is nil")

	// ErrBadSubgraphSize is returned for node tuples smaller than 2.
	ErrBadSubgraphSize = errors.New("canon: subgraph needs at least 2 nodes")

	// ErrTooLarge is returned for node tuples larger than MaxMotifSize.
	ErrTooLarge = errors.New("canon: subgraph exceeds maximum motif size")

	// ErrDuplicateNode is returned when the node tuple repeats an ID.
	ErrDuplicateNode = errors.New("canon: duplicate node in subgraph")
)

// Signature identifies one isomorphism class of connected k-node subgraphs.
// Values are comparable with == and usable as map keys. The zero Signature
// identifies no class.
type Signature struct {
	// K is the motif size (number of nodes).
	K uint8

	// Directed records whether the bit pattern encodes orientation.
	Directed bool

	// Bits is the minimal fixed-order adjacency encoding across all node
	// permutations: row-major upper triangle (undirected) or row-major
	// off-diagonal cells (directed).
	Bits uint64
}

// Canonicalize computes the Signature of the subgraph of g induced by
// nodes. The tuple order is irrelevant; any permutation of an isomorphic
// subgraph yields the same Signature.
func Canonicalize(g core.Graph, nodes []string) (Signature, error) {
	if g == nil {
		return Signature{}, ErrGraphNil
	}
	k := len(nodes)
	if k < 2 {
		return Signature{}, fmt.Errorf("%w: got %d", ErrBadSubgraphSize, k)
	}
	if k > MaxMotifSize {
		return Signature{}, fmt.Errorf("%w: got %d, max %d", ErrTooLarge, k, MaxMotifSize)
	}
	seen := make(map[string]struct{}, k)
	for _, id := range nodes {
		if _, dup := seen[id]; dup {
			return Signature{}, fmt.Errorf("%w: %q", ErrDuplicateNode, id)
		}
		seen[id] = struct{}{}
	}

	// Snapshot the induced adjacency matrix once; the permutation loop
	// then runs on booleans only.
	adj := make([][]bool, k)
	for i := range adj {
		adj[i] = make([]bool, k)
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if i == j {
				continue
			}
			has, err := g.HasEdge(nodes[i], nodes[j])
			if err != nil {
				return Signature{}, fmt.Errorf("canon: edge query %q→%q: %w", nodes[i], nodes[j], err)
			}
			adj[i][j] = has
		}
	}

	return Signature{
		K:        uint8(k),
		Directed: g.Directed(),
		Bits:     minEncoding(adj, g.Directed()),
	}, nil
}

// minEncoding runs Heap's algorithm over all k! permutations and keeps the
// smallest bit pattern.
func minEncoding(adj [][]bool, directed bool) uint64 {
	k := len(adj)
	perm := make([]int, k)
	for i := range perm {
		perm[i] = i
	}

	best := encode(adj, perm, directed)

	// Heap's algorithm, iterative form.
	counters := make([]int, k)
	for i := 0; i < k; {
		if counters[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[counters[i]], perm[i] = perm[i], perm[counters[i]]
			}
			if enc := encode(adj, perm, directed); enc < best {
				best = enc
			}
			counters[i]++
			i = 0
		} else {
			counters[i] = 0
			i++
		}
	}

	return best
}

// encode packs the permuted adjacency matrix into a fixed-order bit
// pattern. Bit positions grow row-major; the first emitted cell is the
// most significant bit, so lexicographic comparison of patterns matches
// integer comparison of encodings.
func encode(adj [][]bool, perm []int, directed bool) uint64 {
	var bits uint64
	k := len(perm)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if directed {
				if i == j {
					continue
				}
			} else if j <= i {
				continue
			}
			bits <<= 1
			if adj[perm[i]][perm[j]] {
				bits |= 1
			}
		}
	}

	return bits
}

// Compare imposes a total order on signatures: by K, then Directed
// (undirected first), then Bits. Returns -1, 0, or +1.
func Compare(a, b Signature) int {
	switch {
	case a.K != b.K:
		if a.K < b.K {
			return -1
		}

		return 1
	case a.Directed != b.Directed:
		if !a.Directed {
			return -1
		}

		return 1
	case a.Bits != b.Bits:
		if a.Bits < b.Bits {
			return -1
		}

		return 1
	default:
		return 0
	}
}

// String renders a compact display form: "u3:0b011" for an undirected
// 3-node class, "d3:..." for a directed one. The bit string has exactly
// as many digits as the encoding has cells.
func (s Signature) String() string {
	prefix := "u"
	if s.Directed {
		prefix = "d"
	}

	return prefix + strconv.Itoa(int(s.K)) + ":0b" +
		zeroPad(strconv.FormatUint(s.Bits, 2), s.cellCount())
}

// EdgeCount returns the number of edges in the class this signature
// identifies.
func (s Signature) EdgeCount() int {
	count := 0
	for bits := s.Bits; bits != 0; bits >>= 1 {
		count += int(bits & 1)
	}

	return count
}

// Representative expands the signature back into a concrete core.AdjGraph
// on nodes "0".."k-1", carrying the canonical edge layout. Useful for
// rendering report classes or seeding pattern searches.
func (s Signature) Representative() *core.AdjGraph {
	k := int(s.K)
	g := core.NewAdjGraph(core.WithDirected(s.Directed))
	for i := 0; i < k; i++ {
		_ = g.AddNode(strconv.Itoa(i)) // IDs are non-empty by construction
	}

	// Walk cells in the same row-major order encode used; the first cell
	// sits at the highest occupied bit position.
	pos := s.cellCount()
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if s.Directed {
				if i == j {
					continue
				}
			} else if j <= i {
				continue
			}
			pos--
			if s.Bits&(uint64(1)<<uint(pos)) != 0 {
				_ = g.AddEdge(strconv.Itoa(i), strconv.Itoa(j)) // distinct i,j; no duplicates by construction
			}
		}
	}

	return g
}

// cellCount returns the number of encoded adjacency cells.
func (s Signature) cellCount() int {
	k := int(s.K)
	if s.Directed {
		return k * (k - 1)
	}

	return k * (k - 1) / 2
}

// zeroPad left-pads a binary string to width digits.
func zeroPad(bin string, width int) string {
	for len(bin) < width {
		bin = "0" + bin
	}

	return bin
}
