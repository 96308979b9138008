// Package bfs provides breadth-first search over a core.Graph.
//
// It is reused by schemes.SCCScheme's edge-add handler (spec.md §4.H) to
// answer the reachability question a collapsing edge poses: after adding
// u->v, does v already reach u at the upper level? If so every supernode on
// that cycle must merge into one ComponentSet.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/marco-caputo/multilevel-graphs/core"
)

// ErrGraphNil is returned when BFS is called with a nil graph.
var ErrGraphNil = errors.New("bfs: graph is nil")

// ErrStartVertexNotFound is returned when the start ID is absent from g.
var ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

// Option configures a BFS run.
type Option func(*options)

type options struct {
	ctx     context.Context
	onVisit func(id string, depth int) error
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets a context for cancellation; a nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook; returning an error aborts the search.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *options) { o.onVisit = fn }
}

// Result holds the outcome of a BFS traversal from a single start vertex.
type Result struct {
	// Order lists vertices in visit order.
	Order []string

	// Depth maps a vertex ID to its distance (in edges) from the start.
	Depth map[string]int

	// Parent maps a vertex ID to its predecessor in the BFS tree.
	Parent map[string]string
}

// Reaches reports whether target was visited during the traversal.
func (r *Result) Reaches(target string) bool {
	_, ok := r.Depth[target]

	return ok
}

// BFS explores g breadth-first from startID.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result{
		Order:  make([]string, 0, g.VertexCount()),
		Depth:  map[string]int{startID: 0},
		Parent: make(map[string]string),
	}
	queue := []string{startID}

	for len(queue) > 0 {
		select {
		case <-o.ctx.Done():
			return res, o.ctx.Err()
		default:
		}

		id := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, id)
		if o.onVisit != nil {
			if err := o.onVisit(id, res.Depth[id]); err != nil {
				return res, fmt.Errorf("bfs: OnVisit(%q): %w", id, err)
			}
		}

		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return res, fmt.Errorf("bfs: NeighborIDs(%q): %w", id, err)
		}
		for _, nbr := range nbrs {
			if _, seen := res.Depth[nbr]; seen {
				continue
			}
			res.Depth[nbr] = res.Depth[id] + 1
			res.Parent[nbr] = id
			queue = append(queue, nbr)
		}
	}

	return res, nil
}

// Reachable is a convenience wrapper returning whether target is reachable
// from startID in g.
func Reachable(g *core.Graph, startID, target string) (bool, error) {
	if startID == target {
		return true, nil
	}
	res, err := BFS(g, startID)
	if err != nil {
		return false, err
	}

	return res.Reaches(target), nil
}
