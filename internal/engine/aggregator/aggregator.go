// Package aggregator walks the dependency closure of a set of root
// targets and merges the synthesized compile commands of every eligible
// target into a single deduplicated collection.
package aggregator

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports"
	"go.trai.ch/compdb/internal/engine/synthesizer"
	"golang.org/x/sync/errgroup"
)

// Aggregator owns the graph-wide aggregation: dependency-closure walk,
// per-target synthesis, and merge of all discovered entries.
type Aggregator struct {
	graph      ports.TargetGraph
	toolchains ports.ToolchainResolver
	synth      *synthesizer.Synthesizer
}

// New creates an Aggregator over the given build-graph and toolchain
// oracles.
func New(graph ports.TargetGraph, toolchains ports.ToolchainResolver) *Aggregator {
	return &Aggregator{
		graph:      graph,
		toolchains: toolchains,
		synth:      synthesizer.New(),
	}
}

// Aggregate visits the dependency closure of roots and returns the
// union of all synthesized entries. Each target is synthesized at most
// once per call even when reachable via multiple paths, so synthesis
// cost is O(targets), not O(paths).
//
// Traversal state is scoped to this call; Aggregate is re-entrant and
// safe to call concurrently on independent root sets. Roots are walked
// concurrently; the per-target cache guarantees exactly one synthesis
// wins and every branch observes the same cached result.
//
// The returned order is stable for a given workspace: entries are
// flattened sorted by target label, each target's entries in file
// enumeration order.
func (a *Aggregator) Aggregate(ctx context.Context, roots []domain.Label) ([]domain.CompileCommand, error) {
	tr := &traversal{
		agg:   a,
		nodes: make(map[domain.Label]*node),
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, root := range roots {
		g.Go(func() error {
			return tr.visit(ctx, root)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return tr.flatten(), nil
}

// node is the compute-once cache slot for one target. The first visitor
// synthesizes and closes done; later visitors wait and reuse.
type node struct {
	done    chan struct{}
	entries []domain.CompileCommand
	deps    []domain.Label
	err     error
}

// traversal is the visited-set and accumulation state of one Aggregate
// call.
type traversal struct {
	agg   *Aggregator
	mu    sync.Mutex
	nodes map[domain.Label]*node
}

func (tr *traversal) visit(ctx context.Context, label domain.Label) error {
	// Targets from another repository contribute nothing and their
	// declared dependencies are not recursed from this visit.
	if label.IsExternal() {
		return nil
	}

	tr.mu.Lock()
	if n, ok := tr.nodes[label]; ok {
		tr.mu.Unlock()
		// Already claimed by another path; wait for its result
		// instead of resynthesizing. Its dependencies are walked by
		// the claiming visitor.
		select {
		case <-n.done:
			return n.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	n := &node{done: make(chan struct{})}
	tr.nodes[label] = n
	tr.mu.Unlock()

	n.entries, n.deps, n.err = tr.expand(label)
	close(n.done)
	if n.err != nil {
		return n.err
	}

	for _, dep := range n.deps {
		if err := tr.visit(ctx, dep); err != nil {
			return err
		}
	}
	return nil
}

// expand synthesizes the local entry list of one target and returns the
// dependencies to recurse into.
func (tr *traversal) expand(label domain.Label) ([]domain.CompileCommand, []domain.Label, error) {
	target, err := tr.agg.graph.Target(label)
	if err != nil {
		return nil, nil, err
	}

	// Unrecognized rule kinds contribute nothing and do not recurse;
	// their dependencies are still reached through any other path.
	if !target.Kind.Recognized() {
		return nil, nil, nil
	}

	// A target without a compilation context yields no entries, but
	// its dependencies are still part of the closure.
	if target.Context == nil {
		return nil, target.Deps, nil
	}

	tc := tr.agg.toolchains.ForTarget(target)
	var entries []domain.CompileCommand
	for _, file := range target.CompilableFiles() {
		if entry, ok := tr.agg.synth.Synthesize(target, file, tc); ok {
			entries = append(entries, entry)
		}
	}
	return entries, target.Deps, nil
}

// flatten merges the per-target entry lists into the output sequence,
// sorted by target label for cross-run determinism.
func (tr *traversal) flatten() []domain.CompileCommand {
	labels := slices.SortedFunc(maps.Keys(tr.nodes), func(a, b domain.Label) int {
		return strings.Compare(a.String(), b.String())
	})

	var out []domain.CompileCommand
	for _, label := range labels {
		out = append(out, tr.nodes[label].entries...)
	}
	return out
}
