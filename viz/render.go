package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rsolonenko/graphkit/core"
	"github.com/rsolonenko/graphkit/shortest"
	"github.com/rsolonenko/graphkit/traverse"
)

// Renderer turns graphs and algorithm results into terminal text using
// one Theme. The zero value is not usable; construct with New.
type Renderer struct {
	th Theme
}

// New returns a Renderer styled by th.
func New(th Theme) *Renderer { return &Renderer{th: th} }

// Summary renders the graph head-line (flags and counts) followed by one
// adjacency line per vertex, neighbors sorted by ID. Weights appear only
// on weighted graphs.
func (r *Renderer) Summary(g core.Store) string {
	if g == nil {
		return r.th.Warn.Render("(nil graph)") + "\n"
	}
	var b strings.Builder
	b.WriteString(r.th.Title.Render(fmt.Sprintf(
		"graph: directed=%t weighted=%t vertices=%d edges=%d",
		g.Directed(), g.Weighted(), g.VertexCount(), g.EdgeCount())))
	b.WriteByte('\n')
	for _, v := range g.Vertices() {
		nbs := g.Neighbors(v)
		sort.Slice(nbs, func(i, j int) bool { return nbs[i].ID < nbs[j].ID })
		parts := make([]string, 0, len(nbs))
		for _, nb := range nbs {
			if g.Weighted() {
				parts = append(parts, r.th.Value.Render(nb.ID)+r.th.Muted.Render(fmt.Sprintf("(%d)", nb.Weight)))
			} else {
				parts = append(parts, r.th.Value.Render(nb.ID))
			}
		}
		b.WriteString(fmt.Sprintf("  %s: %s\n", r.th.Label.Render(v), strings.Join(parts, " ")))
	}
	return b.String()
}

// TraversalSteps renders a visit order as numbered steps with the depth
// and discovering parent of each vertex.
func (r *Renderer) TraversalSteps(res *traverse.Result) string {
	if res == nil || len(res.Order) == 0 {
		return r.th.Warn.Render("(no vertices visited)") + "\n"
	}
	var b strings.Builder
	for i, v := range res.Order {
		line := fmt.Sprintf("%2d. %s  depth=%d", i+1, r.th.Value.Render(v), res.Depth[v])
		if p, ok := res.Parent[v]; ok {
			line += r.th.Muted.Render(fmt.Sprintf("  via %s", p))
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// DistanceTable renders a shortest-path tree as one row per vertex,
// sorted by ID: distance from the source and the predecessor on the
// shortest path. Unreached vertices show an unreachable marker.
func (r *Renderer) DistanceTable(t *shortest.Tree) string {
	if t == nil {
		return r.th.Warn.Render("(no tree)") + "\n"
	}
	ids := make([]string, 0, len(t.Dist))
	for v := range t.Dist {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString(r.th.Title.Render(fmt.Sprintf("shortest paths from %s", t.Source)))
	b.WriteByte('\n')
	b.WriteString(r.th.Label.Render(fmt.Sprintf("  %-8s %-12s %s", "vertex", "distance", "via")))
	b.WriteByte('\n')
	for _, v := range ids {
		d := t.Dist[v]
		if d == shortest.Unreachable {
			b.WriteString(fmt.Sprintf("  %-8s %s\n", r.th.Value.Render(v), r.th.Warn.Render("unreachable")))
			continue
		}
		via := "-"
		if p, ok := t.Prev[v]; ok {
			via = p
		}
		b.WriteString(fmt.Sprintf("  %-8s %-12d %s\n", r.th.Value.Render(v), d, r.th.Muted.Render(via)))
	}
	return b.String()
}

// PathBreakdown renders a path hop by hop with per-edge weights looked
// up in g, ending with the total. An empty path renders a no-path notice.
func (r *Renderer) PathBreakdown(g core.Store, path []string) string {
	if len(path) == 0 {
		return r.th.Warn.Render("(no path)") + "\n"
	}
	var b strings.Builder
	var total int64
	b.WriteString(r.th.Value.Render(path[0]))
	for i := 1; i < len(path); i++ {
		w, ok := g.EdgeWeight(path[i-1], path[i])
		if !ok {
			b.WriteString(r.th.Warn.Render(" ?> "))
		} else {
			total += w
			b.WriteString(r.th.Arrow.Render(" -") + r.th.Muted.Render(fmt.Sprintf("(%d)", w)) + r.th.Arrow.Render("-> "))
		}
		b.WriteString(r.th.Value.Render(path[i]))
	}
	b.WriteString(r.th.Muted.Render(fmt.Sprintf("  total=%d", total)))
	b.WriteByte('\n')
	return b.String()
}
