package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/flowlens/flowlens/internal/flow"
)

// RenderImage renders one parsed flow as a PNG image using graphviz. It walks
// the same projection the text strategies consume, so the image always agrees
// with the text output.
func RenderImage(ctx context.Context, pf *flow.ParsedFlow, opts Options) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: create graphviz: %w", err)
	}
	defer gv.Close()

	gv.SetLayout(graphviz.DOT)

	graph, err := gv.Graph()
	if err != nil {
		return nil, fmt.Errorf("render: create graph: %w", err)
	}
	defer graph.Close()

	graph.SetRankDir(cgraph.TBRank)
	if pf.Label != "" {
		graph.SetLabel(pf.Label)
	}

	gvNodes := make(map[string]*cgraph.Node)
	for _, node := range Project(pf, opts) {
		gvNode, nErr := graph.CreateNodeByName(node.ID)
		if nErr != nil {
			return nil, fmt.Errorf("render: create node %s: %w", node.ID, nErr)
		}
		gvNode.SetLabel(imageLabel(node))
		applyNodeStyle(gvNode, node)
		gvNodes[node.ID] = gvNode
	}

	for _, t := range pf.Transitions {
		fromGV, toGV := gvNodes[t.From], gvNodes[t.To]
		if fromGV == nil || toGV == nil {
			continue
		}
		e, eErr := graph.CreateEdgeByName("", fromGV, toGV)
		if eErr != nil {
			continue
		}
		if t.Label != "" {
			e.SetLabel(t.Label)
		}
		if t.Fault {
			e.SetStyle(cgraph.DashedEdgeStyle)
			e.SetColor(faultEdgeColor)
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: render PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// imageLabel flattens a diagram node and its detail blocks into a multi-line
// graphviz label.
func imageLabel(n DiagramNode) string {
	lines := []string{n.Label, "(" + n.Type + ")"}
	for _, inner := range n.InnerNodes {
		lines = append(lines, "["+inner.Label+"]")
		lines = append(lines, inner.Content...)
	}
	return strings.Join(lines, "\n")
}

// applyNodeStyle sets shape by kind and fill by diff status or kind color.
func applyNodeStyle(gvNode *cgraph.Node, node DiagramNode) {
	switch node.Kind {
	case flow.KindStart:
		gvNode.SetShape(cgraph.CircleShape)
		gvNode.SetWidth(0.5)
		gvNode.SetHeight(0.5)
	case flow.KindDecision:
		gvNode.SetShape(cgraph.DiamondShape)
	case flow.KindLoop:
		gvNode.SetShape(cgraph.HexagonShape)
	case flow.KindWait:
		gvNode.SetShape(cgraph.EllipseShape)
	default:
		gvNode.SetShape(cgraph.BoxShape)
	}

	gvNode.SetStyle(cgraph.FilledNodeStyle)
	gvNode.SetFontColor("white")
	if c, ok := diffColors[node.DiffStatus]; ok {
		gvNode.SetFillColor(c)
		return
	}
	gvNode.SetFillColor(node.Color)
}
