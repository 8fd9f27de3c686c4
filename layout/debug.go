package layout

import (
	"encoding/json"
	"os"
)

// NodeInfo is a JSON-friendly snapshot of a measured node, used for
// layout debugging and visualization.
type NodeInfo struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
	Box
	Children []*NodeInfo `json:"children,omitempty"`
}

// Snapshot captures the geometry of the subtree rooted at n. Call it
// after Measure; before that the boxes are zero.
func Snapshot(n Node) *NodeInfo {
	if n == nil {
		return nil
	}
	info := &NodeInfo{Box: n.Bounds()}
	switch v := n.(type) {
	case *Sequence:
		info.Kind = "sequence"
		for _, c := range v.Children {
			info.Children = append(info.Children, Snapshot(c))
		}
	case *Text:
		info.Kind = "text"
		info.Text = v.Content
	case *Fraction:
		info.Kind = "fraction"
		info.Children = append(info.Children, Snapshot(v.Num), Snapshot(v.Den))
	case *Script:
		info.Kind = "script"
		info.Children = append(info.Children, Snapshot(v.Base))
		if v.Super != nil {
			info.Children = append(info.Children, Snapshot(v.Super))
		}
		if v.Sub != nil {
			info.Children = append(info.Children, Snapshot(v.Sub))
		}
	case *BigOperator:
		info.Kind = "operator"
		info.Text = v.Symbol
		if v.Upper != nil {
			info.Children = append(info.Children, Snapshot(v.Upper))
		}
		if v.Lower != nil {
			info.Children = append(info.Children, Snapshot(v.Lower))
		}
	case *Integral:
		info.Kind = "integral"
		if v.Upper != nil {
			info.Children = append(info.Children, Snapshot(v.Upper))
		}
		if v.Lower != nil {
			info.Children = append(info.Children, Snapshot(v.Lower))
		}
	case *Radical:
		info.Kind = "radical"
		if v.Index != nil {
			info.Children = append(info.Children, Snapshot(v.Index))
		}
		info.Children = append(info.Children, Snapshot(v.Radicand))
	case *Fence:
		info.Kind = "fence"
		info.Text = v.Left + v.Right
		info.Children = append(info.Children, Snapshot(v.Content))
	default:
		info.Kind = "unknown"
	}
	return info
}

// WriteDebugJSON dumps the measured tree as indented JSON.
func WriteDebugJSON(root Node, path string) error {
	if root == nil {
		return nil
	}
	data, err := json.MarshalIndent(Snapshot(root), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
