package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kazuma-desu/drop/pkg/models"
)

// Node is one collection in the rendered forest.
type Node struct {
	ID       int64          `json:"_id"`
	Title    string         `json:"title"`
	Count    int64          `json:"count"`
	Children []*Node        `json:"children,omitempty"`
	Record   map[string]any `json:"-"`
}

// Row is one line of the rendered tree: the original record's id, the
// tree-decorated label, and the collection's bookmark count.
type Row struct {
	ID    int64
	Label string
	Count int64
}

const folderIcon = "📂"

// BuildTree links two flat record lists into a forest. Records are
// merged into one id-keyed set (deduplicating records present in both
// lists), linked to their parent via the parent.id reference, and
// sorted by title at every level including the roots. A record whose
// parent id is missing from the set is promoted to a root, never
// dropped.
func BuildTree(roots, children []map[string]any) []*Node {
	byID := make(map[int64]*Node)
	var order []*Node

	add := func(record map[string]any) {
		node := &Node{Record: record, Count: recordCount(record)}
		if title, ok := Resolve(record, "title"); ok {
			node.Title = models.FormatValue(title)
		}
		id, ok := recordIDInt(record)
		if ok {
			if _, seen := byID[id]; seen {
				return
			}
			node.ID = id
			byID[id] = node
		}
		order = append(order, node)
	}

	for _, record := range roots {
		add(record)
	}
	for _, record := range children {
		add(record)
	}

	var forest []*Node
	for _, node := range order {
		if parentID, ok := resolveInt(node.Record, "parent.id"); ok {
			if parent := byID[parentID]; parent != nil && parent != node {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		// No parent reference, or the parent id is dangling: promote.
		forest = append(forest, node)
	}

	// Cyclic parent references link to each other without ever
	// reaching a root. Break each cycle at its first record in input
	// order and promote that node so no record is lost.
	reached := make(map[*Node]bool)
	var mark func(*Node)
	mark = func(n *Node) {
		if reached[n] {
			return
		}
		reached[n] = true
		for _, child := range n.Children {
			mark(child)
		}
	}
	for _, node := range forest {
		mark(node)
	}
	for _, node := range order {
		if reached[node] {
			continue
		}
		if parentID, ok := resolveInt(node.Record, "parent.id"); ok {
			if parent := byID[parentID]; parent != nil {
				parent.Children = removeChild(parent.Children, node)
			}
		}
		forest = append(forest, node)
		mark(node)
	}

	sortForest(forest)
	return forest
}

func removeChild(children []*Node, node *Node) []*Node {
	for i, child := range children {
		if child == node {
			return append(children[:i], children[i+1:]...)
		}
	}
	return children
}

// RenderTree walks a forest depth-first and emits one row per node.
// Roots carry no branch prefix; descendants get box-drawing branches
// with continuation bars for every ancestor that has later siblings.
func RenderTree(forest []*Node) []Row {
	var rows []Row
	for _, root := range forest {
		rows = append(rows, rowFor(root, ""))
		renderChildren(root, "", &rows)
	}
	return rows
}

// RenderTreeRows writes the plain-format tree view: one line per row,
// the decorated label followed by the dimmed bookmark count. The whole
// view is composed first and written once.
func RenderTreeRows(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		_, err := io.WriteString(w, mutedStyle.Render("No collections found.")+"\n")
		return err
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row.Label)
		b.WriteByte(' ')
		b.WriteString(mutedStyle.Render(fmt.Sprintf("(%d)", row.Count)))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func renderChildren(n *Node, prefix string, rows *[]Row) {
	for i, child := range n.Children {
		branch, continuation := "├── ", "│   "
		if i == len(n.Children)-1 {
			branch, continuation = "└── ", "    "
		}
		*rows = append(*rows, rowFor(child, prefix+branch))
		renderChildren(child, prefix+continuation, rows)
	}
}

func rowFor(n *Node, prefix string) Row {
	return Row{
		ID:    n.ID,
		Label: prefix + folderIcon + " " + n.Title,
		Count: n.Count,
	}
}

func sortForest(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := strings.ToLower(nodes[i].Title), strings.ToLower(nodes[j].Title)
		if a != b {
			return a < b
		}
		return nodes[i].Title < nodes[j].Title
	})
	for _, n := range nodes {
		sortForest(n.Children)
	}
}

func recordCount(record map[string]any) int64 {
	if n, ok := resolveInt(record, "count"); ok {
		return n
	}
	return 0
}

func recordIDInt(record map[string]any) (int64, bool) {
	if n, ok := resolveInt(record, "_id"); ok {
		return n, true
	}
	return resolveInt(record, "id")
}

func resolveInt(record map[string]any, path string) (int64, bool) {
	val, ok := Resolve(record, path)
	if !ok {
		return 0, false
	}
	return models.AsInt64(val)
}
