package formatter

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/xlab/treeprint"
	"gopkg.in/yaml.v3"
)

// defaultMaxArrayInline is the max number of scalar elements shown inline.
const defaultMaxArrayInline = 3

// TreeOptions controls tree output formatting.
type TreeOptions struct {
	// NoValues hides values at leaf nodes (structure only).
	NoValues bool
	// MaxDepth limits tree depth (0 = unlimited).
	MaxDepth int
	// ExpandArrays shows every scalar array element on its own line.
	ExpandArrays bool
	// MaxArrayInline is max items to show inline for scalar arrays (default 3).
	MaxArrayInline int
	// MaxStringLen is the display width at which values are truncated.
	// 0 or negative = no truncation.
	MaxStringLen int
	// ArrayStyle controls how array indices are displayed:
	// "index" = [0], [1]; "numbered" = 1, 2; "bullet" = •; "none" = skip index.
	ArrayStyle string
	// Color renders keys and values with terminal colors.
	Color bool
}

// ValidArrayStyles contains all valid array style values.
var ValidArrayStyles = []string{"index", "numbered", "bullet", "none"}

// ValidateArrayStyle returns an error if the style is invalid.
func ValidateArrayStyle(style string) error {
	if style == "" {
		return nil
	}
	for _, valid := range ValidArrayStyles {
		if style == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid array-style %q: valid values are index, numbered, bullet, none", style)
}

// FormatArrayIndex formats an array index based on style.
func FormatArrayIndex(i int, style string) string {
	switch style {
	case "numbered":
		return fmt.Sprintf("%d", i+1)
	case "bullet":
		return "•"
	case "none":
		return ""
	default:
		return fmt.Sprintf("[%d]", i)
	}
}

// FormatAsTree renders v as an ASCII tree. Mapping keys keep the order they
// have in v: struct field order for structs, sorted order for Go maps.
func FormatAsTree(v interface{}, opts TreeOptions) (string, error) {
	if err := ValidateArrayStyle(opts.ArrayStyle); err != nil {
		return "", err
	}
	if opts.MaxArrayInline == 0 {
		opts.MaxArrayInline = defaultMaxArrayInline
	}

	var doc yaml.Node
	if err := doc.Encode(v); err != nil {
		return "", fmt.Errorf("build tree: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}

	tb := treeBuilder{opts: opts, pal: palette{enabled: opts.Color}}
	tree := treeprint.New()
	tb.children(tree, root, 0)
	return tree.String(), nil
}

type treeBuilder struct {
	opts TreeOptions
	pal  palette
}

func (b treeBuilder) children(branch treeprint.Tree, n *yaml.Node, depth int) {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			b.add(branch, n.Content[i].Value, n.Content[i+1], depth)
		}
	case yaml.SequenceNode:
		for i, c := range n.Content {
			b.add(branch, FormatArrayIndex(i, b.opts.ArrayStyle), c, depth)
		}
	case yaml.AliasNode:
		if n.Alias != nil {
			b.children(branch, n.Alias, depth)
		}
	default:
		branch.AddNode(b.scalar(n))
	}
}

func (b treeBuilder) add(branch treeprint.Tree, key string, n *yaml.Node, depth int) {
	if b.opts.MaxDepth > 0 && depth >= b.opts.MaxDepth {
		branch.AddNode(b.keyValue(key, "..."))
		return
	}
	switch n.Kind {
	case yaml.MappingNode:
		if len(n.Content) == 0 {
			b.leaf(branch, key, "{}")
			return
		}
		b.children(branch.AddBranch(b.keyOnly(key)), n, depth+1)
	case yaml.SequenceNode:
		b.sequence(branch, key, n, depth)
	case yaml.AliasNode:
		if n.Alias != nil {
			b.add(branch, key, n.Alias, depth)
		}
	default:
		b.leaf(branch, key, b.scalar(n))
	}
}

func (b treeBuilder) sequence(branch treeprint.Tree, key string, n *yaml.Node, depth int) {
	switch {
	case len(n.Content) == 0:
		b.leaf(branch, key, "[]")
	case !b.opts.ExpandArrays && isScalarSeq(n) && len(n.Content) <= b.opts.MaxArrayInline:
		parts := make([]string, len(n.Content))
		for i, c := range n.Content {
			parts[i] = c.Value
		}
		b.leaf(branch, key, "["+strings.Join(parts, ", ")+"]")
	case !b.opts.ExpandArrays && isScalarSeq(n):
		b.leaf(branch, key, fmt.Sprintf("[%d items]", len(n.Content)))
	default:
		b.children(branch.AddBranch(b.keyOnly(key)), n, depth+1)
	}
}

func (b treeBuilder) leaf(branch treeprint.Tree, key, value string) {
	if b.opts.NoValues {
		branch.AddNode(b.keyOnly(key))
		return
	}
	branch.AddNode(b.keyValue(key, value))
}

func (b treeBuilder) keyValue(key, value string) string {
	if key == "" {
		return b.pal.value(value)
	}
	return b.pal.key(key) + ": " + b.pal.value(value)
}

func (b treeBuilder) keyOnly(key string) string {
	if key == "" {
		return "(item)"
	}
	return b.pal.key(key)
}

func (b treeBuilder) scalar(n *yaml.Node) string {
	s := n.Value
	if n.Tag == "!!null" {
		s = "null"
	}
	s = strings.ReplaceAll(s, "\n", "\\n")
	if b.opts.MaxStringLen > 0 && runewidth.StringWidth(s) > b.opts.MaxStringLen {
		if b.opts.MaxStringLen <= 3 {
			return "..."
		}
		return runewidth.Truncate(s, b.opts.MaxStringLen, "...")
	}
	return s
}

func isScalarSeq(n *yaml.Node) bool {
	for _, c := range n.Content {
		if c.Kind != yaml.ScalarNode {
			return false
		}
	}
	return true
}
