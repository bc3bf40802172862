// File: pkg/combine/tree.go
package combine

import (
	"sort"
	"strings"
)

type treeNode struct {
	name     string
	isDir    bool
	children map[string]*treeNode
}

// GenerateTree renders the given slash-separated, root-relative file paths as
// a tree headed by the root.
func GenerateTree(root string, paths []string) string {
	top := &treeNode{isDir: true, children: map[string]*treeNode{}}
	for _, p := range paths {
		node := top
		parts := strings.Split(p, "/")
		for i, part := range parts {
			child, ok := node.children[part]
			if !ok {
				child = &treeNode{name: part, isDir: i < len(parts)-1, children: map[string]*treeNode{}}
				node.children[part] = child
			}
			node = child
		}
	}

	var treeBuilder strings.Builder
	treeBuilder.WriteString(strings.TrimSuffix(root, "/") + "/\n")
	writeTreeRecursively(&treeBuilder, top, "")
	return treeBuilder.String()
}

// writeTreeRecursively writes directories first, then files, alphabetically.
func writeTreeRecursively(b *strings.Builder, node *treeNode, prefix string) {
	entries := make([]*treeNode, 0, len(node.children))
	for _, child := range node.children {
		entries = append(entries, child)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].isDir != entries[j].isDir {
			return entries[i].isDir
		}
		return strings.ToLower(entries[i].name) < strings.ToLower(entries[j].name)
	})

	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		b.WriteString(prefix + connector + entry.name)
		if entry.isDir {
			b.WriteString("/\n")
			writeTreeRecursively(b, entry, prefix+extension)
			continue
		}
		b.WriteString("\n")
	}
}
