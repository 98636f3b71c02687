package output

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// statusColumn is where status words start.
	statusColumn = 32
)

// changeMarkers prefix a file by what happened to it.
var changeMarkers = map[string]string{
	StatusWritten:     "+",
	StatusRemoved:     "-",
	StatusOverwritten: "~",
}

// changeDir is one directory level of the change tree.
type changeDir struct {
	dirs  map[string]*changeDir
	files map[string]string
}

func (d *changeDir) add(parts []string, status string) {
	if len(parts) == 1 {
		if d.files == nil {
			d.files = make(map[string]string)
		}
		d.files[parts[0]] = status
		return
	}
	if d.dirs == nil {
		d.dirs = make(map[string]*changeDir)
	}
	child, ok := d.dirs[parts[0]]
	if !ok {
		child = &changeDir{}
		d.dirs[parts[0]] = child
	}
	child.add(parts[1:], status)
}

// RenderFileTree renders the files a run touched under rootName. Files maps
// project-relative paths to a file status. Each file carries a marker
// (+ written, - removed) and its status word in the status color.
// Directories come first, then files, each sorted by name.
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	root := &changeDir{}
	for path, status := range files {
		root.add(strings.Split(filepath.ToSlash(path), "/"), status)
	}

	var sb strings.Builder
	sb.WriteString(StyleSummary.Render(rootName+"/") + "\n")
	root.render(&sb, "")
	return sb.String()
}

func (d *changeDir) render(sb *strings.Builder, indent string) {
	dirNames := sortedKeys(d.dirs)
	fileNames := sortedKeys(d.files)
	total := len(dirNames) + len(fileNames)

	for i, name := range append(dirNames, fileNames...) {
		branch, next := treeEdge, treeVert
		if i == total-1 {
			branch, next = treeLast, treeSpace
		}
		lead := indent + branch

		if i < len(dirNames) {
			sb.WriteString(StyleDim.Render(lead) + name + "/\n")
			d.dirs[name].render(sb, indent+next)
			continue
		}
		sb.WriteString(StyleDim.Render(lead) + changeLine(name, d.files[name], lipgloss.Width(lead)) + "\n")
	}
}

// changeLine renders "<marker> <name>" followed by the status word aligned
// at statusColumn. used is the width already taken on the line.
func changeLine(name, status string, used int) string {
	style := statusStyle(status)
	marker, ok := changeMarkers[status]
	if !ok {
		marker = " "
	}

	padding := statusColumn - used - len(name) - 2
	if padding < 2 {
		padding = 2
	}
	return style.Render(marker) + " " + name + strings.Repeat(" ", padding) + style.Render(status)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
