package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// listSubdirectories возвращает видимые поддиректории в лексическом порядке
func listSubdirectories(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			dirs = append(dirs, filepath.Join(dir, entry.Name()))
		}
	}
	return dirs
}

// startDirectory ближайшая существующая директория для начала обзора
func startDirectory(dir string) string {
	dir = filepath.Clean(dir)
	for {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}

// showBrowser окно выбора директории.
// Enter раскрывает узел, Space выбирает директорию, ".." поднимается на уровень выше.
func (m *Manager) showBrowser(start string, onChoose func(dir string)) {
	tree := tview.NewTreeView()
	tree.SetBorder(true).SetTitle("Enter - open, Space - choose, Esc - cancel")

	var setRoot func(dir string)
	setRoot = func(dir string) {
		root := tview.NewTreeNode(dir).SetColor(tcell.ColorYellow).SetReference(dir)
		parent := filepath.Dir(dir)
		if parent != dir {
			root.AddChild(tview.NewTreeNode("..").SetReference(parent).SetSelectable(true))
		}
		addDirectoryNodes(root, dir)
		tree.SetRoot(root).SetCurrentNode(root)
	}

	tree.SetSelectedFunc(func(node *tview.TreeNode) {
		dir, ok := node.GetReference().(string)
		if !ok {
			return
		}
		if node.GetText() == ".." {
			setRoot(dir)
			return
		}
		if len(node.GetChildren()) == 0 {
			addDirectoryNodes(node, dir)
		} else if node != tree.GetRoot() {
			node.SetExpanded(!node.IsExpanded())
		}
	})

	tree.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape:
			m.closeModal()
			return nil
		case event.Key() == tcell.KeyRune && event.Rune() == ' ':
			node := tree.GetCurrentNode()
			if node == nil {
				return nil
			}
			if dir, ok := node.GetReference().(string); ok {
				m.closeModal()
				onChoose(dir)
			}
			return nil
		}
		return event
	})

	setRoot(startDirectory(start))
	m.openModal(centered(tree, 70, 20))
}

func addDirectoryNodes(node *tview.TreeNode, dir string) {
	for _, sub := range listSubdirectories(dir) {
		node.AddChild(tview.NewTreeNode(filepath.Base(sub)).
			SetReference(sub).
			SetSelectable(true))
	}
}
