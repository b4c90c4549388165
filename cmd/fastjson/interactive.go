package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/fastjson/format"
	"github.com/wippyai/fastjson/value"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	scalarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	branchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type treeNode struct {
	key      string
	preview  string
	children []*treeNode
	expanded bool
}

type viewerModel struct {
	err      error
	root     *treeNode
	vp       viewport.Model
	filename string
	maxDepth int
	cursor   int
	ready    bool
}

type docLoadedMsg struct {
	err  error
	root *treeNode
}

func runInteractive(filename string, maxDepth int) error {
	m := &viewerModel{filename: filename, maxDepth: maxDepth}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *viewerModel) Init() tea.Cmd {
	return m.loadDocument
}

func (m *viewerModel) loadDocument() tea.Msg {
	v, err := decodeInput(m.filename, m.maxDepth)
	if err != nil {
		return docLoadedMsg{err: err}
	}
	root := buildTree("", v)
	root.expanded = true
	return docLoadedMsg{root: root}
}

func buildTree(key string, v value.Value) *treeNode {
	n := &treeNode{key: key}
	switch v.Kind() {
	case value.KindArray:
		a := v.Array()
		n.preview = fmt.Sprintf("[…] %d elements", a.Len())
		for i := 0; i < a.Len(); i++ {
			n.children = append(n.children, buildTree(fmt.Sprintf("[%d]", i), a.At(i)))
		}
	case value.KindObject:
		o := v.Object()
		n.preview = fmt.Sprintf("{…} %d entries", o.Len())
		for _, mb := range o.Members() {
			n.children = append(n.children, buildTree(mb.Key, mb.Value))
		}
	default:
		text, err := format.Format(v, format.Config{})
		if err != nil {
			text = "<" + err.Error() + ">"
		}
		n.preview = text
	}
	return n
}

type visibleLine struct {
	node  *treeNode
	depth int
}

func flatten(n *treeNode, depth int, out []visibleLine) []visibleLine {
	out = append(out, visibleLine{node: n, depth: depth})
	if n.expanded {
		for _, c := range n.children {
			out = flatten(c, depth+1, out)
		}
	}
	return out
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.root != nil && m.cursor < len(flatten(m.root, 0, nil))-1 {
				m.cursor++
			}

		case "enter", " ":
			if m.root != nil {
				lines := flatten(m.root, 0, nil)
				if m.cursor < len(lines) {
					n := lines[m.cursor].node
					if len(n.children) > 0 {
						n.expanded = !n.expanded
					}
				}
			}

		case "e":
			setExpanded(m.root, true)

		case "c":
			setExpanded(m.root, false)
			m.cursor = 0
		}

	case tea.WindowSizeMsg:
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-3)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 3
		}

	case docLoadedMsg:
		m.err = msg.err
		m.root = msg.root
	}

	return m, nil
}

func setExpanded(n *treeNode, expanded bool) {
	if n == nil {
		return
	}
	if len(n.children) > 0 {
		n.expanded = expanded
	}
	for _, c := range n.children {
		setExpanded(c, expanded)
	}
}

func (m *viewerModel) View() string {
	name := m.filename
	if name == "" {
		name = "stdin"
	}
	title := titleStyle.Render("fastjson: " + name)
	help := helpStyle.Render("↑/↓ move · enter toggle · e expand all · c collapse all · q quit")

	if m.err != nil {
		return title + "\n\n" + errorStyle.Render(m.err.Error()) + "\n\n" + help
	}
	if m.root == nil || !m.ready {
		return title + "\n\nloading…\n\n" + help
	}

	lines := flatten(m.root, 0, nil)
	if m.cursor >= len(lines) {
		m.cursor = len(lines) - 1
	}

	var b strings.Builder
	for i, ln := range lines {
		b.WriteString(m.renderLine(ln, i == m.cursor))
		b.WriteByte('\n')
	}
	m.vp.SetContent(b.String())
	m.scrollToCursor(len(lines))

	return title + "\n" + m.vp.View() + "\n" + help
}

func (m *viewerModel) renderLine(ln visibleLine, selected bool) string {
	indent := strings.Repeat("  ", ln.depth)

	marker := "  "
	if len(ln.node.children) > 0 {
		if ln.node.expanded {
			marker = "▾ "
		} else {
			marker = "▸ "
		}
	}

	var text string
	switch {
	case ln.node.key == "":
		text = ln.node.preview
	case len(ln.node.children) > 0:
		text = keyStyle.Render(ln.node.key) + ": " + branchStyle.Render(ln.node.preview)
	default:
		text = keyStyle.Render(ln.node.key) + ": " + scalarStyle.Render(ln.node.preview)
	}

	line := indent + marker + text
	if selected {
		return selectedStyle.Render(indent + marker + ln.node.plain())
	}
	return line
}

func (n *treeNode) plain() string {
	if n.key == "" {
		return n.preview
	}
	return n.key + ": " + n.preview
}

func (m *viewerModel) scrollToCursor(total int) {
	if m.cursor < m.vp.YOffset {
		m.vp.SetYOffset(m.cursor)
	}
	if m.cursor >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(m.cursor - m.vp.Height + 1)
	}
	if total <= m.vp.Height {
		m.vp.SetYOffset(0)
	}
}
