// Package menu turns a deployment catalog into a declarative menu tree.
package menu

// Kind discriminates the menu entry variants.
type Kind int

// Entry kinds.
const (
	KindAction Kind = iota
	KindSeparator
	KindLabel
	KindSubmenu
)

// Entry is one node of the declarative menu tree. The tree is plain data;
// rendering it against a native toolkit is the tray backend's job.
type Entry struct {
	Kind     Kind
	Label    string
	Handler  func()
	Children []Entry
}

// Action creates an interactive entry invoking handler when clicked.
func Action(label string, handler func()) Entry {
	return Entry{Kind: KindAction, Label: label, Handler: handler}
}

// Separator creates a visual divider.
func Separator() Entry {
	return Entry{Kind: KindSeparator}
}

// Label creates a non-interactive display entry.
func Label(label string) Entry {
	return Entry{Kind: KindLabel, Label: label}
}

// Submenu creates an entry holding an ordered list of children.
func Submenu(label string, children ...Entry) Entry {
	return Entry{Kind: KindSubmenu, Label: label, Children: children}
}
