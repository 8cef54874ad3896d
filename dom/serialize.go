package dom

import (
	"sort"
	"strings"

	"github.com/fournii/domtree/webidl"
)

// SerializeSubtree renders the subtree below root in the html5lib
// tree-dump format: a "#document" header, one "| "-prefixed row per node,
// two more spaces of indent per level, attributes sorted by name on rows
// of their own. This is the conformance-suite diagnostic format, not an
// HTML serializer.
func (a *NodeArena) SerializeSubtree(root NodeHandle) string {
	return strings.TrimRight(a.serialize(root, 0), "\n")
}

func indentFor(depth int) string {
	if depth <= 0 {
		return ""
	}
	return "| " + strings.Repeat("  ", depth-1)
}

func (a *NodeArena) serialize(h NodeHandle, depth int) string {
	node, err := a.Get(h)
	if err != nil {
		// a child handle that does not resolve here means the tree spans
		// arenas, which the dump surfaces rather than hides
		return indentFor(depth) + "#missing " + h.String() + "\n"
	}

	ser := a.serializeNodeType(node, depth+1) + "\n"
	if node.NodeType != DocumentNode {
		ser = indentFor(depth) + ser
	}

	if node.NodeType == DocumentNode && node.Document.Doctype != nil {
		ser += indentFor(depth+1) + serializeDoctype(node.Document.Doctype) + "\n"
	}

	if children := node.ChildList(); children != nil {
		for _, child := range *children {
			ser += a.serialize(child, depth+1)
		}
	}

	if node.NodeType == ElementNode && !node.Element.TemplateContents.Null() {
		ser += indentFor(depth+1) + "content\n"
		if frag, err := a.Get(node.Element.TemplateContents); err == nil {
			for _, child := range frag.DocumentFragment.Children {
				ser += a.serialize(child, depth+2)
			}
		}
	}
	return ser
}

func (a *NodeArena) serializeNodeType(node *Node, depth int) string {
	switch node.NodeType {
	case ElementNode:
		e := "<"
		switch node.Element.QualifiedName.NamespaceURI {
		case Svgns:
			e += "svg "
		case Mathmlns:
			e += "math "
		}
		e += string(node.NodeName) + ">"
		attrs := node.Element.Attributes
		if attrs != nil && len(attrs.Attrs) != 0 {
			names := make([]string, 0, len(attrs.Attrs))
			for name := range attrs.Attrs {
				names = append(names, string(name))
			}
			sort.Strings(names)
			for _, name := range names {
				attr := attrs.Attrs[webidl.DOMString(name)]
				var ns string
				switch attr.Namespace {
				case Mathmlns:
					ns = "math "
				case Svgns:
					ns = "svg "
				case Xlinkns:
					ns = "xlink "
				case Xmlns:
					ns = "xml "
				case Xmlnsns:
					ns = "xmlns "
				}
				e += "\n" + indentFor(depth) + ns + name + "=\"" + string(attr.Value) + "\""
			}
		}
		return e
	case TextNode:
		return "\"" + string(node.Text.Data) + "\""
	case ProcessingInstructionNode:
		return "<?" + string(node.ProcessingInstruction.Target) + " " + string(node.ProcessingInstruction.Data) + ">"
	case CommentNode:
		return "<!-- " + string(node.Comment.Data) + " -->"
	case DocumentNode:
		return "#document"
	case DocumentFragmentNode:
		return "#document-fragment"
	}
	return "#unknown"
}

func serializeDoctype(doctype *DocumentType) string {
	d := "<!DOCTYPE " + string(doctype.Name)
	if len(doctype.PublicID) == 0 && len(doctype.SystemID) == 0 {
		return d + ">"
	}
	return d + " \"" + string(doctype.PublicID) + "\" \"" + string(doctype.SystemID) + "\">"
}
