package domtree

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xlab/treeprint"

	"github.com/fournii/domtree/dom"
)

// printTree renders the built tree with treeprint for test logs.
func printTree(arena *dom.NodeArena, h dom.NodeHandle) string {
	tree := treeprint.New()
	addTreeNode(tree, arena, h)
	return tree.String()
}

func addTreeNode(tree treeprint.Tree, arena *dom.NodeArena, h dom.NodeHandle) {
	node, err := arena.Get(h)
	if err != nil {
		tree.AddNode("#missing")
		return
	}
	switch node.NodeType {
	case dom.DocumentNode:
		branch := tree.AddBranch("#document")
		for _, child := range node.Document.Children {
			addTreeNode(branch, arena, child)
		}
	case dom.DocumentFragmentNode:
		branch := tree.AddBranch("#document-fragment")
		for _, child := range node.DocumentFragment.Children {
			addTreeNode(branch, arena, child)
		}
	case dom.ElementNode:
		branch := tree.AddBranch("<" + string(node.NodeName) + ">")
		for _, child := range node.Element.Children {
			addTreeNode(branch, arena, child)
		}
		if !node.Element.TemplateContents.Null() {
			addTreeNode(branch.AddBranch("content"), arena, node.Element.TemplateContents)
		}
	case dom.TextNode:
		tree.AddNode("\"" + string(node.Text.Data) + "\"")
	case dom.CommentNode:
		tree.AddNode("<!-- " + string(node.Comment.Data) + " -->")
	case dom.ProcessingInstructionNode:
		tree.AddNode("<?" + string(node.ProcessingInstruction.Target) + ">")
	}
}

// The instruction sequences below replay what the tree-construction
// algorithm would issue for small documents, then compare the finished
// tree against its html5lib dump.

func TestBuildWholeDocument(t *testing.T) {
	b, _ := newTestBuilder(0)

	doc := b.GetDocument()
	b.AppendDoctypeToDocument("html", "", "")
	html := b.CreateElement(htmlName("html"), []dom.Attr{{LocalName: "lang", Value: "en"}})
	require.NoError(t, b.Append(doc, AppendNode(html)))

	head := b.CreateElement(htmlName("head"), nil)
	require.NoError(t, b.Append(html, AppendNode(head)))
	title := b.CreateElement(htmlName("title"), nil)
	require.NoError(t, b.Append(head, AppendNode(title)))
	require.NoError(t, b.Append(title, AppendText("Title")))

	body := b.CreateElement(htmlName("body"), []dom.Attr{{LocalName: "class", Value: "main"}})
	require.NoError(t, b.Append(html, AppendNode(body)))
	require.NoError(t, b.Append(body, AppendNode(b.CreateComment("note"))))
	p := b.CreateElement(htmlName("p"), nil)
	require.NoError(t, b.Append(body, AppendNode(p)))
	require.NoError(t, b.Append(p, AppendText("hi")))

	arena, root := b.Finish()
	require.Equal(t, doc, root)
	t.Logf("tree for tests =\n%s", printTree(arena, root))

	expected := "#document\n" +
		"| <!DOCTYPE html>\n" +
		"| <html>\n" +
		"|   lang=\"en\"\n" +
		"|   <head>\n" +
		"|     <title>\n" +
		"|       \"Title\"\n" +
		"|   <body>\n" +
		"|     class=\"main\"\n" +
		"|     <!-- note -->\n" +
		"|     <p>\n" +
		"|       \"hi\""
	if s := b.DocumentString(); s != expected {
		t.Errorf("Wrong document. Expected: \n\n%s\nGot: \n\n%s", expected, s)
	}
}

func TestBuildTemplateDocument(t *testing.T) {
	b, _ := newTestBuilder(0)

	doc := b.GetDocument()
	html := b.CreateElement(htmlName("html"), nil)
	require.NoError(t, b.Append(doc, AppendNode(html)))
	body := b.CreateElement(htmlName("body"), nil)
	require.NoError(t, b.Append(html, AppendNode(body)))

	tmpl := b.CreateElement(htmlName("template"), nil)
	require.NoError(t, b.Append(body, AppendNode(tmpl)))
	contents, err := b.GetTemplateContents(tmpl)
	require.NoError(t, err)
	require.NoError(t, b.Append(contents, AppendNode(b.CreateElement(htmlName("b"), nil))))
	require.NoError(t, b.Append(contents, AppendText("inside")))

	expected := "#document\n" +
		"| <html>\n" +
		"|   <body>\n" +
		"|     <template>\n" +
		"|       content\n" +
		"|         <b>\n" +
		"|         \"inside\""
	if s := b.DocumentString(); s != expected {
		t.Errorf("Wrong document. Expected: \n\n%s\nGot: \n\n%s", expected, s)
	}
}

func TestBuildMisnestedFormatting(t *testing.T) {
	// roughly what the adoption agency asks for on <b><p>x</b>y</p>:
	// the <b> is closed early, its children move, and text lands by
	// sibling position
	b, _ := newTestBuilder(0)

	doc := b.GetDocument()
	html := b.CreateElement(htmlName("html"), nil)
	require.NoError(t, b.Append(doc, AppendNode(html)))
	body := b.CreateElement(htmlName("body"), nil)
	require.NoError(t, b.Append(html, AppendNode(body)))

	bold := b.CreateElement(htmlName("b"), nil)
	require.NoError(t, b.Append(body, AppendNode(bold)))
	p := b.CreateElement(htmlName("p"), nil)
	require.NoError(t, b.Append(bold, AppendNode(p)))
	require.NoError(t, b.Append(p, AppendText("x")))

	require.NoError(t, b.RemoveFromParent(p))
	require.NoError(t, b.Append(body, AppendNode(p)))
	require.NoError(t, b.Append(p, AppendText("y")))

	expected := "#document\n" +
		"| <html>\n" +
		"|   <body>\n" +
		"|     <b>\n" +
		"|     <p>\n" +
		"|       \"x\"\n" +
		"|       \"y\""
	if s := b.DocumentString(); s != expected {
		t.Errorf("Wrong document. Expected: \n\n%s\nGot: \n\n%s", expected, s)
	}
}
