package splay

import (
	"fmt"
	"io"

	"github.com/npillmayer/splay/topdown"
)

type nodeids struct {
	idTable map[*topdown.Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*topdown.Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node *topdown.Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *topdown.Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the link structure of a tree in Graphviz DOT format
// (for debugging purposes). Element labels are produced with fmt's %v.
func Tree2Dot[E any](tree *Tree[E], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	nodelist, edgelist := "", ""
	dotNode(tree, tree.tree.Root(), &ids, &nodelist, &edgelist)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func dotNode[E any](tree *Tree[E], node *topdown.Node, ids *nodeids, nodelist, edgelist *string) {
	if node == nil {
		return
	}
	ID := ids.alloc(node)
	isleaf := node.Left() == nil && node.Right() == nil
	label := fmt.Sprintf("%v", *tree.elem(node))
	*nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(isleaf))
	if !isleaf {
		for _, child := range []*topdown.Node{node.Left(), node.Right()} {
			if child == nil {
				nilid := ID + 10000
				*nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode(nilid))
				*edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			*edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			dotNode(tree, child, ids, nodelist, edgelist)
		}
	}
}

func emptyNode(id int) string {
	s := "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
	return s
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
