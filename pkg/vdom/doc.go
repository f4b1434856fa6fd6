// Package vdom provides the markup node model used by shinyWidgets.
//
// A widget builder returns a *VNode tree. Nodes are plain values with no
// identity: they are built, rendered to HTML (see pkg/render), and
// discarded. Nothing mutates a node after construction.
//
// Elements are built with variadic constructors that accept attributes,
// children, and strings interchangeably:
//
//	vdom.Div(
//	    vdom.Class("form-group"),
//	    vdom.Label(vdom.For("name"), "Name"),
//	    vdom.Input(vdom.ID("name"), vdom.Type("text")),
//	)
package vdom
