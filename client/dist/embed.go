package clientdist

import _ "embed"

// ShinyWidgetsJS is the client runtime bundle.
//
// It is served by the framework at "<base>/client.js".
//go:embed shinywidgets.js
var ShinyWidgetsJS []byte
