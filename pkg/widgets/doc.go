// Package widgets builds HTML form input widgets decorated with icon
// addons, in the Bootstrap input-group markup dialect.
//
// The two builders, TextInputIcon and NumericInputIcon, return vdom trees
// with a fixed shape:
//
//	div.form-group.shiny-input-container
//	    label[for=id]?
//	    div.input-group[.input-group-sm|.input-group-lg]
//	        span.input-group-addon?   (left)
//	        input.form-control
//	        span.input-group-addon?   (right)
//
// The class names are a compatibility contract with external stylesheets
// and client scripts and are emitted verbatim.
//
// Builders are pure: they read their inputs, consult an optional Restorer
// for a session-resumed value, and return a fresh tree. Invalid sizes,
// malformed CSS lengths, and over-long icon lists fail synchronously with
// an error wrapping ErrInvalidArgument.
package widgets
