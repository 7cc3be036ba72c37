// Package template defines the template engine seam module renderers use,
// with a pongo2-backed implementation in the gotemplate subpackage.
package template
