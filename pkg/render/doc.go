// Package render hosts the presentation helpers shared by modules and hosts:
// label localization over module schemas and the template engine seam in the
// template subpackage.
package render
