// Package css holds the small CSS toolkit modules render with: selector
// interpolation, declarations and rules, an ordered stylesheet accumulator,
// value safety checks built on the gorilla/css scanner, and custom CSS
// parsing through douceur.
package css
