// Package dropcap implements the Drop Cap Text content module: a large
// leading letter followed by rich body text.
//
// The module declares two content fields (letter, body), a background group
// and margin/padding fields for the letter, derives transition selectors on
// top of the host's font defaults, and renders
//
//	<div class="drop-cap-text"><span class="drop-cap-letter">…</span><span class="drop-cap-body">…</span></div>
//
// Both spans are always present. The letter is reduced to plain text and
// the body to an allow-listed subset of markup before rendering.
package dropcap
