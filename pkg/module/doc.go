// Package module defines the contract content modules fulfil for a host
// builder: a static descriptor, an ordered field schema, transition selectors
// composed over host defaults, and a render step that returns markup while
// pushing generated CSS into a host-owned sink. Registry tracks module types
// by slug and rejects collisions with a DuplicateSlug error.
package module
