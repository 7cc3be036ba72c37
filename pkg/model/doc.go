// Package model defines the declarative types content modules hand to a host:
// the ModuleDescriptor (identity, selector template, toggle groups, advanced
// style categories), the ordered FieldSpec sequence, and the derived
// transition and selector maps. Canonical definitions live in internal/model;
// this package re-exports them together with the SequenceBuilder that
// assembles field groups in a fixed order. Selectors carry OrderClassToken
// until a host expands it for one instance.
package model
