package dropcap

import (
	"io/fs"

	"github.com/goliatone/go-dropcap/pkg/modules/dropcap"
)

// EmbeddedTemplates exposes the built-in module templates so callers can
// reuse or override them without importing the module package directly.
func EmbeddedTemplates() fs.FS {
	return dropcap.TemplatesFS()
}

// EmbeddedIcons exposes the module icon bundle.
func EmbeddedIcons() fs.FS {
	return dropcap.IconsFS()
}
