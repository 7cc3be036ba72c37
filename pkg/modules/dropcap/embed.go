package dropcap

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

//go:embed icons/*.svg
var embeddedIcons embed.FS

// TemplatesFS exposes the markup templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// IconsFS exposes the module icon bundle, rooted so Descriptor().Icon
// resolves against it.
func IconsFS() fs.FS {
	return embeddedIcons
}
