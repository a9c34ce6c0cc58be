package polaris

import (
	"io/fs"

	"github.com/goliatone/go-polaris/pkg/codegen"
)

// EmbeddedTemplates exposes the built-in model templates so callers can reuse
// or extend them without importing the codegen package directly.
func EmbeddedTemplates() fs.FS {
	return codegen.TemplatesFS()
}
