package pages

import "embed"

// templateFS holds one .tsx file per page, stored exactly as written to disk.
//
//go:embed templates/*.tsx
var templateFS embed.FS

// templateDir is the directory inside templateFS that holds the page files.
const templateDir = "templates"

// templateExt is the extension of embedded page files.
const templateExt = ".tsx"
