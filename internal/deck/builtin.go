package deck

import "embed"

//go:embed builtin/*.md
var builtinFS embed.FS

// Builtin returns the case-study deck compiled into the binary.
func Builtin() (*Deck, error) {
	return LoadFS(builtinFS, "builtin")
}
