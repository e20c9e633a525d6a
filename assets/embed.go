package assets

import "embed"

//go:embed words.json
var FS embed.FS

// WordList returns the raw embedded word list document
// ({"word_list": [...]}).
func WordList() ([]byte, error) {
	return FS.ReadFile("words.json")
}
