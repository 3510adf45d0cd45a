// Package levels embeds the bundled arena maps.
package levels

import "embed"

//go:embed *.tmx
var FS embed.FS
