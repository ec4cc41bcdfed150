package nextver

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// Banner displays the Nextver ASCII art logo
func Banner(w io.Writer) {
	blue := color.RGB(64, 120, 192)
	grey := color.New(color.FgHiBlack)

	blue.Fprint(w, strings.TrimLeft(`
 _  _  ___ __  _____ __   __ ___  ___
| \| || __|\ \/ /_ _|\ \ / /| __|| _ \
| .  || _|  >  < | |  \ V / | _| |   /
|_|\_||___|/_/\_\|_|   \_/  |___||_|_\
`, "\n"))
	grey.Fprint(w, `
Nextver - Computes the next semantic version from repository tags or releases.
https://github.com/nextver/nextver

`)
}
