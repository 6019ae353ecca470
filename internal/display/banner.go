package display

import (
	"fmt"
	"os"

	"mp3weld/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Cyan if colors are enabled.
func PrintBanner() {
	if term.Cyan != "" {
		fmt.Fprint(os.Stdout, term.Cyan)
	}
	fmt.Fprint(os.Stdout, `                 _____          _    _
 _ __ ___  _ __ |___ /_      __| | __| |
| '_ `+"`"+` _ \| '_ \  |_ \ \ /\ / /| |/ _`+"`"+` |
| | | | | | |_) |___) \ V  V / | | (_| |
|_| |_| |_| .__/|____/ \_/\_/  |_|\__,_|
          |_|
`)
	if term.Cyan != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
