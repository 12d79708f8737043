// Command vmctl controls VMware virtual machines through vmrun.
package main

import (
	"os"

	"github.com/xdg/vmctl/internal/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
