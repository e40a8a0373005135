// Command korin-inspect renders container values out of an offline memory
// snapshot, using a YAML layout sidecar in place of live debug info.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
