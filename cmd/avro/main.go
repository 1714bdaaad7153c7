// Command avro transliterates Roman phonetic text to Bengali and converts
// between Bengali Unicode and Bijoy.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/avro/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "avro: %v\n", err)
		os.Exit(1)
	}
}
