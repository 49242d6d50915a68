// Command sigtoken signs, verifies and inspects compact Ed25519 tokens.
//
// Usage:
//
//	sigtoken sign --secret s3cret hello
//	sigtoken sign --secret s3cret --field uid=42 --field act=confirm
//	sigtoken verify --secret s3cret '~...'
//	sigtoken keypair --secret s3cret
package main

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/sigtoken/internal/command"
)

func main() {
	if err := command.App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
