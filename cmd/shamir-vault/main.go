// Shamir Vault - split and reconstruct secrets with Shamir's Secret Sharing
package main

import (
	"github.com/lcrostarosa/shamir-vault/internal/cli"
)

var version = "0.1.0"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
