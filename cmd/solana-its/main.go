// Command solana-its derives Interchain Token Service accounts and assembles
// unsigned Solana transactions for the program.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.StandardLogger().WithError(err).Error("command failed")
		os.Exit(1)
	}
}
