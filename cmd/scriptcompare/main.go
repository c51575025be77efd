package main

import (
	"os"

	"github.com/li1125435097/EassyCode/cmd/scriptcompare/cmds"
)

func main() {
	if err := cmds.New().Execute(); err != nil {
		os.Exit(1)
	}
}
