package main

import (
	"errors"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("fm: ")
	cmd := newRootCmd(os.LookupEnv)
	cmd.SetArgs(legacyArgs(os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(1)
		}
		log.Fatal(err)
	}
}
