package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/fzft/go-hashtable/cmd"
	"github.com/fzft/go-hashtable/log"
)

func main() {
	if err := log.InitLogger(); err != nil {
		os.Exit(1)
	}
	log.Logger.Info("starting hashtab", zap.String("version", BuildVersion()))

	repl := cmd.NewRepl(cmd.DefaultTableSize, BuildVersion())
	if err := repl.Run(); err != nil {
		log.Logger.Error("repl exited", zap.Error(err))
		os.Exit(1)
	}
}
