package main

import (
	"os"

	"cosmossdk.io/log"
	svrcmd "github.com/cosmos/cosmos-sdk/server/cmd"
	"github.com/openalpha/stake-farm/app"
	"github.com/openalpha/stake-farm/cmd/farmd/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := svrcmd.Execute(rootCmd, "FARMD", app.DefaultNodeHome); err != nil {
		log.NewLogger(os.Stderr).Error("farmd exited with error", "err", err)
		os.Exit(1)
	}
}
