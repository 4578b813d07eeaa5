package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/stellar/go-stellar-sdk/support/log"

	"github.com/yohaboy/cbe-verifier/cmd"
	cmdUtils "github.com/yohaboy/cbe-verifier/cmd/utils"
)

// Version is the official version of this application.
const Version = "1.0.0"

// GitCommit is populated at build time by
// go build -ldflags "-X main.GitCommit=$GIT_COMMIT"
var GitCommit string

// preConfigureLogger logs everything until the --log-level option is parsed.
func preConfigureLogger() {
	log.DefaultLogger = log.New()
	log.DefaultLogger.SetLevel(logrus.TraceLevel)
}

func main() {
	preConfigureLogger()

	envFile, err := cmdUtils.LoadEnvFile(os.Args[1:])
	if err != nil {
		log.Fatalf("error loading the env file: %s", err.Error())
	}
	if envFile != "" {
		log.Debugf("Loaded environment variables from %s", envFile)
	}

	rootCmd := cmd.SetupCLI(Version, GitCommit)
	if err = rootCmd.Execute(); err != nil {
		if errors.Is(err, cmd.ErrVerificationFailed) {
			os.Exit(1)
		}
		log.Fatalf("error executing: %s", err.Error())
	}
}
