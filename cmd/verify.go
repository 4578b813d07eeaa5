package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"go/types"

	"github.com/spf13/cobra"
	"github.com/stellar/go-stellar-sdk/support/config"
	"github.com/stellar/go-stellar-sdk/support/log"

	cmdUtils "github.com/yohaboy/cbe-verifier/cmd/utils"
	di "github.com/yohaboy/cbe-verifier/internal/dependencyinjection"
	"github.com/yohaboy/cbe-verifier/internal/verifier"
)

// ErrVerificationFailed is returned by the verify command when the receipt could not be verified.
// The result has already been printed by then.
var ErrVerificationFailed = errors.New("verification failed")

type VerifyCommandOptions struct {
	Reference     string
	AccountSuffix string
}

type VerifyCommand struct{}

func (c *VerifyCommand) Command() *cobra.Command {
	verifyOpts := VerifyCommandOptions{}

	configOpts := config.ConfigOptions{
		{
			Name:      "reference",
			Usage:     `The transaction reference printed on the receipt. Example: "FT24012345ABCD".`,
			OptType:   types.String,
			ConfigKey: &verifyOpts.Reference,
			Required:  false,
		},
		{
			Name:      "account-suffix",
			Usage:     "The last 8 digits of the payer's account number.",
			OptType:   types.String,
			ConfigKey: &verifyOpts.AccountSuffix,
			Required:  false,
		},
	}

	verifierOpts := di.ReceiptVerifierOptions{}
	configOpts = append(configOpts, cmdUtils.ReceiptVerifierConfigOptions(&verifierOpts)...)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a single receipt and print the result as JSON",
		Long: "Verify downloads the receipt identified by the reference and the account suffix, prints the result as JSON " +
			"and exits with a non-zero status when the receipt could not be verified.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmdUtils.DefaultPersistentPreRun(cmd, args)

			configOpts.Require()
			err := configOpts.SetValues()
			if err != nil {
				log.Fatalf("Error setting values of config options: %s", err.Error())
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			receiptVerifier, err := di.NewReceiptVerifier(verifierOpts)
			if err != nil {
				return fmt.Errorf("creating receipt verifier: %w", err)
			}

			return runVerify(cmd, receiptVerifier, verifyOpts)
		},
	}
	err := configOpts.Init(cmd)
	if err != nil {
		log.Fatalf("Error initializing a config option: %s", err.Error())
	}

	return cmd
}

func runVerify(cmd *cobra.Command, receiptVerifier verifier.VerifierInterface, opts VerifyCommandOptions) error {
	result := receiptVerifier.Verify(cmd.Context(), opts.Reference, opts.AccountSuffix)

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("writing the result: %w", err)
	}

	if !result.Success {
		return ErrVerificationFailed
	}
	return nil
}
