package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"primecipher/internal/crypto"
)

// keygen: generate and print a keypair for use with encrypt/decrypt.
func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate and print a keypair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, priv, err := appCtx.Keys.Generate(appCtx.Range)
			if err != nil {
				return err
			}

			fmt.Printf("Public Key (e, n): (%d, %d)\n", pub.E, pub.N)
			fmt.Printf("Private Key (d, n): (%d, %d)\n", priv.D, priv.N)
			fmt.Printf("Fingerprint: %s\n", crypto.Fingerprint(pub))
			return nil
		},
	}
}
