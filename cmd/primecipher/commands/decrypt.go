package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"primecipher/internal/domain"
)

// decrypt -d <d> -n <n> <values...>: decrypt ciphertext integers.
func decryptCmd() *cobra.Command {
	var d, n int64

	cmd := &cobra.Command{
		Use:   "decrypt <value>...",
		Short: "Decrypt ciphertext values under a provided private key",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 255 {
				return fmt.Errorf("modulus %d must exceed 255 for byte decryption", n)
			}

			ct := make([]int64, len(args))
			for i, raw := range args {
				v, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					return fmt.Errorf("ciphertext value %q is not an integer: %w", raw, err)
				}
				if v < 0 || v >= n {
					return fmt.Errorf("ciphertext value %d outside [0, %d)", v, n)
				}
				ct[i] = v
			}

			plain := appCtx.Cipher.Decrypt(ct, domain.PrivateKey{D: d, N: n})

			fmt.Printf("Decrypted Message: %s\n", plain)
			printByteValues(plain)
			return nil
		},
	}
	cmd.Flags().Int64VarP(&d, "exponent", "d", 0, "private exponent d")
	cmd.Flags().Int64VarP(&n, "modulus", "n", 0, "modulus n")
	_ = cmd.MarkFlagRequired("exponent")
	_ = cmd.MarkFlagRequired("modulus")
	return cmd
}
