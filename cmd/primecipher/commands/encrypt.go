package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"primecipher/internal/domain"
)

// encrypt -e <e> -n <n> <message>: encrypt under a provided public key.
func encryptCmd() *cobra.Command {
	var e, n int64

	cmd := &cobra.Command{
		Use:   "encrypt <message>",
		Short: "Encrypt a message under a provided public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 255 {
				return fmt.Errorf("modulus %d must exceed 255 for byte encryption", n)
			}

			ct := appCtx.Cipher.Encrypt([]byte(args[0]), domain.PublicKey{E: e, N: n})

			out := make([]string, len(ct))
			for i, c := range ct {
				out[i] = fmt.Sprintf("%d", c)
			}
			fmt.Println(strings.Join(out, " "))
			return nil
		},
	}
	cmd.Flags().Int64VarP(&e, "exponent", "e", 0, "public exponent e")
	cmd.Flags().Int64VarP(&n, "modulus", "n", 0, "modulus n")
	_ = cmd.MarkFlagRequired("exponent")
	_ = cmd.MarkFlagRequired("modulus")
	return cmd
}
