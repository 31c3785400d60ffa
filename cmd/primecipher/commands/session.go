package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// maxMessageLen bounds interactive input the way the original
// interactive tool did.
const maxMessageLen = 100

// session [message]: run a full keygen/encrypt/decrypt round trip.
func sessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session [message]",
		Short: "Generate keys, encrypt a message, and decrypt it back",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var message string
			if len(args) == 1 {
				message = args[0]
			} else {
				fmt.Printf("Enter a message (max %d chars): ", maxMessageLen)
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil && line == "" {
					return err
				}
				message = strings.TrimRight(line, "\r\n")
			}
			if len(message) > maxMessageLen {
				message = message[:maxMessageLen]
			}

			tr, err := appCtx.Sessions.Run(message, appCtx.Range)
			if err != nil {
				return err
			}

			fmt.Println("\nGenerated Keys:")
			fmt.Printf("Public Key (e, n): (%d, %d)\n", tr.Public.E, tr.Public.N)
			fmt.Printf("Private Key (d, n): (%d, %d)\n", tr.Private.D, tr.Private.N)

			fmt.Printf("\nOriginal Message: %s\n", tr.Plaintext)
			printByteValues(tr.Plaintext)

			fmt.Print("\nEncrypted Values: ")
			for _, c := range tr.Ciphertext {
				fmt.Printf("%d ", c)
			}
			fmt.Println()

			fmt.Printf("\nDecrypted Message: %s\n", tr.Recovered)
			printByteValues(tr.Recovered)
			return nil
		},
	}
}

// printByteValues shows the numeric representation of a message before
// and after encryption.
func printByteValues(b []byte) {
	fmt.Print("ASCII values: ")
	for _, v := range b {
		fmt.Printf("%d ", v)
	}
	fmt.Println()
}
