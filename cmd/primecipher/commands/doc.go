// Package commands defines the primecipher CLI and wires dependencies
// for subcommands.
//
// Commands
//
//   - session   Generate keys, encrypt a message and decrypt it back
//   - keygen    Generate and print a keypair
//   - encrypt   Encrypt a message under a provided public key
//   - decrypt   Decrypt ciphertext values under a provided private key
//
// # Implementation
//
// The root command loads an optional .env file, folds environment
// defaults into the flags, and builds the dependency graph (random
// source, generator, cipher, session service, logger) before any
// subcommand runs.
package commands
