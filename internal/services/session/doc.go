// Package session runs complete encrypt/decrypt round trips.
//
// A session generates a fresh keypair, encrypts one message under the
// public key, decrypts it under the private key, and reports the whole
// exchange as a transcript for the CLI to render. Keys live only for
// the duration of the round trip; nothing is persisted.
package session
