// Package cipher encrypts and decrypts byte sequences one byte per
// modular exponentiation, with no padding or blocking.
package cipher
