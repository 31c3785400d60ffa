// Package app wires application dependencies for the CLI.
//
// It builds the random source, key generator, cipher and session
// service from Config, exposing them via the App struct for commands
// to use.
package app
