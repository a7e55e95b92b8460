// Package commands provides the command-line interface for the lockwalk tool.
//
// It implements the encrypt command plus the shared root command carrying
// version information. The package handles command-line parsing, environment
// variable binding through cobra and viper, and interactive password entry.
package commands
