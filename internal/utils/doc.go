// Package utils provides shared helpers for the CLI layer: hidden
// passphrase input from the terminal and random password generation.
package utils
