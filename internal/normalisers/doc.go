// Package normalisers provides Normaliser implementations that turn text
// files into document fields, and a registry selecting one by file extension.
package normalisers
