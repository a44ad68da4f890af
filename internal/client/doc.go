// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the client services, and local persistence into
// a single process lifecycle with a best-effort draft flush on exit.
package client
