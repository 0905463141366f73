package skooma

// Version is the library version, reported by the CLI and the adapters.
var Version = "0.1.0"
