// Package app contains the core application logic. It wires configuration
// loading, the content registry and the extension session together and runs
// the load, report and unload lifecycle, decoupled from any specific
// entrypoint like a CLI or server.
package app
