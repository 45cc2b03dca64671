// Package app wires configuration, logging, the CMS client and the UI
// together.
//
// Run loads the config (with command line overrides), opens the log file,
// builds the credential store, CMS client and content service, starts the
// background poller and then blocks in the Bubble Tea program. When the UI
// exits the poller is cancelled and Run waits for it before returning.
//
// The poller refreshes the homepage and product records concurrently on every
// cycle. Failures are logged and recorded in the state store and never end
// the program; consecutive failures stretch the wait between cycles up to a
// fixed cap. Refresh asks for an immediate cycle.
//
// Build is also used by the CLI subcommands so that `showcase fetch` goes
// through the same client and token handling as the UI.
package app
