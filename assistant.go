package assistant

// Version is the release of the assistant shell.
// Overridden at build time with -ldflags "-X github.com/aretw0/assistant.Version=...".
var Version = "v0.1.0-dev"
