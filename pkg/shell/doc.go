/*
Package shell implements the command surface of the assistant.

A line of input is split by Parse into a domain.Input, routed by Dispatch to
the matching handler and answered with a Response. Handlers report failures
with the kinds declared in package domain; Translate is the single point where
those kinds become user-facing text, so none of them ever stops the session.

# Usage

	sh := shell.New(memory.NewStore())
	resp, ok, err := sh.Execute(ctx, "add Alice 123")
*/
package shell
