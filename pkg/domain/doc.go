/*
Package domain contains the core types of the assistant shell.

It defines the closed set of shell commands, the parsed form of a line of
input, and the failure taxonomy shared by the command handlers. The package has
no dependencies on I/O or storage.

# Failure Kinds

  - UsageError (ErrInvalidUsage): wrong argument count or malformed request.
  - NotFoundError (ErrNotFound): a name is absent from the contact store.
  - ErrInsufficientArgs: a handler asked for an argument that was never supplied.
*/
package domain
