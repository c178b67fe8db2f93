/*
Package ports defines the driven ports (interfaces) of the assistant shell.

# Key Interfaces

  - ContactStore: holds the name → phone mapping the command handlers work on.

RunContactStoreContract is a reusable test suite for ContactStore adapters.
*/
package ports
