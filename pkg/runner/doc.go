/*
Package runner implements the interactive loop of the assistant shell.

It is the bridge between the shell's command surface and the outside world:
it reads one line at a time through a pluggable IOHandler, sanitizes it,
dispatches it to a shell.Shell and prints the response, until the user exits,
input ends, or an interrupt signal arrives.

# Key Components

  - Runner: the read-parse-dispatch-print loop.
  - IOHandler: decouples how lines are read and responses written.
  - TextHandler: prompted text IO for interactive use.
  - JSONHandler: one JSON object per response, for scripted use.
  - SignalManager: maps SIGINT/SIGTERM onto a graceful farewell.

# Usage

	r := runner.NewRunner(
		runner.WithShell(shell.New(memory.NewStore())),
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
