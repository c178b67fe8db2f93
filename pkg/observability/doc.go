/*
Package observability provides session metrics for the assistant shell.

Metrics are kept in a private Prometheus registry per session and can be
summarised with Snapshot when the session ends.
*/
package observability
