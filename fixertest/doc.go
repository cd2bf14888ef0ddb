// Package fixertest provides deterministic fakes for testing code built on
// fixer: an in-memory document and node tree implementing fixer.Host and
// fixer.Node, a manual frame/timer scheduler, and small assertion helpers.
package fixertest
