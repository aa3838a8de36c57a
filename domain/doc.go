// Package domain contains the core domain model: money, jobs, people and families.
//
// The domain has no I/O of its own. Configuration and logging live in infra packages
// and are passed in by callers that need them.
package domain
