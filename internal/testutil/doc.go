// Package testutil provides fixtures shared by tests: a fake cargo
// executable that records its invocations and can be told to fail.
package testutil
