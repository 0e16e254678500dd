// Package scaffold creates every crate of a registry concurrently and
// registers each one in the workspace manifest. Crates are independent: one
// failing crate is recorded and reported without stopping the others.
package scaffold
