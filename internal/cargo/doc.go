// Package cargo drives the external cargo toolchain against a finished
// workspace. Steps run one after another and the first failing step stops
// the run; commands go through a Runner so tests can substitute a fake.
package cargo
