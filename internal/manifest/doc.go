// Package manifest renders and patches Cargo manifests as plain text.
// Files are written atomically, and updates to a workspace's members list
// go through a MemberUpdater so concurrent registrations are serialized.
package manifest
