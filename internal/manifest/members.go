package manifest

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// ErrNoMembersList is returned when a workspace manifest has no
// "members = [" line to patch.
var ErrNoMembersList = errors.New("workspace manifest has no members list")

const membersPrefix = "members = ["

// AddMember returns text with name appended to the workspace members list.
// The list is patched line by line, not parsed: the first line whose trimmed
// form starts with `members = [` is rewritten. Names already present are
// appended again.
func AddMember(text, name string) (string, error) {
	lines := strings.Split(text, "\n")
	quoted := strconv.Quote(name)

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, membersPrefix) {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

		closeIdx := strings.LastIndex(trimmed, "]")
		if closeIdx < 0 {
			// Multi-line list: put the new entry right after the opening line.
			entry := indent + "    " + quoted + ","
			lines = append(lines[:i+1], append([]string{entry}, lines[i+1:]...)...)
			return strings.Join(lines, "\n"), nil
		}

		body := strings.TrimSpace(trimmed[len(membersPrefix):closeIdx])
		body = strings.TrimSuffix(body, ",")
		tail := trimmed[closeIdx+1:]
		if body == "" {
			lines[i] = indent + membersPrefix + quoted + "]" + tail
		} else {
			lines[i] = indent + membersPrefix + body + ", " + quoted + "]" + tail
		}
		return strings.Join(lines, "\n"), nil
	}
	return "", ErrNoMembersList
}

// MemberUpdater serializes read-modify-write cycles on one workspace
// manifest. Two concurrent Register calls never observe the same members
// line, so no update is lost.
type MemberUpdater struct {
	path string
	mu   sync.Mutex
}

// NewMemberUpdater returns an updater for the workspace manifest at path.
func NewMemberUpdater(path string) *MemberUpdater {
	return &MemberUpdater{path: path}
}

// Path returns the manifest path this updater writes.
func (u *MemberUpdater) Path() string { return u.path }

// Register appends name to the members list.
func (u *MemberUpdater) Register(name string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	data, err := os.ReadFile(u.path) //nolint:gosec // path is the workspace manifest
	if err != nil {
		return fmt.Errorf("reading workspace manifest: %w", err)
	}
	updated, err := AddMember(string(data), name)
	if err != nil {
		return fmt.Errorf("registering %s: %w", name, err)
	}
	return WriteFile(u.path, updated)
}

// Members extracts the quoted entries of a single-line or multi-line members
// list. It is a reporting helper and shares AddMember's line-based view of
// the file.
func Members(text string) []string {
	var out []string
	inList := false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !inList {
			if !strings.HasPrefix(trimmed, membersPrefix) {
				continue
			}
			trimmed = trimmed[len(membersPrefix)-1:]
			inList = true
		}
		out = append(out, quotedStrings(trimmed)...)
		if strings.Contains(trimmed, "]") {
			return out
		}
	}
	return out
}

func quotedStrings(s string) []string {
	var out []string
	for {
		start := strings.IndexByte(s, '"')
		if start < 0 {
			return out
		}
		end := strings.IndexByte(s[start+1:], '"')
		if end < 0 {
			return out
		}
		out = append(out, s[start+1:start+1+end])
		s = s[start+end+2:]
	}
}
