package sshconfig

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Alias is the stable host alias the tool maintains; `ssh snellius_gpu_node`
// always reaches the current reservation.
const Alias = "snellius_gpu_node"

const marker = "Host " + Alias

// Block is the managed host entry. HostName is rewritten on every run;
// User and ProxyJump are only written when the block is first created.
type Block struct {
	HostName  string
	User      string
	ProxyJump string
}

// DefaultPath returns the OpenSSH client configuration location.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".ssh", "config")
}

// Patch ensures the config at path holds a block for Alias whose HostName
// equals b.HostName, creating the file and its directory if needed. Every
// line outside the target block is preserved byte for byte. The write is
// atomic: temp file in the same directory, then rename.
func Patch(path string, b Block) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(err, "sshconfig: create directory")
	}
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "sshconfig: read config")
	}
	patched := patchLines(splitLines(string(data)), b)
	return writeAtomic(path, strings.Join(patched, ""))
}

// splitLines keeps each line's original ending so an untouched file joins
// back byte-identical.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// patchLines rewrites the HostName line of the first block whose trimmed
// marker line starts with "Host snellius_gpu_node". The block ends at the
// next line whose trimmed content starts with "Host " or at a blank line.
// Only the first HostName line inside the block is replaced; a block with
// none gets one inserted right after the marker. When no block exists a
// new one is appended.
func patchLines(lines []string, b Block) []string {
	out := make([]string, 0, len(lines)+5)
	inTarget := false
	found := false
	replaced := false
	markerIdx := -1

	// a found block with no HostName line gets one, indented like a
	// freshly created block
	closeBlock := func() {
		inTarget = false
		if found && !replaced {
			rest := append([]string{"    HostName " + b.HostName + "\n"}, out[markerIdx+1:]...)
			out = append(out[:markerIdx+1], rest...)
			replaced = true
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !found && strings.HasPrefix(trimmed, marker) {
			inTarget = true
			found = true
			markerIdx = len(out)
			out = append(out, line)
			continue
		}
		if inTarget {
			if strings.HasPrefix(trimmed, "Host ") || trimmed == "" {
				closeBlock()
			} else if !replaced && strings.HasPrefix(trimmed, "HostName") {
				indent := line[:strings.Index(line, "HostName")]
				out = append(out, indent+"HostName "+b.HostName+"\n")
				replaced = true
				continue
			}
		}
		out = append(out, line)
	}
	if inTarget {
		closeBlock()
	}

	if !found {
		if len(out) > 0 && !strings.HasSuffix(out[len(out)-1], "\n") {
			out[len(out)-1] += "\n"
		}
		out = append(out,
			"\n"+marker+"\n",
			"    HostName "+b.HostName+"\n",
			"    User "+b.User+"\n",
			"    ProxyJump "+b.ProxyJump+"\n")
	}
	return out
}

func writeAtomic(path, content string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*")
	if err != nil {
		return errors.Wrap(err, "sshconfig: create temp file")
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "sshconfig: write temp file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "sshconfig: close temp file")
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "sshconfig: chmod temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "sshconfig: replace config")
	}
	return nil
}
