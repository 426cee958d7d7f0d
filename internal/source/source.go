// Package source reads code snippets from files, streams and git history
// and prepares them for rendering.
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	snaperrors "github.com/alexisbeaulieu97/snapcode/pkg/errors"
)

// maxSnippetBytes bounds how much code a single read accepts.
const maxSnippetBytes = 4 << 20

// Snippet is code plus where it came from.
type Snippet struct {
	Code   string
	Name   string
	Origin string
}

// FromFile reads a snippet from disk.
func FromFile(path string) (Snippet, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snippet{}, snaperrors.NewSourceError(path, err)
	}
	defer f.Close()

	s, err := FromReader(f, filepath.Base(path))
	if err != nil {
		return Snippet{}, snaperrors.NewSourceError(path, err)
	}
	s.Origin = path
	return s, nil
}

// FromReader reads a snippet from r, typically stdin.
func FromReader(r io.Reader, name string) (Snippet, error) {
	b, err := io.ReadAll(io.LimitReader(r, maxSnippetBytes+1))
	if err != nil {
		return Snippet{}, snaperrors.NewSourceError("stdin", err)
	}
	if len(b) > maxSnippetBytes {
		return Snippet{}, snaperrors.NewSourceError("stdin", fmt.Errorf("input exceeds %d bytes", maxSnippetBytes))
	}
	return Snippet{Code: string(b), Name: name, Origin: "stdin"}, nil
}

// FromGit reads file as it exists at rev in the repository containing
// repoPath. rev accepts any revision expression go-git resolves, such as
// HEAD~2, a branch, a tag or a hash. file may be absolute or relative to
// repoPath.
func FromGit(repoPath, rev, file string) (Snippet, error) {
	origin := fmt.Sprintf("git %s:%s", rev, file)
	if repoPath == "" {
		repoPath = "."
	}
	if rev == "" {
		rev = "HEAD"
	}

	absRepo, err := filepath.Abs(repoPath)
	if err != nil {
		return Snippet{}, snaperrors.NewSourceError(origin, err)
	}

	repo, err := git.PlainOpenWithOptions(absRepo, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Snippet{}, snaperrors.NewSourceError(origin, fmt.Errorf("open repository: %w", err))
	}

	wt, err := repo.Worktree()
	if err != nil {
		return Snippet{}, snaperrors.NewSourceError(origin, err)
	}

	rel, err := repoRelative(wt.Filesystem.Root(), absRepo, file)
	if err != nil {
		return Snippet{}, snaperrors.NewSourceError(origin, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return Snippet{}, snaperrors.NewSourceError(origin, fmt.Errorf("resolve %s: %w", rev, err))
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return Snippet{}, snaperrors.NewSourceError(origin, err)
	}

	f, err := commit.File(rel)
	if err != nil {
		return Snippet{}, snaperrors.NewSourceError(origin, fmt.Errorf("%s at %s: %w", rel, hash.String()[:7], err))
	}

	contents, err := f.Contents()
	if err != nil {
		return Snippet{}, snaperrors.NewSourceError(origin, err)
	}

	return Snippet{Code: contents, Name: filepath.Base(rel), Origin: origin}, nil
}

func repoRelative(root, base, file string) (string, error) {
	abs := file
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(base, file)
	}

	rootAbs, err := filepath.EvalSymlinks(root)
	if err != nil {
		rootAbs = root
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		abs = filepath.Join(dir, filepath.Base(abs))
	}

	rel, err := filepath.Rel(rootAbs, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside the repository", file)
	}
	return filepath.ToSlash(rel), nil
}

// Normalize converts line endings to LF, drops a UTF-8 byte order mark and,
// when tabWidth is positive, expands tabs to the next tab stop.
func Normalize(code string, tabWidth int) string {
	code = strings.TrimPrefix(code, "\ufeff")
	code = strings.ReplaceAll(code, "\r\n", "\n")
	code = strings.ReplaceAll(code, "\r", "\n")
	if tabWidth <= 0 || !strings.Contains(code, "\t") {
		return code
	}

	var b strings.Builder
	b.Grow(len(code))
	col := 0
	for _, r := range code {
		switch r {
		case '\t':
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// SelectLines returns the 1-based inclusive range spec of code. Accepted
// forms are "n", "start:end", "start:" and ":end". An end past the last
// line is clamped.
func SelectLines(code, spec string) (string, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return code, nil
	}

	lines := strings.Split(code, "\n")
	start, end, err := parseRange(spec, len(lines))
	if err != nil {
		return "", snaperrors.NewValidationError("lines", err.Error(), err)
	}
	return strings.Join(lines[start-1:end], "\n"), nil
}

func parseRange(spec string, count int) (int, int, error) {
	startStr, endStr, isRange := strings.Cut(spec, ":")
	if !isRange {
		endStr = startStr
	}

	start, end := 1, count
	var err error
	if startStr != "" {
		if start, err = strconv.Atoi(startStr); err != nil {
			return 0, 0, fmt.Errorf("invalid line range %q", spec)
		}
	}
	if endStr != "" {
		if end, err = strconv.Atoi(endStr); err != nil {
			return 0, 0, fmt.Errorf("invalid line range %q", spec)
		}
	}

	switch {
	case start < 1 || end < 1:
		return 0, 0, fmt.Errorf("line numbers start at 1, got %q", spec)
	case start > end:
		return 0, 0, fmt.Errorf("range %q ends before it starts", spec)
	case start > count:
		return 0, 0, fmt.Errorf("range %q starts past the last line (%d)", spec, count)
	}
	return start, min(end, count), nil
}
