package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GitInfoAdapter implements domain.GitInfo using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

// IsGitRepo reports whether path is a git repository with a resolvable HEAD.
// A freshly initialized repository has no commit to stamp a report with, so
// it does not count.
func (g *GitInfoAdapter) IsGitRepo(path string) bool {
	_, err := g.head(path)
	return err == nil
}

// CommitHash returns the hash of the commit HEAD points at.
func (g *GitInfoAdapter) CommitHash(path string) (string, error) {
	ref, err := g.head(path)
	if err != nil {
		return "", err
	}
	return ref.Hash().String(), nil
}

func (g *GitInfoAdapter) head(path string) (*plumbing.Reference, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	ref, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}
	return ref, nil
}
