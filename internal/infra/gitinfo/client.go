// Package gitinfo describes the git repository a frontend project lives in.
package gitinfo

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/fitcoach/start-frontend/internal/domain"
)

const shortHashLen = 7

// Client implements domain.RepoInspector using go-git.
type Client struct{}

// NewClient creates a new Client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.RepoInspector.
var _ domain.RepoInspector = (*Client)(nil)

// Describe opens the repository enclosing dir, searching parent directories.
func (c *Client) Describe(dir string) (*domain.RepoInfo, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}

	info := &domain.RepoInfo{}
	if wt, err := repo.Worktree(); err == nil {
		info.Root = wt.Filesystem.Root()
	}

	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		// Unborn branch: no commits yet.
		return info, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}
	info.Head = head.Hash().String()[:shortHashLen]
	return info, nil
}
