// Package gitrepo reads working tree changes without shelling out to git.
package gitrepo

import (
	"errors"
	"fmt"
	"sort"

	"commit-assistant/internal/status"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Records returns the staged changes of the repository at path, sorted by
// path. Untracked and unstaged files are ignored, like `git commit` would.
func Records(path string) ([]status.ChangeRecord, error) {

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("worktree: %w", err)
	}

	st, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("worktree status: %w", err)
	}

	var records []status.ChangeRecord

	for file, fs := range st {

		rec := status.ChangeRecord{Path: file}

		switch fs.Staging {
		case git.Modified:
			rec.Kind = status.Modified
		case git.Added:
			rec.Kind = status.Added
		case git.Deleted:
			rec.Kind = status.Deleted
		default:
			continue
		}

		records = append(records, rec)
	}

	// Status never reports renames; recover them from content hashes.
	records, err = pairRenames(repo, records)
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Path < records[j].Path
	})

	return records, nil
}

// Status renders the staged changes of the repository at path as a status
// report.
func Status(path string) (string, error) {

	records, err := Records(path)
	if err != nil {
		return "", err
	}

	return status.Render(records), nil
}

// pairRenames folds a deleted HEAD file and an added index entry with the
// same blob into one Renamed record. Pairing follows path order.
func pairRenames(repo *git.Repository, records []status.ChangeRecord) ([]status.ChangeRecord, error) {

	var deleted, added []int
	for i, r := range records {
		switch r.Kind {
		case status.Deleted:
			deleted = append(deleted, i)
		case status.Added:
			added = append(added, i)
		}
	}
	if len(deleted) == 0 || len(added) == 0 {
		return records, nil
	}

	head, err := headTree(repo)
	if err != nil {
		return nil, err
	}
	if head == nil {
		return records, nil
	}

	idx, err := repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}

	byPath := func(ids []int) {
		sort.Slice(ids, func(i, j int) bool {
			return records[ids[i]].Path < records[ids[j]].Path
		})
	}
	byPath(deleted)
	byPath(added)

	drop := make(map[int]bool)

	for _, d := range deleted {

		f, err := head.File(records[d].Path)
		if err != nil {
			continue
		}

		for _, a := range added {
			if drop[a] {
				continue
			}

			e, err := idx.Entry(records[a].Path)
			if err != nil || e.Hash != f.Hash {
				continue
			}

			records[d] = status.ChangeRecord{
				Kind:         status.Renamed,
				Path:         records[d].Path,
				RenameTarget: records[a].Path,
			}
			drop[a] = true
			break
		}
	}

	out := records[:0]
	for i, r := range records {
		if !drop[i] {
			out = append(out, r)
		}
	}

	return out, nil
}

// headTree returns nil when the repository has no commit yet.
func headTree(repo *git.Repository) (*object.Tree, error) {

	ref, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("read HEAD commit: %w", err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("read HEAD tree: %w", err)
	}

	return tree, nil
}
