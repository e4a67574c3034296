package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/folio-dev/folio/internal/changelog"
	"github.com/folio-dev/folio/internal/config"
	"github.com/folio-dev/folio/internal/gitops"
	"github.com/folio-dev/folio/internal/store"
)

// env bundles what every command needs: the resolved data directory, its
// configuration and the snapshot service.
type env struct {
	dir string
	cfg *config.Config
	svc *store.Service
}

func openEnv(dir string) (*env, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("not a folio data directory (run `folio init`?): %w", err)
	}

	return &env{
		dir: absDir,
		cfg: cfg,
		svc: store.NewService(filepath.Join(absDir, cfg.Data.File)),
	}, nil
}

// recordChange captures a successful mutation: commit the data directory
// when git integration is on, then append a change-log entry carrying the
// commit hash. The log itself rides along with the next commit.
func (e *env) recordChange(action, ref, details string) error {
	hash := ""
	if e.cfg.Git.AutoCommit {
		repo := gitops.Repo{
			Dir:         e.dir,
			AuthorName:  e.cfg.Git.AuthorName,
			AuthorEmail: e.cfg.Git.AuthorEmail,
		}
		if repo.IsRepo() {
			h, err := repo.CommitAll(action + ": " + ref)
			if err != nil {
				return fmt.Errorf("committing change: %w", err)
			}
			hash = h
		}
	}

	entry := changelog.Entry{
		Timestamp:  time.Now(),
		Action:     action,
		Ref:        ref,
		Details:    details,
		CommitHash: hash,
	}
	if err := changelog.Append(e.dir, []changelog.Entry{entry}); err != nil {
		return fmt.Errorf("appending change log: %w", err)
	}
	return nil
}
