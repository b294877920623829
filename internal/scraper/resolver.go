package scraper

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/asteroid-belt/skillsm/internal/log"
)

// SkillFileName is the detail document each skill folder carries.
const SkillFileName = "SKILL.md"

var (
	// branches are probed in order for every path.
	branches = []string{"main", "master"}

	// skillsDirs are the conventional homes of skill folders.
	skillsDirs = []string{"skills", ".skills", ".claude/skills"}
)

const (
	pluginsDir       = "plugins"
	claudePluginsDir = "plugins/claude"
)

// Lister lists the immediate subdirectories of a repository directory.
type Lister interface {
	ListDirs(ctx context.Context, source, dir, branch string) ([]string, error)
}

// Resolver locates a skill's SKILL.md across the directory layouts skill
// repositories use in practice. Every strategy is a bounded enumeration;
// a failed probe moves on to the next candidate.
type Resolver struct {
	fetcher    Fetcher
	lister     Lister
	rawBaseURL string
}

// NewResolver creates a resolver that reads raw files below rawBaseURL
// (e.g. https://raw.githubusercontent.com) and lists directories with lister.
func NewResolver(fetcher Fetcher, lister Lister, rawBaseURL string) *Resolver {
	return &Resolver{
		fetcher:    fetcher,
		lister:     lister,
		rawBaseURL: strings.TrimSuffix(rawBaseURL, "/"),
	}
}

// Resolve returns the SKILL.md document for skillID in source. The search
// order is:
//
//  1. direct paths under skills/, .skills/ and .claude/skills/ on main and master
//  2. every folder of those directories whose frontmatter name equals skillID
//  3. plugins/<plugin>/skills/<skillID> then plugins/claude/<plugin>/skills/<skillID>
//
// When all three fail the error wraps ErrNotFound.
func (r *Resolver) Resolve(ctx context.Context, source, skillID string) (string, error) {
	if doc, ok, err := r.resolveDirect(ctx, source, skillID); err != nil || ok {
		return doc, err
	}

	if doc, ok, err := r.resolveByFrontmatter(ctx, source, skillID); err != nil || ok {
		return doc, err
	}

	for _, branch := range branches {
		for _, root := range []string{pluginsDir, claudePluginsDir} {
			doc, ok, err := r.resolvePlugins(ctx, source, branch, root, skillID)
			if err != nil || ok {
				return doc, err
			}
		}
	}

	log.Warn("skill document not found", "source", source, "skill", skillID)
	return "", fmt.Errorf("%w: %s for %s/%s", ErrNotFound, SkillFileName, source, skillID)
}

func (r *Resolver) resolveDirect(ctx context.Context, source, skillID string) (string, bool, error) {
	for _, dir := range skillsDirs {
		for _, branch := range branches {
			doc, ok, err := r.fetchDoc(ctx, source, branch, path.Join(dir, skillID, SkillFileName))
			if err != nil || ok {
				return doc, ok, err
			}
		}
	}
	return "", false, nil
}

// resolveByFrontmatter covers repositories whose folder names differ from
// the registered skill id.
func (r *Resolver) resolveByFrontmatter(ctx context.Context, source, skillID string) (string, bool, error) {
	for _, dir := range skillsDirs {
		for _, branch := range branches {
			folders, err := r.listDirs(ctx, source, dir, branch)
			if err != nil {
				return "", false, err
			}
			for _, folder := range folders {
				doc, ok, err := r.fetchDoc(ctx, source, branch, path.Join(dir, folder, SkillFileName))
				if err != nil {
					return "", false, err
				}
				if ok && MatchesSkillID(doc, skillID) {
					return doc, true, nil
				}
			}
		}
	}
	return "", false, nil
}

func (r *Resolver) resolvePlugins(ctx context.Context, source, branch, root, skillID string) (string, bool, error) {
	plugins, err := r.listDirs(ctx, source, root, branch)
	if err != nil {
		return "", false, err
	}

	for _, plugin := range plugins {
		skillsPath := path.Join(root, plugin, "skills")
		folders, err := r.listDirs(ctx, source, skillsPath, branch)
		if err != nil {
			return "", false, err
		}
		for _, folder := range folders {
			if folder != skillID {
				continue
			}
			doc, ok, err := r.fetchDoc(ctx, source, branch, path.Join(skillsPath, folder, SkillFileName))
			if err != nil || ok {
				return doc, ok, err
			}
		}
	}
	return "", false, nil
}

// listDirs treats a failed listing as an empty directory. Only context
// cancellation is returned as an error.
func (r *Resolver) listDirs(ctx context.Context, source, dir, branch string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	folders, err := r.lister.ListDirs(ctx, source, dir, branch)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.Debug("listing skipped", "source", source, "dir", dir, "branch", branch, "err", err)
		return nil, nil
	}
	return folders, nil
}

// fetchDoc reports ok=false for any failed or non-success fetch. Only
// context cancellation is returned as an error.
func (r *Resolver) fetchDoc(ctx context.Context, source, branch, filePath string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	url := r.RawURL(source, branch, filePath)
	resp, err := r.fetcher.Get(ctx, url, nil)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", false, ctxErr
		}
		log.Debug("probe failed", "url", url, "err", err)
		return "", false, nil
	}
	if !resp.OK() {
		log.Debug("probe missed", "url", url, "status", resp.StatusCode)
		return "", false, nil
	}

	log.Debug("probe hit", "url", url)
	return string(resp.Body), true, nil
}

// RawURL returns the raw-content URL of filePath in source at branch.
func (r *Resolver) RawURL(source, branch, filePath string) string {
	return fmt.Sprintf("%s/%s/%s/%s", r.rawBaseURL, source, branch, filePath)
}
