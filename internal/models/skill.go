// Package models defines the core data structures for skillsm.
package models

import "fmt"

// CatalogEntry is one ranked skill as published by the catalog.
// SkillID is only unique within SourceRepo.
type CatalogEntry struct {
	SourceRepo            string `json:"source"`  // owner/repo
	SkillID               string `json:"skillId"` // folder or frontmatter name
	DisplayName           string `json:"name"`
	InstallCount          int64  `json:"installs"`
	InstallCountYesterday *int64 `json:"installsYesterday,omitempty"`
	ChangeDelta           *int64 `json:"change,omitempty"`
}

// RepoURL returns the GitHub URL of the entry's source repository.
func (e CatalogEntry) RepoURL() string {
	return "https://github.com/" + e.SourceRepo
}

// InstallCommand returns the shell command that installs this entry.
func (e CatalogEntry) InstallCommand() string {
	return fmt.Sprintf("npx skills add %s --skill %s", e.RepoURL(), e.SkillID)
}

// Delta returns the change delta, treating an absent value as 0.
func (e CatalogEntry) Delta() int64 {
	if e.ChangeDelta == nil {
		return 0
	}
	return *e.ChangeDelta
}
