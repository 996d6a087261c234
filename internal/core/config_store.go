package core

import (
	"os"
)

// ConfigFileName is the per-repository configuration file.
const ConfigFileName = ".dco.yml"

// FileConfig mirrors .dco.yml. Pointer fields distinguish "absent" from
// zero value, so the file only overrides what it actually sets.
type FileConfig struct {
	DefaultBranch           *string  `yaml:"default_branch,omitempty"`
	DefaultBranchFromRemote *bool    `yaml:"default_branch_from_remote,omitempty"`
	DefaultRemote           *string  `yaml:"default_remote,omitempty"`
	CheckMergeCommits       *bool    `yaml:"check_merge_commits,omitempty"`
	ExcludeEmails           []string `yaml:"exclude_emails,omitempty"`
}

// FileConfigStore handles .dco.yml I/O at a repository root.
type FileConfigStore struct {
	store *YAMLStore[FileConfig]
}

// NewFileConfigStore creates a store rooted at the repository directory.
// A missing .dco.yml is not an error; Load returns the zero FileConfig.
func NewFileConfigStore(rootDir string) *FileConfigStore {
	return &FileConfigStore{store: NewYAMLStore[FileConfig](rootDir, ConfigFileName, true)}
}

// Load reads and parses .dco.yml
func (s *FileConfigStore) Load() (FileConfig, error) {
	return s.store.Load()
}

// Save writes .dco.yml
func (s *FileConfigStore) Save(cfg FileConfig) error {
	return s.store.Save(cfg)
}

// Path returns the config file path
func (s *FileConfigStore) Path() string {
	return s.store.Path()
}

// Exists reports whether the config file is already present.
func (s *FileConfigStore) Exists() bool {
	_, err := os.Stat(s.store.Path())
	return err == nil
}
