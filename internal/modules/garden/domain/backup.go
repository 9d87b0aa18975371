package domain

import (
	"sort"
	"time"
)

const (
	BackupPrefix = "garden_backup_"
	BackupSuffix = ".json"
)

type Backup struct {
	Name    string
	ModTime time.Time
	Size    int64
}

// SortNewestFirst orders backups by modification time, newest first, breaking
// ties by name so equal mtimes stay deterministic.
func SortNewestFirst(backups []Backup) {
	sort.SliceStable(backups, func(i, j int) bool {
		if !backups[i].ModTime.Equal(backups[j].ModTime) {
			return backups[i].ModTime.After(backups[j].ModTime)
		}
		return backups[i].Name > backups[j].Name
	})
}

// Expired returns the backups beyond the newest keep entries.
func Expired(backups []Backup, keep int) []Backup {
	sorted := append([]Backup(nil), backups...)
	SortNewestFirst(sorted)
	if keep < 0 {
		keep = 0
	}
	if len(sorted) <= keep {
		return nil
	}
	expired := sorted[keep:]
	// oldest first
	for i, j := 0, len(expired)-1; i < j; i, j = i+1, j-1 {
		expired[i], expired[j] = expired[j], expired[i]
	}
	return expired
}
