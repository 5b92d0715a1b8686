package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/nybbler/internal/constants"
	"github.com/julianstephens/nybbler/internal/errors"
	"github.com/julianstephens/nybbler/internal/logger"
)

const timestampFormat = "20060102-150405"

// MaxBackups is the maximum number of backups to keep
const MaxBackups = constants.MaxBackups

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Seq       int // disambiguates backups taken within the same second
	Size      int64
}

// VerifyFunc checks that a file holds a readable save record.
type VerifyFunc func(path string) error

// Manager handles backup operations for one save file.
// Backups are byte-for-byte copies so that a damaged save can be kept for recovery.
type Manager struct {
	savePath  string
	backupDir string
	suffix    string
	verify    VerifyFunc
	now       func() time.Time
}

// NewManager creates a backup manager for savePath. verify may be nil.
func NewManager(savePath string, verify VerifyFunc) *Manager {
	return &Manager{
		savePath:  savePath,
		backupDir: filepath.Join(filepath.Dir(savePath), constants.BackupDirName),
		suffix:    filepath.Ext(savePath),
		verify:    verify,
		now:       time.Now,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// CreateBackup copies the current save file into the backup directory.
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// createBackup copies the save file. skipRotation is set during restore so the
// pre-restore copy cannot push the backup being restored out of the window.
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", errors.Persistence("backup", m.backupDir, fmt.Errorf("failed to create backup directory: %w", err))
	}

	if _, err := os.Stat(m.savePath); os.IsNotExist(err) {
		return "", errors.Persistence("backup", m.savePath, fmt.Errorf("save file does not exist"))
	}

	timestamp := m.now().Format(timestampFormat)
	backupPath := filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+m.suffix)

	for seq := 1; ; seq++ {
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			break
		}
		if seq > 100 {
			return "", errors.Persistence("backup", m.backupDir, fmt.Errorf("failed to generate unique backup filename"))
		}
		backupPath = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, timestamp, seq, m.suffix))
	}

	if err := copyFile(m.savePath, backupPath); err != nil {
		return "", errors.Persistence("backup", backupPath, fmt.Errorf("failed to copy save file: %w", err))
	}
	logger.Info("Created backup", "path", backupPath)

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			logger.Warn("Failed to rotate old backups", "error", err)
		}
	}

	return backupPath, nil
}

// ListBackups returns all backups, newest first.
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, m.suffix) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), m.suffix)
		seq := 0
		// A counter, when present, follows the HHMMSS part: YYYYMMDD-HHMMSS-N
		if parts := strings.Split(stamp, "-"); len(parts) == 3 {
			n, err := strconv.Atoi(parts[2])
			if err != nil {
				continue
			}
			seq = n
			stamp = parts[0] + "-" + parts[1]
		}

		timestamp, err := time.ParseInLocation(timestampFormat, stamp, time.Local)
		if err != nil {
			continue
		}

		path := filepath.Join(m.backupDir, name)
		info, err := entry.Info()
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Path:      path,
			Timestamp: timestamp,
			Seq:       seq,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		if !backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Timestamp.After(backups[j].Timestamp)
		}
		return backups[i].Seq > backups[j].Seq
	})

	return backups, nil
}

// rotateBackups removes old backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}

	return nil
}

// RestoreBackup replaces the save file with a backup. The current save, if any,
// is backed up first.
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return errors.Persistence("restore", backupPath, fmt.Errorf("backup file does not exist"))
	}

	if m.verify != nil {
		if err := m.verify(backupPath); err != nil {
			return errors.Persistence("restore", backupPath, fmt.Errorf("backup file is corrupted or invalid: %w", err))
		}
	}

	if _, err := os.Stat(m.savePath); err == nil {
		currentBackup, err := m.createBackup(true)
		if err != nil {
			return fmt.Errorf("failed to backup current save before restore: %w", err)
		}
		logger.Info("Backed up current save before restore", "path", currentBackup)
	}

	tempPath := m.savePath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return errors.Persistence("restore", backupPath, fmt.Errorf("failed to copy backup file: %w", err))
	}

	if err := os.Rename(tempPath, m.savePath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			logger.Warn("Failed to remove temporary file", "path", tempPath, "error", removeErr)
		}
		return errors.Persistence("restore", m.savePath, err)
	}

	return nil
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}
