package config

import (
	"fmt"
	os2 "os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/cometbft/cometbft/libs/os"

	"github.com/tessellated-io/txclient/log"
)

// ResolveFile expands a short path (ex. ~/.txclient/config.yaml => /home/tessellated/.txclient/config.yaml)
// and checks that it exists.
func ResolveFile(configFile string) (string, error) {
	expandedConfigFile, err := ExpandHomeDir(configFile)
	if err != nil {
		return "", err
	}

	if !os.FileExists(expandedConfigFile) {
		return "", fmt.Errorf("failed to load config file at: %s", configFile)
	}
	return expandedConfigFile, nil
}

func CreateDirectoryIfNeeded(configurationDirectory string, logger *log.Logger) error {
	expanded, err := ExpandHomeDir(configurationDirectory)
	if err != nil {
		return err
	}

	exists, err := folderExists(expanded)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	err = os2.MkdirAll(expanded, 0o755)
	if err != nil {
		return err
	}

	logger.Info("created configuration directory", "configuration_dir", configurationDirectory)
	return nil
}

// SafeWrite writes contents to file unless the file already exists. It reports whether it wrote.
func SafeWrite(file string, contents []byte, logger *log.Logger) (bool, error) {
	expanded, err := ExpandHomeDir(file)
	if err != nil {
		return false, err
	}

	if os.FileExists(expanded) {
		logger.Warn("skipping overwriting existing file", "file", expanded)
		return false, nil
	}

	if err := CreateDirectoryIfNeeded(filepath.Dir(expanded), logger); err != nil {
		return false, err
	}

	err = os.WriteFile(expanded, contents, 0o600)
	if err != nil {
		return false, err
	}
	logger.Info("wrote file", "file", expanded)
	return true, nil
}

func ExpandHomeDir(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get user's home directory: %w", err)
	}
	return strings.Replace(path, "~", usr.HomeDir, 1), nil
}

func folderExists(folderPath string) (bool, error) {
	fileInfo, err := os2.Stat(folderPath)
	if err != nil {
		if os2.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return fileInfo.IsDir(), nil
}
