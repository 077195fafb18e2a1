package ilp

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
)

// ConfigPath points to an optional JSON file mapping solver names to
// executable paths, for installations where the binaries are not on PATH.
var ConfigPath = "config.json"

func getExecutablePath(solver string) string {
	bytes, err := os.ReadFile(ConfigPath)
	if err != nil {
		return solver
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return solver
	}

	var config map[string]string
	mapstructure.Decode(inputJson, &config)

	path, ok := config[solver]
	if !ok {
		return solver
	}
	return path
}

// writeModelFile materializes the model as an .lp file in a fresh temporary
// directory. The caller removes the directory when the solve finishes.
func writeModelFile(model Model) (dir string, path string, err error) {
	dir, err = os.MkdirTemp("", "ilp")
	if err != nil {
		return "", "", fmt.Errorf("cannot create solver scratch directory: %w", err)
	}
	path = filepath.Join(dir, "model.lp")
	if err := os.WriteFile(path, []byte(model.ToLP()), 0o644); err != nil {
		os.RemoveAll(dir)
		return "", "", fmt.Errorf("cannot write model file: %w", err)
	}
	return dir, path, nil
}
