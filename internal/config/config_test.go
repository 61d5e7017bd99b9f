package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitializeLoadsDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyStoragePath); got != "" {
		t.Fatalf("expected default %s to be empty, got %q", KeyStoragePath, got)
	}
	if got := GetString(KeyStartPage); got != DefaultStartPage {
		t.Fatalf("expected default %s to be %q, got %q", KeyStartPage, DefaultStartPage, got)
	}
	if GetBool(KeyDebug) {
		t.Fatalf("expected default %s to be false", KeyDebug)
	}
	if got := GetString(KeyAnalyticsEndpoint); got != "" {
		t.Fatalf("expected default %s to be empty, got %q", KeyAnalyticsEndpoint, got)
	}
}

func TestProjectConfigOverridesUser(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	mustMkdir(t, filepath.Join(projectDir, ".inkwell"))
	projectCfg := filepath.Join(projectDir, ".inkwell", "config.yaml")
	writeFile(t, projectCfg, `
page: field-notes
storage:
  path: /project/state.db
`)

	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
page: about
storage:
  path: /user/state.db
`)

	if err := Initialize(
		WithWorkingDir(projectDir),
		WithUserConfig(userCfg),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyStartPage); got != "field-notes" {
		t.Fatalf("expected project config to win for %s, got %q", KeyStartPage, got)
	}
	if got := GetString(KeyStoragePath); got != "/project/state.db" {
		t.Fatalf("expected project storage path, got %q", got)
	}
}

func TestEnvironmentOverridesFiles(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, "page: about\n")

	t.Setenv("INK_PAGE", "env-page")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyStartPage); got != "env-page" {
		t.Fatalf("expected env var to win for %s, got %q", KeyStartPage, got)
	}
}

func TestApplyOverridesWinsOverEverything(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, "page: about\n")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if err := ApplyOverrides(map[string]any{KeyStartPage: "flag-page"}); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}

	if got := GetString(KeyStartPage); got != "flag-page" {
		t.Fatalf("expected flag override to win for %s, got %q", KeyStartPage, got)
	}
}

func TestMergeConfigFileRejectsDirectory(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	dirAsConfig := filepath.Join(tmp, "config.yaml")
	mustMkdir(t, dirAsConfig)

	err := Initialize(WithWorkingDir(tmp), WithUserConfig(dirAsConfig))
	if err == nil {
		t.Fatalf("expected error when user config path is a directory")
	}
}

func TestEmptyConfigFileIsIgnored(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, "   \n")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error for empty config: %v", err)
	}
	if got := GetString(KeyStartPage); got != DefaultStartPage {
		t.Fatalf("expected defaults after empty config, got %q", got)
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
