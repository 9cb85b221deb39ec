package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/VitSay/2048/game/engine"
)

func createTestConfigDir(t *testing.T) string {
	dir, err := os.MkdirTemp("", "config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	return dir
}

func createValidConfig() *engine.GameConfig {
	config := engine.DefaultConfig()
	config.Name = "Test Config"
	config.Description = "Test configuration"
	return config
}

func writeConfigFile(t *testing.T, dir, name string, config *engine.GameConfig) {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, name+".json"), data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
}

func TestNewManager(t *testing.T) {
	t.Run("valid directory", func(t *testing.T) {
		dir := createTestConfigDir(t)
		defer os.RemoveAll(dir)

		classic := createValidConfig()
		classic.Name = "Classic"
		writeConfigFile(t, dir, "classic", classic)

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager.DefaultID() != "classic" {
			t.Errorf("Expected default id classic, got %q", manager.DefaultID())
		}
	})

	t.Run("non-existent directory", func(t *testing.T) {
		if _, err := NewManager("/non/existent/path"); err == nil {
			t.Error("Expected error for non-existent directory")
		}
	})

	t.Run("empty directory falls back to built-in rules", func(t *testing.T) {
		dir := createTestConfigDir(t)
		defer os.RemoveAll(dir)

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("NewManager should succeed even without config files, got error: %v", err)
		}

		defaultConfig := manager.GetDefault()
		if defaultConfig == nil || defaultConfig.GridSize != engine.DefaultGridSize {
			t.Fatalf("Expected built-in default, got %+v", defaultConfig)
		}
		if _, err := manager.LoadConfig(manager.DefaultID()); err != nil {
			t.Errorf("Built-in default should be loadable by id, got %v", err)
		}
	})

	t.Run("first file when classic is missing", func(t *testing.T) {
		dir := createTestConfigDir(t)
		defer os.RemoveAll(dir)

		writeConfigFile(t, dir, "zeta", createValidConfig())
		writeConfigFile(t, dir, "alpha", createValidConfig())

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager.DefaultID() != "alpha" {
			t.Errorf("Expected alpha as default, got %q", manager.DefaultID())
		}
	})
}

func TestManager_LoadConfig(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	writeConfigFile(t, dir, "classic", createValidConfig())

	mini := createValidConfig()
	mini.Name = "Mini"
	mini.GridSize = 3
	mini.TargetValue = 256
	writeConfigFile(t, dir, "mini", mini)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("load existing config", func(t *testing.T) {
		config, err := manager.LoadConfig("mini")
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if config.Name != "Mini" || config.GridSize != 3 {
			t.Errorf("Unexpected config %+v", config)
		}
	})

	t.Run("load with .json extension", func(t *testing.T) {
		config, err := manager.LoadConfig("mini.json")
		if err != nil {
			t.Fatalf("Failed to load config with extension: %v", err)
		}
		if config.Name != "Mini" {
			t.Errorf("Expected config name 'Mini', got '%s'", config.Name)
		}
	})

	t.Run("load from cache", func(t *testing.T) {
		config1, _ := manager.LoadConfig("mini")
		config2, err := manager.LoadConfig("mini")
		if err != nil {
			t.Fatalf("Failed to load config from cache: %v", err)
		}
		if config1 != config2 {
			t.Error("Expected config to be loaded from cache")
		}
	})

	t.Run("load non-existent config", func(t *testing.T) {
		if _, err := manager.LoadConfig("non-existent"); err != ErrConfigNotFound {
			t.Errorf("Expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("reject path traversal", func(t *testing.T) {
		if _, err := manager.LoadConfig("../secrets"); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("Expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("sparse config gets defaults", func(t *testing.T) {
		data := []byte(`{"name": "Sparse", "description": "only names"}`)
		if err := os.WriteFile(filepath.Join(dir, "sparse.json"), data, 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}
		config, err := manager.LoadConfig("sparse")
		if err != nil {
			t.Fatalf("Expected defaults to make the config valid, got %v", err)
		}
		if config.GridSize != 4 || config.TargetValue != 2048 {
			t.Errorf("Expected classic defaults, got %dx%d target %d", config.GridSize, config.GridSize, config.TargetValue)
		}
	})

	t.Run("load invalid config", func(t *testing.T) {
		data := []byte(`{"name": "Broken", "description": "bad target", "target_value": 1000}`)
		if err := os.WriteFile(filepath.Join(dir, "invalid.json"), data, 0644); err != nil {
			t.Fatalf("Failed to write invalid config: %v", err)
		}
		if _, err := manager.LoadConfig("invalid"); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("load malformed JSON", func(t *testing.T) {
		data := []byte(`{"name": "Malformed", invalid json}`)
		if err := os.WriteFile(filepath.Join(dir, "malformed.json"), data, 0644); err != nil {
			t.Fatalf("Failed to write malformed config: %v", err)
		}
		if _, err := manager.LoadConfig("malformed"); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig for malformed JSON, got %v", err)
		}
	})
}

func TestManager_ListConfigs(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	configs := []struct {
		id   string
		name string
	}{
		{"classic", "Classic"},
		{"mini", "Mini"},
		{"big", "Big"},
		{"lenient", "Lenient"},
	}

	for _, cfg := range configs {
		config := createValidConfig()
		config.Name = cfg.name
		config.SpawnOnNoOp = cfg.id == "lenient"
		writeConfigFile(t, dir, cfg.id, config)
	}

	os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("readme"), 0644)
	os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0644)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	configList, err := manager.ListConfigs()
	if err != nil {
		t.Fatalf("Failed to list configs: %v", err)
	}
	if len(configList) != 4 {
		t.Fatalf("Expected 4 configs, got %d", len(configList))
	}

	// Sorted by id
	wantOrder := []string{"big", "classic", "lenient", "mini"}
	for i, info := range configList {
		if info.ConfigID != wantOrder[i] {
			t.Errorf("Position %d: expected %s, got %s", i, wantOrder[i], info.ConfigID)
		}
		if info.SpawnOnNoOp != (info.ConfigID == "lenient") {
			t.Errorf("Config %s: unexpected spawn_on_noop %v", info.ConfigID, info.SpawnOnNoOp)
		}
	}
}

func TestManager_RefreshCache(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	config := createValidConfig()
	config.TargetValue = 1024
	writeConfigFile(t, dir, "classic", config)
	writeConfigFile(t, dir, "changeable", config)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	loaded, _ := manager.LoadConfig("changeable")
	if loaded.TargetValue != 1024 {
		t.Errorf("Expected initial target 1024, got %d", loaded.TargetValue)
	}

	config.TargetValue = 4096
	writeConfigFile(t, dir, "changeable", config)

	// Still cached
	loaded, _ = manager.LoadConfig("changeable")
	if loaded.TargetValue != 1024 {
		t.Errorf("Expected cached target 1024, got %d", loaded.TargetValue)
	}

	if err := manager.RefreshCache(); err != nil {
		t.Fatalf("RefreshCache failed: %v", err)
	}
	loaded, _ = manager.LoadConfig("changeable")
	if loaded.TargetValue != 4096 {
		t.Errorf("Expected reloaded target 4096, got %d", loaded.TargetValue)
	}
}

func TestManager_SaveConfig(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	big := createValidConfig()
	big.Name = "Big"
	big.GridSize = 5
	big.TargetValue = 4096
	if err := manager.SaveConfig("big", big); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "big.json")); err != nil {
		t.Errorf("Expected big.json on disk: %v", err)
	}

	bad := createValidConfig()
	bad.GridSize = 12
	if err := manager.SaveConfig("bad", bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
	if err := manager.SaveConfig("../bad", big); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for unsafe id, got %v", err)
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	writeConfigFile(t, dir, "classic", createValidConfig())
	writeConfigFile(t, dir, "mini", createValidConfig())

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := "classic"
			if i%2 == 0 {
				id = "mini"
			}
			if _, err := manager.LoadConfig(id); err != nil {
				errs <- err
			}
			if _, err := manager.ListConfigs(); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Concurrent access error: %v", err)
	}
}
