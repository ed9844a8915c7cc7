package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-worldclock/internal/config"
)

// TestI18nIntegrity ensures that every translation key defined in config.go
// actually exists in the locale JSON files.
func TestI18nIntegrity(t *testing.T) {
	keysToCheck := []string{
		config.TKeyWinTitle,
		config.TKeyWinAdd,
		config.TKeyWinSettings,
		config.TKeyMenuClocks,
		config.TKeyMenuAdd,
		config.TKeyMenuSettings,
		config.TKeyTrayCount,
		config.TKeyTrayCountZero,
		config.TKeyBtnAdd,
		config.TKeyBtnSave,
		config.TKeyBtnCancel,
		config.TKeyTabCatalog,
		config.TKeyTabCustom,
		config.TKeyPlhSearch,
		config.TKeyLblName,
		config.TKeyLblAbbr,
		config.TKeyLblOffset,
		config.TKeyHelpOffset,
		config.TKeyLblDST,
		config.TKeyLblDescription,
		config.TKeyLblRegions,
		config.TKeyHelpRegions,
		config.TKeyLblLanguage,
		config.TKeyHelpLanguage,
		config.TKeyLblGeneral,
		config.TKeyLblFooter,
		config.TKeyLblEmptyList,
		config.TKeyLblDaytime,
		config.TKeyLblNighttime,
		config.TKeyErrOffsetNum,
	}

	definedKeys := make(map[string]bool)
	for _, k := range keysToCheck {
		definedKeys[k] = true
	}

	// Every supported language must carry the full key set.
	for _, lang := range config.SupportedLanguages {
		filename := "active." + lang + ".json"

		// Adjust path if running test from internal/ui or root
		path := filepath.Join("locales", filename)
		content, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			path = filepath.Join("..", "..", "internal", "ui", "locales", filename)
			content, err = os.ReadFile(path)
		}
		require.NoErrorf(t, err, "Must load %s", filename)

		var jsonMap map[string]interface{}
		err = json.Unmarshal(content, &jsonMap)
		require.NoErrorf(t, err, "%s must be valid JSON", filename)

		// Verify consistency
		for key := range definedKeys {
			_, exists := jsonMap[key]
			assert.Truef(t, exists, "Key '%s' defined in config.go is missing in %s", key, filename)
		}

		// Check for orphan keys in JSON (keys that exist in JSON but not in Go)
		for jsonKey := range jsonMap {
			if strings.HasPrefix(jsonKey, "_") {
				continue
			}
			if !definedKeys[jsonKey] {
				t.Logf("Warning: Key '%s' exists in %s but is not checked in the test suite (might be unused)", jsonKey, filename)
			}
		}
	}
}
