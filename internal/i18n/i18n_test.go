package i18n

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewTranslations(t *testing.T) {
	t.Run("Should create translations from the embedded catalogs", func(t *testing.T) {
		// act
		trans, err := NewTranslations("en", "")

		// assert
		if err != nil {
			t.Errorf("NewTranslations() should not return an error, got: %v", err)
		}
		if trans == nil {
			t.Error("NewTranslations() should not return nil")
		}
	})

	t.Run("Should fail with empty language", func(t *testing.T) {
		// act
		trans, err := NewTranslations("", "")

		// assert
		if err == nil {
			t.Error("NewTranslations() should return an error for an empty language")
		}
		if trans != nil {
			t.Error("NewTranslations() should return nil when it fails")
		}
	})

	t.Run("Should layer locale files over the embedded catalogs", func(t *testing.T) {
		// arrange
		tmpDir := createTempDir(t)
		defer os.RemoveAll(tmpDir)

		createTestFile(t, tmpDir, "active.en.toml", `
		[pr_created]
		other = "PR forged"`)

		// act
		trans, err := NewTranslations("en", tmpDir)
		if err != nil {
			t.Fatal("test setup failed:", err)
		}

		// assert
		result := trans.GetMessage("pr_created", 0, nil)
		if result != "PR forged" {
			t.Errorf("GetMessage() = %v, want overridden message", result)
		}
	})

	t.Run("Should fail with an invalid locale file", func(t *testing.T) {
		// arrange
		tmpDir := createTempDir(t)
		defer os.RemoveAll(tmpDir)

		createTestFile(t, tmpDir, "active.en.toml", `
		[InvalidSection
		this is not valid TOML`)

		// act
		trans, err := NewTranslations("en", tmpDir)

		// assert
		if err == nil {
			t.Error("NewTranslations() should fail with an invalid TOML file")
		}
		if trans != nil {
			t.Error("NewTranslations() should return nil when it fails")
		}
	})
}

func TestSetLanguage(t *testing.T) {
	t.Run("Should change to a bundled language", func(t *testing.T) {
		// arrange
		trans, err := NewTranslations("en", "")
		if err != nil {
			t.Fatal("test setup failed:", err)
		}

		// act
		err = trans.SetLanguage("es")

		// assert
		if err != nil {
			t.Errorf("SetLanguage() should not return an error, got: %v", err)
		}
		result := trans.GetMessage("pr_created", 0, nil)
		if result != "Pull request creado exitosamente" {
			t.Errorf("GetMessage() after SetLanguage = %v", result)
		}
	})

	t.Run("Should fail with unsupported language", func(t *testing.T) {
		// arrange
		trans, err := NewTranslations("en", "")
		if err != nil {
			t.Fatal("test setup failed:", err)
		}

		// act
		err = trans.SetLanguage("fr")

		// assert
		if err == nil {
			t.Error("SetLanguage() should return an error for an unsupported language")
		}
	})
}

func TestGetMessage(t *testing.T) {
	t.Run("Should get singular message correctly", func(t *testing.T) {
		// arrange
		trans, err := NewTranslations("en", "")
		if err != nil {
			t.Fatal("test setup failed:", err)
		}

		// act
		result := trans.GetMessage("issues_listed", 1, map[string]interface{}{"Count": 1})

		// assert
		expected := "1 issue retrieved"
		if result != expected {
			t.Errorf("GetMessage() = %v, want %v", result, expected)
		}
	})

	t.Run("Should get plural message correctly", func(t *testing.T) {
		// arrange
		trans, err := NewTranslations("en", "")
		if err != nil {
			t.Fatal("test setup failed:", err)
		}

		// act
		result := trans.GetMessage("issues_listed", 3, map[string]interface{}{"Count": 3})

		// assert
		expected := "3 issues retrieved"
		if result != expected {
			t.Errorf("GetMessage() = %v, want %v", result, expected)
		}
	})

	t.Run("Should get the english success messages", func(t *testing.T) {
		// arrange
		trans, err := NewTranslations("en", "")
		if err != nil {
			t.Fatal("test setup failed:", err)
		}

		tests := map[string]string{
			"pr_created":        "Pull request created successfully",
			"issue_created":     "Issue created successfully",
			"issue_updated":     "Issue updated successfully",
			"suggestion_posted": "Fix suggestion posted successfully",
			"repo_created":      "Repository created successfully",
			"repo_deleted":      "Repository deleted successfully",
			"branch_created":    "Branch created successfully",
		}

		for id, expected := range tests {
			// act
			result := trans.GetMessage(id, 0, nil)

			// assert
			if result != expected {
				t.Errorf("GetMessage(%q) = %v, want %v", id, result, expected)
			}
		}
	})

	t.Run("Should handle missing messages", func(t *testing.T) {
		// arrange
		trans, err := NewTranslations("en", "")
		if err != nil {
			t.Fatal("test setup failed:", err)
		}

		// act
		result := trans.GetMessage("NonExistent", 1, nil)

		// assert
		expected := "Translation missing: NonExistent"
		if result != expected {
			t.Errorf("GetMessage() = %v, want %v", result, expected)
		}
	})
}

func createTempDir(t *testing.T) string {
	tmpDir, err := os.MkdirTemp("", "i18n_test")
	if err != nil {
		t.Fatal("could not create temp dir:", err)
	}
	return tmpDir
}

func createTestFile(t *testing.T, dir, filename, content string) {
	err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644)
	if err != nil {
		t.Fatal("could not create test file:", err)
	}
}
