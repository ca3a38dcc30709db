package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations builds the message bundle from the embedded catalogs, with
// any active.*.toml files under localesDir layered on top.
func NewTranslations(defaultLang string, localesDir string) (*Translations, error) {
	if defaultLang == "" {
		return nil, fmt.Errorf("default language must not be empty")
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")
	bundle.MustParseMessageFileBytes([]byte(spanishMessages), "active.es.toml")

	if localesDir != "" {
		files, err := filepath.Glob(filepath.Join(localesDir, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}

		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[service_description]
	other = "Forge branches, commits, pull requests and issues on GitHub"

	[pr_created]
	other = "Pull request created successfully"

	[issue_created]
	other = "Issue created successfully"

	[issue_updated]
	other = "Issue updated successfully"

	[issues_listed]
	one = "{{.Count}} issue retrieved"
	other = "{{.Count}} issues retrieved"

	[suggestion_posted]
	other = "Fix suggestion posted successfully"

	[repo_created]
	other = "Repository created successfully"

	[repo_deleted]
	other = "Repository deleted successfully"

	[branch_created]
	other = "Branch created successfully"
	`

var spanishMessages = `
	[service_description]
	other = "Forja ramas, commits, pull requests e issues en GitHub"

	[pr_created]
	other = "Pull request creado exitosamente"

	[issue_created]
	other = "Issue creado exitosamente"

	[issue_updated]
	other = "Issue actualizado exitosamente"

	[issues_listed]
	one = "{{.Count}} issue obtenido"
	other = "{{.Count}} issues obtenidos"

	[suggestion_posted]
	other = "Sugerencia de arreglo publicada exitosamente"

	[repo_created]
	other = "Repositorio creado exitosamente"

	[repo_deleted]
	other = "Repositorio eliminado exitosamente"

	[branch_created]
	other = "Rama creada exitosamente"
	`
