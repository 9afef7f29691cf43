package message

import (
	"fmt"
	"strings"
)

// Locale holds the message templates. Verbs are %s for paths and %d for
// counts.
type Locale struct {
	Name string

	Fallback string

	AddOne  string
	AddMany string

	RemoveOne  string
	RemoveMany string

	RenameOne  string
	RenameMany string

	UpdateStyles     string
	UpdateJavaScript string
	UpdateTests      string
	UpdateDocs       string
	ModifyOne        string

	UpdateMany string
}

var English = Locale{
	Name:             "en",
	Fallback:         "No changes",
	AddOne:           "Add %s",
	AddMany:          "Add %d new files",
	RemoveOne:        "Remove %s",
	RemoveMany:       "Remove %d files",
	RenameOne:        "Rename to %s",
	RenameMany:       "Rename %d files",
	UpdateStyles:     "Update styles",
	UpdateJavaScript: "Update JavaScript logic",
	UpdateTests:      "Update tests",
	UpdateDocs:       "Update documentation",
	ModifyOne:        "Modify %s",
	UpdateMany:       "Update %d files",
}

var French = Locale{
	Name:             "fr",
	Fallback:         "Mise à jour du code",
	AddOne:           "Ajouter %s",
	AddMany:          "Ajouter %d nouveaux fichiers",
	RemoveOne:        "Supprimer %s",
	RemoveMany:       "Supprimer %d fichiers",
	RenameOne:        "Renommer en %s",
	RenameMany:       "Renommer %d fichiers",
	UpdateStyles:     "Mettre à jour les styles",
	UpdateJavaScript: "Mettre à jour la logique JavaScript",
	UpdateTests:      "Mettre à jour les tests",
	UpdateDocs:       "Mettre à jour la documentation",
	ModifyOne:        "Modifier %s",
	UpdateMany:       "Mettre à jour %d fichiers",
}

func ParseLocale(name string) (Locale, error) {

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "en":
		return English, nil
	case "fr":
		return French, nil
	}

	return Locale{}, fmt.Errorf("unknown locale %q", name)
}
