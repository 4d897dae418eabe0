package ui

import "github.com/ytget/quizdesk/internal/crud"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyNew                 = "new"
	KeyRefresh             = "refresh"
	KeyEdit                = "edit"
	KeyRemove              = "remove"
	KeyColumnID            = "column_id"
	KeyColumnDescription   = "column_description"
	KeyColumnCorrect       = "column_correct"
	KeyColumnQuestion      = "column_question"
	KeyFormTitle           = "form_title"
	KeyFormDescription     = "form_description"
	KeyFormCorrect         = "form_correct"
	KeyFormQuestion        = "form_question"
	KeySelectQuestion      = "select_question"
	KeyDescriptionRequired = "description_required"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeySettings            = "settings"
	KeyFile                = "file"
	KeyLanguage            = "language"
	KeyDatabasePath        = "database_path"
	KeyLogLevel            = "log_level"
	KeySettingsSaved       = "settings_saved"
	KeySettingsRestart     = "settings_restart"
	KeyConfirmTitle        = "confirm_title"
	KeyConfirmRemove       = "confirm_remove"
	KeyErrorListing        = "error_listing"
	KeyErrorRemoving       = "error_removing"
	KeyErrorSaving         = "error_saving"
	KeyErrorLoadingView    = "error_loading_view"
	KeyNoRecords           = "no_records"
	KeyYes                 = "yes"
	KeyNo                  = "no"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"pt": "Português",
		"ru": "Русский",
	}
}

// Messages returns the controller and editor titles in the current language
func (l *Localization) Messages() crud.Messages {
	return crud.Messages{
		ConfirmTitle:     l.GetText(KeyConfirmTitle),
		ConfirmRemove:    l.GetText(KeyConfirmRemove),
		ListErrorTitle:   l.GetText(KeyErrorListing),
		RemoveErrorTitle: l.GetText(KeyErrorRemoving),
		SaveErrorTitle:   l.GetText(KeyErrorSaving),
		LoadErrorTitle:   l.GetText(KeyErrorLoadingView),
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "Quiz Alternatives",
		KeyNew:                 "New",
		KeyRefresh:             "Refresh",
		KeyEdit:                "edit",
		KeyRemove:              "remove",
		KeyColumnID:            "Id",
		KeyColumnDescription:   "Description",
		KeyColumnCorrect:       "Correct",
		KeyColumnQuestion:      "Question",
		KeyFormTitle:           "Enter the alternative content",
		KeyFormDescription:     "Description",
		KeyFormCorrect:         "Correct answer",
		KeyFormQuestion:        "Question",
		KeySelectQuestion:      "Select a question",
		KeyDescriptionRequired: "Field can't be empty",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeySettings:            "Settings",
		KeyFile:                "File",
		KeyLanguage:            "Language",
		KeyDatabasePath:        "Database file",
		KeyLogLevel:            "Log level",
		KeySettingsSaved:       "Settings saved.",
		KeySettingsRestart:     "Database and log level changes apply after restart.",
		KeyConfirmTitle:        "Confirmation",
		KeyConfirmRemove:       "Are you sure you want to delete?",
		KeyErrorListing:        "Error loading alternatives",
		KeyErrorRemoving:       "Error removing object",
		KeyErrorSaving:         "Error saving object",
		KeyErrorLoadingView:    "Error loading view",
		KeyNoRecords:           "No alternatives yet",
		KeyYes:                 "Yes",
		KeyNo:                  "No",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "Alternativas do Quiz",
		KeyNew:                 "Novo",
		KeyRefresh:             "Atualizar",
		KeyEdit:                "editar",
		KeyRemove:              "remover",
		KeyColumnID:            "Id",
		KeyColumnDescription:   "Descrição",
		KeyColumnCorrect:       "Correta",
		KeyColumnQuestion:      "Questão",
		KeyFormTitle:           "Entre com o conteúdo da alternativa",
		KeyFormDescription:     "Descrição",
		KeyFormCorrect:         "Resposta correta",
		KeyFormQuestion:        "Questão",
		KeySelectQuestion:      "Selecione uma questão",
		KeyDescriptionRequired: "O campo não pode ser vazio",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeySettings:            "Configurações",
		KeyFile:                "Arquivo",
		KeyLanguage:            "Idioma",
		KeyDatabasePath:        "Arquivo do banco",
		KeyLogLevel:            "Nível de log",
		KeySettingsSaved:       "Configurações salvas.",
		KeySettingsRestart:     "Mudanças no banco e no nível de log valem após reiniciar.",
		KeyConfirmTitle:        "Confirmação",
		KeyConfirmRemove:       "Tem certeza que deseja deletar?",
		KeyErrorListing:        "Erro ao carregar alternativas",
		KeyErrorRemoving:       "Erro ao remover objeto",
		KeyErrorSaving:         "Erro ao salvar objeto",
		KeyErrorLoadingView:    "Erro ao carregar a tela",
		KeyNoRecords:           "Nenhuma alternativa ainda",
		KeyYes:                 "Sim",
		KeyNo:                  "Não",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "Варианты ответов",
		KeyNew:                 "Новый",
		KeyRefresh:             "Обновить",
		KeyEdit:                "изменить",
		KeyRemove:              "удалить",
		KeyColumnID:            "Id",
		KeyColumnDescription:   "Описание",
		KeyColumnCorrect:       "Верный",
		KeyColumnQuestion:      "Вопрос",
		KeyFormTitle:           "Введите содержание варианта",
		KeyFormDescription:     "Описание",
		KeyFormCorrect:         "Верный ответ",
		KeyFormQuestion:        "Вопрос",
		KeySelectQuestion:      "Выберите вопрос",
		KeyDescriptionRequired: "Поле не может быть пустым",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeySettings:            "Настройки",
		KeyFile:                "Файл",
		KeyLanguage:            "Язык",
		KeyDatabasePath:        "Файл базы данных",
		KeyLogLevel:            "Уровень логов",
		KeySettingsSaved:       "Настройки сохранены.",
		KeySettingsRestart:     "Изменения базы и уровня логов применятся после перезапуска.",
		KeyConfirmTitle:        "Подтверждение",
		KeyConfirmRemove:       "Вы уверены, что хотите удалить?",
		KeyErrorListing:        "Ошибка загрузки вариантов",
		KeyErrorRemoving:       "Ошибка удаления объекта",
		KeyErrorSaving:         "Ошибка сохранения объекта",
		KeyErrorLoadingView:    "Ошибка загрузки окна",
		KeyNoRecords:           "Вариантов пока нет",
		KeyYes:                 "Да",
		KeyNo:                  "Нет",
	}
}
