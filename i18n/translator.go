package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional values to embed in the message ("type", "field",
// "expected", "got", "keys").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var templates = map[string]map[string]string{
	"en": {
		"invalid_type":     "invalid type: expected {expected}, got {got}",
		"required":         "required field {field} missing",
		"unknown_key":      "unknown fields for {type}: {keys}",
		"duplicate_key":    "duplicate key {key}",
		"malformed_markup": "anchor tag without closing </a>",
		"parse_error":      "parse error",
		"truncated":        "document too large",
	},
	"ru": {
		"invalid_type":     "неверный тип: ожидался {expected}, получен {got}",
		"required":         "отсутствует обязательное поле {field}",
		"unknown_key":      "неизвестные поля для {type}: {keys}",
		"duplicate_key":    "повторяющийся ключ {key}",
		"malformed_markup": "тег ссылки без закрывающего </a>",
		"parse_error":      "ошибка разбора",
		"truncated":        "документ слишком большой",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tpl, ok := templates[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return tpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

var (
	mu                           = sync.RWMutex{}
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ru").
func SetLanguage(lang string) {
	if _, ok := templates[lang]; !ok {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
