package validation

import (
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"
)

var (
	setupOnce  sync.Once
	validate   *validator.Validate
	translator ut.Translator
)

// Validator returns the shared validator with english translations already
// registered. Registering the translator here means validation failures can
// be turned into clean readable messages without extra wiring at call sites.
func Validator() (*validator.Validate, ut.Translator) {
	setupOnce.Do(func() {
		english := en.New()
		uni := ut.New(english, english)
		translator, _ = uni.GetTranslator("en")

		validate = validator.New()
		_ = enTranslations.RegisterDefaultTranslations(validate, translator)
	})

	return validate, translator
}

// TranslateError converts validator failures into their translated human
// readable forms. Non-validation errors yield nil.
func TranslateError(err error, trans ut.Translator) (errs []string) {
	if err == nil {
		return nil
	}

	validationErrors := validator.ValidationErrors{}

	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			translatedErr := e.Translate(trans)
			errs = append(errs, translatedErr)
		}
	}

	return errs
}
