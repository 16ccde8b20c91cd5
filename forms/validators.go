package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var initOnce sync.Once
var initErr error
var trans ut.Translator

var ObjectID validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return primitive.IsValidObjectID(value)
}

// InitValidators registers the custom tags and the english messages
// on the gin binding engine. Later calls return the first result.
func InitValidators() error {
	initOnce.Do(func() {
		initErr = registerValidators()
	})
	return initErr
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("binding engine is %T, not a validator", binding.Validator.Engine())
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("objectId", ObjectID); err != nil {
		return fmt.Errorf("register objectId: %w", err)
	}

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, found := uni.GetTranslator("en")
	if !found {
		return fmt.Errorf("en translator not found")
	}
	if err := en_translations.RegisterDefaultTranslations(v, translator); err != nil {
		return fmt.Errorf("register en translations: %w", err)
	}
	err := v.RegisterTranslation(
		"objectId",
		translator,
		func(ut ut.Translator) error {
			return ut.Add("objectId", "{0} must be a valid id", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			message, _ := ut.T("objectId", fe.Field())
			return message
		},
	)
	if err != nil {
		return fmt.Errorf("register objectId translation: %w", err)
	}
	trans = translator
	return nil
}

// BindingMessage turns a binding error into a message for the client
func BindingMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && trans != nil {
		messages := make([]string, 0, len(ve))
		for _, fe := range ve {
			messages = append(messages, fe.Translate(trans))
		}
		return strings.Join(messages, ", ")
	}
	if errors.As(err, &ve) {
		return ve.Error()
	}
	return "Invalid body"
}
