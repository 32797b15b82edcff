package api

import (
	"fmt"
	"strconv"

	"github.com/fsdevblog/jalsa-khata/internal/phone"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validateMaxBytes в отличии от тэга max который проверяет длину рун, - проверят длину байт в поле.
func validateMaxBytes(fl validator.FieldLevel) bool {
	param := fl.Param() // получаем значение из тега
	maxBytes, err := strconv.Atoi(param)
	if err != nil {
		return false
	}

	// нужно убедится что значение поля - строка.
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return len([]byte(str)) <= maxBytes
}

// phoneValidator проверяет, что номер разбирается в регионе магазина.
func phoneValidator(phones *phone.Normalizer) validator.Func {
	return func(fl validator.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		_, err := phones.Normalize(str)
		return err == nil
	}
}

func registerValidators(phones *phone.Normalizer) error {
	if phones == nil {
		phones = phone.New(phone.DefaultRegion)
	}
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("max_bytes", validateMaxBytes); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	if err := v.RegisterValidation("phone", phoneValidator(phones)); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}
