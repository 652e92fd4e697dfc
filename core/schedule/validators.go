package schedule

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/horario/core"
)

var (
	weekdayTag  = "weekday"
	weekdayText = "must be one of monday, tuesday, wednesday, thursday, friday or saturday"

	modalityTag  = "modality"
	modalityText = "must be one of Presencial, Virtual or Cada 15 días"

	startDateRequiredTag  = "biweekly_start_date"
	startDateRequiredText = "a start date is required for biweekly classes"

	biweeklyMismatchTag  = "biweekly_modality"
	biweeklyMismatchText = "biweekly must match the modality"
)

// InitValidators registers the schedule validators. core.InitValidators must be called first.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(weekdayTag, weekdayValidation)
	core.RegisterCustomTranslation(validate, translator, weekdayTag, weekdayText)

	_ = validate.RegisterValidation(modalityTag, modalityValidation)
	core.RegisterCustomTranslation(validate, translator, modalityTag, modalityText)

	validate.RegisterStructValidation(newEntryStructValidation, NewEntry{})
	core.RegisterCustomTranslation(validate, translator, startDateRequiredTag, startDateRequiredText)
	core.RegisterCustomTranslation(validate, translator, biweeklyMismatchTag, biweeklyMismatchText)
}

// Custom Validators

func weekdayValidation(fl validator.FieldLevel) bool {
	return Weekday(fl.Field().String()).Valid()
}

func modalityValidation(fl validator.FieldLevel) bool {
	return Modality(fl.Field().String()).Valid()
}

// newEntryStructValidation checks the biweekly rules of NewEntry:
// - the biweekly flag, when sent, must agree with the modality
// - biweekly classes need a start date
func newEntryStructValidation(sl validator.StructLevel) {
	ne, ok := sl.Current().Interface().(NewEntry)
	if !ok {
		return
	}
	isBiweekly := ne.Modality == ModalityBiweekly
	if ne.Biweekly != nil && *ne.Biweekly != isBiweekly {
		sl.ReportError(ne.Biweekly, "biweekly", "Biweekly", biweeklyMismatchTag, "")
	}
	if isBiweekly && ne.StartDate == "" {
		sl.ReportError(ne.StartDate, "start_date", "StartDate", startDateRequiredTag, "")
	}
}
