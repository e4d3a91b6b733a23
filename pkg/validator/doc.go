// Package validator provides small, composable validation rules with
// translation-friendly error metadata.
//
// A Rule pairs a boolean Check function with a ValidationError describing
// the failure. Rules are evaluated with Apply, which collects every failure
// into a ValidationErrors slice, or ApplyFirst, which stops at the first
// failing rule. ValidationErrors implements the error interface and matches
// ErrValidationFailed through errors.Is.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("firstName", in.FirstName),
//	    validator.ValidEmail("email", in.Email),
//	    validator.OneOfString("queryType", in.QueryType, []string{"general", "support"}),
//	    validator.Accepted("consent", in.Consent),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        fmt.Println(field, verrs.First(field))
//	    }
//	}
//
// Default messages are short English phrases; use Rule.WithMessage to
// override the text shown to users, or ValidationErrors.Translate to map
// translation keys to localized text.
//
// Rules carry no state, so the package is goroutine-safe.
package validator
