package block

import "github.com/microcosm-cc/bluemonday"

// Sanitize applies rules to d. Fields whose rule is true keep their HTML;
// any other field has its markup stripped.
func Sanitize(d Data, rules SanitizeRules) Data {
	if rules["code"] {
		return d
	}
	return Data{Code: bluemonday.StrictPolicy().Sanitize(d.Code)}
}
