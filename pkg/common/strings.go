package common

// RemoveSingleQuotesIfAny strips one pair of enclosing single quotes, if present.
// Users sometimes write flag values as channel='stable'.
func RemoveSingleQuotesIfAny(value string) string {
	if len(value) > 2 && value[0] == '\'' && value[len(value)-1] == '\'' {
		value = value[1 : len(value)-1]
	}
	return value
}

// RemoveDoubleQuotesIfAny strips one pair of enclosing double quotes, if present.
func RemoveDoubleQuotesIfAny(value string) string {
	if len(value) > 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	return value
}
