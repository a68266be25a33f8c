package payload

// Shape describes the top-level structure a generated document must satisfy.
// It drives the narrow recovery fallback during repair (ArrayKey names the
// primary list-valued field that can be salvaged on its own) and the schema
// check callers run after parsing succeeds.
type Shape struct {
	// Required lists the top-level keys that must be present.
	Required []string

	// ArrayKey names the primary array-valued field. Used by the narrow
	// recovery fallback and type-checked by Validate when listed in Required.
	ArrayKey string
}

// Validate checks that a parsed document contains every required key and
// that the primary array field, when declared, actually holds an array.
// Returns a *SchemaViolationError describing every problem found.
func (s Shape) Validate(doc map[string]interface{}) (err error) {
	violation := &SchemaViolationError{}

	for _, key := range s.Required {
		value, ok := doc[key]
		if !ok {
			violation.MissingKeys = append(violation.MissingKeys, key)
			continue
		}

		if key == s.ArrayKey {
			if _, isArray := value.([]interface{}); !isArray {
				violation.WrongTypes = append(violation.WrongTypes, key+" (expected array)")
			}
		}
	}

	if len(violation.MissingKeys) > 0 || len(violation.WrongTypes) > 0 {
		err = violation
		return err
	}

	return err
}
