package domain

// requireString pulls a required string field out of a decoded JSON
// payload. Absent, null or empty values fail with
// NOT_CONTAIN_NEEDED_PROPERTY; non-string values with
// NOT_MEET_DATA_TYPE_SPECIFICATION.
func requireString(payload map[string]any, entity, field string) (string, error) {
	v, ok := payload[field]
	if !ok || v == nil {
		return "", ValidationError{Entity: entity, Kind: KindMissingProperty}
	}
	s, ok := v.(string)
	if !ok {
		return "", ValidationError{Entity: entity, Kind: KindWrongDataType}
	}
	if s == "" {
		return "", ValidationError{Entity: entity, Kind: KindMissingProperty}
	}
	return s, nil
}
