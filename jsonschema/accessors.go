package jsonschema

// GetType returns the "type" keyword value, or "".
func (s *Schema) GetType() string {
	if k, ok := Get[*TypeKeyword](s, NameType); ok {
		return k.Type
	}
	return ""
}

// GetFormat returns the "format" keyword value, or "".
func (s *Schema) GetFormat() string {
	if k, ok := Get[*FormatKeyword](s, NameFormat); ok {
		return k.Value
	}
	return ""
}

// GetDescription returns the "description" keyword value, or "".
func (s *Schema) GetDescription() string {
	if k, ok := Get[*DescriptionKeyword](s, NameDescription); ok {
		return k.Value
	}
	return ""
}

// GetItems returns the "items" subschema, or nil.
func (s *Schema) GetItems() *Schema {
	if k, ok := Get[*ItemsKeyword](s, NameItems); ok {
		return k.Schema
	}
	return nil
}

// GetProperty returns the named property subschema, or nil.
func (s *Schema) GetProperty(name string) *Schema {
	if k, ok := Get[*PropertiesKeyword](s, NameProperties); ok {
		return k.Properties.Value(name)
	}
	return nil
}

// GetRequired returns the "required" property names.
func (s *Schema) GetRequired() []string {
	if k, ok := Get[*RequiredKeyword](s, NameRequired); ok {
		return append([]string(nil), k.Properties...)
	}
	return nil
}

// Subschemas returns the direct child schemas in keyword order.
func (s *Schema) Subschemas() []*Schema {
	var out []*Schema
	for _, k := range s.Keywords() {
		switch kk := k.(type) {
		case *PropertiesKeyword:
			for _, ps := range kk.Properties.All() {
				out = append(out, ps)
			}
		case *ItemsKeyword:
			out = append(out, kk.Schema)
		case *NotKeyword:
			out = append(out, kk.Schema)
		case *AdditionalPropertiesKeyword:
			out = append(out, kk.Schema)
		case *AllOfKeyword:
			out = append(out, kk.Schemas...)
		case *AnyOfKeyword:
			out = append(out, kk.Schemas...)
		case *OneOfKeyword:
			out = append(out, kk.Schemas...)
		}
	}
	return out
}
