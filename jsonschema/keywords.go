package jsonschema

import "github.com/sahardevv/OpenAPI.NET/ordered"

// Keyword names of the draft vocabulary understood by this package.
const (
	NameType                 = "type"
	NameFormat               = "format"
	NameTitle                = "title"
	NameDescription          = "description"
	NameDefault              = "default"
	NameEnum                 = "enum"
	NameMultipleOf           = "multipleOf"
	NameMaximum              = "maximum"
	NameMinimum              = "minimum"
	NameMaxLength            = "maxLength"
	NameMinLength            = "minLength"
	NamePattern              = "pattern"
	NameMaxItems             = "maxItems"
	NameMinItems             = "minItems"
	NameUniqueItems          = "uniqueItems"
	NameMaxProperties        = "maxProperties"
	NameMinProperties        = "minProperties"
	NameRequired             = "required"
	NameProperties           = "properties"
	NameItems                = "items"
	NameAllOf                = "allOf"
	NameAnyOf                = "anyOf"
	NameOneOf                = "oneOf"
	NameNot                  = "not"
	NameAdditionalProperties = "additionalProperties"
	NameReadOnly             = "readOnly"
	NameWriteOnly            = "writeOnly"
	NameDeprecated           = "deprecated"
)

type TypeKeyword struct{ Type string }

func (*TypeKeyword) Keyword() string { return NameType }

type FormatKeyword struct{ Value string }

func (*FormatKeyword) Keyword() string { return NameFormat }

type TitleKeyword struct{ Value string }

func (*TitleKeyword) Keyword() string { return NameTitle }

type DescriptionKeyword struct{ Value string }

func (*DescriptionKeyword) Keyword() string { return NameDescription }

// DefaultKeyword holds a raw value tree (see ordered.Map for objects).
type DefaultKeyword struct{ Value any }

func (*DefaultKeyword) Keyword() string { return NameDefault }

type EnumKeyword struct{ Values []any }

func (*EnumKeyword) Keyword() string { return NameEnum }

type MultipleOfKeyword struct{ Value float64 }

func (*MultipleOfKeyword) Keyword() string { return NameMultipleOf }

type MaximumKeyword struct{ Value float64 }

func (*MaximumKeyword) Keyword() string { return NameMaximum }

type MinimumKeyword struct{ Value float64 }

func (*MinimumKeyword) Keyword() string { return NameMinimum }

type MaxLengthKeyword struct{ Value int64 }

func (*MaxLengthKeyword) Keyword() string { return NameMaxLength }

type MinLengthKeyword struct{ Value int64 }

func (*MinLengthKeyword) Keyword() string { return NameMinLength }

type PatternKeyword struct{ Value string }

func (*PatternKeyword) Keyword() string { return NamePattern }

type MaxItemsKeyword struct{ Value int64 }

func (*MaxItemsKeyword) Keyword() string { return NameMaxItems }

type MinItemsKeyword struct{ Value int64 }

func (*MinItemsKeyword) Keyword() string { return NameMinItems }

type UniqueItemsKeyword struct{ Value bool }

func (*UniqueItemsKeyword) Keyword() string { return NameUniqueItems }

type MaxPropertiesKeyword struct{ Value int64 }

func (*MaxPropertiesKeyword) Keyword() string { return NameMaxProperties }

type MinPropertiesKeyword struct{ Value int64 }

func (*MinPropertiesKeyword) Keyword() string { return NameMinProperties }

type RequiredKeyword struct{ Properties []string }

func (*RequiredKeyword) Keyword() string { return NameRequired }

// PropertiesKeyword keeps property schemas in declaration order.
type PropertiesKeyword struct{ Properties *ordered.Map[*Schema] }

func (*PropertiesKeyword) Keyword() string { return NameProperties }

type ItemsKeyword struct{ Schema *Schema }

func (*ItemsKeyword) Keyword() string { return NameItems }

type AllOfKeyword struct{ Schemas []*Schema }

func (*AllOfKeyword) Keyword() string { return NameAllOf }

type AnyOfKeyword struct{ Schemas []*Schema }

func (*AnyOfKeyword) Keyword() string { return NameAnyOf }

type OneOfKeyword struct{ Schemas []*Schema }

func (*OneOfKeyword) Keyword() string { return NameOneOf }

type NotKeyword struct{ Schema *Schema }

func (*NotKeyword) Keyword() string { return NameNot }

// AdditionalPropertiesKeyword is the schema form; the boolean form belongs
// to the caller's vocabulary.
type AdditionalPropertiesKeyword struct{ Schema *Schema }

func (*AdditionalPropertiesKeyword) Keyword() string { return NameAdditionalProperties }

type ReadOnlyKeyword struct{ Value bool }

func (*ReadOnlyKeyword) Keyword() string { return NameReadOnly }

type WriteOnlyKeyword struct{ Value bool }

func (*WriteOnlyKeyword) Keyword() string { return NameWriteOnly }

type DeprecatedKeyword struct{ Value bool }

func (*DeprecatedKeyword) Keyword() string { return NameDeprecated }
