package types

import (
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/datazip-inc/det/utils"
)

const discriminatorKey = "type"

// typeError reports a problem at node the same way yaml.v3 reports its own
// unmarshal errors, so they are collected into a single *yaml.TypeError
func typeError(node *yaml.Node, format string, v ...any) *yaml.TypeError {
	return &yaml.TypeError{Errors: []string{fmt.Sprintf("line %d: %s", node.Line, fmt.Sprintf(format, v...))}}
}

// yamlField reports the mapping key of a struct field and whether the field
// must be present. ok is false for fields that are never decoded.
func yamlField(field reflect.StructField) (name string, mandatory bool, ok bool) {
	if !field.IsExported() {
		return "", false, false
	}

	name, options, _ := strings.Cut(field.Tag.Get("yaml"), ",")
	switch name {
	case "-":
		return "", false, false
	case "":
		name = strings.ToLower(field.Name)
	}

	return name, !strings.Contains(options, "omitempty"), true
}

// knownFields fails on any key of a mapping node that typ does not declare.
// Nodes decoded from inside an UnmarshalYAML do not inherit the decoder's
// KnownFields setting, so custom unmarshalers call this before decoding.
func knownFields(node *yaml.Node, typ reflect.Type, allowed ...string) error {
	if node.Kind != yaml.MappingNode {
		return typeError(node, "cannot unmarshal %s into %s", node.ShortTag(), typ)
	}

	fields := make(map[string]struct{}, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		if name, _, ok := yamlField(typ.Field(i)); ok {
			fields[name] = struct{}{}
		}
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if _, found := fields[key.Value]; found || utils.ExistInArray(allowed, key.Value) {
			continue
		}

		return typeError(key, "field %s not found in type %s", key.Value, typ)
	}

	return nil
}

// requiredFields fails when a field of typ without omitempty has no key in
// the mapping, or its value is null. Empty strings count as present.
func requiredFields(node *yaml.Node, typ reflect.Type) error {
	missing := []string{}
	for i := 0; i < typ.NumField(); i++ {
		name, mandatory, ok := yamlField(typ.Field(i))
		if !ok || !mandatory {
			continue
		}

		value := mappingValue(node, name)
		if value != nil && value.Kind == yaml.AliasNode {
			value = value.Alias
		}
		if value == nil || value.ShortTag() == "!!null" {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return typeError(node, "missing field(s) %s in type %s", strings.Join(missing, ", "), typ)
	}

	return nil
}

// checkFields runs knownFields then requiredFields
func checkFields(node *yaml.Node, typ reflect.Type, allowed ...string) error {
	if err := knownFields(node, typ, allowed...); err != nil {
		return err
	}

	return requiredFields(node, typ)
}

// mappingValue returns the value node stored under key, nil if absent
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}

	return nil
}

func uniqueKeys(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	seen := make(map[string]int, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if line, found := seen[key.Value]; found {
			return typeError(key, "mapping key %q already defined at line %d", key.Value, line)
		}
		seen[key.Value] = key.Line
	}

	return nil
}

// connectorType extracts the discriminator of a connector mapping
func connectorType(node *yaml.Node) (ConnectorType, error) {
	if node.Kind != yaml.MappingNode {
		return "", typeError(node, "cannot unmarshal %s into connector", node.ShortTag())
	}

	tag := mappingValue(node, discriminatorKey)
	if tag == nil {
		return "", typeError(node, "missing field %s", discriminatorKey)
	}
	if tag.Kind != yaml.ScalarNode || tag.ShortTag() != "!!str" {
		return "", typeError(tag, "connector %s must be a string", discriminatorKey)
	}

	return ConnectorType(tag.Value), nil
}

func unknownVariant(node *yaml.Node, typ ConnectorType, expected ...ConnectorType) error {
	tag := mappingValue(node, discriminatorKey)
	if tag == nil {
		tag = node
	}

	return typeError(tag, "unknown variant %q, expected one of %v", typ, expected)
}

// decodePayload strictly decodes a connector mapping into payload, which
// must be a pointer to struct. The discriminator key is the only key
// allowed in addition to the payload's own fields.
func decodePayload(node *yaml.Node, payload any) error {
	if err := checkFields(node, reflect.TypeOf(payload).Elem(), discriminatorKey); err != nil {
		return err
	}

	return node.Decode(payload)
}
