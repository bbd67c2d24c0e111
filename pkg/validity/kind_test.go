package validity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validity"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		c    validity.Control
		want validity.Kind
	}{
		{"nil control", nil, validity.KindOther},
		{"text input", textInput(), validity.KindTextInput},
		{"input without type", element("input"), validity.KindTextInput},
		{"input with unknown type", element("input", "type", "color"), validity.KindTextInput},
		{"email input", element("input", "type", "email"), validity.KindTextInput},
		{"number input", numberInput(), validity.KindNumberInput},
		{"number type is case-insensitive", element("input", "type", " NUMBER "), validity.KindNumberInput},
		{"range input", element("input", "type", "range"), validity.KindNumberInput},
		{"submit input", element("input", "type", "submit"), validity.KindButton},
		{"image input", element("input", "type", "image"), validity.KindButton},
		{"hidden input", element("input", "type", "hidden"), validity.KindOther},
		{"button", element("button"), validity.KindButton},
		{"object", element("object"), validity.KindObject},
		{"select", element("select"), validity.KindSelect},
		{"textarea", element("textarea"), validity.KindTextArea},
		{"upper-case tag", element("TEXTAREA"), validity.KindTextArea},
		{"div", element("div"), validity.KindOther},
		{"text node", &control{node: validity.TextNode}, validity.KindOther},
		{"comment node", &control{node: validity.CommentNode}, validity.KindOther},
		{"document", &control{node: validity.DocumentNode}, validity.KindOther},
		{"fragment", &control{node: validity.DocumentFragmentNode}, validity.KindOther},
		{"doctype", &control{node: validity.DoctypeNode}, validity.KindOther},
		{"non-element named like a control", &control{node: validity.TextNode, name: "input"}, validity.KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validity.Classify(tt.c))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "number-input", validity.KindNumberInput.String())
	assert.Equal(t, "other", validity.Kind(99).String())
	assert.Equal(t, "doctype", validity.DoctypeNode.String())
}
