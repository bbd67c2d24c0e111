package validity

import "strings"

// Kind is the closed set of control classes the rules dispatch on.
type Kind int

const (
	KindOther Kind = iota
	KindTextInput
	KindNumberInput
	KindButton
	KindObject
	KindSelect
	KindTextArea
)

func (k Kind) String() string {
	switch k {
	case KindTextInput:
		return "text-input"
	case KindNumberInput:
		return "number-input"
	case KindButton:
		return "button"
	case KindObject:
		return "object"
	case KindSelect:
		return "select"
	case KindTextArea:
		return "textarea"
	default:
		return "other"
	}
}

// Classify maps a control to its Kind. Non-element nodes and unknown elements
// are KindOther.
func Classify(c Control) Kind {
	if c == nil || c.NodeType() != ElementNode {
		return KindOther
	}

	switch strings.ToLower(c.LocalName()) {
	case "input":
		return classifyInput(c)
	case "button":
		return KindButton
	case "object":
		return KindObject
	case "select":
		return KindSelect
	case "textarea":
		return KindTextArea
	default:
		return KindOther
	}
}

func classifyInput(c Control) Kind {
	typ, _ := c.Attribute(attrType)
	switch strings.ToLower(strings.TrimSpace(typ)) {
	case "number", "range":
		return KindNumberInput
	case "submit", "reset", "button", "image":
		return KindButton
	case "hidden":
		return KindOther
	default:
		return KindTextInput
	}
}
