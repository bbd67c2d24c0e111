package validity

// NodeType mirrors the node taxonomy of the document model that owns the
// controls. Only ElementNode can carry constraints.
type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
	CommentNode
	ProcessingInstructionNode
	DocumentNode
	DocumentFragmentNode
	DoctypeNode
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	case ProcessingInstructionNode:
		return "processing-instruction"
	case DocumentNode:
		return "document"
	case DocumentFragmentNode:
		return "document-fragment"
	case DoctypeNode:
		return "doctype"
	default:
		return "unknown"
	}
}

// Option is one option-like entry reached by traversing a choice control's
// subtree.
type Option struct {
	Selected bool
	Enabled  bool
	Value    string
}

// Control is the read-only view the engine evaluates. Implementations are
// owned by the caller's document model; the engine only borrows them for the
// duration of a call.
type Control interface {
	NodeType() NodeType
	// LocalName is the lower-case tag name, empty for non-element nodes.
	LocalName() string
	// Attribute looks up an attribute by exact name.
	Attribute(name string) (string, bool)
	// ValueForValidation reports the current value used by constraint checks.
	// ok is false when the control has no value.
	ValueForValidation() (value string, ok bool)
	// Options enumerates descendant options in tree order. Only consulted for
	// KindSelect.
	Options() []Option
}
