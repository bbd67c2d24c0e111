package dom

import "errors"

var (
	// ErrInvalidNode is returned when a handle does not belong to the document
	// or points outside its arena.
	ErrInvalidNode = errors.New("invalid node")

	// ErrHierarchy is returned when an insertion would produce an invalid tree:
	// a cycle, a child under a leaf node, or a document inserted as a child.
	ErrHierarchy = errors.New("hierarchy request error")

	// ErrNotElement is returned when an element-only mutation targets another
	// node type.
	ErrNotElement = errors.New("node is not an element")

	ErrParse             = errors.New("failed to parse html")
	ErrUnsupportedFormat = errors.New("unsupported snapshot format")
	ErrInvalidSnapshot   = errors.New("invalid snapshot")
)
