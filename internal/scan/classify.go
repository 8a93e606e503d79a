package scan

import "fmt"

// AttributeKind categorizes an accessibility attribute by its value type,
// which determines the most type-appropriate SafeAttributeAccess accessor.
type AttributeKind int

const (
	KindGeneric AttributeKind = iota
	KindArray
	KindString
	KindBool
	KindRect
	KindPoint
	KindSize
)

// The categories are mutually exclusive: no attribute name appears in two lists.
var (
	arrayAttributes  = []string{"AXChildren", "AXWindows", "AXMenus", "AXTabs"}
	stringAttributes = []string{"AXRole", "AXTitle", "AXDescription", "AXIdentifier", "AXValue"}
	boolAttributes   = []string{"AXEnabled", "AXFocused", "AXSelected", "AXHidden", "AXVisible"}
	rectAttributes   = []string{"AXFrame"}
	pointAttributes  = []string{"AXPosition"}
	sizeAttributes   = []string{"AXSize"}
)

var attrKinds = buildKindTable()

func buildKindTable() map[string]AttributeKind {
	table := make(map[string]AttributeKind)
	add := func(names []string, kind AttributeKind) {
		for _, name := range names {
			table[name] = kind
		}
	}
	add(arrayAttributes, KindArray)
	add(stringAttributes, KindString)
	add(boolAttributes, KindBool)
	add(rectAttributes, KindRect)
	add(pointAttributes, KindPoint)
	add(sizeAttributes, KindSize)
	return table
}

// ClassifyAttribute maps an attribute name to its kind. Unknown attributes
// fall through to KindGeneric.
func ClassifyAttribute(attribute string) AttributeKind {
	if kind, ok := attrKinds[attribute]; ok {
		return kind
	}
	return KindGeneric
}

// Accessor returns the SafeAttributeAccess method name for this kind.
func (k AttributeKind) Accessor() string {
	switch k {
	case KindArray:
		return "getArrayAttribute"
	case KindString:
		return "getStringAttribute"
	case KindBool:
		return "getBoolAttribute"
	case KindRect:
		return "getRectAttribute"
	case KindPoint:
		return "getPointAttribute"
	case KindSize:
		return "getSizeAttribute"
	default:
		return "getAttribute"
	}
}

// SuggestReplacement builds the SafeAttributeAccess call suggested in place
// of a direct AXUIElementCopyAttributeValue call. Pure: the same element and
// attribute always yield the same text.
func SuggestReplacement(element, attribute string) string {
	kind := ClassifyAttribute(attribute)
	return fmt.Sprintf("SafeAttributeAccess.%s(%s, attribute: %q)", kind.Accessor(), element, attribute)
}
