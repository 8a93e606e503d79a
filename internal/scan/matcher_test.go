package scan

import (
	"reflect"
	"strings"
	"testing"
)

func TestFindMatchesSingleCall(t *testing.T) {
	m := NewMatcher()
	content := `AXUIElementCopyAttributeValue(element, "AXTitle" as CFString, &titleRef)`

	matches := m.FindMatches(content)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}

	match := matches[0]
	if match.Element != "element" {
		t.Errorf("Element = %q, want element", match.Element)
	}
	if match.Attribute != "AXTitle" {
		t.Errorf("Attribute = %q, want AXTitle", match.Attribute)
	}
	if match.VarRef != "titleRef" {
		t.Errorf("VarRef = %q, want titleRef", match.VarRef)
	}
	if match.FullMatch != content {
		t.Errorf("FullMatch = %q, want the whole line", match.FullMatch)
	}
	if match.Suggested != `SafeAttributeAccess.getStringAttribute(element, attribute: "AXTitle")` {
		t.Errorf("Suggested = %q", match.Suggested)
	}
	if match.Start != 0 || match.End != len(content) {
		t.Errorf("offsets = [%d, %d], want [0, %d]", match.Start, match.End, len(content))
	}
	if match.Line != 1 {
		t.Errorf("Line = %d, want 1", match.Line)
	}
}

func TestFindMatchesRectAttribute(t *testing.T) {
	m := NewMatcher()
	content := `AXUIElementCopyAttributeValue(button, "AXFrame" as CFString, &frameRef)`

	matches := m.FindMatches(content)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	want := `SafeAttributeAccess.getRectAttribute(button, attribute: "AXFrame")`
	if matches[0].Suggested != want {
		t.Errorf("Suggested = %q, want %q", matches[0].Suggested, want)
	}
}

func TestFindMatchesMultiple(t *testing.T) {
	m := NewMatcher()
	content := strings.Join([]string{
		`func probe(_ element: AXUIElement) {`,
		`    var roleRef: CFTypeRef?`,
		`    AXUIElementCopyAttributeValue(element, "AXRole" as CFString, &roleRef)`,
		`    var kidsRef: CFTypeRef?`,
		`    AXUIElementCopyAttributeValue(element, "AXChildren" as CFString, &kidsRef)`,
		`}`,
	}, "\n")

	matches := m.FindMatches(content)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Attribute != "AXRole" || matches[1].Attribute != "AXChildren" {
		t.Errorf("attributes out of order: %q, %q", matches[0].Attribute, matches[1].Attribute)
	}
	if matches[0].Line != 3 {
		t.Errorf("first match Line = %d, want 3", matches[0].Line)
	}
	if matches[1].Line != 5 {
		t.Errorf("second match Line = %d, want 5", matches[1].Line)
	}
	if matches[1].Start <= matches[0].Start {
		t.Errorf("matches not in ascending offset order: %d then %d", matches[0].Start, matches[1].Start)
	}
}

// Calls where the attribute is not a quoted literal must not match.
func TestFindMatchesRejectsNonLiteralAttribute(t *testing.T) {
	m := NewMatcher()
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "attribute held in a variable",
			content: `AXUIElementCopyAttributeValue(element, attributeName as CFString, &ref)`,
		},
		{
			name:    "constant instead of literal",
			content: `AXUIElementCopyAttributeValue(element, kAXTitleAttribute as CFString, &ref)`,
		},
		{
			name:    "missing CFString coercion",
			content: `AXUIElementCopyAttributeValue(element, "AXTitle", &ref)`,
		},
		{
			name:    "wrapped safe call",
			content: `SafeAttributeAccess.getStringAttribute(element, attribute: "AXTitle")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if matches := m.FindMatches(tt.content); len(matches) != 0 {
				t.Errorf("got %d matches, want 0", len(matches))
			}
		})
	}
}

func TestFindMatchesTrimsArguments(t *testing.T) {
	m := NewMatcher()
	content := `AXUIElementCopyAttributeValue( window.element ,  "AXValue"  as  CFString, & valueRef )`

	matches := m.FindMatches(content)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Element != "window.element" {
		t.Errorf("Element = %q, want window.element", matches[0].Element)
	}
	if matches[0].VarRef != "valueRef" {
		t.Errorf("VarRef = %q, want valueRef", matches[0].VarRef)
	}
}

func TestFindMatchesContextWindow(t *testing.T) {
	m := NewMatcher()
	pad := strings.Repeat("x", 150)
	call := `AXUIElementCopyAttributeValue(e, "AXTitle" as CFString, &r)`
	content := pad + call + pad

	matches := m.FindMatches(content)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	wantCtx := len(call) + 2*contextWindow
	if len(matches[0].Context) != wantCtx {
		t.Errorf("context length = %d, want %d", len(matches[0].Context), wantCtx)
	}

	// Near the start the window clamps to the file boundary.
	matches = m.FindMatches(call)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Context != call {
		t.Errorf("clamped context = %q, want the call itself", matches[0].Context)
	}
}

// Rerunning the matcher on unmodified text must yield identical records.
func TestFindMatchesIdempotent(t *testing.T) {
	m := NewMatcher()
	content := `AXUIElementCopyAttributeValue(a, "AXRole" as CFString, &x)` + "\n" +
		`AXUIElementCopyAttributeValue(b, "AXFrame" as CFString, &y)`

	first := m.FindMatches(content)
	second := m.FindMatches(content)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("matcher not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
