package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconArray   = "≡" // Collection-valued attribute
	IconString  = "$" // String-valued attribute
	IconBool    = "±" // Boolean-valued attribute
	IconGeom    = "□" // Rectangle/point/size attribute
	IconGeneric = "·" // Unclassified attribute (generic accessor)
	IconSkipped = "✗" // File could not be read
)
