package block

// ToolboxEntry is how the tool is listed in the host's toolbox.
type ToolboxEntry struct {
	Icon  string
	Title string
}

// PasteRules lists the pasted HTML tags the tool claims.
type PasteRules struct {
	Tags []string
}

// SanitizeRules maps data fields to whether they may keep HTML.
type SanitizeRules map[string]bool

const iconBrackets = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" fill="none" viewBox="0 0 24 24"><path stroke="currentColor" stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M9 7L5 12L9 17"/><path stroke="currentColor" stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M15 7L19 12L15 17"/></svg>`

func (*Tool) IsReadOnlySupported() bool { return true }

// EnableLineBreaks tells the host that Enter inserts a newline instead of
// creating a new block.
func (*Tool) EnableLineBreaks() bool { return true }

func (*Tool) ToolboxEntry() ToolboxEntry {
	return ToolboxEntry{Icon: iconBrackets, Title: "Code"}
}

func (*Tool) PasteRules() PasteRules {
	return PasteRules{Tags: []string{"pre"}}
}

// SanitizeRules lets code keep its HTML: angle brackets are source text.
func (*Tool) SanitizeRules() SanitizeRules {
	return SanitizeRules{"code": true}
}
