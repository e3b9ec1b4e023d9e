package config

// Scope classifies what a path pattern locates.
type Scope int

const (
	// ScopeBundle is an application bundle path. Always exact — never a glob.
	ScopeBundle Scope = iota

	// ScopeSupport is a support artifact location (caches, preferences,
	// containers, launch jobs, receipts). May contain wildcard segments.
	ScopeSupport
)

// PathPattern is one entry in the static removal plan.
type PathPattern struct {
	// Pattern is the filesystem location. User-scoped entries start with
	// "~"; system-scoped entries are absolute.
	Pattern string

	// Scope tags the pattern as a bundle or a support artifact.
	Scope Scope

	// Description is a human-readable label for logs.
	Description string
}

// MaxGlobDepth bounds support-artifact resolution to this many levels below
// a pattern's fixed root. Deeper nesting than this does not occur in any
// known Office layout.
const MaxGlobDepth = 3

// AppBundles returns the Office application bundles this tool knows how to
// remove. Exact paths, checked for existence in order.
func AppBundles() []PathPattern {
	return []PathPattern{
		{Pattern: "/Applications/Microsoft Word.app", Scope: ScopeBundle, Description: "Microsoft Word"},
		{Pattern: "/Applications/Microsoft Excel.app", Scope: ScopeBundle, Description: "Microsoft Excel"},
		{Pattern: "/Applications/Microsoft PowerPoint.app", Scope: ScopeBundle, Description: "Microsoft PowerPoint"},
		{Pattern: "/Applications/Microsoft Outlook.app", Scope: ScopeBundle, Description: "Microsoft Outlook"},
		{Pattern: "/Applications/Microsoft OneNote.app", Scope: ScopeBundle, Description: "Microsoft OneNote"},
		{Pattern: "/Applications/OneDrive.app", Scope: ScopeBundle, Description: "Microsoft OneDrive"},
		{Pattern: "/Applications/Microsoft Teams.app", Scope: ScopeBundle, Description: "Microsoft Teams"},
	}
}

// SupportPatterns returns the support-file locations associated with the
// Office suite. Order matters only for output readability. Wildcards match
// within a single path component; resolution searches at most MaxGlobDepth
// levels below each pattern's fixed root.
func SupportPatterns() []PathPattern {
	return []PathPattern{
		// ── User scope ──────────────────────────────────────────
		{Pattern: "~/Library/Containers/com.microsoft.*", Scope: ScopeSupport, Description: "sandbox containers"},
		{Pattern: "~/Library/Group Containers/UBF8T346G9.*", Scope: ScopeSupport, Description: "group containers"},
		{Pattern: "~/Library/Caches/com.microsoft.*", Scope: ScopeSupport, Description: "user caches"},
		{Pattern: "~/Library/Caches/Microsoft", Scope: ScopeSupport, Description: "shared user cache"},
		{Pattern: "~/Library/Preferences/com.microsoft.*", Scope: ScopeSupport, Description: "user preferences"},
		{Pattern: "~/Library/Application Support/Microsoft", Scope: ScopeSupport, Description: "user application support"},
		{Pattern: "~/Library/Application Scripts/com.microsoft.*", Scope: ScopeSupport, Description: "application scripts"},
		{Pattern: "~/Library/Saved Application State/com.microsoft.*", Scope: ScopeSupport, Description: "saved window state"},
		{Pattern: "~/Library/WebKit/com.microsoft.*", Scope: ScopeSupport, Description: "webkit storage"},
		{Pattern: "~/Library/Logs/Microsoft", Scope: ScopeSupport, Description: "user logs"},

		// ── System scope ────────────────────────────────────────
		{Pattern: "/Library/Application Support/Microsoft", Scope: ScopeSupport, Description: "system application support"},
		{Pattern: "/Library/Preferences/com.microsoft.*", Scope: ScopeSupport, Description: "system preferences"},
		{Pattern: "/Library/LaunchAgents/com.microsoft.*", Scope: ScopeSupport, Description: "launch agents"},
		{Pattern: "/Library/LaunchDaemons/com.microsoft.*", Scope: ScopeSupport, Description: "launch daemons"},
		{Pattern: "/Library/PrivilegedHelperTools/com.microsoft.*", Scope: ScopeSupport, Description: "privileged helpers"},
		{Pattern: "/Library/Fonts/Microsoft", Scope: ScopeSupport, Description: "bundled fonts"},
		{Pattern: "/private/var/db/receipts/com.microsoft.*", Scope: ScopeSupport, Description: "installation receipts"},
	}
}

// NeverDeletePaths returns paths that must NEVER be removed under any
// circumstances, even if a pattern somehow resolves to one of them. The
// executor refuses these outright. User-scoped entries use the same "~"
// shorthand as the pattern tables.
func NeverDeletePaths() []string {
	return []string{
		"/",
		"/Applications",
		"/Library",
		"/Library/Application Support",
		"/Library/LaunchAgents",
		"/Library/LaunchDaemons",
		"/Library/Preferences",
		"/Library/PrivilegedHelperTools",
		"/Library/Fonts",
		"/System",
		"/Users",
		"/private",
		"/private/var",
		"/private/var/db",
		"/private/var/db/receipts",
		"/usr",
		"/bin",
		"/sbin",
		"~",
		"~/Library",
		"~/Library/Containers",
		"~/Library/Group Containers",
		"~/Library/Caches",
		"~/Library/Preferences",
		"~/Library/Application Support",
		"~/Library/Application Scripts",
		"~/Library/Saved Application State",
		"~/Library/WebKit",
		"~/Library/Logs",
	}
}
