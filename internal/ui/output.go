package ui

// Inline style helpers for composing operator-visible output.

// Banner returns s styled as a bold section banner.
func Banner(s string) string { return bannerStyle.Render(s) }

// Accent returns s in the primary accent color.
func Accent(s string) string { return accentStyle.Render(s) }

// OK returns s in the success color (per-item lines).
func OK(s string) string { return okStyle.Render(s) }

// Err returns s in the error color (per-item lines).
func Err(s string) string { return errStyle.Render(s) }

// Success returns s as the emphasized (bold green) final status line.
func Success(s string) string { return successStyle.Render(s) }

// Failure returns s as the emphasized (bold red) final status line.
func Failure(s string) string { return failureStyle.Render(s) }

// Warn returns s in the warning color.
func Warn(s string) string { return warnStyle.Render(s) }

// Muted returns s styled as secondary detail.
func Muted(s string) string { return mutedStyle.Render(s) }
