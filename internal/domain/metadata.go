package domain

// Metadata is the normalized view of an instance's self-description
// document (/api/meta).
//
// It is NOT tied to any particular server software; the remote shape is
// loosely typed and every field is optional, so all values here are the
// already-defaulted display strings ("" = absent, defaulting happens in
// the accessors below).
type Metadata struct {
	// ─────────────────────────────
	// Identity & description
	// ─────────────────────────────

	// SoftwareName is the platform software field when present.
	// Example: misskey
	SoftwareName string

	// Name is the instance's own display name.
	Name string

	// Version of the server software.
	Version string

	// Description is the instance's self-description blurb.
	Description string

	// ─────────────────────────────
	// Administration
	// ─────────────────────────────

	// MaintainerName is the admin's display name.
	MaintainerName string

	// MaintainerEmail is the admin's contact address.
	MaintainerEmail string

	// InquiryURL is the preferred contact page.
	InquiryURL string

	// RepositoryURL is the source repository, used as contact
	// fallback when InquiryURL is absent.
	RepositoryURL string

	// ─────────────────────────────
	// Optional server detail
	// ─────────────────────────────

	IconURL          string
	BannerURL        string
	TOSURL           string
	PrivacyPolicyURL string

	// MaxNoteTextLength is the post length limit; 0 = not reported.
	MaxNoteTextLength int

	// ServerRules is the instance rule list, original order preserved.
	ServerRules []string
}

// NotAvailable is the explicit marker shown for absent fields.
const NotAvailable = "N/A"

// Software returns the platform name, preferring SoftwareName and
// falling back to Name when the primary field is absent.
func (m *Metadata) Software() string {
	return firstNonEmpty(m.SoftwareName, m.Name, NotAvailable)
}

// ContactURL prefers the inquiry page and falls back to the repository.
func (m *Metadata) ContactURL() string {
	return firstNonEmpty(m.InquiryURL, m.RepositoryURL, NotAvailable)
}

// DisplayDescription returns the description or the N/A marker.
func (m *Metadata) DisplayDescription() string {
	return firstNonEmpty(m.Description, NotAvailable)
}

// DisplayVersion returns the version or the N/A marker.
func (m *Metadata) DisplayVersion() string {
	return firstNonEmpty(m.Version, NotAvailable)
}

// DisplayMaintainer returns the admin name or the N/A marker.
func (m *Metadata) DisplayMaintainer() string {
	return firstNonEmpty(m.MaintainerName, NotAvailable)
}

// DisplayMaintainerEmail returns the admin email or the N/A marker.
func (m *Metadata) DisplayMaintainerEmail() string {
	return firstNonEmpty(m.MaintainerEmail, NotAvailable)
}

// HasRules reports whether the rule list is present and non-empty.
func (m *Metadata) HasRules() bool {
	return len(m.ServerRules) > 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
