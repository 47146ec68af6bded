package instance

import (
	"github.com/fedipeek/fedipeek/internal/domain"
)

// Mapper converts raw meta documents to domain.Metadata entities
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapMetadata normalizes a MetaDocument into domain.Metadata.
// Absent fields map to the zero value; display defaulting ("N/A",
// alias fallbacks) lives on domain.Metadata so it stays testable
// without a live document.
func (m *Mapper) MapMetadata(doc *MetaDocument) *domain.Metadata {
	if doc == nil {
		return &domain.Metadata{}
	}

	meta := &domain.Metadata{
		SoftwareName:     deref(doc.SoftwareName),
		Name:             deref(doc.Name),
		Version:          deref(doc.Version),
		Description:      deref(doc.Description),
		MaintainerName:   deref(doc.MaintainerName),
		MaintainerEmail:  deref(doc.MaintainerEmail),
		InquiryURL:       deref(doc.InquiryURL),
		RepositoryURL:    deref(doc.RepositoryURL),
		IconURL:          deref(doc.IconURL),
		BannerURL:        deref(doc.BannerURL),
		TOSURL:           deref(doc.TOSURL),
		PrivacyPolicyURL: deref(doc.PrivacyPolicyURL),
	}

	if doc.MaxNoteTextLength != nil && *doc.MaxNoteTextLength > 0 {
		meta.MaxNoteTextLength = *doc.MaxNoteTextLength
	}

	// Copy, don't alias: the document may be discarded while the
	// metadata is still being rendered.
	if len(doc.ServerRules) > 0 {
		meta.ServerRules = append([]string(nil), doc.ServerRules...)
	}

	return meta
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
