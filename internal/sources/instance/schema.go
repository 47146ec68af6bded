package instance

import "encoding/json"

// MetaDocument represents the raw /api/meta response body.
//
// The shape is owned by the remote server, not by us: every field is
// optional and servers disagree on which ones they send, so everything
// is a pointer (or slice) and normalization happens in the mapper.
type MetaDocument struct {
	SoftwareName      *string  `json:"softwareName,omitempty"`
	Name              *string  `json:"name,omitempty"`
	Version           *string  `json:"version,omitempty"`
	Description       *string  `json:"description,omitempty"`
	MaintainerName    *string  `json:"maintainerName,omitempty"`
	MaintainerEmail   *string  `json:"maintainerEmail,omitempty"`
	InquiryURL        *string  `json:"inquiryUrl,omitempty"`
	RepositoryURL     *string  `json:"repositoryUrl,omitempty"`
	IconURL           *string  `json:"iconUrl,omitempty"`
	BannerURL         *string  `json:"bannerUrl,omitempty"`
	TOSURL            *string  `json:"tosUrl,omitempty"`
	PrivacyPolicyURL  *string  `json:"privacyPolicyUrl,omitempty"`
	MaxNoteTextLength *int     `json:"maxNoteTextLength,omitempty"`
	ServerRules       []string `json:"serverRules,omitempty"`
}

// ParseMetaDocument decodes a raw response body into a MetaDocument.
// The body must be a JSON object; anything else is a parse error.
func ParseMetaDocument(body []byte) (*MetaDocument, error) {
	var doc MetaDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
