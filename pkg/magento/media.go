package magento

import "slices"

// Role flags a gallery entry can hold. At most one entry of a product holds
// each flag.
const (
	RoleImage      = "image"
	RoleSmallImage = "small_image"
	RoleThumbnail  = "thumbnail"
	RoleSwatch     = "swatch_image"
)

// MediaEntry is one image of a product gallery.
type MediaEntry struct {
	ID         int           `json:"id"`
	MediaType  string        `json:"media_type,omitempty"`
	Label      *string       `json:"label"`
	Position   int           `json:"position"`
	Disabled   bool          `json:"disabled"`
	Types      []string      `json:"types"`
	File       string        `json:"file"`
	Content    *MediaContent `json:"content,omitempty"`
	TestData   *MediaUpload  `json:"test_data,omitempty"`
	Extensions Record        `json:"extension_attributes,omitempty"`
}

// MediaContent is the upload payload a client attaches to a gallery entry.
type MediaContent struct {
	Base64EncodedData string `json:"base64_encoded_data"`
	Type              string `json:"type"`
	Name              string `json:"name"`
}

// MediaUpload is the decoded upload kept on the entry for later inspection.
// Content is raw bytes and therefore base64 again once encoded to JSON.
type MediaUpload struct {
	Content []byte `json:"content"`
	Type    string `json:"type"`
	Name    string `json:"name"`
}

// HasRole reports whether the entry holds the role flag.
func (e *MediaEntry) HasRole(role string) bool {
	return slices.Contains(e.Types, role)
}

// DropRoles removes every flag of roles from the entry, keeping the order of
// the remaining flags.
func (e *MediaEntry) DropRoles(roles []string) {
	if len(roles) == 0 || len(e.Types) == 0 {
		return
	}
	e.Types = slices.DeleteFunc(e.Types, func(t string) bool {
		return slices.Contains(roles, t)
	})
}

// Clone returns a deep copy of the entry.
func (e *MediaEntry) Clone() *MediaEntry {
	c := *e
	if e.Label != nil {
		label := *e.Label
		c.Label = &label
	}
	c.Types = slices.Clone(e.Types)
	if e.Content != nil {
		content := *e.Content
		c.Content = &content
	}
	if e.TestData != nil {
		upload := *e.TestData
		upload.Content = slices.Clone(e.TestData.Content)
		c.TestData = &upload
	}
	c.Extensions = e.Extensions.Clone()
	return &c
}
