package richpresence

// Assets represents an activity's images and their hover texts.
type Assets struct {
	LargeImage *string `json:"large_image,omitempty"`
	LargeText  *string `json:"large_text,omitempty"`
	SmallImage *string `json:"small_image,omitempty"`
	SmallText  *string `json:"small_text,omitempty"`
}

// NewAssets creates a new Assets with every field unset.
func NewAssets() Assets {
	return Assets{}
}

// WithLargeImage sets the asset name or URL of the large image.
func (a Assets) WithLargeImage(largeImage string) Assets {
	a.LargeImage = &largeImage

	return a
}

// WithLargeText sets the text shown when hovering over the large image.
func (a Assets) WithLargeText(largeText string) Assets {
	a.LargeText = &largeText

	return a
}

// WithSmallImage sets the asset name or URL of the small image.
func (a Assets) WithSmallImage(smallImage string) Assets {
	a.SmallImage = &smallImage

	return a
}

// WithSmallText sets the text shown when hovering over the small image.
func (a Assets) WithSmallText(smallText string) Assets {
	a.SmallText = &smallText

	return a
}
