package debug

// RenderStartData describes a block or layout about to render.
type RenderStartData struct {
	Kind           string `json:"kind"` // "block" or "columns"
	AvailableWidth int    `json:"available_width"`
	EffectiveWidth int    `json:"effective_width"`
	ContentWidth   int    `json:"content_width"`
	FixedWidth     bool   `json:"fixed_width"`
	Height         int    `json:"height"` // -1 when uncapped
	Truncate       bool   `json:"truncate"`
	Align          string `json:"align"`
	PaddingLeft    int    `json:"padding_left"`
	PaddingRight   int    `json:"padding_right"`
	PaddingTop     int    `json:"padding_top"`
	PaddingBottom  int    `json:"padding_bottom"`
}

// WrapData describes a source line that was wider than the content width.
type WrapData struct {
	Line         int `json:"line"`
	LineWidth    int `json:"line_width"`
	ContentWidth int `json:"content_width"`
	Lines        int `json:"lines"`
	Clipped      int `json:"clipped"` // sub-lines holding a single over-wide word
}

// AllocateData describes how a layout divided its width among columns.
type AllocateData struct {
	Width     int   `json:"width"`
	Margin    int   `json:"margin"`
	Columns   int   `json:"columns"`
	Fixed     int   `json:"fixed"`
	Fluid     int   `json:"fluid"`
	Resolved  []int `json:"resolved"`
	Remaining int   `json:"remaining"`
}

// ReconcileData describes the height equalisation of layout columns.
type ReconcileData struct {
	Heights []int `json:"heights"`
	Rows    int   `json:"rows"`
}

// PadData describes the padding step.
type PadData struct {
	ContentRows int `json:"content_rows"`
	RowWidth    int `json:"row_width"`
	Top         int `json:"top"`
	Bottom      int `json:"bottom"`
	Left        int `json:"left"`
	Right       int `json:"right"`
}

// HeightData describes the height enforcement step.
type HeightData struct {
	Rows     int    `json:"rows"`
	Limit    int    `json:"limit"`
	Truncate bool   `json:"truncate"`
	Outcome  string `json:"outcome"`
}

// ClipData describes rows cut back to the block width because the padding
// left no room for content.
type ClipData struct {
	ContentWidth int `json:"content_width"`
	RowWidth     int `json:"row_width"`
	Rows         int `json:"rows"`
}

// RenderEndData describes a finished render.
type RenderEndData struct {
	Rows      int   `json:"rows"`
	RowWidth  int   `json:"row_width"`
	ElapsedUs int64 `json:"elapsed_us"`
}

// ErrorData contains error information.
type ErrorData struct {
	Type    string                 `json:"type"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}
