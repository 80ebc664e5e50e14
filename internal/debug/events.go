package debug

// EncodeStartData is emitted before the first byte of a document is produced.
type EncodeStartData struct {
	Pages     int `json:"pages"`
	InitBytes int `json:"init_bytes"`
}

// PageEncodedData describes one finished page.
type PageEncodedData struct {
	Index        int `json:"index"`
	Bytes        int `json:"bytes"`
	Toggles      int `json:"toggles"`
	StyledCells  int `json:"styled_cells"`
	NonEmptyRows int `json:"non_empty_rows"`
}

// EncodeEndData summarises an encode operation.
type EncodeEndData struct {
	Pages        int   `json:"pages"`
	BytesWritten int64 `json:"bytes_written"`
	ElapsedMs    int64 `json:"elapsed_ms"`
}

// TransitionData records one attribute change inside a row.
type TransitionData struct {
	Page  int    `json:"page"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	From  string `json:"from"`
	To    string `json:"to"`
	Codes string `json:"codes"`
}

// NodeRenderData describes a composition-tree node being rendered.
type NodeRenderData struct {
	Kind   string `json:"kind"`
	Depth  int    `json:"depth"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Clip   [4]int `json:"clip"`
}

// ClipCollapsedData is emitted when a node's effective clip has no area.
// The node's children are still visited.
type ClipCollapsedData struct {
	Kind     string `json:"kind"`
	Depth    int    `json:"depth"`
	Children int    `json:"children"`
}

// CompositionRejectData describes a rejected AddChild call.
type CompositionRejectData struct {
	Reason string `json:"reason"`
	Parent [2]int `json:"parent"`
	Child  [4]int `json:"child"`
}

// TransmitData describes a write to the printer device.
type TransmitData struct {
	Bytes    int `json:"bytes"`
	Attempts int `json:"attempts"`
}

// StatusData describes a status query result.
type StatusData struct {
	Raw    int    `json:"raw"`
	Status string `json:"status"`
}

// ErrorData contains error information.
type ErrorData struct {
	Type    string                 `json:"type"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}
