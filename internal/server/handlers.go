package server

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_convert").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Coerces color arguments through the colorspace constructors
//  3. Calls the appropriate colorspace operation
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_distance":
		return s.handleColorDistance(args)
	case "color_closest_match":
		return s.handleColorClosestMatch(args)
	case "color_named":
		return s.handleColorNamed(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// parseColor coerces a JSON color argument into a colorspace.Color.
//
// Strings are parsed as hex (an optional leading "#" is allowed, silent
// coercion applies). Whole numbers are taken as packed integers. Fractional
// numbers and any other JSON type are rejected through the validated
// factory so the error names the offending value and its type.
func parseColor(v interface{}) (colorspace.Color, error) {
	switch t := v.(type) {
	case string:
		return colorspace.FromHex(t), nil
	case float64:
		if t == math.Trunc(t) {
			return colorspace.FromInt(int(t)), nil
		}
		return colorspace.NewFromInt(t)
	case nil:
		return 0, fmt.Errorf("missing color argument")
	default:
		return colorspace.NewFromInt(v)
	}
}

// parseRGBTriple coerces a three-element JSON array into a Color via the
// validated factory. Whole JSON numbers convert to ints; anything else is
// passed through so NewFromRGB rejects it naming the channel.
func parseRGBTriple(vals []interface{}) (colorspace.Color, error) {
	if len(vals) != 3 {
		return 0, fmt.Errorf("rgb must have exactly 3 elements, got %d", len(vals))
	}
	args := make([]interface{}, 3)
	for i, v := range vals {
		if f, ok := v.(float64); ok && f == math.Trunc(f) {
			args[i] = int(f)
		} else {
			args[i] = v
		}
	}
	return colorspace.NewFromRGB(args[0], args[1], args[2])
}

// === Conversion Handlers ===

// rgbResult holds the masked channel components of a color.
type rgbResult struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// ConvertResult contains a color in every representation the library derives.
type ConvertResult struct {
	Value     int                  `json:"value"`     // Packed integer as stored
	Hex       string               `json:"hex"`       // Lowercase hex, zero-padded to 6 digits
	Canonical string               `json:"canonical"` // "#RRGGBB" uppercase form
	RGB       rgbResult            `json:"rgb"`       // Masked channels (0-255)
	HSVFloat  colorspace.HSVf      `json:"hsv_float"` // Float-accurate HSV
	HSVInt    colorspace.HSVi      `json:"hsv_int"`   // Integer-fast HSV approximation
	XYZ       colorspace.XYZTriple `json:"xyz"`       // CIE XYZ, D65, scaled x100
	Lab       colorspace.LabTriple `json:"lab"`       // CIE Lab
	GrayScale bool                 `json:"grayscale"` // Channel spread below the default threshold
}

type colorConvertArgs struct {
	Color interface{}   `json:"color,omitempty"`
	RGB   []interface{} `json:"rgb,omitempty"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var c colorspace.Color
	var err error
	if a.RGB != nil {
		c, err = parseRGBTriple(a.RGB)
	} else {
		c, err = parseColor(a.Color)
	}
	if err != nil {
		return nil, err
	}

	r, g, b := c.RGB()
	return &ConvertResult{
		Value:     c.Int(),
		Hex:       c.Hex(),
		Canonical: c.String(),
		RGB:       rgbResult{R: r, G: g, B: b},
		HSVFloat:  c.HSVFloat(),
		HSVInt:    c.HSVInt(),
		XYZ:       c.XYZ(),
		Lab:       c.LabCIE(),
		GrayScale: c.IsGrayScale(colorspace.GrayThreshold),
	}, nil
}

// === Distance Handlers ===

// DistanceResult contains the distance between two colors in each metric.
type DistanceResult struct {
	A     string  `json:"a"`     // Canonical form of the first color
	B     string  `json:"b"`     // Canonical form of the second color
	RGB   int     `json:"rgb"`   // Manhattan distance in the RGB cube (0-765)
	Lab   float64 `json:"lab"`   // Simplified Lab distance (feeds matching)
	CIE76 float64 `json:"cie76"` // Standard Euclidean Delta-E
}

type colorDistanceArgs struct {
	A interface{} `json:"a"`
	B interface{} `json:"b"`
}

func (s *Server) handleColorDistance(args json.RawMessage) (interface{}, error) {
	var a colorDistanceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	first, err := parseColor(a.A)
	if err != nil {
		return nil, fmt.Errorf("argument a: %w", err)
	}
	second, err := parseColor(a.B)
	if err != nil {
		return nil, fmt.Errorf("argument b: %w", err)
	}

	return &DistanceResult{
		A:     first.String(),
		B:     second.String(),
		RGB:   first.DistanceRGB(second),
		Lab:   first.DistanceLab(second),
		CIE76: first.DistanceCIE76(second),
	}, nil
}

// === Matching Handlers ===

// MatchResult identifies the palette entry nearest to the candidate color.
type MatchResult struct {
	Index    int     `json:"index"`    // Position of the match in the palette
	Color    string  `json:"color"`    // Canonical form of the matched entry
	Distance float64 `json:"distance"` // Simplified Lab distance to the match
}

type colorClosestMatchArgs struct {
	Color   interface{}   `json:"color"`
	Palette []interface{} `json:"palette"`
}

func (s *Server) handleColorClosestMatch(args json.RawMessage) (interface{}, error) {
	var a colorClosestMatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	c, err := parseColor(a.Color)
	if err != nil {
		return nil, err
	}

	palette := make([]colorspace.Color, len(a.Palette))
	for i, entry := range a.Palette {
		palette[i], err = parseColor(entry)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
	}

	idx, ok := c.ClosestMatch(palette)
	if !ok {
		return nil, fmt.Errorf("palette is empty")
	}

	return &MatchResult{
		Index:    idx,
		Color:    palette[idx].String(),
		Distance: c.DistanceLab(palette[idx]),
	}, nil
}

// === Named Color Handlers ===

// NamedResult lists the named color table, optionally with the table entry
// nearest to a candidate color.
type NamedResult struct {
	Colors  []NamedEntry `json:"colors"`
	Nearest *NamedEntry  `json:"nearest,omitempty"`
}

// NamedEntry pairs a color name with its hex and packed values.
type NamedEntry struct {
	Name  string `json:"name"`
	Hex   string `json:"hex"`
	Value int    `json:"value"`
}

type colorNamedArgs struct {
	// Color, when present, additionally reports the nearest named color.
	Color interface{} `json:"color,omitempty"`
}

func (s *Server) handleColorNamed(args json.RawMessage) (interface{}, error) {
	var a colorNamedArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
	}

	table := colorspace.Named()
	entries := make([]NamedEntry, len(table))
	for i, n := range table {
		entries[i] = NamedEntry{Name: n.Name, Hex: n.Color.Hex(), Value: n.Color.Int()}
	}
	result := &NamedResult{Colors: entries}

	if a.Color != nil {
		c, err := parseColor(a.Color)
		if err != nil {
			return nil, err
		}
		if match, ok := colorspace.NamedMatch(c); ok {
			result.Nearest = &NamedEntry{Name: match.Name, Hex: match.Color.Hex(), Value: match.Color.Int()}
		}
	}

	return result, nil
}
