package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorSchema is the shared schema fragment for a single color argument,
// which may be a hex string (with or without "#") or a packed integer.
func colorSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        []string{"string", "integer"},
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "color_convert",
			Description: "Convert a color to every supported representation: hex, RGB, both HSV variants, CIE XYZ and CIE Lab, plus a grayscale check.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema("Color as hex string (e.g. \"ffa500\" or \"#FFA500\") or packed integer"),
					"rgb": map[string]interface{}{
						"type":        "array",
						"description": "Alternative input: [r, g, b] integer channels. Non-integer channels are rejected.",
						"items":       map[string]interface{}{"type": "integer"},
						"minItems":    3,
						"maxItems":    3,
					},
				},
			},
		},
		{
			Name:        "color_distance",
			Description: "Compute the distance between two colors: Manhattan RGB, the simplified Lab metric used for matching, and standard CIE76 Delta-E.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"a": colorSchema("First color as hex string or packed integer"),
					"b": colorSchema("Second color as hex string or packed integer"),
				},
				"required": []string{"a", "b"},
			},
		},
		{
			Name:        "color_closest_match",
			Description: "Find the palette entry nearest to a candidate color using the simplified Lab distance. Ties keep the earliest entry.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema("Candidate color as hex string or packed integer"),
					"palette": map[string]interface{}{
						"type":        "array",
						"description": "Ordered palette of colors (hex strings or packed integers). Must be non-empty.",
						"items":       colorSchema("Palette entry"),
					},
				},
				"required": []string{"color", "palette"},
			},
		},
		{
			Name:        "color_named",
			Description: "List the named color table (HTML4 palette plus olive, orange and the transparent sentinel). Optionally report the named color nearest to a candidate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema("Optional candidate color; when given, the nearest named color is included"),
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
